package main

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"svw.info/sudoku-solver/internal/solver"
	"svw.info/sudoku-solver/internal/usecase"
	"svw.info/sudoku-solver/internal/validator"
)

var logLevel string

func main() {
	command := &cobra.Command{
		Use:   "sudoku-solve [puzzle]",
		Short: "Solve a 9x9 Sudoku given as an 81-digit string (0 = blank)",
		Long: "Solve a standard 9x9 Sudoku. The puzzle is an 81-character row-major\n" +
			"digit string with 0 for blank cells, passed as the single argument or\n" +
			"piped as one line on stdin.",
		Args:         cobra.MaximumNArgs(1),
		RunE:         run,
		SilenceUsage: true,
	}
	command.Flags().StringVarP(&logLevel, "log-level", "l", "warn", "debug|info|warn|error")
	if command.Execute() != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	lvl := slog.LevelWarn
	switch strings.ToLower(logLevel) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "error":
		lvl = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))

	puzzle, err := puzzleInput(args)
	if err != nil {
		return err
	}

	s := solver.New()
	s.Logger = logger
	uc := usecase.NewService(s, validator.New())

	out, st, err := uc.SolvePuzzle(cmd.Context(), puzzle)
	if err != nil {
		return err
	}
	logger.Debug("solved",
		"nodes", st.Nodes,
		"guesses", st.Guesses,
		"dur", st.Duration.Round(time.Microsecond),
	)
	fmt.Fprintf(cmd.OutOrStdout(), "solution: %s\n", out)
	return nil
}

// puzzleInput takes the puzzle from the positional argument, or reads one
// line from stdin when no argument was given.
func puzzleInput(args []string) (string, error) {
	if len(args) == 1 {
		return strings.TrimSpace(args[0]), nil
	}
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", errors.New("no puzzle given: pass it as an argument or on stdin")
	}
	return strings.TrimSpace(scanner.Text()), nil
}
