package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/marcodamonte/oop-concepts/exercise"
	"github.com/marcodamonte/oop-concepts/version"
)

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "run [exercise...]",
		Short:     "Run all exercises, or only the named ones",
		ValidArgs: exercise.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			selected, err := selectExercises(args)
			if err != nil {
				return err
			}
			return runExercises(cmd.OutOrStdout(), a.env, selected)
		},
	}
}

// selectExercises resolves names in the order given; no names means all.
func selectExercises(names []string) ([]exercise.Exercise, error) {
	if len(names) == 0 {
		return exercise.All(), nil
	}
	out := make([]exercise.Exercise, 0, len(names))
	for _, name := range names {
		ex, ok := exercise.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown exercise %q (known: %s)", name, strings.Join(exercise.Names(), ", "))
		}
		out = append(out, ex)
	}
	return out, nil
}

func runExercises(w io.Writer, env exercise.Env, exs []exercise.Exercise) error {
	for _, ex := range exs {
		section(w, ex.Title)
		start := time.Now()
		if err := ex.Run(w, env); err != nil {
			return fmt.Errorf("exercise %s: %w", ex.Name, err)
		}
		env.Log.Debug("exercise done", zap.String("exercise", ex.Name), zap.Duration("took", time.Since(start)))
	}
	return nil
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n━━━ %s ━━━\n", title)
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the exercises",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, ex := range exercise.All() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", ex.Name, ex.Title)
			}
		},
	}
}

func newCompareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <version> <version>",
		Short: "Compare two major.minor.patch versions",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := version.Parse(args[0])
			if err != nil {
				return err
			}
			b, err := version.Parse(args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", a, version.Compare(a, b), b)
			return nil
		},
	}
}
