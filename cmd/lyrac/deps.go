package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"lyra/internal/diag"
	"lyra/internal/driver"
)

var depsOut string

func init() {
	depsCmd.Flags().StringVar(&depsOut, "out", "", "write a msgpack dependency snapshot to this path")
}

var depsCmd = &cobra.Command{
	Use:   "deps [paths...]",
	Short: "Export dependency edges for incremental build tooling",
	Long: `Builds the unit registry and prints (or exports with --out) each
unit's depends-on/defines edges. Units over virtual sources always export
empty edge lists.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		files, err := resolveInputs(args)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			return fmt.Errorf("no source files found")
		}

		run := driver.NewRun(diag.NopReporter{})
		for _, path := range files {
			if _, err := run.AddFile(path); err != nil {
				return fmt.Errorf("failed to load %q: %w", path, err)
			}
		}

		snap := run.DepSnapshot()
		if depsOut != "" {
			if err := driver.WriteDepSnapshot(depsOut, snap); err != nil {
				return fmt.Errorf("failed to write snapshot: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d units to %s\n", len(snap.Units), depsOut)
			return nil
		}

		out := cmd.OutOrStdout()
		for _, u := range snap.Units {
			fmt.Fprintf(out, "%s\n", u.Path)
			fmt.Fprintf(out, "  defines:    %s\n", joinOrDash(u.Defines))
			fmt.Fprintf(out, "  depends-on: %s\n", joinOrDash(u.DependsOn))
		}
		return nil
	},
}

func joinOrDash(names []string) string {
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ", ")
}
