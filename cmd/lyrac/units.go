package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lyra/internal/diag"
	"lyra/internal/driver"
)

var unitsCmd = &cobra.Command{
	Use:   "units [paths...]",
	Short: "List the compilation units a run would register",
	Long: `Loads the given files (or the project's source directory when no
paths are passed) into a compilation run and prints the unit registry.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		files, err := resolveInputs(args)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			return fmt.Errorf("no source files found")
		}

		maxDiags, _ := cmd.Flags().GetInt("max-diagnostics")
		bag := diag.NewBag(maxDiags)
		run := driver.NewRun(diag.BagReporter{Bag: bag})

		for _, path := range files {
			if _, err := run.AddFile(path); err != nil {
				return fmt.Errorf("failed to load %q: %w", path, err)
			}
		}

		out := cmd.OutOrStdout()
		for _, u := range run.Units() {
			f := u.Source()
			kind := "lyra"
			if u.IsJavaSource() {
				kind = "java"
			}
			virt := ""
			if f.IsVirtual() {
				virt = " (virtual)"
			}
			fmt.Fprintf(out, "%s\t%s\t%d bytes%s\n", f.Path, kind, len(f.Content), virt)
		}

		renderDiagnostics(out, run.FileSet(), bag)
		renderSummaries(out, run.Diags())
		return nil
	},
}
