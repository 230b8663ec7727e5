package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"lyra/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "lyrac",
	Short: "Lyra language compiler and toolchain",
	Long:  `Lyra is a programming language compiler with incremental build tooling`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(unitsCmd)
	rootCmd.AddCommand(depsCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")

	cobra.OnInitialize(func() {
		switch mode, _ := rootCmd.PersistentFlags().GetString("color"); mode {
		case "on":
			color.NoColor = false
		case "off":
			color.NoColor = true
		default:
			color.NoColor = !isTerminal(os.Stdout)
		}
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
