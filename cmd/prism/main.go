package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"prism/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "prism",
	Short: "Prism compiler numeric type toolbox",
	Long:  `Prism backend tooling for inspecting primitive element types and their bit-layout traits`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(typesCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "", "colorize output (auto|on|off), overrides prism.toml")
	rootCmd.PersistentFlags().String("config", "", "path to a prism.toml preferences file")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
