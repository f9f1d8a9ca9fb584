package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"prism/internal/config"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "Inspect the primitive element type set",
	Long:  `Query prism's closed set of primitive element types: names, bit widths and floating-point layout traits`,
}

func init() {
	typesCmd.AddCommand(listCmd)
	typesCmd.AddCommand(describeCmd)
	typesCmd.AddCommand(parseCmd)
	typesCmd.AddCommand(exportCmd)
}

// loadCLIConfig resolves the preferences file for a command invocation. An
// explicit --config path must exist; the implicit ./prism.toml may be
// absent.
func loadCLIConfig(cmd *cobra.Command) (*config.File, error) {
	path, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	if path != "" {
		return config.Load(path)
	}
	return config.LoadDefault()
}

// colorEnabled decides whether styled output goes to stdout, combining the
// --color flag, the config file and terminal detection.
func colorEnabled(cmd *cobra.Command, cfg *config.File) (bool, error) {
	mode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, fmt.Errorf("failed to get color flag: %w", err)
	}
	if mode == "" {
		mode = cfg.Output.Color
	}
	switch mode {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "auto":
		return isTerminal(os.Stdout), nil
	default:
		return false, fmt.Errorf("unknown color mode %q (auto|on|off)", mode)
	}
}
