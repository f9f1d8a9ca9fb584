package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"prism/internal/prim"
)

var parseCmd = &cobra.Command{
	Use:   "parse <name>",
	Short: "Resolve a type name to its ordinal",
	Long:  `Resolve a canonical lowercase type name (or the "opaque" alias) to its primitive type. Matching is exact; --lenient lowercases the input first.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

var parseLenient bool

func init() {
	parseCmd.Flags().BoolVar(&parseLenient, "lenient", false, "lowercase the input before matching")
}

func runParse(cmd *cobra.Command, args []string) error {
	name := args[0]
	if parseLenient {
		name = cases.Lower(language.Und).String(name)
	}
	t, err := prim.StringToPrimitiveType(name)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s (ordinal %d)\n", name, t, uint8(t))
	return nil
}
