package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"prism/internal/float8"
	"prism/internal/prim"
)

var describeCmd = &cobra.Command{
	Use:   "describe <name>",
	Short: "Show the full trait sheet of one primitive type",
	Args:  cobra.ExactArgs(1),
	RunE:  runDescribe,
}

var (
	describeTitleColor = color.New(color.FgCyan, color.Bold)
	describeLabelColor = color.New(color.FgHiBlack)
)

func runDescribe(cmd *cobra.Command, args []string) error {
	cfg, err := loadCLIConfig(cmd)
	if err != nil {
		return err
	}
	styled, err := colorEnabled(cmd, cfg)
	if err != nil {
		return err
	}
	// fatih/color consults the global NoColor default, which only knows
	// about terminals; pin it to our decision.
	color.NoColor = !styled

	t, err := prim.StringToPrimitiveType(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	describeTitleColor.Fprintln(out, t.String())
	field(out, "name", prim.LowercaseName(t))
	field(out, "class", typeClass(t))
	if t.IsArray() {
		field(out, "bit width", fmt.Sprintf("%d", t.BitWidth()))
		field(out, "byte width", fmt.Sprintf("%d", t.ByteWidth()))
	}
	if t.IsComplex() {
		field(out, "component", prim.LowercaseName(t.ComplexComponentType()))
	}
	if t.IsFloatingPoint() {
		field(out, "significand", fmt.Sprintf("%d bits (incl. implicit leading digit)", prim.SignificandWidth(t)))
		field(out, "exponent", fmt.Sprintf("%d bits, bias %d", prim.ExponentWidth(t), prim.ExponentBias(t)))
		field(out, "underflow exp", fmt.Sprintf("%d", prim.UnderflowExponent(t)))
		field(out, "overflow exp", fmt.Sprintf("%d", prim.OverflowExponent(t)))
		inf := "no"
		if prim.HasInfinity(t) {
			inf = "yes"
		}
		field(out, "infinity", inf)
		if float8.Is8Bit(t) {
			field(out, "max finite", fmt.Sprintf("%g", float8.MaxFinite(t)))
			field(out, "min normal", fmt.Sprintf("%g", float8.MinPositiveNormal(t)))
		}
	}
	return nil
}

func field(out io.Writer, label, value string) {
	describeLabelColor.Fprintf(out, "  %-14s", label)
	fmt.Fprintln(out, value)
}

func typeClass(t prim.Type) string {
	switch {
	case t.IsFloatingPoint():
		return "floating point"
	case t.IsSignedIntegral():
		return "signed integer"
	case t.IsUnsignedIntegral():
		return "unsigned integer"
	case t.IsComplex():
		return "complex"
	case t == prim.Pred:
		return "predicate"
	default:
		return "shape-level"
	}
}
