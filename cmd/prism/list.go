package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"prism/internal/prim"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every primitive type with its layout facts",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var listFloatsOnly bool

func init() {
	listCmd.Flags().BoolVar(&listFloatsOnly, "floats", false, "show only floating-point types")
}

var listHeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadCLIConfig(cmd)
	if err != nil {
		return err
	}
	styled, err := colorEnabled(cmd, cfg)
	if err != nil {
		return err
	}

	rows := [][]string{{"ORD", "NAME", "BITS", "SIG", "EXP", "BIAS", "UFLOW", "OFLOW", "INF"}}
	for i := 0; i < prim.NumTypes; i++ {
		t := prim.Type(i)
		if !t.IsValid() {
			continue
		}
		if listFloatsOnly && !t.IsFloatingPoint() {
			continue
		}
		rows = append(rows, listRow(t))
	}

	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for c, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[c] {
				widths[c] = w
			}
		}
	}

	out := cmd.OutOrStdout()
	for r, row := range rows {
		cells := make([]string, len(row))
		for c, cell := range row {
			cells[c] = runewidth.FillRight(cell, widths[c])
		}
		line := strings.TrimRight(strings.Join(cells, "  "), " ")
		if r == 0 && styled {
			line = listHeaderStyle.Render(line)
		}
		fmt.Fprintln(out, line)
	}
	return nil
}

func listRow(t prim.Type) []string {
	const none = "-"
	row := []string{
		strconv.Itoa(int(t)),
		prim.LowercaseName(t),
		none, none, none, none, none, none, none,
	}
	if t.IsArray() {
		row[2] = strconv.Itoa(t.BitWidth())
	}
	if t.IsFloatingPoint() {
		row[3] = strconv.Itoa(prim.SignificandWidth(t))
		row[4] = strconv.Itoa(prim.ExponentWidth(t))
		row[5] = strconv.Itoa(prim.ExponentBias(t))
		row[6] = strconv.Itoa(prim.UnderflowExponent(t))
		row[7] = strconv.Itoa(prim.OverflowExponent(t))
		row[8] = "no"
		if prim.HasInfinity(t) {
			row[8] = "yes"
		}
	}
	return row
}
