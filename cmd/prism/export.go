package main

import (
	"encoding/json"
	"fmt"
	"os"

	"fortio.org/safecast"
	"github.com/spf13/cobra"
	"github.com/vmihailenco/msgpack/v5"

	"prism/internal/prim"
)

// Current schema version - increment when the payload format changes
const exportSchemaVersion uint16 = 1

// floatTraits carries the layout facts of one floating-point encoding.
type floatTraits struct {
	SignificandWidth  int  `msgpack:"significand_width" json:"significand_width"`
	ExponentWidth     int  `msgpack:"exponent_width" json:"exponent_width"`
	ExponentBias      int  `msgpack:"exponent_bias" json:"exponent_bias"`
	UnderflowExponent int  `msgpack:"underflow_exponent" json:"underflow_exponent"`
	OverflowExponent  int  `msgpack:"overflow_exponent" json:"overflow_exponent"`
	HasInfinity       bool `msgpack:"has_infinity" json:"has_infinity"`
}

// exportEntry describes one primitive type in the export payload.
type exportEntry struct {
	Ordinal  uint8        `msgpack:"ordinal" json:"ordinal"`
	Name     string       `msgpack:"name" json:"name"`
	Display  string       `msgpack:"display" json:"display"`
	BitWidth int          `msgpack:"bit_width,omitempty" json:"bit_width,omitempty"`
	Float    *floatTraits `msgpack:"float,omitempty" json:"float,omitempty"`
}

// exportPayload is the serialized trait table consumed by downstream
// tooling. Ordinals are the wire-stable prim.Type values.
type exportPayload struct {
	Schema uint16        `msgpack:"schema" json:"schema"`
	Types  []exportEntry `msgpack:"types" json:"types"`
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Serialize the complete trait table",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

var (
	exportFormat string
	exportOut    string
)

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "", "payload format (msgpack|json), default from prism.toml")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadCLIConfig(cmd)
	if err != nil {
		return err
	}
	format := exportFormat
	if format == "" {
		format = cfg.Output.Format
	}

	payload, err := buildExportPayload()
	if err != nil {
		return err
	}

	var data []byte
	switch format {
	case "msgpack":
		data, err = msgpack.Marshal(payload)
	case "json":
		data, err = json.MarshalIndent(payload, "", "  ")
	default:
		return fmt.Errorf("unsupported format %q (must be msgpack or json)", format)
	}
	if err != nil {
		return fmt.Errorf("encode trait table: %w", err)
	}

	if exportOut == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(exportOut, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", exportOut, err)
	}
	return nil
}

func buildExportPayload() (*exportPayload, error) {
	payload := &exportPayload{Schema: exportSchemaVersion}
	for i := 0; i < prim.NumTypes; i++ {
		t := prim.Type(i)
		if !t.IsValid() {
			continue
		}
		ord, err := safecast.Conv[uint8](i)
		if err != nil {
			return nil, fmt.Errorf("type ordinal overflow: %w", err)
		}
		entry := exportEntry{
			Ordinal: ord,
			Name:    prim.LowercaseName(t),
			Display: t.String(),
		}
		if t.IsArray() {
			entry.BitWidth = t.BitWidth()
		}
		if t.IsFloatingPoint() {
			entry.Float = &floatTraits{
				SignificandWidth:  prim.SignificandWidth(t),
				ExponentWidth:     prim.ExponentWidth(t),
				ExponentBias:      prim.ExponentBias(t),
				UnderflowExponent: prim.UnderflowExponent(t),
				OverflowExponent:  prim.OverflowExponent(t),
				HasInfinity:       prim.HasInfinity(t),
			}
		}
		payload.Types = append(payload.Types, entry)
	}
	return payload, nil
}
