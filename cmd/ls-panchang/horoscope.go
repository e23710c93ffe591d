package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/litescript/ls-panchang/internal/render"
)

var horoscopeCmd = &cobra.Command{
	Use:   "horoscope",
	Short: "Compute a birth chart",
	Long: "horoscope computes the full record for a birth instant: almanac limbs,\n" +
		"whole-sign placements, the South Indian chart and the Vimshottari timeline.",
	RunE: runHoroscope,
}

func init() {
	horoscopeCmd.Flags().String("date", "", "birth timestamp, local wall clock (default now)")
	horoscopeCmd.Flags().String("name", "", "native's name for the report header")
	horoscopeCmd.Flags().Float64("horizon", 120, "dasa horizon in years (0 disables)")
	horoscopeCmd.Flags().Bool("json", false, "emit JSON instead of text")
	horoscopeCmd.Flags().String("out", "", "write output to file (default stdout)")
	rootCmd.AddCommand(horoscopeCmd)
}

func runHoroscope(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	provider := newProvider(logger)

	dateStr, _ := cmd.Flags().GetString("date")
	name, _ := cmd.Flags().GetString("name")
	horizon, _ := cmd.Flags().GetFloat64("horizon")
	asJSON, _ := cmd.Flags().GetBool("json")
	outPath, _ := cmd.Flags().GetString("out")

	local, err := parseWhen(dateStr)
	if err != nil {
		return err
	}

	h, err := horoscopeFor(provider, name, local, horizon)
	if err != nil {
		return err
	}

	out := io.Writer(os.Stdout)
	if outPath != "" && outPath != "-" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	export := render.ExportChart(h)
	if asJSON {
		return export.WriteJSON(out)
	}

	if name != "" {
		fmt.Fprintf(out, "Horoscope for %s\n\n", name)
	}
	render.WritePanchangSummary(out, h.Panchang)
	fmt.Fprintln(out)
	render.WritePlacementTable(out, export)
	fmt.Fprintln(out)
	render.WriteSouthIndianChart(out, h)
	if len(h.Dasas) > 0 {
		fmt.Fprintln(out)
		render.WriteDasaTable(out, h.Dasas, false)
	}
	return nil
}
