package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/litescript/ls-panchang/internal/dasa"
	"github.com/litescript/ls-panchang/internal/ephem"
	"github.com/litescript/ls-panchang/internal/render"
	"github.com/litescript/ls-panchang/internal/timeutil"
)

var dasaCmd = &cobra.Command{
	Use:   "dasa",
	Short: "Print the Vimshottari timeline for a birth instant",
	RunE:  runDasa,
}

func init() {
	dasaCmd.Flags().String("date", "", "birth timestamp, local wall clock (default now)")
	dasaCmd.Flags().Float64("horizon", 120, "horizon in years")
	dasaCmd.Flags().Bool("bhuktis", false, "expand each period into its sub-periods")
	dasaCmd.Flags().String("at", "", "print only the period active at this timestamp")
	dasaCmd.Flags().Bool("json", false, "emit JSON instead of text")
	rootCmd.AddCommand(dasaCmd)
}

func runDasa(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	provider := newProvider(logger)

	dateStr, _ := cmd.Flags().GetString("date")
	horizon, _ := cmd.Flags().GetFloat64("horizon")
	withBhuktis, _ := cmd.Flags().GetBool("bhuktis")
	atStr, _ := cmd.Flags().GetString("at")
	asJSON, _ := cmd.Flags().GetBool("json")

	local, err := parseWhen(dateStr)
	if err != nil {
		return err
	}

	details := observerDetails("", local)
	if err := details.Validate(); err != nil {
		return err
	}
	jd := details.JulianDay()

	moon, err := provider.PositionOf(jd, ephem.Moon, 0)
	if err != nil {
		return err
	}

	if atStr != "" {
		at, err := parseWhen(atStr)
		if err != nil {
			return err
		}
		atJD := timeutil.JulianDay(timeutil.LocalToUT(at, viper.GetFloat64("tz")))
		d, b, err := dasa.Current(jd, moon.Longitude, atJD)
		if err != nil {
			return err
		}
		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(render.ExportDasas([]dasa.Dasa{d}))
		}
		fmt.Fprintf(os.Stdout, "%s dasa, %s bhukti\n", d.Lord, b.Lord)
		render.WriteDasaTable(os.Stdout, []dasa.Dasa{d}, true)
		return nil
	}

	periods, err := dasa.Timeline(jd, moon.Longitude, horizon)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(render.ExportDasas(periods))
	}
	render.WriteDasaTable(os.Stdout, periods, withBhuktis)
	return nil
}
