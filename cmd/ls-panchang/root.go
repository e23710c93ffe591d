package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/litescript/ls-panchang/internal/ephem"
	"github.com/litescript/ls-panchang/internal/horoscope"
	"github.com/litescript/ls-panchang/internal/logging"
	"github.com/litescript/ls-panchang/internal/timeutil"
)

// Default observer: Chennai.
const (
	defaultLat = 13.0827
	defaultLon = 80.2707
	defaultTZ  = 5.5
)

var rootCmd = &cobra.Command{
	Use:   "ls-panchang",
	Short: "Tamil almanac, rasi charts and Vimshottari periods",
	Long: "ls-panchang derives the five daily almanac limbs, whole-sign birth charts\n" +
		"and Vimshottari Dasa timelines from JPL Horizons ephemerides, with a\n" +
		"deterministic built-in fallback for offline use.",
	RunE: func(cmd *cobra.Command, args []string) error {
		// No subcommand launches the TUI.
		return runTUI(cmd, args)
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default .ls-panchang.yaml)")
	pf.String("ephem", "auto", "ephemeris source (horizons, fixed, auto)")
	pf.Float64("lat", defaultLat, "observer latitude, degrees north")
	pf.Float64("lon", defaultLon, "observer longitude, degrees east")
	pf.Float64("tz", defaultTZ, "UTC offset for local timestamps, hours")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")

	for _, key := range []string{"ephem", "lat", "lon", "tz", "log-level"} {
		_ = viper.BindPFlag(key, pf.Lookup(key))
	}
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".ls-panchang")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("LS_PANCHANG")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

func newLogger() *logging.Logger {
	return logging.New(logging.ParseLevel(viper.GetString("log-level")))
}

// newProvider builds the ephemeris provider from configuration. Auto
// mode probes Horizons once and falls back to the built-in positions
// when the probe fails.
func newProvider(logger *logging.Logger) ephem.Provider {
	mode := ephem.ParseMode(viper.GetString("ephem"))
	switch mode {
	case ephem.ModeHorizons:
		return ephem.NewHorizonsProvider()
	case ephem.ModeFixed:
		return ephem.NewFixedProvider()
	default:
		hp := ephem.NewHorizonsProvider()
		jd := timeutil.JulianDay(time.Now())
		if _, err := hp.PositionOf(jd, ephem.Sun, 0); err != nil {
			logger.Warn("horizons unavailable, using fixed positions: %v", err)
			return ephem.NewFixedProvider()
		}
		return hp
	}
}

// observerDetails assembles birth details from the shared location
// flags and a local timestamp.
func observerDetails(name string, local time.Time) horoscope.BirthDetails {
	return horoscope.BirthDetails{
		Name:          name,
		Local:         local,
		TZOffsetHours: viper.GetFloat64("tz"),
		LatDeg:        viper.GetFloat64("lat"),
		LonDeg:        viper.GetFloat64("lon"),
	}
}

// parseWhen resolves a --date flag value. An empty value means the
// current local wall-clock at the configured UTC offset.
func parseWhen(s string) (time.Time, error) {
	if s == "" {
		offset := time.Duration(viper.GetFloat64("tz") * float64(time.Hour))
		return time.Now().UTC().Add(offset), nil
	}
	for _, layout := range []string{"2006-01-02 15:04", "2006-01-02T15:04", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q (want \"2006-01-02 15:04\")", s)
}
