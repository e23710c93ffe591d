package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/litescript/ls-panchang/internal/ephem"
	"github.com/litescript/ls-panchang/internal/horoscope"
	"github.com/litescript/ls-panchang/internal/panchang"
	"github.com/litescript/ls-panchang/internal/render"
	"github.com/litescript/ls-panchang/internal/state"
	"github.com/litescript/ls-panchang/internal/timeutil"
)

var panchangCmd = &cobra.Command{
	Use:   "panchang",
	Short: "Print the almanac for an instant",
	RunE:  runPanchang,
}

func init() {
	panchangCmd.Flags().String("date", "", "local timestamp (default now)")
	panchangCmd.Flags().Bool("json", false, "emit JSON instead of text")
	panchangCmd.Flags().Duration("watch", 0, "re-derive at interval and report limb changes")
	rootCmd.AddCommand(panchangCmd)
}

func runPanchang(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	provider := newProvider(logger)

	dateStr, _ := cmd.Flags().GetString("date")
	asJSON, _ := cmd.Flags().GetBool("json")
	watch, _ := cmd.Flags().GetDuration("watch")

	local, err := parseWhen(dateStr)
	if err != nil {
		return err
	}

	details := observerDetails("", local)
	if err := details.Validate(); err != nil {
		return err
	}

	pr, err := derivePanchang(provider, details.JulianDay())
	if err != nil {
		return err
	}

	if asJSON {
		return render.ExportPanchang(pr).WriteJSON(os.Stdout)
	}
	render.WritePanchangSummary(os.Stdout, pr)

	if watch <= 0 {
		return nil
	}
	return watchPanchang(provider, watch)
}

// derivePanchang queries the Sun and Moon and runs the derivation.
func derivePanchang(provider ephem.Provider, jd float64) (panchang.Result, error) {
	sun, err := provider.PositionOf(jd, ephem.Sun, 0)
	if err != nil {
		return panchang.Result{}, fmt.Errorf("sun query: %w", err)
	}
	moon, err := provider.PositionOf(jd, ephem.Moon, 0)
	if err != nil {
		return panchang.Result{}, fmt.Errorf("moon query: %w", err)
	}
	return panchang.Derive(sun.Longitude, moon.Longitude, jd)
}

// watchPanchang re-derives at the given interval and prints every limb
// transition until interrupted.
func watchPanchang(provider ephem.Provider, interval time.Duration) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	cfg := state.DefaultConfig()
	cfg.RefreshInterval = interval
	mgr := state.NewManager(cfg)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var reported int
	for {
		jd := timeutil.JulianDay(time.Now())
		pr, err := derivePanchang(provider, jd)
		if err != nil {
			mgr.Update(nil, 0, err)
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		} else {
			mgr.Update(&pr, 0, nil)
		}

		events := mgr.Snapshot().Events
		if reported > len(events) {
			reported = len(events)
		}
		for _, e := range events[reported:] {
			fmt.Printf("%s %s %s → %s\n",
				e.Timestamp.Format("15:04:05"), e.Type, e.Old, e.New)
		}
		reported = len(events)

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// horoscopeFor computes a full chart for the configured observer.
func horoscopeFor(provider ephem.Provider, name string, local time.Time, horizonYears float64) (*horoscope.Horoscope, error) {
	details := observerDetails(name, local)
	return horoscope.Compute(provider, details, horoscope.Options{DasaHorizonYears: horizonYears})
}
