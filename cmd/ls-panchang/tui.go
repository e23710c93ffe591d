package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/litescript/ls-panchang/internal/ephem"
	"github.com/litescript/ls-panchang/internal/horoscope"
	"github.com/litescript/ls-panchang/internal/logging"
	"github.com/litescript/ls-panchang/internal/state"
	"github.com/litescript/ls-panchang/internal/timeutil"
	"github.com/litescript/ls-panchang/internal/ui"
)

const (
	defaultRefresh = time.Minute
	minRefresh     = 5 * time.Second
	maxRefresh     = time.Hour
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal dashboard",
	RunE:  runTUI,
}

func init() {
	tuiCmd.Flags().Duration("refresh", defaultRefresh, "re-derivation interval")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	provider := newProvider(logger)

	refresh, _ := cmd.Flags().GetDuration("refresh")
	if refresh == 0 {
		refresh = defaultRefresh
	}
	if refresh < minRefresh {
		refresh = minRefresh
	} else if refresh > maxRefresh {
		refresh = maxRefresh
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	stateCfg := state.DefaultConfig()
	stateCfg.RefreshInterval = refresh
	stateMgr := state.NewManager(stateCfg)

	model := ui.New(stateMgr)
	p := tea.NewProgram(model, tea.WithAltScreen())

	go runDeriveLoop(ctx, provider, stateMgr, p, logger.Named("derive"))

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}

// runDeriveLoop periodically derives the current almanac and chart and
// pushes them to the TUI.
func runDeriveLoop(ctx context.Context, provider ephem.Provider, stateMgr *state.Manager, p *tea.Program, logger *logging.Logger) {
	doDerive(provider, stateMgr, p, logger)

	ticker := time.NewTicker(stateMgr.RefreshInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Debug("derive loop shutting down")
			return
		case <-ticker.C:
			doDerive(provider, stateMgr, p, logger)
		}
	}
}

func doDerive(provider ephem.Provider, stateMgr *state.Manager, p *tea.Program, logger *logging.Logger) {
	start := time.Now()
	jd := timeutil.JulianDay(start)

	pr, err := derivePanchang(provider, jd)
	if err != nil {
		logger.Error("derivation failed: %v", err)
		stateMgr.Update(nil, time.Since(start), err)
		p.Send(ui.ErrorMsg{Error: err})
		return
	}
	stateMgr.Update(&pr, time.Since(start), nil)

	// The chart is optional: the dashboard stays useful even when a
	// graha query fails mid-session.
	var chart *horoscope.Horoscope
	chart, err = horoscopeFor(provider, "", localNow(), 120)
	if err != nil {
		logger.Warn("chart computation failed: %v", err)
		chart = nil
	}

	logger.Debug("derivation complete in %v", time.Since(start))
	p.Send(ui.DataUpdateMsg{Snapshot: stateMgr.Snapshot(), Chart: chart})
}

// localNow returns the current wall clock at the configured UTC offset.
func localNow() time.Time {
	t, _ := parseWhen("")
	return t
}
