// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.4.0"

// Milestones:
// 0.4.0 - Vimshottari timeline view, bhukti drill-down, watch mode
// 0.3.0 - JPL Horizons ephemeris integration, --ephem flag, fixed fallback
// 0.2.0 - Whole-sign houses, South Indian chart rendering, JSON export
// 0.1.0 - Initial release: panchangam derivation, TUI dashboard, event tracking
