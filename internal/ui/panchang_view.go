package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-panchang/internal/state"
	"github.com/litescript/ls-panchang/internal/timeutil"
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("60")).
			Padding(0, 1)

	panelTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F59E0B")).
			Bold(true)

	limbLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	limbValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#E5E7EB"))
	limbTamilStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F97316"))
	eventTimeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	eventTypeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B"))
)

// PanchangModel renders the live almanac dashboard.
type PanchangModel struct {
	width    int
	height   int
	snapshot state.Snapshot
	err      error
}

// NewPanchangModel creates the dashboard sub-model.
func NewPanchangModel() PanchangModel {
	return PanchangModel{}
}

// SetSize updates the available area.
func (m PanchangModel) SetSize(width, height int) PanchangModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData installs a fresh snapshot.
func (m PanchangModel) UpdateData(snap state.Snapshot) PanchangModel {
	m.snapshot = snap
	if snap.LastError == nil {
		m.err = nil
	}
	return m
}

// SetError records a derivation error for display.
func (m PanchangModel) SetError(err error) PanchangModel {
	m.err = err
	return m
}

// Update implements the sub-model contract. The dashboard has no keys
// of its own.
func (m PanchangModel) Update(msg tea.Msg) (PanchangModel, tea.Cmd) {
	return m, nil
}

// View renders the five limbs beside the recent transition log.
func (m PanchangModel) View() string {
	if m.snapshot.Current == nil {
		if m.err != nil {
			return "  derivation failed: " + m.err.Error()
		}
		return "  Deriving almanac..."
	}

	limbs := m.renderLimbs()
	events := m.renderEvents()

	if m.width < lipgloss.Width(limbs)+lipgloss.Width(events)+4 {
		return limbs
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, limbs, " ", events)
}

func (m PanchangModel) renderLimbs() string {
	pr := m.snapshot.Current
	ts := timeutil.FromJulianDay(pr.JD)

	var b strings.Builder
	b.WriteString(panelTitleStyle.Render("Panchangam") + "  " +
		limbLabelStyle.Render(ts.Format("2006-01-02 15:04 UT")) + "\n\n")

	row := func(label, value, tamil string) {
		b.WriteString(fmt.Sprintf("%s %s",
			limbLabelStyle.Render(fmt.Sprintf("%-12s", label)),
			limbValueStyle.Render(value)))
		if tamil != "" {
			b.WriteString(" " + limbTamilStyle.Render("("+tamil+")"))
		}
		b.WriteString("\n")
	}

	row("Vara", pr.VaraName(), pr.VaraTamil())
	row("Tithi", fmt.Sprintf("%s %s (%d/30)", pr.Paksha, pr.TithiName(), pr.Tithi), "")
	row("Nakshatra", fmt.Sprintf("%s, pada %d", pr.NakshatraName(), pr.Pada), pr.NakshatraTamil())
	row("Yoga", fmt.Sprintf("%s (%d/27)", pr.YogaName(), pr.Yoga), "")
	row("Karana", fmt.Sprintf("%s (slot %d)", pr.KaranaName(), pr.KaranaSlot), "")
	row("Tamil month", pr.TamilMonthName(), "")

	b.WriteString("\n")
	b.WriteString(limbLabelStyle.Render(fmt.Sprintf("%-12s", "Moon")))
	b.WriteString(limbValueStyle.Render(fmt.Sprintf(" %s  %s %.0f%%",
		pr.PhaseName(), moonBar(pr.Illumination), pr.Illumination*100)))

	return panelStyle.Render(b.String())
}

// moonBar draws a 12-cell illumination gauge.
func moonBar(frac float64) string {
	const cells = 12
	filled := int(frac*cells + 0.5)
	if filled > cells {
		filled = cells
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", cells-filled) + "]"
}

func (m PanchangModel) renderEvents() string {
	var b strings.Builder
	b.WriteString(panelTitleStyle.Render("Transitions") + "\n\n")

	events := m.snapshot.Events
	if len(events) == 0 {
		b.WriteString(limbLabelStyle.Render("No limb changes observed yet"))
	} else {
		// Newest first, capped to the panel height.
		max := 8
		if len(events) < max {
			max = len(events)
		}
		for i := 0; i < max; i++ {
			e := events[len(events)-1-i]
			b.WriteString(fmt.Sprintf("%s %s %s\n",
				eventTimeStyle.Render(e.Timestamp.Format("15:04")),
				eventTypeStyle.Render(fmt.Sprintf("%-17s", string(e.Type))),
				limbValueStyle.Render(e.Old+" → "+e.New)))
		}
	}

	return panelStyle.Render(b.String())
}
