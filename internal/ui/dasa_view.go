package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-panchang/internal/horoscope"
	"github.com/litescript/ls-panchang/internal/timeutil"
)

// DasaModel renders the Vimshottari timeline: major periods on the
// left, the selected period's bhuktis on the right.
type DasaModel struct {
	width  int
	height int
	chart  *horoscope.Horoscope

	cursor      int
	showBhuktis bool
}

// NewDasaModel creates the dasa sub-model.
func NewDasaModel() DasaModel {
	return DasaModel{showBhuktis: true}
}

// SetSize updates the available area.
func (m DasaModel) SetSize(width, height int) DasaModel {
	m.width = width
	m.height = height
	return m
}

// UpdateChart installs a freshly computed horoscope.
func (m DasaModel) UpdateChart(h *horoscope.Horoscope) DasaModel {
	m.chart = h
	if h != nil && m.cursor >= len(h.Dasas) {
		m.cursor = 0
	}
	return m
}

// Update handles period selection keys.
func (m DasaModel) Update(msg tea.Msg) (DasaModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || m.chart == nil {
		return m, nil
	}

	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.chart.Dasas)-1 {
			m.cursor++
		}
	case "b":
		m.showBhuktis = !m.showBhuktis
	}
	return m, nil
}

// View renders the timeline.
func (m DasaModel) View() string {
	if m.chart == nil {
		return "  Waiting for chart..."
	}
	if len(m.chart.Dasas) == 0 {
		return "  No dasa timeline computed"
	}

	periods := m.renderPeriods()
	if !m.showBhuktis {
		return periods
	}

	bhuktis := m.renderBhuktis()
	if m.width < lipgloss.Width(periods)+lipgloss.Width(bhuktis)+4 {
		return periods
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, periods, "  ", bhuktis)
}

func (m DasaModel) renderPeriods() string {
	selectedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")).Bold(true)

	var b strings.Builder
	b.WriteString(panelTitleStyle.Render("Vimshottari Dasa") + "\n\n")

	for i, d := range m.chart.Dasas {
		line := fmt.Sprintf("%-8s %s → %s  %6.2f y",
			d.Lord,
			timeutil.FromJulianDay(d.StartJD).Format("2006-01-02"),
			timeutil.FromJulianDay(d.EndJD).Format("2006-01-02"),
			d.Years)
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("▶ " + line))
		} else {
			b.WriteString(limbValueStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	return panelStyle.Render(b.String())
}

func (m DasaModel) renderBhuktis() string {
	d := m.chart.Dasas[m.cursor]

	var b strings.Builder
	b.WriteString(panelTitleStyle.Render(fmt.Sprintf("%s Bhuktis", d.Lord)) + "\n\n")

	for _, bh := range d.Bhuktis {
		b.WriteString(limbValueStyle.Render(fmt.Sprintf("%-8s %s → %s  %5.0f d",
			bh.Lord,
			timeutil.FromJulianDay(bh.StartJD).Format("2006-01-02"),
			timeutil.FromJulianDay(bh.EndJD).Format("2006-01-02"),
			bh.Days)))
		b.WriteString("\n")
	}

	return panelStyle.Render(b.String())
}
