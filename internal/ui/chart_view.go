package ui

import (
	"bytes"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-panchang/internal/horoscope"
	"github.com/litescript/ls-panchang/internal/render"
)

// ChartModel renders the South Indian rasi chart with a placement
// table alongside.
type ChartModel struct {
	width  int
	height int
	chart  *horoscope.Horoscope
}

// NewChartModel creates the chart sub-model.
func NewChartModel() ChartModel {
	return ChartModel{}
}

// SetSize updates the available area.
func (m ChartModel) SetSize(width, height int) ChartModel {
	m.width = width
	m.height = height
	return m
}

// UpdateChart installs a freshly computed horoscope.
func (m ChartModel) UpdateChart(h *horoscope.Horoscope) ChartModel {
	m.chart = h
	return m
}

// Update implements the sub-model contract.
func (m ChartModel) Update(msg tea.Msg) (ChartModel, tea.Cmd) {
	return m, nil
}

// View renders the chart grid beside the graha table.
func (m ChartModel) View() string {
	if m.chart == nil {
		return "  Waiting for chart..."
	}

	grid := m.renderGrid()
	table := m.renderPlacements()

	if m.width < lipgloss.Width(grid)+lipgloss.Width(table)+4 {
		return grid
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, grid, "  ", table)
}

func (m ChartModel) renderGrid() string {
	var buf bytes.Buffer
	render.WriteSouthIndianChart(&buf, m.chart)

	gridStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#E5E7EB"))
	title := panelTitleStyle.Render("Rasi Chart") + "  " +
		limbLabelStyle.Render(fmt.Sprintf("lagna %s %.2f°", m.chart.AscSign, m.chart.AscDegree))

	return title + "\n" + gridStyle.Render(strings.TrimRight(buf.String(), "\n"))
}

func (m ChartModel) renderPlacements() string {
	retroStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#E84A27"))

	var b strings.Builder
	b.WriteString(panelTitleStyle.Render("Grahas") + "  " +
		limbLabelStyle.Render(fmt.Sprintf("ayanamsa %.4f° (%s)", m.chart.Ayanamsa, m.chart.Provider)))
	b.WriteString("\n\n")

	b.WriteString(limbLabelStyle.Render(fmt.Sprintf("%-9s %-9s %8s %6s\n",
		"Graha", "Rasi", "Degree", "House")))

	for _, p := range m.chart.Placements {
		line := fmt.Sprintf("%-9s %-9s %7.2f° %6d",
			p.Body, p.Sign, p.DegreeInSign, p.House)
		if p.Retrograde {
			b.WriteString(limbValueStyle.Render(line) + retroStyle.Render(" R"))
		} else {
			b.WriteString(limbValueStyle.Render(line))
		}
		b.WriteString("\n")
	}

	return panelStyle.Render(b.String())
}
