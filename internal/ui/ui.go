// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-panchang/internal/horoscope"
	"github.com/litescript/ls-panchang/internal/state"
	"github.com/litescript/ls-panchang/internal/version"
)

// ViewMode represents the current UI view.
type ViewMode int

const (
	ViewPanchang ViewMode = iota
	ViewChart
	ViewDasa
)

// Msg types for Bubble Tea
type (
	// TickMsg triggers periodic UI updates.
	TickMsg time.Time

	// AnimTickMsg triggers fast animation updates.
	AnimTickMsg time.Time

	// DataUpdateMsg signals a freshly derived almanac and chart.
	DataUpdateMsg struct {
		Snapshot state.Snapshot
		Chart    *horoscope.Horoscope
	}

	// ErrorMsg signals a derivation error.
	ErrorMsg struct {
		Error error
	}
)

// Model is the root Bubble Tea model.
type Model struct {
	state *state.Manager

	// UI state
	viewMode ViewMode
	width    int
	height   int
	ready    bool
	animTick int

	// Sub-models
	panchangView PanchangModel
	chartView    ChartModel
	dasaView     DasaModel

	// Data snapshot (updated on DataUpdateMsg)
	snapshot state.Snapshot
}

// New creates a new root UI model.
func New(stateMgr *state.Manager) Model {
	return Model{
		state:        stateMgr,
		viewMode:     ViewPanchang,
		panchangView: NewPanchangModel(),
		chartView:    NewChartModel(),
		dasaView:     NewDasaModel(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), animTickCmd())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "1", "p":
			m.viewMode = ViewPanchang
		case "2", "c":
			m.viewMode = ViewChart
		case "3", "v":
			m.viewMode = ViewDasa

		case "tab":
			m.viewMode = (m.viewMode + 1) % 3

		default:
			cmds = append(cmds, m.updateActiveView(msg))
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		// Logo takes ~10 lines, footer ~2 lines
		contentHeight := msg.Height - 12
		m.panchangView = m.panchangView.SetSize(msg.Width, contentHeight)
		m.chartView = m.chartView.SetSize(msg.Width, contentHeight)
		m.dasaView = m.dasaView.SetSize(msg.Width, contentHeight)

	case TickMsg:
		cmds = append(cmds, tickCmd())
		m.snapshot = m.state.Snapshot()
		m.panchangView = m.panchangView.UpdateData(m.snapshot)

	case AnimTickMsg:
		cmds = append(cmds, animTickCmd())
		m.animTick++

	case DataUpdateMsg:
		m.snapshot = msg.Snapshot
		m.panchangView = m.panchangView.UpdateData(m.snapshot)
		if msg.Chart != nil {
			m.chartView = m.chartView.UpdateChart(msg.Chart)
			m.dasaView = m.dasaView.UpdateChart(msg.Chart)
		}

	case ErrorMsg:
		m.panchangView = m.panchangView.SetError(msg.Error)

	default:
		cmds = append(cmds, m.updateActiveView(msg))
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) updateActiveView(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.viewMode {
	case ViewPanchang:
		m.panchangView, cmd = m.panchangView.Update(msg)
	case ViewChart:
		m.chartView, cmd = m.chartView.Update(msg)
	case ViewDasa:
		m.dasaView, cmd = m.dasaView.Update(msg)
	}
	return cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var content string
	switch m.viewMode {
	case ViewPanchang:
		content = m.panchangView.View()
	case ViewChart:
		content = m.chartView.View()
	case ViewDasa:
		content = m.dasaView.View()
	}

	return m.renderHeader() + "\n" + content + "\n" + m.renderFooter()
}

func (m Model) renderHeader() string {
	return m.renderLogo() + m.renderTabs() + "\n"
}

func (m Model) renderLogo() string {
	// ASCII art with smooth truecolor gradient
	logo := []string{
		`  ██████╗  █████╗ ███╗   ██╗ ██████╗██╗  ██╗ █████╗ ███╗   ██╗ ██████╗ `,
		`  ██╔══██╗██╔══██╗████╗  ██║██╔════╝██║  ██║██╔══██╗████╗  ██║██╔════╝ `,
		`  ██████╔╝███████║██╔██╗ ██║██║     ███████║███████║██╔██╗ ██║██║  ███╗`,
		`  ██╔═══╝ ██╔══██║██║╚██╗██║██║     ██╔══██║██╔══██║██║╚██╗██║██║   ██║`,
		`  ██║     ██║  ██║██║ ╚████║╚██████╗██║  ██║██║  ██║██║ ╚████║╚██████╔╝`,
		`  ╚═╝     ╚═╝  ╚═╝╚═╝  ╚═══╝ ╚═════╝╚═╝  ╚═╝╚═╝  ╚═╝╚═╝  ╚═══╝ ╚═════╝ `,
	}

	var b strings.Builder
	b.WriteString("\n")

	for row, line := range logo {
		runes := []rune(line)
		for col, r := range runes {
			color := gradientColor(col, row, len(runes), len(logo))
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
			b.WriteString(style.Render(string(r)))
		}
		b.WriteString("\n")
	}

	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	b.WriteString(muted.Render("  Tamil Almanac · Rasi Chart · Vimshottari Dasa"))
	b.WriteString("\n")
	b.WriteString(muted.Render(fmt.Sprintf("  (c) 2025 litescript.net | v%s", version.Version)))
	b.WriteString("\n\n")

	return b.String()
}

// gradientColor returns a hex color for a position in the logo
// gradient: a sunrise sweep from gold through orange to crimson,
// fading darker toward the bottom rows.
func gradientColor(col, row, width, height int) string {
	xRatio := float64(col) / float64(width)
	yRatio := float64(row) / float64(height)

	// Gold (#F59E0B) -> Orange (#F97316) -> Crimson (#DC2626)
	var r, g, b float64
	if xRatio < 0.5 {
		t := xRatio / 0.5
		r = 245 + t*(249-245)
		g = 158 + t*(115-158)
		b = 11 + t*(22-11)
	} else {
		t := (xRatio - 0.5) / 0.5
		r = 249 + t*(220-249)
		g = 115 + t*(38-115)
		b = 22 + t*(38-22)
	}

	factor := 1.0 - yRatio*0.45
	ri := clamp8(int(r * factor))
	gi := clamp8(int(g * factor))
	bi := clamp8(int(b * factor))

	return fmt.Sprintf("#%02X%02X%02X", ri, gi, bi)
}

func clamp8(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

func (m Model) renderTabs() string {
	tabs := []string{"[1] Panchangam", "[2] Rasi Chart", "[3] Dasa"}
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	var parts []string
	for i, tab := range tabs {
		if ViewMode(i) == m.viewMode {
			parts = append(parts, activeStyle.Render("▶ "+tab))
		} else {
			parts = append(parts, dimStyle.Render("  "+tab))
		}
	}
	return "  " + strings.Join(parts, "  ")
}

func (m Model) renderFooter() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#E84A27"))
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#F97316"))

	spinnerFrames := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	spinner := spinnerFrames[m.animTick%len(spinnerFrames)]

	var status string
	if m.snapshot.LastError != nil {
		status = errorStyle.Render("ERROR: " + m.snapshot.LastError.Error())
	} else if !m.snapshot.LastUpdate.IsZero() {
		countdown := time.Until(m.snapshot.NextRefresh).Round(time.Second)
		if countdown < 0 {
			countdown = 0
		}
		status = accentStyle.Render(spinner) + dimStyle.Render(fmt.Sprintf(" refresh in %ds", int(countdown.Seconds())))
		if m.snapshot.DeriveTime > 0 {
			status += dimStyle.Render(" (" + m.snapshot.DeriveTime.Round(time.Millisecond).String() + ")")
		}
	} else {
		status = accentStyle.Render(spinner) + dimStyle.Render(" Deriving almanac...")
	}

	var help string
	switch m.viewMode {
	case ViewDasa:
		help = dimStyle.Render("↑↓: period | b: bhuktis | tab: switch view")
	default:
		help = dimStyle.Render("1/2/3: views | tab: switch view | q: quit")
	}

	return "  " + status + "  " + dimStyle.Render("|") + "  " + help
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func animTickCmd() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg {
		return AnimTickMsg(t)
	})
}

// SendDataUpdate creates a command that sends a data update message.
func SendDataUpdate(snapshot state.Snapshot, chart *horoscope.Horoscope) tea.Cmd {
	return func() tea.Msg {
		return DataUpdateMsg{Snapshot: snapshot, Chart: chart}
	}
}

// SendError creates a command that sends an error message.
func SendError(err error) tea.Cmd {
	return func() tea.Msg {
		return ErrorMsg{Error: err}
	}
}
