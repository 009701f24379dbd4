// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-orrery/internal/state"
	"github.com/litescript/ls-orrery/internal/version"
)

// ViewMode represents the current UI view.
type ViewMode int

const (
	ViewOrrery ViewMode = iota
	ViewCatalog
	ViewDetail
	ViewExoplanets
)

// Msg types for Bubble Tea
type (
	// TickMsg triggers periodic UI updates.
	TickMsg time.Time

	// AnimTickMsg triggers fast animation updates.
	AnimTickMsg time.Time

	// SceneUpdateMsg signals a fresh scene build is available.
	SceneUpdateMsg struct {
		Snapshot state.Snapshot
	}

	// ErrorMsg signals a scene build error.
	ErrorMsg struct {
		Error error
	}

	// RecenterMsg requests rebuilding the scene around a new center body.
	RecenterMsg struct {
		Code string
	}

	// EpochStepMsg requests shifting the scene epoch by a duration.
	// Zero resets to live time.
	EpochStepMsg struct {
		Step time.Duration
	}
)

// Model is the root Bubble Tea model.
type Model struct {
	// Dependencies
	state   *state.Manager
	rebuild func() // wakes the background rebuild loop; may be nil

	// UI state
	viewMode  ViewMode
	width     int
	height    int
	ready     bool
	statusMsg string
	animTick  int

	// Sub-models
	orrery     OrreryModel
	catalog    CatalogModel
	detail     DetailModel
	exoplanets ExoplanetModel

	// Data snapshot (updated on SceneUpdateMsg)
	snapshot state.Snapshot
}

// New creates the root UI model. rebuild is called whenever the user
// changes the view selection (center or epoch) so the background loop
// can rebuild immediately instead of waiting for its ticker.
func New(stateMgr *state.Manager, rebuild func()) Model {
	return Model{
		state:      stateMgr,
		rebuild:    rebuild,
		viewMode:   ViewOrrery,
		orrery:     NewOrreryModel(),
		catalog:    NewCatalogModel(),
		detail:     NewDetailModel(),
		exoplanets: NewExoplanetModel(),
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
		// The catalog's filter prompt takes over the keyboard while
		// active; global keys would eat the filter text.
		if m.viewMode == ViewCatalog && m.catalog.Filtering() {
			cmds = append(cmds, m.updateActiveView(msg))
			return m, tea.Batch(cmds...)
		}

		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "1", "o":
			m.viewMode = ViewOrrery
		case "2", "c":
			m.viewMode = ViewCatalog
		case "3", "d":
			m.viewMode = ViewDetail
		case "4", "x":
			m.viewMode = ViewExoplanets

		case "tab":
			m.viewMode = (m.viewMode + 1) % 4

		case "[":
			cmds = append(cmds, sendEpochStep(-24*time.Hour))
		case "]":
			cmds = append(cmds, sendEpochStep(24*time.Hour))
		case "{":
			cmds = append(cmds, sendEpochStep(-30*24*time.Hour))
		case "}":
			cmds = append(cmds, sendEpochStep(30*24*time.Hour))
		case "n":
			cmds = append(cmds, sendEpochStep(0))

		default:
			cmds = append(cmds, m.updateActiveView(msg))
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		// Logo takes ~8 lines, footer ~2 lines
		contentHeight := msg.Height - 11
		m.orrery = m.orrery.SetSize(msg.Width, contentHeight)
		m.catalog = m.catalog.SetSize(msg.Width, contentHeight)
		m.detail = m.detail.SetSize(msg.Width, contentHeight)
		m.exoplanets = m.exoplanets.SetSize(msg.Width, contentHeight)

	case TickMsg:
		cmds = append(cmds, tickCmd())
		m.snapshot = m.state.Snapshot()

	case AnimTickMsg:
		cmds = append(cmds, animTickCmd())
		m.animTick++

	case SceneUpdateMsg:
		m.snapshot = msg.Snapshot
		m.orrery = m.orrery.UpdateData(m.snapshot)
		m.catalog = m.catalog.UpdateData(m.snapshot)
		rates, history := m.rangeStats()
		m.detail = m.detail.UpdateData(m.snapshot, rates, history)
		m.statusMsg = ""

	case RecenterMsg:
		if m.state.SetCenter(msg.Code) {
			m.statusMsg = "Rebuilding around " + msg.Code + "..."
			m.viewMode = ViewOrrery
			if m.rebuild != nil {
				m.rebuild()
			}
		}

	case EpochStepMsg:
		if msg.Step == 0 {
			m.state.SetEpoch(time.Time{})
			m.statusMsg = "Epoch reset to live"
		} else {
			base := m.state.Epoch()
			if base.IsZero() {
				base = time.Now().UTC()
			}
			next := base.Add(msg.Step)
			m.state.SetEpoch(next)
			m.statusMsg = "Epoch " + next.Format("2006-01-02 15:04 UTC")
		}
		if m.rebuild != nil {
			m.rebuild()
		}

	case ErrorMsg:
		m.orrery = m.orrery.SetError(msg.Error)

	default:
		cmds = append(cmds, m.updateActiveView(msg))
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) updateActiveView(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.viewMode {
	case ViewOrrery:
		m.orrery, cmd = m.orrery.Update(msg)
	case ViewCatalog:
		m.catalog, cmd = m.catalog.Update(msg)
	case ViewDetail:
		m.detail, cmd = m.detail.Update(msg)
	case ViewExoplanets:
		m.exoplanets, cmd = m.exoplanets.Update(msg)
	}
	return cmd
}

// rangeStats collects the estimated range rate and the range sample
// history for every marker of the current scene, keyed by body code.
func (m Model) rangeStats() (map[string]float64, map[string][]float64) {
	rates := make(map[string]float64)
	history := make(map[string][]float64)
	if m.snapshot.Scene == nil {
		return rates, history
	}
	for _, mk := range m.snapshot.Scene.Markers {
		if v := m.state.EstimateRadialVelocity(mk.Code); v != 0 {
			rates[mk.Code] = v
		}
		if h := m.state.GetBodyHistory(mk.Code); h != nil {
			vals := make([]float64, len(h.RangeHistory))
			for i, s := range h.RangeHistory {
				vals[i] = s.Value
			}
			history[mk.Code] = vals
		}
	}
	return rates, history
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var content string
	switch m.viewMode {
	case ViewOrrery:
		content = m.orrery.View()
	case ViewCatalog:
		content = m.catalog.View()
	case ViewDetail:
		content = m.detail.View()
	case ViewExoplanets:
		content = m.exoplanets.View()
	}

	return m.renderHeader() + "\n" + content + "\n" + m.renderFooter()
}

func (m Model) renderHeader() string {
	return m.renderLogo() + m.renderTabs() + "\n"
}

func (m Model) renderLogo() string {
	// ASCII art with smooth truecolor gradient
	logo := []string{
		`  ██╗     ███████╗       ██████╗ ██████╗ ██████╗ ███████╗██████╗ ██╗   ██╗`,
		`  ██║     ██╔════╝      ██╔═══██╗██╔══██╗██╔══██╗██╔════╝██╔══██╗╚██╗ ██╔╝`,
		`  ██║     ███████╗█████╗██║   ██║██████╔╝██████╔╝█████╗  ██████╔╝ ╚████╔╝ `,
		`  ██║     ╚════██║╚════╝██║   ██║██╔══██╗██╔══██╗██╔══╝  ██╔══██╗  ╚██╔╝  `,
		`  ███████╗███████║      ╚██████╔╝██║  ██║██║  ██║███████╗██║  ██║   ██║   `,
		`  ╚══════╝╚══════╝       ╚═════╝ ╚═╝  ╚═╝╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝   ╚═╝   `,
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
	tagline := fmt.Sprintf("  Solar System Orrery · Procedural Shell Renderer | v%s", version.Version)
	b.WriteString(muted.Render(tagline))
	b.WriteString("\n")

	return b.String()
}

// gradientColor returns a hex color for a position in the logo
// gradient: deep blue through solar gold, brighter at the top.
func gradientColor(col, row, width, height int) string {
	xRatio := float64(col) / float64(width)
	yRatio := float64(row) / float64(height)

	// Night blue (#1E3A8A) -> violet (#7C3AED) -> solar amber (#F59E0B)
	var r, g, b float64
	if xRatio < 0.5 {
		t := xRatio / 0.5
		r = 30 + t*(124-30)
		g = 58 + t*(58-58)
		b = 138 + t*(237-138)
	} else {
		t := (xRatio - 0.5) / 0.5
		r = 124 + t*(245-124)
		g = 58 + t*(158-58)
		b = 237 + t*(11-237)
	}

	brightness := 1.0 - yRatio*0.45
	ri := clampChannel(r * brightness)
	gi := clampChannel(g * brightness)
	bi := clampChannel(b * brightness)

	return fmt.Sprintf("#%02X%02X%02X", ri, gi, bi)
}

func clampChannel(v float64) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return int(v)
}

func (m Model) renderTabs() string {
	tabs := []string{"[1] Orrery", "[2] Catalog", "[3] Layers", "[4] Exoplanets"}
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
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#B45309"))

	spinnerFrames := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	spinner := spinnerFrames[m.animTick%len(spinnerFrames)]

	var status string
	switch {
	case m.snapshot.LastError != nil:
		status = errorStyle.Render("ERROR: " + m.snapshot.LastError.Error())
	case !m.snapshot.LastBuild.IsZero():
		nextBuild := m.snapshot.LastBuild.Add(m.state.RefreshInterval())
		countdown := time.Until(nextBuild).Round(time.Second)
		if countdown < 0 {
			countdown = 0
		}
		status = accentStyle.Render(spinner) + dimStyle.Render(fmt.Sprintf(" rebuild in %ds", int(countdown.Seconds())))
		if m.snapshot.BuildDuration > 0 {
			status += dimStyle.Render(" (" + m.snapshot.BuildDuration.Round(time.Millisecond).String() + ")")
		}
	default:
		status = accentStyle.Render(spinner) + " " + m.renderShimmerText("Building scene...")
	}

	var help string
	switch m.viewMode {
	case ViewOrrery:
		help = dimStyle.Render("j/k: focus | enter: recenter | +/-: zoom | arrows: pan | z: scale | l: labels | [/]: ±day")
	case ViewCatalog:
		help = dimStyle.Render("↑↓: navigate | /: filter | enter: center body")
	case ViewDetail:
		help = dimStyle.Render("↑↓: scroll layers | e: events")
	case ViewExoplanets:
		help = dimStyle.Render("↑↓: system | j/k: planet")
	default:
		help = dimStyle.Render("tab: switch view")
	}

	footer := "  " + status + "  " + dimStyle.Render("|") + "  " + help

	if m.statusMsg != "" {
		footer += "\n  " + dimStyle.Render(m.statusMsg)
	}

	return footer
}

// renderShimmerText renders text with a subtle moving shine effect.
func (m Model) renderShimmerText(text string) string {
	runes := []rune(text)
	textLen := len(runes)
	if textLen == 0 {
		return ""
	}

	pos := m.animTick % (textLen + 8)

	var result strings.Builder
	for i, r := range runes {
		dist := i - pos + 4
		if dist < 0 {
			dist = -dist
		}

		// Dim amber base with a warmer moving highlight
		var r8, g8, b8 int
		switch {
		case dist <= 1:
			r8, g8, b8 = 235, 200, 120
		case dist <= 3:
			r8, g8, b8 = 190, 150, 90
		case dist <= 5:
			r8, g8, b8 = 150, 115, 70
		default:
			r8, g8, b8 = 110, 90, 60
		}

		hexColor := fmt.Sprintf("#%02X%02X%02X", r8, g8, b8)
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor))
		result.WriteString(style.Render(string(r)))
	}

	return result.String()
}

func tickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func animTickCmd() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg {
		return AnimTickMsg(t)
	})
}

func sendEpochStep(step time.Duration) tea.Cmd {
	return func() tea.Msg {
		return EpochStepMsg{Step: step}
	}
}
