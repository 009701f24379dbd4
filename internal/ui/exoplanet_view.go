package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-orrery/internal/catalog"
)

// ExoplanetModel browses the exoplanet system catalog: a system list
// on the left, the selected system's planets on the right.
type ExoplanetModel struct {
	width  int
	height int

	systemIdx int
	planetIdx int
}

// NewExoplanetModel creates a new exoplanet browser model.
func NewExoplanetModel() ExoplanetModel {
	return ExoplanetModel{}
}

// SetSize updates the viewport size.
func (m ExoplanetModel) SetSize(width, height int) ExoplanetModel {
	m.width = width
	m.height = height
	return m
}

// Update handles messages.
func (m ExoplanetModel) Update(msg tea.Msg) (ExoplanetModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "up":
		if m.systemIdx > 0 {
			m.systemIdx--
			m.planetIdx = 0
		}
	case "down":
		if m.systemIdx < len(catalog.Systems)-1 {
			m.systemIdx++
			m.planetIdx = 0
		}
	case "k":
		if m.planetIdx > 0 {
			m.planetIdx--
		}
	case "j":
		if sys := m.System(); m.planetIdx < len(sys.Planets)-1 {
			m.planetIdx++
		}
	case "home":
		m.systemIdx = 0
		m.planetIdx = 0
	}

	return m, nil
}

// System returns the selected system.
func (m ExoplanetModel) System() catalog.System {
	if m.systemIdx < 0 || m.systemIdx >= len(catalog.Systems) {
		return catalog.Systems[0]
	}
	return catalog.Systems[m.systemIdx]
}

// View renders the exoplanet browser.
func (m ExoplanetModel) View() string {
	if len(catalog.Systems) == 0 {
		return "No exoplanet systems in catalog"
	}

	left := m.renderSystemList()
	right := m.renderSystemDetail()
	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
}

func (m ExoplanetModel) renderSystemList() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Systems (%d, %d planets)",
		len(catalog.Systems), catalog.PlanetCount())))
	b.WriteString("\n")

	for i, sys := range catalog.Systems {
		row := fmt.Sprintf(" %-12s %3dly %2dp ",
			truncate(sys.Name, 12), int(sys.DistanceLY+0.5), len(sys.Planets))
		if i == m.systemIdx {
			b.WriteString(selectedRowStyle.Render(row))
		} else {
			b.WriteString(rowStyle.Render(row))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (m ExoplanetModel) renderSystemDetail() string {
	var b strings.Builder
	sys := m.System()

	nameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(sys.StarColor)).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	b.WriteString(nameStyle.Render("✦ " + sys.Name))
	b.WriteString("  " + labelStyle.Render(sys.Star))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Distance: "))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%.1f ly", sys.DistanceLY)))
	b.WriteString("   " + labelStyle.Render("Star radius: "))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%.3f R☉", sys.StarRadiusSuns)))
	b.WriteString("   " + labelStyle.Render("Habitable zone: "))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%.3g–%.3g AU", sys.HabInnerAU, sys.HabOuterAU)))
	b.WriteString("\n\n")

	header := fmt.Sprintf("%-14s %8s %10s %10s %7s  %-15s %3s",
		"Planet", "R (R⊕)", "a (AU)", "Period d", "Teq K", "Method", "HZ")
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")

	for i, p := range sys.Planets {
		teq := "—"
		if p.EquilibriumK > 0 {
			teq = fmt.Sprintf("%.0f", p.EquilibriumK)
		}
		hz := ""
		if p.SemiMajorAU >= sys.HabInnerAU && p.SemiMajorAU <= sys.HabOuterAU {
			hz = " ✓"
		}

		row := fmt.Sprintf("%-14s %8.2f %10.4f %10.4g %7s  %-15s %3s",
			truncate(p.Name, 14), p.RadiusEarths, p.SemiMajorAU, p.PeriodDays, teq, p.Method, hz)

		if i == m.planetIdx {
			b.WriteString(selectedRowStyle.Render(row))
		} else {
			b.WriteString(rowStyle.Render(row))
		}
		b.WriteString("\n")
	}

	// Orbit strip: planets placed along a log-ish scale out to the
	// outermost orbit, habitable zone marked under it.
	b.WriteString("\n")
	b.WriteString(m.renderOrbitStrip(sys))

	return b.String()
}

// renderOrbitStrip draws a one-line scale view of the system's orbits.
func (m ExoplanetModel) renderOrbitStrip(sys catalog.System) string {
	width := m.width/2 - 6
	if width < 20 {
		width = 20
	}

	outer := 0.0
	for _, p := range sys.Planets {
		if p.SemiMajorAU > outer {
			outer = p.SemiMajorAU
		}
	}
	if sys.HabOuterAU > outer {
		outer = sys.HabOuterAU
	}
	if outer <= 0 {
		return ""
	}

	strip := make([]rune, width)
	for i := range strip {
		strip[i] = '─'
	}

	col := func(au float64) int {
		c := int(au / outer * float64(width-1))
		if c < 0 {
			c = 0
		}
		if c >= width {
			c = width - 1
		}
		return c
	}

	hzLo, hzHi := col(sys.HabInnerAU), col(sys.HabOuterAU)
	for i := hzLo; i <= hzHi && i < width; i++ {
		strip[i] = '═'
	}
	for i, p := range sys.Planets {
		g := '●'
		if i == m.planetIdx {
			g = '◉'
		}
		strip[col(p.SemiMajorAU)] = g
	}

	starStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(sys.StarColor))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return starStyle.Render("✦") + dimStyle.Render(string(strip)) +
		dimStyle.Render(fmt.Sprintf(" %.3g AU", outer))
}
