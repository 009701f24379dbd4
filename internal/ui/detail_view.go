package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-orrery/internal/catalog"
	"github.com/litescript/ls-orrery/internal/state"
)

// DetailModel shows the view center's layer stack, its neighborhood
// markers with range rates, and the rebuild event log.
type DetailModel struct {
	width    int
	height   int
	snapshot state.Snapshot

	scroll     int  // first visible layer row
	showEvents bool // toggle the event panel

	// Estimated range rates (km/s) and range sample histories (AU)
	// keyed by body code, supplied by the root model from the state
	// manager's histories.
	rangeRates   map[string]float64
	rangeHistory map[string][]float64
}

// sparklineBlocks are the Unicode block characters for sparklines.
var sparklineBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// NewDetailModel creates a new detail view model.
func NewDetailModel() DetailModel {
	return DetailModel{showEvents: true}
}

// SetSize updates the viewport size.
func (m DetailModel) SetSize(width, height int) DetailModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData updates the model with new data.
func (m DetailModel) UpdateData(snapshot state.Snapshot, rates map[string]float64, history map[string][]float64) DetailModel {
	m.snapshot = snapshot
	m.rangeRates = rates
	m.rangeHistory = history
	if s := snapshot.Scene; s != nil && m.scroll >= len(s.Traces) {
		m.scroll = 0
	}
	return m
}

// Update handles messages.
func (m DetailModel) Update(msg tea.Msg) (DetailModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.scroll > 0 {
			m.scroll--
		}
	case "down", "j":
		if s := m.snapshot.Scene; s != nil && m.scroll < len(s.Traces)-1 {
			m.scroll++
		}
	case "e":
		m.showEvents = !m.showEvents
	}

	return m, nil
}

// View renders the detail view.
func (m DetailModel) View() string {
	s := m.snapshot.Scene
	if s == nil {
		return "Waiting for first scene build..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader(s.Center))
	b.WriteString("\n")
	b.WriteString(m.renderLayerTable())
	b.WriteString("\n")
	b.WriteString(m.renderNeighborhood())
	if m.showEvents {
		b.WriteString("\n")
		b.WriteString(m.renderEvents())
	}
	return b.String()
}

func (m DetailModel) renderHeader(center catalog.Object) string {
	var b strings.Builder

	nameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	b.WriteString(nameStyle.Render(center.Name))
	b.WriteString("  " + labelStyle.Render(center.Kind.String()))
	if center.RadiusKm > 0 {
		b.WriteString("   " + labelStyle.Render("Radius: "))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%.5g km", center.RadiusKm)))
	}
	if center.AxialTiltDeg != 0 {
		b.WriteString("   " + labelStyle.Render("Tilt: "))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%.1f°", center.AxialTiltDeg)))
	}
	if center.Blurb != "" {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render(center.Blurb))
	}
	b.WriteString("\n")
	return b.String()
}

func (m DetailModel) renderLayerTable() string {
	var b strings.Builder
	s := m.snapshot.Scene

	b.WriteString(titleStyle.Render(fmt.Sprintf("Shell Layers (%d traces, %d points)",
		len(s.Traces), s.TotalPoints())))
	b.WriteString("\n")

	header := fmt.Sprintf("%-26s %8s %8s %-7s %7s  %s",
		"Layer", "Points", "Max AU", "Swatch", "Opacity", "Description")
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")

	maxRows := m.layerRows()
	endIdx := m.scroll + maxRows
	if endIdx > len(s.Traces) {
		endIdx = len(s.Traces)
	}

	for i := m.scroll; i < endIdx; i++ {
		tr := s.Traces[i]
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(tr.Color)).Render("██████")

		hover := tr.Hover
		if hover == "" && len(tr.HoverPer) > 0 {
			hover = tr.HoverPer[0]
		}

		row := fmt.Sprintf("%-26s %8d %8.4f %s %6.0f%%  %s",
			truncate(tr.Name, 26),
			tr.Cloud.Len(),
			tr.Cloud.MaxRadius(),
			swatch,
			tr.Opacity*100,
			truncate(hover, maxInt(10, m.width-70)),
		)
		b.WriteString(rowStyle.Render(row))
		b.WriteString("\n")
	}

	if len(s.Traces) > maxRows {
		b.WriteString(fmt.Sprintf("  Showing %d-%d of %d layers\n",
			m.scroll+1, endIdx, len(s.Traces)))
	}

	return b.String()
}

// layerRows returns how many layer rows fit the current height,
// leaving room for header, neighborhood, and events panels.
func (m DetailModel) layerRows() int {
	rows := m.height - 16
	if rows < 4 {
		rows = 4
	}
	return rows
}

func (m DetailModel) renderNeighborhood() string {
	var b strings.Builder
	s := m.snapshot.Scene

	b.WriteString(titleStyle.Render("Neighborhood"))
	b.WriteString("\n")

	header := fmt.Sprintf("%-16s %-13s %12s %12s %10s",
		"Body", "Kind", "Range AU", "Rate km/s", "History")
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")

	shown := 0
	for _, mk := range s.Markers {
		if mk.Code == s.Center.Code {
			continue
		}
		rate := "—"
		if v, ok := m.rangeRates[mk.Code]; ok {
			rate = fmt.Sprintf("%+.2f", v)
		}
		spark := m.renderRangeSparkline(mk.Code)

		row := fmt.Sprintf("%-16s %-13s %12.4f %12s %10s",
			truncate(mk.Name, 16), mk.Kind.String(), mk.RangeAU(), rate, spark)
		b.WriteString(rowStyle.Render(row))
		b.WriteString("\n")

		shown++
		if shown >= 8 {
			b.WriteString(fmt.Sprintf("  … %d more in catalog view\n", len(s.Markers)-1-shown))
			break
		}
	}
	if shown == 0 {
		b.WriteString("  No neighboring bodies resolved\n")
	}

	return b.String()
}

// renderRangeSparkline draws the recent build-to-build range samples
// for one body as a block sparkline.
func (m DetailModel) renderRangeSparkline(code string) string {
	hist := m.bodyRanges(code)
	if len(hist) < 2 {
		return ""
	}

	lo, hi := hist[0], hist[0]
	for _, v := range hist {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	var b strings.Builder
	for _, v := range hist {
		idx := 0
		if hi > lo {
			idx = int((v - lo) / (hi - lo) * float64(len(sparklineBlocks)-1))
		}
		if idx >= len(sparklineBlocks) {
			idx = len(sparklineBlocks) - 1
		}
		b.WriteRune(sparklineBlocks[idx])
	}
	return b.String()
}

// bodyRanges resamples a body's range history to sparkline width.
func (m DetailModel) bodyRanges(code string) []float64 {
	const width = 10
	hist := m.rangeHistory[code]
	if len(hist) <= width {
		return hist
	}
	vals := make([]float64, 0, width)
	step := float64(len(hist)-1) / float64(width-1)
	for i := 0; i < width; i++ {
		vals = append(vals, hist[int(float64(i)*step)])
	}
	return vals
}

func (m DetailModel) renderEvents() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Pipeline Events"))
	b.WriteString("\n")

	events := m.snapshot.Events
	if len(events) == 0 {
		b.WriteString(dimRowStyle.Render("  No events yet"))
		b.WriteString("\n")
		return b.String()
	}

	start := 0
	if len(events) > 5 {
		start = len(events) - 5
	}
	for _, e := range events[start:] {
		ts := e.Timestamp.Format("15:04:05")
		line := fmt.Sprintf("  %s  %-16s %s", ts, string(e.Type), eventDetail(e))
		style := dimRowStyle
		if e.Type == state.EventBuildFailed {
			style = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	return b.String()
}

func eventDetail(e state.Event) string {
	switch e.Type {
	case state.EventCenterChange:
		return e.OldCenter + " → " + e.Center
	default:
		if e.Detail != "" {
			return e.Center + ": " + e.Detail
		}
		return e.Center
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
