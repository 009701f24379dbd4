package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-orrery/internal/astro"
	"github.com/litescript/ls-orrery/internal/catalog"
	"github.com/litescript/ls-orrery/internal/scene"
	"github.com/litescript/ls-orrery/internal/state"
)

// LabelMode controls how body labels are displayed.
type LabelMode int

const (
	LabelNone    LabelMode = iota // No labels
	LabelFocused                  // Only the focused body
	LabelAll                      // Every marker
)

// OrreryModel renders the scene's shell traces and body markers
// top-down onto a rune canvas.
type OrreryModel struct {
	width    int
	height   int
	snapshot state.Snapshot
	lastErr  error

	// View state
	focusIdx   int // index into scene markers
	zoomLevel  int // index into zoomLevels
	panX       float64
	panY       float64
	scaleMode  astro.ScaleMode
	labelMode  LabelMode
	userPanned bool // manual pan disables auto-center on zoom
}

// Discrete zoom levels for clean stepping
var zoomLevels = []float64{0.25, 0.5, 0.75, 1.0, 1.5, 2.0, 3.0, 5.0, 10.0}

// NewOrreryModel creates a new orrery view model.
func NewOrreryModel() OrreryModel {
	return OrreryModel{
		zoomLevel: 3, // index of 1.0 in zoomLevels
		scaleMode: astro.ScaleLinear,
		labelMode: LabelFocused,
	}
}

// scale returns the current zoom scale.
func (m OrreryModel) scale() float64 {
	if m.zoomLevel < 0 || m.zoomLevel >= len(zoomLevels) {
		return 1.0
	}
	return zoomLevels[m.zoomLevel]
}

// SetSize updates the viewport size.
func (m OrreryModel) SetSize(width, height int) OrreryModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData updates the model with a fresh scene snapshot.
func (m OrreryModel) UpdateData(snapshot state.Snapshot) OrreryModel {
	prevCenter := ""
	if m.snapshot.Scene != nil {
		prevCenter = m.snapshot.Scene.Center.Code
	}
	m.snapshot = snapshot
	m.lastErr = snapshot.LastError

	if s := snapshot.Scene; s != nil {
		if s.Center.Code != prevCenter {
			// New center: focus it and pick the scale mode that suits
			// the view. Sun-centered spans 30+ AU and wants log
			// compression; body-centered shells want true proportions.
			m.focusIdx = m.markerIndex(s.Center.Code)
			m.panX, m.panY = 0, 0
			m.userPanned = false
			if s.Center.Kind == catalog.KindStar {
				m.scaleMode = astro.ScaleLogR
			} else {
				m.scaleMode = astro.ScaleLinear
			}
		}
		if m.focusIdx >= len(s.Markers) {
			m.focusIdx = 0
		}
	}
	return m
}

// SetError records a build error for display.
func (m OrreryModel) SetError(err error) OrreryModel {
	m.lastErr = err
	return m
}

func (m OrreryModel) markerIndex(code string) int {
	if m.snapshot.Scene == nil {
		return 0
	}
	for i, mk := range m.snapshot.Scene.Markers {
		if mk.Code == code {
			return i
		}
	}
	return 0
}

// Update handles input messages.
func (m OrreryModel) Update(msg tea.Msg) (OrreryModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "j":
			m.focusPrev()
		case "k":
			m.focusNext()

		case "enter":
			if mk := m.FocusedMarker(); mk != nil {
				code := mk.Code
				return m, func() tea.Msg { return RecenterMsg{Code: code} }
			}

		case "up":
			m.panY -= 0.1 / m.scale()
			m.userPanned = true
		case "down":
			m.panY += 0.1 / m.scale()
			m.userPanned = true
		case "left":
			m.panX -= 0.1 / m.scale()
			m.userPanned = true
		case "right":
			m.panX += 0.1 / m.scale()
			m.userPanned = true

		case "f":
			m.centerOnFocused()
			m.userPanned = false

		case "+", "=":
			if m.zoomLevel < len(zoomLevels)-1 {
				m.zoomLevel++
				if !m.userPanned {
					m.centerOnFocused()
				}
			}
		case "-":
			if m.zoomLevel > 0 {
				m.zoomLevel--
				if !m.userPanned {
					m.centerOnFocused()
				}
			}
		case "0":
			m.zoomLevel = 3
			if !m.userPanned {
				m.centerOnFocused()
			}

		case "z":
			m.scaleMode = (m.scaleMode + 1) % 2
			if !m.userPanned {
				m.centerOnFocused()
			}

		case "l":
			m.labelMode = (m.labelMode + 1) % 3

		case "r":
			m.panX, m.panY = 0, 0
			m.zoomLevel = 3
			m.userPanned = false
		}
	}
	return m, nil
}

func (m *OrreryModel) focusNext() {
	n := m.markerCount()
	if n == 0 {
		return
	}
	m.focusIdx = (m.focusIdx + 1) % n
	m.centerOnFocused()
	m.userPanned = false
}

func (m *OrreryModel) focusPrev() {
	n := m.markerCount()
	if n == 0 {
		return
	}
	m.focusIdx--
	if m.focusIdx < 0 {
		m.focusIdx = n - 1
	}
	m.centerOnFocused()
	m.userPanned = false
}

func (m OrreryModel) markerCount() int {
	if m.snapshot.Scene == nil {
		return 0
	}
	return len(m.snapshot.Scene.Markers)
}

// centerOnFocused pans the view so the focused marker sits mid-screen.
func (m *OrreryModel) centerOnFocused() {
	mk := m.FocusedMarker()
	if mk == nil {
		m.panX, m.panY = 0, 0
		return
	}
	proj := astro.ProjectTopDown(mk.Pos, m.projectionConfig())
	m.panX = -proj.X
	m.panY = -proj.Y
}

func (m OrreryModel) projectionConfig() astro.ProjectionConfig {
	return astro.ProjectionConfig{
		Scale: m.scale(),
		Mode:  m.scaleMode,
	}
}

// View renders the orrery view.
func (m OrreryModel) View() string {
	if m.width < 40 || m.height < 10 {
		return "Terminal too small for orrery view"
	}
	if m.snapshot.Scene == nil {
		if m.lastErr != nil {
			errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
			return errStyle.Render("Scene build failed: " + m.lastErr.Error())
		}
		return "Waiting for first scene build..."
	}

	canvas := m.buildCanvas()
	hud := m.renderHUD()
	return lipgloss.JoinVertical(lipgloss.Left, canvas, hud)
}

// markerPos tracks a marker's screen position for label rendering.
type markerPos struct {
	x, y      int
	name      string
	kind      catalog.Kind
	isFocused bool
}

// buildCanvas renders traces and markers to a colored rune grid.
func (m OrreryModel) buildCanvas() string {
	s := m.snapshot.Scene

	// Reserve space for HUD (3 lines)
	canvasH := m.height - 5
	if canvasH < 5 {
		canvasH = 5
	}
	canvasW := m.width

	grid := make([][]rune, canvasH)
	cell := make([][]string, canvasH) // hex color per cell; "" = unstyled
	for y := range grid {
		grid[y] = make([]rune, canvasW)
		cell[y] = make([]string, canvasW)
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}

	screenCenterX := canvasW / 2
	screenCenterY := canvasH / 2
	cfg := m.projectionConfig()

	// Fit the scene's extent into ~90% of the half-canvas. Projecting
	// the extent through the config accounts for the scale mode.
	displayScale := 1.0
	if ext := s.Extent(); ext > 0 {
		proj := astro.ProjectTopDown(astro.Vec3{X: ext}, cfg)
		if proj.X > 0 {
			maxDisplayR := float64(minInt(screenCenterX, screenCenterY*2)) * 0.9
			displayScale = maxDisplayR / proj.X * m.scale()
		}
	}

	originX := screenCenterX + int(m.panX*displayScale)
	originY := screenCenterY - int(m.panY*displayScale)

	// Shell traces first, markers and labels over them.
	for _, tr := range s.Traces {
		glyph := tr.Glyph
		if glyph == 0 {
			glyph = '·'
		}
		for i := 0; i < tr.Cloud.Len(); i++ {
			p := astro.Vec3{X: tr.Cloud.X[i], Y: tr.Cloud.Y[i], Z: tr.Cloud.Z[i]}
			proj := astro.ProjectTopDown(p, cfg)

			sx := originX + int(proj.X*displayScale)
			sy := originY - int(proj.Y*displayScale*0.5) // aspect correction
			if sx < 0 || sx >= canvasW || sy < 0 || sy >= canvasH {
				continue
			}
			grid[sy][sx] = glyph
			cell[sy][sx] = tr.PointColor(i)
		}
	}

	var positions []markerPos
	for i, mk := range s.Markers {
		proj := astro.ProjectTopDown(mk.Pos, cfg)
		sx := originX + int(proj.X*displayScale)
		sy := originY - int(proj.Y*displayScale*0.5)
		if sx < 0 || sx >= canvasW || sy < 0 || sy >= canvasH {
			continue
		}

		focused := i == m.focusIdx
		grid[sy][sx] = markerGlyph(mk.Kind, focused)
		cell[sy][sx] = mk.Color
		if focused {
			cell[sy][sx] = "" // focus styling wins over the body color
		}

		positions = append(positions, markerPos{
			x: sx, y: sy, name: mk.Name, kind: mk.Kind, isFocused: focused,
		})
	}

	m.renderLabels(grid, cell, canvasW, canvasH, positions)

	return m.renderGrid(grid, cell)
}

// markerGlyph picks the marker rune for a body kind.
func markerGlyph(kind catalog.Kind, focused bool) rune {
	switch kind {
	case catalog.KindStar:
		return '☉'
	case catalog.KindPlanet, catalog.KindDwarf:
		if focused {
			return '◉'
		}
		return '●'
	case catalog.KindMoon:
		if focused {
			return '◆'
		}
		return '•'
	case catalog.KindComet:
		return '☄'
	default:
		if focused {
			return '◈'
		}
		return '◦'
	}
}

// renderLabels writes marker names onto the grid per the label mode.
func (m OrreryModel) renderLabels(grid [][]rune, cell [][]string, width, height int, positions []markerPos) {
	if m.labelMode == LabelNone || len(positions) == 0 {
		return
	}

	for _, pos := range positions {
		showLabel := false
		switch m.labelMode {
		case LabelFocused:
			showLabel = pos.isFocused
		case LabelAll:
			showLabel = true
		}
		if !showLabel {
			continue
		}

		labelX := pos.x + 2
		labelY := pos.y
		if labelY < 0 || labelY >= height || labelX >= width {
			continue
		}

		labelText := pos.name
		if pos.isFocused {
			labelText = "◄ " + pos.name
		}

		for i, r := range labelText {
			x := labelX + i
			if x >= width {
				break
			}
			// Labels may overwrite shell points but never other markers
			if grid[labelY][x] == ' ' || cell[labelY][x] != "" {
				grid[labelY][x] = r
				cell[labelY][x] = ""
			}
		}
	}
}

func (m OrreryModel) renderGrid(grid [][]rune, cell [][]string) string {
	var b strings.Builder

	sunStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	focusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("249"))

	// Style caching: shell clouds repeat a handful of colors thousands
	// of times per frame.
	styles := make(map[string]lipgloss.Style)
	styled := func(hex string, ch rune) string {
		st, ok := styles[hex]
		if !ok {
			st = lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
			styles[hex] = st
		}
		return st.Render(string(ch))
	}

	for y, row := range grid {
		for x, ch := range row {
			if ch == ' ' {
				b.WriteRune(ch)
				continue
			}
			if hex := cell[y][x]; hex != "" {
				b.WriteString(styled(hex, ch))
				continue
			}
			switch ch {
			case '☉':
				b.WriteString(sunStyle.Render(string(ch)))
			case '◉', '◆', '◈', '◄':
				b.WriteString(focusStyle.Render(string(ch)))
			default:
				b.WriteString(labelStyle.Render(string(ch)))
			}
		}
		b.WriteRune('\n')
	}

	return b.String()
}

func (m OrreryModel) renderHUD() string {
	var b strings.Builder

	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Width(12)
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	focused := m.FocusedMarker()
	s := m.snapshot.Scene

	if focused != nil {
		b.WriteString(headerStyle.Render(fmt.Sprintf("◆ %s", focused.Name)))
		b.WriteString("  ")
		if focused.Code == s.Center.Code {
			b.WriteString(dimStyle.Render("(view center)"))
		} else {
			b.WriteString(labelStyle.Render("Range:"))
			b.WriteString(valueStyle.Render(fmt.Sprintf("%.4f AU", focused.RangeAU())))
		}
		b.WriteString("  ")
		b.WriteString(labelStyle.Render("Sun Dist:"))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%.3f AU", focused.DistanceAU())))
		b.WriteString("  ")
		b.WriteString(labelStyle.Render("Light Time:"))
		b.WriteString(valueStyle.Render(astro.FormatLightTime(focused.LightTimeSec())))
		b.WriteString("\n")

		b.WriteString(labelStyle.Render("Ecl Lon:"))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%.1f°", focused.EclipticLonDeg())))
		b.WriteString("  ")
		b.WriteString(labelStyle.Render("Ecl Lat:"))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%.1f°", focused.EclipticLatDeg())))
		b.WriteString("  ")
	} else {
		b.WriteString(headerStyle.Render("☉ " + s.Center.Name))
		b.WriteString("\n")
	}

	modeName := "Linear"
	if m.scaleMode == astro.ScaleLogR {
		modeName = "Log"
	}
	labelName := ""
	switch m.labelMode {
	case LabelNone:
		labelName = "off"
	case LabelFocused:
		labelName = "focus"
	case LabelAll:
		labelName = "all"
	}

	b.WriteString(dimStyle.Render("Mode:"))
	b.WriteString(valueStyle.Render(modeName))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render("Zoom:"))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%.2gx", m.scale())))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render("Labels:"))
	b.WriteString(valueStyle.Render(labelName))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render("Traces:"))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%d (%d pts)", len(s.Traces), s.TotalPoints())))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render("Epoch:"))
	b.WriteString(valueStyle.Render(s.Epoch.Format("2006-01-02 15:04")))

	return b.String()
}

// FocusedMarker returns the currently focused marker, or nil.
func (m OrreryModel) FocusedMarker() *scene.Marker {
	if m.snapshot.Scene == nil {
		return nil
	}
	if m.focusIdx < 0 || m.focusIdx >= len(m.snapshot.Scene.Markers) {
		return nil
	}
	return &m.snapshot.Scene.Markers[m.focusIdx]
}

// SetFocusByCode sets focus to a marker by its catalog code.
func (m *OrreryModel) SetFocusByCode(code string) {
	if m.snapshot.Scene == nil {
		return
	}
	for i, mk := range m.snapshot.Scene.Markers {
		if mk.Code == code {
			m.focusIdx = i
			return
		}
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
