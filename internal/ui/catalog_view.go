package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-orrery/internal/catalog"
	"github.com/litescript/ls-orrery/internal/shell"
	"github.com/litescript/ls-orrery/internal/state"
)

// Styles for the catalog browser
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Background(lipgloss.Color("235")).
			Padding(0, 1)

	rowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	selectedRowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("58"))

	centerRowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	dimRowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	filterStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229"))
)

// CatalogModel is the browsable catalog table. Enter recenters the
// scene on the selected body.
type CatalogModel struct {
	width    int
	height   int
	cursor   int
	snapshot state.Snapshot

	rows      []catalog.Object
	filter    string
	filtering bool // true while the filter prompt owns the keyboard
}

// NewCatalogModel creates a new catalog browser model.
func NewCatalogModel() CatalogModel {
	m := CatalogModel{}
	m.rows = catalogRows("")
	return m
}

// catalogRows returns the catalog in display order, optionally
// filtered by a case-insensitive substring of name or code: the Sun
// first, then each planet followed by its moons, then everything else
// in table order.
func catalogRows(filter string) []catalog.Object {
	match := func(o catalog.Object) bool {
		if filter == "" {
			return true
		}
		f := strings.ToLower(filter)
		return strings.Contains(strings.ToLower(o.Name), f) ||
			strings.Contains(strings.ToLower(o.Code), f)
	}

	var rows []catalog.Object
	seen := make(map[string]bool)
	add := func(o catalog.Object) {
		if !seen[o.Code] && match(o) {
			rows = append(rows, o)
		}
		seen[o.Code] = true
	}

	if sun, ok := catalog.Lookup("SUN"); ok {
		add(sun)
	}
	for _, p := range catalog.Planets() {
		add(p)
		for _, moon := range catalog.Children(p.Code) {
			add(moon)
		}
	}
	for _, o := range catalog.Objects {
		add(o)
	}
	return rows
}

// Filtering reports whether the filter prompt currently owns the
// keyboard; the root model suspends global keys while it does.
func (m CatalogModel) Filtering() bool {
	return m.filtering
}

// SetSize updates the viewport size.
func (m CatalogModel) SetSize(width, height int) CatalogModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData updates the model with new data.
func (m CatalogModel) UpdateData(snapshot state.Snapshot) CatalogModel {
	m.snapshot = snapshot
	return m
}

// Update handles messages.
func (m CatalogModel) Update(msg tea.Msg) (CatalogModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.filtering {
		switch keyMsg.String() {
		case "esc":
			m.filtering = false
			m.filter = ""
			m.rows = catalogRows("")
			m.cursor = 0
		case "enter":
			m.filtering = false
		case "backspace":
			if len(m.filter) > 0 {
				m.filter = m.filter[:len(m.filter)-1]
				m.rows = catalogRows(m.filter)
				m.cursor = 0
			}
		default:
			if keyMsg.Type == tea.KeyRunes {
				m.filter += string(keyMsg.Runes)
				m.rows = catalogRows(m.filter)
				m.cursor = 0
			}
		}
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	case "home":
		m.cursor = 0
	case "end":
		if len(m.rows) > 0 {
			m.cursor = len(m.rows) - 1
		}
	case "/":
		m.filtering = true
	case "esc":
		if m.filter != "" {
			m.filter = ""
			m.rows = catalogRows("")
			m.cursor = 0
		}
	case "enter":
		if m.cursor >= 0 && m.cursor < len(m.rows) {
			code := m.rows[m.cursor].Code
			return m, func() tea.Msg { return RecenterMsg{Code: code} }
		}
	}

	return m, nil
}

// View renders the catalog table.
func (m CatalogModel) View() string {
	var b strings.Builder

	title := fmt.Sprintf("Celestial Catalog (%d objects)", len(catalog.Objects))
	b.WriteString(titleStyle.Render(title))
	if m.filtering {
		b.WriteString("   " + filterStyle.Render("/"+m.filter+"▌"))
	} else if m.filter != "" {
		b.WriteString("   " + filterStyle.Render("filter: "+m.filter))
	}
	b.WriteString("\n")

	header := fmt.Sprintf("%-16s %-8s %-13s %10s %11s %12s %7s",
		"Name", "Code", "Kind", "Radius km", "Orbit AU", "Period d", "Shells")
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")

	if len(m.rows) == 0 {
		b.WriteString("  No catalog entries match\n")
		return b.String()
	}

	centerCode := ""
	if m.snapshot.Scene != nil {
		centerCode = m.snapshot.Scene.Center.Code
	}

	maxRows := m.height - 6
	if maxRows < 5 {
		maxRows = 5
	}

	startIdx := 0
	if m.cursor >= maxRows {
		startIdx = m.cursor - maxRows + 1
	}
	endIdx := startIdx + maxRows
	if endIdx > len(m.rows) {
		endIdx = len(m.rows)
	}

	for i := startIdx; i < endIdx; i++ {
		o := m.rows[i]

		orbit := "—"
		if o.OrbitAU() > 0 {
			orbit = fmt.Sprintf("%.4g", o.OrbitAU())
		}
		period := "—"
		if o.PeriodDays != 0 {
			period = fmt.Sprintf("%.4g", o.PeriodDays)
		}
		radius := "—"
		if o.RadiusKm > 0 {
			radius = fmt.Sprintf("%.5g", o.RadiusKm)
		}
		shells := "—"
		if n := len(shell.Shells(o.Code)); n > 0 {
			shells = fmt.Sprintf("%d", n)
		}

		name := o.Name
		if o.Kind == catalog.KindMoon {
			name = "  " + name
		}

		row := fmt.Sprintf("%-16s %-8s %-13s %10s %11s %12s %7s",
			truncate(name, 16), o.Code, o.Kind.String(), radius, orbit, period, shells)

		switch {
		case i == m.cursor:
			b.WriteString(selectedRowStyle.Render(row))
		case o.Code == centerCode:
			b.WriteString(centerRowStyle.Render(row))
		case o.Kind == catalog.KindMoon:
			b.WriteString(dimRowStyle.Render(row))
		default:
			b.WriteString(rowStyle.Render(row))
		}
		b.WriteString("\n")
	}

	if len(m.rows) > maxRows {
		b.WriteString(fmt.Sprintf("\n  Showing %d-%d of %d objects", startIdx+1, endIdx, len(m.rows)))
	}

	return b.String()
}

// Selected returns the object under the cursor, if any.
func (m CatalogModel) Selected() *catalog.Object {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return nil
	}
	o := m.rows[m.cursor]
	return &o
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
