package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/litescript/ls-orrery/internal/astro"
)

// Export is the JSON-serializable representation of a scene: the
// boundary handed to external plotting consumers.
type Export struct {
	Center      string         `json:"center"`
	CenterName  string         `json:"center_name"`
	Epoch       time.Time      `json:"epoch"`
	GeneratedAt time.Time      `json:"generated_at"`
	Provider    string         `json:"provider,omitempty"`
	Markers     []MarkerExport `json:"markers"`
	Traces      []TraceExport  `json:"traces"`
}

// MarkerExport is a JSON-friendly body marker with derived fields.
type MarkerExport struct {
	Name       string  `json:"name"`
	Code       string  `json:"code"`
	Kind       string  `json:"kind"`
	Color      string  `json:"color,omitempty"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Z          float64 `json:"z"`
	DistanceAU float64 `json:"distance_au"`
	LightSec   float64 `json:"light_time_s"`
}

// TraceExport is a JSON-friendly shell trace with flat coordinate
// arrays, one value per point.
type TraceExport struct {
	Name     string    `json:"name"`
	Color    string    `json:"color"`
	ColorPer []string  `json:"color_per,omitempty"`
	Opacity  float64   `json:"opacity"`
	Glyph    string    `json:"glyph,omitempty"`
	Hover    string    `json:"hover,omitempty"`
	HoverPer []string  `json:"hover_per,omitempty"`
	Points   int       `json:"points"`
	X        []float64 `json:"x"`
	Y        []float64 `json:"y"`
	Z        []float64 `json:"z"`
}

// ExportScene converts a built scene to its exportable form.
func ExportScene(s Scene) *Export {
	out := &Export{
		Center:      s.Center.Code,
		CenterName:  s.Center.Name,
		Epoch:       s.Epoch,
		GeneratedAt: s.GeneratedAt,
		Provider:    s.Provider,
	}

	for _, m := range s.Markers {
		out.Markers = append(out.Markers, MarkerExport{
			Name:       m.Name,
			Code:       m.Code,
			Kind:       m.Kind.String(),
			Color:      m.Color,
			X:          m.Pos.X,
			Y:          m.Pos.Y,
			Z:          m.Pos.Z,
			DistanceAU: m.DistanceAU(),
			LightSec:   m.LightTimeSec(),
		})
	}

	for _, t := range s.Traces {
		te := TraceExport{
			Name:     t.Name,
			Color:    t.Color,
			ColorPer: t.ColorPer,
			Opacity:  t.Opacity,
			Hover:    t.Hover,
			HoverPer: t.HoverPer,
			Points:   t.Cloud.Len(),
			X:        t.Cloud.X,
			Y:        t.Cloud.Y,
			Z:        t.Cloud.Z,
		}
		if t.Glyph != 0 {
			te.Glyph = string(t.Glyph)
		}
		out.Traces = append(out.Traces, te)
	}
	return out
}

// WriteJSON writes the export as indented JSON.
func (e *Export) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(e)
}

// WriteJSON writes the scene as indented JSON.
func (s Scene) WriteJSON(w io.Writer) error {
	return ExportScene(s).WriteJSON(w)
}

// WriteSummaryTable writes a plain-text scene summary: one row per
// marker, then one row per shell trace.
func WriteSummaryTable(w io.Writer, s Scene) {
	fmt.Fprintf(w, "Orrery scene: %s @ %s (%s)\n", s.Center.Name, s.Epoch.Format(time.RFC3339), s.Provider)
	fmt.Fprintln(w, strings.Repeat("─", 72))

	if len(s.Markers) > 0 {
		fmt.Fprintf(w, "%-14s %-12s %12s %9s %10s\n", "Body", "Kind", "Dist (AU)", "Ecl Lon", "Light")
		fmt.Fprintln(w, strings.Repeat("─", 72))
		for _, m := range s.Markers {
			fmt.Fprintf(w, "%-14s %-12s %12.4f %8.1f° %10s\n",
				truncate(m.Name, 14),
				m.Kind.String(),
				m.DistanceAU(),
				m.EclipticLonDeg(),
				astro.FormatLightTime(m.LightTimeSec()),
			)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "%-26s %8s %-9s %8s\n", "Layer", "Points", "Color", "Opacity")
	fmt.Fprintln(w, strings.Repeat("─", 72))
	for _, t := range s.Traces {
		fmt.Fprintf(w, "%-26s %8d %-9s %8.2f\n",
			truncate(t.Name, 26), t.Cloud.Len(), t.Color, t.Opacity)
	}

	fmt.Fprintf(w, "\nTotal: %d traces, %d points\n", len(s.Traces), s.TotalPoints())
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-2] + ".."
}
