package shell

import (
	"errors"
	"fmt"

	"github.com/litescript/ls-orrery/internal/geom"
)

// Trace is a named, colored, hoverable point cloud ready for rendering.
// Traces are constructed by the builders in this package and validated
// before they leave it; the per-point arrays always match the cloud
// length.
type Trace struct {
	Name    string
	Color   string  // "#rrggbb"
	Opacity float64 // 0 transparent, 1 opaque
	Glyph   rune    // marker used by the terminal renderer
	Cloud   geom.PointCloud

	// Hover is the single description shown for any point of the trace.
	// HoverPer and ColorPer optionally override per point; when set they
	// must match the cloud length exactly.
	Hover    string
	HoverPer []string
	ColorPer []string

	ShowLegend bool
}

// Validate checks the trace invariants: non-empty name, well-formed
// color, opacity in range, and per-point arrays matching the cloud.
func (t Trace) Validate() error {
	if t.Name == "" {
		return errors.New("shell: trace has no name")
	}
	if !isHexColor(t.Color) {
		return fmt.Errorf("shell: trace %s: bad color %q", t.Name, t.Color)
	}
	if t.Opacity < 0 || t.Opacity > 1 {
		return fmt.Errorf("shell: trace %s: opacity %v outside [0, 1]", t.Name, t.Opacity)
	}
	if t.Cloud.Len() == 0 {
		return fmt.Errorf("shell: trace %s has an empty point cloud", t.Name)
	}
	if n := len(t.HoverPer); n > 0 && n != t.Cloud.Len() {
		return fmt.Errorf("shell: trace %s: %d hover lines for %d points", t.Name, n, t.Cloud.Len())
	}
	if n := len(t.ColorPer); n > 0 && n != t.Cloud.Len() {
		return fmt.Errorf("shell: trace %s: %d point colors for %d points", t.Name, n, t.Cloud.Len())
	}
	return nil
}

// PointColor returns the color for point i, falling back to the trace
// color when no per-point ramp is set.
func (t Trace) PointColor(i int) string {
	if i >= 0 && i < len(t.ColorPer) {
		return t.ColorPer[i]
	}
	return t.Color
}

// PointHover returns the hover text for point i.
func (t Trace) PointHover(i int) string {
	if i >= 0 && i < len(t.HoverPer) {
		return t.HoverPer[i]
	}
	return t.Hover
}

func isHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, c := range s[1:] {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
