package scene

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/litescript/ls-orrery/internal/astro"
)

func buildTestScene(t *testing.T) Scene {
	t.Helper()
	p := staticProvider{positions: map[int]astro.Vec3{
		399: {X: 1.0},
		301: {X: 1.00257},
	}}
	s, err := Build(p, Options{Center: "EARTH", Epoch: testEpoch})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	return s
}

func TestExportScene(t *testing.T) {
	s := buildTestScene(t)
	e := ExportScene(s)

	if e.Center != "EARTH" {
		t.Errorf("Center = %q, want EARTH", e.Center)
	}
	if e.CenterName != "Earth" {
		t.Errorf("CenterName = %q, want Earth", e.CenterName)
	}
	if !e.Epoch.Equal(s.Epoch) {
		t.Errorf("Epoch = %v, want %v", e.Epoch, s.Epoch)
	}
	if len(e.Traces) != len(s.Traces) {
		t.Fatalf("Traces count = %d, want %d", len(e.Traces), len(s.Traces))
	}
	if len(e.Markers) != len(s.Markers) {
		t.Fatalf("Markers count = %d, want %d", len(e.Markers), len(s.Markers))
	}

	for i, te := range e.Traces {
		if te.Points != s.Traces[i].Cloud.Len() {
			t.Errorf("trace %s Points = %d, want %d", te.Name, te.Points, s.Traces[i].Cloud.Len())
		}
		if len(te.X) != te.Points || len(te.Y) != te.Points || len(te.Z) != te.Points {
			t.Errorf("trace %s coordinate arrays do not match Points = %d", te.Name, te.Points)
		}
		if !strings.HasPrefix(te.Color, "#") {
			t.Errorf("trace %s Color = %q, want hex", te.Name, te.Color)
		}
	}

	var sun *MarkerExport
	for i := range e.Markers {
		if e.Markers[i].Code == "SUN" {
			sun = &e.Markers[i]
		}
	}
	if sun == nil {
		t.Fatal("no SUN marker in export")
	}
	if sun.X != -1.0 || sun.Y != 0 || sun.Z != 0 {
		t.Errorf("Sun marker at (%v, %v, %v), want (-1, 0, 0)", sun.X, sun.Y, sun.Z)
	}
	if sun.Kind != "star" {
		t.Errorf("Sun marker kind = %q, want star", sun.Kind)
	}
	if sun.DistanceAU != 0 {
		t.Errorf("Sun DistanceAU = %v, want 0", sun.DistanceAU)
	}
}

func TestSceneWriteJSON(t *testing.T) {
	s := buildTestScene(t)

	var buf bytes.Buffer
	if err := s.WriteJSON(&buf); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	var decoded Export
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Center != "EARTH" {
		t.Errorf("decoded Center = %q, want EARTH", decoded.Center)
	}
	if len(decoded.Traces) != len(s.Traces) {
		t.Errorf("decoded traces = %d, want %d", len(decoded.Traces), len(s.Traces))
	}
	if len(decoded.Traces) > 0 && decoded.Traces[0].Points != len(decoded.Traces[0].X) {
		t.Error("decoded trace points do not match coordinate array length")
	}

	if !strings.Contains(buf.String(), "  ") {
		t.Error("JSON should be indented")
	}
}

func TestWriteSummaryTable(t *testing.T) {
	s := buildTestScene(t)

	var buf bytes.Buffer
	WriteSummaryTable(&buf, s)
	out := buf.String()

	for _, want := range []string{
		"Orrery scene",
		"Earth",
		"Hill sphere",
		"Sun direction",
		"Total:",
		"2026-03-01",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q", want)
		}
	}
	if !strings.Contains(out, "─") {
		t.Error("summary should have rule lines")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input  string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"exactly10c", 10, "exactly10c"},
		{"toolongstring", 8, "toolon.."},
		{"ab", 2, "ab"},
		{"abc", 2, "ab"},
	}

	for _, tt := range tests {
		if got := truncate(tt.input, tt.maxLen); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
		}
	}
}
