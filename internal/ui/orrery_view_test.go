package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/ls-orrery/internal/astro"
	"github.com/litescript/ls-orrery/internal/catalog"
)

func TestOrreryModelInit(t *testing.T) {
	m := NewOrreryModel()

	if m.scale() != 1.0 {
		t.Errorf("expected scale 1.0, got %f", m.scale())
	}
	if m.scaleMode != astro.ScaleLinear {
		t.Errorf("expected ScaleLinear, got %d", m.scaleMode)
	}
	if m.labelMode != LabelFocused {
		t.Errorf("expected LabelFocused, got %d", m.labelMode)
	}
}

func TestOrreryModelScaleModeFollowsCenter(t *testing.T) {
	m := NewOrreryModel()

	// A sun-centered scene spans the whole system and wants log scale
	m = m.UpdateData(buildSnapshot(t, "SUN"))
	if m.scaleMode != astro.ScaleLogR {
		t.Errorf("sun-centered: scaleMode = %d, want ScaleLogR", m.scaleMode)
	}

	// A body-centered scene wants true proportions
	m = m.UpdateData(buildSnapshot(t, "SATURN"))
	if m.scaleMode != astro.ScaleLinear {
		t.Errorf("body-centered: scaleMode = %d, want ScaleLinear", m.scaleMode)
	}

	// The focus lands on the new center
	if mk := m.FocusedMarker(); mk == nil || mk.Code != "SATURN" {
		t.Errorf("focused marker = %v, want SATURN", mk)
	}
}

func TestOrreryModelFocusNavigation(t *testing.T) {
	m := NewOrreryModel()
	m = m.SetSize(120, 40)
	m = m.UpdateData(buildSnapshot(t, "SUN"))

	n := m.markerCount()
	if n < 10 {
		t.Fatalf("sun-centered scene has %d markers, want the planet roster", n)
	}
	if m.focusIdx != 0 {
		t.Fatalf("initial focus = %d, want 0 (the Sun)", m.focusIdx)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	if m.focusIdx != 1 {
		t.Errorf("after next, focusIdx = %d, want 1", m.focusIdx)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	if m.focusIdx != 0 {
		t.Errorf("after prev, focusIdx = %d, want 0", m.focusIdx)
	}

	// Wrap backwards
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	if m.focusIdx != n-1 {
		t.Errorf("after wrap, focusIdx = %d, want %d", m.focusIdx, n-1)
	}
}

func TestOrreryModelZoom(t *testing.T) {
	m := NewOrreryModel()

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'+'}})
	if m.scale() != 1.5 {
		t.Errorf("expected scale 1.5 after zoom in, got %f", m.scale())
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'-'}})
	if m.scale() != 1.0 {
		t.Errorf("expected scale 1.0 after zoom out, got %f", m.scale())
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'+'}})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'+'}})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'0'}})
	if m.scale() != 1.0 {
		t.Errorf("expected scale 1.0 after reset, got %f", m.scale())
	}
}

func TestOrreryModelPan(t *testing.T) {
	m := NewOrreryModel()

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.panX <= 0 {
		t.Errorf("expected panX > 0 after pan right, got %f", m.panX)
	}
	if !m.userPanned {
		t.Error("panning should set userPanned")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if m.panY >= 0 {
		t.Errorf("expected panY < 0 after pan up, got %f", m.panY)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	if m.panX != 0 || m.panY != 0 || m.userPanned {
		t.Errorf("reset left panX=%f panY=%f userPanned=%v", m.panX, m.panY, m.userPanned)
	}
}

func TestOrreryModelRecenterCmd(t *testing.T) {
	m := NewOrreryModel()
	m = m.UpdateData(buildSnapshot(t, "SUN"))

	// Move focus off the Sun, then request a recenter
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	wantCode := m.FocusedMarker().Code

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter on a focused marker should produce a command")
	}
	msg, ok := cmd().(RecenterMsg)
	if !ok {
		t.Fatalf("enter produced %T, want RecenterMsg", cmd())
	}
	if msg.Code != wantCode {
		t.Errorf("RecenterMsg.Code = %q, want %q", msg.Code, wantCode)
	}
}

func TestOrreryModelViewStates(t *testing.T) {
	m := NewOrreryModel()
	m = m.SetSize(100, 30)

	if got := m.View(); !strings.Contains(got, "Waiting") {
		t.Errorf("sceneless view = %q, want waiting notice", got)
	}

	m = m.SetError(errFake)
	if got := m.View(); !strings.Contains(got, "fake failure") {
		t.Errorf("error view missing error text: %q", got)
	}

	if got := NewOrreryModel().SetSize(10, 4).View(); !strings.Contains(got, "too small") {
		t.Errorf("tiny view = %q, want size notice", got)
	}
}

func TestOrreryModelCanvasRendersScene(t *testing.T) {
	m := NewOrreryModel()
	m = m.SetSize(120, 40)
	m = m.UpdateData(buildSnapshot(t, "SUN"))

	view := m.View()
	if !strings.Contains(view, "☉") {
		t.Error("sun-centered canvas missing the ☉ marker")
	}
	// The focused label (Sun) renders by default
	if !strings.Contains(view, "Sun") {
		t.Error("canvas missing the focused body label")
	}
	// HUD carries trace totals
	if !strings.Contains(view, "Traces:") {
		t.Error("HUD missing trace summary")
	}
}

func TestOrreryModelSetFocusByCode(t *testing.T) {
	m := NewOrreryModel()
	m = m.UpdateData(buildSnapshot(t, "SUN"))

	m.SetFocusByCode("NEPTUNE")
	if mk := m.FocusedMarker(); mk == nil || mk.Code != "NEPTUNE" {
		t.Errorf("focused = %v, want NEPTUNE", mk)
	}

	// Unknown codes leave focus untouched
	m.SetFocusByCode("NOPE")
	if mk := m.FocusedMarker(); mk == nil || mk.Code != "NEPTUNE" {
		t.Errorf("focused = %v after bad code, want NEPTUNE", mk)
	}
}

func TestMarkerGlyphKinds(t *testing.T) {
	tests := []struct {
		name    string
		kind    catalog.Kind
		plain   rune
		focused rune
	}{
		{"star", catalog.KindStar, '☉', '☉'},
		{"planet", catalog.KindPlanet, '●', '◉'},
		{"dwarf", catalog.KindDwarf, '●', '◉'},
		{"moon", catalog.KindMoon, '•', '◆'},
		{"comet", catalog.KindComet, '☄', '☄'},
		{"asteroid", catalog.KindAsteroid, '◦', '◈'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if g := markerGlyph(tt.kind, false); g != tt.plain {
				t.Errorf("markerGlyph(%v, false) = %q, want %q", tt.kind, g, tt.plain)
			}
			if g := markerGlyph(tt.kind, true); g != tt.focused {
				t.Errorf("markerGlyph(%v, true) = %q, want %q", tt.kind, g, tt.focused)
			}
		})
	}
}
