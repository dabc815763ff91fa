package fluid

import (
	"strings"
	"testing"
)

func TestDebugOverlay_UpdateFPS(t *testing.T) {
	o := NewDebugOverlay()

	for i := 1; i <= 30; i++ {
		o.UpdateFPS(float64(i) * 20)
	}
	if o.CurrentFPS != 0 {
		t.Errorf("Expected no FPS before a second passes, got %f", o.CurrentFPS)
	}

	for i := 31; i <= 50; i++ {
		o.UpdateFPS(float64(i) * 20)
	}
	if o.CurrentFPS != 50 {
		t.Errorf("Expected 50 FPS, got %f", o.CurrentFPS)
	}
	if o.FrameCount != 0 {
		t.Errorf("Expected frame count reset, got %d", o.FrameCount)
	}
}

func TestDebugOverlay_Lines(t *testing.T) {
	s := &State{
		Composition: CompSea,
		Palette:     Palette{Name: "Ink"},
		Features:    Features{Layers: 2, ColorW: 1.25},
	}
	s.setView(0, &ViewOptions{BlendModeView: AdditiveBlending, Passes: passesOf(2).Passes})
	s.setSubComp(0, CompSea)

	lines := NewDebugOverlay().Lines(s)
	want := []string{
		"FPS: 0.0",
		"Composition: sea",
		"Palette: Ink",
		"Layers: 2",
		"Color W: 1.25",
		"View 0: sea blend 2 passes 2",
	}
	if strings.Join(lines, "\n") != strings.Join(want, "\n") {
		t.Errorf("Expected %q, got %q", want, lines)
	}
}

func TestDebugOverlay_HiddenWritesNothing(t *testing.T) {
	o := NewDebugOverlay()
	view := &fakeDebugView{}
	s := &State{Composition: CompSea}

	o.Render(view, s)
	if view.lines != nil {
		t.Error("Expected a hidden overlay to write nothing")
	}

	o.Visible = true
	o.Render(view, s)
	if len(view.lines) == 0 {
		t.Error("Expected a visible overlay to write lines")
	}
	o.Render(nil, s)
}
