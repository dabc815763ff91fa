package fluid

import (
	"strconv"
)

// DebugOverlay shows run facts over the composition while showDebug is on.
type DebugOverlay struct {
	Visible bool

	// FPS tracking
	FrameCount    int
	LastFPSUpdate float64
	CurrentFPS    float64
}

// NewDebugOverlay creates a hidden overlay.
func NewDebugOverlay() *DebugOverlay {
	return &DebugOverlay{}
}

// UpdateFPS updates the FPS counter
func (o *DebugOverlay) UpdateFPS(currentTime float64) {
	o.FrameCount++

	// Update FPS every second
	elapsed := currentTime - o.LastFPSUpdate
	if elapsed >= 1000 {
		o.CurrentFPS = float64(o.FrameCount) / (elapsed / 1000)
		o.FrameCount = 0
		o.LastFPSUpdate = currentTime
	}
}

// Lines returns the overlay text for the current state.
func (o *DebugOverlay) Lines(s *State) []string {
	lines := []string{
		"FPS: " + strconv.FormatFloat(o.CurrentFPS, 'f', 1, 64),
		"Composition: " + string(s.Composition),
		"Palette: " + s.Palette.Name,
		"Layers: " + strconv.Itoa(s.Features.Layers),
		"Color W: " + strconv.FormatFloat(s.Features.ColorW, 'f', 2, 64),
	}
	for i, v := range s.Views {
		sub := ""
		if i < len(s.SubComps) {
			sub = string(s.SubComps[i])
		}
		lines = append(lines, "View "+strconv.Itoa(i)+": "+sub+
			" blend "+strconv.Itoa(int(v.BlendModeView))+
			" passes "+strconv.Itoa(len(v.Passes)))
	}
	return lines
}

// Render writes the overlay to view. Hidden overlays write nothing.
func (o *DebugOverlay) Render(view DebugView, s *State) {
	if !o.Visible || view == nil {
		return
	}
	view.SetText(o.Lines(s))
}
