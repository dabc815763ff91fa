package engine

import (
	"testing"

	"github.com/simukka/fluid-sketch/fluid"
)

func TestReadView_LibraryShape(t *testing.T) {
	rec := map[string]interface{}{
		"opacity":       0.5,
		"colorW":        1.2,
		"blendModeView": 3.0,
		"passes": []interface{}{
			map[string]interface{}{"fluidZoom": -0.4, "K": 0.3, "fluidZoom2": 0.2},
			map[string]interface{}{"noiseZoom": 900.0},
		},
		"unknown": "kept by the library",
	}
	v := fluid.DefaultViewOptions(0)
	ReadView(rec, v)

	if v.Opacity != 0.5 || v.ColorW != 1.2 || v.BlendModeView != fluid.SubtractiveBlending {
		t.Errorf("Expected top-level values to be read, got %+v", v)
	}
	if v.BlendModePass != fluid.NormalBlending {
		t.Errorf("Expected a missing key to keep its value, got %d", v.BlendModePass)
	}
	if len(v.Passes) != 2 {
		t.Fatalf("Expected 2 passes, got %d", len(v.Passes))
	}
	first := v.Passes[0]
	if first.FluidZoom != -0.4 || first.K != 0.3 || first.FluidZoom2 == nil || *first.FluidZoom2 != 0.2 {
		t.Errorf("Expected first pass values, got %+v", first)
	}
	second := v.Passes[1]
	if second.NoiseZoom != 900 || second.FluidZoom != 1 || second.K != 0.2 || second.FluidZoom2 != nil {
		t.Errorf("Expected second pass over base values, got %+v", second)
	}
}

func TestPassRecord_OptionalKeys(t *testing.T) {
	p := &fluid.PassOptions{FluidZoom: 1, K: 0.2}
	rec := PassRecord(p)
	if _, ok := rec["fluidZoom2"]; ok {
		t.Error("Expected no fluidZoom2 when unset")
	}
	if _, ok := rec["blendModePass"]; ok {
		t.Error("Expected no blendModePass when unset")
	}

	zoom, mode := 0.25, fluid.NormalBlending
	p.FluidZoom2, p.BlendModePass = &zoom, &mode
	rec = PassRecord(p)
	if rec["fluidZoom2"] != 0.25 || rec["blendModePass"] != 1 {
		t.Errorf("Expected optional keys, got %v", rec)
	}
}

func TestViewRecord_ReadBack(t *testing.T) {
	v := fluid.DefaultViewOptions(2)
	v.Opacity = fluid.ViewOpacity
	v.BlendModeView = fluid.CustomBlending
	v.Passes[1].NoiseZoom = 1200

	rec := ViewRecord(v)
	// The library hands numbers back as float64.
	rec["blendModeView"] = float64(rec["blendModeView"].(int))

	got := fluid.DefaultViewOptions(0)
	ReadView(rec, got)
	if got.Opacity != fluid.ViewOpacity || got.BlendModeView != fluid.CustomBlending {
		t.Errorf("Expected view values, got %+v", got)
	}
	if len(got.Passes) != 2 || got.Passes[1].NoiseZoom != 1200 {
		t.Errorf("Expected pass values, got %+v", got.Passes)
	}
}

func TestReadLayer(t *testing.T) {
	l := fluid.DefaultLayerOptions()
	ReadLayer(map[string]interface{}{"visible": false, "zoom": 2.5, "blendModePass": 2.0, "nu": "bad"}, l)

	if l.Visible || l.Zoom != 2.5 || l.BlendModePass != fluid.AdditiveBlending {
		t.Errorf("Expected layer values, got %+v", l)
	}
	if l.Nu != fluid.DefaultLayerOptions().Nu {
		t.Errorf("Expected a malformed value to be ignored, got %f", l.Nu)
	}
	if rec := LayerRecord(l); rec["zoom"] != 2.5 || rec["visible"] != false {
		t.Errorf("Expected record values, got %v", rec)
	}
}
