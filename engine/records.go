package engine

import (
	"github.com/simukka/fluid-sketch/fluid"
)

// Records are the plain-object form of option structs, as returned by
// (*js.Object).Interface() on the library's option objects: numbers are
// float64, arrays are []interface{}. Keys match the library's property
// names.

// ViewRecord converts view options to their plain-object form.
func ViewRecord(v *fluid.ViewOptions) map[string]interface{} {
	passes := make([]interface{}, len(v.Passes))
	for i, p := range v.Passes {
		passes[i] = PassRecord(p)
	}
	return map[string]interface{}{
		"opacity":       v.Opacity,
		"colorW":        v.ColorW,
		"blendModeView": int(v.BlendModeView),
		"blendModePass": int(v.BlendModePass),
		"passes":        passes,
	}
}

// ReadView fills v from rec. Keys missing from rec leave v unchanged; a
// passes array replaces v's passes, each pass read over base values.
func ReadView(rec map[string]interface{}, v *fluid.ViewOptions) {
	readFloat(rec, "opacity", &v.Opacity)
	readFloat(rec, "colorW", &v.ColorW)
	readBlend(rec, "blendModeView", &v.BlendModeView)
	readBlend(rec, "blendModePass", &v.BlendModePass)

	list, ok := rec["passes"].([]interface{})
	if !ok {
		return
	}
	passes := make([]*fluid.PassOptions, 0, len(list))
	for _, item := range list {
		p := fluid.DefaultViewOptions(1).Passes[0]
		if prec, ok := item.(map[string]interface{}); ok {
			ReadPass(prec, p)
		}
		passes = append(passes, p)
	}
	v.Passes = passes
}

// PassRecord converts pass options to their plain-object form. Optional
// fields that are unset are left out.
func PassRecord(p *fluid.PassOptions) map[string]interface{} {
	rec := map[string]interface{}{
		"diss":      p.Diss,
		"noiseZoom": p.NoiseZoom,
		"noiseMin":  p.NoiseMin,
		"noiseMax":  p.NoiseMax,
		"fluidZoom": p.FluidZoom,
		"K":         p.K,
	}
	if p.FluidZoom2 != nil {
		rec["fluidZoom2"] = *p.FluidZoom2
	}
	if p.BlendModePass != nil {
		rec["blendModePass"] = int(*p.BlendModePass)
	}
	return rec
}

// ReadPass fills p from rec.
func ReadPass(rec map[string]interface{}, p *fluid.PassOptions) {
	readFloat(rec, "diss", &p.Diss)
	readFloat(rec, "noiseZoom", &p.NoiseZoom)
	readFloat(rec, "noiseMin", &p.NoiseMin)
	readFloat(rec, "noiseMax", &p.NoiseMax)
	readFloat(rec, "fluidZoom", &p.FluidZoom)
	readFloat(rec, "K", &p.K)
	if x, ok := number(rec["fluidZoom2"]); ok {
		p.FluidZoom2 = &x
	}
	if x, ok := number(rec["blendModePass"]); ok {
		m := fluid.BlendMode(x)
		p.BlendModePass = &m
	}
}

// LayerRecord converts layer options to their plain-object form.
func LayerRecord(l *fluid.LayerOptions) map[string]interface{} {
	return map[string]interface{}{
		"visible":       l.Visible,
		"blendModePass": int(l.BlendModePass),
		"blendModeView": int(l.BlendModeView),
		"zoom":          l.Zoom,
		"dt":            l.Dt,
		"K":             l.K,
		"nu":            l.Nu,
		"kappa":         l.Kappa,
	}
}

// ReadLayer fills l from rec.
func ReadLayer(rec map[string]interface{}, l *fluid.LayerOptions) {
	if b, ok := rec["visible"].(bool); ok {
		l.Visible = b
	}
	readBlend(rec, "blendModePass", &l.BlendModePass)
	readBlend(rec, "blendModeView", &l.BlendModeView)
	readFloat(rec, "zoom", &l.Zoom)
	readFloat(rec, "dt", &l.Dt)
	readFloat(rec, "K", &l.K)
	readFloat(rec, "nu", &l.Nu)
	readFloat(rec, "kappa", &l.Kappa)
}

func readFloat(rec map[string]interface{}, key string, dst *float64) {
	if x, ok := number(rec[key]); ok {
		*dst = x
	}
}

func readBlend(rec map[string]interface{}, key string, dst *fluid.BlendMode) {
	if x, ok := number(rec[key]); ok {
		*dst = fluid.BlendMode(x)
	}
}

func number(v interface{}) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case int:
		return float64(x), true
	}
	return 0, false
}
