package fluid

import (
	"fmt"
	"net/url"
	"strconv"
)

// CompositionToggle marks whether a composition takes part in the pool.
type CompositionToggle struct {
	Name     Composition
	Included bool
}

// Config holds everything the controller needs before the first lifecycle
// event: pools, option defaults, supported-field profiles and overrides.
type Config struct {
	Name    string
	DevMode bool

	// Overrides. Zero values mean "draw from the seed".
	Seed        string
	Composition Composition
	Palette     string
	Layers      int

	Compositions []CompositionToggle
	Palettes     []Palette

	Options  GlobalOptions
	Profiles map[Composition]FieldSet

	// Features.ColorW is drawn from [ColorWMin, ColorWMax).
	ColorWMin float64
	ColorWMax float64

	// LiveURL is the dev server websocket used to mirror panel edits.
	LiveURL string
}

// AllFields lists every optional field, in panel order.
var AllFields = []Field{
	FieldMinLayers, FieldMaxLayers, FieldOpacity,
	FieldMinStrokes, FieldMaxStrokes, FieldStrokesRel,
	FieldMinSpeed, FieldMaxSpeed, FieldSpeedMult,
	FieldMinDt, FieldMaxDt, FieldMaxIterations,
	FieldOnClick, FieldOnChange, FieldMaxChanges,
	FieldSnapBlending, FieldSnapOpacity, FieldSnapOverlay,
	FieldShowDebug, FieldBackground, FieldUsePipeline,
	FieldNoiseMin, FieldNoiseMax,
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	all := NewFieldSet(AllFields...)
	return Config{
		Name: "fluid",
		Compositions: []CompositionToggle{
			{CompSea, true},
			{CompStone, true},
			{CompCells, true},
			{CompSand, true},
			{CompGlitch, true},
			{CompPNoise, false},
			{CompBox, false},
		},
		Palettes: append([]Palette(nil), DefaultPalettes...),
		Options: GlobalOptions{
			MinLayers:     1,
			MaxLayers:     3,
			Opacity:       1,
			MinStrokes:    1,
			MaxStrokes:    8,
			StrokesRel:    "mirrorRand",
			MinSpeed:      0.001,
			MaxSpeed:      0.03,
			SpeedMult:     1,
			MinDt:         0.1,
			MaxDt:         0.2,
			MaxIterations: 10,
			OnClick:       "",
			OnChange:      "regenerate",
			MaxChanges:    0,
			SnapOverlay:   false,
			SnapBlending:  NormalBlending,
			SnapOpacity:   0.5,
			ShowDebug:     false,
			Background:    false,
			UsePipeline:   false,
			NoiseMin:      0,
			NoiseMax:      1,
		},
		Profiles: map[Composition]FieldSet{
			// The box has no snapshot overlay, no layer stack and never
			// schedules changes.
			CompBox: all.Without(
				FieldSnapOverlay, FieldSnapBlending, FieldSnapOpacity,
				FieldMaxChanges, FieldOnChange, FieldOnClick,
				FieldUsePipeline, FieldMinStrokes, FieldMaxStrokes, FieldStrokesRel,
			),
		},
		ColorWMin: 0.5,
		ColorWMax: 1.5,
	}
}

// IncludedCompositions returns the composition pool in configuration order.
func (c *Config) IncludedCompositions() []Composition {
	out := make([]Composition, 0, len(c.Compositions))
	for _, t := range c.Compositions {
		if t.Included {
			out = append(out, t.Name)
		}
	}
	return out
}

// IncludedPalettes returns the palette pool in configuration order.
func (c *Config) IncludedPalettes() []Palette {
	out := make([]Palette, 0, len(c.Palettes))
	for _, p := range c.Palettes {
		if p.Included {
			out = append(out, p)
		}
	}
	return out
}

// OptionsFor returns a fresh copy of the option defaults gated by the
// composition's supported-field profile. Compositions without a profile
// support every field.
func (c *Config) OptionsFor(comp Composition) *GlobalOptions {
	o := c.Options.Clone()
	if fs, ok := c.Profiles[comp]; ok {
		o.Supported = fs.Without()
	} else {
		o.Supported = NewFieldSet(AllFields...)
	}
	return o
}

// ApplyQuery applies URL query overrides: comp, palette, seed, layers, dev,
// live. Unknown keys are ignored. On a malformed value the remaining keys
// are still applied and the first error is returned.
func (c *Config) ApplyQuery(q url.Values) error {
	var firstErr error
	if v := q.Get("comp"); v != "" {
		c.Composition = Composition(v)
	}
	if v := q.Get("palette"); v != "" {
		c.Palette = v
	}
	if v := q.Get("seed"); v != "" {
		c.Seed = v
	}
	if v := q.Get("live"); v != "" {
		c.LiveURL = v
	}
	if v := q.Get("layers"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			firstErr = fmt.Errorf("layers override %q: must be a positive integer", v)
		} else {
			c.Layers = n
		}
	}
	if _, ok := q["dev"]; ok {
		v := q.Get("dev")
		if v == "" {
			c.DevMode = true
		} else if dev, err := strconv.ParseBool(v); err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("dev override %q: %w", v, err)
			}
		} else {
			c.DevMode = dev
		}
	}
	return firstErr
}
