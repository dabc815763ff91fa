package fluid

import "github.com/simukka/fluid-sketch/common"

// State owns every mutable option record of a run. It is created once at
// startup and handed by reference to each handler; all access happens on
// the render loop, so it carries no locks.
type State struct {
	Composition Composition
	Palette     Palette
	Features    Features
	Options     *GlobalOptions
	DevMode     bool
	// Config is the configuration the run was built from. The panel edits
	// its pools: composition toggles apply from the next synthesized view,
	// palette toggles from the next reload.
	Config *Config

	Layers []*LayerOptions
	Views  []*ViewOptions
	// SubComps records the sub-composition synthesized for each view.
	SubComps []Composition

	// passBase keeps the first-seen pass records of each view so a repeated
	// init regenerates from the same base.
	passBase map[int][]*PassOptions
}

// NewState draws the primary composition, the palette and the features from
// rng, in that order, honouring any overrides in cfg.
func NewState(cfg Config, rng common.Random) *State {
	s := newState(cfg)
	s.selectLook(rng)
	s.deriveFeatures(rng)
	return s
}

// NewDevState is NewState for developer mode. The pool folders are
// registered before the composition and palette are drawn, and the option
// folder before the features are drawn, so values the GUI restores from a
// remembered preset take part in selection. Without a GUI or outside
// developer mode it returns a nil panel.
func NewDevState(cfg Config, rng common.Random, gui GUI) (*State, *Panel) {
	if gui == nil || !cfg.DevMode {
		return NewState(cfg, rng), nil
	}
	s := newState(cfg)
	p := NewPanel(s, gui, rng)
	p.BuildPools()
	s.selectLook(rng)
	p.BuildOptions()
	s.deriveFeatures(rng)
	return s, p
}

func newState(cfg Config) *State {
	return &State{
		Config:   &cfg,
		DevMode:  cfg.DevMode,
		passBase: make(map[int][]*PassOptions),
	}
}

// selectLook draws the composition and the palette from the current pools.
func (s *State) selectLook(rng common.Random) {
	cfg := s.Config
	s.Composition = SelectComposition(rng, cfg.IncludedCompositions(), cfg.Composition)
	s.Palette = SelectPalette(rng, cfg.IncludedPalettes(), cfg.Palette)
	s.Options = cfg.OptionsFor(s.Composition)
}

func (s *State) deriveFeatures(rng common.Random) {
	s.Features = DeriveFeatures(rng, s.Options, *s.Config)
}

// Pool returns the compositions views other than the first draw from. It
// reflects pool edits made during the run.
func (s *State) Pool() []Composition {
	if s.Config == nil {
		return nil
	}
	return s.Config.IncludedCompositions()
}

// SelectComposition returns override when set, otherwise a draw from pool.
// An empty pool yields the default composition.
func SelectComposition(rng common.Random, pool []Composition, override Composition) Composition {
	if override != "" {
		return override
	}
	if len(pool) == 0 {
		return CompDefault
	}
	return common.Choice(rng, pool)
}

// SelectPalette returns the palette named by override, otherwise a draw from
// pool. An unknown override falls back to drawing.
func SelectPalette(rng common.Random, pool []Palette, override string) Palette {
	for _, p := range pool {
		if override != "" && p.Name == override {
			return p
		}
	}
	if len(pool) == 0 {
		return Palette{Name: "none", Colors: []string{"#000"}}
	}
	return common.Choice(rng, pool)
}

// DeriveFeatures draws the layer count and the colour weight.
func DeriveFeatures(rng common.Random, opts *GlobalOptions, cfg Config) Features {
	var f Features
	if cfg.Layers > 0 {
		f.Layers = cfg.Layers
	} else {
		lo, hi := opts.MinLayers, opts.MaxLayers
		if lo < 1 {
			lo = 1
		}
		if hi < lo {
			hi = lo
		}
		f.Layers = lo + rng.Intn(hi-lo+1)
	}
	f.ColorW = rng.Uniform(cfg.ColorWMin, cfg.ColorWMax)
	return f
}

// Layer returns the options of layer i, creating defaults for any missing
// index up to i.
func (s *State) Layer(i int) *LayerOptions {
	for len(s.Layers) <= i {
		s.Layers = append(s.Layers, DefaultLayerOptions())
	}
	return s.Layers[i]
}

// View returns the options of view i, creating single-pass defaults for any
// missing index up to i.
func (s *State) View(i int) *ViewOptions {
	for len(s.Views) <= i {
		s.Views = append(s.Views, DefaultViewOptions(1))
	}
	return s.Views[i]
}

// setView stores opts as view i.
func (s *State) setView(i int, opts *ViewOptions) {
	s.View(i)
	s.Views[i] = opts
}

// setSubComp records the sub-composition of view i.
func (s *State) setSubComp(i int, comp Composition) {
	for len(s.SubComps) <= i {
		s.SubComps = append(s.SubComps, "")
	}
	s.SubComps[i] = comp
}

// restorePasses resets opts' passes to the records first seen for view i.
// The first call for an index, or a call with a changed pass count, takes a
// new snapshot instead.
func (s *State) restorePasses(i int, opts *ViewOptions) {
	if s.passBase == nil {
		s.passBase = make(map[int][]*PassOptions)
	}
	base, ok := s.passBase[i]
	if !ok || len(base) != len(opts.Passes) {
		base = make([]*PassOptions, len(opts.Passes))
		for j, p := range opts.Passes {
			base[j] = p.Clone()
		}
		s.passBase[i] = base
		return
	}
	for j, p := range base {
		*opts.Passes[j] = *p.Clone()
	}
}
