package fluid

import "github.com/simukka/fluid-sketch/common"

// Synthesizer derives view and pass parameters from the seeded source.
// Draw order is fixed: view blend mode, sub-composition, then for each pass
// noise zoom followed by the sub-composition's own draws.
type Synthesizer struct {
	rng common.Random
}

// NewSynthesizer creates a synthesizer drawing from rng.
func NewSynthesizer(rng common.Random) *Synthesizer {
	return &Synthesizer{rng: rng}
}

// InitView fills opts for view index in place, stores it in state and
// returns the sub-composition chosen for the view. Calling it again for the
// same index regenerates the passes from their first-seen base values.
func (s *Synthesizer) InitView(state *State, index int, opts *ViewOptions) Composition {
	state.restorePasses(index, opts)

	opts.Opacity = ViewOpacity
	opts.ColorW = state.Features.ColorW
	opts.BlendModeView = common.Choice(s.rng, BlendCandidates(state.Options.Background, index, state.Features.Layers))

	sub := s.subComposition(state, index)
	for _, pass := range opts.Passes {
		s.initPass(state.Options, sub, pass)
	}

	state.setView(index, opts)
	state.setSubComp(index, sub)
	return sub
}

// BlendCandidates returns the view blend modes allowed for view index of a
// run with the given number of layers.
func BlendCandidates(background bool, index, layers int) []BlendMode {
	if background {
		// A lone view skips custom blending, which renders almost exactly
		// like normal blending over the background.
		if index == 0 && index+1 == layers {
			return []BlendMode{NoBlending, NormalBlending, AdditiveBlending, SubtractiveBlending}
		}
		return []BlendMode{NoBlending, NormalBlending, AdditiveBlending, SubtractiveBlending, CustomBlending}
	}
	if index > 0 {
		return []BlendMode{AdditiveBlending, SubtractiveBlending, CustomBlending}
	}
	return []BlendMode{AdditiveBlending, CustomBlending}
}

// subComposition keeps the primary composition for the first view. Later
// views draw from the pool without the primary when there is an
// alternative.
func (s *Synthesizer) subComposition(state *State, index int) Composition {
	if index == 0 {
		return state.Composition
	}
	pool := state.Pool()
	if len(pool) > 1 {
		pool = without(pool, state.Composition)
	}
	if len(pool) == 0 {
		return state.Composition
	}
	return common.Choice(s.rng, pool)
}

func (s *Synthesizer) initPass(opts *GlobalOptions, sub Composition, pass *PassOptions) {
	pass.Diss = PassDissipation
	pass.NoiseZoom = s.rng.Uniform(NoiseZoomMin, NoiseZoomMax)
	pass.NoiseMin = opts.NoiseMin
	pass.NoiseMax = opts.NoiseMax

	switch sub {
	case CompSea:
		pass.FluidZoom = s.rng.Exponential(SeaZoomMin, SeaZoomMax)
	case CompStone:
		pass.FluidZoom = -s.rng.Uniform(InvertedZoomMin, InvertedZoomMax)
		pass.K *= StoneCoefficientScale
	case CompCells:
		pass.FluidZoom = -s.rng.Uniform(InvertedZoomMin, InvertedZoomMax) * CellsZoomScale
		pass.K *= CellsCoefficientScale
	case CompSand:
		pass.FluidZoom = -s.rng.Exponential(SandZoomMin, SandZoomMax)
		z := s.rng.Exponential(SandZoomMin, SandZoomMax)
		pass.FluidZoom2 = &z
	case CompGlitch:
		b := GlitchBlendMode
		pass.BlendModePass = &b
		pass.FluidZoom = s.rng.Exponential(GlitchZoomMin, GlitchZoomMax)
	}
}

// without returns a copy of pool lacking every occurrence of comp.
func without(pool []Composition, comp Composition) []Composition {
	out := make([]Composition, 0, len(pool))
	for _, c := range pool {
		if c != comp {
			out = append(out, c)
		}
	}
	return out
}
