package fluid

import "github.com/simukka/fluid-sketch/common"

// Program names a fragment program variant of the fluid pass.
type Program string

const (
	// ProgramPeriodicNoise drives the flow with periodic Perlin noise.
	ProgramPeriodicNoise Program = "pnoise"
	// ProgramSimplexNoise drives the flow with simplex noise.
	ProgramSimplexNoise Program = "snoise"
)

// Vec2 is a two-component uniform value.
type Vec2 struct {
	X, Y float64
}

// Selector wires a pass's program and uniforms when its options are applied.
type Selector struct {
	rng common.Random
}

// NewSelector creates a selector drawing noise offsets from rng.
func NewSelector(rng common.Random) *Selector {
	return &Selector{rng: rng}
}

// ProgramFor returns the fragment program and noise speed of a composition.
func ProgramFor(comp Composition) (Program, float64) {
	if comp == CompPNoise {
		return ProgramPeriodicNoise, PeriodicNoiseSpeed
	}
	return ProgramSimplexNoise, SimplexNoiseSpeed
}

// Apply sets the pass program and uniforms from opts. The noise offset is
// drawn fresh on every call.
func (s *Selector) Apply(comp Composition, pass Pass, opts *PassOptions) {
	pass.SetUniform(UniformNoiseZoom, opts.NoiseZoom)
	pass.SetUniform(UniformNoiseOffset, Vec2{
		X: s.rng.Uniform(0, NoiseOffsetMax),
		Y: s.rng.Uniform(0, NoiseOffsetMax),
	})
	pass.SetUniform(UniformNoiseMove, Vec2{X: NoiseDrift, Y: 0})
	pass.SetUniform(UniformNoiseMin, opts.NoiseMin)
	pass.SetUniform(UniformNoiseMax, opts.NoiseMax)

	program, speed := ProgramFor(comp)
	pass.SetUniform(UniformNoiseSpeed, speed)
	pass.SetProgram(program)
}
