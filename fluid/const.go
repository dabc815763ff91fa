package fluid

// Composition selects the layout and the per-layer synthesis rules of a run.
type Composition string

// Known compositions. Anything else falls back to the default layout and
// leaves synthesized parameters at their base values.
const (
	CompBox     Composition = "box"
	CompDefault Composition = "default"
	CompSea     Composition = "sea"
	CompStone   Composition = "stone"
	CompCells   Composition = "cells"
	CompSand    Composition = "sand"
	CompGlitch  Composition = "glitch"
	CompPNoise  Composition = "pnoise"
)

// BlendMode is a three.js blending constant.
type BlendMode int

const (
	NoBlending BlendMode = iota
	NormalBlending
	AdditiveBlending
	SubtractiveBlending
	MultiplyBlending
	CustomBlending
)

// MaxBlendMode is the largest blending code the panels accept.
const MaxBlendMode = CustomBlending

// View synthesis constants
const (
	ViewOpacity     = 0.96
	PassDissipation = 0.0005
	NoiseZoomMin    = 400
	NoiseZoomMax    = 1700
)

// Sub-composition overrides
const (
	SeaZoomMin = 0.9
	SeaZoomMax = 1.4

	// Stone and cells invert the flow.
	InvertedZoomMin = 0.3
	InvertedZoomMax = 0.6
	CellsZoomScale  = 10.0

	StoneCoefficientScale = 1.5
	CellsCoefficientScale = 2.0

	SandZoomMin = 0.1
	SandZoomMax = 0.3

	GlitchZoomMin   = 1.5
	GlitchZoomMax   = 5.0
	GlitchBlendMode = NormalBlending
)

// Shader uniforms
const (
	UniformNoiseZoom   = "uNoiseZoom"
	UniformNoiseOffset = "uNoiseOffset"
	UniformNoiseMove   = "uNoiseMove"
	UniformNoiseMin    = "uNoiseMin"
	UniformNoiseMax    = "uNoiseMax"
	UniformNoiseSpeed  = "uNoiseSpeed"

	NoiseOffsetMax     = 1000
	NoiseDrift         = 0.0001
	PeriodicNoiseSpeed = 10.0
	SimplexNoiseSpeed  = 0.0001
)

// Box composition
const (
	BoxSize = 500
)

// Change scheduling, in milliseconds
const (
	ChangeDelayMin = 4000
	ChangeDelayMax = 12000
)
