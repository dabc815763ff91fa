package fluid

import "sort"

// Field names an optional GlobalOptions field. Names match the keys the JS
// library and the developer panel use.
type Field string

const (
	FieldMinLayers     Field = "minLayers"
	FieldMaxLayers     Field = "maxLayers"
	FieldOpacity       Field = "opacity"
	FieldMinStrokes    Field = "minStrokes"
	FieldMaxStrokes    Field = "maxStrokes"
	FieldStrokesRel    Field = "strokesRel"
	FieldMinSpeed      Field = "minSpeed"
	FieldMaxSpeed      Field = "maxSpeed"
	FieldSpeedMult     Field = "speedMult"
	FieldMinDt         Field = "minDt"
	FieldMaxDt         Field = "maxDt"
	FieldMaxIterations Field = "maxIterations"
	FieldOnClick       Field = "onClick"
	FieldOnChange      Field = "onChange"
	FieldMaxChanges    Field = "maxChanges"
	FieldSnapOverlay   Field = "snapOverlay"
	FieldSnapBlending  Field = "snapBlending"
	FieldSnapOpacity   Field = "snapOpacity"
	FieldShowDebug     Field = "showDebug"
	FieldBackground    Field = "background"
	FieldUsePipeline   Field = "usePipeline"
	FieldNoiseMin      Field = "noiseMin"
	FieldNoiseMax      Field = "noiseMax"
)

// FieldSet is the set of GlobalOptions fields a composition supports. A field
// outside the set is treated as absent: no panel control, no behavior.
type FieldSet map[Field]struct{}

// NewFieldSet builds a set from the given fields.
func NewFieldSet(fields ...Field) FieldSet {
	fs := make(FieldSet, len(fields))
	for _, f := range fields {
		fs[f] = struct{}{}
	}
	return fs
}

// Has reports whether f is in the set.
func (fs FieldSet) Has(f Field) bool {
	_, ok := fs[f]
	return ok
}

// Without returns a copy of the set lacking the given fields.
func (fs FieldSet) Without(fields ...Field) FieldSet {
	out := make(FieldSet, len(fs))
	for f := range fs {
		out[f] = struct{}{}
	}
	for _, f := range fields {
		delete(out, f)
	}
	return out
}

// Fields returns the members in sorted order.
func (fs FieldSet) Fields() []Field {
	out := make([]Field, 0, len(fs))
	for f := range fs {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// GlobalOptions holds the run-wide tunables. Values of fields outside
// Supported are ignored.
type GlobalOptions struct {
	MinLayers     int
	MaxLayers     int
	Opacity       float64
	MinStrokes    int
	MaxStrokes    int
	StrokesRel    string
	MinSpeed      float64
	MaxSpeed      float64
	SpeedMult     float64
	MinDt         float64
	MaxDt         float64
	MaxIterations int
	OnClick       string
	OnChange      string
	MaxChanges    int
	SnapOverlay   bool
	SnapBlending  BlendMode
	SnapOpacity   float64
	ShowDebug     bool
	Background    bool
	UsePipeline   bool
	NoiseMin      float64
	NoiseMax      float64

	Supported FieldSet
}

// Has reports whether the field is present for the active composition.
func (o *GlobalOptions) Has(f Field) bool {
	return o.Supported.Has(f)
}

// Clone returns a deep copy.
func (o *GlobalOptions) Clone() *GlobalOptions {
	c := *o
	c.Supported = o.Supported.Without()
	return &c
}

// LayerOptions is the per-layer simulation record. K, Nu and Kappa are the
// diffusion, viscosity and curl coefficients of the fluid solver.
type LayerOptions struct {
	Visible       bool
	BlendModePass BlendMode
	BlendModeView BlendMode
	Zoom          float64
	Dt            float64
	K             float64
	Nu            float64
	Kappa         float64
}

// DefaultLayerOptions returns the record a freshly created layer starts with.
func DefaultLayerOptions() *LayerOptions {
	return &LayerOptions{
		Visible:       true,
		BlendModePass: NormalBlending,
		BlendModeView: NormalBlending,
		Zoom:          1,
		Dt:            0.15,
		K:             0.2,
		Nu:            0.5,
		Kappa:         0.1,
	}
}

// PassOptions is the per-pass record written by synthesis and read when the
// pass uniforms are applied.
type PassOptions struct {
	Diss      float64
	NoiseZoom float64
	NoiseMin  float64
	NoiseMax  float64
	FluidZoom float64
	// FluidZoom2 is only set by compositions that drive two flow fields.
	FluidZoom2 *float64
	K          float64
	// BlendModePass overrides the view's pass blending when set.
	BlendModePass *BlendMode
}

// FluidZooms returns the one or two fluid-zoom values of the pass.
func (p *PassOptions) FluidZooms() []float64 {
	if p.FluidZoom2 == nil {
		return []float64{p.FluidZoom}
	}
	return []float64{p.FluidZoom, *p.FluidZoom2}
}

// Clone returns a deep copy.
func (p *PassOptions) Clone() *PassOptions {
	c := *p
	if p.FluidZoom2 != nil {
		z := *p.FluidZoom2
		c.FluidZoom2 = &z
	}
	if p.BlendModePass != nil {
		b := *p.BlendModePass
		c.BlendModePass = &b
	}
	return &c
}

// ViewOptions is the per-view record: one simulation and render unit with
// an ordered list of passes.
type ViewOptions struct {
	Opacity       float64
	ColorW        float64
	BlendModeView BlendMode
	BlendModePass BlendMode
	Passes        []*PassOptions
}

// DefaultViewOptions returns a view record with the given number of passes
// carrying the solver's base coefficient.
func DefaultViewOptions(passes int) *ViewOptions {
	v := &ViewOptions{
		Opacity:       1,
		ColorW:        1,
		BlendModeView: NormalBlending,
		BlendModePass: NormalBlending,
		Passes:        make([]*PassOptions, passes),
	}
	for i := range v.Passes {
		v.Passes[i] = &PassOptions{FluidZoom: 1, K: 0.2}
	}
	return v
}

// Features are seed-derived facts about a run, fixed before synthesis.
type Features struct {
	Layers int
	ColorW float64
}
