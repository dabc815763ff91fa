package fluid

import (
	"math"
	"strconv"

	"github.com/simukka/fluid-sketch/common"
)

// GUI is the developer panel toolkit.
type GUI interface {
	// AddFolder adds a named group. Remembered folders persist their values
	// across reloads.
	AddFolder(name string, remember bool) Folder
}

// Folder is a group of controls.
type Folder interface {
	AddNumber(b Binding, min, max, step float64) Control
	AddChoice(b Binding, choices []string) Control
	AddToggle(b Binding) Control
	AddButton(name string, fn func())
}

// Control is one registered widget.
type Control interface {
	// Listen makes the widget follow changes made outside it.
	Listen() Control
	// OnChange replaces the widget's change handler.
	OnChange(fn func()) Control
}

// Binding connects a widget to a value. Get returns a float64, string or
// bool matching the widget kind; Set receives the same kind.
type Binding struct {
	Name string
	Get  func() interface{}
	Set  func(v interface{})
}

type widgetKind int

const (
	numberWidget widgetKind = iota
	choiceWidget
	toggleWidget
)

// optionField describes the control of one GlobalOptions field.
type optionField struct {
	field          Field
	kind           widgetKind
	min, max, step float64
	choices        []string
	listen         bool
	// effect marks controls that act on live engine objects.
	effect bool
	get    func(o *GlobalOptions) interface{}
	set    func(o *GlobalOptions, v interface{}) bool
}

func intField(f Field, min, max, step float64, ptr func(o *GlobalOptions) *int) optionField {
	return optionField{
		field: f, kind: numberWidget, min: min, max: max, step: step,
		get: func(o *GlobalOptions) interface{} { return float64(*ptr(o)) },
		set: func(o *GlobalOptions, v interface{}) bool {
			x, ok := toFloat(v)
			if ok {
				*ptr(o) = int(math.Round(clamp(x, min, max)))
			}
			return ok
		},
	}
}

func floatField(f Field, min, max, step float64, ptr func(o *GlobalOptions) *float64) optionField {
	return optionField{
		field: f, kind: numberWidget, min: min, max: max, step: step,
		get: func(o *GlobalOptions) interface{} { return *ptr(o) },
		set: func(o *GlobalOptions, v interface{}) bool {
			x, ok := toFloat(v)
			if ok {
				*ptr(o) = clamp(x, min, max)
			}
			return ok
		},
	}
}

func boolField(f Field, ptr func(o *GlobalOptions) *bool) optionField {
	return optionField{
		field: f, kind: toggleWidget,
		get: func(o *GlobalOptions) interface{} { return *ptr(o) },
		set: func(o *GlobalOptions, v interface{}) bool {
			b, ok := toBool(v)
			if ok {
				*ptr(o) = b
			}
			return ok
		},
	}
}

func choiceField(f Field, choices []string, ptr func(o *GlobalOptions) *string) optionField {
	return optionField{
		field: f, kind: choiceWidget, choices: choices,
		get: func(o *GlobalOptions) interface{} { return *ptr(o) },
		set: func(o *GlobalOptions, v interface{}) bool {
			s, ok := v.(string)
			if !ok || !contains(choices, s) {
				return false
			}
			*ptr(o) = s
			return true
		},
	}
}

func (f optionField) listening() optionField {
	f.listen = true
	return f
}

func (f optionField) withEffect() optionField {
	f.effect = true
	return f
}

// StrokesRelations are the values the strokesRel control offers.
var StrokesRelations = []string{"same", "mirror", "mirrorX", "mirrorY", "mirrorRand", "random"}

// optionFields lists every optional field in panel order.
var optionFields = []optionField{
	intField(FieldMinLayers, 1, 5, 1, func(o *GlobalOptions) *int { return &o.MinLayers }),
	intField(FieldMaxLayers, 1, 5, 1, func(o *GlobalOptions) *int { return &o.MaxLayers }),
	floatField(FieldOpacity, 0, 1, 0.01, func(o *GlobalOptions) *float64 { return &o.Opacity }),
	intField(FieldMinStrokes, 1, 22, 1, func(o *GlobalOptions) *int { return &o.MinStrokes }),
	intField(FieldMaxStrokes, 1, 22, 1, func(o *GlobalOptions) *int { return &o.MaxStrokes }),
	choiceField(FieldStrokesRel, StrokesRelations, func(o *GlobalOptions) *string { return &o.StrokesRel }),
	floatField(FieldMinSpeed, 0.001, 0.01, 0.001, func(o *GlobalOptions) *float64 { return &o.MinSpeed }).listening(),
	floatField(FieldMaxSpeed, 0.01, 0.1, 0.001, func(o *GlobalOptions) *float64 { return &o.MaxSpeed }).listening(),
	floatField(FieldSpeedMult, 0.1, 10, 0.1, func(o *GlobalOptions) *float64 { return &o.SpeedMult }).listening(),
	floatField(FieldMinDt, 0.1, 0.3, 0.01, func(o *GlobalOptions) *float64 { return &o.MinDt }),
	floatField(FieldMaxDt, 0.1, 0.3, 0.01, func(o *GlobalOptions) *float64 { return &o.MaxDt }),
	intField(FieldMaxIterations, 1, 20, 1, func(o *GlobalOptions) *int { return &o.MaxIterations }),
	choiceField(FieldOnClick, ClickActions, func(o *GlobalOptions) *string { return &o.OnClick }),
	choiceField(FieldOnChange, ChangeActions, func(o *GlobalOptions) *string { return &o.OnChange }),
	intField(FieldMaxChanges, 0, 20, 1, func(o *GlobalOptions) *int { return &o.MaxChanges }),
	{
		field: FieldSnapBlending, kind: numberWidget, min: 1, max: 5, step: 1, effect: true,
		get: func(o *GlobalOptions) interface{} { return float64(o.SnapBlending) },
		set: func(o *GlobalOptions, v interface{}) bool {
			x, ok := toFloat(v)
			if ok {
				o.SnapBlending = BlendMode(math.Round(clamp(x, 1, 5)))
			}
			return ok
		},
	},
	floatField(FieldSnapOpacity, 0, 1, 0.01, func(o *GlobalOptions) *float64 { return &o.SnapOpacity }).withEffect(),
	boolField(FieldSnapOverlay, func(o *GlobalOptions) *bool { return &o.SnapOverlay }).withEffect(),
	boolField(FieldShowDebug, func(o *GlobalOptions) *bool { return &o.ShowDebug }).withEffect(),
	boolField(FieldBackground, func(o *GlobalOptions) *bool { return &o.Background }),
	boolField(FieldUsePipeline, func(o *GlobalOptions) *bool { return &o.UsePipeline }),
	floatField(FieldNoiseMin, 0, 1, 0.01, func(o *GlobalOptions) *float64 { return &o.NoiseMin }),
	floatField(FieldNoiseMax, 0, 1, 0.01, func(o *GlobalOptions) *float64 { return &o.NoiseMax }),
}

// Panel is the developer panel over the run's options. A GlobalOptions
// field gets a control only when the composition supports it.
type Panel struct {
	state *State
	gui   GUI
	rng   common.Random

	// OnEffect runs after any control that acts on live engine objects
	// changes.
	OnEffect func()
	// OnEdit is told about every edit made in the panel itself.
	OnEdit func(f Field, value interface{})
	// OnLayerUpdate is called after a layer control changes layer i.
	OnLayerUpdate func(i int)

	registered []Field
	defs       map[Field]optionField
}

// NewPanel creates an empty panel.
func NewPanel(state *State, gui GUI, rng common.Random) *Panel {
	return &Panel{
		state: state,
		gui:   gui,
		rng:   rng,
		defs:  make(map[Field]optionField),
	}
}

// Build registers the pool checkboxes and the option controls of a state
// whose selection is already drawn.
func (p *Panel) Build() {
	p.BuildPools()
	p.BuildOptions()
}

// BuildPools registers the remembered composition and palette checkboxes.
// Folder order is fixed, since presets are matched by registration order.
func (p *Panel) BuildPools() {
	cfg := p.state.Config
	if cfg == nil {
		return
	}
	comps := p.gui.AddFolder("Compositions", true)
	for i := range cfg.Compositions {
		t := &cfg.Compositions[i]
		comps.AddToggle(boolBinding(string(t.Name), &t.Included))
	}
	palettes := p.gui.AddFolder("Palettes", true)
	for i := range cfg.Palettes {
		pal := &cfg.Palettes[i]
		palettes.AddToggle(boolBinding(pal.Name, &pal.Included))
	}
}

// BuildOptions registers the remembered option controls supported by the
// chosen composition.
func (p *Panel) BuildOptions() {
	opts := p.state.Options
	folder := p.gui.AddFolder("Options", true)
	for _, def := range optionFields {
		if !opts.Has(def.field) {
			continue
		}
		p.register(folder, def)
	}
}

func (p *Panel) register(folder Folder, def optionField) {
	opts := p.state.Options
	b := Binding{
		Name: string(def.field),
		Get:  func() interface{} { return def.get(opts) },
		Set:  func(v interface{}) { def.set(opts, v) },
	}

	var c Control
	switch def.kind {
	case numberWidget:
		c = folder.AddNumber(b, def.min, def.max, def.step)
	case choiceWidget:
		c = folder.AddChoice(b, def.choices)
	case toggleWidget:
		c = folder.AddToggle(b)
	}
	if def.listen {
		c = c.Listen()
	}
	c.OnChange(func() { p.changed(def) })

	p.registered = append(p.registered, def.field)
	p.defs[def.field] = def
}

func (p *Panel) changed(def optionField) {
	if def.effect && p.OnEffect != nil {
		p.OnEffect()
	}
	if p.OnEdit != nil {
		p.OnEdit(def.field, def.get(p.state.Options))
	}
}

// Registered returns the option fields that got a control, in panel order.
func (p *Panel) Registered() []Field {
	return append([]Field(nil), p.registered...)
}

// Set applies an edit made outside the panel, such as one mirrored from
// another tab. It reports false for unregistered fields and values of the
// wrong kind.
func (p *Panel) Set(f Field, value interface{}) bool {
	def, ok := p.defs[f]
	if !ok || !def.set(p.state.Options, value) {
		return false
	}
	if def.effect && p.OnEffect != nil {
		p.OnEffect()
	}
	return true
}

// AddLayer registers the controls of layer i.
func (p *Panel) AddLayer(i int, opts *LayerOptions) {
	folder := p.gui.AddFolder("Layer "+strconv.Itoa(i), false)
	update := func() {
		if p.OnLayerUpdate != nil {
			p.OnLayerUpdate(i)
		}
	}
	blend := func(ptr *BlendMode) func(v interface{}) {
		return func(v interface{}) {
			if x, ok := toFloat(v); ok {
				*ptr = BlendMode(math.Round(clamp(x, 0, float64(MaxBlendMode))))
			}
		}
	}

	folder.AddToggle(boolBinding("visible", &opts.Visible)).Listen().OnChange(update)
	folder.AddNumber(Binding{
		Name: "blendModePass",
		Get:  func() interface{} { return float64(opts.BlendModePass) },
		Set:  blend(&opts.BlendModePass),
	}, 0, float64(MaxBlendMode), 1).Listen().OnChange(update)
	folder.AddNumber(Binding{
		Name: "blendModeView",
		Get:  func() interface{} { return float64(opts.BlendModeView) },
		Set:  blend(&opts.BlendModeView),
	}, 0, float64(MaxBlendMode), 1).Listen().OnChange(update)
	folder.AddNumber(floatBinding("zoom", &opts.Zoom), 0.1, 20, 0.1).Listen().OnChange(update)
	folder.AddNumber(floatBinding("dt", &opts.Dt), 0.1, 0.3, 0.01).Listen().OnChange(update)
	folder.AddNumber(floatBinding("K", &opts.K), 0, 1, 0.01).Listen().OnChange(update)
	folder.AddNumber(floatBinding("nu", &opts.Nu), 0, 1, 0.01).Listen().OnChange(update)
	folder.AddNumber(floatBinding("kappa", &opts.Kappa), 0, 1, 0.01).Listen().OnChange(update)
	folder.AddButton("randomize", func() {
		RandomizeLayer(p.rng, opts)
		update()
	})
}

// AddView registers the controls of view i and its passes. Controls act on
// the record stored for the view when they are used, so a view whose
// options are initialized again keeps a working panel.
func (p *Panel) AddView(i int, view View) {
	current := func() *ViewOptions { return p.state.View(i) }
	folder := p.gui.AddFolder("View "+strconv.Itoa(i), false)
	push := func() { view.SetOptions(current()) }

	folder.AddNumber(floatRef("opacity", func() *float64 { return &current().Opacity }), 0, 1, 0.01).Listen().OnChange(push)
	folder.AddNumber(floatRef("colorW", func() *float64 { return &current().ColorW }), 0, 2, 0.01).Listen().OnChange(push)
	folder.AddNumber(Binding{
		Name: "blendModeView",
		Get:  func() interface{} { return float64(current().BlendModeView) },
		Set: func(v interface{}) {
			if x, ok := toFloat(v); ok {
				current().BlendModeView = BlendMode(math.Round(clamp(x, 0, float64(MaxBlendMode))))
			}
		},
	}, 0, float64(MaxBlendMode), 1).Listen().OnChange(push)

	for j := range current().Passes {
		j := j
		pass := func() *PassOptions {
			if passes := current().Passes; j < len(passes) {
				return passes[j]
			}
			return nil
		}
		field := func(ptr func(po *PassOptions) *float64) func() *float64 {
			return func() *float64 {
				if po := pass(); po != nil {
					return ptr(po)
				}
				return nil
			}
		}
		prefix := "pass " + strconv.Itoa(j) + " "
		folder.AddNumber(floatRef(prefix+"noiseZoom", field(func(po *PassOptions) *float64 { return &po.NoiseZoom })), 100, 3000, 1).Listen().OnChange(push)
		folder.AddNumber(floatRef(prefix+"fluidZoom", field(func(po *PassOptions) *float64 { return &po.FluidZoom })), -10, 10, 0.01).Listen().OnChange(push)
		folder.AddNumber(floatRef(prefix+"K", field(func(po *PassOptions) *float64 { return &po.K })), 0, 1, 0.01).Listen().OnChange(push)
	}
}

// RandomizeLayer draws fresh layer parameters within the panel ranges.
func RandomizeLayer(rng common.Random, opts *LayerOptions) {
	opts.BlendModePass = BlendMode(rng.Intn(int(MaxBlendMode) + 1))
	opts.BlendModeView = BlendMode(rng.Intn(int(MaxBlendMode) + 1))
	opts.Zoom = rng.Exponential(0.5, 4)
	opts.Dt = rng.Uniform(0.1, 0.3)
	opts.K = rng.Uniform(0, 1)
	opts.Nu = rng.Uniform(0, 1)
	opts.Kappa = rng.Uniform(0, 1)
}

func floatBinding(name string, ptr *float64) Binding {
	return floatRef(name, func() *float64 { return ptr })
}

// floatRef binds a value located at use time. A nil location reads as zero
// and ignores writes.
func floatRef(name string, ref func() *float64) Binding {
	return Binding{
		Name: name,
		Get: func() interface{} {
			if ptr := ref(); ptr != nil {
				return *ptr
			}
			return 0.0
		},
		Set: func(v interface{}) {
			ptr := ref()
			if x, ok := toFloat(v); ok && ptr != nil {
				*ptr = x
			}
		},
	}
}

func boolBinding(name string, ptr *bool) Binding {
	return Binding{
		Name: name,
		Get:  func() interface{} { return *ptr },
		Set: func(v interface{}) {
			if b, ok := toBool(v); ok {
				*ptr = b
			}
		},
	}
}

func toFloat(v interface{}) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case string:
		f, err := strconv.ParseFloat(x, 64)
		return f, err == nil
	}
	return 0, false
}

func toBool(v interface{}) (bool, bool) {
	switch x := v.(type) {
	case bool:
		return x, true
	case string:
		b, err := strconv.ParseBool(x)
		return b, err == nil
	}
	return false, false
}

func clamp(x, min, max float64) float64 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
