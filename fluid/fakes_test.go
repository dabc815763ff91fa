package fluid

import "github.com/simukka/fluid-sketch/common"

// countingRNG counts draws made through the Random interface.
type countingRNG struct {
	*common.SeededRNG
	calls int
}

func newCountingRNG(seed uint32) *countingRNG {
	return &countingRNG{SeededRNG: common.NewSeededRNG(seed)}
}

func (r *countingRNG) Uniform(min, max float64) float64 {
	r.calls++
	return r.SeededRNG.Uniform(min, max)
}

func (r *countingRNG) Exponential(min, max float64) float64 {
	r.calls++
	return r.SeededRNG.Exponential(min, max)
}

func (r *countingRNG) Intn(n int) int {
	r.calls++
	return r.SeededRNG.Intn(n)
}

type fakePass struct {
	program  Program
	uniforms map[string]interface{}
}

func newFakePass() *fakePass {
	return &fakePass{uniforms: make(map[string]interface{})}
}

func (p *fakePass) SetProgram(program Program) { p.program = program }

func (p *fakePass) SetUniform(name string, value interface{}) { p.uniforms[name] = value }

type fakeTarget struct {
	passes   []*ViewOptions
	indexes  []int
	blending []BlendMode
	renders  int
}

func (t *fakeTarget) AddPass(blending BlendMode, index int, view *ViewOptions) {
	t.blending = append(t.blending, blending)
	t.indexes = append(t.indexes, index)
	t.passes = append(t.passes, view)
}

func (t *fakeTarget) Render() { t.renders++ }

type fakeVolume struct {
	size     float64
	blending BlendMode
	target   *fakeTarget
}

func (v *fakeVolume) RenderTarget() RenderTarget { return v.target }

type fakeOverlay struct {
	visible  bool
	blending BlendMode
	opacity  float64
	calls    int
}

func (o *fakeOverlay) SetVisible(visible bool)    { o.visible = visible; o.calls++ }
func (o *fakeOverlay) SetBlending(mode BlendMode) { o.blending = mode; o.calls++ }
func (o *fakeOverlay) SetOpacity(opacity float64) { o.opacity = opacity; o.calls++ }

type fakeDebugView struct {
	visible bool
	lines   []string
}

func (d *fakeDebugView) SetVisible(visible bool) { d.visible = visible }
func (d *fakeDebugView) SetText(lines []string)  { d.lines = lines }

type fakeLayer struct {
	index   int
	visible bool
	opts    *LayerOptions
	resets  int
}

func (l *fakeLayer) Index() int                    { return l.index }
func (l *fakeLayer) SetVisible(visible bool)       { l.visible = visible }
func (l *fakeLayer) SetOptions(opts *LayerOptions) { l.opts = opts }
func (l *fakeLayer) Reset()                        { l.resets++ }

type fakeView struct {
	pushed int
	last   *ViewOptions
}

func (v *fakeView) SetOptions(opts *ViewOptions) { v.pushed++; v.last = opts }

type timer struct {
	delay float64
	fn    func()
}

type fakeEngine struct {
	background   string
	controls     bool
	volume       *fakeVolume
	inScene      []Layer
	layers       int
	pipeline     int
	overlay      *fakeOverlay
	debug        *fakeDebugView
	added        int
	resets       int
	renders      int
	resizes      int
	frameResets  int
	updatedViews []int
	timers       []timer
	reloads      int
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{debug: &fakeDebugView{}}
}

func (e *fakeEngine) SetBackground(color string) { e.background = color }
func (e *fakeEngine) InitControls()              { e.controls = true }

func (e *fakeEngine) AddVolume(size float64, blending BlendMode) Volume {
	e.volume = &fakeVolume{size: size, blending: blending, target: &fakeTarget{}}
	return e.volume
}

func (e *fakeEngine) AddToScene(layer Layer) { e.inScene = append(e.inScene, layer) }
func (e *fakeEngine) CreateLayers(count int) { e.layers = count }
func (e *fakeEngine) CreatePipeline(count int) {
	e.pipeline = count
}

func (e *fakeEngine) CreateSnapOverlay() Overlay {
	e.overlay = &fakeOverlay{}
	return e.overlay
}

func (e *fakeEngine) DebugView() DebugView { return e.debug }
func (e *fakeEngine) AddNewLayer()         { e.added++ }
func (e *fakeEngine) ResetLayers()         { e.resets++ }
func (e *fakeEngine) RenderLayers()        { e.renders++ }
func (e *fakeEngine) ResizeLayers()        { e.resizes++ }
func (e *fakeEngine) ResetFrame()          { e.frameResets++ }

func (e *fakeEngine) UpdateView(index int, opts *ViewOptions) {
	e.updatedViews = append(e.updatedViews, index)
}

func (e *fakeEngine) AfterFunc(delayMs float64, fn func()) {
	e.timers = append(e.timers, timer{delay: delayMs, fn: fn})
}

func (e *fakeEngine) Reload() { e.reloads++ }

// runTimers fires pending timers, including ones scheduled while running,
// up to limit.
func (e *fakeEngine) runTimers(limit int) int {
	fired := 0
	for len(e.timers) > 0 && fired < limit {
		t := e.timers[0]
		e.timers = e.timers[1:]
		t.fn()
		fired++
	}
	return fired
}

type fakeControl struct {
	binding  Binding
	kind     string
	min, max float64
	step     float64
	choices  []string
	listen   bool
	onChange func()
}

func (c *fakeControl) Listen() Control { c.listen = true; return c }

func (c *fakeControl) OnChange(fn func()) Control { c.onChange = fn; return c }

// change simulates a user edit.
func (c *fakeControl) change(v interface{}) {
	c.binding.Set(v)
	if c.onChange != nil {
		c.onChange()
	}
}

type fakeFolder struct {
	name     string
	remember bool
	controls []*fakeControl
	buttons  map[string]func()
	saved    map[string]interface{}
}

// add registers c, restoring a remembered value the way the GUI does when
// a control is added.
func (f *fakeFolder) add(c *fakeControl) Control {
	f.controls = append(f.controls, c)
	if v, ok := f.saved[c.binding.Name]; ok && f.remember {
		c.binding.Set(v)
	}
	return c
}

func (f *fakeFolder) AddNumber(b Binding, min, max, step float64) Control {
	return f.add(&fakeControl{binding: b, kind: "number", min: min, max: max, step: step})
}

func (f *fakeFolder) AddChoice(b Binding, choices []string) Control {
	return f.add(&fakeControl{binding: b, kind: "choice", choices: choices})
}

func (f *fakeFolder) AddToggle(b Binding) Control {
	return f.add(&fakeControl{binding: b, kind: "toggle"})
}

func (f *fakeFolder) AddButton(name string, fn func()) {
	if f.buttons == nil {
		f.buttons = make(map[string]func())
	}
	f.buttons[name] = fn
}

func (f *fakeFolder) control(name string) *fakeControl {
	for _, c := range f.controls {
		if c.binding.Name == name {
			return c
		}
	}
	return nil
}

type fakeGUI struct {
	folders []*fakeFolder
	// remembered holds saved values per remembered folder.
	remembered map[string]map[string]interface{}
}

func (g *fakeGUI) AddFolder(name string, remember bool) Folder {
	f := &fakeFolder{name: name, remember: remember, saved: g.remembered[name]}
	g.folders = append(g.folders, f)
	return f
}

func (g *fakeGUI) folder(name string) *fakeFolder {
	for _, f := range g.folders {
		if f.name == name {
			return f
		}
	}
	return nil
}

// testConfig returns a configuration with the given pool and a fixed layer
// count.
func testConfig(primary Composition, layers int, pool ...Composition) Config {
	cfg := DefaultConfig()
	cfg.Composition = primary
	cfg.Layers = layers
	cfg.Compositions = nil
	for _, c := range pool {
		cfg.Compositions = append(cfg.Compositions, CompositionToggle{Name: c, Included: true})
	}
	return cfg
}

// passesOf returns a view record with n passes at base values.
func passesOf(n int) *ViewOptions {
	return DefaultViewOptions(n)
}
