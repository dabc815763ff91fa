package fluid

import "github.com/simukka/fluid-sketch/common"

// LayerCreated is raised once per layer the engine builds.
type LayerCreated struct {
	Layer Layer
}

// ViewOptionsInit is raised before a view builds its passes. Options is
// engine-owned and partially filled; handlers complete it in place.
type ViewOptionsInit struct {
	Index   int
	Options *ViewOptions
}

// ViewCreated is raised after a view is built.
type ViewCreated struct {
	View  View
	Index int
}

// PassOptionsApply is raised when a pass takes its options, before it is
// first rendered.
type PassOptionsApply struct {
	Pass    Pass
	Options *PassOptions
}

// Controller receives every notification the engine and the page raise.
// All calls arrive on the render loop, one at a time.
type Controller interface {
	OnLayerCreated(e LayerCreated)
	OnViewOptionsInit(e ViewOptionsInit)
	OnViewCreated(e ViewCreated)
	OnPassOptionsApply(e PassOptionsApply)

	// OnFrame is called once per rendered frame with the loop time in ms.
	OnFrame(currentTime float64)
	OnClick()
	OnResize()
	// OnDoubleClick is called for double clicks; onGUI reports whether the
	// target was inside the developer panel.
	OnDoubleClick(onGUI bool)
	// OnKeyDown is called for key presses and reports whether the key was
	// consumed.
	OnKeyDown(keyCode int) bool
}

// Compile-time interface check
var _ Controller = (*Bridge)(nil)

// Bridge routes engine notifications to synthesis, shader selection and
// the developer panels.
type Bridge struct {
	State      *State
	Engine     Engine
	Synth      *Synthesizer
	Shader     *Selector
	Dispatcher *Dispatcher
	Scheduler  *Scheduler
	Overlay    *DebugOverlay
	// Panel is nil outside developer mode.
	Panel *Panel

	layers []Layer
}

// NewBridge assembles a controller. panel is the developer panel built with
// the state and may be nil.
func NewBridge(state *State, engine Engine, rng common.Random, panel *Panel) *Bridge {
	synth := NewSynthesizer(rng)
	scheduler := NewScheduler(state, engine, synth, rng)
	b := &Bridge{
		State:      state,
		Engine:     engine,
		Synth:      synth,
		Shader:     NewSelector(rng),
		Scheduler:  scheduler,
		Dispatcher: NewDispatcher(state, engine, scheduler),
		Overlay:    NewDebugOverlay(),
	}
	if panel != nil {
		panel.OnEffect = b.applyEffects
		panel.OnLayerUpdate = b.updateLayer
		b.Panel = panel
	}
	return b
}

// Start constructs the composition and applies the overlay options once.
func (b *Bridge) Start() {
	Debug("composition:", string(b.State.Composition), "palette:", b.State.Palette.Name, "layers:", b.State.Features.Layers)
	b.Dispatcher.Construct()
	b.applyEffects()
}

// OnLayerCreated registers the layer surface, except for the box which
// renders its single view onto the cube.
func (b *Bridge) OnLayerCreated(e LayerCreated) {
	i := e.Layer.Index()
	for len(b.layers) <= i {
		b.layers = append(b.layers, nil)
	}
	b.layers[i] = e.Layer
	opts := b.State.Layer(i)

	if b.State.Composition != CompBox {
		b.Engine.AddToScene(e.Layer)
	}
	if b.Panel != nil {
		b.Panel.AddLayer(i, opts)
	}
}

// OnViewOptionsInit synthesizes the view and its passes in place.
func (b *Bridge) OnViewOptionsInit(e ViewOptionsInit) {
	sub := b.Synth.InitView(b.State, e.Index, e.Options)
	Debug("view", e.Index, "sub-composition:", string(sub), "blend:", int(e.Options.BlendModeView))
}

// OnViewCreated registers the per-view panel in developer mode.
func (b *Bridge) OnViewCreated(e ViewCreated) {
	if b.State.DevMode && b.Panel != nil {
		b.Panel.AddView(e.Index, e.View)
	}
}

// OnPassOptionsApply sets the pass program and uniforms.
func (b *Bridge) OnPassOptionsApply(e PassOptionsApply) {
	b.Shader.Apply(b.State.Composition, e.Pass, e.Options)
}

// OnFrame updates the debug overlay and renders the layout.
func (b *Bridge) OnFrame(currentTime float64) {
	b.Overlay.UpdateFPS(currentTime)
	b.Overlay.Render(b.Engine.DebugView(), b.State)
	b.Dispatcher.Render()
}

// OnResize resizes the layer stack. The box keeps its fixed target.
func (b *Bridge) OnResize() {
	if b.State.Composition != CompBox {
		b.Engine.ResizeLayers()
	}
}

// OnDoubleClick reloads the page in developer mode, unless the click landed
// on the panel.
func (b *Bridge) OnDoubleClick(onGUI bool) {
	if b.State.DevMode && !onGUI {
		b.Engine.Reload()
	}
}

// applyEffects pushes the overlay options onto the live engine objects.
func (b *Bridge) applyEffects() {
	opts := b.State.Options
	if opts.Has(FieldShowDebug) {
		b.Overlay.Visible = opts.ShowDebug
		if view := b.Engine.DebugView(); view != nil {
			view.SetVisible(opts.ShowDebug)
		}
	}
	overlay := b.Dispatcher.Overlay
	if overlay == nil {
		return
	}
	if opts.Has(FieldSnapOverlay) {
		overlay.SetVisible(opts.SnapOverlay)
	}
	if opts.Has(FieldSnapBlending) {
		overlay.SetBlending(opts.SnapBlending)
	}
	if opts.Has(FieldSnapOpacity) {
		overlay.SetOpacity(opts.SnapOpacity)
	}
}

// updateLayer pushes edited layer options into layer i and restarts every
// layer from frame zero.
func (b *Bridge) updateLayer(i int) {
	if i >= len(b.layers) || b.layers[i] == nil {
		return
	}
	opts := b.State.Layer(i)
	b.layers[i].SetVisible(opts.Visible)
	b.layers[i].SetOptions(opts)
	for _, l := range b.layers {
		if l != nil {
			l.Reset()
		}
	}
	b.Engine.ResetFrame()
}
