package fluid

// Dispatcher builds the top-level layout of the chosen composition.
type Dispatcher struct {
	state     *State
	engine    Engine
	scheduler *Scheduler

	// Overlay is the snapshot surface of the layered layout; nil for the box.
	Overlay Overlay
	target  RenderTarget
}

// NewDispatcher creates a dispatcher. scheduler may be nil.
func NewDispatcher(state *State, engine Engine, scheduler *Scheduler) *Dispatcher {
	return &Dispatcher{state: state, engine: engine, scheduler: scheduler}
}

// Construct builds exactly one layout. Unknown compositions get the
// default layout.
func (d *Dispatcher) Construct() {
	switch d.state.Composition {
	case CompBox:
		d.constructBox()
	default:
		d.constructDefault()
	}
}

// constructBox renders a single fluid view onto the faces of a cube.
func (d *Dispatcher) constructBox() {
	d.engine.SetBackground(d.state.Palette.Background())
	d.engine.InitControls()

	view := d.state.View(0)
	volume := d.engine.AddVolume(BoxSize, view.BlendModeView)
	d.target = volume.RenderTarget()
	d.target.AddPass(view.BlendModePass, 0, view)
}

func (d *Dispatcher) constructDefault() {
	opts := d.state.Options
	if opts.UsePipeline {
		d.engine.CreatePipeline(d.state.Features.Layers)
	} else {
		d.engine.CreateLayers(d.state.Features.Layers)
	}
	if opts.Background {
		d.engine.SetBackground(d.state.Palette.Background())
	}
	d.Overlay = d.engine.CreateSnapOverlay()
	if opts.Has(FieldMaxChanges) && opts.MaxChanges > 0 && d.scheduler != nil {
		d.scheduler.Start()
	}
}

// Render draws one frame of the constructed layout.
func (d *Dispatcher) Render() {
	if d.target != nil {
		d.target.Render()
		return
	}
	d.engine.RenderLayers()
}
