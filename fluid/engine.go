package fluid

// Engine is the rendering and fluid-simulation library the controller
// drives. The controller never renders; it only configures what the engine
// builds and tells it when to act.
type Engine interface {
	Scene
	LayerStack

	// AfterFunc runs fn on the render loop after delayMs milliseconds.
	AfterFunc(delayMs float64, fn func())
	// Reload restarts the whole page.
	Reload()
}

// Scene is the part of the engine holding visible objects.
type Scene interface {
	SetBackground(color string)
	// InitControls attaches orbit controls to the camera.
	InitControls()
	// AddVolume adds a cube of the given size, with edge lines, whose surface
	// material blends with the given mode.
	AddVolume(size float64, blending BlendMode) Volume
	// AddToScene registers a layer's visual surface for rendering.
	AddToScene(layer Layer)
	// CreateSnapOverlay adds the reference snapshot surface.
	CreateSnapOverlay() Overlay
	// DebugView returns the engine's debug overlay surface.
	DebugView() DebugView
}

// LayerStack is the part of the engine managing fluid layers.
type LayerStack interface {
	// CreateLayers builds count independent layers.
	CreateLayers(count int)
	// CreatePipeline builds count layers feeding one another in sequence.
	CreatePipeline(count int)
	AddNewLayer()
	ResetLayers()
	RenderLayers()
	ResizeLayers()
	// ResetFrame zeroes the frame-counter uniform.
	ResetFrame()
	// UpdateView pushes regenerated options of view index into the running
	// simulation, re-applying its passes.
	UpdateView(index int, opts *ViewOptions)
}

// Volume is a 3D mesh whose material can be rendered into.
type Volume interface {
	// RenderTarget returns an off-screen target bound to the volume's
	// surface material.
	RenderTarget() RenderTarget
}

// RenderTarget is an off-screen target with its own pass chain.
type RenderTarget interface {
	// AddPass appends a transparent fluid pass driven by view index, whose
	// options are view. Later UpdateView calls for index reach the pass.
	AddPass(blending BlendMode, index int, view *ViewOptions)
	Render()
}

// Layer is one engine-owned fluid layer.
type Layer interface {
	Index() int
	SetVisible(visible bool)
	SetOptions(opts *LayerOptions)
	Reset()
}

// View is one engine-owned simulation and render unit.
type View interface {
	SetOptions(opts *ViewOptions)
}

// Pass is one simulation step with a program and a uniform set.
type Pass interface {
	SetProgram(p Program)
	// SetUniform binds value, a float64 or a Vec2, to the named uniform.
	SetUniform(name string, value interface{})
}

// Overlay is the reference snapshot surface drawn over the layers.
type Overlay interface {
	SetVisible(visible bool)
	SetBlending(mode BlendMode)
	SetOpacity(opacity float64)
}

// DebugView is the engine surface the debug overlay writes to.
type DebugView interface {
	SetVisible(visible bool)
	SetText(lines []string)
}
