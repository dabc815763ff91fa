// Package engine adapts the page's rendering library to the fluid
// controller. The page bundles three.js and the fluid library and exposes
// them as window.sketch with these members:
//
//	THREE                  three.js namespace
//	core                   scene, cam, initControls, createEdges, animate
//	fluid                  createLayers, createPipeline, createSnapOverlay,
//	                       addLayer, resetFrame, updateView, viewOptions
//	layers                 render, reset, onResize
//	mats                   fluidViewUV, fluidPass
//	dev                    gui, isGui
//	shaders                pnoiseFluidPassFrag, snoiseFluidPassFrag
//	MaterialFBO, FluidPass post-processing constructors
package engine

import (
	"fmt"
	"strings"

	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/fluid-sketch/fluid"
)

// Sketch drives window.sketch. It implements fluid.Engine.
type Sketch struct {
	obj     *js.Object
	three   *js.Object
	core    *js.Object
	fluid   *js.Object
	layers  *js.Object
	mats    *js.Object
	dev     *js.Object
	shaders *js.Object

	debug *debugText
}

// Compile-time interface check
var _ fluid.Engine = (*Sketch)(nil)

var requiredModules = []string{"THREE", "core", "fluid", "layers", "mats", "shaders"}

// New wraps the library object. It fails when a required module is missing.
func New(obj *js.Object) (*Sketch, error) {
	if !defined(obj) {
		return nil, fmt.Errorf("sketch library not found on window")
	}
	var missing []string
	for _, name := range requiredModules {
		if !defined(obj.Get(name)) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("sketch library lacks %s", strings.Join(missing, ", "))
	}
	return &Sketch{
		obj:     obj,
		three:   obj.Get("THREE"),
		core:    obj.Get("core"),
		fluid:   obj.Get("fluid"),
		layers:  obj.Get("layers"),
		mats:    obj.Get("mats"),
		dev:     obj.Get("dev"),
		shaders: obj.Get("shaders"),
	}, nil
}

func defined(o *js.Object) bool {
	return o != nil && o != js.Undefined
}

func (s *Sketch) scene() *js.Object {
	return s.core.Get("scene")
}

// Animate starts the library's render loop.
func (s *Sketch) Animate() {
	s.core.Call("animate")
}

func (s *Sketch) SetBackground(color string) {
	s.scene().Set("background", s.three.Get("Color").New(color))
}

func (s *Sketch) InitControls() {
	s.core.Call("initControls", s.core.Get("cam"))
}

func (s *Sketch) AddVolume(size float64, blending fluid.BlendMode) fluid.Volume {
	mat := s.mats.Call("fluidViewUV", js.M{"blending": int(blending)})
	geometry := s.three.Get("BoxGeometry").New(size, size, size)
	box := s.three.Get("Mesh").New(geometry, mat)
	s.scene().Call("add", box)
	s.scene().Call("add", s.core.Call("createEdges", box))
	return &volume{sketch: s, mesh: box}
}

func (s *Sketch) AddToScene(layer fluid.Layer) {
	if l, ok := layer.(*jsLayer); ok {
		s.scene().Call("add", l.obj.Get("mesh"))
	}
}

func (s *Sketch) CreateSnapOverlay() fluid.Overlay {
	mesh := s.fluid.Call("createSnapOverlay")
	if !defined(mesh) {
		mesh = s.fluid.Get("snapOverlay")
	}
	if !defined(mesh) {
		return nil
	}
	return &overlay{mesh: mesh}
}

func (s *Sketch) DebugView() fluid.DebugView {
	if s.debug == nil {
		s.debug = newDebugText()
	}
	return s.debug
}

func (s *Sketch) CreateLayers(count int)   { s.fluid.Call("createLayers", count) }
func (s *Sketch) CreatePipeline(count int) { s.fluid.Call("createPipeline", count) }
func (s *Sketch) AddNewLayer()             { s.fluid.Call("addLayer") }
func (s *Sketch) ResetLayers()             { s.layers.Call("reset") }
func (s *Sketch) RenderLayers()            { s.layers.Call("render") }
func (s *Sketch) ResizeLayers()            { s.layers.Call("onResize") }
func (s *Sketch) ResetFrame()              { s.fluid.Call("resetFrame") }

func (s *Sketch) UpdateView(index int, opts *fluid.ViewOptions) {
	writeView(s.viewObject(index), opts)
	s.fluid.Call("updateView", index)
}

// viewObject returns the library's options object for view index, creating
// it when missing. Passes built on a view read from this same object.
func (s *Sketch) viewObject(index int) *js.Object {
	all := s.fluid.Get("viewOptions")
	if !defined(all) {
		all = js.Global.Get("Array").New()
		s.fluid.Set("viewOptions", all)
	}
	target := all.Index(index)
	if !defined(target) {
		target = js.Global.Get("Object").New()
		all.SetIndex(index, target)
	}
	return target
}

func (s *Sketch) AfterFunc(delayMs float64, fn func()) {
	js.Global.Call("setTimeout", fn, delayMs)
}

func (s *Sketch) Reload() {
	js.Global.Get("document").Get("location").Call("reload")
}

// IsGUI reports whether a DOM node belongs to the developer panel.
func (s *Sketch) IsGUI(target *js.Object) bool {
	if !defined(s.dev) || !defined(s.dev.Get("isGui")) {
		return false
	}
	return s.dev.Call("isGui", target).Bool()
}

// volume is the box mesh of the box composition.
type volume struct {
	sketch *Sketch
	mesh   *js.Object
}

func (v *volume) RenderTarget() fluid.RenderTarget {
	three := v.sketch.three
	fbo := v.sketch.obj.Get("MaterialFBO").New(js.M{
		"type": three.Get("HalfFloatType"),
	}, v.mesh.Get("material"))
	return &renderTarget{sketch: v.sketch, fbo: fbo}
}

type renderTarget struct {
	sketch *Sketch
	fbo    *js.Object
}

func (t *renderTarget) AddPass(blending fluid.BlendMode, index int, view *fluid.ViewOptions) {
	mat := t.sketch.mats.Call("fluidPass", js.M{
		"blending":    int(blending),
		"transparent": true,
	})
	opts := t.sketch.viewObject(index)
	writeView(opts, view)
	pass := t.sketch.obj.Get("FluidPass").New(mat, opts)
	t.fbo.Get("composer").Call("addPass", pass)
}

func (t *renderTarget) Render() {
	t.fbo.Call("render")
}

type overlay struct {
	mesh *js.Object
}

func (o *overlay) SetVisible(visible bool) { o.mesh.Set("visible", visible) }

func (o *overlay) SetBlending(mode fluid.BlendMode) {
	o.mesh.Get("material").Set("blending", int(mode))
}

func (o *overlay) SetOpacity(opacity float64) {
	o.mesh.Get("material").Set("opacity", opacity)
}
