package engine

import (
	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/fluid-sketch/fluid"
)

// Lifecycle event names raised on window by the library.
const (
	EventLayerCreated     = "layers.create"
	EventViewOptionsInit  = "fluid.initViewOptions"
	EventViewCreated      = "fluid.createView"
	EventPassOptionsApply = "fluid.applyPassOptions"
	EventRender           = "core.render"
)

// Listen subscribes c to the library's lifecycle events and to the page's
// click, resize and double-click events. It must run before the
// composition is constructed, since construction raises layers.create.
func (s *Sketch) Listen(c fluid.Controller) {
	win := js.Global

	win.Call("addEventListener", EventLayerCreated, func(event *js.Object) {
		detail := event.Get("detail")
		c.OnLayerCreated(fluid.LayerCreated{Layer: &jsLayer{obj: detail.Get("layer")}})
	})

	win.Call("addEventListener", EventViewOptionsInit, func(event *js.Object) {
		detail := event.Get("detail")
		target := detail.Get("viewOpts")
		opts := readView(target)
		c.OnViewOptionsInit(fluid.ViewOptionsInit{Index: detail.Get("i").Int(), Options: opts})
		// The library reads the options back as soon as the listener returns.
		writeView(target, opts)
	})

	win.Call("addEventListener", EventViewCreated, func(event *js.Object) {
		detail := event.Get("detail")
		c.OnViewCreated(fluid.ViewCreated{
			View:  &jsView{obj: detail.Get("view")},
			Index: detail.Get("i").Int(),
		})
	})

	win.Call("addEventListener", EventPassOptionsApply, func(event *js.Object) {
		detail := event.Get("detail")
		pass := &jsPass{obj: detail.Get("pass"), three: s.three, shaders: s.shaders}
		c.OnPassOptionsApply(fluid.PassOptionsApply{Pass: pass, Options: readPass(detail.Get("passOpts"))})
	})

	win.Call("addEventListener", EventRender, func(event *js.Object) {
		c.OnFrame(win.Get("performance").Call("now").Float())
	})

	if canvas := s.canvas(); defined(canvas) {
		canvas.Call("addEventListener", "click", func(event *js.Object) {
			c.OnClick()
		})
	}

	win.Call("addEventListener", "resize", func(event *js.Object) {
		c.OnResize()
	})

	win.Call("addEventListener", "dblclick", func(event *js.Object) {
		c.OnDoubleClick(s.IsGUI(event.Get("target")))
	})

	js.Global.Get("document").Call("addEventListener", "keydown", func(event *js.Object) {
		// Typing into a panel field is not a hotkey.
		if tag := event.Get("target").Get("tagName"); defined(tag) && tag.String() == "INPUT" {
			return
		}
		if c.OnKeyDown(event.Get("keyCode").Int()) {
			event.Call("preventDefault")
		}
	})
}

// canvas returns the renderer's drawing surface.
func (s *Sketch) canvas() *js.Object {
	renderer := s.core.Get("renderer")
	if !defined(renderer) {
		return nil
	}
	return renderer.Get("domElement")
}
