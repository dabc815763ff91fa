package engine

import (
	"strings"

	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/fluid-sketch/fluid"
)

// jsLayer is a layer object raised by layers.create.
type jsLayer struct {
	obj *js.Object
}

func (l *jsLayer) Index() int {
	return l.obj.Get("i").Int()
}

func (l *jsLayer) SetVisible(visible bool) {
	l.obj.Get("mesh").Set("visible", visible)
}

func (l *jsLayer) SetOptions(opts *fluid.LayerOptions) {
	target := l.obj.Get("options")
	if !defined(target) {
		target = js.Global.Get("Object").New()
		l.obj.Set("options", target)
	}
	writeRecord(target, LayerRecord(opts))
}

func (l *jsLayer) Reset() {
	l.obj.Call("reset")
}

// jsView is a view object raised by fluid.createView.
type jsView struct {
	obj *js.Object
}

func (v *jsView) SetOptions(opts *fluid.ViewOptions) {
	target := v.obj.Get("options")
	if !defined(target) {
		target = js.Global.Get("Object").New()
		v.obj.Set("options", target)
	}
	writeView(target, opts)
	if defined(v.obj.Get("applyOptions")) {
		v.obj.Call("applyOptions")
	}
}

// jsPass is a fluid pass raised by fluid.applyPassOptions.
type jsPass struct {
	obj     *js.Object
	three   *js.Object
	shaders *js.Object
}

// fragmentSource names the library export holding each program's fragment
// shader.
var fragmentSource = map[fluid.Program]string{
	fluid.ProgramPeriodicNoise: "pnoiseFluidPassFrag",
	fluid.ProgramSimplexNoise:  "snoiseFluidPassFrag",
}

func (p *jsPass) SetProgram(program fluid.Program) {
	mat := p.obj.Get("material")
	mat.Set("fragmentShader", p.shaders.Get(fragmentSource[program]))
	mat.Set("needsUpdate", true)
}

func (p *jsPass) SetUniform(name string, value interface{}) {
	if v, ok := value.(fluid.Vec2); ok {
		value = p.three.Get("Vector2").New(v.X, v.Y)
	}
	p.obj.Get("material").Get("uniforms").Set(name, js.M{"value": value})
}

// readView converts a library view-options object.
func readView(obj *js.Object) *fluid.ViewOptions {
	v := fluid.DefaultViewOptions(0)
	if rec, ok := obj.Interface().(map[string]interface{}); ok {
		ReadView(rec, v)
	}
	return v
}

// readPass converts a library pass-options object.
func readPass(obj *js.Object) *fluid.PassOptions {
	p := fluid.DefaultViewOptions(1).Passes[0]
	if rec, ok := obj.Interface().(map[string]interface{}); ok {
		ReadPass(rec, p)
	}
	return p
}

// writeView copies v into a library view-options object in place. Pass
// objects already present are updated rather than replaced, since the
// library's passes hold references to them.
func writeView(obj *js.Object, v *fluid.ViewOptions) {
	rec := ViewRecord(v)
	passes := rec["passes"].([]interface{})
	delete(rec, "passes")
	writeRecord(obj, rec)

	list := obj.Get("passes")
	if !defined(list) {
		list = js.Global.Get("Array").New()
		obj.Set("passes", list)
	}
	for j, item := range passes {
		target := list.Index(j)
		if !defined(target) {
			target = js.Global.Get("Object").New()
			list.SetIndex(j, target)
		}
		writePass(target, item.(map[string]interface{}))
	}
	list.Set("length", len(passes))
}

// optionalPassKeys are removed from a pass object when unset.
var optionalPassKeys = []string{"fluidZoom2", "blendModePass"}

func writePass(obj *js.Object, rec map[string]interface{}) {
	for _, k := range optionalPassKeys {
		if _, ok := rec[k]; !ok {
			obj.Delete(k)
		}
	}
	writeRecord(obj, rec)
}

func writeRecord(obj *js.Object, rec map[string]interface{}) {
	for k, v := range rec {
		obj.Set(k, v)
	}
}

// debugText is a fixed text panel over the canvas.
type debugText struct {
	el *js.Object
}

func newDebugText() *debugText {
	doc := js.Global.Get("document")
	el := doc.Call("createElement", "pre")
	style := el.Get("style")
	style.Set("position", "fixed")
	style.Set("top", "16px")
	style.Set("left", "16px")
	style.Set("margin", "0")
	style.Set("padding", "8px 10px")
	style.Set("background", "rgba(0, 0, 0, 0.75)")
	style.Set("border", "1px solid #00aaff")
	style.Set("color", "#00ff00")
	style.Set("font", "12px monospace")
	style.Set("pointerEvents", "none")
	style.Set("display", "none")
	doc.Get("body").Call("appendChild", el)
	return &debugText{el: el}
}

func (d *debugText) SetVisible(visible bool) {
	display := "none"
	if visible {
		display = "block"
	}
	d.el.Get("style").Set("display", display)
}

func (d *debugText) SetText(lines []string) {
	d.el.Set("textContent", strings.Join(lines, "\n"))
}
