package engine

import (
	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/fluid-sketch/fluid"
)

// DatGUI adapts a dat.GUI instance to fluid.GUI.
type DatGUI struct {
	gui *js.Object
}

// Compile-time interface check
var _ fluid.GUI = (*DatGUI)(nil)

// GUI returns the library's developer panel, or nil when the page has none.
func (s *Sketch) GUI() *DatGUI {
	if !defined(s.dev) {
		return nil
	}
	gui := s.dev.Get("gui")
	if !defined(gui) {
		return nil
	}
	return &DatGUI{gui: gui}
}

// AddFolder adds a folder. Every folder has one proxy object whose
// properties are backed by the folder's bindings; remembered folders
// register it with dat.GUI's preset store before any control is added.
func (g *DatGUI) AddFolder(name string, remember bool) fluid.Folder {
	proxy := js.Global.Get("Object").New()
	if remember {
		g.gui.Call("remember", proxy)
	}
	return &datFolder{folder: g.gui.Call("addFolder", name), proxy: proxy}
}

type datFolder struct {
	folder *js.Object
	proxy  *js.Object
}

// bind defines b.Name on the proxy as an accessor over b.
func (f *datFolder) bind(b fluid.Binding) {
	js.Global.Get("Object").Call("defineProperty", f.proxy, b.Name, js.M{
		"enumerable":   true,
		"configurable": true,
		"get":          func() interface{} { return b.Get() },
		"set":          func(v *js.Object) { b.Set(v.Interface()) },
	})
}

func (f *datFolder) AddNumber(b fluid.Binding, min, max, step float64) fluid.Control {
	f.bind(b)
	c := f.folder.Call("add", f.proxy, b.Name, min, max).Call("step", step)
	return &datControl{c: c}
}

func (f *datFolder) AddChoice(b fluid.Binding, choices []string) fluid.Control {
	f.bind(b)
	return &datControl{c: f.folder.Call("add", f.proxy, b.Name, choices)}
}

func (f *datFolder) AddToggle(b fluid.Binding) fluid.Control {
	f.bind(b)
	return &datControl{c: f.folder.Call("add", f.proxy, b.Name)}
}

func (f *datFolder) AddButton(name string, fn func()) {
	f.proxy.Set(name, fn)
	f.folder.Call("add", f.proxy, name)
}

type datControl struct {
	c *js.Object
}

func (c *datControl) Listen() fluid.Control {
	c.c.Call("listen")
	return c
}

func (c *datControl) OnChange(fn func()) fluid.Control {
	c.c.Call("onChange", func() { fn() })
	return c
}
