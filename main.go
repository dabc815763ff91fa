//go:build js
// +build js

package main

import (
	"net/url"
	"strings"

	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/fluid-sketch/engine"
	"github.com/simukka/fluid-sketch/fluid"
)

func main() {
	cfg := fluid.DefaultConfig()
	search := strings.TrimPrefix(js.Global.Get("location").Get("search").String(), "?")
	q, err := url.ParseQuery(search)
	if err == nil {
		err = cfg.ApplyQuery(q)
	}
	fluid.EnableDebug = cfg.DevMode
	if err != nil {
		fluid.DebugWarn("query:", err.Error())
	}

	sketch, err := engine.New(js.Global.Get("sketch"))
	if err != nil {
		panic(err)
	}

	var gui fluid.GUI
	if cfg.DevMode {
		if g := sketch.GUI(); g != nil {
			gui = g
		}
	}

	// The panel's remembered values are restored as its controls are added,
	// so it is built while the state is drawn.
	rng := engine.NewRandom(cfg.Seed)
	state, panel := fluid.NewDevState(cfg, rng, gui)
	b := fluid.NewBridge(state, sketch, rng, panel)
	if b.Panel != nil && cfg.LiveURL != "" {
		live := engine.DialLive(cfg.LiveURL, b.Panel)
		js.Global.Call("addEventListener", "beforeunload", func() {
			live.Close()
		})
	}

	// Features are published before construction, as preview tooling reads
	// them on load.
	js.Global.Set("$fxhashFeatures", map[string]interface{}{
		"Composition": string(state.Composition),
		"Palette":     state.Palette.Name,
		"Layers":      state.Features.Layers,
	})

	sketch.Listen(b)
	b.Start()
	sketch.Animate()

	// Expose the controller to the page console
	js.Global.Set("FluidSketch", map[string]interface{}{
		"composition": func() string { return string(state.Composition) },
		"palette":     func() string { return state.Palette.Name },
		"regenerate":  b.Regenerate,
		"reset":       sketch.ResetLayers,
		"debug": func(on bool) {
			fluid.EnableDebug = on
		},
	})

	select {}
}
