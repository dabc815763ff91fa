package engine

import (
	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/fluid-sketch/fluid"
)

// wsOpen is WebSocket.OPEN.
const wsOpen = 1

// Live mirrors panel edits between open pages through the dev server's
// websocket hub. Edits made in this page are sent; edits from other pages
// are applied to the panel without being sent back.
type Live struct {
	ws    *js.Object
	panel *fluid.Panel
}

// DialLive connects panel to the hub at url. It must run before the panel
// is built so that the panel reports its edits.
func DialLive(url string, panel *fluid.Panel) *Live {
	l := &Live{
		ws:    js.Global.Get("WebSocket").New(url),
		panel: panel,
	}
	panel.OnEdit = l.Send

	l.ws.Set("onopen", func() {
		fluid.Debug("live: connected to", url)
	})
	l.ws.Set("onmessage", func(event *js.Object) {
		l.receive(event.Get("data").String())
	})
	l.ws.Set("onclose", func() {
		fluid.DebugWarn("live: connection closed")
	})
	return l
}

// Send publishes an edit. Edits made while disconnected are dropped.
func (l *Live) Send(f fluid.Field, value interface{}) {
	if l.ws.Get("readyState").Int() != wsOpen {
		return
	}
	data, err := fluid.EncodeEdit(fluid.Edit{Field: f, Value: value})
	if err != nil {
		fluid.DebugError("live:", err.Error())
		return
	}
	l.ws.Call("send", string(data))
}

func (l *Live) receive(msg string) {
	e, err := fluid.DecodeEdit([]byte(msg))
	if err != nil {
		fluid.DebugWarn("live:", err.Error())
		return
	}
	if !l.panel.ApplyEdit(e) {
		fluid.Debug("live: ignored edit of", string(e.Field))
	}
}

// Close disconnects from the hub.
func (l *Live) Close() {
	l.ws.Call("close")
}
