//go:build !js
// +build !js

package main

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/simukka/fluid-sketch/fluid"
)

// clientBuffer is the number of outgoing messages queued per client.
const clientBuffer = 64

// client is one connected page.
type client struct {
	id       int
	messages chan []byte
}

// Hub relays option edits between the pages connected to /live. It keeps
// the last value of every field and replays them to pages that join
// later.
type Hub struct {
	upgrader websocket.Upgrader
	store    *Store

	mu      sync.RWMutex
	clients map[int]*client
	nextID  int
	last    map[fluid.Field][]byte
	order   []fluid.Field
}

// NewHub creates a hub. store may be nil; when set, it seeds the replayed
// values and receives every accepted edit.
func NewHub(store *Store) *Hub {
	h := &Hub{
		upgrader: websocket.Upgrader{
			// Pages are served from the same dev server or from a bundler
			// on another port.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		store:   store,
		clients: make(map[int]*client),
		last:    make(map[fluid.Field][]byte),
	}
	if store != nil {
		for _, e := range store.Edits() {
			h.record(e)
		}
	}
	return h
}

// record stores e as the last value of its field. Callers hold h.mu or
// have exclusive access.
func (h *Hub) record(e fluid.Edit) []byte {
	data, err := fluid.EncodeEdit(e)
	if err != nil {
		return nil
	}
	if _, ok := h.last[e.Field]; !ok {
		h.order = append(h.order, e.Field)
	}
	h.last[e.Field] = data
	return data
}

// addClient registers a page and queues the replay of known values.
func (h *Hub) addClient() *client {
	h.mu.Lock()
	defer h.mu.Unlock()

	c := &client{id: h.nextID, messages: make(chan []byte, clientBuffer+len(h.order))}
	h.nextID++
	for _, f := range h.order {
		c.messages <- h.last[f]
	}
	h.clients[c.id] = c
	log.Printf("Live client %d joined (%d connected)", c.id, len(h.clients))
	return c
}

func (h *Hub) removeClient(id int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if c, ok := h.clients[id]; ok {
		close(c.messages)
		delete(h.clients, id)
		log.Printf("Live client %d left (%d connected)", id, len(h.clients))
	}
}

// Publish records an edit and sends it to every page except sender. The
// edit is recorded and fanned out under one lock, so a page that joins
// concurrently receives it either in its replay or live, never both.
func (h *Hub) Publish(senderID int, e fluid.Edit) {
	h.mu.Lock()
	data := h.record(e)
	if data == nil {
		h.mu.Unlock()
		return
	}
	for id, c := range h.clients {
		if id == senderID {
			continue
		}
		select {
		case c.messages <- data:
		default:
			log.Printf("Message buffer full for live client %d", id)
		}
	}
	h.mu.Unlock()

	if h.store != nil {
		if err := h.store.Put(e); err != nil {
			log.Printf("Failed to save edit of %s: %v", e.Field, err)
		}
	}
}

// Snapshot returns the last value of every edited field.
func (h *Hub) Snapshot() map[fluid.Field]interface{} {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make(map[fluid.Field]interface{}, len(h.last))
	for f, data := range h.last {
		var e fluid.Edit
		if err := json.Unmarshal(data, &e); err == nil {
			out[f] = e.Value
		}
	}
	return out
}

// ClientCount returns the number of connected pages.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// ServeHTTP upgrades the request and relays the page's edits until it
// disconnects.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Registered before the upgrade completes so that no edit published
	// after the handshake is missed.
	c := h.addClient()

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Live upgrade failed: %v", err)
		h.removeClient(c.id)
		return
	}
	defer conn.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for msg := range c.messages {
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				log.Printf("Live client %d write failed: %v", c.id, err)
				return
			}
		}
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			break
		}
		e, err := fluid.DecodeEdit(data)
		if err != nil {
			log.Printf("Live client %d sent a bad edit: %v", c.id, err)
			continue
		}
		h.Publish(c.id, e)
	}

	h.removeClient(c.id)
	<-done
}
