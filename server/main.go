//go:build !js
// +build !js

package main

import (
	_ "embed"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
)

//go:embed index.html
var indexHTML []byte

// newMux routes the page, the static bundle, the live-edit hub and the
// JSON endpoints.
func newMux(hub *Hub, staticDir string) *http.ServeMux {
	mux := http.NewServeMux()
	files := http.FileServer(http.Dir(staticDir))

	// Serve embedded index.html at root path
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" || r.URL.Path == "/index.html" {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Write(indexHTML)
			return
		}
		files.ServeHTTP(w, r)
	})

	// Live-edit websocket
	mux.Handle("/live", hub)

	// Last value of every option edited this session
	mux.HandleFunc("/api/options", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Access-Control-Allow-Origin", "*")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"options": hub.Snapshot(),
			"clients": hub.ClientCount(),
		})
	})

	// Health check
	mux.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy"}`))
	})

	return mux
}

func main() {
	port := flag.Int("port", 8080, "HTTP server port")
	staticDir := flag.String("static", ".", "Directory to serve sketch.js and fluid.js from")
	statePath := flag.String("state", "", "JSON file persisting live option edits (disabled if empty)")
	flag.Parse()

	var store *Store
	if *statePath != "" {
		s, err := OpenStore(*statePath)
		if err != nil {
			log.Fatal(err)
		}
		store = s
		log.Printf("Persisting option edits to %s", *statePath)
	}
	hub := NewHub(store)

	addr := fmt.Sprintf(":%d", *port)
	log.Printf("Fluid sketch dev server starting on http://localhost%s/?dev", addr)
	log.Printf("Serving static files from: %s", *staticDir)
	log.Printf("Live edits: open pages with ?dev&live=ws://localhost%s/live", addr)

	if err := http.ListenAndServe(addr, newMux(hub, *staticDir)); err != nil {
		log.Fatal(err)
	}
}
