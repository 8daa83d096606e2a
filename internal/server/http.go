package server

import (
	_ "embed"
	"encoding/json"
	"log"
	"net/http"
)

//go:generate go run ./cmd/webbuild

/* ------------------------------ Embeds ------------------------------ */

//go:embed web/index.html
var htmlIndex []byte

//go:embed web/client.js
var jsClient []byte

/* ------------------------------- HTTP ------------------------------- */

type healthDTO struct {
	Sessions   int    `json:"sessions"`
	Difficulty string `json:"difficulty"`
	Persistent bool   `json:"persistent"`
}

func newMux(app *App) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(htmlIndex)
	})
	mux.HandleFunc("/client.js", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
		_, _ = w.Write(jsClient)
	})
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(healthDTO{
			Sessions:   app.Hub.Len(),
			Difficulty: app.DefaultDifficulty().String(),
			Persistent: app.Store.Persistent(),
		})
	})
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		serveWS(app, w, r)
	})
	return mux
}

func startServer(app *App, addr string) {
	log.Fatal(http.ListenAndServe(addr, newMux(app)))
}
