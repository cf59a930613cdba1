// Package devserver serves a built page and its Wasm module during development.
package devserver

import (
	"net/http"
	"path"

	"github.com/gorilla/mux"
	"github.com/mattsenior/mjs/internal/log"
)

const wasmContentType = "application/wasm"

// Handler serves dir with caching disabled.
func Handler(dir string) http.Handler {
	router := mux.NewRouter()
	router.Use(noCache)
	router.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	files := http.FileServer(http.Dir(dir))
	router.PathPrefix("/").Handler(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if path.Ext(req.URL.Path) == ".wasm" {
			w.Header().Set("Content-Type", wasmContentType)
		}
		files.ServeHTTP(w, req)
	}))
	return router
}

func noCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Add("Cache-Control", "no-cache")
		next.ServeHTTP(w, req)
	})
}

// ListenAndServe blocks serving cfg.Dir on cfg.Addr.
func ListenAndServe(cfg Config) error {
	log.Printf("Serving %s on %s", cfg.Dir, cfg.Addr)
	return http.ListenAndServe(cfg.Addr, Handler(cfg.Dir))
}
