package handler

import (
	_ "embed"
	"net/http"
)

//go:embed templates/index.html
var indexHTML []byte

// Index serves the landing page.
func Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(indexHTML)
}
