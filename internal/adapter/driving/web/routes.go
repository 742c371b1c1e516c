package web

import (
	"io/fs"
	"net/http"
)

// RegisterRoutes registers the portal pages, the quote ticker WebSocket and
// the embedded static assets on mux. Every GET path not claimed by another
// route falls through to Page, which renders the not-found view.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	staticFS, _ := fs.Sub(StaticFS, "static")
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(staticFS)))

	mux.HandleFunc("GET "+QuoteTickerPath, h.Quotes)
	mux.HandleFunc("POST /faculty-login", h.SubmitLogin)
	mux.HandleFunc("POST "+logoutPath, h.Logout)
	mux.HandleFunc("GET /", h.Page)
}
