package web

import (
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ericfisherdev/smartcampus/internal/domain/model"
)

const quoteWriteWait = 10 * time.Second

// quoteMessage is the JSON frame pushed to ticker.js for each rotation.
type quoteMessage struct {
	HTML   string `json:"html"`
	Author string `json:"author"`
}

// sameOrigin accepts WebSocket upgrades without an Origin header or whose
// Origin host matches the request host.
func sameOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return u.Host == r.Host
}

// Quotes streams the current quote, then every rotation, to a WebSocket
// client until the client disconnects or the server shuts down.
func (h *Handler) Quotes(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the error response.
		h.logger.Warn("quote ticker upgrade rejected", "origin", r.Header.Get("Origin"), "error", err)
		return
	}
	defer conn.Close()

	// Lift the server's ReadTimeout; the stream outlives the request.
	if err := conn.SetReadDeadline(time.Time{}); err != nil {
		return
	}

	updates, unsubscribe := h.rotator.Subscribe()
	defer unsubscribe()

	if q, ok := h.rotator.Current(); ok {
		if err := writeQuote(conn, q); err != nil {
			return
		}
	}

	// The client never sends anything; reading only surfaces the close.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-closed:
			return
		case q, ok := <-updates:
			if !ok {
				return
			}
			if err := writeQuote(conn, q); err != nil {
				h.logger.Debug("quote ticker write failed", "error", err)
				return
			}
		}
	}
}

func writeQuote(conn *websocket.Conn, q model.Quote) error {
	if err := conn.SetWriteDeadline(time.Now().Add(quoteWriteWait)); err != nil {
		return err
	}
	return conn.WriteJSON(quoteMessage{
		HTML:   RenderMarkdown(q.Text),
		Author: q.Author,
	})
}
