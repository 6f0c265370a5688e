package net

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"LocalSketch/internal/logging"
	"LocalSketch/internal/state"
)

const (
	writeWait = 5 * time.Second
	// sendBuffer is how many documents may queue for one viewer before it
	// is dropped as too slow.
	sendBuffer = 8
)

// PreviewMessage is what viewers receive each time the preview changes.
type PreviewMessage struct {
	Rev uint64 `json:"rev"`
	SVG string `json:"svg"`
}

// viewer is one websocket connection. Only its writeLoop writes messages
// to conn.
type viewer struct {
	conn *websocket.Conn
	send chan []byte
}

// PreviewHub is a display target that mirrors the centred preview to every
// connected websocket viewer. New viewers receive the latest document as
// soon as they connect.
type PreviewHub struct {
	upgrader websocket.Upgrader
	clock    state.Clock

	mu      sync.Mutex
	clients map[*viewer]bool
	latest  PreviewMessage
	closed  bool
}

// NewPreviewHub creates a hub with no viewers.
func NewPreviewHub() *PreviewHub {
	return &PreviewHub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			// Viewers are on the local network and may be served from any origin.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		clients: make(map[*viewer]bool),
	}
}

// Present replaces the current document and queues it for every viewer.
// It never waits on the network; a viewer whose queue is full is dropped.
func (h *PreviewHub) Present(doc string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.latest = PreviewMessage{Rev: h.clock.Tick(), SVG: doc}
	data, err := json.Marshal(h.latest)
	if err != nil {
		logging.Logger().Warn("[PREVIEW] marshal failed", "err", err)
		return
	}
	for v := range h.clients {
		select {
		case v.send <- data:
		default:
			logging.Logger().Warn("[PREVIEW] dropping slow viewer", "addr", v.conn.RemoteAddr().String())
			h.drop(v)
		}
	}
}

// Latest returns the most recently presented message.
func (h *PreviewHub) Latest() PreviewMessage {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.latest
}

// Clients returns the number of connected viewers.
func (h *PreviewHub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Handler serves the viewer page at /, the websocket at /ws and the raw
// document at /preview.svg.
func (h *PreviewHub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", h.servePage)
	mux.HandleFunc("/ws", h.serveWS)
	mux.HandleFunc("/preview.svg", h.serveSVG)
	return mux
}

func (h *PreviewHub) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Logger().Warn("[PREVIEW] upgrade failed", "err", err)
		return
	}
	v := h.add(conn)
	if v == nil {
		conn.Close()
		return
	}
	go h.writeLoop(v)
	go h.readLoop(v)
}

func (h *PreviewHub) add(conn *websocket.Conn) *viewer {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil
	}
	data, err := json.Marshal(h.latest)
	if err != nil {
		return nil
	}
	v := &viewer{conn: conn, send: make(chan []byte, sendBuffer)}
	v.send <- data
	h.clients[v] = true
	logging.Logger().Info("[PREVIEW] viewer connected", "addr", conn.RemoteAddr().String(), "viewers", len(h.clients))
	return v
}

// writeLoop sends queued documents until the queue is closed, then says
// goodbye and closes the connection.
func (h *PreviewHub) writeLoop(v *viewer) {
	defer v.conn.Close()
	for data := range v.send {
		v.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := v.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			logging.Logger().Warn("[PREVIEW] write failed", "addr", v.conn.RemoteAddr().String(), "err", err)
			h.remove(v)
			return
		}
	}
	v.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseGoingAway, ""), time.Now().Add(writeWait))
}

// readLoop discards anything a viewer sends and notices when it leaves.
func (h *PreviewHub) readLoop(v *viewer) {
	defer h.remove(v)
	for {
		if _, _, err := v.conn.NextReader(); err != nil {
			return
		}
	}
}

func (h *PreviewHub) remove(v *viewer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[v] {
		h.drop(v)
		logging.Logger().Info("[PREVIEW] viewer left", "addr", v.conn.RemoteAddr().String(), "viewers", len(h.clients))
	}
}

// drop unregisters v and ends its writeLoop. h.mu must be held.
func (h *PreviewHub) drop(v *viewer) {
	delete(h.clients, v)
	close(v.send)
}

func (h *PreviewHub) serveSVG(w http.ResponseWriter, r *http.Request) {
	doc := h.Latest().SVG
	if doc == "" {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	io.WriteString(w, doc)
}

func (h *PreviewHub) servePage(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	io.WriteString(w, viewerPage)
}

// Close disconnects every viewer. Later connections are refused.
func (h *PreviewHub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	for v := range h.clients {
		h.drop(v)
	}
}

// Serve runs an HTTP server for handler on addr until ctx is cancelled.
func Serve(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{Addr: addr, Handler: handler, ReadHeaderTimeout: 10 * time.Second}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	logging.Logger().Info("[PREVIEW] listening", "addr", addr)

	select {
	case err := <-errc:
		return fmt.Errorf("preview server: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), writeWait)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("preview server shutdown: %w", err)
		}
		if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("preview server: %w", err)
		}
		return nil
	}
}

const viewerPage = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>LocalSketch preview</title>
<style>html,body{margin:0;height:100%}#preview{width:100vw;height:100vh;overflow:hidden}</style>
</head>
<body>
<div id="preview"></div>
<script>
(function connect() {
  const ws = new WebSocket((location.protocol === "https:" ? "wss://" : "ws://") + location.host + "/ws");
  let rev = 0;
  ws.onmessage = (e) => {
    const msg = JSON.parse(e.data);
    if (msg.rev < rev) return;
    rev = msg.rev;
    document.getElementById("preview").innerHTML = msg.svg;
  };
  ws.onclose = () => setTimeout(connect, 1000);
})();
</script>
</body>
</html>
`
