package spectate

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/term-snake/internal/games/snake"
)

const (
	sendQueue    = 16
	writeTimeout = 5 * time.Second
	pongWait     = 60 * time.Second
	pingPeriod   = pongWait * 9 / 10
)

// WatchPath is where watchers connect.
const WatchPath = "/watch"

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// Watchers are read-only, so any origin may connect.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// watcher is one connected websocket client.
type watcher struct {
	ws   *websocket.Conn
	send chan []byte
}

// enqueue queues b without blocking. Returns false if the frame was dropped.
func (w *watcher) enqueue(b []byte) bool {
	select {
	case w.send <- b:
		return true
	default:
		return false
	}
}

// writePump drains the send queue to the socket and keeps it alive.
func (w *watcher) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		w.ws.Close()
	}()

	for {
		select {
		case msg, ok := <-w.send:
			w.ws.SetWriteDeadline(time.Now().Add(writeTimeout))
			if !ok {
				w.ws.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := w.ws.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			w.ws.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := w.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Hub fans frames out to every watcher.
type Hub struct {
	logger *log.Logger

	mu       sync.Mutex
	watchers map[*watcher]struct{}
	last     []byte // Latest frame, sent to new watchers
	dropped  uint64
}

// NewHub creates an empty hub.
func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		logger:   logger,
		watchers: make(map[*watcher]struct{}),
	}
}

// Publish encodes v and queues it for every watcher. It never blocks.
// Its signature matches the session render hook.
func (h *Hub) Publish(v snake.View) {
	b, err := encodeFrame(v)
	if err != nil {
		h.logger.Error("cannot encode frame", "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.last = b
	for w := range h.watchers {
		if !w.enqueue(b) {
			h.dropped++
		}
	}
}

// Hooks returns session hooks that publish every rendered view and the
// final one.
func (h *Hub) Hooks() snake.Hooks {
	var last snake.View
	return snake.Hooks{
		Render: func(v snake.View) {
			last = v
			h.Publish(v)
		},
		End: func(r snake.Result) {
			last.Reason = r.Reason
			h.Publish(last)
		},
	}
}

// Watchers returns the number of connected watchers.
func (h *Hub) Watchers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.watchers)
}

// Dropped returns how many frames were skipped for slow watchers.
func (h *Hub) Dropped() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.dropped
}

// ServeHTTP upgrades the request and registers the watcher.
func (h *Hub) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(rw, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}

	w := &watcher{ws: ws, send: make(chan []byte, sendQueue)}

	h.mu.Lock()
	h.watchers[w] = struct{}{}
	if h.last != nil {
		w.enqueue(h.last)
	}
	h.mu.Unlock()

	h.logger.Info("watcher connected", "remote", r.RemoteAddr)

	go w.writePump()
	go h.readPump(w, r.RemoteAddr)
}

// readPump discards client messages and unregisters the watcher once the
// connection goes away.
func (h *Hub) readPump(w *watcher, remote string) {
	defer h.remove(w, remote)

	w.ws.SetReadLimit(512)
	w.ws.SetReadDeadline(time.Now().Add(pongWait))
	w.ws.SetPongHandler(func(string) error {
		w.ws.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		if _, _, err := w.ws.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) remove(w *watcher, remote string) {
	h.mu.Lock()
	_, ok := h.watchers[w]
	if ok {
		delete(h.watchers, w)
		close(w.send)
	}
	h.mu.Unlock()

	if ok {
		h.logger.Info("watcher disconnected", "remote", remote)
	}
}

// Close disconnects every watcher.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for w := range h.watchers {
		delete(h.watchers, w)
		close(w.send)
	}
}

// Serve listens on addr and serves the hub at WatchPath until ctx is done.
func (h *Hub) Serve(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("spectate: cannot listen on %s: %w", addr, err)
	}
	return h.serve(ctx, ln)
}

func (h *Hub) serve(ctx context.Context, ln net.Listener) error {
	mux := http.NewServeMux()
	mux.Handle(WatchPath, h)

	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 10 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		h.Close()
		srv.Shutdown(shutdownCtx)
	}()

	h.logger.Info("spectator feed listening", "addr", ln.Addr().String(), "path", WatchPath)
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("spectate: server error: %w", err)
	}
	return nil
}
