// Package spectate mirrors session snapshots to HTTP and WebSocket clients.
// Spectators are read-only; nothing they send reaches the simulation.
package spectate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/vmihailenco/msgpack/v5"

	"snakeruins/internal/game"
)

const (
	sendBuffer   = 8
	writeTimeout = 2 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type client struct {
	id     string
	binary bool
	send   chan game.View
}

// Hub keeps the latest snapshot and fans it out to connected clients.
type Hub struct {
	mu      sync.RWMutex
	latest  game.View
	has     bool
	clients map[string]*client
	log     zerolog.Logger
}

func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		clients: make(map[string]*client),
		log:     log.With().Str("component", "spectate").Logger(),
	}
}

// Publish stores v and queues it for every client. Slow clients miss
// frames rather than block the caller.
func (h *Hub) Publish(v game.View) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.latest = v
	h.has = true
	for _, c := range h.clients {
		select {
		case c.send <- v:
		default:
		}
	}
}

// Latest returns the most recent snapshot.
func (h *Hub) Latest() (game.View, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.latest, h.has
}

// Clients returns the number of connected stream clients.
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Encode serialises v as JSON or, when binary is set, msgpack.
func Encode(v game.View, binary bool) ([]byte, error) {
	if binary {
		return msgpack.Marshal(v)
	}
	return json.Marshal(v)
}

func (h *Hub) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(h.requestLog)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Get("/state", h.handleState)
	r.Get("/ws", h.handleStream)
	return r
}

func (h *Hub) requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		h.log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("request_id", middleware.GetReqID(r.Context())).
			Dur("took", time.Since(start)).
			Msg("request")
	})
}

func (h *Hub) handleState(w http.ResponseWriter, r *http.Request) {
	v, ok := h.Latest()
	if !ok {
		http.Error(w, "no snapshot yet", http.StatusServiceUnavailable)
		return
	}
	binary := r.URL.Query().Get("format") == "msgpack"
	data, err := Encode(v, binary)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if binary {
		w.Header().Set("Content-Type", "application/msgpack")
	} else {
		w.Header().Set("Content-Type", "application/json")
	}
	w.Write(data)
}

func (h *Hub) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn().Err(err).Msg("upgrade")
		return
	}
	c := &client{
		id:     uuid.NewString(),
		binary: r.URL.Query().Get("format") == "msgpack",
		send:   make(chan game.View, sendBuffer),
	}
	h.mu.Lock()
	h.clients[c.id] = c
	if h.has {
		c.send <- h.latest
	}
	h.mu.Unlock()
	h.log.Info().Str("client", c.id).Bool("msgpack", c.binary).Int("clients", h.Clients()).Msg("spectator joined")

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	h.writeLoop(conn, c, done)

	h.mu.Lock()
	delete(h.clients, c.id)
	h.mu.Unlock()
	conn.Close()
	h.log.Info().Str("client", c.id).Int("clients", h.Clients()).Msg("spectator left")
}

func (h *Hub) writeLoop(conn *websocket.Conn, c *client, done <-chan struct{}) {
	msgType := websocket.TextMessage
	if c.binary {
		msgType = websocket.BinaryMessage
	}
	for {
		select {
		case <-done:
			return
		case v := <-c.send:
			data, err := Encode(v, c.binary)
			if err != nil {
				h.log.Error().Err(err).Msg("encode snapshot")
				continue
			}
			conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteMessage(msgType, data); err != nil {
				h.log.Debug().Err(err).Str("client", c.id).Msg("write")
				return
			}
		}
	}
}

// Serve listens on addr until ctx is done.
func (h *Hub) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: h.Router()}
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	h.log.Info().Str("addr", addr).Msg("spectator feed listening")

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("spectator feed: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
