package dev

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/vango-dev/jst/pkg/dom"
)

// OpRecord is one target operation in a TickMessage.
type OpRecord struct {
	Op    string `json:"op"`
	Tag   string `json:"tag,omitempty"`
	Key   string `json:"key,omitempty"`
	Value string `json:"value,omitempty"`
}

func opRecord(r dom.Record) OpRecord {
	return OpRecord{Op: r.Op.String(), Tag: r.Tag, Key: r.Key, Value: r.Value}
}

// TickMessage is sent to WebSocket clients after every tick.
type TickMessage struct {
	Tick  int        `json:"tick"`
	Step  string     `json:"step"`
	Ops   []OpRecord `json:"ops"`
	CSS   bool       `json:"css,omitempty"`
	Error string     `json:"error,omitempty"`
}

// Hub keeps the connected WebSocket clients.
type Hub struct {
	clients  map[*websocket.Conn]bool
	mu       sync.RWMutex
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewHub creates an empty hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		logger: logger,
	}
}

// HandleWebSocket upgrades the request and keeps the connection until the
// client goes away.
func (h *Hub) HandleWebSocket(w http.ResponseWriter, req *http.Request) {
	conn, err := h.upgrader.Upgrade(w, req, nil)
	if err != nil {
		h.logger.Debug("websocket upgrade failed", "error", err)
		return
	}

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()
	h.logger.Debug("client connected", "remote", req.RemoteAddr)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.drop(conn)
}

// Broadcast sends msg to every client. Clients that fail to receive it are
// dropped.
func (h *Hub) Broadcast(msg TickMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error("encode tick message", "error", err)
		return
	}

	h.mu.RLock()
	clients := make([]*websocket.Conn, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	h.mu.RUnlock()

	for _, client := range clients {
		if err := client.WriteMessage(websocket.TextMessage, data); err != nil {
			h.drop(client)
		}
	}
}

func (h *Hub) drop(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
	_ = conn.Close()
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close closes all client connections.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		_ = client.Close()
		delete(h.clients, client)
	}
}
