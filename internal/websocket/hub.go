package websocket

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"corpassist-backend/internal/middleware"
	"corpassist-backend/internal/models"
	"corpassist-backend/internal/services"
)

// Hub serves chat over WebSocket. Every text frame is handled like a
// POST /chat body and answered with one envelope frame. With a limit store
// set, each frame counts against the client's rate limit.
type Hub struct {
	mu            sync.RWMutex
	connections   map[uuid.UUID]*websocket.Conn
	chat          *services.ChatService
	limits        middleware.Store
	upgrader      websocket.Upgrader
	maxFrameBytes int64
}

func NewHub(chat *services.ChatService, limits middleware.Store, allowedOrigin string, maxFrameBytes int64) *Hub {
	return &Hub{
		connections: make(map[uuid.UUID]*websocket.Conn),
		chat:        chat,
		limits:      limits,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigin),
		},
		maxFrameBytes: maxFrameBytes,
	}
}

func originChecker(allowedOrigin string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || allowedOrigin == "*" || origin == allowedOrigin
	}
}

func (h *Hub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}
	conn.SetReadLimit(h.maxFrameBytes)

	connID := uuid.New()
	h.registerConnection(connID, conn)
	defer h.unregisterConnection(connID, conn)

	requestID := r.Header.Get(middleware.RequestIDHeader)
	if requestID == "" {
		requestID = connID.String()
	}
	clientKey := middleware.ClientKey(r)

	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			break
		}
		if msgType != websocket.TextMessage {
			continue
		}

		resp := h.exchange(r, clientKey, data, requestID)
		if err := conn.WriteJSON(resp); err != nil {
			log.Printf("WebSocket write failed: connection %s: %v", connID, err)
			break
		}
	}
}

func (h *Hub) exchange(r *http.Request, clientKey string, data []byte, requestID string) models.StandardResponse {
	if h.limits != nil {
		allowed, err := h.limits.Allow(r.Context(), clientKey)
		if err != nil {
			log.Printf("rate limiter: %v", err)
		} else if !allowed {
			return middleware.TooManyRequests()
		}
	}

	return h.chat.Process(r.Context(), data, requestID)
}

func (h *Hub) registerConnection(id uuid.UUID, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.connections[id] = conn
	log.Printf("WebSocket connected: %s (total: %d)", id, len(h.connections))
}

func (h *Hub) unregisterConnection(id uuid.UUID, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conn.Close()
	delete(h.connections, id)

	log.Printf("WebSocket disconnected: %s", id)
}

// Count returns the number of open connections.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.connections)
}

// Shutdown sends a going-away close frame to every open connection and closes
// it. The read loops then exit and unregister themselves.
func (h *Hub) Shutdown() {
	h.mu.RLock()
	defer h.mu.RUnlock()

	msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down")
	deadline := time.Now().Add(time.Second)
	for _, conn := range h.connections {
		conn.WriteControl(websocket.CloseMessage, msg, deadline)
		conn.Close()
	}
}
