package services

import (
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// WSClient is one connected session.
type WSClient struct {
	ID     uuid.UUID
	UserID uint
	Conn   *websocket.Conn
}

func NewWSClient(userID uint, conn *websocket.Conn) *WSClient {
	return &WSClient{ID: uuid.New(), UserID: userID, Conn: conn}
}

// RealtimeHub fans engine results out to a user's live sessions.
type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[uint]map[*WSClient]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{clients: make(map[uint]map[*WSClient]struct{})}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.UserID] == nil {
		h.clients[c.UserID] = make(map[*WSClient]struct{})
	}
	h.clients[c.UserID][c] = struct{}{}
	h.mu.Unlock()
}

func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	if set := h.clients[c.UserID]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.UserID)
		}
	}
	h.mu.Unlock()
	_ = c.Conn.Close()
}

// ActiveUsers lists users with at least one live session; the poller only
// evaluates these.
func (h *RealtimeHub) ActiveUsers() []uint {
	h.mu.RLock()
	defer h.mu.RUnlock()
	users := make([]uint, 0, len(h.clients))
	for id := range h.clients {
		users = append(users, id)
	}
	return users
}

func (h *RealtimeHub) Broadcast(userID uint, payload any) {
	msg, err := json.Marshal(payload)
	if err != nil {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[userID] {
		_ = c.Conn.WriteMessage(websocket.TextMessage, msg)
	}
}
