package notification

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Hub tracks one live connection per user for inbox push. A second
// connection from the same user replaces the first.
type Hub struct {
	connections map[string]*websocket.Conn
	mutex       sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[string]*websocket.Conn),
	}
}

func (h *Hub) Register(userID string, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if oldConn, exists := h.connections[userID]; exists && oldConn != nil {
		_ = oldConn.Close()
	}

	h.connections[userID] = conn
}

func (h *Hub) Unregister(userID string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if conn, exists := h.connections[userID]; exists && conn != nil {
		_ = conn.Close()
		delete(h.connections, userID)
	}
}

func (h *Hub) SendToUser(userID string, message interface{}) bool {
	h.mutex.RLock()
	conn, exists := h.connections[userID]
	h.mutex.RUnlock()

	if !exists || conn == nil {
		return false
	}

	if err := conn.WriteJSON(message); err != nil {
		h.Unregister(userID)
		return false
	}

	return true
}

func (h *Hub) IsOnline(userID string) bool {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	_, exists := h.connections[userID]
	return exists
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for userID, conn := range h.connections {
		if conn != nil {
			_ = conn.Close()
		}
		delete(h.connections, userID)
	}
}
