package realtime

import (
	"encoding/json"
	"sync"

	"writeflow-api/internal/models"
)

// Event types pushed to connected dashboards.
const (
	EventTaskCreated       = "task_created"
	EventTaskStatusChanged = "task_status_changed"
	EventWriterAdded       = "writer_added"
)

// Event is a dashboard notification about a task or writer change.
type Event struct {
	Type    string            `json:"type"`
	TaskID  string            `json:"taskId,omitempty"`
	Status  models.TaskStatus `json:"status,omitempty"`
	ActorID string            `json:"actorId"`
	Version int               `json:"version"`
}

// Client represents a single websocket client connection.
// We keep it minimal here; the actual network conn is managed in the ws handler.
type Client interface {
	Send(message []byte) bool
	Close()
}

// Hub maintains active user connections and broadcasts events to them.
type Hub struct {
	mu              sync.RWMutex
	userIDToClients map[string]map[Client]struct{}
}

var hubInstance *Hub
var once sync.Once

// GetHub returns a singleton hub instance.
func GetHub() *Hub {
	once.Do(func() {
		hubInstance = &Hub{
			userIDToClients: make(map[string]map[Client]struct{}),
		}
	})
	return hubInstance
}

// Register adds a client under a user ID.
func (h *Hub) Register(userID string, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.userIDToClients[userID]; !ok {
		h.userIDToClients[userID] = make(map[Client]struct{})
	}
	h.userIDToClients[userID][client] = struct{}{}
}

// Unregister removes a client; if user has no more clients, cleans up map.
func (h *Hub) Unregister(userID string, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if clients, ok := h.userIDToClients[userID]; ok {
		delete(clients, client)
		if len(clients) == 0 {
			delete(h.userIDToClients, userID)
		}
	}
}

// Broadcast sends a message to all clients of a user.
func (h *Hub) Broadcast(userID string, message []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	h.broadcastLocked(userID, message)
}

// Notify marshals the event and fans it out to every listed user, at most
// once per user even if the list repeats an ID.
func (h *Hub) Notify(userIDs []string, event Event) {
	event.Version = 1
	message, err := json.Marshal(event)
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	seen := make(map[string]struct{}, len(userIDs))
	for _, id := range userIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		h.broadcastLocked(id, message)
	}
}

func (h *Hub) broadcastLocked(userID string, message []byte) {
	for c := range h.userIDToClients[userID] {
		if ok := c.Send(message); !ok {
			// client write failed; let the handler clean it up on its side
		}
	}
}
