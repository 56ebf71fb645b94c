package ws

import (
	"encoding/json"
	"time"
)

// Event tells clients which record changed so they can refetch it.
type Event struct {
	Type      string `json:"type"`
	ID        int64  `json:"id"`
	Timestamp string `json:"timestamp"`
}

// Publish broadcasts an Event to every connected client.
func (h *Hub) Publish(eventType string, id int64) {
	if h == nil || eventType == "" {
		return
	}

	b, err := json.Marshal(Event{
		Type:      eventType,
		ID:        id,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		h.logger.WithError(err).Error("ws event encode failed")
		return
	}
	h.Broadcast(b)
}
