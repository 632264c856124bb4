package realtime

import (
	"sync"
)

const (
	TableFoodItems     = "food_items"
	TableNotifications = "notifications"
)

// Event signals that a row owned by UserID changed in Table. Subscribers
// are expected to re-fetch; the event carries no row data on purpose.
type Event struct {
	Table  string `json:"table"`
	UserID string `json:"user_id"`
}

// Hub fans row-change events out to per-user subscribers. Slow
// subscribers drop events instead of blocking writers; a dropped event
// is harmless because every refresh is a full re-fetch.
type Hub struct {
	mu   sync.RWMutex
	subs map[string]map[chan Event]struct{}
}

func NewHub() *Hub {
	return &Hub{
		subs: make(map[string]map[chan Event]struct{}),
	}
}

func (h *Hub) Subscribe(userID string) (<-chan Event, func()) {
	ch := make(chan Event, 8)

	h.mu.Lock()
	if h.subs[userID] == nil {
		h.subs[userID] = make(map[chan Event]struct{})
	}
	h.subs[userID][ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		delete(h.subs[userID], ch)
		if len(h.subs[userID]) == 0 {
			delete(h.subs, userID)
		}
		h.mu.Unlock()
		close(ch)
	}
	return ch, cancel
}

func (h *Hub) Publish(table, userID string) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subs[userID] {
		select {
		case ch <- Event{Table: table, UserID: userID}:
		default:
		}
	}
}
