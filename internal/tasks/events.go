package tasks

import "sync"

// EventKind classifies an invalidation event.
type EventKind int

const (
	// EventAlbumChanged means one album's detail fields were modified and
	// any open view of it should refetch.
	EventAlbumChanged EventKind = iota
	// EventStatsStale means the aggregate counters are out of date.
	EventStatsStale
	// EventHistoryStale means the selection log gained or changed an entry.
	EventHistoryStale
)

func (k EventKind) String() string {
	switch k {
	case EventAlbumChanged:
		return "album_changed"
	case EventStatsStale:
		return "stats_stale"
	case EventHistoryStale:
		return "history_stale"
	default:
		return ""
	}
}

// Event is one invalidation notice. AlbumID is set for EventAlbumChanged.
type Event struct {
	Kind    EventKind
	AlbumID int64
}

// Hub fans invalidation events out to subscribers. Publishing never blocks;
// a subscriber that stops draining loses events rather than stalling the
// workflow that produced them.
type Hub struct {
	mu   sync.Mutex
	subs []chan Event
}

func NewHub() *Hub {
	return &Hub{}
}

// Subscribe registers a new buffered listener channel.
func (h *Hub) Subscribe() <-chan Event {
	h.mu.Lock()
	defer h.mu.Unlock()
	ch := make(chan Event, 16)
	h.subs = append(h.subs, ch)
	return ch
}

// Publish delivers the event to every subscriber with room to take it.
func (h *Hub) Publish(e Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ch := range h.subs {
		select {
		case ch <- e:
		default:
		}
	}
}
