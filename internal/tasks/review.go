package tasks

import (
	"context"
	"fmt"
	"sync"

	"selektah/internal/models"
	"selektah/internal/services"
	"selektah/internal/shared"
)

// ReviewPhase describes what the review surface should offer for the album
// on deck.
type ReviewPhase int

const (
	ReviewEmpty    ReviewPhase = iota // nothing selected yet
	ReviewPending                     // selected, no decision recorded
	ReviewListened                    // decision recorded: listened
	ReviewSkipped                     // decision recorded: skipped
)

func (p ReviewPhase) String() string {
	switch p {
	case ReviewPending:
		return "pending"
	case ReviewListened:
		return "listened"
	case ReviewSkipped:
		return "skipped"
	default:
		return "empty"
	}
}

// ReviewEngine walks the selection queue: pull the next album, step back
// through past selections, record listened/skipped decisions, and exclude
// albums from future selection. The service owns selection policy and
// ordering; the engine owns which album is on deck and guards against
// double-submitting any single action.
type ReviewEngine struct {
	svc services.Service
	hub *Hub

	mu          sync.Mutex
	current     *models.Album
	fromHistory bool
	inFlight    map[string]bool
}

func NewReviewEngine(svc services.Service, hub *Hub) *ReviewEngine {
	return &ReviewEngine{svc: svc, hub: hub, inFlight: map[string]bool{}}
}

// Current returns the album on deck, or nil, and whether it was reached by
// stepping backwards through history.
func (e *ReviewEngine) Current() (*models.Album, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.current, e.fromHistory
}

// Phase reports the decision state of the album on deck.
func (e *ReviewEngine) Phase() ReviewPhase {
	e.mu.Lock()
	defer e.mu.Unlock()
	switch {
	case e.current == nil:
		return ReviewEmpty
	case e.current.DidListen:
		return ReviewListened
	case e.current.Skipped:
		return ReviewSkipped
	default:
		return ReviewPending
	}
}

// begin reserves an action slot, failing while an earlier call to the same
// action is still running.
func (e *ReviewEngine) begin(action string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.inFlight[action] {
		return fmt.Errorf("%w: %s", shared.ErrActionPending, action)
	}
	e.inFlight[action] = true
	return nil
}

func (e *ReviewEngine) end(action string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.inFlight, action)
}

// SelectNext asks the service for the next album and puts it on deck. Each
// call records a new selection event server-side, so the engine refuses to
// overlap two of them.
func (e *ReviewEngine) SelectNext(ctx context.Context) (*models.Album, error) {
	if err := e.begin("next"); err != nil {
		return nil, err
	}
	defer e.end("next")
	return e.selectNext(ctx)
}

func (e *ReviewEngine) selectNext(ctx context.Context) (*models.Album, error) {
	album, err := e.svc.NextAlbum(ctx)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	e.current = album
	e.fromHistory = false
	e.mu.Unlock()
	if e.hub != nil {
		e.hub.Publish(Event{Kind: EventHistoryStale})
	}
	return album, nil
}

// GoPrevious steps back to the album selected immediately before the one on
// deck. The returned album carries its own decision flags, which the engine
// adopts as-is. Excluded albums are not filtered out here; the log shows
// what actually happened.
func (e *ReviewEngine) GoPrevious(ctx context.Context) (*models.Album, error) {
	if err := e.begin("previous"); err != nil {
		return nil, err
	}
	defer e.end("previous")

	e.mu.Lock()
	cur := e.current
	e.mu.Unlock()
	if cur == nil || cur.ListenID == 0 {
		return nil, shared.ErrNoCurrentAlbum
	}

	album, err := e.svc.PreviousAlbum(ctx, cur.ListenID)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	e.current = album
	e.fromHistory = true
	e.mu.Unlock()
	return album, nil
}

// MarkListened records a listened decision for the selection on deck.
func (e *ReviewEngine) MarkListened(ctx context.Context) error {
	return e.mark(ctx, "listen", e.svc.MarkListened, func(a *models.Album) {
		a.DidListen = true
		a.Skipped = false
		a.TimesPlayed++
	}, true)
}

// MarkSkipped records a skipped decision for the selection on deck.
func (e *ReviewEngine) MarkSkipped(ctx context.Context) error {
	return e.mark(ctx, "skip", e.svc.MarkSkipped, func(a *models.Album) {
		a.Skipped = true
		a.DidListen = false
		a.TimesSkipped++
	}, false)
}

func (e *ReviewEngine) mark(ctx context.Context, action string, post func(context.Context, int64) error, apply func(*models.Album), statsStale bool) error {
	if err := e.begin(action); err != nil {
		return err
	}
	defer e.end(action)

	e.mu.Lock()
	cur := e.current
	e.mu.Unlock()
	if cur == nil {
		return shared.ErrNoCurrentAlbum
	}
	if cur.Resolved() {
		return fmt.Errorf("%w: %s / %s", shared.ErrAlreadyResolved, cur.Artist, cur.Title)
	}

	if err := post(ctx, cur.AlbumID); err != nil {
		return err
	}

	e.mu.Lock()
	if e.current == cur {
		apply(e.current)
	}
	e.mu.Unlock()

	if e.hub != nil {
		if statsStale {
			e.hub.Publish(Event{Kind: EventStatsStale})
		}
		e.hub.Publish(Event{Kind: EventHistoryStale})
	}
	return nil
}

// Exclude removes the album on deck from future selection and immediately
// pulls the next one in the same call, so the surface never dwells on an
// album the user just threw out.
func (e *ReviewEngine) Exclude(ctx context.Context) (*models.Album, error) {
	if err := e.begin("exclude"); err != nil {
		return nil, err
	}
	defer e.end("exclude")

	e.mu.Lock()
	cur := e.current
	e.mu.Unlock()
	if cur == nil {
		return nil, shared.ErrNoCurrentAlbum
	}

	if err := e.svc.Exclude(ctx, cur.AlbumID); err != nil {
		return nil, err
	}
	if e.hub != nil {
		e.hub.Publish(Event{Kind: EventStatsStale})
	}
	return e.selectNext(ctx)
}

// RefreshCurrent refetches the album on deck after its detail fields were
// edited elsewhere. The selection event (listen id, decision flags) belongs
// to this session, not the detail endpoint, so those survive the merge.
func (e *ReviewEngine) RefreshCurrent(ctx context.Context) (*models.Album, error) {
	e.mu.Lock()
	cur := e.current
	e.mu.Unlock()
	if cur == nil {
		return nil, shared.ErrNoCurrentAlbum
	}

	fresh, err := e.svc.Album(ctx, cur.AlbumID)
	if err != nil {
		return nil, err
	}
	fresh.ListenID = cur.ListenID
	fresh.DidListen = cur.DidListen
	fresh.Skipped = cur.Skipped

	e.mu.Lock()
	if e.current != nil && e.current.AlbumID == fresh.AlbumID {
		e.current = fresh
	}
	e.mu.Unlock()
	return fresh, nil
}
