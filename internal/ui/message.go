package ui

import (
	"selektah/internal/models"
	"selektah/internal/tasks"
)

// Fetch results carry the generation tag of the request that produced them;
// a response whose tag no longer matches the model's is discarded.

type statsMsg struct {
	stats *models.Stats
	err   error
}

type boardMsg struct {
	gen     string
	entries []models.BigBoardEntry
	err     error
}

type libraryMsg struct {
	gen  string
	page *models.LibraryPage
	err  error
}

type historyMsg struct {
	num  int
	page *models.HistoryPage
	err  error
}

type excludedMsg struct {
	albums []models.Album
	err    error
}

type playsMsg struct {
	page *models.ListeningStatsPage
	err  error
}

// deckMsg reports the outcome of any review-engine move (next, previous,
// exclude-and-advance).
type deckMsg struct {
	album *models.Album
	err   error
}

// actionMsg reports a decision or un-exclude POST that changes no selection.
type actionMsg struct {
	err error
}

type detailMsg struct {
	album *models.Album
	dates []string
	err   error
}

// overrideMsg reports an override save from the detail card's edit form.
type overrideMsg struct {
	err error
}

// browserMsg reports the attempt to hand a URL to the system browser.
type browserMsg struct {
	err error
}

type syncStartedMsg struct {
	updates <-chan tasks.Update
	err     error
}

type syncUpdateMsg tasks.Update

// syncClosedMsg means the monitor channel closed; controls re-enable.
type syncClosedMsg struct{}

type invalidationMsg tasks.Event
