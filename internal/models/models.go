package models

import "time"

// selectedAtLayout is how the service formats selection timestamps. No zone
// is transmitted; values are UTC.
const selectedAtLayout = "2006-01-02 15:04:05"

// Album is one record in the collection. The service resolves DisplayYear
// from the override, board year, master year and release year; the client
// never recomputes it.
//
// When an Album is returned by /api/next or /api/previous it also carries
// ListenID and the DidListen/Skipped flags for that selection event.
type Album struct {
	AlbumID       int64    `json:"album_id"`
	ListenID      int64    `json:"listen_id,omitempty"`
	Artist        string   `json:"artist"`
	Title         string   `json:"title"`
	DisplayYear   int      `json:"display_year,omitempty"`
	ReleaseYear   int      `json:"release_year,omitempty"`
	MasterYear    int      `json:"master_year,omitempty"`
	Genres        []string `json:"genres"`
	Styles        []string `json:"styles,omitempty"`
	Format        string   `json:"format,omitempty"`
	CoverImageURL string   `json:"cover_image_url,omitempty"`
	DiscogsURL    string   `json:"discogs_url,omitempty"`
	MasterURL     string   `json:"master_url,omitempty"`
	BigBoardRank  int      `json:"big_board_rank,omitempty"`
	TimesPlayed   int      `json:"times_played,omitempty"`
	TimesSkipped  int      `json:"times_skipped,omitempty"`
	DidListen     bool     `json:"did_listen,omitempty"`
	Skipped       bool     `json:"skipped,omitempty"`
}

// Resolved returns true once a listened/skipped decision has been recorded
// for the selection event this album came from.
func (a *Album) Resolved() bool {
	return a.DidListen || a.Skipped
}

// BigBoardEntry is one row of the community ranking. Rank is 1-based and
// unique within the board. AlbumID is present only when the row is linked to
// an owned album, which implies Owned.
type BigBoardEntry struct {
	Rank          int      `json:"rank"`
	Artist        string   `json:"artist"`
	Title         string   `json:"title"`
	Year          int      `json:"year,omitempty"`
	Genres        []string `json:"genres"`
	Owned         bool     `json:"owned"`
	AlbumID       int64    `json:"album_id,omitempty"`
	CoverImageURL string   `json:"cover_image_url,omitempty"`
}

// HistoryItem is one past selection event, denormalized with album display
// fields so the history list renders without a second fetch. At most one of
// DidListen/Skipped is true; neither means the selection is still pending.
type HistoryItem struct {
	ListenID      int64  `json:"listen_id"`
	AlbumID       int64  `json:"album_id"`
	SelectedAt    string `json:"selected_at"`
	DidListen     bool   `json:"did_listen"`
	Skipped       bool   `json:"skipped"`
	Artist        string `json:"artist"`
	Title         string `json:"title"`
	DisplayYear   int    `json:"display_year,omitempty"`
	CoverImageURL string `json:"cover_image_url,omitempty"`
}

// SelectedTime parses SelectedAt as UTC. The zero time is returned when the
// value is missing or malformed.
func (h *HistoryItem) SelectedTime() time.Time {
	t, err := time.ParseInLocation(selectedAtLayout, h.SelectedAt, time.UTC)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Status describes the selection event as shown in the history list.
func (h *HistoryItem) Status() string {
	switch {
	case h.DidListen:
		return "Listened"
	case h.Skipped:
		return "Skipped"
	default:
		return "Pending"
	}
}

// HistoryPage is one page of the selection log, newest first.
type HistoryPage struct {
	History []HistoryItem `json:"history"`
	Total   int           `json:"total"`
}

// Stats holds the aggregate counters for the home screen.
type Stats struct {
	TotalAlbums    int `json:"total_albums"`
	BigBoardRanked int `json:"big_board_ranked"`
	UniqueListened int `json:"unique_listened"`
	Excluded       int `json:"excluded"`
}

// LibraryPage is the full collection, pre-sorted by the service.
type LibraryPage struct {
	Albums []Album `json:"albums"`
	Total  int     `json:"total"`
}

// ListeningStat is an album together with its play count, ordered by the
// service from most to least played.
type ListeningStat struct {
	AlbumID       int64  `json:"album_id"`
	Artist        string `json:"artist"`
	Title         string `json:"title"`
	DisplayYear   int    `json:"display_year,omitempty"`
	CoverImageURL string `json:"cover_image_url,omitempty"`
	ListenCount   int    `json:"listen_count"`
}

// ListeningStatsPage wraps the played-album list with its total.
type ListeningStatsPage struct {
	Albums []ListeningStat `json:"albums"`
	Total  int             `json:"total"`
}

// SyncStatus is one poll of the background-job status endpoint. Total == 0
// with InProgress set means the job cannot report a determinate fraction.
type SyncStatus struct {
	InProgress bool   `json:"in_progress"`
	Current    int    `json:"current"`
	Total      int    `json:"total"`
	Message    string `json:"message,omitempty"`
}
