// package services defines interface Service for the record service HTTP API
package services

import (
	"context"

	"selektah/internal/models"
)

// SyncJob names one of the background jobs the service can run.
type SyncJob string

const (
	SyncDiscogs     SyncJob = "discogs"
	SyncBigBoard    SyncJob = "bigboard"
	SyncMasterYears SyncJob = "master_years"
)

// Jobs lists every startable job, in display order.
func Jobs() []SyncJob {
	return []SyncJob{SyncDiscogs, SyncBigBoard, SyncMasterYears}
}

// Service is the full surface of the record service as seen by this client.
// All ordering and selection policy lives server-side; the client renders
// what it is given.
type Service interface {
	// Stats returns aggregate collection counters.
	Stats(ctx context.Context) (*models.Stats, error)

	// NextAlbum asks the service for the next album to review.
	NextAlbum(ctx context.Context) (*models.Album, error)

	// PreviousAlbum returns the album selected immediately before the given
	// listen id. The returned album carries its own did_listen/skipped flags.
	PreviousAlbum(ctx context.Context, beforeListenID int64) (*models.Album, error)

	// MarkListened and MarkSkipped record a status transition for the most
	// recent selection of the album. Each is a single idempotent-intent POST.
	MarkListened(ctx context.Context, albumID int64) error
	MarkSkipped(ctx context.Context, albumID int64) error

	// Exclude removes the album from future NextAlbum results; Unexclude
	// reverses that.
	Exclude(ctx context.Context, albumID int64) error
	Unexclude(ctx context.Context, albumID int64) error

	// History returns one page of the selection log, newest first.
	History(ctx context.Context, page, perPage int) (*models.HistoryPage, error)

	// Excluded returns the full excluded-album list.
	Excluded(ctx context.Context) ([]models.Album, error)

	// BigBoard returns the full ranking list.
	BigBoard(ctx context.Context) ([]models.BigBoardEntry, error)

	// MatchBigBoard links an unowned ranking row to an owned album;
	// UnmatchBigBoard removes such a link.
	MatchBigBoard(ctx context.Context, albumID int64, rank, year int) error
	UnmatchBigBoard(ctx context.Context, rank int) error

	// Library returns the whole collection pre-sorted by the service.
	// sort is one of artist, title, master_year, release_year; order is
	// asc or desc.
	Library(ctx context.Context, sort, order string) (*models.LibraryPage, error)

	// ListeningStats returns played albums with play counts.
	ListeningStats(ctx context.Context) (*models.ListeningStatsPage, error)

	// SearchAlbums delegates a substring/fuzzy search to the service.
	SearchAlbums(ctx context.Context, query string) ([]models.Album, error)

	// Album returns one album's full detail.
	Album(ctx context.Context, albumID int64) (*models.Album, error)

	// PlayDates returns the listen timestamps recorded for the album.
	PlayDates(ctx context.Context, albumID int64) ([]string, error)

	// SetMaster sets the master-release cross-reference override, or clears
	// it when masterID is nil.
	SetMaster(ctx context.Context, albumID int64, masterID *int64) error

	// SetRelease sets the specific-release cross-reference override.
	SetRelease(ctx context.Context, albumID int64, releaseID int64) error

	// SetYear overrides the display year, or clears the override when year
	// is nil.
	SetYear(ctx context.Context, albumID int64, year *int) error

	// UseReleaseAsMaster adopts the album's release id as its master
	// cross-reference.
	UseReleaseAsMaster(ctx context.Context, albumID int64) error

	// StartSync begins a named background job.
	StartSync(ctx context.Context, job SyncJob) error

	// SyncStatus reports progress of the running job, if any.
	SyncStatus(ctx context.Context) (*models.SyncStatus, error)

	// Name returns the service name for logging.
	Name() string
}
