// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"testing"

	"selektah/internal/models"
	"selektah/internal/services"
)

// MockService is a configurable test double for [services.Service]. Set the
// function field for each call a test cares about; unset calls return zero
// values and nil errors.
type MockService struct {
	StatsFunc          func(ctx context.Context) (*models.Stats, error)
	NextAlbumFunc      func(ctx context.Context) (*models.Album, error)
	PreviousAlbumFunc  func(ctx context.Context, beforeListenID int64) (*models.Album, error)
	MarkListenedFunc   func(ctx context.Context, albumID int64) error
	MarkSkippedFunc    func(ctx context.Context, albumID int64) error
	ExcludeFunc        func(ctx context.Context, albumID int64) error
	UnexcludeFunc      func(ctx context.Context, albumID int64) error
	HistoryFunc        func(ctx context.Context, page, perPage int) (*models.HistoryPage, error)
	ExcludedFunc       func(ctx context.Context) ([]models.Album, error)
	BigBoardFunc       func(ctx context.Context) ([]models.BigBoardEntry, error)
	MatchBigBoardFunc  func(ctx context.Context, albumID int64, rank, year int) error
	UnmatchFunc        func(ctx context.Context, rank int) error
	LibraryFunc        func(ctx context.Context, sort, order string) (*models.LibraryPage, error)
	ListeningStatsFunc func(ctx context.Context) (*models.ListeningStatsPage, error)
	SearchAlbumsFunc   func(ctx context.Context, query string) ([]models.Album, error)
	AlbumFunc          func(ctx context.Context, albumID int64) (*models.Album, error)
	PlayDatesFunc      func(ctx context.Context, albumID int64) ([]string, error)
	SetMasterFunc      func(ctx context.Context, albumID int64, masterID *int64) error
	SetReleaseFunc     func(ctx context.Context, albumID int64, releaseID int64) error
	SetYearFunc        func(ctx context.Context, albumID int64, year *int) error
	UseReleaseFunc     func(ctx context.Context, albumID int64) error
	StartSyncFunc      func(ctx context.Context, job services.SyncJob) error
	SyncStatusFunc     func(ctx context.Context) (*models.SyncStatus, error)
}

var _ services.Service = (*MockService)(nil)

func (m *MockService) Stats(ctx context.Context) (*models.Stats, error) {
	if m.StatsFunc != nil {
		return m.StatsFunc(ctx)
	}
	return &models.Stats{}, nil
}

func (m *MockService) NextAlbum(ctx context.Context) (*models.Album, error) {
	if m.NextAlbumFunc != nil {
		return m.NextAlbumFunc(ctx)
	}
	return &models.Album{}, nil
}

func (m *MockService) PreviousAlbum(ctx context.Context, beforeListenID int64) (*models.Album, error) {
	if m.PreviousAlbumFunc != nil {
		return m.PreviousAlbumFunc(ctx, beforeListenID)
	}
	return &models.Album{}, nil
}

func (m *MockService) MarkListened(ctx context.Context, albumID int64) error {
	if m.MarkListenedFunc != nil {
		return m.MarkListenedFunc(ctx, albumID)
	}
	return nil
}

func (m *MockService) MarkSkipped(ctx context.Context, albumID int64) error {
	if m.MarkSkippedFunc != nil {
		return m.MarkSkippedFunc(ctx, albumID)
	}
	return nil
}

func (m *MockService) Exclude(ctx context.Context, albumID int64) error {
	if m.ExcludeFunc != nil {
		return m.ExcludeFunc(ctx, albumID)
	}
	return nil
}

func (m *MockService) Unexclude(ctx context.Context, albumID int64) error {
	if m.UnexcludeFunc != nil {
		return m.UnexcludeFunc(ctx, albumID)
	}
	return nil
}

func (m *MockService) History(ctx context.Context, page, perPage int) (*models.HistoryPage, error) {
	if m.HistoryFunc != nil {
		return m.HistoryFunc(ctx, page, perPage)
	}
	return &models.HistoryPage{}, nil
}

func (m *MockService) Excluded(ctx context.Context) ([]models.Album, error) {
	if m.ExcludedFunc != nil {
		return m.ExcludedFunc(ctx)
	}
	return nil, nil
}

func (m *MockService) BigBoard(ctx context.Context) ([]models.BigBoardEntry, error) {
	if m.BigBoardFunc != nil {
		return m.BigBoardFunc(ctx)
	}
	return nil, nil
}

func (m *MockService) MatchBigBoard(ctx context.Context, albumID int64, rank, year int) error {
	if m.MatchBigBoardFunc != nil {
		return m.MatchBigBoardFunc(ctx, albumID, rank, year)
	}
	return nil
}

func (m *MockService) UnmatchBigBoard(ctx context.Context, rank int) error {
	if m.UnmatchFunc != nil {
		return m.UnmatchFunc(ctx, rank)
	}
	return nil
}

func (m *MockService) Library(ctx context.Context, sort, order string) (*models.LibraryPage, error) {
	if m.LibraryFunc != nil {
		return m.LibraryFunc(ctx, sort, order)
	}
	return &models.LibraryPage{}, nil
}

func (m *MockService) ListeningStats(ctx context.Context) (*models.ListeningStatsPage, error) {
	if m.ListeningStatsFunc != nil {
		return m.ListeningStatsFunc(ctx)
	}
	return &models.ListeningStatsPage{}, nil
}

func (m *MockService) SearchAlbums(ctx context.Context, query string) ([]models.Album, error) {
	if m.SearchAlbumsFunc != nil {
		return m.SearchAlbumsFunc(ctx, query)
	}
	return nil, nil
}

func (m *MockService) Album(ctx context.Context, albumID int64) (*models.Album, error) {
	if m.AlbumFunc != nil {
		return m.AlbumFunc(ctx, albumID)
	}
	return &models.Album{AlbumID: albumID}, nil
}

func (m *MockService) PlayDates(ctx context.Context, albumID int64) ([]string, error) {
	if m.PlayDatesFunc != nil {
		return m.PlayDatesFunc(ctx, albumID)
	}
	return nil, nil
}

func (m *MockService) SetMaster(ctx context.Context, albumID int64, masterID *int64) error {
	if m.SetMasterFunc != nil {
		return m.SetMasterFunc(ctx, albumID, masterID)
	}
	return nil
}

func (m *MockService) SetRelease(ctx context.Context, albumID int64, releaseID int64) error {
	if m.SetReleaseFunc != nil {
		return m.SetReleaseFunc(ctx, albumID, releaseID)
	}
	return nil
}

func (m *MockService) SetYear(ctx context.Context, albumID int64, year *int) error {
	if m.SetYearFunc != nil {
		return m.SetYearFunc(ctx, albumID, year)
	}
	return nil
}

func (m *MockService) UseReleaseAsMaster(ctx context.Context, albumID int64) error {
	if m.UseReleaseFunc != nil {
		return m.UseReleaseFunc(ctx, albumID)
	}
	return nil
}

func (m *MockService) StartSync(ctx context.Context, job services.SyncJob) error {
	if m.StartSyncFunc != nil {
		return m.StartSyncFunc(ctx, job)
	}
	return nil
}

func (m *MockService) SyncStatus(ctx context.Context) (*models.SyncStatus, error) {
	if m.SyncStatusFunc != nil {
		return m.SyncStatusFunc(ctx)
	}
	return &models.SyncStatus{}, nil
}

func (m *MockService) Name() string { return "mock" }

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

func MustGetwd(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	return wd
}

func MustChdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change directory to %s: %v", dir, err)
	}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
