// HTTP implementation of [Service] for the record service's JSON API.
package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"selektah/internal/models"
	"selektah/internal/shared"
)

// Client talks to the record service over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

var _ Service = (*Client)(nil)

// NewClient creates a Client for the service at baseURL. A nil http.Client
// falls back to [http.DefaultClient]; a non-positive rate disables limiting.
func NewClient(baseURL string, client *http.Client, perSecond float64) *Client {
	if baseURL == "" {
		baseURL = "http://localhost:5000"
	}
	if client == nil {
		client = http.DefaultClient
	}

	limit := rate.Inf
	if perSecond > 0 {
		limit = rate.Limit(perSecond)
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: client,
		limiter:    rate.NewLimiter(limit, 1),
	}
}

// Name implements [Service].
func (c *Client) Name() string { return "record service" }

// envelope is the uniform response wrapper used by every endpoint.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// do performs one request and decodes the envelope into out (when non-nil).
// Transport failures become [shared.ErrConnectivity]; failure envelopes and
// non-2xx statuses become [shared.ErrService] carrying the service's message.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return fmt.Errorf("%w. Is it running?", shared.ErrConnectivity)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	var env envelope
	if decodeErr := json.Unmarshal(raw, &env); decodeErr != nil {
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return fmt.Errorf("%w: request failed (%d)", shared.ErrService, resp.StatusCode)
		}
		return fmt.Errorf("failed to decode response: %w", decodeErr)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 || !env.Success {
		msg := env.Message
		if msg == "" {
			msg = fmt.Sprintf("request failed (%d)", resp.StatusCode)
		}
		return fmt.Errorf("%w: %s", shared.ErrService, msg)
	}

	if out != nil && len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}

	return nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// Stats implements [Service].
func (c *Client) Stats(ctx context.Context) (*models.Stats, error) {
	var stats models.Stats
	if err := c.get(ctx, "/api/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// NextAlbum implements [Service].
func (c *Client) NextAlbum(ctx context.Context) (*models.Album, error) {
	var album models.Album
	if err := c.get(ctx, "/api/next", &album); err != nil {
		return nil, err
	}
	return &album, nil
}

// PreviousAlbum implements [Service].
func (c *Client) PreviousAlbum(ctx context.Context, beforeListenID int64) (*models.Album, error) {
	path := "/api/previous"
	if beforeListenID > 0 {
		path = fmt.Sprintf("/api/previous?before_listen_id=%d", beforeListenID)
	}
	var album models.Album
	if err := c.get(ctx, path, &album); err != nil {
		return nil, err
	}
	return &album, nil
}

// MarkListened implements [Service].
func (c *Client) MarkListened(ctx context.Context, albumID int64) error {
	return c.post(ctx, fmt.Sprintf("/api/listened/%d", albumID), nil, nil)
}

// MarkSkipped implements [Service].
func (c *Client) MarkSkipped(ctx context.Context, albumID int64) error {
	return c.post(ctx, fmt.Sprintf("/api/skipped/%d", albumID), nil, nil)
}

// Exclude implements [Service].
func (c *Client) Exclude(ctx context.Context, albumID int64) error {
	return c.post(ctx, fmt.Sprintf("/api/exclude/%d", albumID), nil, nil)
}

// Unexclude implements [Service].
func (c *Client) Unexclude(ctx context.Context, albumID int64) error {
	return c.post(ctx, fmt.Sprintf("/api/unexclude/%d", albumID), nil, nil)
}

// History implements [Service].
func (c *Client) History(ctx context.Context, page, perPage int) (*models.HistoryPage, error) {
	var out models.HistoryPage
	path := fmt.Sprintf("/api/history?page=%d&per_page=%d", page, perPage)
	if err := c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Excluded implements [Service].
func (c *Client) Excluded(ctx context.Context) ([]models.Album, error) {
	var albums []models.Album
	if err := c.get(ctx, "/api/excluded", &albums); err != nil {
		return nil, err
	}
	return albums, nil
}

// BigBoard implements [Service].
func (c *Client) BigBoard(ctx context.Context) ([]models.BigBoardEntry, error) {
	var entries []models.BigBoardEntry
	if err := c.get(ctx, "/api/bigboard", &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// MatchBigBoard implements [Service].
func (c *Client) MatchBigBoard(ctx context.Context, albumID int64, rank, year int) error {
	body := map[string]any{"album_id": albumID, "rank": rank}
	if year > 0 {
		body["year"] = year
	}
	return c.post(ctx, "/api/bigboard/match", body, nil)
}

// UnmatchBigBoard implements [Service].
func (c *Client) UnmatchBigBoard(ctx context.Context, rank int) error {
	return c.post(ctx, "/api/bigboard/unmatch", map[string]any{"rank": rank}, nil)
}

// Library implements [Service].
func (c *Client) Library(ctx context.Context, sort, order string) (*models.LibraryPage, error) {
	var out models.LibraryPage
	path := fmt.Sprintf("/api/library?sort=%s&order=%s", url.QueryEscape(sort), url.QueryEscape(order))
	if err := c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListeningStats implements [Service].
func (c *Client) ListeningStats(ctx context.Context) (*models.ListeningStatsPage, error) {
	var out models.ListeningStatsPage
	if err := c.get(ctx, "/api/listening-stats", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchAlbums implements [Service].
func (c *Client) SearchAlbums(ctx context.Context, query string) ([]models.Album, error) {
	var albums []models.Album
	path := "/api/albums/search?q=" + url.QueryEscape(query)
	if err := c.get(ctx, path, &albums); err != nil {
		return nil, err
	}
	return albums, nil
}

// Album implements [Service].
func (c *Client) Album(ctx context.Context, albumID int64) (*models.Album, error) {
	var album models.Album
	if err := c.get(ctx, fmt.Sprintf("/api/album/%d", albumID), &album); err != nil {
		return nil, err
	}
	return &album, nil
}

// PlayDates implements [Service].
func (c *Client) PlayDates(ctx context.Context, albumID int64) ([]string, error) {
	var dates []string
	if err := c.get(ctx, fmt.Sprintf("/api/album/%d/play-dates", albumID), &dates); err != nil {
		return nil, err
	}
	return dates, nil
}

// SetMaster implements [Service]. A nil masterID clears the override.
func (c *Client) SetMaster(ctx context.Context, albumID int64, masterID *int64) error {
	return c.post(ctx, fmt.Sprintf("/api/album/%d/master", albumID), map[string]any{"master_id": masterID}, nil)
}

// SetRelease implements [Service].
func (c *Client) SetRelease(ctx context.Context, albumID int64, releaseID int64) error {
	return c.post(ctx, fmt.Sprintf("/api/album/%d/release", albumID), map[string]any{"release_id": releaseID}, nil)
}

// SetYear implements [Service]. A nil year clears the override.
func (c *Client) SetYear(ctx context.Context, albumID int64, year *int) error {
	return c.post(ctx, fmt.Sprintf("/api/album/%d/year", albumID), map[string]any{"year": year}, nil)
}

// UseReleaseAsMaster implements [Service].
func (c *Client) UseReleaseAsMaster(ctx context.Context, albumID int64) error {
	return c.post(ctx, fmt.Sprintf("/api/album/%d/use-release-as-master", albumID), nil, nil)
}

// StartSync implements [Service].
func (c *Client) StartSync(ctx context.Context, job SyncJob) error {
	return c.post(ctx, "/api/sync/"+string(job), nil, nil)
}

// SyncStatus implements [Service].
func (c *Client) SyncStatus(ctx context.Context) (*models.SyncStatus, error) {
	var status models.SyncStatus
	if err := c.get(ctx, "/api/sync/status", &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// UserMessage renders err the way it should be shown in a transient
// notification: service messages verbatim, the connectivity rewrite as-is,
// and everything else through Error().
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if errors.Is(err, shared.ErrService) {
		if _, rest, ok := strings.Cut(msg, shared.ErrService.Error()+": "); ok {
			return rest
		}
	}
	return msg
}
