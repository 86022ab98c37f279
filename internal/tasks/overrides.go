package tasks

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"selektah/internal/models"
	"selektah/internal/services"
	"selektah/internal/shared"
)

var (
	bareID      = regexp.MustCompile(`^\d+$`)
	masterInURL = regexp.MustCompile(`/master/(\d+)`)
	releaseURL  = regexp.MustCompile(`/release/(\d+)`)
)

// ParseMasterID extracts a Discogs master id from either a bare numeric id
// or a pasted URL containing a /master/<id> segment.
func ParseMasterID(input string) (int64, error) {
	return parseID(input, "master", masterInURL)
}

// ParseReleaseID extracts a Discogs release id from either a bare numeric id
// or a pasted URL containing a /release/<id> segment.
func ParseReleaseID(input string) (int64, error) {
	return parseID(input, "release", releaseURL)
}

func parseID(input, kind string, inURL *regexp.Regexp) (int64, error) {
	trimmed := strings.TrimSpace(input)
	if bareID.MatchString(trimmed) {
		return strconv.ParseInt(trimmed, 10, 64)
	}
	if m := inURL.FindStringSubmatch(trimmed); m != nil {
		return strconv.ParseInt(m[1], 10, 64)
	}
	return 0, fmt.Errorf("%w: %q is not a %s id or url", shared.ErrInvalidInput, input, kind)
}

// OverrideEditor applies manual corrections to an album: master and release
// cross-references and the display-year override. Every successful edit
// publishes [EventAlbumChanged] so open views of the album refetch.
type OverrideEditor struct {
	svc services.Service
	hub *Hub
}

func NewOverrideEditor(svc services.Service, hub *Hub) *OverrideEditor {
	return &OverrideEditor{svc: svc, hub: hub}
}

// Load fetches the album's current detail, including any active overrides.
func (o *OverrideEditor) Load(ctx context.Context, albumID int64) (*models.Album, error) {
	return o.svc.Album(ctx, albumID)
}

// SaveMaster parses the input as a master id or URL and stores it. All
// validation happens before the network call.
func (o *OverrideEditor) SaveMaster(ctx context.Context, albumID int64, input string) error {
	id, err := ParseMasterID(input)
	if err != nil {
		return err
	}
	if err := o.svc.SetMaster(ctx, albumID, &id); err != nil {
		return err
	}
	o.changed(albumID)
	return nil
}

// ClearMaster removes the master cross-reference override.
func (o *OverrideEditor) ClearMaster(ctx context.Context, albumID int64) error {
	if err := o.svc.SetMaster(ctx, albumID, nil); err != nil {
		return err
	}
	o.changed(albumID)
	return nil
}

// SaveRelease parses the input as a release id or URL and stores it.
func (o *OverrideEditor) SaveRelease(ctx context.Context, albumID int64, input string) error {
	id, err := ParseReleaseID(input)
	if err != nil {
		return err
	}
	if err := o.svc.SetRelease(ctx, albumID, id); err != nil {
		return err
	}
	o.changed(albumID)
	return nil
}

// SaveYear overrides the display year. An empty input clears the override,
// letting the service fall back to board, master and release years.
func (o *OverrideEditor) SaveYear(ctx context.Context, albumID int64, input string) error {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		if err := o.svc.SetYear(ctx, albumID, nil); err != nil {
			return err
		}
		o.changed(albumID)
		return nil
	}

	year, err := strconv.Atoi(trimmed)
	if err != nil {
		return fmt.Errorf("%w: %q is not a year", shared.ErrInvalidInput, input)
	}
	if err := o.svc.SetYear(ctx, albumID, &year); err != nil {
		return err
	}
	o.changed(albumID)
	return nil
}

// UseReleaseAsMaster adopts the album's release id as its master
// cross-reference in one step.
func (o *OverrideEditor) UseReleaseAsMaster(ctx context.Context, albumID int64) error {
	if err := o.svc.UseReleaseAsMaster(ctx, albumID); err != nil {
		return err
	}
	o.changed(albumID)
	return nil
}

func (o *OverrideEditor) changed(albumID int64) {
	if o.hub != nil {
		o.hub.Publish(Event{Kind: EventAlbumChanged, AlbumID: albumID})
	}
}
