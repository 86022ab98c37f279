package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"selektah/internal/formatter"
	"selektah/internal/shared"
)

// AlbumShow prints one album's full card with play dates.
func (r *Runner) AlbumShow(ctx context.Context, cmd *cli.Command) error {
	id, err := albumIDArg(cmd)
	if err != nil {
		return err
	}

	album, err := r.svc.Album(ctx, id)
	if err != nil {
		return err
	}
	dates, err := r.svc.PlayDates(ctx, id)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(struct {
			Album     any      `json:"album"`
			PlayDates []string `json:"play_dates"`
		}{album, dates}, true)
	}
	return r.writePlain("%s", formatter.AlbumDetail(album, dates))
}

// AlbumOpen opens the album's Discogs page in the default browser.
func (r *Runner) AlbumOpen(ctx context.Context, cmd *cli.Command) error {
	id, err := albumIDArg(cmd)
	if err != nil {
		return err
	}

	album, err := r.svc.Album(ctx, id)
	if err != nil {
		return err
	}
	url := album.DiscogsURL
	if url == "" {
		url = album.MasterURL
	}
	if url == "" {
		return fmt.Errorf("%w: album %d has no Discogs link", shared.ErrAlbumNotFound, id)
	}

	r.logger.Infof("opening %s", url)
	return shared.OpenBrowser(url)
}

// AlbumSetMaster sets the master cross-reference from an id or pasted URL.
func (r *Runner) AlbumSetMaster(ctx context.Context, cmd *cli.Command) error {
	id, err := albumIDArg(cmd)
	if err != nil {
		return err
	}
	if err := r.editor.SaveMaster(ctx, id, cmd.StringArg("master")); err != nil {
		return err
	}
	return r.writePlain("✓ Master set\n")
}

// AlbumClearMaster removes the master cross-reference override.
func (r *Runner) AlbumClearMaster(ctx context.Context, cmd *cli.Command) error {
	id, err := albumIDArg(cmd)
	if err != nil {
		return err
	}
	if err := r.editor.ClearMaster(ctx, id); err != nil {
		return err
	}
	return r.writePlain("✓ Master override cleared\n")
}

// AlbumSetRelease sets the release cross-reference from an id or pasted URL.
func (r *Runner) AlbumSetRelease(ctx context.Context, cmd *cli.Command) error {
	id, err := albumIDArg(cmd)
	if err != nil {
		return err
	}
	if err := r.editor.SaveRelease(ctx, id, cmd.StringArg("release")); err != nil {
		return err
	}
	return r.writePlain("✓ Release set\n")
}

// AlbumSetYear overrides the display year.
func (r *Runner) AlbumSetYear(ctx context.Context, cmd *cli.Command) error {
	id, err := albumIDArg(cmd)
	if err != nil {
		return err
	}
	year := strings.TrimSpace(cmd.StringArg("year"))
	if year == "" {
		return fmt.Errorf("%w: year", shared.ErrMissingArgument)
	}
	if err := r.editor.SaveYear(ctx, id, year); err != nil {
		return err
	}
	return r.writePlain("✓ Display year set to %s\n", year)
}

// AlbumClearYear removes the display-year override.
func (r *Runner) AlbumClearYear(ctx context.Context, cmd *cli.Command) error {
	id, err := albumIDArg(cmd)
	if err != nil {
		return err
	}
	if err := r.editor.SaveYear(ctx, id, ""); err != nil {
		return err
	}
	return r.writePlain("✓ Display-year override cleared\n")
}

// AlbumUseRelease adopts the release id as the master cross-reference.
func (r *Runner) AlbumUseRelease(ctx context.Context, cmd *cli.Command) error {
	id, err := albumIDArg(cmd)
	if err != nil {
		return err
	}
	if err := r.editor.UseReleaseAsMaster(ctx, id); err != nil {
		return err
	}
	return r.writePlain("✓ Release id adopted as master\n")
}
