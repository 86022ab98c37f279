package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"selektah/internal/formatter"
	"selektah/internal/models"
	"selektah/internal/shared"
	"selektah/internal/views"
)

// albumIDArg parses the positional album id argument.
func albumIDArg(cmd *cli.Command) (int64, error) {
	raw := strings.TrimSpace(cmd.StringArg("album-id"))
	if raw == "" {
		return 0, fmt.Errorf("%w: album-id", shared.ErrMissingArgument)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: album-id %q is not numeric", shared.ErrInvalidArgument, raw)
	}
	return id, nil
}

// Stats prints the aggregate collection counters.
func (r *Runner) Stats(ctx context.Context, cmd *cli.Command) error {
	stats, err := r.svc.Stats(ctx)
	if err != nil {
		return err
	}
	if cmd.Bool("json") {
		return r.writeJSON(stats, true)
	}
	return r.writePlain("%s\n", formatter.Stats(stats))
}

// ReviewNext selects the next album to review and prints its card.
func (r *Runner) ReviewNext(ctx context.Context, cmd *cli.Command) error {
	album, err := r.review.SelectNext(ctx)
	if err != nil {
		return err
	}
	return r.printSelection(cmd, album)
}

// ReviewPrevious shows the album selected immediately before a listen id.
func (r *Runner) ReviewPrevious(ctx context.Context, cmd *cli.Command) error {
	album, err := r.svc.PreviousAlbum(ctx, int64(cmd.Int("before")))
	if err != nil {
		return err
	}
	if album == nil {
		return shared.ErrNoPreviousListen
	}
	return r.printSelection(cmd, album)
}

func (r *Runner) printSelection(cmd *cli.Command, album *models.Album) error {
	if cmd.Bool("json") {
		return r.writeJSON(album, true)
	}
	r.writePlain("%s", formatter.AlbumDetail(album, nil))
	if album.ListenID != 0 {
		r.writePlain("  listen id: %d\n", album.ListenID)
	}
	return nil
}

// ReviewListen marks an album's latest selection as listened.
func (r *Runner) ReviewListen(ctx context.Context, cmd *cli.Command) error {
	id, err := albumIDArg(cmd)
	if err != nil {
		return err
	}
	if err := r.svc.MarkListened(ctx, id); err != nil {
		return err
	}
	return r.writePlain("✓ Marked listened\n")
}

// ReviewSkip marks an album's latest selection as skipped.
func (r *Runner) ReviewSkip(ctx context.Context, cmd *cli.Command) error {
	id, err := albumIDArg(cmd)
	if err != nil {
		return err
	}
	if err := r.svc.MarkSkipped(ctx, id); err != nil {
		return err
	}
	return r.writePlain("✓ Marked skipped\n")
}

// ReviewExclude removes an album from future selection.
func (r *Runner) ReviewExclude(ctx context.Context, cmd *cli.Command) error {
	id, err := albumIDArg(cmd)
	if err != nil {
		return err
	}
	if err := r.svc.Exclude(ctx, id); err != nil {
		return err
	}
	return r.writePlain("✓ Excluded album %d\n", id)
}

// ReviewUnexclude returns an excluded album to the selection pool.
func (r *Runner) ReviewUnexclude(ctx context.Context, cmd *cli.Command) error {
	id, err := albumIDArg(cmd)
	if err != nil {
		return err
	}
	if err := r.svc.Unexclude(ctx, id); err != nil {
		return err
	}
	return r.writePlain("✓ Un-excluded album %d\n", id)
}

// ReviewExcluded lists excluded albums.
func (r *Runner) ReviewExcluded(ctx context.Context, cmd *cli.Command) error {
	albums, err := r.svc.Excluded(ctx)
	if err != nil {
		return err
	}
	views.SortByArtist(albums)
	if cmd.Bool("json") {
		return r.writeJSON(albums, true)
	}
	if len(albums) == 0 {
		return r.writePlain("No excluded albums.\n")
	}
	return r.writePlain("%s\n", formatter.Excluded(albums))
}

// History prints one page of the selection log.
func (r *Runner) History(ctx context.Context, cmd *cli.Command) error {
	page := int(cmd.Int("page"))
	perPage := int(cmd.Int("per-page"))
	if perPage <= 0 {
		perPage = r.config.History.PerPage
	}

	log, err := r.svc.History(ctx, page, perPage)
	if err != nil {
		return err
	}
	if path := cmd.String("csv"); path != "" {
		data, err := formatter.ExportHistoryCSV(log.History)
		if err != nil {
			return err
		}
		if err := writeFile(path, data); err != nil {
			return err
		}
		return r.writePlain("✓ Wrote %s\n", path)
	}
	if cmd.Bool("json") {
		return r.writeJSON(log, true)
	}
	return r.writePlain("%s", formatter.History(log, page, perPage))
}

// Plays lists albums by play count.
func (r *Runner) Plays(ctx context.Context, cmd *cli.Command) error {
	page, err := r.svc.ListeningStats(ctx)
	if err != nil {
		return err
	}
	if cmd.Bool("json") {
		return r.writeJSON(page, true)
	}
	return r.writePlain("%s", formatter.ListeningStats(page))
}
