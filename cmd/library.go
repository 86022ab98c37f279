package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"selektah/internal/formatter"
	"selektah/internal/shared"
	"selektah/internal/views"
)

// LibraryShow renders the collection bucketed by the requested facet. The
// service pre-sorts; bucketing happens client-side.
func (r *Runner) LibraryShow(ctx context.Context, cmd *cli.Command) error {
	facet, err := parseFacet(cmd.String("group"), []views.Facet{
		views.FacetArtist, views.FacetTitle, views.FacetMasterYear, views.FacetReleaseYear,
	})
	if err != nil {
		return err
	}
	order, err := parseOrder(cmd.String("order"))
	if err != nil {
		return err
	}

	page, err := r.svc.Library(ctx, facet.String(), order.String())
	if err != nil {
		return err
	}

	state := browseState(cmd, facet)
	state.Order = order
	rendered := views.Render(views.FromAlbums(page.Albums), state)

	if cmd.Bool("json") {
		return r.writeJSON(rendered, true)
	}
	return r.writePlain("%s", formatter.Collection(rendered))
}

// LibrarySearch delegates a query to the service's search endpoint.
func (r *Runner) LibrarySearch(ctx context.Context, cmd *cli.Command) error {
	query := strings.TrimSpace(cmd.StringArg("query"))
	if query == "" {
		return fmt.Errorf("%w: query", shared.ErrMissingArgument)
	}

	albums, err := r.svc.SearchAlbums(ctx, query)
	if err != nil {
		return err
	}
	if cmd.Bool("json") {
		return r.writeJSON(albums, true)
	}
	if len(albums) == 0 {
		return r.writePlain("No matches for %q.\n", query)
	}

	return r.writePlain("%s\n%d matches\n", formatter.Albums(albums), len(albums))
}

// LibraryExport writes the whole collection as CSV.
func (r *Runner) LibraryExport(ctx context.Context, cmd *cli.Command) error {
	page, err := r.svc.Library(ctx, "artist", "asc")
	if err != nil {
		return err
	}

	data, err := formatter.ExportLibraryCSV(page.Albums)
	if err != nil {
		return err
	}

	if path := cmd.String("output"); path != "" {
		if err := writeFile(path, data); err != nil {
			return err
		}
		return r.writePlain("✓ Exported %d albums to %s\n", len(page.Albums), path)
	}
	return r.writePlain("%s", string(data))
}
