package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"selektah/internal/formatter"
	"selektah/internal/shared"
	"selektah/internal/views"
)

var facetNames = map[string]views.Facet{
	"rank":         views.FacetRank,
	"decade":       views.FacetDecade,
	"genre":        views.FacetGenre,
	"heatmap":      views.FacetHeatmap,
	"artist":       views.FacetArtist,
	"title":        views.FacetTitle,
	"master_year":  views.FacetMasterYear,
	"release_year": views.FacetReleaseYear,
}

func parseFacet(name string, allowed []views.Facet) (views.Facet, error) {
	f, ok := facetNames[name]
	if !ok {
		return 0, fmt.Errorf("%w: unknown group %q", shared.ErrInvalidFlag, name)
	}
	for _, a := range allowed {
		if f == a {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: group %q does not apply here", shared.ErrInvalidFlag, name)
}

func parseOrder(name string) (views.Order, error) {
	switch name {
	case "asc", "":
		return views.Asc, nil
	case "desc":
		return views.Desc, nil
	default:
		return 0, fmt.Errorf("%w: order must be asc or desc, got %q", shared.ErrInvalidFlag, name)
	}
}

func parseOwnership(name string) (views.Ownership, error) {
	switch name {
	case "all", "":
		return views.OwnershipAll, nil
	case "owned":
		return views.OwnershipOwned, nil
	case "unowned":
		return views.OwnershipUnowned, nil
	default:
		return 0, fmt.Errorf("%w: show must be all, owned or unowned, got %q", shared.ErrInvalidFlag, name)
	}
}

// browseState builds a view state from the shared browse flags.
func browseState(cmd *cli.Command, facet views.Facet) views.State {
	return views.State{
		Facet:       facet,
		Query:       cmd.String("search"),
		ActiveGroup: cmd.String("drill"),
		ActiveYear:  int(cmd.Int("year")),
	}
}

// BoardShow renders the Big Board under the requested facet and filters.
func (r *Runner) BoardShow(ctx context.Context, cmd *cli.Command) error {
	facet, err := parseFacet(cmd.String("group"), []views.Facet{
		views.FacetRank, views.FacetDecade, views.FacetGenre, views.FacetHeatmap,
	})
	if err != nil {
		return err
	}
	order, err := parseOrder(cmd.String("order"))
	if err != nil {
		return err
	}
	ownership, err := parseOwnership(cmd.String("show"))
	if err != nil {
		return err
	}

	entries, err := r.svc.BigBoard(ctx)
	if err != nil {
		return err
	}

	state := browseState(cmd, facet)
	state.Order = order
	state.Ownership = ownership
	rendered := views.Render(views.FromBoard(entries), state)

	if cmd.Bool("json") {
		return r.writeJSON(rendered, true)
	}
	return r.writePlain("%s", formatter.Collection(rendered))
}

// BoardMatch links a board row to an owned album.
func (r *Runner) BoardMatch(ctx context.Context, cmd *cli.Command) error {
	rank := int(cmd.Int("rank"))
	albumID := int64(cmd.Int("album"))
	year := int(cmd.Int("year"))

	if err := r.svc.MatchBigBoard(ctx, albumID, rank, year); err != nil {
		return err
	}
	return r.writePlain("✓ Linked rank %d to album %d\n", rank, albumID)
}

// BoardUnmatch removes the album link from a board row.
func (r *Runner) BoardUnmatch(ctx context.Context, cmd *cli.Command) error {
	rank := int(cmd.Int("rank"))
	if err := r.svc.UnmatchBigBoard(ctx, rank); err != nil {
		return err
	}
	return r.writePlain("✓ Unlinked rank %d\n", rank)
}
