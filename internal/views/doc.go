// Package views implements the faceted browsing engine: pure functions that
// group, sort, filter and drill an in-memory album snapshot into a render
// model, plus the [Navigator] that owns drill-down state.
//
// # Facets
//
// The Big Board renders under four facets:
//  1. [FacetRank] : fixed 100-wide rank tiers ("1–100", "101–200", …)
//  2. [FacetDecade] : decade buckets with "Unknown" always last
//  3. [FacetGenre] : one bucket per genre (entries replicated), largest first,
//     "Uncategorized" always last
//  4. [FacetHeatmap] : a read-only rank-tier × decade count matrix
//
// The Library renders under letter facets ([FacetArtist], [FacetTitle]) with
// leading articles stripped and a trailing "#" bucket, and under decade facets
// ([FacetMasterYear], [FacetReleaseYear]) that support a second-level drill to
// a specific year.
//
// # Purity
//
// [Render] never touches the network or any shared state: it takes a snapshot
// and a [State] and returns a [Model]. Ownership and free-text filters apply
// before grouping, so group counts always reflect what is visible. All user
// interaction goes through the Navigator, whose transitions mirror
// ALL → GROUP → YEAR with explicit back edges.
package views
