package views

import (
	"testing"

	"selektah/internal/models"
)

func board(entries ...models.BigBoardEntry) []Record {
	return FromBoard(entries)
}

func entry(rank, year int, artist, title string, owned bool, genres ...string) models.BigBoardEntry {
	return models.BigBoardEntry{Rank: rank, Year: year, Artist: artist, Title: title, Owned: owned, Genres: genres}
}

// The three-row scenario from the design notes: ranks 1 (1975), 2 (1989) and
// 150 (1975).
func sampleBoard() []Record {
	return board(
		entry(1, 1975, "Neu!", "Neu! 75", true, "Rock"),
		entry(2, 1989, "De La Soul", "3 Feet High and Rising", false, "Hip Hop"),
		entry(150, 1975, "Can", "Landed", true, "Rock", "Electronic"),
	)
}

func TestRenderRankTiers(t *testing.T) {
	m := Render(sampleBoard(), State{Facet: FacetRank})

	if m.Mode != ModeGrouped {
		t.Fatalf("expected grouped mode, got %v", m.Mode)
	}
	if len(m.Groups) != 2 {
		t.Fatalf("expected 2 tiers, got %d", len(m.Groups))
	}
	if m.Groups[0].Label != "1–100" || m.Groups[1].Label != "101–200" {
		t.Errorf("unexpected tier labels: %q, %q", m.Groups[0].Label, m.Groups[1].Label)
	}
	if len(m.Groups[0].Records) != 2 || m.Groups[0].Records[0].Rank != 1 || m.Groups[0].Records[1].Rank != 2 {
		t.Errorf("tier 1–100 should hold ranks 1,2 in order: %+v", m.Groups[0].Records)
	}
	if len(m.Groups[1].Records) != 1 || m.Groups[1].Records[0].Rank != 150 {
		t.Errorf("tier 101–200 should hold rank 150: %+v", m.Groups[1].Records)
	}
}

func TestRankTiersPartitionExactly(t *testing.T) {
	var records []Record
	for rank := 1; rank <= 347; rank += 3 {
		records = append(records, Record{Rank: rank, Artist: "a", Title: "t"})
	}

	m := Render(records, State{Facet: FacetRank})

	seen := map[int]int{}
	for _, g := range m.Groups {
		for _, r := range g.Records {
			seen[r.Rank]++
		}
	}
	if len(seen) != len(records) {
		t.Fatalf("expected every record bucketed once, got %d of %d", len(seen), len(records))
	}
	for rank, n := range seen {
		if n != 1 {
			t.Errorf("rank %d appeared in %d buckets", rank, n)
		}
	}

	// Labels are contiguous 100-wide ranges starting at 1.
	want := []string{"1–100", "101–200", "201–300", "301–400"}
	for i, g := range m.Groups {
		if g.Label != want[i] {
			t.Errorf("bucket %d label = %q, want %q", i, g.Label, want[i])
		}
	}
}

func TestRenderDecades(t *testing.T) {
	m := Render(sampleBoard(), State{Facet: FacetDecade})

	if len(m.Groups) != 2 {
		t.Fatalf("expected 2 decades, got %d", len(m.Groups))
	}
	if m.Groups[0].Label != "1970s" || m.Groups[1].Label != "1980s" {
		t.Errorf("unexpected decade order: %q, %q", m.Groups[0].Label, m.Groups[1].Label)
	}
	got := m.Groups[0].Records
	if len(got) != 2 || got[0].Rank != 1 || got[1].Rank != 150 {
		t.Errorf("1970s should hold ranks 1,150 by rank: %+v", got)
	}
}

func TestUnknownDecadeSortsLast(t *testing.T) {
	records := board(
		entry(1, 0, "Mystery", "Undated", true),
		entry(2, 1991, "Slint", "Spiderland", true),
		entry(3, 1971, "Faust", "Faust", true),
	)

	for _, order := range []Order{Asc, Desc} {
		m := Render(records, State{Facet: FacetDecade, Order: order})
		last := m.Groups[len(m.Groups)-1].Label
		if last != UnknownBucket {
			t.Errorf("order %v: expected %q last, got %q", order, UnknownBucket, last)
		}
	}
}

func TestRenderGenres(t *testing.T) {
	m := Render(sampleBoard(), State{Facet: FacetGenre})

	// Rock has 2 members and sorts first; rank 150 appears in two buckets.
	if m.Groups[0].Label != "Rock" || len(m.Groups[0].Records) != 2 {
		t.Fatalf("expected Rock first with 2 members, got %+v", m.Groups[0])
	}
	total := 0
	for _, g := range m.Groups {
		total += len(g.Records)
	}
	if total != 4 {
		t.Errorf("expected 4 memberships after replication, got %d", total)
	}
}

func TestUncategorizedSortsLast(t *testing.T) {
	records := board(
		entry(1, 1970, "A", "x", true),
		entry(2, 1970, "B", "y", true, "Jazz"),
	)
	m := Render(records, State{Facet: FacetGenre})
	if got := m.Groups[len(m.Groups)-1].Label; got != UncategorizedBucket {
		t.Errorf("expected %q last, got %q", UncategorizedBucket, got)
	}
}

func TestHeatmap(t *testing.T) {
	records := board(
		entry(1, 1975, "a", "t", true),
		entry(2, 1989, "b", "t", false),
		entry(150, 1975, "c", "t", true),
		entry(550, 0, "d", "undated", true), // unknown year stays out of the matrix
	)

	m := Render(records, State{Facet: FacetHeatmap})
	if m.Mode != ModeHeatmap || m.Heatmap == nil {
		t.Fatal("expected heatmap mode")
	}

	h := m.Heatmap
	if len(h.Tiers) != 6 {
		t.Errorf("expected 6 fixed tiers, got %d", len(h.Tiers))
	}
	if len(h.Decades) != 2 || h.Decades[0] != "1970s" || h.Decades[1] != "1980s" {
		t.Errorf("unexpected decade columns: %v", h.Decades)
	}

	// Cells sum to the filtered records with a known year.
	if h.Sum() != 3 {
		t.Errorf("expected matrix sum 3, got %d", h.Sum())
	}
	if m.Shown != 4 {
		t.Errorf("overall total still counts the undated entry: %d", m.Shown)
	}

	if h.Counts[0][0] != 1 || h.Counts[0][1] != 1 || h.Counts[1][0] != 1 {
		t.Errorf("unexpected counts: %v", h.Counts)
	}
	if h.Max != 1 {
		t.Errorf("expected max 1, got %d", h.Max)
	}
	if h.Intensity(0, 0) != 1.0 {
		t.Errorf("expected full intensity for hottest cell, got %f", h.Intensity(0, 0))
	}
	if h.Intensity(5, 0) != 0 {
		t.Errorf("zero-count cell should be neutral, got %f", h.Intensity(5, 0))
	}
}

func TestHeatmapEmpty(t *testing.T) {
	m := Render(nil, State{Facet: FacetHeatmap})
	if m.Heatmap.Max != 0 || m.Heatmap.Intensity(0, 0) != 0 {
		t.Error("empty heatmap should have no intensity")
	}
}

func TestOwnershipFilterAppliesBeforeGrouping(t *testing.T) {
	m := Render(sampleBoard(), State{Facet: FacetRank, Ownership: OwnershipOwned})

	if m.Shown != 2 {
		t.Fatalf("expected 2 owned records, got %d", m.Shown)
	}
	// Group counts reflect the filtered subset, never the full snapshot.
	if len(m.Groups[0].Records) != 1 {
		t.Errorf("tier 1–100 should hold only the owned rank 1: %+v", m.Groups[0].Records)
	}
}

func TestSearchRoundTripRestoresGroupedView(t *testing.T) {
	records := sampleBoard()
	before := Render(records, State{Facet: FacetDecade})

	searched := Render(records, State{Facet: FacetDecade, Query: "can"})
	if searched.Mode != ModeFlat {
		t.Fatalf("expected flat mode while searching, got %v", searched.Mode)
	}
	if len(searched.Flat) != 1 || searched.Flat[0].Artist != "Can" {
		t.Errorf("unexpected search result: %+v", searched.Flat)
	}

	after := Render(records, State{Facet: FacetDecade})
	if len(after.Groups) != len(before.Groups) {
		t.Fatalf("group count changed across search round-trip")
	}
	for i := range after.Groups {
		if after.Groups[i].Label != before.Groups[i].Label ||
			len(after.Groups[i].Records) != len(before.Groups[i].Records) {
			t.Errorf("group %d differs after clearing search", i)
		}
	}
}

func TestSearchIsCaseInsensitiveOnArtistOrTitle(t *testing.T) {
	records := sampleBoard()

	byArtist := Render(records, State{Facet: FacetRank, Query: "NEU"})
	if len(byArtist.Flat) != 1 {
		t.Errorf("expected artist match, got %+v", byArtist.Flat)
	}
	byTitle := Render(records, State{Facet: FacetRank, Query: "rising"})
	if len(byTitle.Flat) != 1 {
		t.Errorf("expected title match, got %+v", byTitle.Flat)
	}
}

func TestDrilledGroupRendersFlat(t *testing.T) {
	m := Render(sampleBoard(), State{Facet: FacetDecade, ActiveGroup: "1970s"})

	if m.Mode != ModeDrilled {
		t.Fatalf("expected drilled mode, got %v", m.Mode)
	}
	if len(m.Flat) != 2 {
		t.Errorf("expected the 2 seventies records, got %d", len(m.Flat))
	}
	if m.Breadcrumb != "← All" {
		t.Errorf("unexpected breadcrumb %q", m.Breadcrumb)
	}
	if len(m.Jump) != 0 {
		t.Error("jump control is replaced by the breadcrumb when drilled")
	}
	if len(m.YearChips) != 1 || m.YearChips[0] != 1975 {
		t.Errorf("expected year chip 1975, got %v", m.YearChips)
	}
}

func TestJumpLabelsAtTopLevel(t *testing.T) {
	m := Render(sampleBoard(), State{Facet: FacetDecade})
	if len(m.Jump) != 2 || m.Jump[0] != "1970s" || m.Jump[1] != "1980s" {
		t.Errorf("unexpected jump labels: %v", m.Jump)
	}
}
