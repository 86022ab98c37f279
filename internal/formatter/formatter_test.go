package formatter

import (
	"strings"
	"testing"

	"selektah/internal/models"
	"selektah/internal/views"
)

func TestStats(t *testing.T) {
	out := Stats(&models.Stats{TotalAlbums: 1250, BigBoardRanked: 212, UniqueListened: 87, Excluded: 14})
	for _, want := range []string{"Total albums", "1250", "Big Board ranked", "212", "Excluded", "14"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestCollectionGrouped(t *testing.T) {
	records := views.FromBoard([]models.BigBoardEntry{
		{Rank: 1, Artist: "Neu!", Title: "Neu! 75", Year: 1975, Owned: true},
		{Rank: 150, Artist: "Can", Title: "Future Days", Year: 1973},
	})
	out := Collection(views.Render(records, views.State{Facet: views.FacetRank}))

	if !strings.Contains(out, "1–100 (1)") || !strings.Contains(out, "101–200 (1)") {
		t.Errorf("group headings missing:\n%s", out)
	}
	if !strings.Contains(out, "Neu! 75") || !strings.Contains(out, "Future Days") {
		t.Errorf("records missing:\n%s", out)
	}
	if !strings.Contains(out, "2 of 2 shown") {
		t.Errorf("totals line missing:\n%s", out)
	}
}

func TestCollectionDrilled(t *testing.T) {
	records := views.FromBoard([]models.BigBoardEntry{
		{Rank: 1, Artist: "Neu!", Title: "Neu! 75", Year: 1975},
		{Rank: 2, Artist: "Can", Title: "Future Days", Year: 1973},
	})
	out := Collection(views.Render(records, views.State{Facet: views.FacetDecade, ActiveGroup: "1970s"}))

	if !strings.Contains(out, "← All") {
		t.Errorf("breadcrumb missing:\n%s", out)
	}
	if !strings.Contains(out, "Years: 1973 1975") {
		t.Errorf("year chips missing:\n%s", out)
	}
}

func TestHeatmapMatrix(t *testing.T) {
	records := views.FromBoard([]models.BigBoardEntry{
		{Rank: 1, Artist: "A", Title: "a", Year: 1975},
		{Rank: 2, Artist: "B", Title: "b", Year: 1975},
		{Rank: 150, Artist: "C", Title: "c", Year: 1989},
	})
	out := Collection(views.Render(records, views.State{Facet: views.FacetHeatmap}))

	if !strings.Contains(out, "1–100") || !strings.Contains(out, "501–600") {
		t.Errorf("tier rows missing:\n%s", out)
	}
	if !strings.Contains(out, "1970s") || !strings.Contains(out, "1980s") {
		t.Errorf("decade columns missing:\n%s", out)
	}
	if !strings.Contains(out, "2") {
		t.Errorf("cell count missing:\n%s", out)
	}
}

func TestHistory(t *testing.T) {
	page := &models.HistoryPage{
		History: []models.HistoryItem{
			{ListenID: 9, AlbumID: 3, SelectedAt: "2026-08-30 21:15:00", Artist: "Can", Title: "Ege Bamyasi", DisplayYear: 1972, DidListen: true},
			{ListenID: 8, AlbumID: 2, SelectedAt: "2026-08-29 10:00:00", Artist: "Faust", Title: "IV", Skipped: true},
		},
		Total: 42,
	}
	out := History(page, 1, 20)
	if !strings.Contains(out, "Listened") || !strings.Contains(out, "Skipped") {
		t.Errorf("statuses missing:\n%s", out)
	}
	if !strings.Contains(out, "Page 1 of 3 (42 selections)") {
		t.Errorf("pagination line wrong:\n%s", out)
	}
	if !strings.Contains(out, "2026-08-30 21:15") {
		t.Errorf("timestamp missing:\n%s", out)
	}
}

func TestAlbumDetail(t *testing.T) {
	a := &models.Album{
		Artist:       "Can",
		Title:        "Future Days",
		DisplayYear:  1973,
		Genres:       []string{"Rock", "Electronic"},
		Format:       "LP, Album",
		BigBoardRank: 42,
		MasterYear:   1973,
		ReleaseYear:  1989,
		TimesPlayed:  3,
		DiscogsURL:   "https://www.discogs.com/release/123",
	}
	out := AlbumDetail(a, []string{"2026-01-05 20:00:00", "2026-03-17 22:30:00"})

	for _, want := range []string{"Can - Future Days (1973)", "Rock, Electronic", "#42", "Play dates:", "2026-03-17"} {
		if !strings.Contains(out, want) {
			t.Errorf("detail missing %q:\n%s", want, out)
		}
	}
}

func TestAlbumDetailOmitsEmptyFields(t *testing.T) {
	out := AlbumDetail(&models.Album{Artist: "Faust", Title: "IV"}, nil)
	for _, absent := range []string{"Big Board", "Master year", "Play dates"} {
		if strings.Contains(out, absent) {
			t.Errorf("empty field %q should be omitted:\n%s", absent, out)
		}
	}
}

func TestExportHistoryCSV(t *testing.T) {
	data, err := ExportHistoryCSV([]models.HistoryItem{
		{ListenID: 1, AlbumID: 2, SelectedAt: "2026-08-30 21:15:00", Artist: "Can, the", Title: "Tago Mago", DidListen: true},
	})
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	out := string(data)
	if !strings.HasPrefix(out, "ListenID,AlbumID,SelectedAt,Artist,Title,Year,Status") {
		t.Errorf("header row wrong:\n%s", out)
	}
	if !strings.Contains(out, `"Can, the"`) {
		t.Errorf("comma-bearing field should be quoted:\n%s", out)
	}
	if !strings.Contains(out, "Listened") {
		t.Errorf("status missing:\n%s", out)
	}
}

func TestExportLibraryCSV(t *testing.T) {
	data, err := ExportLibraryCSV([]models.Album{
		{AlbumID: 7, Artist: "Neu!", Title: "Neu! 75", DisplayYear: 1975, MasterYear: 1975, ReleaseYear: 2001, BigBoardRank: 12, Genres: []string{"Rock", "Electronic"}},
	})
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "Rock; Electronic") {
		t.Errorf("genres join missing:\n%s", out)
	}
	if !strings.Contains(out, "7,Neu!,Neu! 75,1975,1975,2001,12") {
		t.Errorf("row wrong:\n%s", out)
	}
}
