// package formatter renders collection data as terminal tables and CSV for
// the non-interactive subcommands. Table layout goes through
// [github.com/jedib0t/go-pretty/v6/table]; view models come in pre-grouped
// so no collection policy lives here.
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"selektah/internal/models"
	"selektah/internal/views"
)

// Stats renders the aggregate counters.
func Stats(s *models.Stats) string {
	rows := [][]string{
		{"Total albums", strconv.Itoa(s.TotalAlbums)},
		{"Big Board ranked", strconv.Itoa(s.BigBoardRanked)},
		{"Unique listened", strconv.Itoa(s.UniqueListened)},
		{"Excluded", strconv.Itoa(s.Excluded)},
	}
	return renderTable([]string{"Stat", "Value"}, rows, []columnAlignment{alignLeft, alignRight})
}

// Collection renders any browse model: grouped buckets, a flat search or
// drill result, or the heatmap matrix.
func Collection(m views.Model) string {
	var b strings.Builder

	switch m.Mode {
	case views.ModeHeatmap:
		b.WriteString(HeatmapMatrix(m.Heatmap))
	case views.ModeGrouped:
		for i, g := range m.Groups {
			if i > 0 {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "%s (%d)\n", g.Label, len(g.Records))
			b.WriteString(recordTable(g.Records))
			b.WriteString("\n")
		}
	default:
		if m.Breadcrumb != "" {
			b.WriteString(m.Breadcrumb + "\n")
		}
		b.WriteString(recordTable(m.Flat))
		b.WriteString("\n")
		if len(m.YearChips) > 0 {
			b.WriteString("Years: " + joinYears(m.YearChips) + "\n")
		}
	}

	fmt.Fprintf(&b, "%d of %d shown\n", m.Shown, m.Total)
	return b.String()
}

func joinYears(years []int) string {
	parts := make([]string, len(years))
	for i, y := range years {
		parts[i] = strconv.Itoa(y)
	}
	return strings.Join(parts, " ")
}

func recordTable(records []views.Record) string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			rankCell(r.Rank),
			r.Artist,
			r.Title,
			yearCell(r.DisplayYear),
			ownedCell(r.Owned),
		})
	}
	return renderTable(
		[]string{"Rank", "Artist", "Title", "Year", "Owned"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignLeft},
	)
}

// Albums renders a flat album table, in service order.
func Albums(albums []models.Album) string {
	return recordTable(views.FromAlbums(albums))
}

func rankCell(rank int) string {
	if rank == 0 {
		return ""
	}
	return strconv.Itoa(rank)
}

func yearCell(year int) string {
	if year == 0 {
		return ""
	}
	return strconv.Itoa(year)
}

func ownedCell(owned bool) string {
	if owned {
		return "yes"
	}
	return ""
}

// HeatmapMatrix renders the rank-tier × decade counts. Zero cells print
// empty so the density reads at a glance.
func HeatmapMatrix(h *views.Heatmap) string {
	headers := append([]string{"Tier"}, h.Decades...)
	rows := make([][]string, len(h.Tiers))
	for i, tier := range h.Tiers {
		row := make([]string, 0, len(headers))
		row = append(row, tier)
		for col := range h.Decades {
			if c := h.Counts[i][col]; c > 0 {
				row = append(row, strconv.Itoa(c))
			} else {
				row = append(row, "")
			}
		}
		rows[i] = row
	}
	return renderMatrix(headers, rows)
}

// History renders one page of the selection log.
func History(page *models.HistoryPage, pageNum, perPage int) string {
	rows := make([][]string, 0, len(page.History))
	for _, h := range page.History {
		rows = append(rows, []string{
			h.SelectedTime().Format("2006-01-02 15:04"),
			h.Artist,
			h.Title,
			yearCell(h.DisplayYear),
			h.Status(),
		})
	}
	out := renderTable(
		[]string{"Selected", "Artist", "Title", "Year", "Status"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignLeft},
	)
	pages := (page.Total + perPage - 1) / perPage
	if pages < 1 {
		pages = 1
	}
	return fmt.Sprintf("%s\nPage %d of %d (%d selections)\n", out, pageNum, pages, page.Total)
}

// ListeningStats renders played albums by play count.
func ListeningStats(page *models.ListeningStatsPage) string {
	rows := make([][]string, 0, len(page.Albums))
	for _, s := range page.Albums {
		rows = append(rows, []string{
			s.Artist,
			s.Title,
			yearCell(s.DisplayYear),
			strconv.Itoa(s.ListenCount),
		})
	}
	out := renderTable(
		[]string{"Artist", "Title", "Year", "Plays"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight},
	)
	return fmt.Sprintf("%s\n%d albums played\n", out, page.Total)
}

// Excluded renders the excluded-album list.
func Excluded(albums []models.Album) string {
	rows := make([][]string, 0, len(albums))
	for _, a := range albums {
		rows = append(rows, []string{
			strconv.FormatInt(a.AlbumID, 10),
			a.Artist,
			a.Title,
			yearCell(a.DisplayYear),
		})
	}
	return renderTable(
		[]string{"ID", "Artist", "Title", "Year"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight},
	)
}

// AlbumDetail renders one album's full card, with play dates when present.
func AlbumDetail(a *models.Album, playDates []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s - %s", a.Artist, a.Title)
	if a.DisplayYear != 0 {
		fmt.Fprintf(&b, " (%d)", a.DisplayYear)
	}
	b.WriteString("\n")

	field := func(label, value string) {
		if value != "" {
			fmt.Fprintf(&b, "  %-14s %s\n", label, value)
		}
	}
	field("Format", a.Format)
	field("Genres", strings.Join(a.Genres, ", "))
	field("Styles", strings.Join(a.Styles, ", "))
	if a.BigBoardRank != 0 {
		field("Big Board", fmt.Sprintf("#%d", a.BigBoardRank))
	}
	if a.MasterYear != 0 {
		field("Master year", strconv.Itoa(a.MasterYear))
	}
	if a.ReleaseYear != 0 {
		field("Release year", strconv.Itoa(a.ReleaseYear))
	}
	if a.TimesPlayed != 0 || a.TimesSkipped != 0 {
		field("Played", fmt.Sprintf("%d times, skipped %d", a.TimesPlayed, a.TimesSkipped))
	}
	field("Discogs", a.DiscogsURL)
	field("Master", a.MasterURL)

	if len(playDates) > 0 {
		b.WriteString("  Play dates:\n")
		for _, d := range playDates {
			fmt.Fprintf(&b, "    %s\n", d)
		}
	}
	return b.String()
}

// ExportHistoryCSV converts the selection log to CSV with columns:
// ListenID, AlbumID, SelectedAt, Artist, Title, Year, Status.
func ExportHistoryCSV(items []models.HistoryItem) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ListenID", "AlbumID", "SelectedAt", "Artist", "Title", "Year", "Status"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, h := range items {
		record := []string{
			strconv.FormatInt(h.ListenID, 10),
			strconv.FormatInt(h.AlbumID, 10),
			h.SelectedAt,
			h.Artist,
			h.Title,
			yearCell(h.DisplayYear),
			h.Status(),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportLibraryCSV converts the collection to CSV with columns:
// AlbumID, Artist, Title, Year, MasterYear, ReleaseYear, Rank, Genres.
func ExportLibraryCSV(albums []models.Album) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"AlbumID", "Artist", "Title", "Year", "MasterYear", "ReleaseYear", "Rank", "Genres"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, a := range albums {
		record := []string{
			strconv.FormatInt(a.AlbumID, 10),
			a.Artist,
			a.Title,
			yearCell(a.DisplayYear),
			yearCell(a.MasterYear),
			yearCell(a.ReleaseYear),
			rankCell(a.BigBoardRank),
			strings.Join(a.Genres, "; "),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}
	return buf.Bytes(), nil
}
