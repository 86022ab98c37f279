package views

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"selektah/internal/models"
)

// UnknownBucket labels entries without a usable year.
const UnknownBucket = "Unknown"

// UncategorizedBucket labels entries without any genre.
const UncategorizedBucket = "Uncategorized"

// OtherBucket collects names whose first letter is not A–Z.
const OtherBucket = "#"

// Record is the facet-neutral projection the engine groups over. Big Board
// rows and library albums both convert to it.
type Record struct {
	AlbumID       int64
	Artist        string
	Title         string
	Rank          int
	Year          int
	DisplayYear   int
	MasterYear    int
	ReleaseYear   int
	Genres        []string
	Owned         bool
	CoverImageURL string
}

// FromBoard projects Big Board rows into records.
func FromBoard(entries []models.BigBoardEntry) []Record {
	return lo.Map(entries, func(e models.BigBoardEntry, _ int) Record {
		return Record{
			AlbumID:       e.AlbumID,
			Artist:        e.Artist,
			Title:         e.Title,
			Rank:          e.Rank,
			Year:          e.Year,
			DisplayYear:   e.Year,
			Genres:        e.Genres,
			Owned:         e.Owned,
			CoverImageURL: e.CoverImageURL,
		}
	})
}

// FromAlbums projects library albums into records. Everything in the library
// is owned by definition.
func FromAlbums(albums []models.Album) []Record {
	return lo.Map(albums, func(a models.Album, _ int) Record {
		return Record{
			AlbumID:       a.AlbumID,
			Artist:        a.Artist,
			Title:         a.Title,
			Rank:          a.BigBoardRank,
			Year:          a.DisplayYear,
			DisplayYear:   a.DisplayYear,
			MasterYear:    a.MasterYear,
			ReleaseYear:   a.ReleaseYear,
			Genres:        a.Genres,
			Owned:         true,
			CoverImageURL: a.CoverImageURL,
		}
	})
}

// Mode says which of the model's payloads carries the view.
type Mode int

const (
	ModeGrouped Mode = iota // Groups populated, Jump holds their labels
	ModeFlat                // top-level search: Flat across all groups
	ModeDrilled             // one group or one year: Flat plus Breadcrumb
	ModeHeatmap             // Heatmap populated
)

// Group is one labeled bucket of records.
type Group struct {
	Label   string
	Records []Record
}

// Heatmap is the rank-tier × decade count matrix. Counts is indexed
// [tier][decade column]; entries without a known year are excluded here and
// only appear in the totals.
type Heatmap struct {
	Tiers   []string
	Decades []string
	Counts  [][]int
	Max     int
}

// Intensity maps a cell count onto 0..1 against the hottest cell. Zero-count
// cells render empty/neutral.
func (h *Heatmap) Intensity(tier, col int) float64 {
	if h.Max == 0 {
		return 0
	}
	return float64(h.Counts[tier][col]) / float64(h.Max)
}

// Sum returns the number of entries counted in the matrix.
func (h *Heatmap) Sum() int {
	total := 0
	for _, row := range h.Counts {
		for _, c := range row {
			total += c
		}
	}
	return total
}

// Model is what one Render call produces: everything a rendering surface
// needs, with no behavior attached.
type Model struct {
	Mode       Mode
	Total      int // snapshot size before filtering
	Shown      int // records visible after ownership + query filters
	Groups     []Group
	Flat       []Record
	Heatmap    *Heatmap
	Jump       []string // top-level group labels for the jump control
	Breadcrumb string   // back affordance label when drilled
	YearChips  []int    // years present in the drilled decade
}

// Render computes the presentation of a snapshot under a view state. It is a
// pure function: same inputs, same model.
func Render(records []Record, s State) Model {
	filtered := applyFilters(records, s)
	m := Model{Total: len(records), Shown: len(filtered)}

	if s.Facet == FacetHeatmap {
		m.Mode = ModeHeatmap
		m.Heatmap = buildHeatmap(filtered)
		return m
	}

	groups, labels := groupRecords(filtered, s)

	if s.ActiveYear != 0 && s.Facet.YearDerived() {
		members := filtered
		if s.ActiveGroup != "" {
			members = groups[s.ActiveGroup]
		}
		m.Mode = ModeDrilled
		m.Flat = lo.Filter(members, func(r Record, _ int) bool {
			return facetYear(s.Facet, r) == s.ActiveYear
		})
		m.Breadcrumb = breadcrumb(s.ActiveGroup)
		return m
	}

	if s.ActiveGroup != "" {
		m.Mode = ModeDrilled
		m.Flat = groups[s.ActiveGroup]
		m.Breadcrumb = breadcrumb("")
		if s.Facet.YearDerived() && s.ActiveGroup != UnknownBucket {
			m.YearChips = yearChips(groups[s.ActiveGroup], s)
		}
		return m
	}

	m.Jump = labels

	if s.Query != "" {
		// A live search at the top level bypasses per-group rendering.
		m.Mode = ModeFlat
		m.Flat = filtered
		return m
	}

	m.Mode = ModeGrouped
	m.Groups = lo.Map(labels, func(label string, _ int) Group {
		return Group{Label: label, Records: groups[label]}
	})
	return m
}

func breadcrumb(group string) string {
	if group == "" {
		return "← All"
	}
	return "← " + group
}

// applyFilters applies the ownership radio and the case-insensitive substring
// search (artist OR title) before any grouping, so group counts reflect what
// is visible.
func applyFilters(records []Record, s State) []Record {
	out := records
	switch s.Ownership {
	case OwnershipOwned:
		out = lo.Filter(out, func(r Record, _ int) bool { return r.Owned })
	case OwnershipUnowned:
		out = lo.Filter(out, func(r Record, _ int) bool { return !r.Owned })
	}
	if q := strings.ToLower(strings.TrimSpace(s.Query)); q != "" {
		out = lo.Filter(out, func(r Record, _ int) bool {
			return strings.Contains(strings.ToLower(r.Artist), q) ||
				strings.Contains(strings.ToLower(r.Title), q)
		})
	}
	return out
}

// facetYear resolves the year a record contributes under a year-derived
// facet. Sorting by master year falls back to the release year.
func facetYear(f Facet, r Record) int {
	switch f {
	case FacetMasterYear:
		if r.MasterYear != 0 {
			return r.MasterYear
		}
		return r.ReleaseYear
	case FacetReleaseYear:
		return r.ReleaseYear
	default:
		return r.Year
	}
}

// rankTier returns the fixed-width bucket label for a 1-based rank.
func rankTier(rank int) string {
	start := (rank-1)/tierWidth*tierWidth + 1
	return fmt.Sprintf("%d–%d", start, start+tierWidth-1)
}

const tierWidth = 100

func decadeOf(year int) string {
	if year == 0 {
		return UnknownBucket
	}
	return fmt.Sprintf("%ds", year/10*10)
}

// SortByArtist orders albums in place by artist then title, ignoring a
// leading article, for lists the service returns unsorted.
func SortByArtist(albums []models.Album) {
	sort.SliceStable(albums, func(i, j int) bool {
		a := strings.ToLower(stripArticle(albums[i].Artist))
		b := strings.ToLower(stripArticle(albums[j].Artist))
		if a != b {
			return a < b
		}
		return strings.ToLower(albums[i].Title) < strings.ToLower(albums[j].Title)
	})
}

// stripArticle drops a leading "The " or "A " so The Beatles files under B.
func stripArticle(name string) string {
	lower := strings.ToLower(name)
	if strings.HasPrefix(lower, "the ") {
		return name[4:]
	}
	if strings.HasPrefix(lower, "a ") {
		return name[2:]
	}
	return name
}

func letterKey(name string) string {
	stripped := strings.TrimSpace(stripArticle(name))
	if stripped == "" {
		return OtherBucket
	}
	ch := strings.ToUpper(stripped[:1])
	if ch[0] < 'A' || ch[0] > 'Z' {
		return OtherBucket
	}
	return ch
}

// groupRecords partitions the filtered set per the active facet and returns
// the buckets plus their labels in presentation order.
func groupRecords(filtered []Record, s State) (map[string][]Record, []string) {
	switch s.Facet {
	case FacetRank:
		return groupByRankTier(filtered)
	case FacetDecade:
		return groupByDecade(filtered, Asc, byRank, func(r Record) int { return r.Year })
	case FacetGenre:
		return groupByGenre(filtered)
	case FacetArtist:
		return groupByLetter(filtered, s.Order, func(r Record) string { return r.Artist })
	case FacetTitle:
		return groupByLetter(filtered, s.Order, func(r Record) string { return r.Title })
	case FacetMasterYear, FacetReleaseYear:
		return groupByDecade(filtered, s.Order, keepOrder, func(r Record) int { return facetYear(s.Facet, r) })
	default:
		return map[string][]Record{}, nil
	}
}

// within-bucket orderings
var (
	byRank = func(records []Record) {
		sort.SliceStable(records, func(i, j int) bool { return records[i].Rank < records[j].Rank })
	}
	// keepOrder preserves the service's pre-sort.
	keepOrder = func([]Record) {}
)

func groupByRankTier(filtered []Record) (map[string][]Record, []string) {
	groups := lo.GroupBy(filtered, func(r Record) string { return rankTier(r.Rank) })

	starts := map[string]int{}
	for label, members := range groups {
		byRank(members)
		starts[label] = (members[0].Rank - 1) / tierWidth
	}

	labels := lo.Keys(groups)
	sort.Slice(labels, func(i, j int) bool { return starts[labels[i]] < starts[labels[j]] })
	return groups, labels
}

func groupByDecade(filtered []Record, order Order, within func([]Record), year func(Record) int) (map[string][]Record, []string) {
	groups := lo.GroupBy(filtered, func(r Record) string { return decadeOf(year(r)) })
	for _, members := range groups {
		within(members)
	}

	labels := lo.Keys(groups)
	sort.Slice(labels, func(i, j int) bool {
		a, b := labels[i], labels[j]
		// Unknown sorts last regardless of direction.
		if a == UnknownBucket {
			return false
		}
		if b == UnknownBucket {
			return true
		}
		if order == Desc {
			return decadeValue(a) > decadeValue(b)
		}
		return decadeValue(a) < decadeValue(b)
	})
	return groups, labels
}

func decadeValue(label string) int {
	v, _ := strconv.Atoi(strings.TrimSuffix(label, "s"))
	return v
}

func groupByGenre(filtered []Record) (map[string][]Record, []string) {
	groups := map[string][]Record{}
	for _, r := range filtered {
		genres := r.Genres
		if len(genres) == 0 {
			genres = []string{UncategorizedBucket}
		}
		// An entry with n genres appears in n buckets.
		for _, g := range genres {
			groups[g] = append(groups[g], r)
		}
	}
	for _, members := range groups {
		byRank(members)
	}

	labels := lo.Keys(groups)
	sort.Slice(labels, func(i, j int) bool {
		a, b := labels[i], labels[j]
		if a == UncategorizedBucket {
			return false
		}
		if b == UncategorizedBucket {
			return true
		}
		if len(groups[a]) != len(groups[b]) {
			return len(groups[a]) > len(groups[b])
		}
		return a < b
	})
	return groups, labels
}

func groupByLetter(filtered []Record, order Order, name func(Record) string) (map[string][]Record, []string) {
	groups := lo.GroupBy(filtered, func(r Record) string { return letterKey(name(r)) })

	labels := lo.Keys(groups)
	sort.Slice(labels, func(i, j int) bool {
		a, b := labels[i], labels[j]
		if a == OtherBucket {
			return false
		}
		if b == OtherBucket {
			return true
		}
		return a < b
	})
	if order == Desc {
		lo.Reverse(labels)
	}
	return groups, labels
}

// yearChips lists the years actually present in a drilled decade, ordered by
// the current direction.
func yearChips(members []Record, s State) []int {
	years := lo.Uniq(lo.FilterMap(members, func(r Record, _ int) (int, bool) {
		y := facetYear(s.Facet, r)
		return y, y != 0
	}))
	sort.Ints(years)
	if s.Order == Desc {
		lo.Reverse(years)
	}
	return years
}

// tierRange is one of the six fixed rank tiers forming the matrix rows.
type tierRange struct {
	label    string
	from, to int
}

var heatTiers = []tierRange{
	{"1–100", 1, 100},
	{"101–200", 101, 200},
	{"201–300", 201, 300},
	{"301–400", 301, 400},
	{"401–500", 401, 500},
	{"501–600", 501, 600},
}

func buildHeatmap(filtered []Record) *Heatmap {
	known := lo.Filter(filtered, func(r Record, _ int) bool { return r.Year != 0 })

	decades := lo.Uniq(lo.Map(known, func(r Record, _ int) string { return decadeOf(r.Year) }))
	sort.Slice(decades, func(i, j int) bool { return decadeValue(decades[i]) < decadeValue(decades[j]) })

	cols := map[string]int{}
	for i, d := range decades {
		cols[d] = i
	}

	h := &Heatmap{
		Tiers:   lo.Map(heatTiers, func(t tierRange, _ int) string { return t.label }),
		Decades: decades,
		Counts:  make([][]int, len(heatTiers)),
	}
	for i := range h.Counts {
		h.Counts[i] = make([]int, len(decades))
	}

	for _, r := range known {
		col := cols[decadeOf(r.Year)]
		for i, tier := range heatTiers {
			if r.Rank >= tier.from && r.Rank <= tier.to {
				h.Counts[i][col]++
				if h.Counts[i][col] > h.Max {
					h.Max = h.Counts[i][col]
				}
				break
			}
		}
	}

	return h
}
