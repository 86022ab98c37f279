package views

// Facet is the dimension currently used to group a collection view.
type Facet int

const (
	FacetRank Facet = iota
	FacetDecade
	FacetGenre
	FacetHeatmap
	FacetArtist
	FacetTitle
	FacetMasterYear
	FacetReleaseYear
)

func (f Facet) String() string {
	switch f {
	case FacetRank:
		return "rank"
	case FacetDecade:
		return "decade"
	case FacetGenre:
		return "genre"
	case FacetHeatmap:
		return "heatmap"
	case FacetArtist:
		return "artist"
	case FacetTitle:
		return "title"
	case FacetMasterYear:
		return "master_year"
	case FacetReleaseYear:
		return "release_year"
	default:
		return "unknown"
	}
}

// YearDerived reports whether groups of this facet are decades, which makes
// the second-level year drill meaningful.
func (f Facet) YearDerived() bool {
	return f == FacetDecade || f == FacetMasterYear || f == FacetReleaseYear
}

// Library reports whether this facet belongs to the Library section (and is
// therefore also a service-side sort key).
func (f Facet) Library() bool {
	return f == FacetArtist || f == FacetTitle || f == FacetMasterYear || f == FacetReleaseYear
}

// Order is the sort direction of a view.
type Order int

const (
	Asc Order = iota
	Desc
)

func (o Order) String() string {
	if o == Desc {
		return "desc"
	}
	return "asc"
}

// Ownership is the owned/unowned radio filter applied before grouping.
type Ownership int

const (
	OwnershipAll Ownership = iota
	OwnershipOwned
	OwnershipUnowned
)

func (o Ownership) String() string {
	switch o {
	case OwnershipOwned:
		return "owned"
	case OwnershipUnowned:
		return "unowned"
	default:
		return "all"
	}
}

// State is the complete, serializable view state for one browsing section.
// ActiveYear is only meaningful when ActiveGroup is the decade containing it,
// or when both are unset ("ungrouped, searching across everything").
type State struct {
	Facet       Facet
	Order       Order
	Ownership   Ownership
	Query       string
	ActiveGroup string
	ActiveYear  int
}

// Drilled reports whether the state narrows rendering to one group or year.
func (s State) Drilled() bool {
	return s.ActiveGroup != "" || s.ActiveYear != 0
}

// Navigator owns the view state of one browsing section and the stack-like
// back navigation between "all groups", "one group" and "one year within
// group". Each section (Big Board, Library) holds its own Navigator.
type Navigator struct {
	s        State
	defaults State
}

// NewNavigator creates a Navigator whose Reset returns to the given defaults.
func NewNavigator(defaults State) *Navigator {
	return &Navigator{s: defaults, defaults: defaults}
}

// State returns a copy of the current view state.
func (n *Navigator) State() State { return n.s }

// Reset restores the section defaults, as when the user leaves and re-opens
// a browsing section.
func (n *Navigator) Reset() { n.s = n.defaults }

// SelectGroup drills into one group. The heatmap is a read-only aggregate and
// ignores drill attempts.
func (n *Navigator) SelectGroup(label string) {
	if n.s.Facet == FacetHeatmap || label == "" {
		return
	}
	n.s.ActiveGroup = label
	n.s.ActiveYear = 0
}

// SelectYear narrows a year-derived group to a single year.
func (n *Navigator) SelectYear(year int) {
	if !n.s.Facet.YearDerived() || year == 0 {
		return
	}
	n.s.ActiveYear = year
}

// Back pops one drill level: YEAR → GROUP, then GROUP → ALL.
func (n *Navigator) Back() {
	if n.s.ActiveYear != 0 {
		n.s.ActiveYear = 0
		return
	}
	n.s.ActiveGroup = ""
}

// SetFacet switches the grouping dimension, always resetting to the top level
// and clearing any year sub-filter.
func (n *Navigator) SetFacet(f Facet) {
	n.s.Facet = f
	n.s.ActiveGroup = ""
	n.s.ActiveYear = 0
}

// SetOrder changes the sort direction. The drill is preserved, though year
// sub-buttons may reorder.
func (n *Navigator) SetOrder(o Order) { n.s.Order = o }

// ToggleOrder flips between ascending and descending.
func (n *Navigator) ToggleOrder() {
	if n.s.Order == Asc {
		n.s.Order = Desc
	} else {
		n.s.Order = Asc
	}
}

// SetOwnership changes the owned/unowned filter without touching the drill.
func (n *Navigator) SetOwnership(o Ownership) { n.s.Ownership = o }

// SetQuery updates the free-text filter. Drill state is untouched; a
// non-empty query only overrides rendering at the top level.
func (n *Navigator) SetQuery(q string) { n.s.Query = q }
