package views

import "testing"

func TestNavigatorDrill(t *testing.T) {
	n := NewNavigator(State{Facet: FacetDecade})

	n.SelectGroup("1970s")
	if got := n.State(); got.ActiveGroup != "1970s" || got.ActiveYear != 0 {
		t.Fatalf("unexpected state after group select: %+v", got)
	}

	n.SelectYear(1973)
	if got := n.State(); got.ActiveYear != 1973 {
		t.Fatalf("year select failed: %+v", got)
	}

	n.Back()
	if got := n.State(); got.ActiveYear != 0 || got.ActiveGroup != "1970s" {
		t.Errorf("back should pop only the year: %+v", got)
	}
	n.Back()
	if got := n.State(); got.Drilled() {
		t.Errorf("back should return to the top level: %+v", got)
	}
	n.Back()
	if got := n.State(); got.Drilled() {
		t.Errorf("back at top level must be a no-op: %+v", got)
	}
}

func TestNavigatorFacetChangeResetsDrill(t *testing.T) {
	n := NewNavigator(State{Facet: FacetDecade})
	n.SelectGroup("1980s")
	n.SelectYear(1982)

	n.SetFacet(FacetGenre)
	got := n.State()
	if got.Facet != FacetGenre {
		t.Fatalf("facet not applied: %+v", got)
	}
	if got.Drilled() {
		t.Errorf("facet change must clear group and year: %+v", got)
	}
}

func TestNavigatorOrderPreservesDrill(t *testing.T) {
	n := NewNavigator(State{Facet: FacetMasterYear})
	n.SelectGroup("1990s")

	n.ToggleOrder()
	got := n.State()
	if got.Order != Desc {
		t.Fatalf("toggle did not flip: %+v", got)
	}
	if got.ActiveGroup != "1990s" {
		t.Errorf("direction flip must not reset the drill: %+v", got)
	}

	n.ToggleOrder()
	if n.State().Order != Asc {
		t.Errorf("second toggle should restore ascending")
	}
}

func TestNavigatorHeatmapIgnoresGroupSelect(t *testing.T) {
	n := NewNavigator(State{Facet: FacetHeatmap})
	n.SelectGroup("1–100")
	if n.State().Drilled() {
		t.Errorf("heatmap cells are not drillable: %+v", n.State())
	}
}

func TestNavigatorYearSelectRequiresYearFacet(t *testing.T) {
	n := NewNavigator(State{Facet: FacetGenre})
	n.SelectGroup("Rock")
	n.SelectYear(1977)
	if n.State().ActiveYear != 0 {
		t.Errorf("genre groups have no year sub-filter: %+v", n.State())
	}
}

func TestNavigatorQueryAndOwnershipKeepDrill(t *testing.T) {
	n := NewNavigator(State{Facet: FacetArtist})
	n.SelectGroup("B")

	n.SetQuery("post")
	n.SetOwnership(OwnershipOwned)
	got := n.State()
	if got.ActiveGroup != "B" {
		t.Errorf("filters must not reset the drill: %+v", got)
	}
	if got.Query != "post" || got.Ownership != OwnershipOwned {
		t.Errorf("filters not applied: %+v", got)
	}
}

func TestNavigatorReset(t *testing.T) {
	defaults := State{Facet: FacetRank, Order: Asc}
	n := NewNavigator(defaults)
	n.SetFacet(FacetGenre)
	n.SetOrder(Desc)
	n.SelectGroup("Jazz")
	n.SetQuery("coltrane")

	n.Reset()
	if n.State() != defaults {
		t.Errorf("reset should restore defaults, got %+v", n.State())
	}
}
