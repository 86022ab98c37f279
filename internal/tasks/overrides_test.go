package tasks

import (
	"context"
	"errors"
	"testing"

	"selektah/internal/shared"
	tu "selektah/internal/testing"
)

func TestParseMasterID(t *testing.T) {
	tc := []struct {
		input string
		want  int64
		fails bool
	}{
		{"12345", 12345, false},
		{"  12345 ", 12345, false},
		{"https://www.discogs.com/master/12345-Can-Future-Days", 12345, false},
		{"discogs.com/master/777", 777, false},
		{"https://www.discogs.com/release/999-Foo", 0, true},
		{"abc", 0, true},
		{"", 0, true},
		{"12345abc", 0, true},
	}
	for _, tt := range tc {
		got, err := ParseMasterID(tt.input)
		if tt.fails {
			if !errors.Is(err, shared.ErrInvalidInput) {
				t.Errorf("ParseMasterID(%q) err = %v, want ErrInvalidInput", tt.input, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseMasterID(%q) = %d, %v; want %d", tt.input, got, err, tt.want)
		}
	}
}

func TestParseReleaseID(t *testing.T) {
	if got, err := ParseReleaseID("https://www.discogs.com/release/31415-Neu-75"); err != nil || got != 31415 {
		t.Errorf("got %d, %v", got, err)
	}
	if _, err := ParseReleaseID("https://www.discogs.com/master/31415"); !errors.Is(err, shared.ErrInvalidInput) {
		t.Errorf("a master url is not a release id, got %v", err)
	}
}

func TestSaveMasterInvalidInputSkipsNetwork(t *testing.T) {
	called := false
	svc := &tu.MockService{
		SetMasterFunc: func(ctx context.Context, albumID int64, masterID *int64) error {
			called = true
			return nil
		},
	}
	o := NewOverrideEditor(svc, nil)

	if err := o.SaveMaster(context.Background(), 1, "not-an-id"); !errors.Is(err, shared.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if called {
		t.Error("invalid input must fail before any request")
	}
}

func TestSaveMasterPublishesAlbumChanged(t *testing.T) {
	var gotID *int64
	svc := &tu.MockService{
		SetMasterFunc: func(ctx context.Context, albumID int64, masterID *int64) error {
			gotID = masterID
			return nil
		},
	}
	hub := NewHub()
	events := hub.Subscribe()
	o := NewOverrideEditor(svc, hub)

	if err := o.SaveMaster(context.Background(), 42, "https://www.discogs.com/master/555-X"); err != nil {
		t.Fatal(err)
	}
	if gotID == nil || *gotID != 555 {
		t.Errorf("wrong master id sent: %v", gotID)
	}
	ev := <-events
	if ev.Kind != EventAlbumChanged || ev.AlbumID != 42 {
		t.Errorf("unexpected event %+v", ev)
	}
}

func TestClearMaster(t *testing.T) {
	cleared := false
	svc := &tu.MockService{
		SetMasterFunc: func(ctx context.Context, albumID int64, masterID *int64) error {
			cleared = masterID == nil
			return nil
		},
	}
	o := NewOverrideEditor(svc, nil)
	if err := o.ClearMaster(context.Background(), 1); err != nil || !cleared {
		t.Errorf("clear should send a nil id: err=%v cleared=%v", err, cleared)
	}
}

func TestSaveYear(t *testing.T) {
	var gotYear *int
	calls := 0
	svc := &tu.MockService{
		SetYearFunc: func(ctx context.Context, albumID int64, year *int) error {
			calls++
			gotYear = year
			return nil
		},
	}
	o := NewOverrideEditor(svc, nil)

	if err := o.SaveYear(context.Background(), 1, "1973"); err != nil {
		t.Fatal(err)
	}
	if gotYear == nil || *gotYear != 1973 {
		t.Errorf("wrong year sent: %v", gotYear)
	}

	if err := o.SaveYear(context.Background(), 1, "  "); err != nil {
		t.Fatal(err)
	}
	if gotYear != nil {
		t.Errorf("blank input should clear the override: %v", gotYear)
	}

	if err := o.SaveYear(context.Background(), 1, "nineteen"); !errors.Is(err, shared.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
	if calls != 2 {
		t.Errorf("invalid input must not reach the service: %d calls", calls)
	}
}

func TestUseReleaseAsMaster(t *testing.T) {
	svc := &tu.MockService{
		UseReleaseFunc: func(ctx context.Context, albumID int64) error {
			if albumID != 8 {
				t.Errorf("wrong album: %d", albumID)
			}
			return nil
		},
	}
	hub := NewHub()
	events := hub.Subscribe()
	o := NewOverrideEditor(svc, hub)

	if err := o.UseReleaseAsMaster(context.Background(), 8); err != nil {
		t.Fatal(err)
	}
	if ev := <-events; ev.Kind != EventAlbumChanged {
		t.Errorf("expected album change event, got %v", ev.Kind)
	}
}

func TestServiceErrorsPassThroughWithoutEvents(t *testing.T) {
	svc := &tu.MockService{
		SetReleaseFunc: func(ctx context.Context, albumID int64, releaseID int64) error {
			return shared.ErrService
		},
	}
	hub := NewHub()
	events := hub.Subscribe()
	o := NewOverrideEditor(svc, hub)

	if err := o.SaveRelease(context.Background(), 1, "123"); !errors.Is(err, shared.ErrService) {
		t.Fatalf("expected service error, got %v", err)
	}
	select {
	case ev := <-events:
		t.Errorf("failed edit must not publish, got %+v", ev)
	default:
	}
}
