package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/urfave/cli/v3"

	"selektah/internal/models"
	"selektah/internal/services"
	"selektah/internal/shared"
	tu "selektah/internal/testing"
)

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with all dependencies provided", func(t *testing.T) {
			config := shared.DefaultConfig()
			logger := shared.NewLogger(nil)
			output := &bytes.Buffer{}
			httpClient := &http.Client{}
			svc := &tu.MockService{}

			runner := NewRunner(RunnerOpts{
				Config:     config,
				Logger:     logger,
				Output:     output,
				HTTPClient: httpClient,
				Service:    svc,
			})

			if runner.config != config {
				t.Error("expected config to be set")
			}
			if runner.logger != logger {
				t.Error("expected logger to be set")
			}
			if runner.output != output {
				t.Error("expected output to be set")
			}
			if runner.httpClient != httpClient {
				t.Error("expected httpClient to be set")
			}
			if runner.svc != svc {
				t.Error("expected service to be set")
			}
		})

		t.Run("with nil config uses defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})
			if runner.config == nil {
				t.Error("expected default config to be set")
			}
		})

		t.Run("with nil service builds a client", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})
			if runner.svc == nil {
				t.Fatal("expected a service client")
			}
			if _, ok := runner.svc.(*services.Client); !ok {
				t.Errorf("expected *services.Client, got %T", runner.svc)
			}
		})

		t.Run("with nil output uses stdout", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})
			if runner.output != os.Stdout {
				t.Error("expected output to default to os.Stdout")
			}
		})

		t.Run("wires the workflow engines", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Service: &tu.MockService{}})
			if runner.review == nil || runner.monitor == nil || runner.editor == nil || runner.hub == nil {
				t.Error("expected review, monitor, editor and hub to be wired")
			}
		})
	})

	t.Run("writeJSON", func(t *testing.T) {
		t.Run("writes formatted JSON successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output, Service: &tu.MockService{}})

			if err := runner.writeJSON(map[string]string{"key": "value"}, true); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			result := output.String()
			if !strings.Contains(result, `"key": "value"`) {
				t.Errorf("expected formatted JSON, got %s", result)
			}
			if !strings.HasSuffix(result, "\n") {
				t.Error("expected output to end with newline")
			}
		})

		t.Run("handles write failure", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &tu.FWriter{}, Service: &tu.MockService{}})

			err := runner.writeJSON(map[string]string{"key": "value"}, false)
			if err == nil {
				t.Fatal("expected error from failing writer")
			}
			if !strings.Contains(err.Error(), "failed to write output") {
				t.Errorf("expected write error, got %v", err)
			}
		})
	})
}

// run executes the CLI against a mock service and returns what it printed.
func run(t *testing.T, svc services.Service, args ...string) (string, error) {
	t.Helper()
	output := &bytes.Buffer{}
	runner := NewRunner(RunnerOpts{Service: svc, Output: output, Logger: shared.NewLogger(output)})

	app := &cli.Command{Name: "selektah", Commands: runner.register()}
	err := app.Run(context.Background(), append([]string{"selektah"}, args...))
	return output.String(), err
}

func TestCommands(t *testing.T) {
	t.Run("stats renders a table", func(t *testing.T) {
		svc := &tu.MockService{
			StatsFunc: func(ctx context.Context) (*models.Stats, error) {
				return &models.Stats{TotalAlbums: 321, Excluded: 4}, nil
			},
		}
		out, err := run(t, svc, "stats")
		if err != nil {
			t.Fatalf("stats failed: %v", err)
		}
		if !strings.Contains(out, "321") || !strings.Contains(out, "Total albums") {
			t.Errorf("unexpected output:\n%s", out)
		}
	})

	t.Run("review next prints the selection", func(t *testing.T) {
		svc := &tu.MockService{
			NextAlbumFunc: func(ctx context.Context) (*models.Album, error) {
				return &models.Album{AlbumID: 7, ListenID: 99, Artist: "Can", Title: "Tago Mago", DisplayYear: 1971}, nil
			},
		}
		out, err := run(t, svc, "review", "next")
		if err != nil {
			t.Fatalf("next failed: %v", err)
		}
		if !strings.Contains(out, "Can - Tago Mago (1971)") {
			t.Errorf("selection card missing:\n%s", out)
		}
		if !strings.Contains(out, "listen id: 99") {
			t.Errorf("listen id missing:\n%s", out)
		}
	})

	t.Run("review listen requires a numeric id", func(t *testing.T) {
		_, err := run(t, &tu.MockService{}, "review", "listen", "abc")
		if err == nil || !strings.Contains(err.Error(), "not numeric") {
			t.Errorf("expected argument error, got %v", err)
		}
	})

	t.Run("board show groups by rank tier", func(t *testing.T) {
		svc := &tu.MockService{
			BigBoardFunc: func(ctx context.Context) ([]models.BigBoardEntry, error) {
				return []models.BigBoardEntry{
					{Rank: 3, Artist: "Neu!", Title: "Neu!", Year: 1972, Owned: true},
					{Rank: 104, Artist: "Faust", Title: "IV", Year: 1973},
				}, nil
			},
		}
		out, err := run(t, svc, "board", "show")
		if err != nil {
			t.Fatalf("board show failed: %v", err)
		}
		if !strings.Contains(out, "1–100 (1)") || !strings.Contains(out, "101–200 (1)") {
			t.Errorf("tier groups missing:\n%s", out)
		}
	})

	t.Run("board show rejects an unknown facet", func(t *testing.T) {
		_, err := run(t, &tu.MockService{}, "board", "show", "--group", "artist")
		if err == nil || !strings.Contains(err.Error(), "does not apply") {
			t.Errorf("expected facet error, got %v", err)
		}
	})

	t.Run("library show passes sort and order to the service", func(t *testing.T) {
		var gotSort, gotOrder string
		svc := &tu.MockService{
			LibraryFunc: func(ctx context.Context, sort, order string) (*models.LibraryPage, error) {
				gotSort, gotOrder = sort, order
				return &models.LibraryPage{}, nil
			},
		}
		if _, err := run(t, svc, "library", "show", "--group", "master_year", "--order", "desc"); err != nil {
			t.Fatalf("library show failed: %v", err)
		}
		if gotSort != "master_year" || gotOrder != "desc" {
			t.Errorf("service got sort=%q order=%q", gotSort, gotOrder)
		}
	})

	t.Run("library export writes CSV", func(t *testing.T) {
		svc := &tu.MockService{
			LibraryFunc: func(ctx context.Context, sort, order string) (*models.LibraryPage, error) {
				return &models.LibraryPage{Albums: []models.Album{
					{AlbumID: 1, Artist: "Can", Title: "Ege Bamyasi", DisplayYear: 1972},
				}, Total: 1}, nil
			},
		}
		path := filepath.Join(t.TempDir(), "library.csv")
		out, err := run(t, svc, "library", "export", "--output", path)
		if err != nil {
			t.Fatalf("export failed: %v", err)
		}
		if !strings.Contains(out, "Exported 1 albums") {
			t.Errorf("confirmation missing:\n%s", out)
		}
		content := tu.MustReadFile(t, path)
		if !strings.Contains(content, "Can,Ege Bamyasi") {
			t.Errorf("CSV content wrong:\n%s", content)
		}
	})

	t.Run("album set-master parses pasted URLs", func(t *testing.T) {
		var got *int64
		svc := &tu.MockService{
			SetMasterFunc: func(ctx context.Context, albumID int64, masterID *int64) error {
				got = masterID
				return nil
			},
		}
		_, err := run(t, svc, "album", "set-master", "12", "https://www.discogs.com/master/4041-Can-Future-Days")
		if err != nil {
			t.Fatalf("set-master failed: %v", err)
		}
		if got == nil || *got != 4041 {
			t.Errorf("wrong master id: %v", got)
		}
	})

	t.Run("sync start rejects unknown jobs", func(t *testing.T) {
		_, err := run(t, &tu.MockService{}, "sync", "start", "everything")
		if err == nil || !strings.Contains(err.Error(), "unknown job") {
			t.Errorf("expected job error, got %v", err)
		}
	})

	t.Run("sync start follows the job to completion", func(t *testing.T) {
		polls := 0
		svc := &tu.MockService{
			SyncStatusFunc: func(ctx context.Context) (*models.SyncStatus, error) {
				polls++
				if polls == 1 {
					return &models.SyncStatus{InProgress: true, Current: 5, Total: 10, Message: "halfway"}, nil
				}
				return &models.SyncStatus{Message: "Sync complete"}, nil
			},
		}
		output := &bytes.Buffer{}
		config := shared.DefaultConfig()
		config.Sync.PollIntervalMS = 1
		config.Sync.CooldownMS = 1
		runner := NewRunner(RunnerOpts{Service: svc, Output: output, Config: config})

		app := &cli.Command{Name: "selektah", Commands: runner.register()}
		if err := app.Run(context.Background(), []string{"selektah", "sync", "start", "discogs"}); err != nil {
			t.Fatalf("sync start failed: %v", err)
		}
		out := output.String()
		if !strings.Contains(out, "50% halfway") {
			t.Errorf("progress line missing:\n%s", out)
		}
		if !strings.Contains(out, "✓ Sync complete") {
			t.Errorf("completion line missing:\n%s", out)
		}
	})

	t.Run("stats end to end over HTTP", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if req.URL.Path != "/api/stats" {
				t.Errorf("unexpected path %s", req.URL.Path)
			}
			w.Write([]byte(`{"success": true, "data": {"total_albums": 42}}`))
		}))
		defer server.Close()

		output := &bytes.Buffer{}
		config := shared.DefaultConfig()
		config.Server.BaseURL = server.URL
		runner := NewRunner(RunnerOpts{Output: output, Config: config})

		app := &cli.Command{Name: "selektah", Commands: runner.register()}
		if err := app.Run(context.Background(), []string{"selektah", "stats"}); err != nil {
			t.Fatalf("stats failed: %v", err)
		}
		if !strings.Contains(output.String(), "42") {
			t.Errorf("expected fetched total in output:\n%s", output.String())
		}
	})

	t.Run("setup writes a config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		out, err := run(t, &tu.MockService{}, "setup", "--config", path)
		if err != nil {
			t.Fatalf("setup failed: %v", err)
		}
		if !strings.Contains(out, "Wrote") {
			t.Errorf("confirmation missing:\n%s", out)
		}
		tu.AssertFileExists(t, path)
	})
}
