package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"selektah/internal/services"
	"selektah/internal/shared"
)

// SyncStart kicks off a background job and prints progress until it ends.
func (r *Runner) SyncStart(ctx context.Context, cmd *cli.Command) error {
	name := strings.TrimSpace(cmd.StringArg("job"))
	if name == "" {
		return fmt.Errorf("%w: job", shared.ErrMissingArgument)
	}

	var job services.SyncJob
	for _, j := range services.Jobs() {
		if string(j) == name {
			job = j
		}
	}
	if job == "" {
		return fmt.Errorf("%w: unknown job %q (want one of %v)", shared.ErrInvalidArgument, name, services.Jobs())
	}

	updates, err := r.monitor.Start(ctx, job)
	if err != nil {
		return err
	}
	r.writePlain("Started %s sync\n", job)

	for u := range updates {
		switch {
		case u.Err != nil:
			return fmt.Errorf("lost track of the job: %w", u.Err)
		case u.Done:
			r.writePlain("✓ %s\n", orDefault(u.Message, "done"))
		case u.Indeterminate:
			r.writePlain("  working... %s\n", u.Message)
		default:
			r.writePlain("  %3d%% %s\n", u.Percent, u.Message)
		}
	}
	return nil
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// SyncStatus prints a single poll of the job status endpoint.
func (r *Runner) SyncStatus(ctx context.Context, cmd *cli.Command) error {
	status, err := r.svc.SyncStatus(ctx)
	if err != nil {
		return err
	}
	if cmd.Bool("json") {
		return r.writeJSON(status, true)
	}

	if !status.InProgress {
		return r.writePlain("No job running.\n")
	}
	if status.Total > 0 {
		return r.writePlain("In progress: %d/%d %s\n", status.Current, status.Total, status.Message)
	}
	return r.writePlain("In progress: %s\n", status.Message)
}
