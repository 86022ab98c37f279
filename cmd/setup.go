package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"selektah/internal/shared"
)

// Setup writes a starter configuration file at the given path.
func (r *Runner) Setup(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	if err := shared.CreateConfigFile(configPath); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	r.writePlain("✓ Wrote %s\n", configPath)
	r.writePlain("Point base_url at your record service and run: selektah stats\n")
	return nil
}
