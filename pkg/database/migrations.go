package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreatePartialUniqueIndexes creates PostgreSQL partial unique indexes that
// Ent/Atlas cannot express: sort_order must be unique per phase bucket, and
// the bucket is derived from (document_class_id, post_branching). These must
// match the constraints in 20251104093000_init.up.sql.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS pipelinestep_pre_branch_order
		ON pipeline_steps (sort_order)
		WHERE document_class_id IS NULL AND post_branching = false`)
	if err != nil {
		return fmt.Errorf("failed to create pre-branch order index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS pipelinestep_post_branch_order
		ON pipeline_steps (sort_order)
		WHERE document_class_id IS NULL AND post_branching = true`)
	if err != nil {
		return fmt.Errorf("failed to create post-branch order index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS pipelinestep_class_order
		ON pipeline_steps (document_class_id, sort_order)
		WHERE document_class_id IS NOT NULL`)
	if err != nil {
		return fmt.Errorf("failed to create class order index: %w", err)
	}

	return nil
}
