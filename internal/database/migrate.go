package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

const schema = `
DO $$ BEGIN
	CREATE TYPE application_status AS ENUM ('pending', 'reviewed', 'approved', 'rejected');
EXCEPTION
	WHEN duplicate_object THEN NULL;
END $$;

CREATE TABLE IF NOT EXISTS applications (
	id BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL,
	company_name TEXT NOT NULL,
	project_description TEXT NOT NULL,
	desired_features TEXT NOT NULL,
	status application_status NOT NULL DEFAULT 'pending',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_applications_created_at ON applications (created_at DESC, id DESC);
CREATE INDEX IF NOT EXISTS idx_applications_status ON applications (status);
`

// Migrate applies the schema. Every statement is idempotent, so it runs on
// each start.
func Migrate(db *sql.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
