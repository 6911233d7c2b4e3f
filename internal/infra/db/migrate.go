package db

import "database/sql"

// MigrateUp creates the summaries table and its indexes. All statements are
// idempotent so the migration can run on every startup.
func MigrateUp(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS summaries (
    id              SERIAL PRIMARY KEY,
    owner_id        VARCHAR(128) NOT NULL,
    original_text   TEXT NOT NULL,
    summarized_text TEXT NOT NULL,
    variant         VARCHAR(20) NOT NULL,
    source_type     VARCHAR(10) NOT NULL DEFAULT 'text',
    source_url      TEXT NOT NULL DEFAULT '',
    created_at      TIMESTAMPTZ DEFAULT now()
)`); err != nil {
		return err
	}

	indexes := []string{
		// ListByOwner orders by created_at DESC within one owner
		`CREATE INDEX IF NOT EXISTS idx_summaries_owner_created ON summaries(owner_id, created_at DESC)`,
		// variant filter
		`CREATE INDEX IF NOT EXISTS idx_summaries_variant ON summaries(variant)`,
		// retention cleanup scans by created_at
		`CREATE INDEX IF NOT EXISTS idx_summaries_created_at ON summaries(created_at)`,
	}
	for _, idx := range indexes {
		if _, err := db.Exec(idx); err != nil {
			return err
		}
	}

	// source_type check constraint; ignore the error when it already exists
	_, _ = db.Exec(`
DO $$
BEGIN
    IF NOT EXISTS (
        SELECT 1 FROM pg_constraint WHERE conname = 'summaries_source_type_check'
    ) THEN
        ALTER TABLE summaries
            ADD CONSTRAINT summaries_source_type_check
            CHECK (source_type IN ('text', 'url'));
    END IF;
END $$`)

	return nil
}
