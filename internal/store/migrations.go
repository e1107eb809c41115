package store

// migration holds a single schema migration with its target version and SQL.
type migration struct {
	version int
	sql     string
}

// migrations is the ordered list of schema migrations.
// Each migration's version must be sequential starting from 1.
var migrations = []migration{
	{
		version: 1,
		sql: `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);

-- The working plan is a singleton row; items and active_days hold the
-- JSON envelope exchanged with the scheduling core.
CREATE TABLE IF NOT EXISTS current_plan (
	id          INTEGER PRIMARY KEY CHECK(id = 1),
	items       TEXT NOT NULL DEFAULT '[]',
	theme       TEXT NOT NULL DEFAULT 'lazy',
	active_days TEXT NOT NULL DEFAULT '[]',
	updated_at  INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS saved_plans (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	items       TEXT NOT NULL DEFAULT '[]',
	theme       TEXT NOT NULL DEFAULT 'lazy',
	active_days TEXT NOT NULL DEFAULT '[]',
	created_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_saved_plans_updated_at ON saved_plans(updated_at);

INSERT INTO schema_version (version) VALUES (1);
`,
	},
}
