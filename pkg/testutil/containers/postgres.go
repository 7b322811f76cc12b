//go:build integration

package containers

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
)

// Schema is the full DDL applied to every fresh container. Kept here so the
// integration suites and local tooling share one source of truth.
const Schema = `
CREATE TABLE IF NOT EXISTS home_group (
	id         UUID PRIMARY KEY,
	name       TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS home (
	id         UUID PRIMARY KEY,
	name       TEXT NOT NULL,
	group_id   UUID REFERENCES home_group (id),
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS resident (
	id           UUID PRIMARY KEY,
	first_name   TEXT NOT NULL,
	last_initial TEXT NOT NULL,
	on_hiatus    BOOLEAN NOT NULL DEFAULT FALSE,
	created_at   TIMESTAMPTZ NOT NULL,
	updated_at   TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS residency (
	id          UUID PRIMARY KEY,
	resident_id UUID NOT NULL REFERENCES resident (id),
	home_id     UUID NOT NULL REFERENCES home (id),
	move_in     TIMESTAMPTZ NOT NULL,
	move_out    TIMESTAMPTZ,
	created_at  TIMESTAMPTZ NOT NULL,
	updated_at  TIMESTAMPTZ NOT NULL,
	CONSTRAINT residency_date_order CHECK (move_out IS NULL OR move_in <= move_out)
);
CREATE INDEX IF NOT EXISTS residency_resident_idx ON residency (resident_id);
CREATE INDEX IF NOT EXISTS residency_home_idx ON residency (home_id);

CREATE TABLE IF NOT EXISTS resident_activity (
	id               UUID PRIMARY KEY,
	resident_id      UUID NOT NULL REFERENCES resident (id),
	residency_id     UUID NOT NULL REFERENCES residency (id),
	home_id          UUID NOT NULL REFERENCES home (id),
	group_id         UUID NOT NULL,
	activity_type    TEXT NOT NULL,
	caregiver_role   TEXT NOT NULL,
	activity_date    TIMESTAMPTZ NOT NULL,
	activity_minutes INTEGER NOT NULL,
	created_at       TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS resident_activity_resident_date_idx ON resident_activity (resident_id, activity_date);
CREATE INDEX IF NOT EXISTS resident_activity_group_idx ON resident_activity (group_id);

CREATE TABLE IF NOT EXISTS work (
	id               UUID PRIMARY KEY,
	home_id          UUID NOT NULL REFERENCES home (id),
	work_type        TEXT NOT NULL,
	caregiver_role   TEXT NOT NULL,
	date             TIMESTAMPTZ NOT NULL,
	duration_minutes INTEGER NOT NULL CHECK (duration_minutes >= 0),
	created_at       TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS work_home_idx ON work (home_id);

CREATE TABLE IF NOT EXISTS audit_event (
	id           BIGSERIAL PRIMARY KEY,
	ts           TIMESTAMPTZ NOT NULL,
	action       TEXT NOT NULL,
	resident_id  TEXT,
	home_id      TEXT,
	residency_id TEXT,
	group_id     TEXT,
	reason       TEXT
);
CREATE INDEX IF NOT EXISTS audit_event_resident_idx ON audit_event (resident_id);
`

// PostgresContainer wraps a testcontainers Postgres instance with the schema
// already applied.
type PostgresContainer struct {
	Container testcontainers.Container
	DB        *sql.DB
	DSN       string
}

// NewPostgresContainer starts a Postgres container and applies the schema.
func NewPostgresContainer(t *testing.T) *PostgresContainer {
	t.Helper()

	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("carelog"),
		tcpostgres.WithUsername("carelog"),
		tcpostgres.WithPassword("carelog"),
		tcpostgres.BasicWaitStrategies(),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		t.Fatalf("failed to get postgres connection string: %v", err)
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		_ = container.Terminate(ctx)
		t.Fatalf("failed to open postgres connection: %v", err)
	}
	db.SetMaxOpenConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		_ = container.Terminate(ctx)
		t.Fatalf("failed to ping postgres: %v", err)
	}

	if _, err := db.ExecContext(ctx, Schema); err != nil {
		_ = db.Close()
		_ = container.Terminate(ctx)
		t.Fatalf("failed to apply schema: %v", err)
	}

	return &PostgresContainer{
		Container: container,
		DB:        db,
		DSN:       dsn,
	}
}

// TruncateTables empties the given tables. Pass them in dependency order;
// CASCADE takes care of the rest.
func (p *PostgresContainer) TruncateTables(ctx context.Context, tables ...string) error {
	if len(tables) == 0 {
		return nil
	}
	query := fmt.Sprintf("TRUNCATE TABLE %s CASCADE", strings.Join(tables, ", "))
	_, err := p.DB.ExecContext(ctx, query)
	return err
}
