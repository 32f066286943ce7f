package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/expertrohr/web/internal/models"
)

// Store journals dispatch outcomes. Rows carry the sink and status only,
// never submission contents.
type Store struct {
	Pool *pgxpool.Pool
}

const schema = `
CREATE TABLE IF NOT EXISTS dispatch_outcomes (
	id          BIGSERIAL PRIMARY KEY,
	request_id  TEXT        NOT NULL,
	sink        TEXT        NOT NULL,
	status      TEXT        NOT NULL,
	urgent      BOOLEAN     NOT NULL DEFAULT FALSE,
	error       TEXT        NOT NULL DEFAULT '',
	created_at  TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS dispatch_outcomes_request_id_idx ON dispatch_outcomes (request_id);
`

func New(ctx context.Context, databaseURL string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &Store{Pool: pool}, nil
}

func (s *Store) Close() {
	s.Pool.Close()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.Pool.Ping(ctx)
}

func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.Pool.Exec(ctx, schema)
	return err
}

func (s *Store) RecordOutcomes(ctx context.Context, outcomes []models.DispatchOutcome) error {
	if len(outcomes) == 0 {
		return nil
	}
	_, err := s.Pool.CopyFrom(ctx, pgx.Identifier{"dispatch_outcomes"}, outcomeColumns, pgx.CopyFromRows(outcomeRows(outcomes)))
	return err
}

var outcomeColumns = []string{"request_id", "sink", "status", "urgent", "error", "created_at"}

func outcomeRows(outcomes []models.DispatchOutcome) [][]any {
	rows := make([][]any, 0, len(outcomes))
	for _, o := range outcomes {
		rows = append(rows, []any{o.RequestID, string(o.Sink), string(o.Status), o.Urgent, o.Error, o.At})
	}
	return rows
}
