package conversation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hupe1980/travelmesh/core"
)

// conversationsSchema is applied on startup. An idempotent create keeps the
// store usable without a separate migration step.
const conversationsSchema = `
CREATE TABLE IF NOT EXISTS conversations (
	id              TEXT PRIMARY KEY,
	involved_agents TEXT[] NOT NULL DEFAULT '{}',
	turn_count      INTEGER NOT NULL DEFAULT 0,
	last_update     TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// PostgresStore persists conversation state in Postgres via a pgx pool.
// Upserts are single statements, so concurrent rounds on the same
// conversation serialize on the row without application locks.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// PostgresStoreOptions configures pool sizing for a PostgresStore.
type PostgresStoreOptions struct {
	MaxConns int32
	MinConns int32
}

// NewPostgresStore connects to dsn, verifies the connection and ensures the
// conversations table exists. Close the store to release the pool.
func NewPostgresStore(ctx context.Context, dsn string, optFns ...func(o *PostgresStoreOptions)) (*PostgresStore, error) {
	opts := PostgresStoreOptions{MaxConns: 10, MinConns: 1}

	for _, fn := range optFns {
		fn(&opts)
	}

	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	poolCfg.MaxConns = opts.MaxConns
	poolCfg.MinConns = opts.MinConns

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	if _, err := pool.Exec(ctx, conversationsSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close releases the underlying connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Get returns the state for id, or core.ErrConversationNotFound.
func (s *PostgresStore) Get(ctx context.Context, id string) (*core.ConversationState, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, involved_agents, turn_count, last_update FROM conversations WHERE id = $1`, id)

	var state core.ConversationState
	if err := row.Scan(&state.ID, &state.InvolvedAgents, &state.TurnCount, &state.LastUpdate); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, core.ErrConversationNotFound
		}
		return nil, fmt.Errorf("get conversation: %w", err)
	}

	return &state, nil
}

// Upsert merges involved into the stored agent set, increments the turn
// count and refreshes the timestamp, creating the row on first sight. The
// union happens in SQL so concurrent upserts on the same id cannot lose
// agents.
func (s *PostgresStore) Upsert(ctx context.Context, id string, involved []string) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO conversations (id, involved_agents, turn_count, last_update)
		VALUES ($1, $2, 1, now())
		ON CONFLICT (id) DO UPDATE SET
			involved_agents = ARRAY(
				SELECT DISTINCT agent
				FROM unnest(conversations.involved_agents || EXCLUDED.involved_agents) AS agent
			),
			turn_count  = conversations.turn_count + 1,
			last_update = now()`,
		id, involved)
	if err != nil {
		return fmt.Errorf("upsert conversation: %w", err)
	}

	return nil
}

// Sweep deletes conversations idle for longer than maxIdle and returns the
// number removed.
func (s *PostgresStore) Sweep(ctx context.Context, maxIdle time.Duration) (int, error) {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM conversations WHERE last_update < $1`, time.Now().Add(-maxIdle))
	if err != nil {
		return 0, fmt.Errorf("sweep conversations: %w", err)
	}

	return int(tag.RowsAffected()), nil
}

// List returns all conversation states ordered by last update, newest first.
func (s *PostgresStore) List(ctx context.Context) ([]core.ConversationState, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, involved_agents, turn_count, last_update FROM conversations ORDER BY last_update DESC`)
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	defer rows.Close()

	var out []core.ConversationState
	for rows.Next() {
		var state core.ConversationState
		if err := rows.Scan(&state.ID, &state.InvolvedAgents, &state.TurnCount, &state.LastUpdate); err != nil {
			return nil, fmt.Errorf("scan conversation: %w", err)
		}
		out = append(out, state)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}

	return out, nil
}
