package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a pgx connection pool for journal operations.
type DB struct {
	pool *pgxpool.Pool
}

// New connects to PostgreSQL and returns a DB handle.
func New(ctx context.Context, dsn string) (*DB, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return &DB{pool: pool}, nil
}

// Close closes the database connection pool.
func (d *DB) Close() {
	d.pool.Close()
}

// Pool returns the underlying pgx pool.
func (d *DB) Pool() *pgxpool.Pool {
	return d.pool
}

// ChatEntry is one chat message observed during a session.
type ChatEntry struct {
	SessionID  uuid.UUID
	Sender     string
	Message    string
	ReceivedAt time.Time
}

// Sighting records an entity observed in the world.
type Sighting struct {
	SessionID  uuid.UUID
	EntityID   int32
	EntityUUID uuid.UUID
	Kind       int32
	X, Y, Z    float64
	SeenAt     time.Time
}

// InsertChat appends a chat message to the journal.
func (d *DB) InsertChat(ctx context.Context, e ChatEntry) error {
	_, err := d.pool.Exec(ctx,
		`INSERT INTO chat_log (session_id, sender, message, received_at)
		 VALUES ($1, $2, $3, $4)`,
		e.SessionID, e.Sender, e.Message, e.ReceivedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting chat entry: %w", err)
	}
	return nil
}

// RecordSighting upserts an entity sighting, keeping the latest position
// per (session, entity).
func (d *DB) RecordSighting(ctx context.Context, s Sighting) error {
	_, err := d.pool.Exec(ctx,
		`INSERT INTO entity_sightings (session_id, entity_id, entity_uuid, kind, x, y, z, seen_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (session_id, entity_id)
		 DO UPDATE SET x = $5, y = $6, z = $7, seen_at = $8`,
		s.SessionID, s.EntityID, s.EntityUUID, s.Kind, s.X, s.Y, s.Z, s.SeenAt,
	)
	if err != nil {
		return fmt.Errorf("recording sighting of entity %d: %w", s.EntityID, err)
	}
	return nil
}

// RecentChat returns the latest chat messages for a session, newest first.
func (d *DB) RecentChat(ctx context.Context, sessionID uuid.UUID, limit int) ([]ChatEntry, error) {
	rows, err := d.pool.Query(ctx,
		`SELECT session_id, sender, message, received_at
		 FROM chat_log WHERE session_id = $1
		 ORDER BY received_at DESC LIMIT $2`,
		sessionID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying chat log: %w", err)
	}
	defer rows.Close()

	var out []ChatEntry
	for rows.Next() {
		var e ChatEntry
		if err := rows.Scan(&e.SessionID, &e.Sender, &e.Message, &e.ReceivedAt); err != nil {
			return nil, fmt.Errorf("scanning chat entry: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading chat log: %w", err)
	}
	return out, nil
}
