package store

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schema string

const userColumns = `id, github_id, login, name, email, avatar_url, created_at, updated_at`

// Postgres is a UserStore backed by PostgreSQL.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres connects to the database at dsn and verifies the connection.
func NewPostgres(ctx context.Context, dsn string, maxConns int32) (*Postgres, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("store.NewPostgres: parse config: %w", err)
	}

	if maxConns > 0 {
		cfg.MaxConns = maxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("store.NewPostgres: connect: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("store.NewPostgres: ping: %w", err)
	}

	return &Postgres{pool: pool}, nil
}

// Migrate creates the tables the store needs. It is safe to run repeatedly.
func (s *Postgres) Migrate(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("store.Migrate: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func (s *Postgres) Close() {
	s.pool.Close()
}

func (s *Postgres) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *Postgres) UpsertGitHubUser(ctx context.Context, identity GitHubIdentity) (User, error) {
	row := s.pool.QueryRow(ctx,
		`INSERT INTO users (id, github_id, login, name, email, avatar_url)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (github_id) DO UPDATE SET
		     login = EXCLUDED.login,
		     name = EXCLUDED.name,
		     email = EXCLUDED.email,
		     avatar_url = EXCLUDED.avatar_url,
		     updated_at = now()
		 RETURNING `+userColumns,
		uuid.New(), identity.ID, identity.Login, identity.Name,
		nilIfEmpty(identity.Email), nilIfEmpty(identity.AvatarURL),
	)

	u, err := scanUser(row)
	if err != nil {
		return User{}, fmt.Errorf("store.UpsertGitHubUser: %w", err)
	}
	return u, nil
}

func (s *Postgres) GetUser(ctx context.Context, id uuid.UUID) (User, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)

	u, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, fmt.Errorf("store.GetUser: %w", ErrNotFound)
	}
	if err != nil {
		return User{}, fmt.Errorf("store.GetUser: %w", err)
	}
	return u, nil
}

func scanUser(row pgx.Row) (User, error) {
	var u User
	var email, avatarURL *string

	err := row.Scan(&u.ID, &u.GitHubID, &u.Login, &u.Name, &email, &avatarURL, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return User{}, err
	}

	u.Email = derefStr(email)
	u.AvatarURL = derefStr(avatarURL)
	return u, nil
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefStr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
