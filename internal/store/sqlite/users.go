package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"sportreg/internal/domain"
)

// CreateUser inserts a user. A taken username yields domain.ErrConflict.
func (s *Store) CreateUser(ctx context.Context, username domain.Username, passwordHash string) (domain.User, error) {
	created := s.now()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO users (username, password_hash, created_at) VALUES (?, ?, ?)`,
		username.String(), passwordHash, toMillis(created),
	)
	if isUniqueViolation(err) {
		return domain.User{}, fmt.Errorf("create user %q: %w", username, domain.ErrConflict)
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("create user %q: %w", username, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.User{}, fmt.Errorf("create user %q: %w", username, err)
	}
	return domain.User{
		ID:           id,
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    fromMillis(toMillis(created)),
	}, nil
}

// UserByUsername looks a user up by name.
func (s *Store) UserByUsername(ctx context.Context, username domain.Username) (domain.User, bool, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, username, password_hash, created_at FROM users WHERE username = ?`,
		username.String(),
	)
	return scanUser(row)
}

// UserByID looks a user up by id.
func (s *Store) UserByID(ctx context.Context, id int64) (domain.User, bool, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, username, password_hash, created_at FROM users WHERE id = ?`,
		id,
	)
	return scanUser(row)
}

func scanUser(row *sql.Row) (domain.User, bool, error) {
	var (
		u       domain.User
		name    string
		created int64
	)
	err := row.Scan(&u.ID, &name, &u.PasswordHash, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, false, nil
	}
	if err != nil {
		return domain.User{}, false, fmt.Errorf("scan user: %w", err)
	}
	u.Username = domain.Username(name)
	u.CreatedAt = fromMillis(created)
	return u, true, nil
}
