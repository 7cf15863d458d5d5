package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"sportreg/internal/domain"
)

// CreateRegistrant inserts a registration. A taken name yields
// domain.ErrConflict.
func (s *Store) CreateRegistrant(ctx context.Context, r domain.Registrant) (domain.Registrant, error) {
	created := fromMillis(toMillis(s.now()))
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO registrants (name, year, sport, created_at) VALUES (?, ?, ?, ?)`,
		r.Name, r.Year, r.Sport, toMillis(created),
	)
	if isUniqueViolation(err) {
		return domain.Registrant{}, fmt.Errorf("create registrant %q: %w", r.Name, domain.ErrConflict)
	}
	if err != nil {
		return domain.Registrant{}, fmt.Errorf("create registrant %q: %w", r.Name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Registrant{}, fmt.Errorf("create registrant %q: %w", r.Name, err)
	}
	r.ID = id
	r.CreatedAt = created
	return r, nil
}

// RegistrantByName looks a registration up by student name.
func (s *Store) RegistrantByName(ctx context.Context, name string) (domain.Registrant, bool, error) {
	var (
		r       domain.Registrant
		created int64
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, year, sport, created_at FROM registrants WHERE name = ?`, name,
	).Scan(&r.ID, &r.Name, &r.Year, &r.Sport, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Registrant{}, false, nil
	}
	if err != nil {
		return domain.Registrant{}, false, fmt.Errorf("scan registrant: %w", err)
	}
	r.CreatedAt = fromMillis(created)
	return r, true, nil
}

// ListRegistrants returns every registration in insertion order.
func (s *Store) ListRegistrants(ctx context.Context) ([]domain.Registrant, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, year, sport, created_at FROM registrants ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list registrants: %w", err)
	}
	defer rows.Close()

	var out []domain.Registrant
	for rows.Next() {
		var (
			r       domain.Registrant
			created int64
		)
		if err := rows.Scan(&r.ID, &r.Name, &r.Year, &r.Sport, &created); err != nil {
			return nil, fmt.Errorf("scan registrant: %w", err)
		}
		r.CreatedAt = fromMillis(created)
		out = append(out, r)
	}
	return out, rows.Err()
}
