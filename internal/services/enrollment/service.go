package enrollment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"sportreg/internal/catalog"
	"sportreg/internal/domain"
)

var (
	ErrNoName       = domain.Reject("No name specified")
	ErrNoYear       = domain.Reject("No year of study specified")
	ErrNoSport      = domain.Reject("No sport selected")
	ErrInvalidSport = domain.Reject("Invalid sport selected")
	ErrNameTaken    = domain.Reject("Name already exists!!")
)

// Service validates and records registrations.
type Service struct {
	registrants domain.RegistrantStore
	catalog     *catalog.Catalog
}

// New returns an enrollment service backed by the given store.
func New(registrants domain.RegistrantStore, c *catalog.Catalog) *Service {
	return &Service{registrants: registrants, catalog: c}
}

// Enroll registers name for sport. Checks run in form order: name, year,
// sport, then uniqueness of the name.
func (s *Service) Enroll(ctx context.Context, name string, year string, sport string) (domain.Registrant, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Registrant{}, ErrNoName
	}
	if year == "" {
		return domain.Registrant{}, ErrNoYear
	}
	if sport == "" {
		return domain.Registrant{}, ErrNoSport
	}
	if !s.catalog.HasSport(sport) {
		return domain.Registrant{}, ErrInvalidSport
	}

	_, exists, err := s.registrants.RegistrantByName(ctx, name)
	if err != nil {
		return domain.Registrant{}, fmt.Errorf("enroll %q: %w", name, err)
	}
	if exists {
		return domain.Registrant{}, ErrNameTaken
	}

	r, err := s.registrants.CreateRegistrant(ctx, domain.Registrant{Name: name, Year: year, Sport: sport})
	if errors.Is(err, domain.ErrConflict) {
		return domain.Registrant{}, ErrNameTaken
	}
	if err != nil {
		return domain.Registrant{}, fmt.Errorf("enroll %q: %w", name, err)
	}
	return r, nil
}

// Registrants lists every registration.
func (s *Service) Registrants(ctx context.Context) ([]domain.Registrant, error) {
	return s.registrants.ListRegistrants(ctx)
}

var _ domain.EnrollmentService = (*Service)(nil)
