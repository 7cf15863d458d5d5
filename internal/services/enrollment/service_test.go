package enrollment_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sportreg/internal/catalog"
	"sportreg/internal/domain"
	"sportreg/internal/services/enrollment"
)

type memRegistrants struct {
	mu   sync.Mutex
	rows []domain.Registrant
	err  error
}

func (m *memRegistrants) CreateRegistrant(ctx context.Context, r domain.Registrant) (domain.Registrant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return domain.Registrant{}, m.err
	}
	r.ID = int64(len(m.rows) + 1)
	m.rows = append(m.rows, r)
	return r, nil
}

func (m *memRegistrants) RegistrantByName(ctx context.Context, name string) (domain.Registrant, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.rows {
		if r.Name == name {
			return r, true, nil
		}
	}
	return domain.Registrant{}, false, nil
}

func (m *memRegistrants) ListRegistrants(ctx context.Context) ([]domain.Registrant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.Registrant(nil), m.rows...), nil
}

func TestEnroll_OK(t *testing.T) {
	store := &memRegistrants{}
	svc := enrollment.New(store, catalog.Default())

	r, err := svc.Enroll(context.Background(), " Ada ", "Year 2", "Table Tennis")
	require.NoError(t, err)
	assert.Equal(t, "Ada", r.Name)
	assert.NotZero(t, r.ID)

	all, err := svc.Registrants(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestEnroll_Rejections(t *testing.T) {
	cases := []struct {
		name             string
		who, year, sport string
		want             error
		message          string
	}{
		{"no name", "", "Year 1", "Chess", enrollment.ErrNoName, "No name specified"},
		{"blank name", "   ", "Year 1", "Chess", enrollment.ErrNoName, "No name specified"},
		{"no year", "Ada", "", "Chess", enrollment.ErrNoYear, "No year of study specified"},
		{"no sport", "Ada", "Year 1", "", enrollment.ErrNoSport, "No sport selected"},
		{"unknown sport", "Ada", "Year 1", "Quidditch", enrollment.ErrInvalidSport, "Invalid sport selected"},
		{"name checked first", "", "", "", enrollment.ErrNoName, "No name specified"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := enrollment.New(&memRegistrants{}, catalog.Default())
			_, err := svc.Enroll(context.Background(), tc.who, tc.year, tc.sport)
			require.ErrorIs(t, err, tc.want)
			assert.Equal(t, tc.message, err.Error())
		})
	}
}

func TestEnroll_DuplicateName(t *testing.T) {
	svc := enrollment.New(&memRegistrants{}, catalog.Default())
	_, err := svc.Enroll(context.Background(), "Ada", "Year 1", "Chess")
	require.NoError(t, err)

	_, err = svc.Enroll(context.Background(), "Ada", "Year 3", "Rugby")
	assert.ErrorIs(t, err, enrollment.ErrNameTaken)
}

func TestEnroll_StoreConflictIsNameTaken(t *testing.T) {
	store := &memRegistrants{err: domain.ErrConflict}
	_, err := enrollment.New(store, catalog.Default()).Enroll(context.Background(), "Ada", "Year 1", "Chess")
	assert.ErrorIs(t, err, enrollment.ErrNameTaken)
}

func TestEnroll_StoreFailurePropagates(t *testing.T) {
	boom := errors.New("boom")
	store := &memRegistrants{err: boom}
	_, err := enrollment.New(store, catalog.Default()).Enroll(context.Background(), "Ada", "Year 1", "Chess")
	require.ErrorIs(t, err, boom)

	var rej *domain.Rejection
	assert.False(t, errors.As(err, &rej))
}
