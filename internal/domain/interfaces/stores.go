package interfaces

import (
	"context"

	domaintypes "sportreg/internal/domain/types"
)

// UserStore persists accounts.
type UserStore interface {
	CreateUser(ctx context.Context, username domaintypes.Username, passwordHash string) (domaintypes.User, error)
	UserByUsername(ctx context.Context, username domaintypes.Username) (domaintypes.User, bool, error)
	UserByID(ctx context.Context, id int64) (domaintypes.User, bool, error)
}

// RegistrantStore persists sport registrations.
type RegistrantStore interface {
	CreateRegistrant(ctx context.Context, registrant domaintypes.Registrant) (domaintypes.Registrant, error)
	RegistrantByName(ctx context.Context, name string) (domaintypes.Registrant, bool, error)
	ListRegistrants(ctx context.Context) ([]domaintypes.Registrant, error)
}

// ClientSessionStore keeps the CLI's server cookies between invocations.
type ClientSessionStore interface {
	SaveClientSession(session domaintypes.ClientSession) error
	LoadClientSession(serverURL string) (domaintypes.ClientSession, bool, error)
	DeleteClientSession(serverURL string) error
}
