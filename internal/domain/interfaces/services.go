package interfaces

import (
	"context"

	domaintypes "sportreg/internal/domain/types"
)

// AccountService signs users up and checks their credentials.
type AccountService interface {
	Register(
		ctx context.Context,
		username string,
		password string,
		confirmPassword string,
	) (domaintypes.User, error)
	Authenticate(ctx context.Context, username string, password string) (domaintypes.User, error)
}

// EnrollmentService records students against sports.
type EnrollmentService interface {
	Enroll(ctx context.Context, name string, year string, sport string) (domaintypes.Registrant, error)
	Registrants(ctx context.Context) ([]domaintypes.Registrant, error)
}

// SessionService issues and verifies session tokens.
type SessionService interface {
	Issue(user domaintypes.User) (string, error)
	Verify(token string) (domaintypes.Principal, error)
}
