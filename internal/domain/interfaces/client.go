package interfaces

import (
	"context"

	domaintypes "sportreg/internal/domain/types"
)

// APIClient is how the CLI talks to the server. Every call returns the
// server's notification; transport and decoding failures come back as errors.
type APIClient interface {
	Signup(ctx context.Context, username, password, confirmPassword string) (domaintypes.Notification, error)
	Login(ctx context.Context, username, password string) (domaintypes.Notification, error)
	Logout(ctx context.Context) (domaintypes.Notification, error)
	RegisterSport(ctx context.Context, submission domaintypes.FormSubmission) (domaintypes.Notification, error)
	Registrants(ctx context.Context) ([]domaintypes.Registrant, error)
}
