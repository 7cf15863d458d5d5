package types

import "errors"

var (
	// ErrConflict is returned by stores when a unique key already exists.
	ErrConflict = errors.New("conflict")

	// ErrMalformedResponse marks a server reply that is not the expected JSON.
	ErrMalformedResponse = errors.New("malformed response")
)

// Rejection is a validation failure whose message is meant for the user.
type Rejection struct {
	Message string
}

// Reject returns a Rejection carrying message.
func Reject(message string) *Rejection { return &Rejection{Message: message} }

func (r *Rejection) Error() string { return r.Message }
