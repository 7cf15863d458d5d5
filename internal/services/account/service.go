package account

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"sportreg/internal/domain"
)

const (
	minUsernameLength = 4
	maxUsernameLength = 10
	minPasswordLength = 4
	maxPasswordLength = 20
)

var (
	// ErrUsernameLength is returned for usernames outside the allowed length.
	ErrUsernameLength = domain.Reject(fmt.Sprintf(
		"Username must be between %d and %d characters!!", minUsernameLength, maxUsernameLength))
	// ErrPasswordLength is returned for passwords outside the allowed length.
	ErrPasswordLength = domain.Reject(fmt.Sprintf(
		"Password must be between %d and %d characters!!", minPasswordLength, maxPasswordLength))
	// ErrPasswordMismatch is returned when the confirmation differs.
	ErrPasswordMismatch = domain.Reject("Passwords donot match!!")
	// ErrUsernameTaken is returned when the username is already registered.
	ErrUsernameTaken = domain.Reject("Username already exists!!")
	// ErrRegistrationFailed wraps storage failures during signup.
	ErrRegistrationFailed = domain.Reject("There was an error during registration")
	// ErrInvalidCredentials is returned for an unknown user or wrong password.
	ErrInvalidCredentials = domain.Reject("Invalid credentials!")
)

// Option configures a Service.
type Option func(*Service)

// WithBcryptCost overrides the bcrypt work factor.
func WithBcryptCost(cost int) Option { return func(s *Service) { s.cost = cost } }

// Service manages account creation and sign-in using a backing store.
type Service struct {
	users domain.UserStore
	cost  int
}

// New returns an account service backed by the given store.
func New(users domain.UserStore, opts ...Option) *Service {
	s := &Service{users: users, cost: bcrypt.DefaultCost}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register validates the signup form and creates the account. Username and
// password are trimmed before any check.
func (s *Service) Register(
	ctx context.Context,
	username string,
	password string,
	confirmPassword string,
) (domain.User, error) {
	name := strings.TrimSpace(username)
	pass := strings.TrimSpace(password)

	if n := utf8.RuneCountInString(name); n < minUsernameLength || n > maxUsernameLength {
		return domain.User{}, ErrUsernameLength
	}
	if n := utf8.RuneCountInString(pass); n < minPasswordLength || n > maxPasswordLength {
		return domain.User{}, ErrPasswordLength
	}
	if pass != strings.TrimSpace(confirmPassword) {
		return domain.User{}, ErrPasswordMismatch
	}

	_, exists, err := s.users.UserByUsername(ctx, domain.Username(name))
	if err != nil {
		return domain.User{}, fmt.Errorf("%w: %v", ErrRegistrationFailed, err)
	}
	if exists {
		return domain.User{}, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pass), s.cost)
	if err != nil {
		return domain.User{}, fmt.Errorf("%w: hash password: %v", ErrRegistrationFailed, err)
	}
	u, err := s.users.CreateUser(ctx, domain.Username(name), string(hash))
	if errors.Is(err, domain.ErrConflict) {
		return domain.User{}, ErrUsernameTaken
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("%w: %v", ErrRegistrationFailed, err)
	}
	return u, nil
}

// Authenticate returns the user whose password matches.
func (s *Service) Authenticate(ctx context.Context, username string, password string) (domain.User, error) {
	u, ok, err := s.users.UserByUsername(ctx, domain.Username(strings.TrimSpace(username)))
	if err != nil {
		return domain.User{}, fmt.Errorf("authenticate: %w", err)
	}
	if !ok {
		return domain.User{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(strings.TrimSpace(password))) != nil {
		return domain.User{}, ErrInvalidCredentials
	}
	return u, nil
}

// Compile-time assertion that Service implements domain.AccountService.
var _ domain.AccountService = (*Service)(nil)
