package session

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"sportreg/internal/domain"
)

const issuer = "sportreg"

// minSecretLength is the shortest accepted HMAC secret, in bytes.
const minSecretLength = 16

var (
	// ErrInvalidToken is returned for tokens that fail verification.
	ErrInvalidToken = errors.New("invalid session token")
	// ErrWeakSecret is returned by New for secrets that are too short.
	ErrWeakSecret = fmt.Errorf("session secret must be at least %d bytes", minSecretLength)
)

type claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// Service signs and checks session tokens.
type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// New returns a service signing with secret; tokens expire after ttl.
func New(secret []byte, ttl time.Duration) (*Service, error) {
	if len(secret) < minSecretLength {
		return nil, ErrWeakSecret
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("session ttl must be positive, got %s", ttl)
	}
	return &Service{secret: append([]byte(nil), secret...), ttl: ttl, now: time.Now}, nil
}

// WithClock returns a copy of s reading time from now.
func (s *Service) WithClock(now func() time.Time) *Service {
	c := *s
	c.now = now
	return &c
}

// Issue returns a signed token for user.
func (s *Service) Issue(user domain.User) (string, error) {
	now := s.now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(user.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		Username: user.Username.String(),
	})
	signed, err := tok.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Verify checks the signature and validity window and returns the principal.
func (s *Service) Verify(token string) (domain.Principal, error) {
	var c claims
	_, err := jwt.ParseWithClaims(token, &c,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return domain.Principal{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return domain.Principal{}, fmt.Errorf("%w: subject %q", ErrInvalidToken, c.Subject)
	}
	return domain.Principal{UserID: id, Username: domain.Username(c.Username)}, nil
}

// Compile-time assertion that Service implements domain.SessionService.
var _ domain.SessionService = (*Service)(nil)
