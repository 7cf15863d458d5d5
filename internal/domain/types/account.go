package types

import (
	"fmt"
	"time"
)

// User is a registered account allowed to sign in.
type User struct {
	ID           int64
	Username     Username
	PasswordHash string
	CreatedAt    time.Time
}

// Registrant is a student signed up for a sport.
type Registrant struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Year      string    `json:"year"`
	Sport     string    `json:"sport"`
	CreatedAt time.Time `json:"created_at"`
}

func (r Registrant) String() string {
	return fmt.Sprintf("%s of %s: %s", r.Name, r.Year, r.Sport)
}

// ClientCookie is a cookie name/value pair the CLI keeps between runs.
type ClientCookie struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ClientSession holds the cookies the CLI received from one server.
type ClientSession struct {
	ServerURL string         `json:"server_url"`
	Cookies   []ClientCookie `json:"cookies"`
	SavedAt   time.Time      `json:"saved_at"`
}
