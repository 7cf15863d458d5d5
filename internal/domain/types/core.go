package types

// Username identifies an account on the server.
type Username string

// String returns the string form of the username.
func (u Username) String() string { return string(u) }

// Principal is the authenticated user attached to a request.
type Principal struct {
	UserID   int64
	Username Username
}
