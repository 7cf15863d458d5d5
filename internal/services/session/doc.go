// Package session issues and verifies the signed tokens carried in the
// browser's session cookie.
//
// Tokens are HS256 JWTs whose subject is the user id. They are stateless:
// signing out only clears the cookie.
package session
