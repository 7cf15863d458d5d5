// Package api provides an HTTP implementation of the domain.APIClient
// interface used by the sportreg CLI and page handlers.
//
// Supported operations:
//   - Creating an account (POST /register).
//   - Signing in and out (POST /login, GET /logout).
//   - Registering a student for a sport (POST /register_sport).
//   - Listing registrants (GET /api/registrants).
//
// Form bodies are sent as multipart/form-data, like a browser FormData. Every
// endpoint answers with a {status, message} JSON notification whatever the
// HTTP status, so the notification is decoded from 4xx replies too; a body
// that is not JSON is reported as domain.ErrMalformedResponse. Session
// cookies are kept by the http.Client's cookie jar.
package api
