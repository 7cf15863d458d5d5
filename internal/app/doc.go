// Package app wires application dependencies for the two binaries.
//
// Wire builds the sportsd dependency graph (SQLite store, catalog, services,
// HTTP server) from ServerConfig. App is the sportreg client: an API client
// whose cookie jar is restored from and persisted to the session store, plus
// the page flows that drive the logout link and the registration form
// through the page model.
package app
