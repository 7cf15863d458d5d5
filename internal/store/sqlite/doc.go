// Package sqlite persists accounts and sport registrations in a single
// SQLite file using the pure-Go modernc.org/sqlite driver.
//
// Open applies the embedded migrations before returning, so callers never
// see a store with an outdated schema.
package sqlite
