// Package store provides file-based persistence for the sportreg CLI.
//
// The CLI is a short-lived process; the cookies a server hands it at login
// are kept in a JSON file under the user's home directory so the next
// invocation is still signed in. Writes go through a temp file and rename.
// Server-side persistence lives in the sqlite subpackage.
package store
