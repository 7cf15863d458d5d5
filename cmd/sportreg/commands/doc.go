// Package commands defines the sportreg CLI and wires dependencies for subcommands.
//
// Commands
//
//   - signup        Create an account
//   - login         Sign in and keep the session cookie
//   - logout        Click the dashboard's logout link
//   - enroll        Submit the sports registration form
//   - registrants   List everyone registered
//
// # Implementation
//
// The root command builds the client app and restores the saved session
// cookie before any subcommand runs, and saves the cookie jar again after.
// logout and enroll run the same page flow as the browser scripts: the
// control fires, the server's notification is rendered into the flash
// container (printed here as "[status] message"), and the command waits for
// the page to settle, including a delayed redirect.
package commands
