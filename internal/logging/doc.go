// Package logging builds the zap loggers used by the server and the CLI.
package logging
