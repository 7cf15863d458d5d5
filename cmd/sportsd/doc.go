// Command sportsd serves the sports registration web application.
//
// Settings come from SPORTREG_* environment variables; flags given on the
// command line take precedence.
//
//	sportsd --addr :5000 --db /var/lib/sportreg/sportreg.db
package main
