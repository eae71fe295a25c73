// Package output renders rename results for humans and machines.
//
// The format is either requested explicitly or detected from the
// destination: rich terminal output when writing to a capable tty,
// plain text when piped, JSON on request.
package output
