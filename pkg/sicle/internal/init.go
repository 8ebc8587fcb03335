// Package internal holds the logging and SDL setup shared by the sicle
// packages. Types and functions in this package are not part of the public API.
package internal
