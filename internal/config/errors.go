package config

import "fmt"

// ParseError indicates a config file with malformed syntax.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing config file %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// TypeError indicates a value that cannot be coerced to the declared
// type of its field.
type TypeError struct {
	Field string
	Value string
	Err   error
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("config field %q: cannot coerce %q: %v", e.Field, e.Value, e.Err)
}

func (e *TypeError) Unwrap() error { return e.Err }

// IOError indicates a config file that exists but cannot be read.
// A file that does not exist is not an error and is skipped silently.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("reading config file %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
