package main

import (
	"fmt"
)

// SourceOpenError is returned when a source cannot be opened.
// The source is skipped, and the remaining sources are still processed.
type SourceOpenError struct {
	Name string
	Err  error
}

func (e *SourceOpenError) Error() string {
	return fmt.Sprintf("%s: %v", e.Name, e.Err)
}

func (e *SourceOpenError) Unwrap() error {
	return e.Err
}

// DecodeError reports a byte sequence that does not encode a character in UTF-8.
type DecodeError struct {
	Seq []byte
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid utf-8 sequence: % x", e.Seq)
}
