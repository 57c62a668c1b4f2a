// Copyright 2020 Aleksandr Demakin. All rights reserved.

package floatbits

import "fmt"

// FormatError is returned when a bit string or a format is malformed.
// Pos is a 1-based position of the offending character, or 0,
// if the error does not point to a single character.
type FormatError struct {
	Pos int
	Msg string
}

func newFormatError(msg string, pos int) *FormatError {
	return &FormatError{Msg: msg, Pos: pos}
}

func (fe *FormatError) Error() string {
	if fe.Pos > 0 {
		return fe.Msg + fmt.Sprintf(" at pos %d", fe.Pos)
	}
	return fe.Msg
}

// InternalError reports a kind the value resolver does not know.
// It is a programming error and is only ever used as a panic value.
type InternalError struct {
	Kind Kind
}

func (ie *InternalError) Error() string {
	return fmt.Sprintf("unknown float kind %d", int(ie.Kind))
}
