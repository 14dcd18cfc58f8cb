package token

import (
	"errors"
	"fmt"
)

// Category identifies which vocabulary rejected a token.
type Category uint8

const (
	Tonic Category = iota
	Mode
	Quality
	ChordNumber
)

var Categories = []Category{Tonic, Mode, Quality, ChordNumber}

var (
	ErrTonic       = errors.New("invalid tonic")
	ErrMode        = errors.New("invalid mode")
	ErrQuality     = errors.New("invalid quality")
	ErrChordNumber = errors.New("invalid extension")
)

func (c Category) Err() error {
	switch c {
	case Tonic:
		return ErrTonic
	case Mode:
		return ErrMode
	case Quality:
		return ErrQuality
	case ChordNumber:
		return ErrChordNumber
	}
	return fmt.Errorf("unknown token category %d", uint8(c))
}

func (c Category) String() string {
	switch c {
	case Tonic:
		return "TonicError"
	case Mode:
		return "ModeError"
	case Quality:
		return "QualityError"
	case ChordNumber:
		return "ChordNumberError"
	}
	return fmt.Sprintf("Category(%d)", uint8(c))
}

// Field is the name used for the category in prompts and HTTP payloads.
func (c Category) Field() string {
	switch c {
	case Tonic:
		return "tonic"
	case Mode:
		return "mode"
	case Quality:
		return "quality"
	case ChordNumber:
		return "extension"
	}
	return "unknown"
}

type EntryError struct {
	Category Category
	Token    string
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("%v: %q", e.Category.Err(), e.Token)
}

func (e *EntryError) Unwrap() error {
	return e.Category.Err()
}

// AsEntryError unwraps err into an *EntryError if it carries one.
func AsEntryError(err error) (*EntryError, bool) {
	var entryErr *EntryError
	if errors.As(err, &entryErr) {
		return entryErr, true
	}
	return nil, false
}
