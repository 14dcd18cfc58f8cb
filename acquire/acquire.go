// Package acquire turns raw tokens into validated values, either by
// re-prompting until the input is valid (console) or in a single strict
// attempt (HTTP, batch commands).
package acquire

import (
	"github.com/jsphweid/notation/model"
	"github.com/jsphweid/notation/token"
	"go.uber.org/zap"
)

// Prompter supplies one raw token per call. An error means no more input
// will ever arrive (closed stream).
type Prompter interface {
	Prompt(label string) (string, error)
}

type Field[T any] struct {
	Label string
	Parse func(string) (T, error)
}

var (
	Tonic       = Field[model.PitchClass]{Label: "Enter the root note: ", Parse: token.ParseTonic}
	Mode        = Field[model.Mode]{Label: "Enter the Mode of the Scale: ", Parse: token.ParseMode}
	Quality     = Field[model.ChordQuality]{Label: "Enter Chord Quality (major, minor, diminished): ", Parse: token.ParseQuality}
	ChordNumber = Field[model.ChordNumber]{Label: "Enter Extension of the chord (triad, seventh, eleventh): ", Parse: token.ParseChordNumber}
)

const DirectionLabel = "Enter the direction of the scale (asc/desc): "

// Interactive prompts until f accepts the input. onInvalid sees every
// rejection; there is no attempt limit.
func Interactive[T any](p Prompter, f Field[T], onInvalid func(error)) (T, error) {
	for {
		raw, err := p.Prompt(f.Label)
		if err != nil {
			var zero T
			return zero, err
		}
		v, err := f.Parse(raw)
		if err == nil {
			return v, nil
		}
		if onInvalid != nil {
			onInvalid(err)
		}
	}
}

// Strict runs the validator exactly once; a rejection is returned as the
// validator's *token.EntryError.
func Strict[T any](raw string, f Field[T]) (T, error) {
	return f.Parse(raw)
}

// Direction is deliberately tolerant, unlike the other vocabularies: an
// unrecognised token becomes Ascending and is only logged.
func Direction(raw string, logger *zap.Logger) model.Direction {
	d, ok := token.ParseDirection(raw)
	if !ok {
		logger.Warn("invalid direction, defaulting to ascending", zap.String("token", raw))
	}
	return d
}

// StrictChord validates root, quality and extension in that order and stops
// at the first rejection.
func StrictChord(root, quality, extension string) (model.ChordSpec, error) {
	var spec model.ChordSpec
	var err error
	if spec.Root, err = Strict(root, Tonic); err != nil {
		return spec, err
	}
	if spec.Quality, err = Strict(quality, Quality); err != nil {
		return spec, err
	}
	if spec.Number, err = Strict(extension, ChordNumber); err != nil {
		return spec, err
	}
	return spec, nil
}

func InteractiveChord(p Prompter, onInvalid func(error)) (model.ChordSpec, error) {
	var spec model.ChordSpec
	var err error
	if spec.Root, err = Interactive(p, Tonic, onInvalid); err != nil {
		return spec, err
	}
	if spec.Quality, err = Interactive(p, Quality, onInvalid); err != nil {
		return spec, err
	}
	if spec.Number, err = Interactive(p, ChordNumber, onInvalid); err != nil {
		return spec, err
	}
	return spec, nil
}
