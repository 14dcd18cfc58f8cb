// Package theory holds the music-theory engine behind the Engine interface
// and the Adapter the rest of the module calls.
//
// The bundled engine is table driven: scales rotate the major-scale step
// pattern by mode, chords stack intervals above the root. Octaves count up
// from the requested start octave, wrapping after B.
package theory

import (
	"fmt"

	"github.com/jsphweid/notation/model"
)

type Engine interface {
	Scale(tonic model.PitchClass, mode model.Mode, octave int, direction model.Direction) ([]model.Note, error)
	Chord(root model.PitchClass, quality model.ChordQuality, number model.ChordNumber, octave int) ([]model.Note, error)
}

type EngineError struct {
	Op  string
	Msg string
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("theory engine %s: %s", e.Op, e.Msg)
}

// Whole and half steps of the Ionian mode; every other mode is a rotation.
var majorSteps = [7]int{2, 2, 1, 2, 2, 2, 1}

var triads = map[model.ChordQuality][]int{
	model.Major:          {0, 4, 7},
	model.Dominant:       {0, 4, 7},
	model.Minor:          {0, 3, 7},
	model.Diminished:     {0, 3, 6},
	model.HalfDiminished: {0, 3, 6},
	model.Augmented:      {0, 4, 8},
	model.Suspended2:     {0, 2, 7},
	model.Suspended4:     {0, 5, 7},
}

var sevenths = map[model.ChordQuality]int{
	model.Major:          11,
	model.Dominant:       10,
	model.Minor:          10,
	model.Diminished:     9,
	model.HalfDiminished: 10,
	model.Augmented:      10,
	model.Suspended2:     10,
	model.Suspended4:     10,
}

const (
	majorSeventh = 11
	ninth        = 14
	eleventh     = 17
	thirteenth   = 21
)

type tableEngine struct{}

func Default() Engine {
	return tableEngine{}
}

func (tableEngine) Scale(tonic model.PitchClass, mode model.Mode, octave int, direction model.Direction) ([]model.Note, error) {
	if !tonic.Valid() || !mode.Valid() || !direction.Valid() {
		return nil, &EngineError{Op: "scale", Msg: fmt.Sprintf("unsupported scale %v %v %v", tonic, mode, direction)}
	}

	notes := make([]model.Note, 0, len(majorSteps))
	abs := absolute(tonic, octave)
	for i := range majorSteps {
		notes = append(notes, fromAbsolute(abs))
		abs += majorSteps[(int(mode)+i)%len(majorSteps)]
	}

	if direction == model.Descending {
		for i, j := 0, len(notes)-1; i < j; i, j = i+1, j-1 {
			notes[i], notes[j] = notes[j], notes[i]
		}
	}
	return notes, nil
}

func (tableEngine) Chord(root model.PitchClass, quality model.ChordQuality, number model.ChordNumber, octave int) ([]model.Note, error) {
	if !root.Valid() || !quality.Valid() || !number.Valid() {
		return nil, &EngineError{Op: "chord", Msg: fmt.Sprintf("unsupported chord %v %v %v", root, quality, number)}
	}

	intervals := append([]int(nil), triads[quality]...)
	switch number {
	case model.Seventh:
		intervals = append(intervals, sevenths[quality])
	case model.MajorSeventh:
		intervals = append(intervals, majorSeventh)
	case model.Ninth:
		intervals = append(intervals, sevenths[quality], ninth)
	case model.Eleventh:
		intervals = append(intervals, sevenths[quality], ninth, eleventh)
	case model.Thirteenth:
		intervals = append(intervals, sevenths[quality], ninth, eleventh, thirteenth)
	}

	base := absolute(root, octave)
	notes := make([]model.Note, 0, len(intervals))
	for _, interval := range intervals {
		notes = append(notes, fromAbsolute(base+interval))
	}
	return notes, nil
}

func absolute(pc model.PitchClass, octave int) int {
	return octave*model.NumPitchClasses + int(pc)
}

func fromAbsolute(abs int) model.Note {
	return model.Note{
		PitchClass: model.PitchClass(abs % model.NumPitchClasses),
		Octave:     abs / model.NumPitchClasses,
	}
}
