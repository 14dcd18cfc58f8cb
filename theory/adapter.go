package theory

import (
	"github.com/jsphweid/notation/constants"
	"github.com/jsphweid/notation/model"
)

// Adapter passes already validated values to an Engine at a fixed octave.
// It does no validation and no retries.
type Adapter struct {
	engine Engine
	octave int
}

func NewAdapter(e Engine) *Adapter {
	if e == nil {
		e = Default()
	}
	return &Adapter{engine: e, octave: constants.DefaultOctave}
}

func (a *Adapter) ExpandScale(tonic model.PitchClass, mode model.Mode, direction model.Direction) ([]model.Note, error) {
	return a.engine.Scale(tonic, mode, a.octave, direction)
}

func (a *Adapter) ExpandChord(root model.PitchClass, quality model.ChordQuality, number model.ChordNumber) ([]model.Note, error) {
	return a.engine.Chord(root, quality, number, a.octave)
}

func (a *Adapter) ExpandSpec(spec model.ChordSpec) ([]model.Note, error) {
	return a.ExpandChord(spec.Root, spec.Quality, spec.Number)
}
