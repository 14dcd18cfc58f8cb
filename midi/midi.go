package midi

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jsphweid/notation/constants"
	"github.com/jsphweid/notation/file"
	"github.com/jsphweid/notation/model"
	"github.com/jsphweid/notation/util"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const (
	channel  = 0
	velocity = 100
	tempoBPM = 120
)

// Key maps a note onto its MIDI key number, C4 = 60.
func Key(n model.Note) (uint8, error) {
	k := (n.Octave+1)*model.NumPitchClasses + int(n.PitchClass)
	if k < 0 || k > 127 {
		return 0, fmt.Errorf("note %v%d is outside the MIDI range", n, n.Octave)
	}
	return uint8(k), nil
}

func keys(notes []model.Note) ([]uint8, error) {
	res := make([]uint8, 0, len(notes))
	for _, n := range notes {
		k, err := Key(n)
		if err != nil {
			return nil, err
		}
		res = append(res, k)
	}
	return res, nil
}

func newSMF(name string) (*smf.SMF, smf.Track) {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(constants.TicksPerQuarter)
	var tr smf.Track
	if name != "" {
		tr.Add(0, smf.MetaTrackSequenceName(name))
	}
	tr.Add(0, smf.MetaTempo(tempoBPM))
	return s, tr
}

// NotesSMF plays the notes one after another, a quarter note each.
func NotesSMF(name string, notes []model.Note) (*smf.SMF, error) {
	ks, err := keys(notes)
	if err != nil {
		return nil, err
	}
	s, tr := newSMF(name)
	for _, k := range ks {
		tr.Add(0, midi.NoteOn(channel, k, velocity))
		tr.Add(constants.TicksPerQuarter, midi.NoteOff(channel, k))
	}
	tr.Close(0)
	if err := s.Add(tr); err != nil {
		return nil, err
	}
	return s, nil
}

// ProgressionSMF sounds each block as a whole-note chord, in order.
func ProgressionSMF(name string, blocks [][]model.Note) (*smf.SMF, error) {
	s, tr := newSMF(name)
	for _, notes := range blocks {
		ks, err := keys(notes)
		if err != nil {
			return nil, err
		}
		for _, k := range ks {
			tr.Add(0, midi.NoteOn(channel, k, velocity))
		}
		for i, k := range ks {
			var delta uint32
			if i == 0 {
				delta = 4 * constants.TicksPerQuarter
			}
			tr.Add(delta, midi.NoteOff(channel, k))
		}
	}
	tr.Close(0)
	if err := s.Add(tr); err != nil {
		return nil, err
	}
	return s, nil
}

func write(s *smf.SMF, path string) (err error) {
	if err := util.EnsureParentDir(path); err != nil {
		return &file.StorageError{Op: "create directory for", Path: path, Err: err}
	}
	f, err := os.Create(path)
	if err != nil {
		return &file.StorageError{Op: "create", Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &file.StorageError{Op: "close", Path: path, Err: cerr}
		}
	}()
	if _, err := s.WriteTo(f); err != nil {
		return &file.StorageError{Op: "write", Path: path, Err: err}
	}
	return nil
}

func WriteNotes(path string, name string, notes []model.Note) error {
	s, err := NotesSMF(name, notes)
	if err != nil {
		return err
	}
	return write(s, path)
}

func WriteProgression(path string, name string, blocks [][]model.Note) error {
	s, err := ProgressionSMF(name, blocks)
	if err != nil {
		return err
	}
	return write(s, path)
}

// PathFor swaps the extension of a text output path for .mid.
func PathFor(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + constants.MidiExt
}

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF
	var err error

	// gomidi can panic on malformed input
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)

	if err != nil {
		errText := fmt.Sprintf("Error reading midi file... %s", err.Error())
		return &blank, errors.New(errText)
	}
	res, err := smf.ReadFrom(bytes.NewReader(dat))

	if err != nil {
		errText := fmt.Sprintf("Error parsing midi file... %s", err.Error())
		return &blank, errors.New(errText)
	}

	return res, nil
}

// NoteOnKeys returns the key of every sounding note-on event, track by track.
func NoteOnKeys(s *smf.SMF) []uint8 {
	var res []uint8
	for _, track := range s.Tracks {
		for _, event := range track {
			var ch, key, vel uint8
			if event.Message.GetNoteOn(&ch, &key, &vel) && vel > 0 {
				res = append(res, key)
			}
		}
	}
	return res
}

// ReadNotes returns the note-on keys of a .mid file in playing order.
func ReadNotes(path string) ([]uint8, error) {
	s, err := ReadMidiFile(path)
	if err != nil {
		return nil, err
	}
	return NoteOnKeys(s), nil
}
