package midi

import (
	"path/filepath"
	"testing"

	"github.com/jsphweid/notation/model"
	"github.com/jsphweid/notation/theory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	k, err := Key(model.Note{PitchClass: model.C, Octave: 4})
	require.NoError(t, err)
	assert.Equal(t, uint8(60), k)

	k, err = Key(model.Note{PitchClass: model.A, Octave: 4})
	require.NoError(t, err)
	assert.Equal(t, uint8(69), k)

	_, err = Key(model.Note{PitchClass: model.B, Octave: 10})
	assert.Error(t, err)
	_, err = Key(model.Note{PitchClass: model.C, Octave: -2})
	assert.Error(t, err)
}

func TestWriteNotesRoundTrip(t *testing.T) {
	notes, err := theory.NewAdapter(nil).ExpandChord(model.C, model.Major, model.Triad)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "chord.mid")
	require.NoError(t, WriteNotes(path, "C major", notes))

	s, err := ReadMidiFile(path)
	require.NoError(t, err)
	assert.Equal(t, []uint8{60, 64, 67}, NoteOnKeys(s))
}

func TestWriteProgressionRoundTrip(t *testing.T) {
	a := theory.NewAdapter(nil)
	cMajor, err := a.ExpandChord(model.C, model.Major, model.Triad)
	require.NoError(t, err)
	aMinor7, err := a.ExpandChord(model.A, model.Minor, model.Seventh)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "nested", "test.mid")
	require.NoError(t, WriteProgression(path, "test", [][]model.Note{cMajor, aMinor7}))

	keys, err := ReadNotes(path)
	require.NoError(t, err)
	assert.Equal(t, []uint8{60, 64, 67, 69, 72, 76, 79}, keys)
}

func TestReadMidiFileMissing(t *testing.T) {
	_, err := ReadMidiFile(filepath.Join(t.TempDir(), "missing.mid"))
	assert.Error(t, err)
}

func TestPathFor(t *testing.T) {
	assert.Equal(t, "progressions/test.mid", PathFor("progressions/test.txt"))
	assert.Equal(t, "scale.mid", PathFor("scale"))
}
