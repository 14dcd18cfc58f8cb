package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/jsphweid/notation/chord"
	"github.com/jsphweid/notation/file"
	"github.com/jsphweid/notation/metrics"
	"github.com/jsphweid/notation/midi"
	"github.com/jsphweid/notation/model"
	"github.com/jsphweid/notation/theory"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memArchive struct {
	mu     sync.Mutex
	bodies map[string]string
}

func (m *memArchive) Put(_ context.Context, name string, _ int, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.bodies == nil {
		m.bodies = map[string]string{}
	}
	m.bodies[name] = body
	return nil
}

func (m *memArchive) Get(_ context.Context, name string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	body, ok := m.bodies[name]
	if !ok {
		return "", errors.New("not found")
	}
	return body, nil
}

func newStore(t *testing.T) *Store {
	m, err := metrics.New()
	require.NoError(t, err)
	return &Store{
		Dir:     filepath.Join(t.TempDir(), "progressions"),
		Expand:  theory.NewAdapter(nil).ExpandSpec,
		Metrics: m,
	}
}

func sample() *chord.Progression {
	return chord.New("test",
		model.ChordSpec{Root: model.C, Quality: model.Major, Number: model.Triad},
		model.ChordSpec{Root: model.A, Quality: model.Minor, Number: model.Seventh},
	)
}

const sampleText = "2\n-\n3\nC,4\nE,4\nG,4\n-\n4\nA,4\nC,5\nE,5\nG,5\n"

func TestSaveProgressionWithMirrors(t *testing.T) {
	s := newStore(t)
	s.Midi = true
	archive := &memArchive{}
	s.Archive = archive

	path, err := s.SaveProgression(context.Background(), sample())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(s.Dir, "test.txt"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, sampleText, string(data))
	assert.Equal(t, sampleText, archive.bodies["test"])

	keys, err := midi.ReadNotes(filepath.Join(s.Dir, "test.mid"))
	require.NoError(t, err)
	assert.Len(t, keys, 7)

	assert.Equal(t, 1.0, testutil.ToFloat64(s.Metrics.FilesWritten.WithLabelValues("progression")))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.Metrics.FilesWritten.WithLabelValues("midi")))
}

func TestSaveProgressionExpandsEachChordOnce(t *testing.T) {
	s := newStore(t)
	s.Midi = true
	archive := &memArchive{}
	s.Archive = archive

	// Each call shifts the octave, so a second expansion would show up as
	// a mismatch between the file and its mirrors.
	calls := 0
	s.Expand = func(spec model.ChordSpec) ([]model.Note, error) {
		calls++
		return []model.Note{{PitchClass: spec.Root, Octave: 3 + calls}}, nil
	}

	path, err := s.SaveProgression(context.Background(), sample())
	require.NoError(t, err)
	assert.Equal(t, 2, calls)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(data), archive.bodies["test"])

	keys, err := midi.ReadNotes(filepath.Join(s.Dir, "test.mid"))
	require.NoError(t, err)
	assert.Len(t, keys, 2)
}

func TestSaveProgressionRejectsBadName(t *testing.T) {
	s := newStore(t)
	_, err := s.SaveProgression(context.Background(), chord.New("../escape"))
	assert.ErrorIs(t, err, file.ErrInvalidName)
}

func TestSaveNotes(t *testing.T) {
	s := newStore(t)
	notes, err := theory.NewAdapter(nil).ExpandChord(model.C, model.Major, model.Triad)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "scale.txt")
	require.NoError(t, s.SaveNotes(path, "C Major Triad", notes))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "C,4\nE,4\nG,4\n", string(data))
	assert.NoFileExists(t, filepath.Join(filepath.Dir(path), "scale.mid"))
}

func TestLoad(t *testing.T) {
	s := newStore(t)
	_, err := s.SaveProgression(context.Background(), sample())
	require.NoError(t, err)

	body, doc, err := s.Load("test")
	require.NoError(t, err)
	assert.Equal(t, sampleText, body)
	assert.Len(t, doc.Blocks, 2)

	_, _, err = s.Load("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadRejectsCorruptFile(t *testing.T) {
	s := newStore(t)
	require.NoError(t, file.WriteRaw("2\n-\n", filepath.Join(s.Dir, "broken.txt")))

	_, _, err := s.Load("broken")
	var gerr *file.GrammarError
	assert.ErrorAs(t, err, &gerr)
}

func TestRestore(t *testing.T) {
	s := newStore(t)
	_, err := s.Restore(context.Background(), "test")
	assert.ErrorIs(t, err, ErrNoArchive)

	archive := &memArchive{}
	require.NoError(t, archive.Put(context.Background(), "test", 2, sampleText))
	require.NoError(t, archive.Put(context.Background(), "junk", 1, "not a progression"))
	s.Archive = archive

	path, err := s.Restore(context.Background(), "test")
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, sampleText, string(data))

	_, err = s.Restore(context.Background(), "junk")
	assert.ErrorIs(t, err, ErrArchiveCorrupt)
	assert.NoFileExists(t, filepath.Join(s.Dir, "junk.txt"))
}

func TestConcurrentSavesSamePath(t *testing.T) {
	s := newStore(t)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.SaveProgression(context.Background(), sample())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	data, err := os.ReadFile(filepath.Join(s.Dir, "test.txt"))
	require.NoError(t, err)
	assert.Equal(t, sampleText, string(data))
}
