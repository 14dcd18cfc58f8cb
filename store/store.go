// Package store persists scales and progressions for both the console and
// the HTTP surface. Writes to one destination path never overlap.
package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/jsphweid/notation/chord"
	"github.com/jsphweid/notation/file"
	"github.com/jsphweid/notation/metrics"
	"github.com/jsphweid/notation/midi"
	"github.com/jsphweid/notation/model"
	"go.uber.org/zap"
)

var (
	ErrNotFound       = errors.New("progression not found")
	ErrNoArchive      = errors.New("no progression archive configured")
	ErrArchiveCorrupt = errors.New("archived progression is not a valid progression file")
)

// Archive is the remote mirror of progression files (db.Archive).
type Archive interface {
	Put(ctx context.Context, name string, count int, body string) error
	Get(ctx context.Context, name string) (string, error)
}

type Store struct {
	Dir     string
	Expand  file.Expander
	Midi    bool
	Archive Archive
	Metrics *metrics.Metrics
	Logger  *zap.Logger

	locks file.Locks
}

// SaveNotes writes a scale or chord to path, plus a .mid next to it when
// MIDI output is on.
func (s *Store) SaveNotes(path string, name string, notes []model.Note) error {
	unlock := s.locks.Lock(path)
	defer unlock()

	if err := file.WriteNotes(notes, path); err != nil {
		return err
	}
	s.Metrics.FileWritten("scale")
	s.log().Debug("notes written", zap.String("path", path), zap.Int("notes", len(notes)))

	if s.Midi {
		midiPath := midi.PathFor(path)
		if err := midi.WriteNotes(midiPath, name, notes); err != nil {
			return err
		}
		s.Metrics.FileWritten("midi")
	}
	return nil
}

// SaveProgression writes <Dir>/<name>.txt and mirrors it to MIDI and the
// archive when those are configured. It returns the text file path.
func (s *Store) SaveProgression(ctx context.Context, p *chord.Progression) (string, error) {
	path, err := file.ProgressionPath(s.Dir, p.Name())
	if err != nil {
		return "", err
	}

	unlock := s.locks.Lock(path)
	defer unlock()

	// One expansion feeds the text file and both mirrors, so they always
	// agree and the theory engine runs once per chord.
	blocks, err := file.ExpandAll(p, s.Expand)
	if err != nil {
		return path, err
	}
	var buf bytes.Buffer
	if err := file.EncodeBlocks(&buf, blocks); err != nil {
		return path, err
	}
	body := buf.String()

	if err := file.WriteRaw(body, path); err != nil {
		return path, err
	}
	s.Metrics.FileWritten("progression")
	s.log().Info("progression written", zap.String("name", p.Name()), zap.String("path", path), zap.Int("chords", p.Len()))

	if s.Midi {
		if err := midi.WriteProgression(midi.PathFor(path), p.Name(), blocks); err != nil {
			return path, err
		}
		s.Metrics.FileWritten("midi")
	}
	if s.Archive != nil {
		if err := s.Archive.Put(ctx, p.Name(), len(blocks), body); err != nil {
			return path, err
		}
		s.log().Info("progression archived", zap.String("name", p.Name()))
	}
	return path, nil
}

// Load returns the stored text of a progression after checking its grammar.
func (s *Store) Load(name string) (string, *file.Document, error) {
	path, err := file.ProgressionPath(s.Dir, name)
	if err != nil {
		return "", nil, err
	}

	unlock := s.locks.Lock(path)
	defer unlock()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err != nil {
		return "", nil, &file.StorageError{Op: "read", Path: path, Err: err}
	}
	doc, err := file.ReadProgression(bytes.NewReader(data))
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", path, err)
	}
	return string(data), doc, nil
}

// Restore copies an archived progression into Dir, refusing bodies that do
// not follow the progression grammar.
func (s *Store) Restore(ctx context.Context, name string) (string, error) {
	if s.Archive == nil {
		return "", ErrNoArchive
	}
	path, err := file.ProgressionPath(s.Dir, name)
	if err != nil {
		return "", err
	}
	body, err := s.Archive.Get(ctx, name)
	if err != nil {
		return "", err
	}
	if _, err := file.ReadProgression(strings.NewReader(body)); err != nil {
		return "", fmt.Errorf("%w: %v", ErrArchiveCorrupt, err)
	}

	unlock := s.locks.Lock(path)
	defer unlock()

	if err := file.WriteRaw(body, path); err != nil {
		return path, err
	}
	s.Metrics.FileWritten("progression")
	return path, nil
}

func (s *Store) log() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}
