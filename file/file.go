// Package file reads and writes the plain-text note and progression formats.
//
// A note line is `{pitch},{octave}`. A progression file is the chord count,
// a `-` line, then one block per chord: the block's note count followed by
// its note lines, with `-` lines between blocks but not after the last one.
package file

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jsphweid/notation/chord"
	"github.com/jsphweid/notation/constants"
	"github.com/jsphweid/notation/model"
	"github.com/jsphweid/notation/util"
)

var ErrInvalidName = errors.New("invalid progression name")

// StorageError reports a failed create/write/close of a destination file.
type StorageError struct {
	Op   string
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("could not %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Expander turns one chord into its notes, normally theory.Adapter.ExpandSpec.
type Expander func(model.ChordSpec) ([]model.Note, error)

func EncodeNotes(w io.Writer, notes []model.Note) error {
	for _, note := range notes {
		if _, err := fmt.Fprintf(w, "%v,%v\n", note, note.Octave); err != nil {
			return err
		}
	}
	return nil
}

// ExpandAll expands every chord of p in order. Nothing is written if any
// chord fails to expand.
func ExpandAll(p *chord.Progression, expand Expander) ([][]model.Note, error) {
	entries := p.Entries()
	blocks := make([][]model.Note, 0, len(entries))
	for i, entry := range entries {
		notes, err := expand(entry)
		if err != nil {
			return nil, fmt.Errorf("could not expand chord %d (%v): %w", i+1, entry, err)
		}
		blocks = append(blocks, notes)
	}
	return blocks, nil
}

func EncodeBlocks(w io.Writer, blocks [][]model.Note) error {
	if _, err := fmt.Fprintf(w, "%d\n%s\n", len(blocks), constants.Separator); err != nil {
		return err
	}
	for i, notes := range blocks {
		if _, err := fmt.Fprintf(w, "%d\n", len(notes)); err != nil {
			return err
		}
		if err := EncodeNotes(w, notes); err != nil {
			return err
		}
		if i != len(blocks)-1 {
			if _, err := fmt.Fprintln(w, constants.Separator); err != nil {
				return err
			}
		}
	}
	return nil
}

func EncodeProgression(w io.Writer, p *chord.Progression, expand Expander) error {
	blocks, err := ExpandAll(p, expand)
	if err != nil {
		return err
	}
	return EncodeBlocks(w, blocks)
}

// WriteNotes truncates path and writes one line per note. If a write fails
// midway the partially written file is left in place.
func WriteNotes(notes []model.Note, path string) error {
	return writeFile(path, func(w io.Writer) error {
		return EncodeNotes(w, notes)
	})
}

// WriteProgression expands every chord, then truncates <dir>/<name>.txt and
// writes the progression grammar to it. It returns the destination path.
// As with WriteNotes, a failure during the write leaves a partial file.
func WriteProgression(p *chord.Progression, dir string, expand Expander) (string, error) {
	path, err := ProgressionPath(dir, p.Name())
	if err != nil {
		return "", err
	}
	blocks, err := ExpandAll(p, expand)
	if err != nil {
		return path, err
	}
	return path, WriteBlocks(blocks, path)
}

func WriteBlocks(blocks [][]model.Note, path string) error {
	return writeFile(path, func(w io.Writer) error {
		return EncodeBlocks(w, blocks)
	})
}

// WriteRaw writes an already encoded document, used when restoring archived
// progressions.
func WriteRaw(body string, path string) error {
	return writeFile(path, func(w io.Writer) error {
		_, err := io.WriteString(w, body)
		return err
	})
}

// writeFile holds a single truncating handle for the whole write and closes
// it on every path.
func writeFile(path string, encode func(w io.Writer) error) (err error) {
	if err := util.EnsureParentDir(path); err != nil {
		return &StorageError{Op: "create directory for", Path: path, Err: err}
	}
	f, err := os.Create(path)
	if err != nil {
		return &StorageError{Op: "create", Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &StorageError{Op: "close", Path: path, Err: cerr}
		}
	}()

	bw := bufio.NewWriter(f)
	if err := encode(bw); err != nil {
		return &StorageError{Op: "write", Path: path, Err: err}
	}
	if err := bw.Flush(); err != nil {
		return &StorageError{Op: "write", Path: path, Err: err}
	}
	return nil
}

// maxFileNameBytes is the common filesystem limit on one path component.
const maxFileNameBytes = 255

// ValidateName accepts names that map to a single file inside the
// progressions directory: no separators, no dot entries, no control
// characters and short enough for <name>.txt to be a legal file name.
func ValidateName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, filepath.Separator) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if !utf8.ValidString(name) || strings.IndexFunc(name, unicode.IsControl) >= 0 {
		return fmt.Errorf("%w: %q contains control or invalid characters", ErrInvalidName, name)
	}
	if len(name)+len(constants.ProgressionExt) > maxFileNameBytes {
		return fmt.Errorf("%w: longer than %d bytes", ErrInvalidName, maxFileNameBytes-len(constants.ProgressionExt))
	}
	return nil
}

func ProgressionPath(dir string, name string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}
	return filepath.Join(dir, name+constants.ProgressionExt), nil
}
