package file

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jsphweid/notation/constants"
	"github.com/jsphweid/notation/model"
)

type GrammarError struct {
	Line int
	Msg  string
}

func (e *GrammarError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

type Document struct {
	Blocks []model.NoteBlock
}

func (d *Document) NumNotes() int {
	var total int
	for _, b := range d.Blocks {
		total += len(b.Notes)
	}
	return total
}

type lineReader struct {
	scanner *bufio.Scanner
	line    int
}

func (r *lineReader) next(what string) (string, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", &GrammarError{Line: r.line + 1, Msg: "unexpected end of file, expected " + what}
	}
	r.line++
	return r.scanner.Text(), nil
}

func (r *lineReader) count(what string) (int, error) {
	text, err := r.next(what)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(text)
	if err != nil || n < 0 {
		return 0, &GrammarError{Line: r.line, Msg: fmt.Sprintf("expected %s, got %q", what, text)}
	}
	return n, nil
}

func (r *lineReader) separator() error {
	text, err := r.next("separator")
	if err != nil {
		return err
	}
	if text != constants.Separator {
		return &GrammarError{Line: r.line, Msg: fmt.Sprintf("expected separator %q, got %q", constants.Separator, text)}
	}
	return nil
}

func (r *lineReader) note() (model.WrittenNote, error) {
	text, err := r.next("note")
	if err != nil {
		return model.WrittenNote{}, err
	}
	name, octave, ok := strings.Cut(text, ",")
	if !ok || name == "" {
		return model.WrittenNote{}, &GrammarError{Line: r.line, Msg: fmt.Sprintf("expected note,octave, got %q", text)}
	}
	o, err := strconv.Atoi(octave)
	if err != nil {
		return model.WrittenNote{}, &GrammarError{Line: r.line, Msg: fmt.Sprintf("bad octave in %q", text)}
	}
	return model.WrittenNote{Name: name, Octave: o}, nil
}

// ReadProgression parses a progression file, enforcing the block count in
// the header and the absence of a separator after the last block.
func ReadProgression(in io.Reader) (*Document, error) {
	r := &lineReader{scanner: bufio.NewScanner(in)}

	numChords, err := r.count("chord count")
	if err != nil {
		return nil, err
	}
	if err := r.separator(); err != nil {
		return nil, err
	}

	doc := &Document{Blocks: []model.NoteBlock{}}
	for i := 0; i < numChords; i++ {
		numNotes, err := r.count("note count")
		if err != nil {
			return nil, err
		}
		// Counts come from the file, so slices grow with what is actually read.
		block := model.NoteBlock{Notes: []model.WrittenNote{}}
		for j := 0; j < numNotes; j++ {
			note, err := r.note()
			if err != nil {
				return nil, err
			}
			block.Notes = append(block.Notes, note)
		}
		doc.Blocks = append(doc.Blocks, block)
		if i != numChords-1 {
			if err := r.separator(); err != nil {
				return nil, err
			}
		}
	}

	if r.scanner.Scan() {
		return nil, &GrammarError{Line: r.line + 1, Msg: fmt.Sprintf("unexpected trailing content %q", r.scanner.Text())}
	}
	if err := r.scanner.Err(); err != nil {
		return nil, err
	}
	return doc, nil
}

func ReadProgressionFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &StorageError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	doc, err := ReadProgression(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// ListProgressions summarises every progression file in dir. Files that do
// not parse are skipped and reported together in the returned error.
func ListProgressions(dir string) ([]model.ProgressionOverview, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &StorageError{Op: "read directory", Path: dir, Err: err}
	}

	var res []model.ProgressionOverview
	var errs []error
	for _, entry := range entries {
		filename := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(filename, constants.ProgressionExt) {
			continue
		}
		path := filepath.Join(dir, filename)
		doc, err := ReadProgressionFile(path)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		res = append(res, model.ProgressionOverview{
			Name:     strings.TrimSuffix(filename, constants.ProgressionExt),
			Path:     path,
			Chords:   len(doc.Blocks),
			NumNotes: doc.NumNotes(),
		})
	}
	return res, errors.Join(errs...)
}
