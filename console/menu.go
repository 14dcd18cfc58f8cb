// Package console is the interactive text menu. Every prompt retries until
// the input is valid; the menu ends on option 5 or when input runs out.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jsphweid/notation/acquire"
	"github.com/jsphweid/notation/chord"
	"github.com/jsphweid/notation/file"
	"github.com/jsphweid/notation/model"
	"github.com/jsphweid/notation/store"
	"github.com/jsphweid/notation/theory"
	"github.com/jsphweid/notation/token"
	"go.uber.org/zap"
)

const (
	choiceLabel     = ":"
	nameLabel       = "Enter a name for the progression: "
	chordCountLabel = "Enter the number of chords in the progression: "
	pauseLabel      = "Press Enter to continue..."
)

type Menu struct {
	prompter  acquire.Prompter
	render    *Renderer
	out       io.Writer
	adapter   *theory.Adapter
	store     *store.Store
	scalePath string
	logger    *zap.Logger
}

func NewMenu(in io.Reader, out io.Writer, adapter *theory.Adapter, st *store.Store, scalePath string, logger *zap.Logger) *Menu {
	return &Menu{
		prompter:  NewPrompter(in, out),
		render:    NewRenderer(out),
		out:       out,
		adapter:   adapter,
		store:     st,
		scalePath: scalePath,
		logger:    logger,
	}
}

// Run shows the menu until the user exits. Running out of input is a
// normal exit, not an error.
func (m *Menu) Run(ctx context.Context) error {
	m.render.Banner()
	for {
		m.options()
		choice, err := m.prompter.Prompt(choiceLabel)
		if err != nil {
			return ignoreEOF(err)
		}

		switch strings.TrimSpace(choice) {
		case "1":
			err = m.viewScale()
		case "2":
			err = m.viewChord()
		case "3":
			err = m.createProgression(ctx)
		case "4":
			WriteHelp(m.out)
		case "5":
			return nil
		default:
			m.render.Error("Invalid Input, Try again")
			continue
		}

		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			m.logger.Error("menu action failed", zap.String("choice", choice), zap.Error(err))
			m.render.Error(err.Error())
		}
		if _, err := m.prompter.Prompt(pauseLabel); err != nil {
			return ignoreEOF(err)
		}
	}
}

func (m *Menu) options() {
	m.render.Line("Choose from one of the following options: \n")
	m.render.Line("  1. view notes in a scale")
	m.render.Line("  2. view notes in a chord")
	m.render.Line("  3. create chord progression")
	m.render.Line("  4. help")
	m.render.Line("  5. exit")
}

// invalid reports a rejected token and counts it.
func (m *Menu) invalid(err error) {
	if e, ok := token.AsEntryError(err); ok {
		m.store.Metrics.ValidationFailed(e.Category.Field())
		m.render.Error(fmt.Sprintf("Invalid %s. Try again.", e.Category.Field()))
		return
	}
	m.render.Error(err.Error())
}

func (m *Menu) printNotes(notes []model.Note) {
	for _, n := range notes {
		m.render.Line(n.String())
	}
}

func (m *Menu) viewScale() error {
	tonic, err := acquire.Interactive(m.prompter, acquire.Tonic, m.invalid)
	if err != nil {
		return err
	}
	mode, err := acquire.Interactive(m.prompter, acquire.Mode, m.invalid)
	if err != nil {
		return err
	}
	raw, err := m.prompter.Prompt(acquire.DirectionLabel)
	if err != nil {
		return err
	}
	direction := acquire.Direction(raw, m.logger)

	notes, err := m.adapter.ExpandScale(tonic, mode, direction)
	if err != nil {
		return err
	}
	m.printNotes(notes)

	if err := m.store.SaveNotes(m.scalePath, fmt.Sprintf("%v %v", tonic, mode), notes); err != nil {
		return err
	}
	m.render.Written("Scale", m.scalePath)
	return nil
}

func (m *Menu) viewChord() error {
	spec, err := acquire.InteractiveChord(m.prompter, m.invalid)
	if err != nil {
		return err
	}
	notes, err := m.adapter.ExpandSpec(spec)
	if err != nil {
		return err
	}
	m.printNotes(notes)

	if err := m.store.SaveNotes(m.scalePath, spec.String(), notes); err != nil {
		return err
	}
	m.render.Written("Chord", m.scalePath)
	return nil
}

func (m *Menu) createProgression(ctx context.Context) error {
	name, err := m.progressionName()
	if err != nil {
		return err
	}
	count, err := m.chordCount()
	if err != nil {
		return err
	}

	p := chord.New(name)
	for i := 0; i < count; i++ {
		m.render.Dim(fmt.Sprintf("chord %d of %d", i+1, count))
		spec, err := acquire.InteractiveChord(m.prompter, m.invalid)
		if err != nil {
			return err
		}
		p.Append(spec)
	}

	path, err := m.store.SaveProgression(ctx, p)
	if err != nil {
		return err
	}
	m.render.Written("Progression", path)
	return nil
}

func (m *Menu) progressionName() (string, error) {
	for {
		raw, err := m.prompter.Prompt(nameLabel)
		if err != nil {
			return "", err
		}
		name := strings.TrimSpace(raw)
		if err := file.ValidateName(name); err != nil {
			m.store.Metrics.ValidationFailed("name")
			m.render.Error("Invalid name. Try again.")
			continue
		}
		return name, nil
	}
}

func (m *Menu) chordCount() (int, error) {
	for {
		raw, err := m.prompter.Prompt(chordCountLabel)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || n < 0 {
			m.store.Metrics.ValidationFailed("count")
			m.render.Error("Invalid number of chords. Try again.")
			continue
		}
		return n, nil
	}
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
