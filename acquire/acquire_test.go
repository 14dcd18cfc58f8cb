package acquire

import (
	"errors"
	"io"
	"testing"

	"github.com/jsphweid/notation/model"
	"github.com/jsphweid/notation/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type scriptedPrompter struct {
	inputs []string
	labels []string
}

func (s *scriptedPrompter) Prompt(label string) (string, error) {
	s.labels = append(s.labels, label)
	if len(s.inputs) == 0 {
		return "", io.EOF
	}
	next := s.inputs[0]
	s.inputs = s.inputs[1:]
	return next, nil
}

func TestInteractiveReturnsFirstValidToken(t *testing.T) {
	p := &scriptedPrompter{inputs: []string{"cs"}}
	pc, err := Interactive(p, Tonic, nil)

	require.NoError(t, err)
	assert.Equal(t, model.CSharp, pc)
	assert.Equal(t, []string{Tonic.Label}, p.labels)
}

func TestInteractiveRepromptsUntilValid(t *testing.T) {
	invalid := make([]string, 50)
	for i := range invalid {
		invalid[i] = "Z"
	}
	p := &scriptedPrompter{inputs: append(invalid, "a")}

	var rejections []error
	pc, err := Interactive(p, Tonic, func(err error) { rejections = append(rejections, err) })

	require.NoError(t, err)
	assert.Equal(t, model.A, pc)
	assert.Len(t, rejections, 50)
	assert.Len(t, p.labels, 51)
	for _, r := range rejections {
		assert.ErrorIs(t, r, token.ErrTonic)
	}
}

func TestInteractiveStopsWhenInputCloses(t *testing.T) {
	p := &scriptedPrompter{inputs: []string{"nope", "still nope"}}
	_, err := Interactive(p, Mode, func(error) {})
	assert.ErrorIs(t, err, io.EOF)
	assert.Len(t, p.labels, 3)
}

func TestStrictRunsValidatorOnce(t *testing.T) {
	calls := 0
	f := Field[model.Mode]{Parse: func(s string) (model.Mode, error) {
		calls++
		return token.ParseMode(s)
	}}

	_, err := Strict("Z", f)
	assert.ErrorIs(t, err, token.ErrMode)
	assert.Equal(t, 1, calls)

	m, err := Strict("locrian", f)
	require.NoError(t, err)
	assert.Equal(t, model.Locrian, m)
	assert.Equal(t, 2, calls)
}

func TestStrictTonicErrorScenario(t *testing.T) {
	_, err := Strict("Z", Tonic)
	entryErr, ok := token.AsEntryError(err)
	require.True(t, ok)
	assert.Equal(t, token.Tonic, entryErr.Category)
}

func TestStrictChord(t *testing.T) {
	spec, err := StrictChord("A", "minor", "seventh")
	require.NoError(t, err)
	assert.Equal(t, model.ChordSpec{Root: model.A, Quality: model.Minor, Number: model.Seventh}, spec)

	cases := []struct {
		root, quality, ext string
		want               error
	}{
		{"Z", "minor", "seventh", token.ErrTonic},
		{"A", "mnr", "seventh", token.ErrQuality},
		{"A", "minor", "fifth", token.ErrChordNumber},
		{"Z", "mnr", "fifth", token.ErrTonic},
	}
	for _, c := range cases {
		_, err := StrictChord(c.root, c.quality, c.ext)
		assert.True(t, errors.Is(err, c.want), "%v %v %v", c.root, c.quality, c.ext)
	}
}

func TestInteractiveChord(t *testing.T) {
	p := &scriptedPrompter{inputs: []string{"g", "dominant", "eleventh!", "eleventh"}}
	var rejections int
	spec, err := InteractiveChord(p, func(error) { rejections++ })

	require.NoError(t, err)
	assert.Equal(t, model.ChordSpec{Root: model.G, Quality: model.Dominant, Number: model.Eleventh}, spec)
	assert.Equal(t, 1, rejections)
}

func TestDirectionWarnsOnCoercion(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	assert.Equal(t, model.Descending, Direction("DESC", logger))
	assert.Equal(t, 0, logs.Len())

	assert.Equal(t, model.Ascending, Direction("sideways", logger))
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.WarnLevel, entry.Level)
	assert.Equal(t, "sideways", entry.ContextMap()["token"])
}
