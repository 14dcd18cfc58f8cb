package chord

import (
	"testing"

	"github.com/jsphweid/notation/model"
	"github.com/stretchr/testify/assert"
)

var (
	cMajor  = model.ChordSpec{Root: model.C, Quality: model.Major, Number: model.Triad}
	aMinor7 = model.ChordSpec{Root: model.A, Quality: model.Minor, Number: model.Seventh}
	g7      = model.ChordSpec{Root: model.G, Quality: model.Dominant, Number: model.Seventh}
)

func TestNewIsEmpty(t *testing.T) {
	p := New("empty")

	assert := assert.New(t)
	assert.Equal("empty", p.Name())
	assert.Equal(0, p.Len())
	assert.Empty(p.Entries())
}

func TestNewFromInitialSequence(t *testing.T) {
	p := New("test", cMajor, aMinor7)

	assert := assert.New(t)
	assert.Equal(2, p.Len())
	assert.Equal([]model.ChordSpec{cMajor, aMinor7}, p.Entries())
}

func TestAppendPreservesOrder(t *testing.T) {
	p := New("ii-V-I")
	p.Append(aMinor7)
	p.Append(g7)
	p.Append(cMajor)
	p.Append(g7)

	assert := assert.New(t)
	assert.Equal(4, p.Len())
	assert.Equal([]model.ChordSpec{aMinor7, g7, cMajor, g7}, p.Entries())
}

func TestEntriesReturnsCopy(t *testing.T) {
	p := New("test", cMajor, aMinor7)
	entries := p.Entries()
	entries[0] = g7

	assert.Equal(t, cMajor, p.Entries()[0])
}

func TestInitialSliceIsNotAliased(t *testing.T) {
	initial := []model.ChordSpec{cMajor, aMinor7}
	p := New("test", initial...)
	initial[0] = g7

	assert.Equal(t, cMajor, p.Entries()[0])
}

func TestString(t *testing.T) {
	p := New("test", cMajor, aMinor7)
	assert.Equal(t, "test [C Major Triad | A Minor Seventh]", p.String())
}
