package chord

import (
	"fmt"
	"strings"

	"github.com/jsphweid/notation/model"
)

// Progression is a named, ordered list of chords. Order is preserved exactly
// as appended.
type Progression struct {
	name    string
	entries []model.ChordSpec
}

func New(name string, entries ...model.ChordSpec) *Progression {
	p := &Progression{name: name}
	p.entries = append(p.entries, entries...)
	return p
}

func (p *Progression) Name() string {
	return p.name
}

func (p *Progression) Append(entry model.ChordSpec) {
	p.entries = append(p.entries, entry)
}

func (p *Progression) Len() int {
	return len(p.entries)
}

// Entries returns a copy so readers cannot reorder the progression.
func (p *Progression) Entries() []model.ChordSpec {
	res := make([]model.ChordSpec, len(p.entries))
	copy(res, p.entries)
	return res
}

func (p *Progression) String() string {
	parts := make([]string, 0, len(p.entries))
	for _, e := range p.entries {
		parts = append(parts, e.String())
	}
	return fmt.Sprintf("%v [%v]", p.name, strings.Join(parts, " | "))
}
