package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/jsphweid/notation/token"
)

var modeIntervals = []struct {
	name    string
	degrees string
}{
	{"Ionian", "1 2 3 4 5 6 7"},
	{"Dorian", "1 2 b3 4 5 6 b7"},
	{"Phrygian", "1 b2 b3 4 5 b6 b7"},
	{"Lydian", "1 2 3 #4 5 6 7"},
	{"Mixolydian", "1 2 3 4 5 6 b7"},
	{"Aeolian", "1 2 b3 4 5 b6 b7"},
	{"Locrian", "1 b2 b3 4 b5 b6 b7"},
}

// WriteHelp lists every accepted spelling. Matching ignores case and
// surrounding whitespace.
func WriteHelp(w io.Writer) {
	fmt.Fprintln(w, "\nInput is case-insensitive.")
	for _, c := range token.Categories {
		fmt.Fprintf(w, "\n  %s:\n    %s\n", c.Field(), strings.Join(token.Accepted(c), ", "))
	}

	fmt.Fprintln(w, "\n  modes of the major scale:")
	for _, m := range modeIntervals {
		fmt.Fprintf(w, "    %-10s %s\n", m.name, m.degrees)
	}

	fmt.Fprintln(w, "\n  direction:\n    asc, desc (anything else is treated as asc)")
	fmt.Fprintln(w)
}
