// Package token maps user-supplied strings onto the closed musical
// vocabularies. Every validator folds case before an exact table lookup.
package token

import (
	"strings"

	"github.com/jsphweid/notation/model"
	"github.com/jsphweid/notation/util"
	"golang.org/x/text/cases"
)

var tonics = map[string]model.PitchClass{
	"c": model.C, "cs": model.CSharp, "c#": model.CSharp,
	"d": model.D, "ds": model.DSharp, "d#": model.DSharp,
	"e": model.E,
	"f": model.F, "fs": model.FSharp, "f#": model.FSharp,
	"g": model.G, "gs": model.GSharp, "g#": model.GSharp,
	"a": model.A, "as": model.ASharp, "a#": model.ASharp,
	"b": model.B,
}

var modes = map[string]model.Mode{
	"ionian":     model.Ionian,
	"dorian":     model.Dorian,
	"phrygian":   model.Phrygian,
	"lydian":     model.Lydian,
	"mixolydian": model.Mixolydian,
	"aeolian":    model.Aeolian,
	"locrian":    model.Locrian,
}

var qualities = map[string]model.ChordQuality{
	"major": model.Major, "maj": model.Major,
	"minor": model.Minor, "min": model.Minor,
	"diminished": model.Diminished, "dim": model.Diminished,
	"augmented": model.Augmented, "aug": model.Augmented,
	"halfdiminished": model.HalfDiminished, "half-diminished": model.HalfDiminished, "m7b5": model.HalfDiminished,
	"dominant": model.Dominant, "dom": model.Dominant,
	"suspended2": model.Suspended2, "sus2": model.Suspended2,
	"suspended4": model.Suspended4, "sus4": model.Suspended4,
}

var numbers = map[string]model.ChordNumber{
	"triad":   model.Triad,
	"seventh": model.Seventh, "7": model.Seventh,
	"majorseventh": model.MajorSeventh, "maj7": model.MajorSeventh,
	"ninth": model.Ninth, "9": model.Ninth,
	"eleventh": model.Eleventh, "11": model.Eleventh,
	"thirteenth": model.Thirteenth, "13": model.Thirteenth,
}

var directions = map[string]model.Direction{
	"asc":  model.Ascending,
	"desc": model.Descending,
}

// Normalize trims surrounding whitespace and case-folds the token.
func Normalize(raw string) string {
	return cases.Fold().String(strings.TrimSpace(raw))
}

func lookup[V any](table map[string]V, c Category, raw string) (V, error) {
	if v, ok := table[Normalize(raw)]; ok {
		return v, nil
	}
	var zero V
	return zero, &EntryError{Category: c, Token: raw}
}

func ParseTonic(raw string) (model.PitchClass, error) {
	return lookup(tonics, Tonic, raw)
}

func ParseMode(raw string) (model.Mode, error) {
	return lookup(modes, Mode, raw)
}

func ParseQuality(raw string) (model.ChordQuality, error) {
	return lookup(qualities, Quality, raw)
}

func ParseChordNumber(raw string) (model.ChordNumber, error) {
	return lookup(numbers, ChordNumber, raw)
}

// ParseDirection never fails. Unknown tokens come back as Ascending with
// ok == false so the caller can warn about the coercion.
func ParseDirection(raw string) (d model.Direction, ok bool) {
	d, ok = directions[Normalize(raw)]
	if !ok {
		return model.Ascending, false
	}
	return d, true
}

// Accepted lists the spellings a category accepts, sorted.
func Accepted(c Category) []string {
	switch c {
	case Tonic:
		return util.GetSortedKeys(tonics)
	case Mode:
		return util.GetSortedKeys(modes)
	case Quality:
		return util.GetSortedKeys(qualities)
	case ChordNumber:
		return util.GetSortedKeys(numbers)
	}
	return nil
}
