package model

import "fmt"

type PitchClass uint8

const (
	C PitchClass = iota
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
	A
	ASharp
	B
)

const NumPitchClasses = 12

var pitchClassNames = [NumPitchClasses]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

func (p PitchClass) Valid() bool { return p < NumPitchClasses }

func (p PitchClass) String() string {
	if !p.Valid() {
		return fmt.Sprintf("PitchClass(%d)", uint8(p))
	}
	return pitchClassNames[p]
}

// Modes of the major scale, in the order their step patterns are rotated.
type Mode uint8

const (
	Ionian Mode = iota
	Dorian
	Phrygian
	Lydian
	Mixolydian
	Aeolian
	Locrian
)

var modeNames = [...]string{"Ionian", "Dorian", "Phrygian", "Lydian", "Mixolydian", "Aeolian", "Locrian"}

func (m Mode) Valid() bool { return int(m) < len(modeNames) }

func (m Mode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
	return modeNames[m]
}

type Direction uint8

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) Valid() bool { return d <= Descending }

func (d Direction) String() string {
	if d == Descending {
		return "Descending"
	}
	return "Ascending"
}

type ChordQuality uint8

const (
	Major ChordQuality = iota
	Minor
	Diminished
	Augmented
	HalfDiminished
	Dominant
	Suspended2
	Suspended4
)

var qualityNames = [...]string{"Major", "Minor", "Diminished", "Augmented", "HalfDiminished", "Dominant", "Suspended2", "Suspended4"}

func (q ChordQuality) Valid() bool { return int(q) < len(qualityNames) }

func (q ChordQuality) String() string {
	if !q.Valid() {
		return fmt.Sprintf("ChordQuality(%d)", uint8(q))
	}
	return qualityNames[q]
}

// ChordNumber is the extension level of a chord, triad through thirteenth.
type ChordNumber uint8

const (
	Triad ChordNumber = iota
	Seventh
	MajorSeventh
	Ninth
	Eleventh
	Thirteenth
)

var numberNames = [...]string{"Triad", "Seventh", "MajorSeventh", "Ninth", "Eleventh", "Thirteenth"}

func (n ChordNumber) Valid() bool { return int(n) < len(numberNames) }

func (n ChordNumber) String() string {
	if !n.Valid() {
		return fmt.Sprintf("ChordNumber(%d)", uint8(n))
	}
	return numberNames[n]
}

// Note is produced by the theory engine; String renders the pitch class only.
type Note struct {
	PitchClass PitchClass
	Octave     int
}

func (n Note) String() string {
	return n.PitchClass.String()
}

type Notes = []Note

type ChordSpec struct {
	Root    PitchClass
	Quality ChordQuality
	Number  ChordNumber
}

func (c ChordSpec) String() string {
	return fmt.Sprintf("%v %v %v", c.Root, c.Quality, c.Number)
}
