package model

// ProgressionOverview summarises one stored progression file.
type ProgressionOverview struct {
	Name     string
	Path     string
	Chords   int
	NumNotes int
}

// NoteBlock is one count/notes block of a progression file as read back from
// disk. Pitch names are kept as written.
type NoteBlock struct {
	Notes []WrittenNote
}

type WrittenNote struct {
	Name   string
	Octave int
}
