package constants

const EnvPrefix = "NOTATION"

const DefaultScalePath = "scale.txt"
const DefaultProgressionsDir = "progressions"
const DefaultServerAddr = ":8080"

// every scale and chord is expanded from octave 4 (C4 = middle C)
const DefaultOctave = 4

// line between count/notes blocks in a progression file
const Separator = "-"

const ProgressionExt = ".txt"
const MidiExt = ".mid"

const TicksPerQuarter = 960
