package guitar

import (
	"github.com/jsphweid/fretboard/constants"
	"github.com/jsphweid/fretboard/formula"
	"github.com/jsphweid/fretboard/note"
	"github.com/jsphweid/fretboard/sequence"
)

// String models one instrument string as a chromatic run of pitch classes
// starting at the open-string note. Sequence position = fret number, with
// fret 0 the open string.
type String struct {
	Open  note.Note
	Notes sequence.Sequence
}

// Instrument is an ordered list of strings, thickest first.
type Instrument []String

func MakeString(open note.Note) String {
	return String{
		Open:  open,
		Notes: sequence.Build(open, formula.Chromatic(constants.FretCount)),
	}
}

// MakeInstrument builds one string per open note. Any count is legal,
// including zero strings.
func MakeInstrument(opens []note.Note) Instrument {
	res := make(Instrument, len(opens))
	for i, open := range opens {
		res[i] = MakeString(open)
	}
	return res
}

// StandardTuning is the six-string guitar in E standard.
func StandardTuning() Instrument {
	return MakeInstrument([]note.Note{note.E, note.A, note.D, note.G, note.B, note.E})
}
