package sequence

import (
	"errors"
	"strings"

	"github.com/jsphweid/fretboard/formula"
	"github.com/jsphweid/fretboard/note"
)

// ErrIndexOutOfRange is returned by At for positions outside 0..Size()-1.
var ErrIndexOutOfRange = errors.New("sequence index out of range")

// Sequence is an immutable ordered list of pitch classes. Order matters
// (the first element is the root) and duplicates are preserved, so an
// octave-repeating scale keeps both copies of its root.
type Sequence struct {
	notes []note.Note
}

// Build applies every offset of f to the root, modulo the 12-note cycle.
// A scale and a chord are both just the result of Build with different
// formulas.
func Build(root note.Note, f formula.Formula) Sequence {
	notes := make([]note.Note, len(f.Offsets))
	for i, offset := range f.Offsets {
		notes[i] = root.AtOffset(offset)
	}
	return Sequence{notes: notes}
}

func (s Sequence) Size() int {
	return len(s.notes)
}

// Contains reports whether n equals any element, ignoring position.
func (s Sequence) Contains(n note.Note) bool {
	for _, v := range s.notes {
		if v == n {
			return true
		}
	}
	return false
}

// At returns the element at position i. Valid positions are 0..Size()-1.
func (s Sequence) At(i int) (note.Note, error) {
	if i < 0 || i >= len(s.notes) {
		return note.A, ErrIndexOutOfRange
	}
	return s.notes[i], nil
}

// Map returns a new sequence with fn applied element-wise, preserving
// order and length.
func (s Sequence) Map(fn func(note.Note) note.Note) Sequence {
	notes := make([]note.Note, len(s.notes))
	for i, v := range s.notes {
		notes[i] = fn(v)
	}
	return Sequence{notes: notes}
}

// Transpose shifts every element by the semitone distance from one root to
// another. Transposing from a root to itself is the identity.
func (s Sequence) Transpose(from note.Note, to note.Note) Sequence {
	distance := to.Index() - from.Index()
	return s.Map(func(n note.Note) note.Note {
		return n.AtOffset(distance)
	})
}

// Notes returns a copy of the elements in order.
func (s Sequence) Notes() []note.Note {
	res := make([]note.Note, len(s.notes))
	copy(res, s.notes)
	return res
}

func (s Sequence) String() string {
	parts := make([]string, len(s.notes))
	for i, n := range s.notes {
		parts[i] = n.String()
	}
	return strings.Join(parts, " ")
}
