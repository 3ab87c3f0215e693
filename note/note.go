package note

import (
	"errors"
	"strings"
)

// Note is one of the 12 pitch classes. The underlying value is its index in
// the cycle; all arithmetic wraps modulo NumNotes.
type Note uint8

const (
	A = Note(iota)
	ASharp
	B
	C
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
)

const NumNotes = 12

var names = [NumNotes]string{"A", "A#", "B", "C", "C#", "D", "D#", "E", "F", "F#", "G", "G#"}

func (n Note) String() string {
	return names[n.Index()]
}

// Index returns the stable 0-11 position of n in the cycle.
func (n Note) Index() int {
	return int(n) % NumNotes
}

// Successor returns the next pitch class, wrapping GSharp back to A.
func (n Note) Successor() Note {
	return Note((n.Index() + 1) % NumNotes)
}

// Predecessor is the inverse of Successor.
func (n Note) Predecessor() Note {
	return Note((n.Index() + NumNotes - 1) % NumNotes)
}

// AtOffset returns the pitch class `offset` chromatic steps above n.
// Negative offsets step downward. Constant time regardless of offset.
func (n Note) AtOffset(offset int) Note {
	idx := (n.Index() + offset) % NumNotes
	if idx < 0 {
		idx += NumNotes
	}
	return Note(idx)
}

var letterOffsets = map[byte]Note{
	'a': A, 'b': B, 'c': C, 'd': D, 'e': E, 'f': F, 'g': G,
}

// Parse reads a pitch-class name: a letter A-G with an optional trailing
// `#` or `s` for sharp. Flat spellings are not supported.
func Parse(s string) (Note, error) {
	ss := strings.ToLower(strings.TrimSpace(s))
	if len(ss) == 0 {
		return A, errors.New("empty note name")
	}
	n, ok := letterOffsets[ss[0]]
	if !ok {
		return A, errors.New("unrecognized note name: " + s)
	}
	switch {
	case len(ss) == 1:
		return n, nil
	case len(ss) == 2 && (ss[1] == '#' || ss[1] == 's'):
		return n.Successor(), nil
	}
	return A, errors.New("unrecognized note name: " + s)
}

// ParseTuning reads a comma- or space-separated list of open-string notes,
// thickest string first, e.g. "E,A,D,G,B,E".
func ParseTuning(s string) ([]Note, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' '
	})
	var res []Note
	for _, f := range fields {
		n, err := Parse(f)
		if err != nil {
			return nil, err
		}
		res = append(res, n)
	}
	return res, nil
}
