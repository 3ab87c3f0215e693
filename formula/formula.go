package formula

import (
	"errors"

	"github.com/jsphweid/fretboard/util"
)

// Formula is a named list of semitone offsets from a root. The first offset
// is 0 by convention in every provided formula; that convention is not
// enforced on custom formulas.
type Formula struct {
	Name    string
	Offsets []int
}

// New builds a formula after checking that every offset is a valid
// non-negative semitone count. Malformed offsets are a construction-time
// error, never deferred to query time.
func New(name string, offsets []int) (Formula, error) {
	for _, o := range offsets {
		if o < 0 {
			return Formula{}, errors.New("formula offsets must be non-negative")
		}
	}
	res := Formula{Name: name, Offsets: make([]int, len(offsets))}
	copy(res.Offsets, offsets)
	return res, nil
}

// Chromatic returns the formula [0,1,...,n], the shape of an instrument
// string with n frets.
func Chromatic(n int) Formula {
	offsets := make([]int, n+1)
	for i := range offsets {
		offsets[i] = i
	}
	return Formula{Name: "chromatic", Offsets: offsets}
}

var (
	MajorScale   = Formula{"major scale", []int{0, 2, 4, 5, 7, 9, 11, 12}}
	MinorScale   = Formula{"minor scale", []int{0, 2, 3, 5, 7, 8, 10, 12}}
	MajorTriad   = Formula{"major", []int{0, 4, 7}}
	MinorTriad   = Formula{"minor", []int{0, 3, 7}}
	AddedFourth  = Formula{"added fourth", []int{0, 4, 5, 7}}
	Sixth        = Formula{"sixth", []int{0, 4, 7, 9}}
	SixNine      = Formula{"six nine", []int{0, 4, 7, 9, 2}}
	MajorSeventh = Formula{"major seventh", []int{0, 4, 7, 10}}
)

var byName = map[string]Formula{
	MajorScale.Name:   MajorScale,
	MinorScale.Name:   MinorScale,
	MajorTriad.Name:   MajorTriad,
	MinorTriad.Name:   MinorTriad,
	AddedFourth.Name:  AddedFourth,
	Sixth.Name:        Sixth,
	SixNine.Name:      SixNine,
	MajorSeventh.Name: MajorSeventh,
}

// ByName looks up one of the provided formulas.
func ByName(name string) (Formula, bool) {
	f, ok := byName[name]
	return f, ok
}

// Names lists the provided formula names in sorted order.
func Names() []string {
	return util.GetKeysSorted(byName)
}
