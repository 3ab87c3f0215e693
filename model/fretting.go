package model

// FretPosition is the solved fret for one string. Playable is false when no
// fret at or above the minimum produces a note in the target set; Fret is
// meaningless in that case and must not be read as 0.
type FretPosition struct {
	StringNum int  `json:"string"`
	Fret      int  `json:"fret"`
	Playable  bool `json:"playable"`
}

// Fretting holds exactly one FretPosition per string, in string order.
type Fretting []FretPosition

// Frets returns the solved fret per string, with -1 marking unplayable
// strings.
func (f Fretting) Frets() []int {
	res := make([]int, len(f))
	for i, p := range f {
		if p.Playable {
			res[i] = p.Fret
		} else {
			res[i] = -1
		}
	}
	return res
}

// MaxFret returns the highest playable fret in the result, or 0 when
// nothing is playable.
func (f Fretting) MaxFret() int {
	var res int
	for _, p := range f {
		if p.Playable && p.Fret > res {
			res = p.Fret
		}
	}
	return res
}
