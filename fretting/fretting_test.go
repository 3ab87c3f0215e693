package fretting

import (
	"testing"

	"github.com/jsphweid/fretboard/formula"
	"github.com/jsphweid/fretboard/guitar"
	"github.com/jsphweid/fretboard/model"
	"github.com/jsphweid/fretboard/note"
	"github.com/jsphweid/fretboard/sequence"
	"github.com/stretchr/testify/assert"
)

func TestPositionsForEMajorScaleOnLowEString(t *testing.T) {
	assert := assert.New(t)
	s := guitar.MakeString(note.E)
	scale := sequence.Build(note.E, formula.MajorScale)

	expected := []int{0, 2, 4, 5, 7, 9, 11, 12, 13, 15, 17, 18, 20}
	assert.Equal(expected, PositionsOnString(s, scale))
}

func TestPositionsForEMajorTriadOnAString(t *testing.T) {
	assert := assert.New(t)
	s := guitar.MakeString(note.A)
	triad := sequence.Build(note.E, formula.MajorTriad)

	positions := PositionsOnString(s, triad)
	assert.Equal([]int{2, 7, 11, 15, 20}, positions)
}

func TestEmptyTargetSetIsAWildcard(t *testing.T) {
	assert := assert.New(t)
	s := guitar.MakeString(note.B)
	var empty sequence.Sequence

	positions := PositionsOnString(s, empty)
	assert.Len(positions, s.Notes.Size())
	for i, p := range positions {
		assert.Equal(i, p)
	}
}

func TestLowestAtOrAbove(t *testing.T) {
	assert := assert.New(t)
	positions := []int{0, 4, 7, 12, 16, 19}

	res, err := LowestAtOrAbove(positions, 0)
	assert.NoError(err)
	assert.Equal(0, res)

	res, err = LowestAtOrAbove(positions, 5)
	assert.NoError(err)
	assert.Equal(7, res)

	_, err = LowestAtOrAbove(positions, 20)
	assert.ErrorIs(err, ErrNoPlayablePosition)

	_, err = LowestAtOrAbove(nil, 0)
	assert.ErrorIs(err, ErrNoPlayablePosition)
}

func TestEMajorOpenChord(t *testing.T) {
	assert := assert.New(t)
	triad := sequence.Build(note.E, formula.MajorTriad)

	res := ForInstrument(guitar.StandardTuning(), triad, 0)
	assert.Equal([]int{0, 2, 2, 1, 0, 0}, res.Frets())
	for _, p := range res {
		assert.True(p.Playable)
	}
}

func TestEMajorBarreChordAtSeventhFret(t *testing.T) {
	assert := assert.New(t)
	triad := sequence.Build(note.E, formula.MajorTriad)

	res := ForInstrument(guitar.StandardTuning(), triad, 7)
	assert.Equal([]int{7, 7, 9, 9, 9, 7}, res.Frets())
}

func TestForInstrumentWithEmptyTargetCollapsesToMinimumFret(t *testing.T) {
	assert := assert.New(t)
	var empty sequence.Sequence

	res := ForInstrument(guitar.StandardTuning(), empty, 5)
	assert.Equal([]int{5, 5, 5, 5, 5, 5}, res.Frets())
}

func TestUnplayableStringIsSurfacedNotDefaulted(t *testing.T) {
	assert := assert.New(t)
	triad := sequence.Build(note.E, formula.MajorTriad)

	// on a low E string the triad's last playable position is fret 20
	res := ForInstrument(guitar.MakeInstrument([]note.Note{note.E}), triad, 21)
	assert.Len(res, 1)
	assert.False(res[0].Playable)
	assert.Equal([]int{-1}, res.Frets())
}

func TestForInstrumentKeepsStringOrder(t *testing.T) {
	assert := assert.New(t)
	triad := sequence.Build(note.E, formula.MajorTriad)

	res := ForInstrument(guitar.StandardTuning(), triad, 0)
	for i, p := range res {
		assert.Equal(i, p.StringNum)
	}
}

func TestFrettingMaxFret(t *testing.T) {
	assert := assert.New(t)
	f := model.Fretting{
		{StringNum: 0, Fret: 7, Playable: true},
		{StringNum: 1, Fret: 9, Playable: true},
		{StringNum: 2, Fret: 30, Playable: false},
	}
	assert.Equal(9, f.MaxFret())
}
