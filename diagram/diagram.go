package diagram

import (
	"errors"
	"strconv"
	"strings"

	"github.com/jsphweid/fretboard/constants"
	"github.com/jsphweid/fretboard/model"
)

const (
	pressedMark    = "o"
	emptyMark      = "|"
	unplayableMark = "x"
)

// Render draws a fretting as a text block: a header of per-string fret
// numbers, a fixed-width `=` rule, then one row per fret level from
// minimumFret through minimumFret+numStrings inclusive, and a trailing
// blank line. Identical input always yields byte-identical output.
//
//	0 2 2 1 0 0
//	===========
//	o | | | o o
//	| | | o | |
//	| o o | | |
//
// Strings with no playable position show x in the header and never a
// pressed mark in the grid.
func Render(f model.Fretting, minimumFret int) string {
	var b strings.Builder

	header := make([]string, len(f))
	for i, p := range f {
		if p.Playable {
			header[i] = strconv.Itoa(p.Fret)
		} else {
			header[i] = unplayableMark
		}
	}
	b.WriteString(strings.Join(header, " "))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", constants.DividerWidth))
	b.WriteString("\n")

	for fret := minimumFret; fret <= minimumFret+len(f); fret++ {
		cells := make([]string, len(f))
		for i, p := range f {
			if p.Playable && p.Fret == fret {
				cells[i] = pressedMark
			} else {
				cells[i] = emptyMark
			}
		}
		b.WriteString(strings.Join(cells, " "))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	return b.String()
}

// ParseHeader recovers the fretting from the header line of a rendered
// diagram. It is the inverse of Render's first line.
func ParseHeader(diagram string) (model.Fretting, error) {
	line, _, _ := strings.Cut(diagram, "\n")
	if strings.TrimSpace(line) == "" {
		return model.Fretting{}, nil
	}
	fields := strings.Split(line, " ")
	res := make(model.Fretting, len(fields))
	for i, field := range fields {
		res[i].StringNum = i
		if field == unplayableMark {
			continue
		}
		fret, err := strconv.Atoi(field)
		if err != nil {
			return nil, errors.New("malformed diagram header: " + line)
		}
		res[i].Fret = fret
		res[i].Playable = true
	}
	return res, nil
}
