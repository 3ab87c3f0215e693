package cmd

import (
	"fmt"
	"os"

	"github.com/jsphweid/fretboard/constants"
	"github.com/jsphweid/fretboard/diagram"
	"github.com/jsphweid/fretboard/formula"
	"github.com/jsphweid/fretboard/fretting"
	"github.com/jsphweid/fretboard/guitar"
	"github.com/jsphweid/fretboard/note"
	"github.com/jsphweid/fretboard/sequence"
	"github.com/spf13/cobra"
)

var chordTuning string
var chordMinimumFret int

func init() {
	chordCmd.Flags().StringVarP(&chordTuning, "tuning", "t", constants.GetDefaultTuning(), "open-string notes, thickest first")
	chordCmd.Flags().IntVarP(&chordMinimumFret, "fret", "f", 0, "minimum fret (barre position)")
	rootCmd.AddCommand(chordCmd)
}

var chordCmd = &cobra.Command{
	Use:   "chord <root> <formula>",
	Short: "Prints a chord diagram",
	Long:  `Prints a chord diagram for a root note and formula, e.g. "chord E major".`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		printChord(args[0], args[1])
	},
}

func printChord(rootName string, formulaName string) {
	root, err := note.Parse(rootName)
	if err != nil {
		panic(err)
	}
	f, ok := formula.ByName(formulaName)
	if !ok {
		panic("Unknown formula: " + formulaName)
	}
	opens, err := note.ParseTuning(chordTuning)
	if err != nil {
		panic(err)
	}

	inst := guitar.MakeInstrument(opens)
	target := sequence.Build(root, f)
	result := fretting.ForInstrument(inst, target, chordMinimumFret)
	for _, p := range result {
		if !p.Playable {
			fmt.Fprintf(os.Stderr, "No playable position on string %v at or above fret %v\n", p.StringNum, chordMinimumFret)
		}
	}
	fmt.Print(diagram.Render(result, chordMinimumFret))
}
