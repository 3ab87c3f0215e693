package cmd

import (
	"fmt"

	"github.com/jsphweid/fretboard/constants"
	"github.com/jsphweid/fretboard/formula"
	"github.com/jsphweid/fretboard/fretting"
	"github.com/jsphweid/fretboard/guitar"
	"github.com/jsphweid/fretboard/note"
	"github.com/jsphweid/fretboard/sequence"
	"github.com/spf13/cobra"
)

var scaleTuning string

func init() {
	scaleCmd.Flags().StringVarP(&scaleTuning, "tuning", "t", constants.GetDefaultTuning(), "open-string notes, thickest first")
	rootCmd.AddCommand(scaleCmd)
}

var scaleCmd = &cobra.Command{
	Use:   "scale <root> <formula>",
	Short: "Lists matching fret positions per string",
	Long:  `Lists every fret on every string whose note belongs to the scale.`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		printScale(args[0], args[1])
	},
}

func printScale(rootName string, formulaName string) {
	root, err := note.Parse(rootName)
	if err != nil {
		panic(err)
	}
	f, ok := formula.ByName(formulaName)
	if !ok {
		panic("Unknown formula: " + formulaName)
	}
	opens, err := note.ParseTuning(scaleTuning)
	if err != nil {
		panic(err)
	}

	target := sequence.Build(root, f)
	fmt.Printf("%v %v: %v\n", root, f.Name, target)
	for _, s := range guitar.MakeInstrument(opens) {
		positions := fretting.PositionsOnString(s, target)
		fmt.Printf("%-2v %v\n", s.Open, positions)
	}
}
