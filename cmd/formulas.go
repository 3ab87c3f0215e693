package cmd

import (
	"fmt"

	"github.com/jsphweid/fretboard/formula"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(formulasCmd)
}

var formulasCmd = &cobra.Command{
	Use:   "formulas",
	Short: "Lists the known formulas",
	Long:  `Lists the known formulas`,
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range formula.Names() {
			f, _ := formula.ByName(name)
			fmt.Printf("%-14v %v\n", name, f.Offsets)
		}
	},
}
