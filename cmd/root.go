package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fretboard",
	Short: "Guitar fretboard and chord diagram tool",
	Long:  `Builds scales and chords from interval formulas and maps them onto a fretboard.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
