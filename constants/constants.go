package constants

import "os"

// GetDefaultTuning returns the open-string notes used when no tuning is
// supplied, thickest string first.
func GetDefaultTuning() string {
	tuning := os.Getenv("TUNING")
	if tuning != "" {
		return tuning
	}
	return "E,A,D,G,B,E"
}

// FretCount is the highest fret modeled on a string. Fret 0 is the open
// string, so every string carries FretCount+1 positions.
const FretCount = 20

// DividerWidth is the width of the `=` rule under a diagram header.
const DividerWidth = 11
