// Command breedplan prints the breeding tree needed to produce a creature
// with a chosen set of perfect IVs and, optionally, a nature.
//
//	breedplan plan --species Charizard --ivs atk,spe,hp --nature adamant
//	breedplan templates
//	breedplan species charizard
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
