package cmd

import (
	"github.com/spf13/cobra"
)

var beamCmd = &cobra.Command{
	Use:   "beam",
	Short: "Simply-supported beam analysis",
	Long: `Analyze simply-supported beams under point loads, uniformly
distributed loads and concentrated moments.

Subcommands:
  analyze  - Reactions, shear, moment and deflection for a beam

Sign convention: downward loads and clockwise moments are positive.`,
}

func init() {
	rootCmd.AddCommand(beamCmd)
}
