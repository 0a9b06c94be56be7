package cmd

import (
	"github.com/spf13/cobra"
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Cross-section properties",
	Long: `Calculate geometric properties of beam cross-sections about
the strong axis: area, second moment of area and elastic section
modulus.

Supported shapes:
  rectangle  - width × height
  circle     - diameter
  i_beam     - height, flange width, web and flange thickness

Subcommands:
  properties - Properties of a section given its dimensions
  presets    - Built-in sections available to beam analysis

Dimensions are in metres.`,
}

func init() {
	rootCmd.AddCommand(sectionCmd)
}
