package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gobeam/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gobeam",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
		fmt.Println("Simply-Supported Beam Analysis Tool")
		fmt.Println("Euler-Bernoulli beam theory, SI units")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
