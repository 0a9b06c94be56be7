package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gobeam/internal/catalog"
	"github.com/spf13/cobra"
)

var materialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "List built-in materials",
	Long: `List the material presets. Use the id with --material when
analyzing a beam or in a project definition.`,
	Run: func(cmd *cobra.Command, args []string) {
		printHeader("MATERIALS")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "  ID\tName\tE (GPa)\tDensity (kg/m³)\tYield (MPa)")
		fmt.Fprintln(w, "  ──\t────\t───────\t───────────────\t───────────")
		for _, m := range catalog.Materials {
			fmt.Fprintf(w, "  %s\t%s\t%.1f\t%.0f\t%.0f\n",
				m.ID, m.Name, m.ElasticModulus/1e9, m.Density, m.YieldStrength/1e6)
		}
		w.Flush()
		fmt.Println()
	},
}

func init() {
	rootCmd.AddCommand(materialsCmd)
}
