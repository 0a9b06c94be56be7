package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gobeam/internal/catalog"
	"github.com/alexiusacademia/gobeam/internal/section"
	"github.com/spf13/cobra"
)

var sectionPresetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List built-in section presets",
	Run: func(cmd *cobra.Command, args []string) {
		printHeader("SECTION PRESETS")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "  ID\tName\tShape\tA (m²)\tI (m⁴)\tS (m³)")
		fmt.Fprintln(w, "  ──\t────\t─────\t──────\t──────\t──────")
		for _, p := range catalog.Sections() {
			fmt.Fprintf(w, "  %s\t%s\t%s\t%.4g\t%.4g\t%.4g\n",
				p.ID, p.Name, p.Section.Type, p.Properties.Area, p.Properties.MomentOfInertia, p.Properties.SectionModulus)
		}
		w.Flush()
		fmt.Println()

		for _, p := range catalog.Sections() {
			if sec, err := section.Parse(p.Section); err == nil {
				fmt.Printf("  %-20s %s\n", p.ID, section.Describe(sec))
			}
		}
		fmt.Println()
	},
}

func init() {
	sectionCmd.AddCommand(sectionPresetsCmd)
}
