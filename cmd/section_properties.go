package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gobeam/internal/section"
	"github.com/spf13/cobra"
)

var (
	propShape    string
	propWidth    float64
	propHeight   float64
	propDiameter float64
	propWeb      float64
	propFlange   float64
	propJSON     bool
)

var sectionPropertiesCmd = &cobra.Command{
	Use:   "properties",
	Short: "Calculate area, moment of inertia and section modulus",
	Long: `Calculate the geometric properties of a cross-section.

Examples:
  # 100 x 200 mm rectangle
  gobeam section properties --shape rectangle --width 0.1 --height 0.2

  # 100 mm solid circle
  gobeam section properties --shape circle --diameter 0.1

  # 200 mm I-beam
  gobeam section properties --shape i_beam --height 0.2 --width 0.1 --tw 0.008 --tf 0.012`,
	RunE: runSectionProperties,
}

func init() {
	sectionCmd.AddCommand(sectionPropertiesCmd)

	sectionPropertiesCmd.Flags().StringVar(&propShape, "shape", "", "Section shape: rectangle, circle, i_beam [required]")
	sectionPropertiesCmd.Flags().Float64VarP(&propWidth, "width", "b", 0, "Width or flange width (m)")
	sectionPropertiesCmd.Flags().Float64Var(&propHeight, "height", 0, "Total height (m)")
	sectionPropertiesCmd.Flags().Float64Var(&propDiameter, "diameter", 0, "Diameter (m)")
	sectionPropertiesCmd.Flags().Float64Var(&propWeb, "tw", 0, "Web thickness (m)")
	sectionPropertiesCmd.Flags().Float64Var(&propFlange, "tf", 0, "Flange thickness (m)")
	sectionPropertiesCmd.Flags().BoolVar(&propJSON, "json", false, "Print the properties as JSON")

	sectionPropertiesCmd.MarkFlagRequired("shape")
}

func runSectionProperties(cmd *cobra.Command, args []string) error {
	spec := section.Spec{
		Type:            section.Shape(propShape),
		Width:           propWidth,
		Height:          propHeight,
		Diameter:        propDiameter,
		WebThickness:    propWeb,
		FlangeThickness: propFlange,
	}
	sec, err := section.Parse(spec)
	if err != nil {
		return err
	}
	props := sec.Properties()

	if propJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(props)
	}

	printHeader("SECTION PROPERTIES")
	fmt.Println("SECTION:")
	fmt.Println(rule)
	fmt.Printf("  %s\n", section.Describe(sec))
	fmt.Println()
	printProperties(props)
	return nil
}

func printProperties(p section.Properties) {
	fmt.Println("PROPERTIES (strong axis):")
	fmt.Println(rule)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Area (A):\t%.6g m²\t(%.2f mm²)\n", p.Area, p.Area*1e6)
	fmt.Fprintf(w, "  Moment of Inertia (I):\t%.6g m⁴\t(%.4g mm⁴)\n", p.MomentOfInertia, p.MomentOfInertia*1e12)
	fmt.Fprintf(w, "  Section Modulus (S):\t%.6g m³\t(%.4g mm³)\n", p.SectionModulus, p.SectionModulus*1e9)
	w.Flush()
	fmt.Println()
}
