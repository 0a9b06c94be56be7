package cmd

import (
	"errors"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/project"
	"github.com/spf13/cobra"
)

var (
	// Beam definition inputs
	analyzeFile     string
	analyzeLength   float64
	analyzePoint    []string
	analyzeUDL      []string
	analyzeMoment   []string
	analyzeSupport  []string
	analyzeMaterial string
	analyzePreset   string
	analyzeE        float64
	analyzeI        float64
	analyzeNumPts   int

	// Outputs
	analyzeOutput outputOptions
)

var beamAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a simply-supported beam",
	Long: `Calculate support reactions, shear force, bending moment and
deflection of a beam resting on two simple supports.

The beam comes from a JSON or YAML definition (--file) or from flags.
Without --support flags the beam is supported at both ends.

Load flags may repeat:
  --point  pos:value          concentrated load (N)
  --udl    pos:length:value   uniformly distributed load (N/m)
  --moment pos:value          concentrated moment (N·m, clockwise positive)

Examples:
  # 10 m beam with a 1 kN point load at midspan
  gobeam beam analyze --length 10 --point 5:1000

  # Steel I-beam under a UDL, with ASCII diagrams
  gobeam beam analyze -L 6 --udl 0:6:2500 --material steel --section i_beam_200 --diagram

  # From a file, exporting a PDF report and plots
  gobeam beam analyze --file lintel.yaml --report lintel.pdf --output lintel.png`,
	RunE: runBeamAnalyze,
}

func init() {
	beamCmd.AddCommand(beamAnalyzeCmd)

	// Definition flags
	beamAnalyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "Beam definition file (.json, .yaml)")
	beamAnalyzeCmd.Flags().Float64VarP(&analyzeLength, "length", "L", 0, "Beam length (m)")
	beamAnalyzeCmd.Flags().StringArrayVar(&analyzePoint, "point", nil, "Point load pos:value (repeatable)")
	beamAnalyzeCmd.Flags().StringArrayVar(&analyzeUDL, "udl", nil, "Distributed load pos:length:value (repeatable)")
	beamAnalyzeCmd.Flags().StringArrayVar(&analyzeMoment, "moment", nil, "Concentrated moment pos:value (repeatable)")
	beamAnalyzeCmd.Flags().StringArrayVar(&analyzeSupport, "support", nil, "Support pos[:kind] (default: both ends)")

	// Material and section flags
	beamAnalyzeCmd.Flags().StringVarP(&analyzeMaterial, "material", "m", "", "Material id (see 'gobeam materials')")
	beamAnalyzeCmd.Flags().StringVarP(&analyzePreset, "section", "s", "", "Section preset id (see 'gobeam section presets')")
	beamAnalyzeCmd.Flags().Float64VarP(&analyzeE, "elastic-modulus", "E", 0, "Elastic modulus E (Pa), overrides --material")
	beamAnalyzeCmd.Flags().Float64VarP(&analyzeI, "inertia", "I", 0, "Moment of inertia I (m⁴), overrides --section")
	beamAnalyzeCmd.Flags().IntVar(&analyzeNumPts, "points", 0, "Number of grid intervals (default from config)")

	addOutputFlags(beamAnalyzeCmd, &analyzeOutput)

	beamAnalyzeCmd.MarkFlagsMutuallyExclusive("file", "length")
	beamAnalyzeCmd.MarkFlagsOneRequired("file", "length")
}

func addOutputFlags(c *cobra.Command, o *outputOptions) {
	c.Flags().BoolVar(&o.JSON, "json", false, "Print the analysis as JSON")
	c.Flags().BoolVarP(&o.Diagram, "diagram", "d", false, "Show ASCII diagrams")
	c.Flags().StringVarP(&o.Image, "output", "o", "", "Export diagrams to an image (.png, .svg, .pdf)")
	c.Flags().StringVar(&o.PDF, "report", "", "Export a PDF report")
	c.Flags().StringVar(&o.XLSX, "xlsx", "", "Export an XLSX workbook")
}

func runBeamAnalyze(cmd *cobra.Command, args []string) error {
	def, err := analyzeDefinition()
	if err != nil {
		return err
	}

	req, err := def.Request(cfg.Analysis)
	if err != nil {
		return err
	}
	b, err := beam.New(req)
	if err != nil {
		return err
	}
	a, err := b.Analyze()
	if err != nil {
		return err
	}
	logger.Debug("beam analyzed", "length", b.Length, "loads", len(b.Loads()), "points", b.NumPoints)

	return emit(b, a, def.Name, analyzeOutput)
}

// analyzeDefinition builds the definition from --file or from flags. Flags
// naming material, section, E, I or points override the file.
func analyzeDefinition() (*project.Definition, error) {
	if analyzeFile != "" && len(analyzePoint)+len(analyzeUDL)+len(analyzeMoment) > 0 {
		return nil, errors.New("load flags cannot be combined with --file")
	}

	var def *project.Definition
	if analyzeFile != "" {
		d, err := project.LoadFromFile(analyzeFile)
		if err != nil {
			return nil, err
		}
		def = d
	} else {
		loads, err := collectLoads(analyzePoint, analyzeUDL, analyzeMoment)
		if err != nil {
			return nil, err
		}
		def = &project.Definition{Length: analyzeLength, Loads: loads}
	}

	if len(analyzeSupport) > 0 {
		def.Supports = def.Supports[:0]
		for _, s := range analyzeSupport {
			spec, err := parseSupport(s)
			if err != nil {
				return nil, err
			}
			def.Supports = append(def.Supports, spec)
		}
	}
	if len(def.Supports) == 0 {
		def.Supports = []beam.SupportSpec{
			{Type: beam.SupportSimple, Position: 0},
			{Type: beam.SupportSimple, Position: def.Length},
		}
	}

	if analyzeMaterial != "" {
		def.Material = analyzeMaterial
		def.ElasticModulus = 0
	}
	if analyzePreset != "" {
		def.SectionPreset = analyzePreset
		def.Section = nil
		def.MomentOfInertia = 0
	}
	if analyzeE != 0 {
		def.ElasticModulus = analyzeE
	}
	if analyzeI != 0 {
		def.MomentOfInertia = analyzeI
	}
	if analyzeNumPts != 0 {
		def.NumPoints = analyzeNumPts
	}
	return def, nil
}
