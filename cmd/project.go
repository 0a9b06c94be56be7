package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/project"
	"github.com/alexiusacademia/gobeam/internal/store"
	"github.com/spf13/cobra"
)

var (
	projectFile   string
	projectID     string
	projectJSON   bool
	projectOutput outputOptions
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Saved beam projects",
	Long: `Save beam definitions and their latest results in the local
project database (see store.path in the config, or GOBEAM_STORE).

Subcommands:
  save     - Save a definition file as a project
  list     - List saved projects
  show     - Show a project definition
  delete   - Delete a project
  analyze  - Analyze a project and store the results`,
}

var projectSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save a beam definition file as a project",
	Long: `Save a JSON or YAML beam definition. The definition is checked
before it is stored. Pass --id to replace an existing project.

Example:
  gobeam project save --file lintel.yaml`,
	Args: cobra.NoArgs,
	RunE: runProjectSave,
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved projects",
	Args:  cobra.NoArgs,
	RunE:  runProjectList,
}

var projectShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a saved project",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectShow,
}

var projectDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved project",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectDelete,
}

var projectAnalyzeCmd = &cobra.Command{
	Use:   "analyze <id>",
	Short: "Analyze a saved project and store the results",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectAnalyze,
}

func init() {
	rootCmd.AddCommand(projectCmd)
	projectCmd.AddCommand(projectSaveCmd, projectListCmd, projectShowCmd, projectDeleteCmd, projectAnalyzeCmd)

	projectSaveCmd.Flags().StringVarP(&projectFile, "file", "f", "", "Beam definition file (.json, .yaml) [required]")
	projectSaveCmd.Flags().StringVar(&projectID, "id", "", "Replace the project with this id")
	projectSaveCmd.MarkFlagRequired("file")

	projectShowCmd.Flags().BoolVar(&projectJSON, "json", false, "Print the project as JSON")

	addOutputFlags(projectAnalyzeCmd, &projectOutput)
}

// withStore opens the configured project database for the duration of fn
func withStore(fn func(*store.Store) error) error {
	sc := store.DefaultConfig(cfg.Store.Path)
	sc.Logger = logger
	s, err := store.Open(sc)
	if err != nil {
		return err
	}
	defer s.Close()
	return fn(s)
}

func runProjectSave(cmd *cobra.Command, args []string) error {
	def, err := project.LoadFromFile(projectFile)
	if err != nil {
		return err
	}
	req, err := def.Request(cfg.Analysis)
	if err != nil {
		return err
	}
	if _, err := beam.New(req); err != nil {
		return err
	}

	return withStore(func(s *store.Store) error {
		p := project.Project{Definition: *def}
		if projectID != "" {
			existing, err := s.Get(cmd.Context(), projectID)
			if err != nil {
				return err
			}
			p.ID = existing.ID
			p.CreatedAt = existing.CreatedAt
		}
		saved, err := s.Save(cmd.Context(), p)
		if err != nil {
			return err
		}
		logger.Info("project saved", "id", saved.ID, "name", saved.Name)
		fmt.Printf("Saved project %q with id %s\n", saved.Name, saved.ID)
		return nil
	})
}

func runProjectList(cmd *cobra.Command, args []string) error {
	return withStore(func(s *store.Store) error {
		list, err := s.List(cmd.Context())
		if err != nil {
			return err
		}
		if len(list) == 0 {
			fmt.Println("No saved projects.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tLENGTH (m)\tLOADS\tANALYZED\tUPDATED")
		for _, p := range list {
			analyzed := "no"
			if p.Results != nil {
				analyzed = "yes"
			}
			fmt.Fprintf(w, "%s\t%s\t%.3f\t%d\t%s\t%s\n",
				p.ID, p.Name, p.Length, len(p.Loads), analyzed, p.UpdatedAt.Local().Format("2006-01-02 15:04"))
		}
		return w.Flush()
	})
}

func runProjectShow(cmd *cobra.Command, args []string) error {
	return withStore(func(s *store.Store) error {
		p, err := s.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		if projectJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(p)
		}

		printHeader("PROJECT - " + p.Name)
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  ID:\t%s\n", p.ID)
		if p.Description != "" {
			fmt.Fprintf(w, "  Description:\t%s\n", p.Description)
		}
		fmt.Fprintf(w, "  Length:\t%.3f m\n", p.Length)
		if p.Material != "" {
			fmt.Fprintf(w, "  Material:\t%s\n", p.Material)
		}
		if p.SectionPreset != "" {
			fmt.Fprintf(w, "  Section preset:\t%s\n", p.SectionPreset)
		}
		if p.Section != nil {
			fmt.Fprintf(w, "  Section:\t%s\n", p.Section.Type)
		}
		fmt.Fprintf(w, "  Supports:\t%d\n", len(p.Supports))
		fmt.Fprintf(w, "  Loads:\t%d\n", len(p.Loads))
		fmt.Fprintf(w, "  Created:\t%s\n", p.CreatedAt.Local().Format("2006-01-02 15:04:05"))
		fmt.Fprintf(w, "  Updated:\t%s\n", p.UpdatedAt.Local().Format("2006-01-02 15:04:05"))
		if p.Results != nil {
			r := p.Results.Results
			fmt.Fprintf(w, "  Max |M|:\t%.2f N·m\n", r.Maxima.Moment)
			fmt.Fprintf(w, "  Max |δ|:\t%.3f mm\n", r.Maxima.Deflection*1000)
		}
		w.Flush()
		fmt.Println()
		return nil
	})
}

func runProjectDelete(cmd *cobra.Command, args []string) error {
	return withStore(func(s *store.Store) error {
		if err := s.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		logger.Info("project deleted", "id", args[0])
		fmt.Printf("Deleted project %s\n", args[0])
		return nil
	})
}

func runProjectAnalyze(cmd *cobra.Command, args []string) error {
	return withStore(func(s *store.Store) error {
		p, err := s.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		req, err := p.Request(cfg.Analysis)
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

		p.Results = a
		if _, err := s.Save(cmd.Context(), p); err != nil {
			return err
		}
		return emit(b, a, p.Name, projectOutput)
	})
}
