package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alexiusacademia/gobeam/internal/config"
	"github.com/alexiusacademia/gobeam/internal/version"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string

	// Loaded before every command runs
	cfg    config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "gobeam",
	Short: "Simply-supported beam analysis tool",
	Long: `gobeam - Go Beam Analyzer

A CLI tool and HTTP service for the elastic analysis of
simply-supported beams under point, distributed and moment loads.

This tool helps structural engineers perform:
  - Support reaction calculation
  - Shear force and bending moment diagrams
  - Deflection by double integration
  - Cross-section property calculation
  - PDF and spreadsheet reporting

Units are SI throughout: m, N, Pa.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gobeam v%-48s║\n", version.Version)
		fmt.Println("  ║   Go Beam Analyzer                                        ║")
		fmt.Printf("  ║   %-56s║\n", version.Author+" ©  "+version.Year)
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for the analysis of simply-supported beams.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Reactions, shear, moment and deflection diagrams")
		fmt.Println("    • Material and cross-section catalogs")
		fmt.Println("    • Saved projects with an embedded database")
		fmt.Println("    • PDF, XLSX and image exports")
		fmt.Println("    • HTTP API with 'gobeam serve'")
		fmt.Println()
		fmt.Println("  Use 'gobeam --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SilenceErrors = true

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ./"+config.DefaultFile+" if present)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
}

func loadConfig(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}
	if logLevel != "" {
		if _, err := config.ParseLevel(logLevel); err != nil {
			return err
		}
		cfg.Log.Level = logLevel
	}
	logger = cfg.Log.NewLogger(os.Stderr)
	slog.SetDefault(logger)
	return nil
}
