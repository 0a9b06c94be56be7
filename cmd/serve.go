package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/alexiusacademia/gobeam/internal/server"
	"github.com/alexiusacademia/gobeam/internal/store"
	"github.com/alexiusacademia/gobeam/internal/version"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Serve the beam engine, catalog and project database over HTTP.

Routes:
  POST   /api/beam/analyze
  GET    /api/materials
  GET    /api/sections
  POST   /api/sections/properties
  POST   /api/report/generate
  GET    /api/projects
  POST   /api/projects
  GET    /api/projects/{id}
  DELETE /api/projects/{id}
  POST   /api/projects/{id}/analyze
  GET    /healthz
  GET    /metrics

The address comes from --addr, GOBEAM_ADDR, PORT or the config file.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default :5000)")
}

func runServe(cmd *cobra.Command, args []string) error {
	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
	}

	sc := store.DefaultConfig(cfg.Store.Path)
	sc.Logger = logger.With("component", "badger")
	st, err := store.Open(sc)
	if err != nil {
		return err
	}
	defer st.Close()

	srv := server.New(server.Options{
		Store:     st,
		Logger:    logger,
		Defaults:  cfg.Analysis,
		RateLimit: cfg.Server.RateLimit,
		RateBurst: cfg.Server.RateBurst,
	})

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logger.Info("starting gobeam", "version", version.Version, "store", cfg.Store.Path)
	return srv.Run(ctx, cfg.Server)
}
