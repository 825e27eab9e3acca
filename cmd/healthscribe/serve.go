package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gupta19esha/HealthScribeGPT/pkg/logger"
	"github.com/gupta19esha/HealthScribeGPT/pkg/server"

	"github.com/spf13/cobra"
)

var (
	addrFlag    string
	originsFlag []string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Serve the journal over HTTP, including POST /api/analyze. The listen address
defaults to HEALTHSCRIBE_ADDR (or :8080). The server shuts down gracefully on
SIGINT or SIGTERM.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, dbConn, path, err := openService()
		if err != nil {
			return err
		}
		defer dbConn.Close()

		addr := addrFlag
		if addr == "" {
			addr = cfg.Addr
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		srv := server.New(svc, server.Config{
			Addr:         addr,
			Debug:        debugMode,
			AllowOrigins: originsFlag,
		})

		if cfg.OpenAI.APIKey == "" {
			logger.Warn("OPENAI_API_KEY is not set; /api/analyze and analytics will fail with a missing credential error")
		}
		fmt.Fprintf(os.Stderr, "HealthScribe API listening on %s (DB: %s)\n", addr, path)
		return srv.Run(ctx)
	},
}

func initServeCmd() {
	serveCmd.Flags().StringVar(&addrFlag, "addr", "", "Listen address")
	serveCmd.Flags().StringSliceVar(&originsFlag, "origin", nil, "Allowed CORS origin (repeatable)")
}

