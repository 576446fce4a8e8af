package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/casefile/internal/logging"
	"github.com/ziadkadry99/casefile/internal/server"
	"github.com/ziadkadry99/casefile/internal/site"
)

var (
	serverPort int
	serverOpen bool
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the live case-study site",
	Long: `Serves the site over HTTP. With live_search enabled, each open page keeps a
WebSocket session that filters and highlights on the server as the visitor
types. Otherwise the search box submits the query as ?q=.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		s, err := loadSite(cfg)
		if err != nil {
			return err
		}

		renderer, err := site.NewRenderer(s, renderOptions(cfg))
		if err != nil {
			return fmt.Errorf("preparing templates: %w", err)
		}

		port := cfg.Port
		if cmd.Flags().Changed("port") {
			port = serverPort
		}

		srv := server.New(server.Config{
			Port:     port,
			AllowAll: cfg.AllowAllOrigins,
		}, site.NewHandler(renderer, cfg.AssetDir))

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		log := logging.Component("server")
		go func() {
			<-ctx.Done()
			log.Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.WithError(err).Warn("shutdown")
			}
		}()

		log.WithField("version", Version).WithField("pages", len(s.Pages)).
			WithField("live_search", cfg.LiveSearch).Info("casefile server starting")
		if serverOpen {
			go site.OpenBrowser(fmt.Sprintf("http://localhost:%d", port))
		}

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serverCmd.Flags().IntVar(&serverPort, "port", 0, "port to listen on (defaults to port from the config)")
	serverCmd.Flags().BoolVar(&serverOpen, "open", false, "open browser automatically")
	rootCmd.AddCommand(serverCmd)
}
