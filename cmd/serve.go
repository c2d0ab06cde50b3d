package cmd

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/vigil-sh/vigil/internal/api"
	"github.com/vigil-sh/vigil/internal/decision/metrics"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the Vigil server",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")

		components, err := f.BuildComponents(metrics.New())
		if err != nil {
			return err
		}
		defer func() {
			if err := components.Auditor.Close(); err != nil {
				log.Error().Err(err).Msg("closing auditor")
			}
		}()

		if addr == "" {
			addr = components.Config.Server.Addr
		}
		if addr == "" {
			addr = ":8420"
		}

		signingKey := []byte(components.Config.Server.SigningKey)
		if len(signingKey) == 0 {
			// without a configured key the compliance endpoints are
			// unreachable; generate one so the server still starts
			signingKey = make([]byte, 32)
			if _, err := rand.Read(signingKey); err != nil {
				return fmt.Errorf("generating signing key: %w", err)
			}
			log.Warn().Msg("no signing key configured, compliance endpoints will reject all tokens")
		}

		srv := api.NewServer(components.Service, components.Auditor)

		server := &http.Server{
			Addr:    addr,
			Handler: srv.Routes(signingKey),
		}

		go func() {
			log.Info().Msgf("Starting server on %s...", addr)
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatal().Err(err).Msg("Server crashed")
			}
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Info().Msg("Shutting down server...")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", "", "Address to listen on (overrides config)")
	f.bindConfigFlag(serveCmd.Flags())
}
