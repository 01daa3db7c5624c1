// Command hubmock serves an in-memory Articles Hub backend for local
// development. Password links are written to the log instead of being
// emailed.
package main

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

	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/logging"
	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/testserver"
)

var (
	addr       string
	secret     string
	tokenTTL   time.Duration
	logLevel   string
	logBackend string
)

var rootCmd = &cobra.Command{
	Use:   "hubmock",
	Short: "Fake Articles Hub backend",
	Long: `hubmock serves the Articles Hub REST API from memory.

Seeded accounts:
  ` + testserver.AdminEmail + ` / ` + testserver.AdminPassword + ` (admin)
  ` + testserver.UserEmail + ` / ` + testserver.UserPassword + ` (user)`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := logging.New(logBackend, logLevel, os.Stderr)
		if err != nil {
			return err
		}
		srv, err := testserver.New(
			testserver.WithSecret([]byte(secret)),
			testserver.WithTokenTTL(tokenTTL),
			testserver.WithLogger(log),
		)
		if err != nil {
			return fmt.Errorf("build server: %w", err)
		}
		return serve(cmd.Context(), log, srv)
	},
}

func serve(ctx context.Context, log logging.Logger, h http.Handler) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	hs := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info(ctx, "hubmock listening", "addr", addr)
		errCh <- hs.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	log.Info(shutdownCtx, "hubmock shutting down")
	return hs.Shutdown(shutdownCtx)
}

func init() {
	rootCmd.Flags().StringVarP(&addr, "addr", "a", ":5000", "listen address")
	rootCmd.Flags().StringVar(&secret, "secret", "hubmock-dev-secret", "HS256 signing secret")
	rootCmd.Flags().DurationVar(&tokenTTL, "token-ttl", time.Hour, "issued token lifetime")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&logBackend, "log-backend", "slog", "log backend (slog, zap)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
