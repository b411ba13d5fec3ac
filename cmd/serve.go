package main

import (
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/sf-asset-bridge/internal/match"
	"github.com/sells-group/sf-asset-bridge/internal/resilience"
	"github.com/sells-group/sf-asset-bridge/internal/server"
	"github.com/sells-group/sf-asset-bridge/pkg/salesforce"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the asset match API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		matcher, err := match.NewMatcher()
		if err != nil {
			return err
		}

		var mockOpts []salesforce.MockOption
		if cfg.Enrichment.Seed != 0 {
			mockOpts = append(mockOpts, salesforce.WithSeed(cfg.Enrichment.Seed))
		}
		enricher := salesforce.NewHardened(
			salesforce.NewMockEnricher(mockOpts...),
			salesforce.WithTimeout(time.Duration(cfg.Enrichment.TimeoutSecs)*time.Second),
			salesforce.WithRetry(resilience.RetryConfig{MaxAttempts: cfg.Enrichment.RetryAttempts}),
		)

		svc := match.NewService(matcher, enricher, cfg.Cache.Capacity)
		api := server.New(cfg.Server, svc)

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: api.Handler(),
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server", zap.Any("cache_stats", svc.CacheStats()))
			srv.Shutdown(ctx)
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
