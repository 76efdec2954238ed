package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/goran-ethernal/SolanaRelay/internal/common"
	"github.com/goran-ethernal/SolanaRelay/internal/config"
	"github.com/goran-ethernal/SolanaRelay/internal/logger"
	"github.com/goran-ethernal/SolanaRelay/internal/metrics"
	"github.com/goran-ethernal/SolanaRelay/internal/moralis"
	"github.com/goran-ethernal/SolanaRelay/pkg/api"
	pkgconfig "github.com/goran-ethernal/SolanaRelay/pkg/config"
	"github.com/goran-ethernal/SolanaRelay/pkg/relay"
)

const (
	banner = `
╔═══════════════════════════════════════════╗
║           SolanaRelay %-8s            ║
║    Moralis Solana gateway HTTP relay      ║
╚═══════════════════════════════════════════╝
`
	metricsStopTimeout = 5 * time.Second
	checkKeyTimeout    = 30 * time.Second
)

var (
	configPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "relay",
	Short: "SolanaRelay - HTTP relay for the Moralis Solana gateway",
	Long: `SolanaRelay exposes token, wallet and pair endpoints, validates and normalizes
the request, forwards it to the Moralis Solana gateway with the configured API key
and returns the upstream JSON unchanged.

Without --config the relay is configured from the environment:
  MORALIS_API_KEY   upstream API key (required)
  MORALIS_BASE_URL  upstream base URL override
  PORT              listen port (default 8080)`,
	Version:      common.Version,
	SilenceUsage: true,
	RunE:         runRelay,
}

var checkKeyCmd = &cobra.Command{
	Use:   "check-key",
	Short: "Check the configured API key against the gateway",
	RunE:  runCheckKey,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"path to configuration file (.yaml, .json or .toml)")
	rootCmd.AddCommand(checkKeyCmd, routesCmd, schemaCmd)
}

// buildRelay wires the gateway client and relay from cfg.
func buildRelay(cfg *pkgconfig.Config) *relay.Relay {
	client := moralis.NewClient(
		cfg.Moralis,
		logger.NewComponentLoggerFromConfig(common.ComponentMoralisClient, cfg.Logging),
	)

	return relay.New(
		cfg.Moralis,
		client,
		logger.NewComponentLoggerFromConfig(common.ComponentRelay, cfg.Logging),
	)
}

func runRelay(cmd *cobra.Command, args []string) error {
	fmt.Fprintf(cmd.OutOrStdout(), banner, common.Version)

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.NewComponentLoggerFromConfig(common.ComponentAPI, cfg.Logging)
	defer func() {
		_ = log.Close()
	}()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := buildRelay(cfg)
	metrics.ComponentHealthSet(common.ComponentRelay, r.APIKeyConfigured())

	g, gctx := errgroup.WithContext(ctx)

	if cfg.Metrics != nil && cfg.Metrics.Enabled {
		metricsServer := metrics.NewServer(
			cfg.Metrics,
			logger.NewComponentLoggerFromConfig(common.ComponentMetrics, cfg.Logging),
		)
		if err := metricsServer.Start(gctx); err != nil {
			return fmt.Errorf("failed to start metrics server: %w", err)
		}

		g.Go(func() error {
			<-gctx.Done()

			stopCtx, cancel := context.WithTimeout(context.Background(), metricsStopTimeout)
			defer cancel()

			return metricsServer.Stop(stopCtx)
		})
	}

	apiServer := api.NewServer(&cfg.API, r, log)
	g.Go(func() error {
		return apiServer.Start(gctx)
	})

	log.Infow("relay started",
		"listen_address", cfg.API.ListenAddress,
		"upstream", cfg.Moralis.BaseURL,
		"routes", len(relay.Routes()),
		"log_level", log.GetLevel(),
	)

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	log.Info("relay stopped")
	return nil
}

func runCheckKey(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), checkKeyTimeout)
	defer cancel()

	if err := buildRelay(cfg).CheckAPIKey(ctx); err != nil {
		relayErr := relay.AsError(err)
		return fmt.Errorf("API key check failed (%s, status %d): %s",
			relayErr.Kind, relayErr.StatusCode, relayErr.Message)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "API key accepted by", cfg.Moralis.BaseURL)
	return nil
}
