package logger_test

import (
	"testing"

	"github.com/goran-ethernal/SolanaRelay/internal/common"
	"github.com/goran-ethernal/SolanaRelay/internal/logger"
	"github.com/goran-ethernal/SolanaRelay/pkg/config"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewComponentLoggerFromConfig(t *testing.T) {
	t.Parallel()

	relayConfig := &config.LoggingConfig{
		DefaultLevel: "warn",
		ComponentLevels: map[string]string{
			common.ComponentMoralisClient: "debug",
			common.ComponentAPI:           "error",
		},
	}

	tests := []struct {
		name          string
		cfg           *config.LoggingConfig
		component     string
		expectedLevel string
	}{
		{
			name:          "upstream client uses its own level",
			cfg:           relayConfig,
			component:     common.ComponentMoralisClient,
			expectedLevel: "debug",
		},
		{
			name:          "api server uses its own level",
			cfg:           relayConfig,
			component:     common.ComponentAPI,
			expectedLevel: "error",
		},
		{
			name:          "relay falls back to the default level",
			cfg:           relayConfig,
			component:     common.ComponentRelay,
			expectedLevel: "warn",
		},
		{
			name:          "missing logging section yields info",
			cfg:           nil,
			component:     common.ComponentMetrics,
			expectedLevel: "info",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			log := logger.NewComponentLoggerFromConfig(tt.component, tt.cfg)

			require.Equal(t, tt.component, log.GetComponent())
			require.Equal(t, tt.expectedLevel, log.GetLevel())
		})
	}
}

func TestNewComponentLoggerFromConfig_LoadedConfig(t *testing.T) {
	t.Parallel()

	// component names are matched case-insensitively once defaults are applied
	cfg := &config.LoggingConfig{
		DefaultLevel:    " INFO ",
		Development:     true,
		ComponentLevels: map[string]string{"Moralis-Client": "Debug"},
	}
	cfg.ApplyDefaults()
	require.NoError(t, cfg.Validate())

	require.Equal(t, "debug", logger.NewComponentLoggerFromConfig(common.ComponentMoralisClient, cfg).GetLevel())
	require.Equal(t, "info", logger.NewComponentLoggerFromConfig(common.ComponentRelay, cfg).GetLevel())
}

func TestLogger_LevelGatesUpstreamDebugLogs(t *testing.T) {
	t.Parallel()

	quiet := logger.NewComponentLogger(common.ComponentMoralisClient, "warn", false)
	require.False(t, quiet.Desugar().Core().Enabled(zapcore.DebugLevel))
	require.True(t, quiet.Desugar().Core().Enabled(zapcore.WarnLevel))

	verbose := logger.NewComponentLogger(common.ComponentMoralisClient, "debug", true)
	require.True(t, verbose.Desugar().Core().Enabled(zapcore.DebugLevel))
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	t.Parallel()

	_, err := logger.NewLogger("verbose", false)
	require.Error(t, err)

	require.Panics(t, func() {
		logger.NewComponentLogger(common.ComponentRelay, "verbose", false)
	})
}

func TestLogger_WithComponentSharesLevel(t *testing.T) {
	t.Parallel()

	root, err := logger.NewLogger("error", false)
	require.NoError(t, err)
	require.Empty(t, root.GetComponent())

	child := root.WithComponent(common.ComponentRelay)
	require.Equal(t, common.ComponentRelay, child.GetComponent())
	require.Equal(t, root.GetLevel(), child.GetLevel())
}

func TestNewNopLogger(t *testing.T) {
	t.Parallel()

	log := logger.NewNopLogger()
	require.NotPanics(t, func() {
		log.Infow("http request", "path", "/token-info/mainnet/abc", "status", 200)
		log.Warnw("upstream unavailable", "route", "token-info")
	})
	require.NoError(t, log.Close())
}
