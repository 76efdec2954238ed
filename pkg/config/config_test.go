package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoggingConfig_ComponentLevelsAreCaseInsensitive(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		levels        map[string]string
		component     string
		expectedLevel string
	}{
		{
			name:          "upper case component key",
			levels:        map[string]string{"API": "debug"},
			component:     "api",
			expectedLevel: "debug",
		},
		{
			name:          "padded mixed case key and level",
			levels:        map[string]string{" Moralis-Client ": " WARN "},
			component:     "moralis-client",
			expectedLevel: "warn",
		},
		{
			name:          "lookup with mixed case component",
			levels:        map[string]string{"relay": "error"},
			component:     "Relay",
			expectedLevel: "error",
		},
		{
			name:          "unset component uses default",
			levels:        map[string]string{"API": "debug"},
			component:     "metrics",
			expectedLevel: "info",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := &LoggingConfig{ComponentLevels: tt.levels}
			cfg.ApplyDefaults()
			require.NoError(t, cfg.Validate())

			require.Equal(t, tt.expectedLevel, cfg.GetComponentLevel(tt.component))
		})
	}
}

func TestLoggingConfig_NilIsInfo(t *testing.T) {
	t.Parallel()

	var cfg *LoggingConfig
	require.Equal(t, "info", cfg.GetComponentLevel("api"))
	require.Equal(t, "info", cfg.GetDefaultLevel())
	require.False(t, cfg.IsDevelopment())
}
