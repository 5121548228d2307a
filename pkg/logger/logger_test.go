package logger_test

import (
	"context"
	"lawscraper/pkg/logger"
	"testing"

	"github.com/stretchr/testify/require"

	"go.uber.org/zap"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name        string
		environment string
	}{
		{
			name:        "Development Environment",
			environment: logger.DevelopmentEnvironment,
		},
		{
			name:        "Production Environment",
			environment: logger.ProductionEnvironment,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// setup should not panic
			require.NotPanics(t, func() {
				logger.Setup(tt.environment)
			})

			// get a logger from context to verify setup worked
			ctx := context.Background()
			l := logger.Get(ctx)
			require.NotNil(t, l)
		})
	}
}

func TestGet_FallsBackToDefault(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	l := logger.Get(context.Background())
	require.NotNil(t, l)
}

func TestWithLogger_RoundTrip(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	custom := zap.NewNop()
	ctx := logger.WithLogger(context.Background(), custom)

	require.Same(t, custom, logger.Get(ctx))
}

func TestWithFields_DerivesNewLogger(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	base := context.Background()
	derived := logger.WithFields(base, zap.String("component", "test"))

	require.NotSame(t, logger.Get(base), logger.Get(derived))

	// logging through the helpers should not panic
	require.NotPanics(t, func() {
		logger.Debug(derived, "debug")
		logger.Info(derived, "info")
		logger.Warn(derived, "warn")
		logger.Error(derived, "error")
	})
}
