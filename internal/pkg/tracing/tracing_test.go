//go:build unit

package tracing_test

import (
	"context"
	"errors"
	"testing"

	"consult-booking/internal/pkg/config"
	"consult-booking/internal/pkg/tracing"

	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	t.Run("success: disabled tracing returns a no-op shutdown", func(t *testing.T) {
		shutdown, err := tracing.Setup(context.Background(), config.TracingConfig{Enabled: false, Endpoint: "http://localhost:4318"})
		require.NoError(t, err)
		require.NoError(t, shutdown(context.Background()))
	})

	t.Run("success: enabled without endpoint stays no-op", func(t *testing.T) {
		shutdown, err := tracing.Setup(context.Background(), config.TracingConfig{Enabled: true})
		require.NoError(t, err)
		require.NoError(t, shutdown(context.Background()))
	})

	t.Run("success: spans can be started and ended on the global provider", func(t *testing.T) {
		ctx, span := tracing.Start(context.Background(), "test.span")
		require.NotNil(t, ctx)
		tracing.End(span, errors.New("boom"))
	})
}
