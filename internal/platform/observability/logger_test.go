package observability_test

import (
	"testing"

	"github.com/nikolayk812/storefront/internal/platform/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  zapcore.Level
	}{
		{name: "debug", level: "DEBUG", want: zapcore.DebugLevel},
		{name: "padded warn", level: " warn ", want: zapcore.WarnLevel},
		{name: "empty falls back to info", level: "", want: zapcore.InfoLevel},
		{name: "garbage falls back to info", level: "loud", want: zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := observability.NewLogger(tt.level)
			require.NoError(t, err)

			assert.True(t, logger.Core().Enabled(tt.want))
			if tt.want > zapcore.DebugLevel {
				assert.False(t, logger.Core().Enabled(tt.want-1))
			}
		})
	}
}

func TestOrNop(t *testing.T) {
	assert.NotNil(t, observability.OrNop(nil))
}
