package logger

import (
	"testing"

	"github.com/gopostr/gopos/pos"
	"github.com/stretchr/testify/assert"
)

func TestSystemLogger_ShouldLog(t *testing.T) {
	sl := NewSystemLogger(nil, SystemLoggerConfig{MinLevel: LevelWarn})

	assert.False(t, sl.shouldLog(LevelDebug))
	assert.False(t, sl.shouldLog(LevelInfo))
	assert.True(t, sl.shouldLog(LevelWarn))
	assert.True(t, sl.shouldLog(LevelError))
	assert.True(t, sl.shouldLog(LevelFatal))
}

func TestSystemLogger_OpenSearchDisabledWithoutSink(t *testing.T) {
	sl := NewSystemLogger(nil, SystemLoggerConfig{EnableOpenSearch: true})
	assert.False(t, sl.enableOpenSearch)
}

func TestExtractComponent(t *testing.T) {
	assert.Equal(t, "pos/garanti", extractComponent("/home/dev/gopos/pos/garanti/client.go"))
	assert.Equal(t, "pkg", extractComponent("/somewhere/pkg/file.go"))
	assert.Equal(t, "unknown", extractComponent("file.go"))
}

func TestGatewayLogger_ImplementsPosLogger(t *testing.T) {
	var l pos.Logger = ForGateway("estpos")
	assert.NotPanics(t, func() {
		l.Debug("debug message", map[string]any{"order_id": "order-1"})
		l.Error("error message", nil)
	})
}

func TestGetGlobalLogger_Fallback(t *testing.T) {
	assert.NotNil(t, GetGlobalLogger())
	assert.Same(t, GetGlobalLogger(), GetGlobalLogger())
}
