package logger

import (
	"sync"

	"github.com/gopostr/gopos/infra/config"
	"github.com/gopostr/gopos/infra/opensearch"
)

var (
	globalLogger *SystemLogger
	once         sync.Once
)

// InitGlobalLogger initializes the global system logger
func InitGlobalLogger(openSearchLogger *opensearch.Logger) {
	once.Do(func() {
		cfg := SystemLoggerConfig{
			EnableConsole:    true,
			EnableOpenSearch: openSearchLogger != nil,
			MinLevel:         LevelInfo,
			Service:          "gopos",
			Version:          "1.0.0",
			Environment:      config.GetEnv("ENVIRONMENT", "test"),
		}
		if cfg.Environment == "test" {
			cfg.MinLevel = LevelDebug
		}
		globalLogger = NewSystemLogger(openSearchLogger, cfg)
	})
}

// GetGlobalLogger returns the global logger instance
func GetGlobalLogger() *SystemLogger {
	if globalLogger == nil {
		// Fallback to console-only logger if not initialized
		globalLogger = NewSystemLogger(nil, SystemLoggerConfig{
			EnableConsole:    true,
			EnableOpenSearch: false,
			MinLevel:         LevelInfo,
			Service:          "gopos",
			Version:          "1.0.0",
			Environment:      "test",
		})
	}
	return globalLogger
}

// Debug logs a debug message using the global logger
func Debug(message string, ctx ...LogContext) {
	GetGlobalLogger().Debug(message, ctx...)
}

// Info logs an info message using the global logger
func Info(message string, ctx ...LogContext) {
	GetGlobalLogger().Info(message, ctx...)
}

// Warn logs a warning message using the global logger
func Warn(message string, ctx ...LogContext) {
	GetGlobalLogger().Warn(message, ctx...)
}

// Error logs an error message using the global logger
func Error(message string, err error, ctx ...LogContext) {
	GetGlobalLogger().Error(message, err, ctx...)
}

// Fatal logs a fatal message using the global logger and exits
func Fatal(message string, err error, ctx ...LogContext) {
	GetGlobalLogger().Fatal(message, err, ctx...)
}

// GatewayLogger adapts a SystemLogger to the narrow pos.Logger interface
// the gateway packages accept. The gateway name is fixed per instance.
type GatewayLogger struct {
	system  *SystemLogger
	gateway string
}

// ForGateway returns a pos.Logger-shaped view of the global logger.
func ForGateway(gateway string) *GatewayLogger {
	return &GatewayLogger{system: GetGlobalLogger(), gateway: gateway}
}

func (g *GatewayLogger) Debug(msg string, fields map[string]any) {
	g.system.Debug(msg, LogContext{Gateway: g.gateway, Fields: fields})
}

func (g *GatewayLogger) Error(msg string, fields map[string]any) {
	g.system.Error(msg, nil, LogContext{Gateway: g.gateway, Fields: fields})
}
