package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	os.Setenv("TEST_CONF_KEY", "value")
	defer os.Unsetenv("TEST_CONF_KEY")

	assert.Equal(t, "value", GetEnv("TEST_CONF_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("TEST_CONF_MISSING", "fallback"))
}

func TestGetBoolEnv(t *testing.T) {
	os.Setenv("TEST_CONF_BOOL", "true")
	defer os.Unsetenv("TEST_CONF_BOOL")

	assert.True(t, GetBoolEnv("TEST_CONF_BOOL", false))
	assert.True(t, GetBoolEnv("TEST_CONF_MISSING", true))

	os.Setenv("TEST_CONF_BOOL", "not-a-bool")
	assert.False(t, GetBoolEnv("TEST_CONF_BOOL", false))
}

func TestGetIntEnv(t *testing.T) {
	os.Setenv("TEST_CONF_INT", "42")
	defer os.Unsetenv("TEST_CONF_INT")

	assert.Equal(t, 42, GetIntEnv("TEST_CONF_INT", 7))
	assert.Equal(t, 7, GetIntEnv("TEST_CONF_MISSING", 7))

	os.Setenv("TEST_CONF_INT", "not-a-number")
	assert.Equal(t, 7, GetIntEnv("TEST_CONF_INT", 7))
}

func TestApp(t *testing.T) {
	app := App()
	assert.NotNil(t, app.Validator)
	assert.NotEmpty(t, app.InstanceID)

	// Singleton: same instance on every call.
	assert.Same(t, app, App())
}

func TestGetAppConfig(t *testing.T) {
	cfg := GetAppConfig()
	assert.NotEmpty(t, cfg.Port)
	assert.NotEmpty(t, cfg.AuditDBPath)
	assert.Same(t, cfg, GetAppConfig())
}

func TestRandomString(t *testing.T) {
	s := RandomString(16)
	assert.Len(t, s, 16)
	assert.NotEqual(t, s, RandomString(16))
}
