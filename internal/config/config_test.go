package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCSV(t *testing.T) {
	assert.Nil(t, CSV(""))
	assert.Equal(t, []string{"http://localhost:5173"}, CSV("http://localhost:5173"))
	assert.Equal(t, []string{"a", "b"}, CSV(" a , b ,"))
}

func TestEnvIntDefault(t *testing.T) {
	t.Setenv("TEST_PORT", "8081")
	assert.Equal(t, 8081, EnvIntDefault("TEST_PORT", 3000))

	t.Setenv("TEST_PORT", "not-a-number")
	assert.Equal(t, 3000, EnvIntDefault("TEST_PORT", 3000))

	assert.Equal(t, 3000, EnvIntDefault("TEST_PORT_UNSET", 3000))
}

func TestEnvDefault(t *testing.T) {
	t.Setenv("TEST_LOG_LEVEL", "warn")
	assert.Equal(t, "warn", EnvDefault("TEST_LOG_LEVEL", "info"))
	assert.Equal(t, "info", EnvDefault("TEST_LOG_LEVEL_UNSET", "info"))
}
