package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEnvList(t *testing.T) {
	t.Setenv("TEST_ORIGINS", " https://a.example , ,https://b.example")
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, envList("TEST_ORIGINS", nil))

	t.Setenv("TEST_ORIGINS", " , ")
	assert.Equal(t, []string{"*"}, envList("TEST_ORIGINS", []string{"*"}))
}

func TestEnvIntFallsBackOnBadValues(t *testing.T) {
	t.Setenv("TEST_LIMIT", "12")
	assert.Equal(t, 12, envInt("TEST_LIMIT", 5))

	t.Setenv("TEST_LIMIT", "-1")
	assert.Equal(t, 5, envInt("TEST_LIMIT", 5))

	t.Setenv("TEST_LIMIT", "lots")
	assert.Equal(t, 5, envInt("TEST_LIMIT", 5))
}

func TestEnvDuration(t *testing.T) {
	t.Setenv("TEST_EXPIRY", "90m")
	assert.Equal(t, 90*time.Minute, envDuration("TEST_EXPIRY", time.Hour))

	t.Setenv("TEST_EXPIRY", "soon")
	assert.Equal(t, time.Hour, envDuration("TEST_EXPIRY", time.Hour))
}

func TestEnvironmentChecks(t *testing.T) {
	assert.True(t, (&Config{AppEnv: "development"}).IsDevelopment())
	assert.True(t, (&Config{AppEnv: "production"}).IsProduction())
	assert.False(t, (&Config{AppEnv: "staging"}).IsProduction())
}
