package config

import (
	"os"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBase() *Config {
	return &Config{
		Env:        "production",
		Port:       "8396",
		JWTSecret:  "secure-secret-at-least-32-characters",
		DBPassword: "secure-password",
		DBSSLMode:  "require",
	}
}

func TestConfigValidateSSLMode(t *testing.T) {
	tests := []struct {
		name        string
		env         string
		sslMode     string
		expectError bool
	}{
		{"production with empty SSL mode", "production", "", true},
		{"production with disable SSL mode", "production", "disable", true},
		{"production with require SSL mode", "production", "require", false},
		{"prod with verify-full SSL mode", "prod", "verify-full", false},
		{"development with disable SSL mode", "development", "disable", false},
		{"test with empty SSL mode", "test", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validBase()
			c.Env = tt.env
			c.DBSSLMode = tt.sslMode
			err := c.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfigValidateProductionSecrets(t *testing.T) {
	c := validBase()
	c.JWTSecret = "your-secret-key-change-in-production"
	assert.Error(t, c.Validate())

	c = validBase()
	c.JWTSecret = "short"
	assert.Error(t, c.Validate())

	c = validBase()
	c.DBPassword = "password"
	assert.Error(t, c.Validate())
}

func TestConfigValidateRequiredFields(t *testing.T) {
	c := validBase()
	c.Port = ""
	assert.Error(t, c.Validate())

	c = validBase()
	c.JWTSecret = ""
	assert.Error(t, c.Validate())
}

func TestLoadConfigEnvOverride(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	os.Setenv("APP_ENV", "test")
	os.Setenv("PORT", "9999")
	t.Cleanup(func() {
		os.Unsetenv("APP_ENV")
		os.Unsetenv("PORT")
	})

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "test", cfg.Env)
	assert.Equal(t, "9999", cfg.Port)
	assert.Equal(t, "uploads", cfg.UploadDir)
}
