package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name: "valid development config",
			cfg: Config{
				Port:      "8642",
				JWTSecret: "dev-secret",
				Env:       "development",
			},
		},
		{
			name:    "missing port",
			cfg:     Config{JWTSecret: "dev-secret"},
			wantErr: "PORT is required",
		},
		{
			name:    "missing jwt secret",
			cfg:     Config{Port: "8642"},
			wantErr: "JWT_SECRET is required",
		},
		{
			name: "default secret rejected in production",
			cfg: Config{
				Port:      "8642",
				JWTSecret: "your-secret-key-change-in-production",
				Env:       "production",
			},
			wantErr: "JWT_SECRET must be changed",
		},
		{
			name: "short secret rejected in production",
			cfg: Config{
				Port:       "8642",
				JWTSecret:  "short",
				DBPassword: "s0meth1ng-strong",
				Env:        "production",
			},
			wantErr: "at least 32 characters",
		},
		{
			name: "weak db password rejected in production",
			cfg: Config{
				Port:       "8642",
				JWTSecret:  "0123456789abcdef0123456789abcdef",
				DBPassword: "password",
				Env:        "production",
			},
			wantErr: "strong DB_PASSWORD",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.Port)
	assert.NotEmpty(t, cfg.JWTSecret)
	assert.Equal(t, "development", cfg.Env)
}
