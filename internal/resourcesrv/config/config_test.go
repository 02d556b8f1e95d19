package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name    string
		config  string
		env     map[string]string
		wantErr bool
		check   func(t *testing.T, c *ConfigParam)
	}{
		{
			name:   "defaults without a file",
			config: "",
			check: func(t *testing.T, c *ConfigParam) {
				assert.Equal(t, "3000", c.ServerPort)
				assert.Equal(t, "/api", c.APIPrefix)
				assert.True(t, c.HandleCORS)
				assert.Equal(t, DriverSQLite, c.Database.Driver)
			},
		},
		{
			name: "file overrides defaults",
			config: `server_port = "8080"
handle_cors = false
api_prefix = "v1/"

[database]
driver = "postgresql"
dsn = "postgres://u:p@localhost:5432/resources"`,
			check: func(t *testing.T, c *ConfigParam) {
				assert.Equal(t, "8080", c.ServerPort)
				assert.False(t, c.HandleCORS)
				assert.Equal(t, "/v1", c.APIPrefix)
				assert.Equal(t, DriverPostgreSQL, c.Database.Driver)
				assert.Equal(t, 10, c.Database.MaxOpenConns)
			},
		},
		{
			name:   "root prefix",
			config: `api_prefix = "/"`,
			check: func(t *testing.T, c *ConfigParam) {
				assert.Equal(t, "", c.APIPrefix)
			},
		},
		{
			name:   "environment wins over file",
			config: `server_port = "8080"`,
			env:    map[string]string{"PORT": "9999", "DATABASE_URL": "file:test.db"},
			check: func(t *testing.T, c *ConfigParam) {
				assert.Equal(t, "9999", c.ServerPort)
				assert.Equal(t, "file:test.db", c.Database.DSN)
			},
		},
		{
			name: "unknown driver",
			config: `[database]
driver = "mysql"`,
			wantErr: true,
		},
		{
			name:    "malformed toml",
			config:  `server_port = `,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range []string{"PORT", "DB_DRIVER", "DATABASE_URL", "LOG_LEVEL"} {
				t.Setenv(k, "")
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			file := ""
			if tt.config != "" {
				file = filepath.Join(tmpDir, "config.toml")
				require.NoError(t, os.WriteFile(file, []byte(tt.config), 0644))
			}
			err := LoadConfig(file)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, Config())
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
