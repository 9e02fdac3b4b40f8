package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{
			name:     "empty address",
			addr:     NetAddress{},
			expected: "",
		},
		{
			name:     "localhost with port",
			addr:     NetAddress{Host: "localhost", Port: 8080},
			expected: "localhost:8080",
		},
		{
			name:     "IP address with port",
			addr:     NetAddress{Host: "127.0.0.1", Port: 9090},
			expected: "127.0.0.1:9090",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		expected    NetAddress
	}{
		{
			name:     "valid localhost",
			input:    "localhost:8080",
			expected: NetAddress{Host: "localhost", Port: 8080},
		},
		{
			name:     "valid IP",
			input:    "127.0.0.1:9090",
			expected: NetAddress{Host: "127.0.0.1", Port: 9090},
		},
		{
			name:        "missing port",
			input:       "localhost",
			expectError: true,
		},
		{
			name:        "non-numeric port",
			input:       "localhost:http",
			expectError: true,
		},
		{
			name:        "zero port",
			input:       "localhost:0",
			expectError: true,
		},
		{
			name:        "bogus host",
			input:       "not-an-ip:8080",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)

			if tt.expectError {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, addr)
		})
	}
}

func TestParseEnv(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", "0.0.0.0:9999")
	t.Setenv("STORAGE_DB_DATABASE_URI", "/tmp/test.sqlite")
	t.Setenv("APP_OWNER_ID", "7")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "0.0.0.0:9999", cfg.Server.HTTPAddress)
	assert.Equal(t, "/tmp/test.sqlite", cfg.Storage.DB.DSN)
	assert.Equal(t, int64(7), cfg.App.OwnerID)
}

func TestParseJSON(t *testing.T) {
	jsonBody := `{
		"app": {"owner_id": 3, "version": "1.2.3"},
		"storage": {"db": {"dsn": "journal.sqlite"}},
		"server": {"http_address": "localhost:8088", "request_timeout": "45s", "shutdown_timeout": "2s"}
	}`

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(jsonBody), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, int64(3), cfg.App.OwnerID)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "journal.sqlite", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:8088", cfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 2*time.Second, cfg.Server.ShutdownTimeout)
}

func TestParseJSON_FileMissing(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestConfigBuilder_DefaultsApplied(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, int64(1), cfg.App.OwnerID)
	assert.Equal(t, "daybook.sqlite", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
}

func TestConfigBuilder_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Storage: Storage{DB: DB{DSN: "explicit.sqlite"}},
	})
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "explicit.sqlite", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress, "defaults still fill untouched fields")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     StructuredConfig
		wantErr error
	}{
		{
			name: "valid",
			cfg: StructuredConfig{
				App:     App{OwnerID: 1},
				Storage: Storage{DB: DB{DSN: "db.sqlite"}},
				Server:  Server{HTTPAddress: "localhost:8080", RequestTimeout: time.Second},
			},
		},
		{
			name: "empty DSN",
			cfg: StructuredConfig{
				App:    App{OwnerID: 1},
				Server: Server{HTTPAddress: "localhost:8080", RequestTimeout: time.Second},
			},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "missing address",
			cfg: StructuredConfig{
				App:     App{OwnerID: 1},
				Storage: Storage{DB: DB{DSN: "db.sqlite"}},
				Server:  Server{RequestTimeout: time.Second},
			},
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name: "zero owner id",
			cfg: StructuredConfig{
				Storage: Storage{DB: DB{DSN: "db.sqlite"}},
				Server:  Server{HTTPAddress: "localhost:8080", RequestTimeout: time.Second},
			},
			wantErr: ErrInvalidAppConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
