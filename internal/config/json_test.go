package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: `"90m"`, want: 90 * time.Minute},
		{name: "nanoseconds", input: `1000000000`, want: time.Second},
		{name: "bad string", input: `"soon"`, wantErr: true},
		{name: "bool", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration(time.Hour))
	require.NoError(t, err)
	assert.JSONEq(t, `"1h0m0s"`, string(b))
}

func TestParseJSON_FullFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"app": {"cookie_secret": "0123456789abcdef", "cookie_name": "sid", "cookie_secure": true, "bcrypt_cost": 4},
		"storage": {"db": {"dsn": "postgres://json"}},
		"server": {"http_address": ":8080", "grpc_address": ":9090", "request_timeout": "15s", "cors_origins": ["http://x.test"]},
		"adapter": {"http_address": "http://localhost:8080", "request_timeout": "3s"},
		"client": {"post_id": 7}
	}`), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "0123456789abcdef", cfg.App.CookieSecret)
	assert.Equal(t, "sid", cfg.App.CookieName)
	assert.True(t, cfg.App.CookieSecure)
	assert.Equal(t, 4, cfg.App.BcryptCost)
	assert.Equal(t, "postgres://json", cfg.Storage.DB.DSN)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, []string{"http://x.test"}, cfg.Server.CORSOrigins)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, int64(7), cfg.Client.PostID)
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"app": `), 0o600))

	_, err := parseJSON(path)
	require.Error(t, err)
}
