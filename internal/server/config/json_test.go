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

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"endpoint_addr_grpc":             "www.example:9000",
		"database_dsn":                   "postgres://auth",
		"secret_key":                     "my_secret_key",
		"access_token_validity_duration": "24h",
		"argon2_time_cost":               5,
	})

	t.Run("loads from json", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", pathFlag}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, "www.example:9000", cfg.EndpointAddrGRPC)
		assert.Equal(t, "postgres://auth", cfg.DatabaseDSN)
		assert.Equal(t, "my_secret_key", cfg.SecretKey)
		assert.Equal(t, 24*time.Hour, cfg.AccessTokenValidityDuration)
		assert.Equal(t, uint32(5), cfg.Argon2TimeCost)
	})

	t.Run("no CONFIG and no flags → no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{
			EndpointAddrGRPC:            "defaults:1234",
			DatabaseDSN:                 "postgres://defaults",
			SecretKey:                   "key",
			AccessTokenValidityDuration: 2 * time.Minute,
			Argon2TimeCost:              3,
		}
		parseJson(cfg)

		assert.Equal(t, "defaults:1234", cfg.EndpointAddrGRPC)
		assert.Equal(t, "postgres://defaults", cfg.DatabaseDSN)
		assert.Equal(t, "key", cfg.SecretKey)
		assert.Equal(t, 2*time.Minute, cfg.AccessTokenValidityDuration)
		assert.Equal(t, uint32(3), cfg.Argon2TimeCost)
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		os.Args = []string{"testbin", "-config", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})
}
