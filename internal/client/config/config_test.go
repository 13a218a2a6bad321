package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var cfg Config
	cfg.LoadDefaults()

	require.Equal(t, "http://127.0.0.1:8000", cfg.GatewayURL)
	require.Equal(t, "certificates", cfg.StorageBucket)
	require.Equal(t, "us-east-1", cfg.StorageRegion)
}

func TestPublicBaseURL(t *testing.T) {
	var cfg Config
	cfg.LoadDefaults()
	require.Equal(t, "http://127.0.0.1:8000/storage/v1/object/public", cfg.PublicBaseURL())

	cfg.StoragePublicBaseURL = "https://cdn.example.com/certs"
	require.Equal(t, "https://cdn.example.com/certs", cfg.PublicBaseURL())
}

func TestParseJson_OverlaysOnlyPresentFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"gateway_url": "https://proj.example.co",
		"gateway_api_key": "anon-key",
		"storage_bucket": "scans"
	}`), 0o600))

	orig := os.Args
	defer func() { os.Args = orig }()
	os.Args = []string{"pilotdeck", "-c", path}

	var cfg Config
	cfg.LoadDefaults()
	parseJson(&cfg)

	require.Equal(t, "https://proj.example.co", cfg.GatewayURL)
	require.Equal(t, "anon-key", cfg.GatewayAPIKey)
	require.Equal(t, "scans", cfg.StorageBucket)
	// absent in the file, default kept
	require.Equal(t, "http://127.0.0.1:9000", cfg.StorageEndpoint)
}

func TestParseFlags_OverridesJson(t *testing.T) {
	orig := os.Args
	defer func() { os.Args = orig }()
	os.Args = []string{"pilotdeck", "-a", "https://flag.example.co", "-k", "flag-key"}

	var cfg Config
	cfg.LoadDefaults()
	parseFlags(&cfg)

	require.Equal(t, "https://flag.example.co", cfg.GatewayURL)
	require.Equal(t, "flag-key", cfg.GatewayAPIKey)
}
