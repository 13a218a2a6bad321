package config

// Config holds runtime settings for the pilotdeck CLI.
//
// GatewayURL is the base URL of the hosted backend; the REST, auth and
// storage endpoints all hang off it. GatewayAPIKey is the project's public
// (anon) API key. The Storage* fields configure the S3-compatible blob
// store that holds certificate images.
type Config struct {
	GatewayURL    string
	GatewayAPIKey string

	StorageEndpoint  string
	StorageRegion    string
	StorageBucket    string
	StorageAccessKey string
	StorageSecretKey string

	// StoragePublicBaseURL is the prefix public object URLs are built from.
	// When empty it is derived from GatewayURL.
	StoragePublicBaseURL string
}

// LoadDefaults populates c with sensible defaults for a local stack.
func (c *Config) LoadDefaults() {
	c.GatewayURL = "http://127.0.0.1:8000"
	c.StorageEndpoint = "http://127.0.0.1:9000"
	c.StorageRegion = "us-east-1"
	c.StorageBucket = "certificates"
}

// PublicBaseURL returns the configured public object URL prefix, falling
// back to the gateway's public storage endpoint.
func (c *Config) PublicBaseURL() string {
	if c.StoragePublicBaseURL != "" {
		return c.StoragePublicBaseURL
	}
	return c.GatewayURL + "/storage/v1/object/public"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
