package config

import (
	"encoding/json"
	"os"

	"pilotdeck/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Only fields
// present in the file overwrite the runtime Config.
type JsonConfig struct {
	GatewayURL    *string `json:"gateway_url"`
	GatewayAPIKey *string `json:"gateway_api_key"`

	StorageEndpoint      *string `json:"storage_endpoint"`
	StorageRegion        *string `json:"storage_region"`
	StorageBucket        *string `json:"storage_bucket"`
	StorageAccessKey     *string `json:"storage_access_key"`
	StorageSecretKey     *string `json:"storage_secret_key"`
	StoragePublicBaseURL *string `json:"storage_public_base_url"`
}

// parseJson overlays cfg with values loaded from the JSON file named by the
// -c or -config flag. When neither flag is given, nothing is loaded.
// Read or unmarshal errors panic; config problems should stop the program
// before it talks to anything.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	apply(&cfg.GatewayURL, jc.GatewayURL)
	apply(&cfg.GatewayAPIKey, jc.GatewayAPIKey)
	apply(&cfg.StorageEndpoint, jc.StorageEndpoint)
	apply(&cfg.StorageRegion, jc.StorageRegion)
	apply(&cfg.StorageBucket, jc.StorageBucket)
	apply(&cfg.StorageAccessKey, jc.StorageAccessKey)
	apply(&cfg.StorageSecretKey, jc.StorageSecretKey)
	apply(&cfg.StoragePublicBaseURL, jc.StoragePublicBaseURL)
}

func apply(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
