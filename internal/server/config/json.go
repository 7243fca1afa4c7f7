package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/authkeeper/internal/flagx"
	"github.com/dmitrijs2005/authkeeper/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON unmarshalling.
// It uses timex.Duration for interval fields, which allows parsing both
// string values such as "24h" and integer nanoseconds.
//
// This struct is an intermediate DTO (Data Transfer Object) used only for
// reading JSON configuration files. After unmarshalling, its fields are
// copied into the runtime Config struct which uses time.Duration.
type JsonConfig struct {
	EndpointAddrGRPC            string         `json:"endpoint_addr_grpc"`
	DatabaseDSN                 string         `json:"database_dsn"`
	SecretKey                   string         `json:"secret_key"`
	AccessTokenValidityDuration timex.Duration `json:"access_token_validity_duration"`
	Argon2TimeCost              uint32         `json:"argon2_time_cost"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The lookup order for the JSON file path is:
//
//	The -c or -config command-line flags.
//	If it is not set, no JSON file is loaded.
//
// If the file path is found, parseJson attempts to read and unmarshal it
// into a JsonConfig. The resulting values are copied into the target Config.
// If the file cannot be read or contains invalid JSON, the function panics.
//
// The caller is expected to merge these values with defaults and
// command-line flags as part of the full configuration process.
func parseJson(config *Config) {

	// try flags
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	config.EndpointAddrGRPC = c.EndpointAddrGRPC
	config.DatabaseDSN = c.DatabaseDSN
	config.SecretKey = c.SecretKey
	config.AccessTokenValidityDuration = time.Duration(c.AccessTokenValidityDuration.Duration)
	config.Argon2TimeCost = c.Argon2TimeCost
}
