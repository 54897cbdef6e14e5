package web

import (
	"encoding/json"
	"os"
)

// Config represents the web server configuration
type Config struct {
	Server    ServerConfig    `json:"server"`
	Whitelist WhitelistConfig `json:"whitelist"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Port int    `json:"port"`
	Host string `json:"host"`
}

// WhitelistConfig describes the barcode whitelist the server indexes at
// startup and the correction parameters it serves with.
type WhitelistConfig struct {
	Path           string `json:"path"`
	MaxDist        int    `json:"max_dist"`
	PartitionWidth int    `json:"partition_width"`
}

// LoadConfig loads configuration from a JSON file
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: 8080,
			Host: "0.0.0.0",
		},
		Whitelist: WhitelistConfig{
			MaxDist:        2,
			PartitionWidth: 16,
		},
	}
}
