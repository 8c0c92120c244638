package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// OutputConfig holds configuration settings related to output and logging.
type OutputConfig struct {
	Format     string `yaml:"format"`      // output format (currently "text")
	OutputFile string `yaml:"output_file"` // path to save the JSON report
	Verbose    bool   `yaml:"verbose"`     // enable verbose logging
}

// Config is the main struct to hold all configuration data from the YAML file.
// Every field has a working default, so running without a config.yaml is the
// normal case.
type Config struct {
	Target     string `yaml:"target"`      // GraphQL endpoint (or base URL with discover)
	Iterations int    `yaml:"iterations"`  // repetition count per attack query
	MaxRetries int    `yaml:"max_retries"` // HTTP retries for transient failures
	Delay      int    `yaml:"delay"`       // delay before each retry in milliseconds
	Timeout    int    `yaml:"timeout"`     // HTTP timeout in seconds
	Insecure   bool   `yaml:"insecure"`    // skip TLS certificate verification
	Discover   bool   `yaml:"discover"`    // treat the target as a base URL and locate the endpoint

	// UserAgent allows specifying a custom User-Agent header.
	UserAgent string `yaml:"user_agent"`

	// Output configuration settings.
	Output OutputConfig `yaml:"output"`
}

// LoadConfig reads the configuration from a YAML file and returns a Config.
// A missing file is not an error: defaults are returned unchanged.
func LoadConfig(filePath string) (*Config, error) {
	config := &Config{
		Iterations: 100,
		Timeout:    15,
		Output: OutputConfig{
			Format:  "text",
			Verbose: false,
		},
	}

	yamlFile, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(yamlFile, &config); err != nil {
		return nil, err
	}

	return config, nil
}
