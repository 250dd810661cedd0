package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	LogLevel  int      `yaml:"log_level"`
	Playlists []string `yaml:"playlists"`

	Shuffle ShuffleConfig `yaml:"shuffle"`
	Storage StorageConfig `yaml:"storage"`
}

type ShuffleConfig struct {
	// Seed for the shuffle random source. Zero seeds from the clock.
	Seed uint64 `yaml:"seed"`
}

type StorageConfig struct {
	// Type of storage: "local" or "gcs"
	Type string `yaml:"type"`

	// Local storage options
	DataDir   string `yaml:"data_dir"`
	OutputDir string `yaml:"output_dir"`

	// GCS storage options
	Bucket          string `yaml:"bucket"`
	ObjectPrefix    string `yaml:"object_prefix"`
	CredentialsFile string `yaml:"credentials_file"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config *Config

	// Unmarshal the YAML data into the struct
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, err
	}
	if config == nil {
		config = &Config{}
	}

	config.setDefaults()
	return config, nil
}

func (c *Config) setDefaults() {
	if c.Storage.Type == "" {
		c.Storage.Type = "local"
	}

	if c.Storage.DataDir == "" {
		c.Storage.DataDir = "data"
	}

	if c.Storage.OutputDir == "" {
		c.Storage.OutputDir = "output"
	}
}
