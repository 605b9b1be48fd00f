package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
)

type AnalyzerConfiguration struct {
	ListenAddress string `json:"ListenAddress"`

	DatabasePath  string `json:"DatabasePath"`
	OutputDir     string `json:"OutputDir"`
	PersistImages bool   `json:"PersistImages"`

	// MaxItems caps the max size a request may ask for; 0 selects DefaultMaxItems.
	MaxItems int `json:"MaxItems"`

	EnableMetrics bool `json:"EnableMetrics"`

	ReadTimeoutSeconds     int `json:"ReadTimeoutSeconds"`
	WriteTimeoutSeconds    int `json:"WriteTimeoutSeconds"`
	ShutdownTimeoutSeconds int `json:"ShutdownTimeoutSeconds"`
}

func ReadConfigurationFile(path string) AnalyzerConfiguration {
	byteValue, err := os.ReadFile(path)
	if err != nil {
		log.Fatal(err)
	}

	config, err := ParseConfiguration(byteValue)
	if err != nil {
		log.Fatal(err)
	}

	return config
}

func ParseConfiguration(byteValue []byte) (AnalyzerConfiguration, error) {
	var config AnalyzerConfiguration
	if err := json.Unmarshal(byteValue, &config); err != nil {
		return AnalyzerConfiguration{}, fmt.Errorf("parse configuration: %w", err)
	}

	if config.MaxItems < 0 {
		return AnalyzerConfiguration{}, errors.New("MaxItems must not be negative")
	}
	if config.PersistImages && config.OutputDir == "" {
		return AnalyzerConfiguration{}, errors.New("PersistImages requires OutputDir")
	}

	config.applyDefaults()
	return config, nil
}
