package config

import (
	"time"
)

const (
	DefaultListenAddress          = ":3000"
	DefaultReadTimeoutSeconds     = 10
	DefaultWriteTimeoutSeconds    = 300
	DefaultShutdownTimeoutSeconds = 15

	// DefaultMaxItems keeps quadratic sweeps within the write timeout.
	DefaultMaxItems = 100000
)

func (c *AnalyzerConfiguration) ReadTimeout() time.Duration {
	return time.Duration(c.ReadTimeoutSeconds) * time.Second
}

func (c *AnalyzerConfiguration) WriteTimeout() time.Duration {
	return time.Duration(c.WriteTimeoutSeconds) * time.Second
}

func (c *AnalyzerConfiguration) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}

func (c *AnalyzerConfiguration) WithDatabase() bool {
	return c.DatabasePath != ""
}

func (c *AnalyzerConfiguration) WithImageStore() bool {
	return c.PersistImages && c.OutputDir != ""
}

func (c *AnalyzerConfiguration) applyDefaults() {
	if c.ListenAddress == "" {
		c.ListenAddress = DefaultListenAddress
	}
	if c.MaxItems == 0 {
		c.MaxItems = DefaultMaxItems
	}
	if c.ReadTimeoutSeconds <= 0 {
		c.ReadTimeoutSeconds = DefaultReadTimeoutSeconds
	}
	if c.WriteTimeoutSeconds <= 0 {
		c.WriteTimeoutSeconds = DefaultWriteTimeoutSeconds
	}
	if c.ShutdownTimeoutSeconds <= 0 {
		c.ShutdownTimeoutSeconds = DefaultShutdownTimeoutSeconds
	}
}

// Default returns a configuration without persistence, with default timeouts and size cap.
func Default() AnalyzerConfiguration {
	c := AnalyzerConfiguration{}
	c.applyDefaults()
	return c
}
