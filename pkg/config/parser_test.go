package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigParser(t *testing.T) {
	var pathToConfigFile = ""
	wd, _ := os.Getwd()

	if strings.HasSuffix(wd, "pkg/config") {
		pathToConfigFile = "../../"
	}
	pathToConfigFile += "cmd/config.json"

	config := ReadConfigurationFile(pathToConfigFile)

	if config.ListenAddress != ":3000" ||
		config.DatabasePath != "data/analysis.db" ||
		config.OutputDir != "data/out" ||
		config.PersistImages != true ||
		config.MaxItems != 100000 ||
		config.EnableMetrics != true ||
		config.ReadTimeoutSeconds != 10 ||
		config.WriteTimeoutSeconds != 300 ||
		config.ShutdownTimeoutSeconds != 15 {

		t.Error("Unexpected configuration read.")
	}
}

func TestParseConfigurationDefaults(t *testing.T) {
	config, err := ParseConfiguration([]byte(`{}`))
	require.NoError(t, err)

	assert.Equal(t, DefaultListenAddress, config.ListenAddress)
	assert.Equal(t, 10*time.Second, config.ReadTimeout())
	assert.Equal(t, 300*time.Second, config.WriteTimeout())
	assert.Equal(t, 15*time.Second, config.ShutdownTimeout())
	assert.Equal(t, DefaultMaxItems, config.MaxItems)
	assert.False(t, config.WithDatabase())
	assert.False(t, config.WithImageStore())
}

func TestParseConfigurationErrors(t *testing.T) {
	_, err := ParseConfiguration([]byte(`{"MaxItems": -1}`))
	assert.Error(t, err)

	_, err = ParseConfiguration([]byte(`{"PersistImages": true}`))
	assert.Error(t, err)

	_, err = ParseConfiguration([]byte(`not json`))
	assert.Error(t, err)
}

func TestReadConfigurationFileMissing(t *testing.T) {
	expectFatal(t, func() {
		ReadConfigurationFile(filepath.Join(t.TempDir(), "missing.json"))
	})
}

func expectFatal(t *testing.T, funcToTest func()) {
	fatal := false
	originalExitFunc := log.StandardLogger().ExitFunc
	log.Info("Expecting a fatal message during the test, overriding the exit function")
	// Replace logrus exit function
	log.StandardLogger().ExitFunc = func(int) {
		fatal = true
		t.SkipNow()
	}
	defer func() {
		log.StandardLogger().ExitFunc = originalExitFunc
		assert.True(t, fatal, "Expected log.Fatal to be called")
	}()
	funcToTest()
}

func TestDefault(t *testing.T) {
	config := Default()

	assert.Equal(t, DefaultListenAddress, config.ListenAddress)
	assert.Equal(t, DefaultMaxItems, config.MaxItems)
	assert.Equal(t, 15*time.Second, config.ShutdownTimeout())
}
