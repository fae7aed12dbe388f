package internal

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets the SIMPLF_* variables for the duration of the test
func clearEnv(t *testing.T) {
	for _, name := range []string{EnvLogLevel, EnvLogFormat, EnvColor, EnvHistory} {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, ioutil.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig("", false)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"), false)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"), true)
	assert.Error(t, err)
}

func TestLoadConfigFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "simplf.yaml", "log_level: debug\nlog_format: json\ncolor: false\n")

	cfg, err := LoadConfig(path, true)
	require.NoError(t, err)
	assert.Equal(t, Config{
		LogLevel:    "debug",
		LogFormat:   "json",
		Color:       false,
		HistoryFile: ".simplf_history",
	}, cfg)

	path = writeFile(t, "broken.yaml", "log_level: [debug\n")
	_, err = LoadConfig(path, true)
	assert.Error(t, err)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "simplf.yaml", "log_level: debug\n")

	t.Setenv(EnvLogLevel, "trace")
	t.Setenv(EnvHistory, "/tmp/simplf_history")
	t.Setenv(EnvColor, "false")

	cfg, err := LoadConfig(path, true)
	require.NoError(t, err)
	assert.Equal(t, "trace", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "/tmp/simplf_history", cfg.HistoryFile)
	assert.False(t, cfg.Color)

	t.Setenv(EnvColor, "sometimes")
	_, err = LoadConfig("", false)
	assert.Error(t, err)
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvLogFormat, "json")
	path := writeFile(t, ".env", "SIMPLF_LOG_LEVEL=error\nSIMPLF_LOG_FORMAT=text\n")

	require.NoError(t, LoadEnvFile(path, true))
	assert.Equal(t, "error", os.Getenv(EnvLogLevel))
	// Variables already set win over the file
	assert.Equal(t, "json", os.Getenv(EnvLogFormat))

	missing := filepath.Join(t.TempDir(), ".env")
	assert.NoError(t, LoadEnvFile(missing, false))
	assert.Error(t, LoadEnvFile(missing, true))
}

func TestNewLogger(t *testing.T) {
	var out bytes.Buffer
	cfg := DefaultConfig()
	cfg.LogLevel = "info"
	cfg.LogFormat = "json"

	logger, err := cfg.NewLogger(&out)
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())

	logger.WithField("fn", "<fn f>").Info("call")
	logger.Debug("hidden")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &entry))
	assert.Equal(t, "call", entry["msg"])
	assert.Equal(t, "<fn f>", entry["fn"])

	cfg.LogFormat = "xml"
	_, err = cfg.NewLogger(&out)
	assert.Error(t, err)

	cfg.LogFormat = "text"
	cfg.LogLevel = "loud"
	_, err = cfg.NewLogger(&out)
	assert.Error(t, err)
}
