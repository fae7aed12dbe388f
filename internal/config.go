package internal

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Environment variables read by LoadConfig
const (
	EnvLogLevel  = "SIMPLF_LOG_LEVEL"
	EnvLogFormat = "SIMPLF_LOG_FORMAT"
	EnvColor     = "SIMPLF_COLOR"
	EnvHistory   = "SIMPLF_HISTORY"
)

// Config holds the command line settings
type Config struct {
	LogLevel    string `yaml:"log_level"`
	LogFormat   string `yaml:"log_format"`
	Color       bool   `yaml:"color"`
	HistoryFile string `yaml:"history_file"`
}

// DefaultConfig returns the settings used when nothing else is given
func DefaultConfig() Config {
	return Config{
		LogLevel:    "warn",
		LogFormat:   "text",
		Color:       true,
		HistoryFile: ".simplf_history",
	}
}

// LoadEnvFile loads variables from a dotenv file without overriding the
// ones already set. A missing file is only an error when required.
func LoadEnvFile(path string, required bool) error {
	if _, err := os.Stat(path); os.IsNotExist(err) && !required {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading env file %s: %w", path, err)
	}
	return nil
}

// LoadConfig applies, in order, the defaults, the yaml file at path and
// the SIMPLF_* environment variables. A missing file is only an error when
// required.
func LoadConfig(path string, required bool) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		b, err := ioutil.ReadFile(path)
		switch {
		case os.IsNotExist(err) && !required:
		case err != nil:
			return cfg, fmt.Errorf("reading config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(b, &cfg); err != nil {
				return cfg, fmt.Errorf("parsing config %s: %w", path, err)
			}
		}
	}

	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		cfg.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvLogFormat); ok {
		cfg.LogFormat = v
	}
	if v, ok := os.LookupEnv(EnvHistory); ok {
		cfg.HistoryFile = v
	}
	if v, ok := os.LookupEnv(EnvColor); ok {
		color, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s=%q: %w", EnvColor, v, err)
		}
		cfg.Color = color
	}

	return cfg, nil
}

// NewLogger builds a logger writing to w with the configured level and format
func (c Config) NewLogger(w io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}

	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(level)

	switch c.LogFormat {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		logger.SetFormatter(&logrus.TextFormatter{
			DisableColors: !c.Color,
			FullTimestamp: true,
		})
	default:
		return nil, fmt.Errorf("unknown log format %q", c.LogFormat)
	}

	return logger, nil
}
