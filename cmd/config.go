package cmd

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cottand/sugar/frontend"
	"github.com/cottand/sugar/frontend/hygiene"
	"github.com/cottand/sugar/internal/log"
	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// DefaultConfigFile is read when no --config flag is given. It may be absent.
const DefaultConfigFile = "sugar.yaml"

const (
	EnvLogLevel       = "SUGAR_LOG_LEVEL"
	EnvHygienicPrefix = "SUGAR_HYGIENIC_PREFIX"
)

// ErrConfigValidation is returned when configuration validation fails
var ErrConfigValidation = errors.New("configuration validation failed")

type Config struct {
	LogLevel    string   `yaml:"log_level"`
	LogSections []string `yaml:"log_sections"`
	// HygienicPrefix starts the names of compiler-introduced temporaries
	HygienicPrefix string `yaml:"hygienic_prefix"`
	// Color forces coloured output on or off. Unset means colour when writing to a terminal.
	Color       *bool `yaml:"color"`
	Parallelism int   `yaml:"parallelism"`
}

func defaultConfig() *Config {
	return &Config{
		LogLevel:       slog.LevelError.String(),
		HygienicPrefix: hygiene.DefaultPrefix,
	}
}

// LoadConfig reads the configuration at configPath, if it exists, on top of the defaults.
// A .env file next to it is loaded into the environment first, and
// environment variables override what the file says.
func LoadConfig(configPath string) (*Config, error) {
	if err := loadEnvFile(filepath.Join(filepath.Dir(configPath), ".env")); err != nil {
		return nil, err
	}

	config := defaultConfig()
	data, err := os.ReadFile(configPath)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, errors.Wrap(err, "failed to read config file")
	default:
		// strict mode to detect unknown fields
		if err := yaml.UnmarshalWithOptions(data, config, yaml.Strict()); err != nil {
			return nil, errors.Wrap(err, "failed to parse config file")
		}
	}

	applyEnv(config)
	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func loadEnvFile(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return errors.Wrap(err, "failed to load .env file")
	}
	return nil
}

func applyEnv(config *Config) {
	if level, ok := os.LookupEnv(EnvLogLevel); ok && level != "" {
		config.LogLevel = level
	}
	if prefix, ok := os.LookupEnv(EnvHygienicPrefix); ok && prefix != "" {
		config.HygienicPrefix = prefix
	}
}

func (c *Config) validate() error {
	if _, err := c.level(); err != nil {
		return errors.Wrapf(ErrConfigValidation, "log_level %q: %v", c.LogLevel, err)
	}
	if c.HygienicPrefix == "" {
		return errors.Wrap(ErrConfigValidation, "hygienic_prefix must not be empty")
	}
	if c.Parallelism < 0 {
		return errors.Wrapf(ErrConfigValidation, "parallelism must not be negative, got %d", c.Parallelism)
	}
	return nil
}

func (c *Config) level() (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(c.LogLevel))
	return level, err
}

// Apply configures logging and output colouring
func (c *Config) Apply() {
	if level, err := c.level(); err == nil {
		log.SetLevel(level)
	}
	if len(c.LogSections) > 0 {
		log.SetSections(c.LogSections...)
	}
	if c.Color != nil {
		color.NoColor = !*c.Color
	}
}

func (c *Config) CompileSettings() frontend.PkgCompileSettings {
	return frontend.PkgCompileSettings{
		HygienicPrefix: c.HygienicPrefix,
		Parallelism:    c.Parallelism,
	}
}
