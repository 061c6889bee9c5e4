package tabledef

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
)

// ErrConfigValidation is returned when configuration validation fails
var ErrConfigValidation = errors.New("configuration validation failed")

// DefaultLibrary is used when no library is configured or requested
const DefaultLibrary = "work"

// Config represents the tabledef configuration
type Config struct {
	Dialect         string              `yaml:"dialect"`
	Library         string              `yaml:"library"`
	Output          string              `yaml:"output"`
	EchoLog         bool                `yaml:"echo_log"`
	Databases       map[string]Database `yaml:"databases"`
	SchemaOverrides map[string]string   `yaml:"schema_overrides"` // library -> SQL Server schema
}

// Database represents database connection configuration
type Database struct {
	Driver     string `yaml:"driver"`
	Connection string `yaml:"connection"`
	Schema     string `yaml:"schema"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Dialect: string(DialectNative),
		Library: DefaultLibrary,
	}
}

// LoadConfig loads configuration from the specified file path. A missing file is
// not an error; defaults are returned instead. Environment variables referenced as
// ${VAR} in connection strings are expanded, honoring a .env file when present.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// .env is optional; ignore load failures
	_ = godotenv.Load()

	for name, db := range config.Databases {
		db.Connection = ExpandEnvVars(db.Connection)
		config.Databases[name] = db
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the configuration for consistency
func (c *Config) Validate() error {
	if _, err := ParseDialect(c.Dialect); err != nil {
		return fmt.Errorf("%w: %s", ErrConfigValidation, err)
	}
	for name, db := range c.Databases {
		if db.Connection == "" {
			return fmt.Errorf("%w: database %q has no connection string", ErrConfigValidation, name)
		}
	}
	return nil
}

// LibraryOrDefault resolves the effective library name
func (c *Config) LibraryOrDefault(library string) string {
	if library != "" {
		return library
	}
	if c.Library != "" {
		return c.Library
	}
	return DefaultLibrary
}

var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// ExpandEnvVars replaces ${VAR} references with environment variable values.
// Unset variables expand to the empty string.
func ExpandEnvVars(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		name := envVarPattern.FindStringSubmatch(match)[1]
		return os.Getenv(name)
	})
}
