package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Report formats accepted by the format key.
const (
	FormatConsole  = "console"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)

// ConfigFiles lists the rc files looked up in the working directory, in
// priority order.
var ConfigFiles = []string{".racasrc.json", ".racasrc.yaml", ".racasrc.yml"}

// Config represents the racas build configuration
type Config struct {
	Root         string `mapstructure:"root" json:"root"`
	DataDir      string `mapstructure:"dataDir" json:"dataDir"`
	TemplatesDir string `mapstructure:"templatesDir" json:"templatesDir"`
	OutputDir    string `mapstructure:"outputDir" json:"outputDir"`
	Profile      string `mapstructure:"profile" json:"profile,omitempty"`
	Format       string `mapstructure:"format" json:"format"`
	Output       string `mapstructure:"output" json:"output,omitempty"`
	Quiet        bool   `mapstructure:"quiet" json:"quiet"`
	Verbose      bool   `mapstructure:"verbose" json:"verbose"`
	Concurrency  int    `mapstructure:"concurrency" json:"concurrency"`
	Parallel     bool   `mapstructure:"parallel" json:"parallel"`
	Watch        bool   `mapstructure:"watch" json:"watch"`
}

// DataPath returns the data directory resolved against the root.
func (c *Config) DataPath() string {
	return resolve(c.Root, c.DataDir)
}

// TemplatesPath returns the templates directory resolved against the root.
func (c *Config) TemplatesPath() string {
	return resolve(c.Root, c.TemplatesDir)
}

// OutputPath returns the output directory resolved against the root.
func (c *Config) OutputPath() string {
	return resolve(c.Root, c.OutputDir)
}

func resolve(root, dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(root, dir)
}

// SetDefaults registers the default value of every key.
func SetDefaults() {
	viper.SetDefault("root", ".")
	viper.SetDefault("dataDir", "data")
	viper.SetDefault("templatesDir", "templates")
	viper.SetDefault("outputDir", ".")
	viper.SetDefault("profile", "")
	viper.SetDefault("format", FormatConsole)
	viper.SetDefault("quiet", false)
	viper.SetDefault("verbose", false)
	viper.SetDefault("concurrency", 4)
	viper.SetDefault("parallel", false)
	viper.SetDefault("watch", false)
}

// LoadConfig loads configuration from defaults, an optional rc file and
// RACAS_* environment variables. A non-empty rootPath overrides the root key.
func LoadConfig(rootPath string) (*Config, error) {
	SetDefaults()

	for _, path := range ConfigFiles {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err == nil {
			break
		}
	}

	viper.SetEnvPrefix("RACAS")
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if rootPath != "" {
		config.Root = rootPath
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// validateConfig validates the configuration
func validateConfig(config *Config) error {
	switch config.Format {
	case FormatConsole, FormatJSON, FormatMarkdown:
	default:
		return fmt.Errorf("invalid format: %s. Must be 'console', 'json', or 'markdown'", config.Format)
	}

	if config.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1")
	}

	// JSON may go to stdout; markdown reports are always written to a file.
	if config.Format == FormatMarkdown && config.Output == "" {
		return fmt.Errorf("output file is required when format is 'markdown'")
	}

	if config.Root == "" {
		return fmt.Errorf("root must not be empty")
	}

	return nil
}

// SaveConfig writes the configuration to path as JSON.
func SaveConfig(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	jsonData, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	if err := os.WriteFile(path, append(jsonData, '\n'), 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}
