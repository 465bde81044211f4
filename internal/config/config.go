// Package config resolves run settings from flags, environment variables and
// an optional twinpage.yaml file.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvPrefix        = "TWINPAGE"
	DefaultThreshold = 8
	DefaultDPI       = 150
	DistinctDirName  = "distinct_files"
)

var (
	ErrInvalidThreshold = errors.New("threshold must be >= 0")
	ErrInvalidDPI       = errors.New("dpi must be > 0")
)

// Config holds everything one run needs.
type Config struct {
	Source     string   `mapstructure:"source"`
	Output     string   `mapstructure:"output"`
	Threshold  int      `mapstructure:"threshold"`
	DPI        float64  `mapstructure:"dpi"`
	Workers    int      `mapstructure:"workers"`
	Extensions []string `mapstructure:"extensions"`
	Images     bool     `mapstructure:"images"`
	LogLevel   string   `mapstructure:"log_level"`
	LogJSON    bool     `mapstructure:"log_json"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("source", "")
	v.SetDefault("output", "")
	v.SetDefault("threshold", DefaultThreshold)
	v.SetDefault("dpi", DefaultDPI)
	v.SetDefault("workers", runtime.NumCPU())
	v.SetDefault("extensions", []string{".pdf"})
	v.SetDefault("images", false)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_json", false)
}

// Load reads configuration into a Config. configFile may be empty, in which
// case twinpage.yaml is looked up in the working directory; a missing file is
// not an error.
func Load(v *viper.Viper, configFile string) (Config, error) {
	_ = godotenv.Load()

	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("twinpage")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.applyDerived()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyDerived() {
	if c.Output == "" && c.Source != "" {
		c.Output = DefaultOutput(c.Source)
	}
	if c.Workers < 1 {
		c.Workers = 1
	}
	if len(c.Extensions) == 0 {
		c.Extensions = []string{".pdf"}
	}
	exts := make([]string, len(c.Extensions))
	for i, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts[i] = ext
	}
	c.Extensions = exts
}

func (c Config) Validate() error {
	if c.Threshold < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidThreshold, c.Threshold)
	}
	if c.DPI <= 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidDPI, c.DPI)
	}
	return nil
}

// DefaultOutput places distinct files next to the source folder.
func DefaultOutput(source string) string {
	abs, err := filepath.Abs(source)
	if err != nil {
		abs = filepath.Clean(source)
	}
	return filepath.Join(filepath.Dir(abs), DistinctDirName)
}
