package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Output controls how the diagnosis is rendered.
type Output struct {
	// Format selects "human" or "json" output.
	Format string `toml:"format"`
	// Color is "auto", "always", or "never".
	Color string `toml:"color"`
	// Debug includes raw command transcripts in the rendered output.
	Debug bool `toml:"debug"`
}

// Tools overrides the binaries the probes consult.
type Tools struct {
	Pactl     string `toml:"pactl"`
	Aplay     string `toml:"aplay"`
	Systemctl string `toml:"systemctl"`
	// CommandTimeout bounds each probe command invocation, in seconds.
	CommandTimeout int `toml:"command_timeout"`
}

// Logging configures diagnostic logging on stderr.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Config encapsulates all configuration values for whynosound.
type Config struct {
	Output  Output  `toml:"output"`
	Tools   Tools   `toml:"tools"`
	Logging Logging `toml:"logging"`
}

// CommandTimeout returns the per-command timeout as a duration.
func (c *Config) CommandTimeout() time.Duration {
	return time.Duration(c.Tools.CommandTimeout) * time.Second
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/whynosound/config.toml")
}

// SampleConfig returns the embedded sample configuration file contents.
func SampleConfig() string {
	return sampleConfig
}

// Load locates, parses, and validates a configuration file. A missing file is
// not an error: defaults apply and exists reports false. An explicitly
// requested path must exist.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		if _, err := os.Stat(expanded); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return "", false, fmt.Errorf("config file %s does not exist", expanded)
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	projectPath, err := filepath.Abs("whynosound.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}
	return defaultPath, false, nil
}

func (c *Config) normalize() {
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	c.Output.Color = strings.ToLower(strings.TrimSpace(c.Output.Color))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Tools.Pactl = strings.TrimSpace(c.Tools.Pactl)
	c.Tools.Aplay = strings.TrimSpace(c.Tools.Aplay)
	c.Tools.Systemctl = strings.TrimSpace(c.Tools.Systemctl)
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case "human", "json":
	default:
		return fmt.Errorf("output.format must be \"human\" or \"json\", got %q", c.Output.Format)
	}
	switch c.Output.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("output.color must be \"auto\", \"always\", or \"never\", got %q", c.Output.Color)
	}
	if c.Tools.CommandTimeout <= 0 {
		return errors.New("tools.command_timeout must be a positive number of seconds")
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be \"console\" or \"json\", got %q", c.Logging.Format)
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && pathValue[1] == '/' {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	absolute, err := filepath.Abs(filepath.Clean(pathValue))
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", pathValue, err)
	}
	return absolute, nil
}
