package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"filefinder/internal/eventbus"
)

// CurrentVersion is the config format version written by SaveToPath
const CurrentVersion = 1

// Config represents the application configuration
type Config struct {
	Version    int            `toml:"version"`
	StartDir   string         `toml:"start_dir"` // folder picker start directory
	UISettings UISettings     `toml:"ui"`
	Opener     OpenerSettings `toml:"opener"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ConfirmDelete bool `toml:"confirm_delete"`
	ShowHelpHint  bool `toml:"show_help_hint"`
}

// OpenerSettings configures how containing folders are revealed
type OpenerSettings struct {
	Command string `toml:"command"` // overrides the platform opener when set
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns the per-user config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "filefinder", "config.toml")
}

// NewConfigService creates a config service reading path, or DefaultPath()
// when path is empty. bus may be nil.
func NewConfigService(path string, bus eventbus.EventBus) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{
		bus:      bus,
		filePath: path,
	}
}

// Path returns the file this service loads from
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from the service's file, returning the
// defaults when the file does not exist
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	existing := true
	if errors.Is(err, os.ErrNotExist) {
		cfg, err, existing = DefaultConfig(), nil, false
	}
	if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath, Existing: existing})
	}
	return cfg, nil
}

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Version > CurrentVersion {
		return nil, fmt.Errorf("unsupported config version %d", cfg.Version)
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentVersion,
		UISettings: UISettings{
			ConfirmDelete: false,
			ShowHelpHint:  true,
		},
	}
}

// ResolveStartDir picks the folder picker's first directory: the current
// root, then the configured start_dir, then the working directory
func (c *Config) ResolveStartDir(root string) string {
	if root != "" {
		return root
	}
	if c != nil && c.StartDir != "" {
		if info, err := os.Stat(c.StartDir); err == nil && info.IsDir() {
			return c.StartDir
		}
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}
