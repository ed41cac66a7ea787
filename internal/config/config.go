package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"carbitrage/internal/eventbus"
)

// MaxRecentSearches caps the persisted recent-search list
const MaxRecentSearches = 10

// Config represents the application configuration
type Config struct {
	Version        int        `toml:"version"`
	RecentSearches []string   `toml:"recent_searches"` // most recent first, capped
	Favorites      []string   `toml:"favorites"`       // favorited vehicle ids
	UISettings     UISettings `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ViewMode       string `toml:"view_mode"` // "grid" or "list"
	PageSize       int    `toml:"page_size"`
	AutosaveOnExit bool   `toml:"autosave_on_exit"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a new config service
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	appDir := filepath.Join(configDir, "carbitrage")
	os.MkdirAll(appDir, 0755)

	return &configService{
		filePath: filepath.Join(appDir, "config.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// Load loads the configuration from file
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		// Return default config if file doesn't exist
		cfg := DefaultConfig()
		cs.publishLoaded(cfg)
		return cfg, nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}

	cs.publishLoaded(cfg)
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	normalize(&cfg)
	return &cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func (cs *configService) publishLoaded(cfg *Config) {
	if cs.bus == nil {
		return
	}
	cs.bus.Publish(eventbus.ConfigLoadedEvent{
		RecentSearches: cfg.RecentSearches,
		Favorites:      cfg.Favorites,
	})
}

// normalize repairs values a hand-edited file may carry
func normalize(cfg *Config) {
	if cfg.RecentSearches == nil {
		cfg.RecentSearches = []string{}
	}
	if len(cfg.RecentSearches) > MaxRecentSearches {
		cfg.RecentSearches = cfg.RecentSearches[:MaxRecentSearches]
	}
	if cfg.Favorites == nil {
		cfg.Favorites = []string{}
	}
	if cfg.UISettings.ViewMode != "grid" && cfg.UISettings.ViewMode != "list" {
		cfg.UISettings.ViewMode = "grid"
	}
	if cfg.UISettings.PageSize <= 0 {
		cfg.UISettings.PageSize = 12
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:        1,
		RecentSearches: []string{},
		Favorites:      []string{},
		UISettings: UISettings{
			ViewMode:       "grid",
			PageSize:       12,
			AutosaveOnExit: true,
		},
	}
}
