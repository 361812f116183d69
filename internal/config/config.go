package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// DefaultServerURL matches the agent server's default uvicorn port.
	DefaultServerURL = "http://localhost:8000"

	ModeServer = "server"
	ModeDirect = "direct"
)

// DirectProfile configures the OpenAI-compatible endpoint used when the
// client runs without an agent server.
type DirectProfile struct {
	APIKey  string `json:"api_key"`
	BaseURL string `json:"base_url,omitempty"`
	Model   string `json:"model"`
}

type Config struct {
	ServerURL string        `json:"server_url"`
	Mode      string        `json:"mode"`
	Direct    DirectProfile `json:"direct"`
}

func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	// Ensure config directory exists
	if err := ensureConfigDir(configPath); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	// Load existing config or create default
	config, err := loadConfigFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	config.applyEnvOverrides()
	config.normalize()

	return config, nil
}

// EffectiveServerURL is the base endpoint resolved once at startup.
func (c *Config) EffectiveServerURL() string {
	if c.ServerURL == "" {
		return DefaultServerURL
	}
	return c.ServerURL
}

// DirectConfigured reports whether direct mode has enough to run.
func (c *Config) DirectConfigured() bool {
	return c.Direct.APIKey != ""
}

// Dir returns the directory holding the config, session state and log files.
func Dir() (string, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return "", err
	}
	return filepath.Dir(configPath), nil
}

// StatePath is the session state file next to the config.
func StatePath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "state.json"), nil
}

// LogPath is the log file next to the config; the TUI owns stdout.
func LogPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "threadline.log"), nil
}

func (c *Config) applyEnvOverrides() {
	if url := os.Getenv("THREADLINE_SERVER_URL"); url != "" {
		c.ServerURL = url
	}
}

func (c *Config) normalize() {
	if c.Mode != ModeDirect {
		c.Mode = ModeServer
	}
	if c.Direct.Model == "" {
		c.Direct.Model = "gpt-4o-mini"
	}
}

func getConfigPath() (string, error) {
	var configDir string

	// Use THREADLINE_HOME if set, otherwise use user's home directory
	if tlHome := os.Getenv("THREADLINE_HOME"); tlHome != "" {
		configDir = tlHome
	} else {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = filepath.Join(homeDir, ".threadline")
	}

	return filepath.Join(configDir, "config.json"), nil
}

func ensureConfigDir(configPath string) error {
	configDir := filepath.Dir(configPath)
	return os.MkdirAll(configDir, 0755)
}

func loadConfigFile(configPath string) (*Config, error) {
	// If config file doesn't exist, create default
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

func createDefaultConfig(configPath string) (*Config, error) {
	config := &Config{
		ServerURL: DefaultServerURL,
		Mode:      ModeServer,
		Direct: DirectProfile{
			Model: "gpt-4o-mini",
		},
	}

	if err := saveConfig(config, configPath); err != nil {
		return nil, err
	}

	return config, nil
}

func saveConfig(config *Config, configPath string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0600)
}

func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	return saveConfig(c, configPath)
}
