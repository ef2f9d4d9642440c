// Package config manages the schiavinato CLI's user preferences file: word
// count and k/n defaults, strict-validation policy, and terminal UI
// settings. It never stores shares or mnemonics — the scheme's Non-goals
// exclude persistent storage of secret material (spec.md §1); this is
// preferences only, the way a CLI tool's dotfile config normally is.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the on-disk preferences structure.
type Config struct {
	Version  string          `json:"version"`
	Defaults DefaultSettings `json:"defaults"`
	Security SecurityConfig  `json:"security"`
	UI       UIConfig        `json:"ui"`
}

// DefaultSettings holds the default split parameters offered by the CLI
// when the user doesn't pass explicit flags.
type DefaultSettings struct {
	WordCount int  `json:"word_count"` // 12 or 24
	Threshold int  `json:"threshold"`  // k
	Shares    int  `json:"shares"`     // n
}

// SecurityConfig controls recovery strictness and best-effort memory
// hygiene, both of which are meaningful even without persistent storage.
type SecurityConfig struct {
	StrictValidation bool `json:"strict_validation"` // require BIP39 checksum on recovered mnemonic
	WipeMemory       bool `json:"wipe_memory"`       // zeroise buffers after use (always true, informational)
}

// UIConfig holds terminal output preferences. No command reads these
// fields: color output, verbosity and confirmation prompts do not change
// with them.
type UIConfig struct {
	UseColor       bool   `json:"use_color"`
	Verbosity      string `json:"verbosity"` // quiet, normal, verbose
	ConfirmActions bool   `json:"confirm_actions"`
}

// ConfigManager loads and saves the preferences file.
type ConfigManager struct {
	config     *Config
	configPath string
}

// NewConfigManager loads the preferences file, creating it with defaults on
// first run.
func NewConfigManager() (*ConfigManager, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	cm := &ConfigManager{configPath: configPath}

	if err := cm.LoadConfig(); err != nil {
		cm.config = DefaultConfig()
		if err := cm.SaveConfig(); err != nil {
			return nil, fmt.Errorf("failed to save default config: %w", err)
		}
	}

	return cm, nil
}

// DefaultConfig returns the built-in preferences used before any file has
// been written.
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0.0",
		Defaults: DefaultSettings{
			WordCount: 12,
			Threshold: 2,
			Shares:    3,
		},
		Security: SecurityConfig{
			StrictValidation: true,
			WipeMemory:       true,
		},
		UI: UIConfig{
			UseColor:       true,
			Verbosity:      "normal",
			ConfirmActions: true,
		},
	}
}

// LoadConfig reads the preferences file from disk.
func (cm *ConfigManager) LoadConfig() error {
	data, err := os.ReadFile(cm.configPath)
	if err != nil {
		return err
	}

	config := &Config{}
	if err := json.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	cm.config = config
	return nil
}

// SaveConfig writes the preferences file to disk.
func (cm *ConfigManager) SaveConfig() error {
	configDir := filepath.Dir(cm.configPath)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cm.config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(cm.configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// GetConfig returns the current preferences.
func (cm *ConfigManager) GetConfig() *Config {
	return cm.config
}

// SetConfig replaces the current preferences in memory (call SaveConfig to
// persist).
func (cm *ConfigManager) SetConfig(config *Config) {
	cm.config = config
}

// getConfigPath resolves the preferences file location: $SCHIAVINATO_CONFIG,
// else $XDG_CONFIG_HOME/schiavinato/config.json, else
// ~/.config/schiavinato/config.json.
func getConfigPath() (string, error) {
	if customPath := os.Getenv("SCHIAVINATO_CONFIG"); customPath != "" {
		return customPath, nil
	}

	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "schiavinato", "config.json"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", "schiavinato", "config.json"), nil
}
