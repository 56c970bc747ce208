/*
Package config manages the TOML config shared by the wordcombo tools.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/bastiangx/wordcombo/internal/utils"
	"github.com/bastiangx/wordcombo/pkg/arrange"
	"github.com/bastiangx/wordcombo/pkg/report"
	"github.com/charmbracelet/log"
)

const (
	appDir   = "wordcombo"
	fileName = "config.toml"
)

// Config holds the entire config structure
type Config struct {
	Output    OutputConfig    `toml:"output"`
	Enumerate EnumerateConfig `toml:"enumerate"`
	Server    ServerConfig    `toml:"server"`
	CLI       CliConfig       `toml:"cli"`
}

// OutputConfig holds report file options.
type OutputConfig struct {
	File string `toml:"file"`
}

// EnumerateConfig holds engine options.
type EnumerateConfig struct {
	Parallel      bool   `toml:"parallel"`
	Case          string `toml:"case"`
	WarnOrderings int    `toml:"warn_orderings"`
}

// ServerConfig has IPC server options.
type ServerConfig struct {
	MaxLetters int `toml:"max_letters"`
	MaxLimit   int `toml:"max_limit"`
}

// CliConfig holds prompt defaults.
type CliConfig struct {
	DefaultMode string `toml:"default_mode"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			File: report.DefaultFile,
		},
		Enumerate: EnumerateConfig{
			Parallel:      false,
			Case:          arrange.FoldByMode.String(),
			WarnOrderings: 50_000_000,
		},
		Server: ServerConfig{
			MaxLetters: 12,
			MaxLimit:   0,
		},
		CLI: CliConfig{
			DefaultMode: "",
		},
	}
}

// CaseFold parses the configured case policy, falling back to the per-mode default.
func (c *Config) CaseFold() arrange.CaseFold {
	fold, err := arrange.ParseCaseFold(c.Enumerate.Case)
	if err != nil {
		log.Warnf("Invalid enumerate.case in config: %v. Using %q", err, arrange.FoldByMode)
	}
	return fold
}

// EngineOptions turns the enumerate section into engine options.
func (c *Config) EngineOptions() []arrange.Option {
	return []arrange.Option{
		arrange.WithCaseFold(c.CaseFold()),
		arrange.WithParallel(c.Enumerate.Parallel),
	}
}

// GetConfigDir returns the config directory with fallback priority:
// 1. $XDG_CONFIG_HOME/wordcombo or ~/.config/wordcombo
// 2. os.UserConfigDir()/wordcombo
// 3. the executable's dir
func GetConfigDir() (string, error) {
	var candidates []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		candidates = append(candidates, filepath.Join(xdg, appDir))
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config", appDir))
	} else {
		log.Errorf("Failed to get home directory: %v", err)
	}
	if userDir, err := os.UserConfigDir(); err == nil {
		candidates = append(candidates, filepath.Join(userDir, appDir))
	}

	for _, dir := range candidates {
		if utils.DirWritable(dir) {
			return dir, nil
		}
	}

	execDir, err := utils.ExecutableDir()
	if err != nil {
		log.Errorf("Failed to get executable directory: %v", err)
		return "", err
	}
	return execDir, nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from the -config flag
// 2. Default path: [config dir]/wordcombo/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customPath string) (*Config, string, error) {
	if customPath != "" {
		if _, statErr := os.Stat(customPath); statErr == nil {
			cfg, err := LoadConfig(customPath)
			if err == nil {
				log.Debugf("Loaded config from custom path: %s", customPath)
				return cfg, customPath, nil
			}
			log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customPath, err)
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customPath, statErr)
		}
	}

	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}

	cfg, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at %s: %v. Using built-in defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return cfg, defaultPath, nil
}

// InitConfig loads config from file or creates default if missing
func InitConfig(path string) (*Config, error) {
	if err := utils.EnsureDir(filepath.Dir(path)); err != nil {
		log.Warnf("Failed to create config directory for %s: %v. Using built-in defaults...", path, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(path) {
		cfg := DefaultConfig()
		if err := SaveConfig(cfg, path); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", path, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", path)
		return cfg, nil
	}

	return LoadConfig(path)
}

// LoadConfig loads from a TOML file
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := utils.LoadTOMLFile(path, cfg); err != nil {
		return tryPartialParse(path)
	}
	return cfg, nil
}

// tryPartialParse keeps every well-typed key of a file that fails strict decoding.
func tryPartialParse(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := utils.ParseTOMLWithRecovery(path)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", path, err)
		return cfg, nil
	}

	if section, ok := utils.ExtractSection(data, "output"); ok {
		if val, ok := utils.ExtractString(section, "file"); ok {
			cfg.Output.File = val
		}
	}
	if section, ok := utils.ExtractSection(data, "enumerate"); ok {
		extractEnumerateConfig(section, &cfg.Enumerate)
	}
	if section, ok := utils.ExtractSection(data, "server"); ok {
		if val, ok := utils.ExtractInt(section, "max_letters"); ok {
			cfg.Server.MaxLetters = val
		}
		if val, ok := utils.ExtractInt(section, "max_limit"); ok {
			cfg.Server.MaxLimit = val
		}
	}
	if section, ok := utils.ExtractSection(data, "cli"); ok {
		if val, ok := utils.ExtractString(section, "default_mode"); ok {
			cfg.CLI.DefaultMode = val
		}
	}
	return cfg, nil
}

func extractEnumerateConfig(data map[string]any, e *EnumerateConfig) {
	if val, ok := utils.ExtractBool(data, "parallel"); ok {
		e.Parallel = val
	}
	if val, ok := utils.ExtractString(data, "case"); ok {
		e.Case = val
	}
	if val, ok := utils.ExtractInt(data, "warn_orderings"); ok {
		e.WarnOrderings = val
	}
}

// SaveConfig saves into a TOML file
func SaveConfig(cfg *Config, path string) error {
	return utils.SaveTOMLFile(cfg, path)
}
