// Package config handles loading taskflow.toml configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config represents the taskflow.toml configuration file. A taskflow.toml
// in the working directory overrides the global config file at
// ~/.config/taskflow/config.toml, key by key.
type Config struct {
	Database Database `toml:"database"`
	User     User     `toml:"user"`
	Remote   Remote   `toml:"remote"`
}

// Database contains persistence configuration.
type Database struct {
	// Path is the sqlite database file. Defaults to the XDG data dir
	// when empty. TASKFLOW_DB overrides both.
	Path string `toml:"path"`
}

// User identifies the acting user.
type User struct {
	ID    string `toml:"id"`
	Name  string `toml:"name"`
	Email string `toml:"email"`
	Role  string `toml:"role"`
}

// Remote tunes the simulated backing service. Useful for demos and for
// exercising failure handling; leave zero for instant, reliable operations.
type Remote struct {
	// LatencyMS is the simulated round-trip time in milliseconds.
	LatencyMS int `toml:"latency-ms"`

	// FailEvery makes every nth store operation fail. Zero disables.
	FailEvery int `toml:"fail-every"`
}

// Load loads configuration from dir and the global config file.
// Returns an empty config if no config files exist.
func Load(dir string) (*Config, error) {
	globalPath, err := globalConfigPath()
	if err != nil {
		return nil, err
	}

	globalCfg, globalMeta, err := loadConfigFile(globalPath)
	if err != nil {
		return nil, err
	}

	localCfg, localMeta, err := loadConfigFile(filepath.Join(dir, "taskflow.toml"))
	if err != nil {
		return nil, err
	}

	merged := mergeConfigs(globalCfg, localCfg, globalMeta, localMeta)
	applyEnv(merged)
	return merged, nil
}

// applyEnv applies TASKFLOW_* environment overrides on top of the merged
// file config. A .env file in the working directory is loaded into the
// environment before this runs.
func applyEnv(cfg *Config) {
	overrides := map[string]*string{
		"TASKFLOW_DB":         &cfg.Database.Path,
		"TASKFLOW_USER_ID":    &cfg.User.ID,
		"TASKFLOW_USER_NAME":  &cfg.User.Name,
		"TASKFLOW_USER_EMAIL": &cfg.User.Email,
		"TASKFLOW_USER_ROLE":  &cfg.User.Role,
	}
	for name, dest := range overrides {
		if value := strings.TrimSpace(os.Getenv(name)); value != "" {
			*dest = value
		}
	}
}

func globalConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "taskflow", "config.toml"), nil
}

func loadConfigFile(path string) (*Config, toml.MetaData, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, toml.MetaData{}, nil
	}
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return &cfg, meta, nil
}

func mergeConfigs(globalCfg, localCfg *Config, globalMeta, localMeta toml.MetaData) *Config {
	if globalCfg == nil {
		globalCfg = &Config{}
	}
	if localCfg == nil {
		localCfg = &Config{}
	}

	merged := Config{}
	merged.Database.Path = mergeString(localMeta.IsDefined("database", "path"), localCfg.Database.Path, globalCfg.Database.Path)
	merged.User.ID = mergeString(localMeta.IsDefined("user", "id"), localCfg.User.ID, globalCfg.User.ID)
	merged.User.Name = mergeString(localMeta.IsDefined("user", "name"), localCfg.User.Name, globalCfg.User.Name)
	merged.User.Email = mergeString(localMeta.IsDefined("user", "email"), localCfg.User.Email, globalCfg.User.Email)
	merged.User.Role = mergeString(localMeta.IsDefined("user", "role"), localCfg.User.Role, globalCfg.User.Role)
	merged.Remote.LatencyMS = mergeInt(localMeta.IsDefined("remote", "latency-ms"), localCfg.Remote.LatencyMS, globalCfg.Remote.LatencyMS)
	merged.Remote.FailEvery = mergeInt(localMeta.IsDefined("remote", "fail-every"), localCfg.Remote.FailEvery, globalCfg.Remote.FailEvery)

	return &merged
}

func mergeString(localDefined bool, localValue, globalValue string) string {
	value := globalValue
	if localDefined {
		value = localValue
	}
	return strings.TrimSpace(value)
}

func mergeInt(localDefined bool, localValue, globalValue int) int {
	if localDefined {
		return localValue
	}
	return globalValue
}
