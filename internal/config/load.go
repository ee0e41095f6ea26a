package config

// This file implements layered config loading via viper: defaults, then an
// optional TOML config file, then MESHBATCH_* environment variables. CLI
// flags are applied on top by the command layer and take highest precedence.

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name, used for the config directory.
	AppName = "meshbatch"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileType is the config file format.
	ConfigFileType = "toml"
)

// ConfigDir returns the meshbatch configuration directory using
// platform-specific conventions: Windows uses %APPDATA%, macOS uses
// ~/Library/Application Support, and Linux/others use $XDG_CONFIG_HOME
// (defaulting to ~/.config).
func ConfigDir() (string, error) {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// Load builds a Config from defaults, an optional config file, and
// environment variables. When cfgFile is empty the default location is
// probed and a missing file is not an error; an explicitly named file must
// exist and parse.
func Load(cfgFile string) (Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	setDefaults(v, &cfg)

	v.SetEnvPrefix(strings.ToUpper(AppName))
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return cfg, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	} else if dir, err := ConfigDir(); err == nil {
		v.AddConfigPath(dir)
		v.SetConfigName(ConfigFileName)
		v.SetConfigType(ConfigFileType)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return cfg, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg.Subdirs = v.GetString("subdirs")
	cfg.ConverterCmd = v.GetString("converter")
	cfg.MakeInstanceable = v.GetBool("make-instanceable")
	cfg.CollisionApproximation = CollisionMode(v.GetString("collision-approximation"))
	cfg.MassKg = v.GetFloat64("mass")
	cfg.MaxLen = v.GetInt("max-len")
	cfg.EnvSize = v.GetInt("env-size")
	cfg.GridSize = v.GetInt("grid-size")
	cfg.DryRun = v.GetBool("dry-run")
	cfg.SkipExisting = v.GetBool("skip-existing")
	cfg.Verbose = v.GetBool("verbose")
	cfg.ColorMode = ColorMode(v.GetString("color"))
	cfg.LogFile = v.GetString("log-file")

	return cfg, nil
}

// setDefaults mirrors cfg into viper so file/env values layer on top of the
// stock defaults rather than zero values.
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("subdirs", cfg.Subdirs)
	v.SetDefault("converter", cfg.ConverterCmd)
	v.SetDefault("make-instanceable", cfg.MakeInstanceable)
	v.SetDefault("collision-approximation", string(cfg.CollisionApproximation))
	v.SetDefault("mass", cfg.MassKg)
	v.SetDefault("max-len", cfg.MaxLen)
	v.SetDefault("env-size", cfg.EnvSize)
	v.SetDefault("grid-size", cfg.GridSize)
	v.SetDefault("dry-run", cfg.DryRun)
	v.SetDefault("skip-existing", cfg.SkipExisting)
	v.SetDefault("verbose", cfg.Verbose)
	v.SetDefault("color", string(cfg.ColorMode))
	v.SetDefault("log-file", cfg.LogFile)
}
