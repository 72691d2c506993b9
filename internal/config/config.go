// Package config resolves run settings from flags, environment, .env files and an
// optional config file.
package config

import (
	"os"
	"strings"
	"time"

	"emperror.dev/errors"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/callmegreg/gh-hulud-users/internal/types"
)

// EnvPrefix prefixes environment overrides, e.g. HULUD_ENTERPRISE_SLUG
const EnvPrefix = "HULUD"

// DefaultEnvFile is loaded when present and no other env file was requested
const DefaultEnvFile = ".env"

// Token environment variables in order of preference
var tokenEnvVars = []string{"GH_TOKEN", "GITHUB_TOKEN", "GITHUB_API_TOKEN"}

// Load resolves the configuration. Precedence, highest first: flags set on the command
// line, HULUD_* environment variables, the config file, flag defaults.
func Load(flags *pflag.FlagSet, configFile, envFile string) (*types.Config, error) {
	if err := loadEnvFile(envFile); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("query", types.DefaultSearchQuery)
	v.SetDefault("format", "table")
	v.SetDefault("timeout", 30*time.Second)

	if err := readConfigFile(v, configFile); err != nil {
		return nil, err
	}

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, errors.Wrap(err, "failed to bind flags")
		}
	}

	cfg := &types.Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to decode configuration")
	}

	cfg.Enterprise = strings.TrimSpace(cfg.Enterprise)
	cfg.ServerURL = strings.TrimSpace(cfg.ServerURL)
	if cfg.Token == "" {
		cfg.Token = ResolveToken()
	}
	return cfg, nil
}

// ResolveToken returns the first non-empty token from GH_TOKEN, GITHUB_TOKEN or
// GITHUB_API_TOKEN. An empty result lets gh's stored credentials take over.
func ResolveToken() string {
	for _, key := range tokenEnvVars {
		if value := strings.TrimSpace(os.Getenv(key)); value != "" {
			return value
		}
	}
	return ""
}

func loadEnvFile(envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return errors.Wrapf(err, "failed to load env file %s", envFile)
		}
		logrus.WithField("path", envFile).Debug("loaded env file")
		return nil
	}

	if _, err := os.Stat(DefaultEnvFile); err == nil {
		if err := godotenv.Load(DefaultEnvFile); err != nil {
			return errors.Wrapf(err, "failed to load env file %s", DefaultEnvFile)
		}
		logrus.WithField("path", DefaultEnvFile).Debug("loaded env file")
	}
	return nil
}

func readConfigFile(v *viper.Viper, configFile string) error {
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath("$XDG_CONFIG_HOME/gh-hulud-users")
		v.AddConfigPath("$HOME/.config/gh-hulud-users")
	}

	if err := v.ReadInConfig(); err != nil {
		if errors.As(err, &viper.ConfigFileNotFoundError{}) {
			logrus.Debug("no configuration file found")
			return nil
		}
		return errors.Wrap(err, "failed to read configuration file")
	}
	logrus.WithField("path", v.ConfigFileUsed()).Debug("loaded configuration file")
	return nil
}
