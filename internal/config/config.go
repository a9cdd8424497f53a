// SPDX-License-Identifier: MIT
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. SECTIONCSS_SERVER_HTTP_PORT
const EnvPrefix = "SECTIONCSS"

var v *viper.Viper

// DefaultPath returns $SECTIONCSS_CONFIG, or ~/.sectioncss/config.yaml
func DefaultPath() string {
	if p := os.Getenv(EnvPrefix + "_CONFIG"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".sectioncss", "config.yaml")
	}
	return filepath.Join(home, ".sectioncss", "config.yaml")
}

// InitConfig initializes the configuration system
func InitConfig(configPath string) error {
	v = viper.New()

	configDir := filepath.Dir(configPath)
	setDefaults(configDir)

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		// first run: write the defaults out so they can be edited
		if os.IsNotExist(err) {
			if err := v.WriteConfigAs(configPath); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
		} else {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	return nil
}

func setDefaults(dir string) {
	v.SetDefault("server.http_port", "8080")
	v.SetDefault("server.behind_proxy", false)
	v.SetDefault("server.tls_enabled", false)
	v.SetDefault("server.https_port", "8443")
	v.SetDefault("server.tls_cert", "")
	v.SetDefault("server.tls_key", "")

	v.SetDefault("database.type", "sqlite")
	v.SetDefault("database.path", filepath.Join(dir, "sectioncss.db"))

	v.SetDefault("theme.path", filepath.Join(dir, "theme.yaml"))
	v.SetDefault("theme.watch", true)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")

	v.SetDefault("auth.jwt_secret", "CHANGE_ME_IN_PRODUCTION_USE_ENV_VAR")
	v.SetDefault("auth.jwt_expiry_hours", 8)
	v.SetDefault("auth.login_attempts_per_minute", 5)
	v.SetDefault("auth.bcrypt_cost", 12)

	v.SetDefault("admin.allowed_ips", []string{})

	v.SetDefault("backup.path", filepath.Join(dir, "backups"))
	v.SetDefault("backup.interval", "24h")
	v.SetDefault("backup.keep", 10)
	v.SetDefault("backup.s3.bucket", "")
	v.SetDefault("backup.s3.prefix", "")
	v.SetDefault("backup.s3.region", "")
	v.SetDefault("backup.s3.endpoint", "")
	v.SetDefault("backup.s3.access_key", "")
	v.SetDefault("backup.s3.secret_key", "")
}

// Path returns the file the configuration was loaded from
func Path() string {
	if v == nil {
		return ""
	}
	return v.ConfigFileUsed()
}

// GetString returns a config value as string
func GetString(key string) string {
	if v == nil {
		return ""
	}
	return v.GetString(key)
}

// GetInt returns a config value as int
func GetInt(key string) int {
	if v == nil {
		return 0
	}
	return v.GetInt(key)
}

// GetBool returns a config value as bool
func GetBool(key string) bool {
	if v == nil {
		return false
	}
	return v.GetBool(key)
}

// GetStringSlice returns a list value; a space separated string is split
func GetStringSlice(key string) []string {
	if v == nil {
		return nil
	}
	return v.GetStringSlice(key)
}

// GetDuration returns a config value as time.Duration
func GetDuration(key string) time.Duration {
	if v == nil {
		return 0
	}
	return v.GetDuration(key)
}

// Set sets a config value and saves to file
func Set(key string, value interface{}) error {
	if v == nil {
		return fmt.Errorf("config not initialized")
	}

	v.Set(key, value)

	if err := v.WriteConfig(); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// GetAll returns all config values as a map
func GetAll() map[string]interface{} {
	if v == nil {
		return nil
	}
	return v.AllSettings()
}
