// Package app holds the CLI application configuration loaded from config
// files, environment variables, and .env files.
package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/mepankajsingh/modelmap/pkg/credentials"
)

// Config holds the CLI configuration.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool

	// Config file
	ConfigFile string

	// Credential sources read from the config file
	APIKeys  map[string]string
	Settings map[string]credentials.ProviderSettings

	// Logging configuration
	LogLevel  string
	LogFormat string
}

// LoadConfig loads configuration in order of precedence: flags (handled by
// cobra), environment variables, .env files, then the config file.
func LoadConfig(configFile string) (*Config, error) {
	// Load .env files first so Viper's env binding sees them.
	loadEnvFiles()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.AddConfigPath(".")
			viper.SetConfigType("yaml")
			viper.SetConfigName(".modelmap")
		}
	}

	// Missing config file is fine; everything has env fallbacks.
	_ = viper.ReadInConfig()

	config := &Config{
		Verbose:    viper.GetBool("verbose"),
		Quiet:      viper.GetBool("quiet"),
		ConfigFile: viper.ConfigFileUsed(),
		APIKeys:    viper.GetStringMapString("api_keys"),
		LogLevel:   getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:  getEnvOrDefault("LOG_FORMAT", "auto"),
	}

	config.Settings = loadSettings()

	return config, nil
}

// Sources builds the credential sources handed to the library: config-file
// key map and settings, process environment for the rest.
func (c *Config) Sources() credentials.Sources {
	return credentials.Sources{
		APIKeys:  c.APIKeys,
		Settings: c.Settings,
	}
}

// loadSettings reads the per-provider settings block from the config file.
func loadSettings() map[string]credentials.ProviderSettings {
	raw := viper.GetStringMap("providers")
	if len(raw) == 0 {
		return nil
	}

	settings := make(map[string]credentials.ProviderSettings, len(raw))
	for id := range raw {
		settings[id] = credentials.ProviderSettings{
			APIKey:  viper.GetString("providers." + id + ".api_key"),
			BaseURL: viper.GetString("providers." + id + ".base_url"),
		}
	}
	return settings
}

// loadEnvFiles loads .env files from the current directory.
func loadEnvFiles() {
	for _, file := range []string{".env.local", ".env"} {
		if _, err := os.Stat(file); err == nil {
			_ = godotenv.Load(file)
		}
	}
}

// getEnvOrDefault returns the environment value or a default.
func getEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
