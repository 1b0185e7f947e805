// Package config loads the explicit configuration structure every script
// receives. Values come from an optional YAML file, a .env file, and
// NINJA_-prefixed environment variables; nothing lives in ambient globals.
package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"ninjadmin/ninja"
	"ninjadmin/secret"
)

type Config struct {
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	SecretFile   string `mapstructure:"secret_file"`
	Region       string `mapstructure:"region"`
	Host         string `mapstructure:"host"`
	Scope        string `mapstructure:"scope"`
	DeviceFilter string `mapstructure:"device_filter"`
	Output       string `mapstructure:"output"`
	PageSize     int    `mapstructure:"page_size"`
}

// Load reads the configuration. path may be empty, in which case
// ninjadmin.yaml is searched in the working directory and
// $HOME/.config/ninjadmin; a missing file is fine as long as the environment
// supplies the credentials.
func Load(path string) (Config, error) {
	// .env is optional sugar for local runs.
	_ = godotenv.Load()

	v := viper.New()
	// Every recognized key needs a default so environment-only values
	// survive Unmarshal.
	v.SetDefault("client_id", "")
	v.SetDefault("client_secret", "")
	v.SetDefault("secret_file", "")
	v.SetDefault("device_filter", "")
	v.SetDefault("output", "")
	v.SetDefault("region", "app")
	v.SetDefault("host", "ninjarmm.com")
	v.SetDefault("scope", "monitoring management")
	v.SetDefault("page_size", ninja.DefaultPageSize)
	v.SetEnvPrefix("NINJA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("ninjadmin")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/ninjadmin")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

// BaseURL assembles the regional API host.
func (c Config) BaseURL() string {
	return fmt.Sprintf("https://%s.%s", c.Region, c.Host)
}

// Credentials resolves the client secret, preferring the encrypted blob over
// a raw secret in configuration, and returns the inputs for the token grant.
func (c Config) Credentials() (ninja.Credentials, error) {
	if c.ClientID == "" {
		return ninja.Credentials{}, fmt.Errorf("client_id is required")
	}
	clientSecret := c.ClientSecret
	if c.SecretFile != "" {
		raw, err := secret.Load(c.SecretFile, secret.DefaultKeyPath(c.SecretFile))
		if err != nil {
			return ninja.Credentials{}, fmt.Errorf("load secret file: %w", err)
		}
		clientSecret = strings.TrimSpace(string(raw))
	} else if clientSecret != "" {
		log.Warn("[CONFIG] raw client_secret in configuration; prefer an encrypted secret_file")
	}
	if clientSecret == "" {
		return ninja.Credentials{}, fmt.Errorf("no client secret configured (set secret_file or client_secret)")
	}
	return ninja.Credentials{
		ClientID:     c.ClientID,
		ClientSecret: clientSecret,
		Scope:        c.Scope,
	}, nil
}
