// Package conf contains utility functions for loading and parsing configuration files.
package conf

import (
	"os"

	"github.com/spf13/viper"
)

// APIConf describes a default configuration for the HTTP API.
type APIConf struct {
	URL     string `mapstructure:"url"`
	Timeout int    `mapstructure:"timeout"`
}

// WSConf describes a default configuration for the push websocket.
type WSConf struct {
	URL string `mapstructure:"url"`
}

// SessionConf describes the stored credentials for a client session.
type SessionConf struct {
	Token  string `mapstructure:"token"`
	UserID string `mapstructure:"user_id"`
	Name   string `mapstructure:"name"`
	Avatar string `mapstructure:"avatar"`
}

// TrackingConf describes a default configuration for analytics tracking.
type TrackingConf struct {
	Enabled bool   `mapstructure:"enabled"`
	Token   string `mapstructure:"token"`
}

// FeedConf describes tunables for the feed store.
type FeedConf struct {
	PageSize int `mapstructure:"page_size"`
}

// Load opens and parses a configuration file.
func Load(file string, conf interface{}) error {
	_, err := os.Stat(file)
	if err != nil {
		return err
	}

	viper.SetConfigFile(file)
	viper.SetConfigType("toml")

	err = viper.ReadInConfig()
	if err != nil {
		return err
	}

	err = viper.GetViper().Unmarshal(conf)
	if err != nil {
		return err
	}

	return nil
}
