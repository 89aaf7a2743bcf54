// Package config manages user settings stored at ~/.mhub/config.yaml,
// backed by Viper with MHUB_* environment variable overrides. The most
// important setting is index.path, the default location of the catalog
// index document.
package config
