// Package config holds the spelldigest configuration, its defaults, and the
// YAML configuration file loader.
package config
