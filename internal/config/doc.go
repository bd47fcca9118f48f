// Package config defines the application configuration structure and
// loads it from the environment at startup.
package config
