// Package config loads CLI settings from the environment.
package config
