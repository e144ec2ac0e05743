// Package config provides configuration structures and utilities for satlens.
// It defines the main options for loading solver run records, assembling
// summaries, and report generation preferences.
package config
