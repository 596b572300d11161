// Package config manages user-level settings read from ~/.create01x/config.yaml
// and CREATE01X_* environment variables. The settings only shape diagnostics
// and presentation (log level, log file, colors); they never change what gets
// scaffolded.
package config
