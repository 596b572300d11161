package config

import (
	"os"
	"path/filepath"

	"github.com/create-01x/create-01x-project/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Config keys.
const (
	KeyLogLevel = "log_level"
	KeyLogFile  = "log_file"
	KeyColor    = "color"
)

// Dir returns the path to the config directory (~/.create01x/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.create01x/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyLogLevel, "warn")
	viper.SetDefault(KeyLogFile, "")
	viper.SetDefault(KeyColor, true)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// LogLevel returns the configured log level name.
func LogLevel() string {
	return viper.GetString(KeyLogLevel)
}

// LogFile returns the path of the optional JSON log file, or "". Relative
// paths resolve against Dir() so logging never writes into the project.
func LogFile() string {
	p := viper.GetString(KeyLogFile)
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(Dir(), p)
}

// Color reports whether terminal output may use ANSI colors.
// The NO_COLOR convention always wins over the config value.
func Color() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return viper.GetBool(KeyColor)
}
