// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed. Hard defaults cover a missing or partial file.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName        string `yaml:"cli_name"`
	DisplayName    string `yaml:"display_name"`
	Description    string `yaml:"description"`
	HomeDir        string `yaml:"home_dir"`
	EnvPrefix      string `yaml:"env_prefix"`
	CommitMessage  string `yaml:"commit_message"`
	CommitterName  string `yaml:"committer_name"`
	CommitterEmail string `yaml:"committer_email"`
}

func load() {
	once.Do(func() {
		defaults = brand{
			CLIName:        "create-01x-project",
			DisplayName:    "01x",
			Description:    "Claude Code agent system scaffolder",
			HomeDir:        ".create01x",
			EnvPrefix:      "CREATE01X",
			CommitMessage:  "chore: scaffold claude agent system",
			CommitterName:  "create-01x-project",
			CommitterEmail: "scaffold@create-01x.invalid",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "create-01x-project").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "01x").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".create01x").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "CREATE01X").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// CommitMessage returns the fixed message used for the scaffold commit.
func CommitMessage() string { load(); return defaults.CommitMessage }

// Committer returns the fallback identity used when git has none configured.
func Committer() (name, email string) {
	load()
	return defaults.CommitterName, defaults.CommitterEmail
}

// EnvVar returns a fully qualified env var name, e.g., EnvVar("log_level") → "CREATE01X_LOG_LEVEL".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
