package manifest

// Kind names a schema that data can be validated against.
type Kind string

const (
	KindCatalog Kind = "catalog"
	KindAgent   Kind = "agent"
	KindCommand Kind = "command"
)

// CatalogManifest represents catalog.yaml.
type CatalogManifest struct {
	Version     string          `yaml:"version" json:"version"`
	Directories []string        `yaml:"directories" json:"directories"`
	Categories  []CategoryEntry `yaml:"categories" json:"categories"`
	Documents   []DocumentEntry `yaml:"documents" json:"documents"`
	Marker      string          `yaml:"marker" json:"marker"`
}

// CategoryEntry maps an embedded asset directory to its destination.
type CategoryEntry struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Source      string `yaml:"source" json:"source"`
	Destination string `yaml:"destination" json:"destination"`
	Frontmatter Kind   `yaml:"frontmatter,omitempty" json:"frontmatter,omitempty"`
}

// DocumentEntry declares a generated document: its skeleton, destination
// and write policy.
type DocumentEntry struct {
	Kind     string `yaml:"kind" json:"kind"`
	Skeleton string `yaml:"skeleton" json:"skeleton"`
	Path     string `yaml:"path" json:"path"`
	Policy   string `yaml:"policy" json:"policy"`
}

// AgentFrontmatter is the YAML header of an agent definition.
type AgentFrontmatter struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
	Tools       string `yaml:"tools,omitempty" json:"tools,omitempty"`
	Model       string `yaml:"model,omitempty" json:"model,omitempty"`
}

// CommandFrontmatter is the YAML header of a command definition.
type CommandFrontmatter struct {
	Description  string `yaml:"description" json:"description"`
	ArgumentHint string `yaml:"argument-hint,omitempty" json:"argument-hint,omitempty"`
	AllowedTools string `yaml:"allowed-tools,omitempty" json:"allowed-tools,omitempty"`
}
