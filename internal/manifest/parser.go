package manifest

import (
	"bytes"
	"fmt"

	"go.yaml.in/yaml/v3"
)

var frontmatterDelim = []byte("---")

// ParseCatalog parses catalog.yaml bytes.
func ParseCatalog(data []byte) (*CatalogManifest, error) {
	var m CatalogManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing catalog manifest: %w", err)
	}
	return &m, nil
}

// SplitFrontmatter returns the YAML block between a leading "---" line and
// the next "---" line. ok is false when the content has no frontmatter.
func SplitFrontmatter(content []byte) (header []byte, ok bool) {
	content = bytes.TrimPrefix(content, []byte("\ufeff"))
	first, rest, found := bytes.Cut(content, []byte("\n"))
	if !found || !bytes.Equal(bytes.TrimSpace(first), frontmatterDelim) {
		return nil, false
	}

	var block [][]byte
	for len(rest) > 0 {
		var line []byte
		line, rest, _ = bytes.Cut(rest, []byte("\n"))
		if bytes.Equal(bytes.TrimSpace(line), frontmatterDelim) {
			return bytes.Join(block, []byte("\n")), true
		}
		block = append(block, line)
	}
	return nil, false
}

// ParseAgent parses the frontmatter of an agent definition.
func ParseAgent(content []byte) (*AgentFrontmatter, error) {
	return parseFrontmatter[AgentFrontmatter](content)
}

// ParseCommand parses the frontmatter of a command definition.
func ParseCommand(content []byte) (*CommandFrontmatter, error) {
	return parseFrontmatter[CommandFrontmatter](content)
}

func parseFrontmatter[T any](content []byte) (*T, error) {
	header, ok := SplitFrontmatter(content)
	if !ok {
		return nil, fmt.Errorf("missing frontmatter")
	}
	var v T
	if err := yaml.Unmarshal(header, &v); err != nil {
		return nil, fmt.Errorf("parsing frontmatter: %w", err)
	}
	return &v, nil
}
