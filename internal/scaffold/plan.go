package scaffold

import (
	"fmt"
	"path"
	"path/filepath"

	"github.com/create-01x/create-01x-project/internal/catalog"
)

// WriteDirective is one file to write. Path is slash-separated and relative
// to the project root.
type WriteDirective struct {
	Path    string
	Content []byte
	Policy  Policy
}

// Plan is everything a run writes, in materialization order.
type Plan struct {
	Directories []string
	Assets      []WriteDirective
	Documents   []WriteDirective
	Marker      string
}

// AssetDirective places a template asset under its category destination.
// Assets are always overwritten.
func AssetDirective(destination string, a catalog.Asset) WriteDirective {
	return WriteDirective{
		Path:    path.Join(destination, a.Name),
		Content: a.Content,
		Policy:  AlwaysOverwrite,
	}
}

// DocumentDirective wraps generated document content.
func DocumentDirective(p, content string, policy Policy) WriteDirective {
	return WriteDirective{Path: p, Content: []byte(content), Policy: policy}
}

// Validate rejects paths that would escape the project root.
func (p *Plan) Validate() error {
	check := func(rel string) error {
		if !filepath.IsLocal(filepath.FromSlash(rel)) {
			return fmt.Errorf("path %q is outside the project root", rel)
		}
		return nil
	}

	for _, d := range p.Directories {
		if err := check(d); err != nil {
			return err
		}
	}
	for _, w := range p.directives() {
		if err := check(w.Path); err != nil {
			return err
		}
	}
	if p.Marker != "" {
		if err := check(p.Marker); err != nil {
			return err
		}
	}
	return nil
}

func (p *Plan) directives() []WriteDirective {
	all := make([]WriteDirective, 0, len(p.Assets)+len(p.Documents))
	all = append(all, p.Assets...)
	return append(all, p.Documents...)
}

// directoryList returns the declared directories followed by every parent
// implied by a directive, without duplicates.
func (p *Plan) directoryList() []string {
	seen := make(map[string]bool)
	var dirs []string
	add := func(d string) {
		if d == "." || d == "" || seen[d] {
			return
		}
		seen[d] = true
		dirs = append(dirs, d)
	}

	for _, d := range p.Directories {
		add(path.Clean(d))
	}
	for _, w := range p.directives() {
		add(path.Dir(w.Path))
	}
	if p.Marker != "" {
		add(path.Dir(p.Marker))
	}
	return dirs
}
