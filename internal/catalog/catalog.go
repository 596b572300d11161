package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/create-01x/create-01x-project/internal/manifest"
)

// ManifestFile is the name of the catalog manifest at the root of the store.
const ManifestFile = "catalog.yaml"

// ErrCorrupt reports a store that cannot be read or enumerated.
var ErrCorrupt = errors.New("template asset store corrupt")

// Asset is one static template file.
type Asset struct {
	Category string
	// Name is the slash-separated path relative to the category root.
	Name    string
	Content []byte
}

// Category is a replicated group of assets.
type Category struct {
	Name        string
	Description string
	Source      string
	Destination string
	Frontmatter manifest.Kind
}

// DocumentSpec declares one generated document.
type DocumentSpec struct {
	Kind     string
	Skeleton string
	Path     string
	Policy   string
}

// Catalog is a loaded, validated template asset store.
type Catalog struct {
	fsys        fs.FS
	version     *semver.Version
	directories []string
	categories  []Category
	documents   []DocumentSpec
	marker      string
}

// Default loads the catalog embedded in the binary.
func Default() (*Catalog, error) {
	return Load(embedded)
}

// Load reads catalog.yaml from fsys, validates it against the catalog schema
// and checks that every category subtree and skeleton is present.
func Load(fsys fs.FS) (*Catalog, error) {
	data, err := fs.ReadFile(fsys, ManifestFile)
	if err != nil {
		return nil, corrupt("reading %s: %w", ManifestFile, err)
	}

	result, err := manifest.Validate(manifest.KindCatalog, data)
	if err != nil {
		return nil, corrupt("validating %s: %w", ManifestFile, err)
	}
	if !result.Valid {
		return nil, corrupt("invalid %s: %s", ManifestFile, result.Summary())
	}

	m, err := manifest.ParseCatalog(data)
	if err != nil {
		return nil, corrupt("%w", err)
	}

	v, err := semver.NewVersion(m.Version)
	if err != nil {
		return nil, corrupt("parsing catalog version %q: %w", m.Version, err)
	}

	c := &Catalog{
		fsys:        fsys,
		version:     v,
		directories: slices.Clone(m.Directories),
		marker:      m.Marker,
	}

	seen := make(map[string]bool)
	for _, e := range m.Categories {
		if seen[e.Name] {
			return nil, corrupt("duplicate category %q", e.Name)
		}
		seen[e.Name] = true

		info, err := fs.Stat(fsys, e.Source)
		if err != nil {
			return nil, corrupt("category %q: %w", e.Name, err)
		}
		if !info.IsDir() {
			return nil, corrupt("category %q: %s is not a directory", e.Name, e.Source)
		}
		c.categories = append(c.categories, Category{
			Name:        e.Name,
			Description: e.Description,
			Source:      e.Source,
			Destination: e.Destination,
			Frontmatter: e.Frontmatter,
		})
	}

	kinds := make(map[string]bool)
	for _, d := range m.Documents {
		if kinds[d.Kind] {
			return nil, corrupt("duplicate document kind %q", d.Kind)
		}
		kinds[d.Kind] = true

		if _, err := fs.Stat(fsys, d.Skeleton); err != nil {
			return nil, corrupt("document %q: %w", d.Kind, err)
		}
		c.documents = append(c.documents, DocumentSpec{
			Kind:     d.Kind,
			Skeleton: d.Skeleton,
			Path:     d.Path,
			Policy:   d.Policy,
		})
	}

	return c, nil
}

// Version returns the catalog version.
func (c *Catalog) Version() *semver.Version { return c.version }

// Directories returns the declared directories, slash-separated and relative
// to the project root.
func (c *Catalog) Directories() []string { return slices.Clone(c.directories) }

// Categories returns the asset categories in declaration order.
func (c *Catalog) Categories() []Category { return slices.Clone(c.categories) }

// Documents returns the document specs in declaration order.
func (c *Catalog) Documents() []DocumentSpec { return slices.Clone(c.documents) }

// Marker returns the path of the empty build-state marker.
func (c *Catalog) Marker() string { return c.marker }

// Category looks up a category by name.
func (c *Catalog) Category(name string) (Category, bool) {
	for _, cat := range c.categories {
		if cat.Name == name {
			return cat, true
		}
	}
	return Category{}, false
}

// Enumerate lists every asset of a category in lexical order. Each call
// reads the store afresh.
func (c *Catalog) Enumerate(category string) ([]Asset, error) {
	cat, ok := c.Category(category)
	if !ok {
		return nil, corrupt("unknown category %q", category)
	}

	var assets []Asset
	err := fs.WalkDir(c.fsys, cat.Source, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		content, err := fs.ReadFile(c.fsys, p)
		if err != nil {
			return err
		}
		assets = append(assets, Asset{
			Category: cat.Name,
			Name:     strings.TrimPrefix(p, cat.Source+"/"),
			Content:  content,
		})
		return nil
	})
	if err != nil {
		return nil, corrupt("enumerating category %q: %w", category, err)
	}

	slices.SortFunc(assets, func(a, b Asset) int { return strings.Compare(a.Name, b.Name) })
	return assets, nil
}

// Skeleton returns the raw skeleton of a document.
func (c *Catalog) Skeleton(spec DocumentSpec) ([]byte, error) {
	data, err := fs.ReadFile(c.fsys, spec.Skeleton)
	if err != nil {
		return nil, corrupt("reading skeleton for %q: %w", spec.Kind, err)
	}
	return data, nil
}

// Verify enumerates every category and checks each Markdown asset of a
// category with a frontmatter kind against that kind's schema. Agent
// definitions must also be named after their file.
func (c *Catalog) Verify() error {
	for _, cat := range c.categories {
		assets, err := c.Enumerate(cat.Name)
		if err != nil {
			return err
		}
		if cat.Frontmatter == "" {
			continue
		}
		for _, a := range assets {
			if path.Ext(a.Name) != ".md" {
				continue
			}
			if err := verifyAsset(cat.Frontmatter, a); err != nil {
				return err
			}
		}
	}

	for _, d := range c.documents {
		if _, err := c.Skeleton(d); err != nil {
			return err
		}
	}
	return nil
}

func verifyAsset(kind manifest.Kind, a Asset) error {
	result, err := manifest.ValidateFrontmatter(kind, a.Content)
	if err != nil {
		return corrupt("%s/%s: %w", a.Category, a.Name, err)
	}
	if !result.Valid {
		return corrupt("%s/%s: %s", a.Category, a.Name, result.Summary())
	}

	if kind != manifest.KindAgent {
		return nil
	}
	fm, err := manifest.ParseAgent(a.Content)
	if err != nil {
		return corrupt("%s/%s: %w", a.Category, a.Name, err)
	}
	if want := strings.TrimSuffix(path.Base(a.Name), ".md"); fm.Name != want {
		return corrupt("%s/%s: agent name %q does not match file name", a.Category, a.Name, fm.Name)
	}
	return nil
}

func corrupt(format string, args ...any) error {
	return fmt.Errorf("%w: %w", ErrCorrupt, fmt.Errorf(format, args...))
}
