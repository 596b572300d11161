// Package content renders the project documents from catalog skeletons.
//
// Rendering is a single literal substitution of the project name token. The
// output depends on nothing but the name and the catalog.
package content

import (
	"fmt"
	"strings"

	"github.com/create-01x/create-01x-project/internal/catalog"
	"github.com/create-01x/create-01x-project/internal/scaffold"
)

// Token is replaced with the project name in every skeleton.
const Token = "{{project_name}}"

// Kind identifies a generated document.
type Kind string

const (
	KindOperatingManual Kind = "operating-manual"
	KindGuide           Kind = "guide"
	KindSeedInput       Kind = "seed-input"
	KindIgnoreRules     Kind = "ignore-rules"
)

// Document is one rendered document and where it goes.
type Document struct {
	Kind    Kind
	Path    string
	Content string
	Policy  scaffold.Policy
}

type skeleton struct {
	kind   Kind
	path   string
	policy scaffold.Policy
	text   string
}

// Generator renders documents for a project name.
type Generator struct {
	skeletons []skeleton
}

// NewGenerator reads every document skeleton from cat.
func NewGenerator(cat *catalog.Catalog) (*Generator, error) {
	g := &Generator{}
	for _, spec := range cat.Documents() {
		policy, err := scaffold.ParsePolicy(spec.Policy)
		if err != nil {
			return nil, fmt.Errorf("document %q: %w", spec.Kind, err)
		}
		data, err := cat.Skeleton(spec)
		if err != nil {
			return nil, err
		}
		g.skeletons = append(g.skeletons, skeleton{
			kind:   Kind(spec.Kind),
			path:   spec.Path,
			policy: policy,
			text:   string(data),
		})
	}
	return g, nil
}

// Generate renders every document for projectName. The name is inserted
// verbatim and never rescanned for tokens.
func (g *Generator) Generate(projectName string) Set {
	r := strings.NewReplacer(Token, projectName)
	docs := make([]Document, len(g.skeletons))
	for i, s := range g.skeletons {
		docs[i] = Document{
			Kind:    s.kind,
			Path:    s.path,
			Content: r.Replace(s.text),
			Policy:  s.policy,
		}
	}
	return Set{docs: docs}
}

// Set is the rendered documents of one run, in catalog order.
type Set struct {
	docs []Document
}

// All returns every document in catalog order.
func (s Set) All() []Document {
	out := make([]Document, len(s.docs))
	copy(out, s.docs)
	return out
}

// ByKind looks up a document by kind.
func (s Set) ByKind(kind Kind) (Document, bool) {
	for _, d := range s.docs {
		if d.Kind == kind {
			return d, true
		}
	}
	return Document{}, false
}

func (s Set) OperatingManual() Document { d, _ := s.ByKind(KindOperatingManual); return d }
func (s Set) Guide() Document           { d, _ := s.ByKind(KindGuide); return d }
func (s Set) SeedInput() Document       { d, _ := s.ByKind(KindSeedInput); return d }
func (s Set) IgnoreRules() Document     { d, _ := s.ByKind(KindIgnoreRules); return d }
