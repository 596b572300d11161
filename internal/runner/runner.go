// Package runner drives one scaffold run: generate documents, materialize
// the plan, then optionally bootstrap version control.
package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/create-01x/create-01x-project/internal/catalog"
	"github.com/create-01x/create-01x-project/internal/content"
	"github.com/create-01x/create-01x-project/internal/logging"
	"github.com/create-01x/create-01x-project/internal/scaffold"
	"github.com/create-01x/create-01x-project/internal/vcs"
)

// State is a step of a run.
type State int

const (
	CollectingInput State = iota
	Generating
	Materializing
	InitializingVCS
	Done
	Failed
)

func (s State) String() string {
	switch s {
	case CollectingInput:
		return "CollectingInput"
	case Generating:
		return "Generating"
	case Materializing:
		return "Materializing"
	case InitializingVCS:
		return "InitializingVCS"
	case Done:
		return "Done"
	case Failed:
		return "Failed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// ErrEmptyName is returned for a request without a project name.
var ErrEmptyName = errors.New("project name is required")

// Request is the validated operator input of one run.
type Request struct {
	ProjectName string
	InitGit     bool
}

// Validate checks the request invariants.
func (r Request) Validate() error {
	if strings.TrimSpace(r.ProjectName) == "" {
		return ErrEmptyName
	}
	return nil
}

// VCSFunc bootstraps version control in root. It has no failure mode.
type VCSFunc func(ctx context.Context, root string)

// Options configures Run.
type Options struct {
	// Root is the project directory to scaffold into.
	Root string
	// Catalog defaults to the embedded catalog.
	Catalog *catalog.Catalog
	// Reporter defaults to scaffold.NopReporter.
	Reporter scaffold.Reporter
	// VCS defaults to vcs.Bootstrap.
	VCS    VCSFunc
	Logger *slog.Logger
	// OnState is called on every state transition.
	OnState func(State)
}

// Run scaffolds req into opts.Root. VCS bootstrap only happens after a
// successful materialization and never affects the result.
func Run(ctx context.Context, req Request, opts Options) (*scaffold.Result, error) {
	log := logging.OrDiscard(opts.Logger)
	enter := func(s State) {
		log.Debug("state transition", "to", s.String())
		if opts.OnState != nil {
			opts.OnState(s)
		}
	}

	if err := req.Validate(); err != nil {
		enter(Failed)
		return nil, err
	}

	cat := opts.Catalog
	if cat == nil {
		var err error
		if cat, err = catalog.Default(); err != nil {
			enter(Failed)
			return nil, err
		}
	}

	enter(Generating)
	plan, err := BuildPlan(cat, req.ProjectName)
	if err != nil {
		enter(Failed)
		return nil, err
	}

	enter(Materializing)
	result, err := scaffold.Materialize(opts.Root, plan, opts.Reporter)
	if err != nil {
		enter(Failed)
		return nil, err
	}
	log.Debug("materialized", "written", len(result.Written), "skipped", len(result.Skipped))

	if req.InitGit {
		enter(InitializingVCS)
		bootstrap := opts.VCS
		if bootstrap == nil {
			bootstrap = vcs.Bootstrap
		}
		bootstrap(logging.WithContext(ctx, log), opts.Root)
	}

	enter(Done)
	return result, nil
}

// BuildPlan assembles the write plan for projectName from the catalog.
func BuildPlan(cat *catalog.Catalog, projectName string) (scaffold.Plan, error) {
	gen, err := content.NewGenerator(cat)
	if err != nil {
		return scaffold.Plan{}, fmt.Errorf("preparing documents: %w", err)
	}

	plan := scaffold.Plan{
		Directories: cat.Directories(),
		Marker:      cat.Marker(),
	}

	for _, category := range cat.Categories() {
		assets, err := cat.Enumerate(category.Name)
		if err != nil {
			return scaffold.Plan{}, err
		}
		for _, a := range assets {
			plan.Assets = append(plan.Assets, scaffold.AssetDirective(category.Destination, a))
		}
	}

	for _, doc := range gen.Generate(projectName).All() {
		plan.Documents = append(plan.Documents, scaffold.DocumentDirective(doc.Path, doc.Content, doc.Policy))
	}
	return plan, nil
}
