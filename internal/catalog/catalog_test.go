package catalog

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureManifest = `version: 2.1.0
directories:
  - .claude/agents
  - agent_docs/build
categories:
  - name: agents
    source: assets/agents
    destination: .claude/agents
    frontmatter: agent
documents:
  - kind: operating-manual
    skeleton: documents/CLAUDE.md
    path: CLAUDE.md
    policy: always_overwrite
marker: agent_docs/build/.gitkeep
`

const plannerAgent = `---
name: planner
description: Plans things.
---

Body.
`

func fixture() fstest.MapFS {
	return fstest.MapFS{
		"catalog.yaml":              {Data: []byte(fixtureManifest)},
		"assets/agents/planner.md":  {Data: []byte(plannerAgent)},
		"assets/agents/notes.txt":   {Data: []byte("free-form")},
		"assets/agents/nested/a.md": {Data: []byte("---\nname: a\ndescription: nested\n---\n")},
		"documents/CLAUDE.md":       {Data: []byte("# {{project_name}}\n")},
	}
}

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)
	require.NoError(t, c.Verify())

	assert.Equal(t, "1.0.0", c.Version().String())
	assert.Equal(t, "agent_docs/build/.gitkeep", c.Marker())
	assert.Contains(t, c.Directories(), ".claude/agents")
	assert.Contains(t, c.Directories(), ".claude/commands")

	var names []string
	for _, cat := range c.Categories() {
		names = append(names, cat.Name)
	}
	assert.Equal(t, []string{"agents", "commands"}, names)

	policies := map[string]string{}
	for _, d := range c.Documents() {
		policies[d.Path] = d.Policy
	}
	assert.Equal(t, map[string]string{
		"CLAUDE.md":                  "always_overwrite",
		"README.md":                  "always_overwrite",
		"agent_docs/product-seed.md": "skip_if_exists",
		".gitignore":                 "skip_if_exists",
	}, policies)
}

func TestDefault_Agents(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assets, err := c.Enumerate("agents")
	require.NoError(t, err)

	var names []string
	for _, a := range assets {
		names = append(names, a.Name)
		assert.Equal(t, "agents", a.Category)
		assert.NotEmpty(t, a.Content)
	}
	assert.Contains(t, names, "orchestrator.md")
	assert.Contains(t, names, "build-agent.md")
	assert.Len(t, names, 11)

	commands, err := c.Enumerate("commands")
	require.NoError(t, err)
	assert.Len(t, commands, 3)
}

func TestEnumerate_DeterministicAndRestartable(t *testing.T) {
	c, err := Load(fixture())
	require.NoError(t, err)

	first, err := c.Enumerate("agents")
	require.NoError(t, err)
	second, err := c.Enumerate("agents")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	require.Len(t, first, 3)
	assert.Equal(t, "nested/a.md", first[0].Name)
	assert.Equal(t, "notes.txt", first[1].Name)
	assert.Equal(t, "planner.md", first[2].Name)
	assert.Equal(t, []byte(plannerAgent), first[2].Content)
}

func TestEnumerate_UnknownCategory(t *testing.T) {
	c, err := Load(fixture())
	require.NoError(t, err)

	_, err = c.Enumerate("widgets")
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestLoad_Corrupt(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(fstest.MapFS)
		want   string
	}{
		{
			name:   "missing manifest",
			mutate: func(m fstest.MapFS) { delete(m, "catalog.yaml") },
			want:   "catalog.yaml",
		},
		{
			name: "schema violation",
			mutate: func(m fstest.MapFS) {
				m["catalog.yaml"] = &fstest.MapFile{Data: []byte(strings.Replace(fixtureManifest, "always_overwrite", "maybe", 1))}
			},
			want: "invalid catalog.yaml",
		},
		{
			name: "missing category subtree",
			mutate: func(m fstest.MapFS) {
				for k := range m {
					if strings.HasPrefix(k, "assets/") {
						delete(m, k)
					}
				}
			},
			want: `category "agents"`,
		},
		{
			name:   "missing skeleton",
			mutate: func(m fstest.MapFS) { delete(m, "documents/CLAUDE.md") },
			want:   `document "operating-manual"`,
		},
		{
			name: "duplicate document kind",
			mutate: func(m fstest.MapFS) {
				dup := strings.Replace(fixtureManifest, "marker:", `  - kind: operating-manual
    skeleton: documents/CLAUDE.md
    path: OTHER.md
    policy: skip_if_exists
marker:`, 1)
				m["catalog.yaml"] = &fstest.MapFile{Data: []byte(dup)}
			},
			want: "duplicate document kind",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fixture()
			tt.mutate(fsys)

			_, err := Load(fsys)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrCorrupt))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestVerify(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "valid", content: plannerAgent},
		{name: "missing frontmatter", content: "# planner\n", wantErr: "missing YAML frontmatter"},
		{name: "missing description", content: "---\nname: planner\n---\n", wantErr: "description"},
		{name: "name mismatch", content: "---\nname: other\ndescription: x\n---\n", wantErr: "does not match file name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fixture()
			fsys["assets/agents/planner.md"] = &fstest.MapFile{Data: []byte(tt.content)}

			c, err := Load(fsys)
			require.NoError(t, err)

			err = c.Verify()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrCorrupt)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSkeleton(t *testing.T) {
	c, err := Load(fixture())
	require.NoError(t, err)

	docs := c.Documents()
	require.Len(t, docs, 1)
	data, err := c.Skeleton(docs[0])
	require.NoError(t, err)
	assert.Equal(t, "# {{project_name}}\n", string(data))
}
