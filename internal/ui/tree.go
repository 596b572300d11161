package ui

import (
	"fmt"
	"path"
	"strings"

	"github.com/create-01x/create-01x-project/internal/catalog"
	"github.com/create-01x/create-01x-project/internal/scaffold"
)

type treeNode struct {
	name     string
	dir      bool
	note     string
	children []*treeNode
}

func (n *treeNode) child(name string, dir bool) *treeNode {
	for _, c := range n.children {
		if c.name == name {
			c.dir = c.dir || dir
			return c
		}
	}
	c := &treeNode{name: name, dir: dir}
	n.children = append(n.children, c)
	return c
}

func (n *treeNode) add(p string, dir bool) *treeNode {
	parts := strings.Split(path.Clean(p), "/")
	cur := n
	for i, part := range parts {
		cur = cur.child(part, dir || i < len(parts)-1)
	}
	return cur
}

// buildTree computes the planned layout from the catalog.
func buildTree(cat *catalog.Catalog) (*treeNode, error) {
	root := &treeNode{dir: true}

	for _, d := range cat.Documents() {
		n := root.add(d.Path, false)
		if p, _ := scaffold.ParsePolicy(d.Policy); p == scaffold.SkipIfExists {
			n.note = "kept if present"
		}
	}
	for _, d := range cat.Directories() {
		root.add(d, true)
	}
	for _, category := range cat.Categories() {
		assets, err := cat.Enumerate(category.Name)
		if err != nil {
			return nil, err
		}
		dir := root.add(category.Destination, true)
		dir.note = fmt.Sprintf("%d %s", len(assets), category.Name)
		if category.Description != "" {
			dir.note += ", " + category.Description
		}
		for _, a := range assets {
			root.add(path.Join(category.Destination, a.Name), false)
		}
	}
	if m := cat.Marker(); m != "" {
		root.add(m, false)
	}
	return root, nil
}

// Preview prints the planned layout under projectName.
func (c *Console) Preview(projectName string, cat *catalog.Catalog) error {
	root, err := buildTree(cat)
	if err != nil {
		return err
	}

	c.println("")
	c.println("  " + c.style(styleBold, "The following files will be created:"))
	c.println("")
	c.println("  " + projectName + "/")
	c.printChildren(root, "  ")
	c.println("")
	return nil
}

// printChildren lists files before directories at each level.
func (c *Console) printChildren(n *treeNode, indent string) {
	ordered := make([]*treeNode, 0, len(n.children))
	for _, ch := range n.children {
		if !ch.dir {
			ordered = append(ordered, ch)
		}
	}
	for _, ch := range n.children {
		if ch.dir {
			ordered = append(ordered, ch)
		}
	}

	for i, ch := range ordered {
		branch, next := "├── ", "│   "
		if i == len(ordered)-1 {
			branch, next = "└── ", "    "
		}

		label := ch.name
		if ch.dir {
			label = c.style(styleDir, ch.name+"/")
		}
		if ch.note != "" {
			label += c.style(styleDim, "  ← "+ch.note)
		}
		c.println(indent + c.style(styleDim, branch) + label)

		if ch.dir {
			c.printChildren(ch, indent+c.style(styleDim, next))
		}
	}
}
