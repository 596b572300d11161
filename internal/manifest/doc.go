// Package manifest parses and validates the data files that drive the
// scaffold: the template catalog manifest (catalog.yaml) and the YAML
// frontmatter carried by agent and command definitions. Validation runs
// against JSON Schemas embedded from the schema/ directory.
package manifest
