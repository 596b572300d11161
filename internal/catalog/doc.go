// Package catalog is the template asset store.
//
// The catalog is data, not code: catalog.yaml declares the directories,
// asset categories and document skeletons of a scaffold, and the files under
// assets/ and documents/ are embedded into the binary. Adding a template file
// needs no code change.
package catalog
