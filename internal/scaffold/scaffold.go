package scaffold

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Permissions for created entries.
const (
	DirPerm  os.FileMode = 0755
	FilePerm os.FileMode = 0644
)

// Reporter receives progress as the plan is materialized. Paths are
// slash-separated and relative to the project root.
type Reporter interface {
	Directory(path string, created bool)
	Wrote(path string)
	Skipped(path string)
}

// NopReporter discards progress.
type NopReporter struct{}

func (NopReporter) Directory(string, bool) {}
func (NopReporter) Wrote(string)           {}
func (NopReporter) Skipped(string)         {}

// Result holds the outcome of a materialization.
type Result struct {
	Root string
	// Written lists files written by this run, including the marker.
	Written []string
	// Skipped lists SkipIfExists paths that were already occupied.
	Skipped []string
	// Directories lists directories created by this run.
	Directories []string
}

// Materialize applies plan under root. Filesystem errors are returned
// unwrapped, as the *fs.PathError from the failing call.
func Materialize(root string, plan Plan, report Reporter) (*Result, error) {
	if report == nil {
		report = NopReporter{}
	}
	if err := plan.Validate(); err != nil {
		return nil, err
	}

	result := &Result{Root: root}

	for _, d := range plan.directoryList() {
		created, err := ensureDir(filepath.Join(root, filepath.FromSlash(d)))
		if err != nil {
			return result, err
		}
		if created {
			result.Directories = append(result.Directories, d)
		}
		report.Directory(d, created)
	}

	for _, w := range plan.directives() {
		wrote, err := ensureFile(filepath.Join(root, filepath.FromSlash(w.Path)), w.Content, w.Policy)
		if err != nil {
			return result, err
		}
		if wrote {
			result.Written = append(result.Written, w.Path)
			report.Wrote(w.Path)
		} else {
			result.Skipped = append(result.Skipped, w.Path)
			report.Skipped(w.Path)
		}
	}

	if plan.Marker != "" {
		if err := os.WriteFile(filepath.Join(root, filepath.FromSlash(plan.Marker)), nil, FilePerm); err != nil {
			return result, err
		}
		result.Written = append(result.Written, plan.Marker)
		report.Wrote(plan.Marker)
	}

	return result, nil
}

// ensureDir creates a directory if it doesn't exist. A non-directory in the
// way surfaces as the error from MkdirAll.
func ensureDir(p string) (created bool, err error) {
	info, err := os.Stat(p)
	existed := err == nil && info.IsDir()
	if err := os.MkdirAll(p, DirPerm); err != nil {
		return false, err
	}
	return !existed, nil
}

// ensureFile writes content to p according to policy. It reports whether
// the file was written.
func ensureFile(p string, content []byte, policy Policy) (bool, error) {
	if policy == SkipIfExists {
		_, err := os.Lstat(p)
		if err == nil {
			return false, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return false, err
		}
	}
	if err := os.WriteFile(p, content, FilePerm); err != nil {
		return false, err
	}
	return true, nil
}
