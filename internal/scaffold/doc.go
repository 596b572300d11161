// Package scaffold materializes a write plan into a project directory. It
// creates the declared directories, writes template assets unconditionally,
// writes documents according to their policy and rewrites the empty
// build-state marker.
//
// Materialization is idempotent and never deletes anything. It is not
// transactional: a failure midway leaves the files written so far.
package scaffold
