// Package cli defines the single Cobra command of create-01x-project. It
// loads configuration and the template catalog, asks the operator two
// questions and hands the answers to the runner. Business logic lives in
// the internal packages.
package cli
