package ui

import "github.com/create-01x/create-01x-project/internal/scaffold"

var _ scaffold.Reporter = (*TerminalReporter)(nil)

// TerminalReporter prints one line per created directory and per file.
type TerminalReporter struct {
	c *Console
}

// Reporter returns a scaffold.Reporter printing to the console.
func (c *Console) Reporter() *TerminalReporter {
	return &TerminalReporter{c: c}
}

func (r *TerminalReporter) Directory(p string, created bool) {
	if created {
		r.c.println("  " + r.c.style(styleOK, "[ OK ]") + " Created " + p + "/")
	}
}

func (r *TerminalReporter) Wrote(p string) {
	r.c.println("  " + r.c.style(styleOK, "[ OK ]") + " Wrote " + p)
}

func (r *TerminalReporter) Skipped(p string) {
	r.c.println("  " + r.c.style(styleSkip, "[SKIP]") + " " + p + " already exists")
}
