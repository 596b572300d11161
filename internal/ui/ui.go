// Package ui renders operator-facing output: the banner, the planned tree,
// per-file progress and the closing next steps. Diagnostics go through the
// logger instead.
package ui

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/Masterminds/semver/v3"
	"github.com/create-01x/create-01x-project/internal/branding"
	"github.com/morikuni/aec"
)

var (
	styleBanner = aec.CyanF.With(aec.Bold)
	styleBold   = aec.Bold
	styleDim    = aec.Faint
	styleDir    = aec.YellowF
	styleOK     = aec.GreenF
	styleSkip   = aec.YellowF
	styleError  = aec.RedF
	styleAction = aec.CyanF.With(aec.Bold)
)

// Console writes styled output to a terminal.
type Console struct {
	out   io.Writer
	color bool
}

// New returns a Console writing to out. color false strips all styling.
func New(out io.Writer, color bool) *Console {
	return &Console{out: out, color: color}
}

func (c *Console) style(a aec.ANSI, s string) string {
	if !c.color {
		return s
	}
	return a.Apply(s)
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

// VersionLabel formats a build version for display. Versions that parse as
// semver are normalized with a leading "v"; anything else is shown as is.
func VersionLabel(version string) string {
	v, err := semver.NewVersion(version)
	if err != nil {
		return version
	}
	return "v" + v.String()
}

// Banner prints the boxed product banner.
func (c *Console) Banner(version string, catalogVersion *semver.Version) {
	lines := []string{
		fmt.Sprintf("%s  %s", branding.CLIName(), VersionLabel(version)),
		branding.Description(),
	}
	if catalogVersion != nil {
		lines = append(lines, "templates v"+catalogVersion.String())
	}

	width := 0
	for _, l := range lines {
		width = max(width, utf8.RuneCountInString(l))
	}
	width += 6

	c.println("")
	c.println("  " + c.style(styleBanner, "╔"+strings.Repeat("═", width)+"╗"))
	for _, l := range lines {
		pad := width - 3 - utf8.RuneCountInString(l)
		c.println("  " + c.style(styleBanner, "║   "+l+strings.Repeat(" ", pad)+"║"))
	}
	c.println("  " + c.style(styleBanner, "╚"+strings.Repeat("═", width)+"╝"))
	c.println("")
}

// Done prints the closing summary of a run.
func (c *Console) Done(written, skipped int) {
	c.println("")
	msg := fmt.Sprintf("✔ Done! %d written", written)
	if skipped > 0 {
		msg += fmt.Sprintf(", %d kept", skipped)
	}
	c.println("  " + c.style(styleOK, msg))
}

// NextSteps tells the operator how to start the agent system.
func (c *Console) NextSteps(seedPath string) {
	c.println("")
	c.println(c.style(styleBold, "  Next steps:"))
	c.println("")
	c.println(c.style(styleDim, "  1.") + "  Fill in " + c.style(styleOK, seedPath))
	c.println(c.style(styleDim, "  2.") + "  Open this folder in your editor")
	c.println(c.style(styleDim, "  3.") + "  Open Claude Code and type:")
	c.println("")
	c.println(c.style(styleAction, "       Run the orchestrator agent."))
	c.println("")
}

// Cancelled reports an aborted prompt.
func (c *Console) Cancelled() {
	c.println(c.style(styleError, "  Cancelled."))
}
