package ui

import (
	"fmt"
	"io"
	"time"
)

// Printer writes styled build progress lines. All output goes to a single
// writer, stdout in production and a buffer in tests.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a Printer writing to out.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Recipe announces which recipe file was selected.
func (p *Printer) Recipe(name string) {
	fmt.Fprintln(p.out, successStyle.Render(fmt.Sprintf("[coyote] Building recipe '%s'", name)))
}

// Target announces a target before its commands run.
func (p *Printer) Target(index, total int, name string) {
	fmt.Fprintf(p.out, "%s %s '%s'\n",
		prefixStyle.Render(fmt.Sprintf("[%d/%d]", index, total)),
		targetStyle.Render("Building target"),
		name)
}

// CommandDone reports a command that ran and exited zero.
func (p *Printer) CommandDone(index, total int, line string) {
	fmt.Fprintf(p.out, "   %s %s %s\n",
		successStyle.Render(iconCheck),
		prefixStyle.Render(fmt.Sprintf("(%d/%d)", index, total)),
		line)
}

// CommandSkipped reports a command whose guarded file was up to date.
func (p *Printer) CommandSkipped(index, total int, line string) {
	fmt.Fprintf(p.out, "   %s %s %s %s\n",
		skipStyle.Render(iconCircle),
		prefixStyle.Render(fmt.Sprintf("(%d/%d)", index, total)),
		line,
		prefixStyle.Render("(up to date)"))
}

// CommandFailed reports a command that exited non-zero or failed to start.
func (p *Printer) CommandFailed(index, total int, line string) {
	fmt.Fprintf(p.out, "   %s %s %s\n",
		failureStyle.Render(iconCross),
		prefixStyle.Render(fmt.Sprintf("(%d/%d)", index, total)),
		line)
}

// Summary reports a finished build.
func (p *Printer) Summary(project string, elapsed time.Duration) {
	fmt.Fprintln(p.out, successStyle.Render(
		fmt.Sprintf("[coyote] Finished building project '%s' in %s", project, elapsed.Round(time.Millisecond))))
}

// Warning reports a non-fatal problem after the build already succeeded.
func (p *Printer) Warning(msg string) {
	fmt.Fprintln(p.out, skipStyle.Render("[coyote] warning: "+msg))
}
