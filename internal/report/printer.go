package report

import (
	"fmt"
	"io"
)

const rule = "============================================================"

// Printer renders the summary table and closing verdict, and derives the
// process exit code. It never knows why a component failed; the per-item
// diagnostics were already printed by the validators.
type Printer struct {
	out          io.Writer
	capabilities []string
}

// NewPrinter creates a printer writing to out. capabilities are the bullet
// lines shown after a fully passing run; an empty slice suppresses the list.
func NewPrinter(out io.Writer, capabilities []string) *Printer {
	return &Printer{out: out, capabilities: capabilities}
}

// Banner prints a ruled section header.
func (p *Printer) Banner(title string) {
	fmt.Fprintln(p.out, rule)
	fmt.Fprintln(p.out, title)
	fmt.Fprintln(p.out, rule)
}

// Render prints the summary for a finished report and returns the process
// exit code: 0 when every component passed, 1 otherwise.
func (p *Printer) Render(r *Report) int {
	fmt.Fprintln(p.out)
	p.Banner("Validation Summary")
	for _, res := range r.Results() {
		status := "✓ PASS"
		if !res.Passed {
			status = "✗ FAIL"
		}
		fmt.Fprintf(p.out, "%-20s: %s\n", res.Name, status)
	}
	fmt.Fprintln(p.out, rule)

	if !r.Overall() {
		fmt.Fprintln(p.out)
		fmt.Fprintln(p.out, "✗ Some validation checks failed.")
		fmt.Fprintln(p.out, "Please review the failed checks above.")
		return 1
	}

	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, "✓ All validation checks passed!")
	if len(p.capabilities) > 0 {
		fmt.Fprintln(p.out)
		fmt.Fprintln(p.out, "The validated implementation includes:")
		for _, c := range p.capabilities {
			fmt.Fprintf(p.out, "  • %s\n", c)
		}
	}
	return 0
}
