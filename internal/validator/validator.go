package validator

import (
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"treecheck/internal/checkspec"
	"treecheck/internal/matcher"
	"treecheck/internal/probe"
	"treecheck/internal/report"
)

// Validator executes one component's checks against the probed tree and
// prints that component's section of the report.
type Validator struct {
	probe   *probe.Probe
	matcher matcher.Matcher
	out     io.Writer
	log     *zap.SugaredLogger
}

func New(p *probe.Probe, m matcher.Matcher, out io.Writer, log *zap.SugaredLogger) *Validator {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Validator{probe: p, matcher: m, out: out, log: log}
}

// Validate runs every section of the component and returns its verdict. A
// missing artifact short-circuits only its own section; sibling sections
// still run, and within an inspected section every item is evaluated so the
// printed diagnostics are maximally informative.
func (v *Validator) Validate(c checkspec.Component) report.ComponentResult {
	fmt.Fprintf(v.out, "\n=== %s ===\n", c.Title)
	passed := true
	for _, s := range c.Sections {
		if !v.validateSection(s) {
			passed = false
		}
	}
	return report.ComponentResult{Name: c.Name, Passed: passed}
}

func (v *Validator) validateSection(s checkspec.Section) bool {
	ctx := context.Background()
	m := newSectionFSM()

	_ = m.Event(ctx, eventProbe)
	if !v.probe.Exists(s.Artifact) {
		fmt.Fprintf(v.out, "✗ %s NOT FOUND: %s\n", s.Label, s.Artifact)
		_ = m.Event(ctx, eventShortCircuit)
		_ = m.Event(ctx, eventFinish)
		v.log.Debugw("section short-circuited", "artifact", s.Artifact, "state", m.Current())
		return false
	}
	fmt.Fprintf(v.out, "✓ %s: %s\n", s.Label, s.Artifact)

	_ = m.Event(ctx, eventInspect)
	// A read failure after a successful probe leaves text empty, so every
	// content item below fails instead of aborting the run.
	text, ok := v.probe.ReadText(s.Artifact)
	if !ok {
		v.log.Debugw("artifact unreadable, content checks will fail", "artifact", s.Artifact)
	}

	sectionOK := true
	for _, item := range s.Items {
		hit := v.checkItem(text, s, item)
		mark := "✓"
		if !hit {
			mark = "✗"
			sectionOK = false
		}
		fmt.Fprintf(v.out, "  %s %s\n", mark, item.Label)
	}

	_ = m.Event(ctx, eventFinish)
	return sectionOK
}

func (v *Validator) checkItem(text string, s checkspec.Section, item checkspec.Item) bool {
	switch item.Kind {
	case checkspec.KindFunction:
		return v.matcher.ContainsFunction(text, item.Target)
	case checkspec.KindClass:
		return v.matcher.ContainsClass(text, item.Target)
	case checkspec.KindSubstring:
		return strings.Contains(text, item.Target)
	case checkspec.KindSubstringAny:
		for _, alt := range item.Alternatives {
			if strings.Contains(text, alt) {
				return true
			}
		}
		return false
	case checkspec.KindModuleInclude:
		module := s.Namespace + "." + item.Target
		return strings.Contains(text, fmt.Sprintf("require('%s')", module)) ||
			strings.Contains(text, fmt.Sprintf("require(%q)", module))
	default:
		// Load-time manifest validation rejects unknown kinds; this only
		// triggers for hand-built specs.
		v.log.Warnw("unknown item kind", "kind", item.Kind, "label", item.Label)
		return false
	}
}
