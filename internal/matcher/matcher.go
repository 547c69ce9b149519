package matcher

import (
	"fmt"
	"regexp"
	"strings"
)

// Matcher decides whether a named construct is structurally present in an
// artifact's text. Implementations are presence heuristics, not parsers;
// swapping in a real parser later only touches this interface.
type Matcher interface {
	ContainsFunction(text, name string) bool
	ContainsClass(text, name string) bool
}

// functionTemplates are the surface forms a Lua function definition can take:
// a bare keyword-prefixed definition, a locally scoped one, a method attached
// with ':' or '.', and an assignment of a function value to the name. Tried
// in order, first match wins. %s receives the regexp-quoted construct name.
var functionTemplates = []string{
	`function %s`,
	`function.*%s`,
	`local function %s`,
	`function.*:%s`,
	`%s = function`,
	`function.*\.%s`,
}

var classRegistration = `torch\.class\(['"](nn\.)?%s['"]`

// PatternMatcher matches constructs by unanchored pattern search over the raw
// text. A hit inside a comment or string literal still counts; that
// imprecision is the price of never parsing the inspected code.
type PatternMatcher struct{}

func NewPatternMatcher() *PatternMatcher { return &PatternMatcher{} }

// ContainsFunction reports whether any function-definition surface form for
// name appears in text.
func (m *PatternMatcher) ContainsFunction(text, name string) bool {
	quoted := regexp.QuoteMeta(name)
	for _, tmpl := range functionTemplates {
		re, err := regexp.Compile(fmt.Sprintf(tmpl, quoted))
		if err != nil {
			continue
		}
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// ContainsClass reports whether text declares name as a class: a local
// binding, a table literal assignment, or a torch.class registration carrying
// the name as a string literal (with or without the nn. namespace prefix,
// single or double quotes).
func (m *PatternMatcher) ContainsClass(text, name string) bool {
	if strings.Contains(text, "local "+name) || strings.Contains(text, name+" = {}") {
		return true
	}
	re, err := regexp.Compile(fmt.Sprintf(classRegistration, regexp.QuoteMeta(name)))
	if err != nil {
		return false
	}
	return re.MatchString(text)
}
