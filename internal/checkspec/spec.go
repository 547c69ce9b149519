package checkspec

import "fmt"

// ItemKind names one way an expectation is checked against artifact text.
type ItemKind string

const (
	// KindFunction expects a function-like definition of Target.
	KindFunction ItemKind = "function"
	// KindClass expects a class-like declaration or registration of Target.
	KindClass ItemKind = "class"
	// KindSubstring expects the literal Target anywhere in the text.
	KindSubstring ItemKind = "substring"
	// KindSubstringAny expects at least one of Alternatives in the text.
	KindSubstringAny ItemKind = "substring-any"
	// KindModuleInclude expects a require of Section.Namespace + "." + Target,
	// in single- or double-quoted form.
	KindModuleInclude ItemKind = "module-include"
)

// Item is a single content expectation inside a section's artifact.
type Item struct {
	Kind         ItemKind `yaml:"kind"`
	Label        string   `yaml:"label"`
	Target       string   `yaml:"target,omitempty"`
	Alternatives []string `yaml:"alternatives,omitempty"`
}

// Section binds one target artifact to the checks run against its text. A
// missing artifact short-circuits the section: its items are skipped and the
// section fails. Sibling sections of the same component still run.
type Section struct {
	Artifact  string `yaml:"artifact"`
	Label     string `yaml:"label"`
	Namespace string `yaml:"namespace,omitempty"`
	Items     []Item `yaml:"items,omitempty"`
}

// Component is one named group of checks producing a single verdict row in
// the summary table.
type Component struct {
	Name     string    `yaml:"name"`
	Title    string    `yaml:"title"`
	Sections []Section `yaml:"sections"`
}

// Manifest is the full ordered set of components to validate, plus the
// presentation strings the report uses around them.
type Manifest struct {
	Title        string      `yaml:"title"`
	Capabilities []string    `yaml:"capabilities,omitempty"`
	Components   []Component `yaml:"components"`
}

// Validate checks the manifest for structural mistakes before any filesystem
// work happens. Load calls it; Default is covered by tests.
func (m *Manifest) Validate() error {
	if len(m.Components) == 0 {
		return fmt.Errorf("manifest declares no components")
	}
	for _, c := range m.Components {
		if c.Name == "" {
			return fmt.Errorf("component with empty name")
		}
		if len(c.Sections) == 0 {
			return fmt.Errorf("component %s: no sections", c.Name)
		}
		for _, s := range c.Sections {
			if s.Artifact == "" {
				return fmt.Errorf("component %s: section with empty artifact", c.Name)
			}
			for _, it := range s.Items {
				switch it.Kind {
				case KindFunction, KindClass, KindSubstring:
					if it.Target == "" {
						return fmt.Errorf("component %s: %s item %q has no target", c.Name, it.Kind, it.Label)
					}
				case KindSubstringAny:
					if len(it.Alternatives) == 0 {
						return fmt.Errorf("component %s: substring-any item %q has no alternatives", c.Name, it.Label)
					}
				case KindModuleInclude:
					if it.Target == "" {
						return fmt.Errorf("component %s: module-include item %q has no target", c.Name, it.Label)
					}
					if s.Namespace == "" {
						return fmt.Errorf("component %s: module-include item %q in section without namespace", c.Name, it.Label)
					}
				default:
					return fmt.Errorf("component %s: unknown item kind %q", c.Name, it.Kind)
				}
			}
		}
	}
	return nil
}
