package checkspec

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultManifest(t *testing.T) {
	m := Default()

	require.NoError(t, m.Validate())

	var names []string
	for _, c := range m.Components {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{
		"RootedTree",
		"Hypershell",
		"RootedHypershell",
		"Tests",
		"Examples",
		"Documentation",
		"Integration",
	}, names, "components run in this fixed order")

	t.Run("tree module carries the sequence marker", func(t *testing.T) {
		tree := m.Components[0]
		last := tree.Sections[0].Items[len(tree.Sections[0].Items)-1]
		assert.Equal(t, KindSubstringAny, last.Kind)
		assert.Equal(t, []string{"A000081", "a000081"}, last.Alternatives)
	})

	t.Run("integration section is namespaced", func(t *testing.T) {
		integ := m.Components[6]
		require.Len(t, integ.Sections, 1)
		assert.Equal(t, "nngraph", integ.Sections[0].Namespace)
		assert.Len(t, integ.Sections[0].Items, 3)
	})

	t.Run("documentation has two sections", func(t *testing.T) {
		doc := m.Components[5]
		require.Len(t, doc.Sections, 2)
		assert.Equal(t, "doc/ROOTED_HYPERSHELL.md", doc.Sections[0].Artifact)
		assert.Equal(t, "README.md", doc.Sections[1].Artifact)
	})
}

func TestManifestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(m *Manifest)
		wantErr string
	}{
		{
			name:    "no components",
			mutate:  func(m *Manifest) { m.Components = nil },
			wantErr: "no components",
		},
		{
			name: "unknown item kind",
			mutate: func(m *Manifest) {
				m.Components[0].Sections[0].Items[0].Kind = "ast-node"
			},
			wantErr: "unknown item kind",
		},
		{
			name: "empty artifact",
			mutate: func(m *Manifest) {
				m.Components[1].Sections[0].Artifact = ""
			},
			wantErr: "empty artifact",
		},
		{
			name: "module include without namespace",
			mutate: func(m *Manifest) {
				m.Components[6].Sections[0].Namespace = ""
			},
			wantErr: "without namespace",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Default()
			tt.mutate(m)
			err := m.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
title: Custom Validation
components:
  - name: Core
    title: Validating Core
    sections:
      - artifact: core.lua
        label: Core module
        items:
          - kind: function
            label: "Function: setup"
            target: setup
          - kind: substring-any
            label: Marker present
            alternatives: ["MARKER", "marker"]
`), 0o644))

	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Custom Validation", m.Title)
	require.Len(t, m.Components, 1)
	assert.Equal(t, KindFunction, m.Components[0].Sections[0].Items[0].Kind)
}

func TestLoadRejectsBrokenManifests(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "absent.yaml"))
	assert.ErrorContains(t, err, "failed to read manifest")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("components: {not: a list}"), 0o644))
	_, err = Load(bad)
	assert.ErrorContains(t, err, "failed to parse manifest")

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("title: x"), 0o644))
	_, err = Load(empty)
	assert.ErrorContains(t, err, "invalid manifest")
}
