package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsFunction(t *testing.T) {
	m := NewPatternMatcher()

	tests := []struct {
		name string
		text string
		fn   string
		want bool
	}{
		{"bare definition", "function addChild(node)\nend", "addChild", true},
		{"local definition", "local function countRootedTrees(n)\nend", "countRootedTrees", true},
		{"method via colon", "function RootedTree:addChild(node)\nend", "addChild", true},
		{"method via dot", "function RootedTree.new(value)\nend", "new", true},
		{"assigned function value", "getLeaves = function(self)\nend", "getLeaves", true},
		{"dotted construct name", "function RootedTree.new(value)\nend", "RootedTree.new", true},
		{"name absent entirely", "function buildShells(tree)\nend", "spreadAttention", false},
		{"empty text", "", "addChild", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.ContainsFunction(tt.text, tt.fn))
		})
	}
}

func TestContainsClass(t *testing.T) {
	m := NewPatternMatcher()

	tests := []struct {
		name  string
		text  string
		class string
		want  bool
	}{
		{"local binding", "local RootedTree = {}\n", "RootedTree", true},
		{"table literal assignment", "Hypershell = {}\n", "Hypershell", true},
		{"torch.class single quotes", "local RH = torch.class('RootedHypershell', 'nn.Module')", "RootedHypershell", true},
		{"torch.class double quotes namespaced", `local RH = torch.class("nn.RootedHypershell", "nn.Module")`, "RootedHypershell", true},
		{"torch.class single quotes namespaced", "torch.class('nn.RootedHypershell')", "RootedHypershell", true},
		{"absent", "local Other = {}\n", "RootedHypershell", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.ContainsClass(tt.text, tt.class))
		})
	}
}

func TestMatchInsideCommentStillCounts(t *testing.T) {
	// Unanchored presence detection does not understand comments; this is a
	// documented trade-off, pinned here so a future "fix" is a conscious one.
	m := NewPatternMatcher()
	assert.True(t, m.ContainsFunction("-- function addChild was removed", "addChild"))
}
