package checkspec

// Default returns the builtin manifest describing the expected layout of the
// rooted hypershell implementation tree: three Lua modules, a test suite, an
// example, documentation, and the init.lua wiring file.
func Default() *Manifest {
	return &Manifest{
		Title: "Rooted Hypershell Architecture Validation",
		Capabilities: []string{
			"RootedTree with OEIS A000081 sequence enumeration",
			"Hypershell organization with shell-based processing",
			"RootedHypershell neural network integration",
			"Comprehensive test suite",
			"Example usage demonstrations",
			"Complete documentation",
		},
		Components: []Component{
			{
				Name:  "RootedTree",
				Title: "Validating RootedTree Module",
				Sections: []Section{{
					Artifact: "rooted_tree.lua",
					Label:    "RootedTree module",
					Items: append(
						functionItems(
							"RootedTree.new",
							"addChild",
							"getNodesAtDepth",
							"traverseDFS",
							"traverseBFS",
							"getLeaves",
							"countRootedTrees",
							"getA000081Sequence",
						),
						Item{
							Kind:         KindSubstringAny,
							Label:        "A000081 sequence implementation",
							Alternatives: []string{"A000081", "a000081"},
						},
					),
				}},
			},
			{
				Name:  "Hypershell",
				Title: "Validating Hypershell Module",
				Sections: []Section{{
					Artifact: "hypershell.lua",
					Label:    "Hypershell module",
					Items: functionItems(
						"Hypershell.new",
						"buildShells",
						"getShell",
						"getNodeDepth",
						"propagateOutward",
						"propagateInward",
						"spreadAttention",
					),
				}},
			},
			{
				Name:  "RootedHypershell",
				Title: "Validating RootedHypershell Module",
				Sections: []Section{{
					Artifact: "rooted_hypershell.lua",
					Label:    "RootedHypershell module",
					Items: append(
						[]Item{{
							Kind:   KindClass,
							Label:  "Class: nn.RootedHypershell",
							Target: "RootedHypershell",
						}},
						methodItems(
							"updateOutput",
							"updateGradInput",
							"buildTreeFromShells",
							"spreadAttention",
							"hierarchicalInference",
							"getRelevantNodes",
						)...,
					),
				}},
			},
			{
				Name:  "Tests",
				Title: "Validating Test Suite",
				Sections: []Section{{
					Artifact: "test/test_rooted_hypershell.lua",
					Label:    "Test suite",
					Items: testItems(
						"testRootedTreeBasics",
						"testRootedTreeTraversal",
						"testA000081Sequence",
						"testHypershellCreation",
						"testRootedHypershell",
					),
				}},
			},
			{
				Name:  "Examples",
				Title: "Validating Examples",
				Sections: []Section{{
					Artifact: "examples/rooted_hypershell_example.lua",
					Label:    "Example file",
					Items: []Item{
						{Kind: KindSubstring, Label: "RootedTree usage", Target: "RootedTree"},
						{Kind: KindSubstring, Label: "Hypershell usage", Target: "Hypershell"},
						{Kind: KindSubstring, Label: "RootedHypershell usage", Target: "RootedHypershell"},
						{Kind: KindSubstring, Label: "A000081 sequence", Target: "A000081"},
						{Kind: KindSubstring, Label: "Attention spreading", Target: "spreadAttention"},
					},
				}},
			},
			{
				Name:  "Documentation",
				Title: "Validating Documentation",
				Sections: []Section{
					{
						Artifact: "doc/ROOTED_HYPERSHELL.md",
						Label:    "Architecture documentation",
						Items: []Item{
							{Kind: KindSubstring, Label: "A000081 documentation", Target: "A000081"},
							{Kind: KindSubstring, Label: "Hypershell documentation", Target: "Hypershell"},
							{Kind: KindSubstring, Label: "RootedTree documentation", Target: "RootedTree"},
						},
					},
					{
						Artifact: "README.md",
						Label:    "README",
						Items: []Item{{
							Kind:         KindSubstringAny,
							Label:        "README mentions Rooted Hypershell",
							Alternatives: []string{"Rooted Hypershell", "rooted hypershell"},
						}},
					},
				},
			},
			{
				Name:  "Integration",
				Title: "Validating Integration",
				Sections: []Section{{
					Artifact:  "init.lua",
					Label:     "init.lua",
					Namespace: "nngraph",
					Items: []Item{
						{Kind: KindModuleInclude, Label: "Module required: rooted_tree", Target: "rooted_tree"},
						{Kind: KindModuleInclude, Label: "Module required: hypershell", Target: "hypershell"},
						{Kind: KindModuleInclude, Label: "Module required: rooted_hypershell", Target: "rooted_hypershell"},
					},
				}},
			},
		},
	}
}

func functionItems(names ...string) []Item {
	items := make([]Item, 0, len(names))
	for _, n := range names {
		items = append(items, Item{Kind: KindFunction, Label: "Function: " + n, Target: n})
	}
	return items
}

func methodItems(names ...string) []Item {
	items := make([]Item, 0, len(names))
	for _, n := range names {
		items = append(items, Item{Kind: KindFunction, Label: "Method: " + n, Target: n})
	}
	return items
}

func testItems(names ...string) []Item {
	items := make([]Item, 0, len(names))
	for _, n := range names {
		items = append(items, Item{Kind: KindFunction, Label: "Test: " + n, Target: n})
	}
	return items
}
