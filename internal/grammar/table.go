package grammar

// ModifierGroups lists the mutual-exclusion groups the parser's modifiers
// algorithm enforces (spec §4.2 "Modifiers"): at most one keyword from
// each inner slice may appear on a single declaration.
var ModifierGroups = [][]string{
	{"private", "protected", "public"},
	{"final", "virtual"},
}

// ModifierKeywords is the fixed set accepted by the modifiers rule.
var ModifierKeywords = map[string]bool{
	"private": true, "protected": true, "public": true,
	"static": true, "final": true, "lazy": true, "virtual": true,
}

// SubsequentialTypes names node kinds whose presence in a sequential-
// nodes run does not advance the expected-kind rotation (spec §4.2
// "Sequential-nodes helper", and the expression-sequence algorithm's
// as/in/is operators).
var SubsequentialTypes = map[string]bool{
	"as": true, "in": true, "is": true,
}

// StatementIntroducers are the keywords whose appearance opens a
// `statement` lexer context (mirrored from internal/lexer's own fixed set
// so the grammar table documents the same fact the lexer enforces).
var StatementIntroducers = map[string]bool{
	"if": true, "while": true, "for": true, "try": true,
	"catch": true, "finally": true, "function": true,
}

// CompositeKeywords map a declaration-introducing keyword to its node
// product name.
var CompositeKeywords = map[string]string{
	"class":       "classDeclaration",
	"structure":   "structureDeclaration",
	"object":      "objectDeclaration",
	"protocol":    "protocolDeclaration",
	"namespace":   "namespaceDeclaration",
	"enumeration": "enumerationDeclaration",
	"function":    "functionDeclaration",
}

// Default returns the static rule table used to document the grammar the
// hand-written recursive-descent parser implements. It is consulted for
// shared configuration, not executed as a parser generator.
func Default() Table {
	t := Table{}

	t["module"] = &NodeRule{
		Product: "module",
		Fields: []Field{
			{Name: "statements", Rule: SequenceRule{
				Element: ReferenceRule{Target: "statement"},
				Min:     0, Max: -1,
			}},
		},
	}

	t["expressionsSequence"] = &NodeRule{
		Product: "expressionsSequence",
		Fields: []Field{
			{Name: "values", Rule: SequenceRule{
				Element:   ReferenceRule{Target: "expression"},
				Min:       1, Max: -1,
				Separator: "operatorInfix",
			}},
		},
	}

	t["ifStatement"] = &NodeRule{
		Product: "ifStatement",
		Fields: []Field{
			{Name: "condition", Rule: ReferenceRule{Target: "expression"}},
			{Name: "then", Rule: ReferenceRule{Target: "functionBody"}},
			{Name: "else", Optional: true, Rule: VariantRule{Alternatives: []Rule{
				ReferenceRule{Target: "ifStatement"},
				ReferenceRule{Target: "functionBody"},
			}}},
		},
	}

	t["callExpression"] = &NodeRule{
		Product: "callExpression",
		Fields: []Field{
			{Name: "callee", Rule: HierarchyRule{
				Base:       ReferenceRule{Target: "primaryExpression"},
				Wrappers:   []string{"callExpression", "subscriptExpression", "memberExpression"},
				InnerField: "target",
			}},
		},
	}

	t["functionBody"] = &NodeRule{
		Product: "functionBody",
		Fields: []Field{
			{Name: "statements", Rule: SequenceRule{
				Element: ReferenceRule{Target: "statement"},
				Min:     0, Max: -1,
				Opener: "braceOpen", Closer: "braceClose",
			}},
		},
	}

	return t
}
