package rules

import (
	"fmt"

	"github.com/codemend/codemend/internal/findings"
)

// builtinDefs is the built-in detection table. Order within a language is the
// order the scanner applies rules in, so it is part of observable behavior.
//
// Patterns are deliberately line-local heuristics. The colon rules exclude a
// trailing colon from the capture, so their rendered fixes never re-trigger
// the rule that produced them.
var builtinDefs = map[findings.Language][]Definition{
	findings.Python: {
		{
			Pattern:  `for\s+(\w+)\s+in\s+([^:\n]+?)\s*$`,
			Category: findings.SyntaxError,
			Message:  "Missing colon after for loop",
			Fix:      "for {0} in {1}:",
		},
		{
			Pattern:  `\bif\s+([^:\n]+?)\s*$`,
			Category: findings.SyntaxError,
			Message:  "Missing colon after if condition",
			Fix:      "if {0}:",
		},
		{
			Pattern:  `^\s*else\s*$`,
			Category: findings.SyntaxError,
			Message:  "Missing colon after else",
			Fix:      "else:",
		},
		{
			Pattern:  `(\w+)\s*=\s*(\w+)\s*/\s*len\((\w+)\)`,
			Category: findings.LogicError,
			Message:  "Potential division by zero",
			Fix:      "{0} = {1} / len({2}) if len({2}) > 0 else 0",
		},
		{
			Pattern:  `(\w+)\s*=\s*(\d+)\s*/\s*(\w+)`,
			Category: findings.LogicError,
			Message:  "Potential division by zero",
			Fix:      "{0} = {1} / {2} if {2} != 0 else 0",
		},
		{
			Pattern:  `(\w+)\s*==\s*"([^"]*)"`,
			Category: findings.StyleWarning,
			Message:  "String comparison could use single quotes",
			Fix:      "{0} == '{1}'",
		},
		{
			Pattern:  `print\s*\(\s*([^,)]*)\s*\)`,
			Category: findings.DeprecationWarning,
			Message:  "Consider using f-strings for cleaner output",
			Fix:      `print(f"{{{0}}}")`,
		},
		{
			Pattern:  `\bwhile\s+([^:\n]+?)\s*$`,
			Category: findings.SyntaxError,
			Message:  "Missing colon after while condition",
			Fix:      "while {0}:",
		},
		{
			Pattern:  `def\s+(\w+)\s*\(([^)]*)\)\s*$`,
			Category: findings.SyntaxError,
			Message:  "Missing colon after function definition",
			Fix:      "def {0}({1}):",
		},
		{
			Pattern:  `^\s*except\s*$`,
			Category: findings.SyntaxError,
			Message:  "Invalid except clause",
			Fix:      "except Exception:",
		},
	},
	findings.Java: {
		{
			Pattern:  `if\s*\(.+\)\s*([^{\s])`,
			Category: findings.SyntaxError,
			Message:  "Missing braces in if statement",
			Fix:      "if (...) {",
		},
		{
			Pattern:  `for\s*\(.+\)\s*([^{\s])`,
			Category: findings.SyntaxError,
			Message:  "Missing braces in for loop",
			Fix:      "for (...) {",
		},
	},
	findings.CPP: {
		{
			Pattern:  `for\s*\(.+\)\s*([^{\s])`,
			Category: findings.SyntaxError,
			Message:  "Missing braces in for loop",
			Fix:      "for (...) {",
		},
	},
	findings.JavaScript: {
		{
			Pattern:  `if\s*\(.+\)\s*([^{\s])`,
			Category: findings.SyntaxError,
			Message:  "Missing braces in if statement",
			Fix:      "if (...) {",
		},
		{
			Pattern:  `var\s+(\w+)`,
			Category: findings.StyleWarning,
			Message:  "Using var instead of let/const",
			Fix:      "const {0}",
		},
	},
}

// Builtin returns the compiled built-in catalog. The table is fixed at build
// time; a compile failure here is a programmer error.
func Builtin() *Catalog {
	c, err := Compile(builtinDefs)
	if err != nil {
		panic(fmt.Sprintf("built-in rule table: %v", err))
	}
	return c
}
