// Package pythonchecker implements the structural checker for Python using
// tree-sitter. It finds defects that per-line patterns cannot express:
// assignments that are never read, and bare except clauses.
package pythonchecker

import (
	"fmt"
	"sort"

	"github.com/codemend/codemend/internal/findings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	python "github.com/tree-sitter/tree-sitter-python/bindings/go"
)

// Checker is the tree-sitter based structural checker for Python.
type Checker struct{}

// New creates a new python Checker.
func New() *Checker {
	return &Checker{}
}

func (c *Checker) Name() string {
	return "python"
}

func (c *Checker) Language() findings.Language {
	return findings.Python
}

// Check parses the document and runs the structural passes. If the parse
// tree contains errors, a single SyntaxError finding describes the first
// error site and the passes are skipped.
func (c *Checker) Check(src []byte) []findings.Finding {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(sitter.NewLanguage(python.Language()))

	tree := parser.Parse(src, nil)
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return []findings.Finding{parseFailure(root)}
	}

	var out []findings.Finding
	out = append(out, unusedBindings(root, src)...)
	out = append(out, bareExcepts(root)...)
	return out
}

// parseFailure builds the one diagnostic finding for an unparseable document.
// The line is best-effort: the first ERROR or missing node in the tree.
func parseFailure(root *sitter.Node) findings.Finding {
	line := 1
	walk(root, func(n *sitter.Node) bool {
		if n.IsError() || n.IsMissing() {
			line = int(n.StartPosition().Row) + 1
			return false
		}
		return true
	})

	msg := fmt.Sprintf("invalid syntax at line %d", line)
	return findings.Finding{
		Category: findings.SyntaxError,
		Line:     line,
		Message:  msg,
		Fix:      "# Fix the syntax error: " + msg,
	}
}

// unusedBindings reports assignment targets whose identifier is never read.
// Suppression is whole-document: a use anywhere in the tree, regardless of
// scope or reachability, clears every assignment site for that name.
func unusedBindings(root *sitter.Node, src []byte) []findings.Finding {
	type binding struct {
		name string
		line int
	}

	// First pass: collect plain identifier assignment targets. Targets are
	// remembered by start byte so the use pass can skip them.
	var bindings []binding
	targets := make(map[uint]bool)
	walk(root, func(n *sitter.Node) bool {
		if n.Kind() != "assignment" {
			return true
		}
		left := n.ChildByFieldName("left")
		if left == nil || left.Kind() != "identifier" {
			return true
		}
		targets[left.StartByte()] = true
		bindings = append(bindings, binding{
			name: nodeText(left, src),
			line: int(left.StartPosition().Row) + 1,
		})
		return true
	})

	// Second pass: every identifier that is not an assignment target counts
	// as a read.
	used := make(map[string]bool)
	walk(root, func(n *sitter.Node) bool {
		if n.Kind() == "identifier" && !targets[n.StartByte()] {
			used[nodeText(n, src)] = true
		}
		return true
	})

	var out []findings.Finding
	for _, b := range bindings {
		if used[b.name] {
			continue
		}
		out = append(out, findings.Finding{
			Category: findings.StyleWarning,
			Line:     b.line,
			Message:  fmt.Sprintf("Unused variable '%s'", b.name),
			Fix:      fmt.Sprintf("# Remove or use the variable '%s'", b.name),
		})
	}

	// The walk already yields source order, but the output order is
	// observable, so pin it down.
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Line != out[j].Line {
			return out[i].Line < out[j].Line
		}
		return out[i].Message < out[j].Message
	})
	return out
}

// bareExcepts reports except clauses with no declared exception type.
func bareExcepts(root *sitter.Node) []findings.Finding {
	var out []findings.Finding
	walk(root, func(n *sitter.Node) bool {
		if n.Kind() != "except_clause" {
			return true
		}
		// A typed clause has the exception expression as a named child
		// before the handler block; a bare one has only the block.
		if n.NamedChildCount() == 1 {
			out = append(out, findings.Finding{
				Category: findings.LogicWarning,
				Line:     int(n.StartPosition().Row) + 1,
				Message:  "Bare except clause",
				Fix:      "except Exception as e:",
			})
		}
		return true
	})
	return out
}

// walk visits nodes depth-first in source order. The visitor returns false
// to stop the traversal.
func walk(n *sitter.Node, visit func(*sitter.Node) bool) bool {
	if !visit(n) {
		return false
	}
	for i := range n.ChildCount() {
		if !walk(n.Child(i), visit) {
			return false
		}
	}
	return true
}

func nodeText(n *sitter.Node, src []byte) string {
	return string(src[n.StartByte():n.EndByte()])
}
