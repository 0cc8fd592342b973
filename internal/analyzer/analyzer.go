// Package analyzer orchestrates line scanning and structural checking into
// one ordered result set.
package analyzer

import (
	"github.com/codemend/codemend/internal/findings"
	"github.com/codemend/codemend/internal/rules"
	"github.com/codemend/codemend/internal/scanner"
	"github.com/codemend/codemend/internal/syntax"
)

// Engine runs detection for a document. It holds no per-document state:
// Analyze is a pure function of its inputs and is safe to call concurrently
// for different documents.
type Engine struct {
	scanner  *scanner.Scanner
	checkers *syntax.Registry
}

// New creates an Engine over a compiled catalog and a checker registry.
func New(catalog *rules.Catalog, checkers *syntax.Registry) *Engine {
	return &Engine{
		scanner:  scanner.New(catalog),
		checkers: checkers,
	}
}

// Analyze detects defects in the source text. Line-scanner findings come
// first, followed by structural-checker findings for languages that have a
// checker; the sequence is not re-sorted, so this order is observable.
func (e *Engine) Analyze(src string, lang findings.Language) findings.Report {
	doc := findings.Split(src)

	ff := e.scanner.Scan(doc, lang)
	if c := e.checkers.ForLanguage(lang); c != nil {
		ff = append(ff, c.Check([]byte(src))...)
	}

	return findings.NewReport(ff)
}
