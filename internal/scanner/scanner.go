// Package scanner applies the rule catalog line by line.
package scanner

import (
	"github.com/codemend/codemend/internal/findings"
	"github.com/codemend/codemend/internal/rules"
)

// Scanner matches catalog rules against individual document lines.
// Matching is single-line and stateless, so a scan is read-only over the
// document and safe to run concurrently with other scans.
type Scanner struct {
	catalog *rules.Catalog
}

// New creates a Scanner over the given catalog.
func New(catalog *rules.Catalog) *Scanner {
	return &Scanner{catalog: catalog}
}

// Scan applies every rule registered for the language to every line.
// A line may produce multiple findings, one per matching rule; output is
// ordered by line ascending, and by rule registration order within a line.
func (s *Scanner) Scan(doc findings.Document, lang findings.Language) []findings.Finding {
	var out []findings.Finding
	rr := s.catalog.Rules(lang)

	for i, line := range doc {
		for _, r := range rr {
			f, ok := r.Match(line)
			if !ok {
				continue
			}
			f.Line = i + 1
			f.Original = line
			out = append(out, f)
		}
	}
	return out
}
