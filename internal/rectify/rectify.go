// Package rectify rewrites documents from finding fix texts. Every edit is a
// whole-line replacement, so line numbers never shift and all edits apply
// against the original line-index space.
package rectify

import (
	"sort"

	"github.com/codemend/codemend/internal/findings"
)

// One replaces the line a finding points at with the finding's fix text.
// It returns the new source, the replaced line, and whether a replacement
// happened. An out-of-range line is a defined no-op, not an error: stale
// findings against a document that has since shrunk must not blow up.
func One(src string, f findings.Finding) (string, string, bool) {
	doc := findings.Split(src)
	doc, replaced, ok := applyOne(doc, f)
	if !ok {
		return src, "", false
	}
	return doc.Join(), replaced, true
}

// All applies every finding's fix as a line replacement and returns the new
// source. Findings are processed in descending line order using a stable
// sort, so two findings for the same line keep their input order and the
// later one in the input is applied last and wins.
func All(src string, ff []findings.Finding) string {
	doc := findings.Split(src)

	sorted := make([]findings.Finding, len(ff))
	copy(sorted, ff)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Line > sorted[j].Line
	})

	for _, f := range sorted {
		doc, _, _ = applyOne(doc, f)
	}
	return doc.Join()
}

func applyOne(doc findings.Document, f findings.Finding) (findings.Document, string, bool) {
	idx := f.Line - 1
	if idx < 0 || idx >= len(doc) {
		return doc, "", false
	}
	out := doc.Clone()
	replaced := out[idx]
	out[idx] = f.Fix
	return out, replaced, true
}
