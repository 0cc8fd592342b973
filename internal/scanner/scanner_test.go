package scanner

import (
	"testing"

	"github.com/codemend/codemend/internal/findings"
	"github.com/codemend/codemend/internal/rules"
)

func newScanner(t *testing.T) *Scanner {
	t.Helper()
	return New(rules.Builtin())
}

func TestScanMissingColonForLoop(t *testing.T) {
	s := newScanner(t)
	doc := findings.Document{"for i in range(5)"}

	got := s.Scan(doc, findings.Python)
	if len(got) != 1 {
		t.Fatalf("got %d findings, want 1: %+v", len(got), got)
	}

	f := got[0]
	if f.Category != findings.SyntaxError {
		t.Errorf("category = %s, want SyntaxError", f.Category)
	}
	if f.Line != 1 {
		t.Errorf("line = %d, want 1", f.Line)
	}
	if f.Fix != "for i in range(5):" {
		t.Errorf("fix = %q, want %q", f.Fix, "for i in range(5):")
	}
	if f.Original != "for i in range(5)" {
		t.Errorf("original = %q", f.Original)
	}
}

func TestScanDivisionByZero(t *testing.T) {
	s := newScanner(t)
	doc := findings.Document{"x = 10 / y"}

	got := s.Scan(doc, findings.Python)
	if len(got) != 1 {
		t.Fatalf("got %d findings, want 1: %+v", len(got), got)
	}

	f := got[0]
	if f.Category != findings.LogicError {
		t.Errorf("category = %s, want LogicError", f.Category)
	}
	if f.Line != 1 {
		t.Errorf("line = %d, want 1", f.Line)
	}
	if f.Fix != "x = 10 / y if y != 0 else 0" {
		t.Errorf("fix = %q", f.Fix)
	}
}

func TestScanEmitsAllMatchesPerLine(t *testing.T) {
	s := newScanner(t)
	// Triggers both the if-colon rule and the string comparison rule.
	doc := findings.Document{`if name == "admin"`}

	got := s.Scan(doc, findings.Python)
	if len(got) != 2 {
		t.Fatalf("got %d findings, want 2: %+v", len(got), got)
	}

	// Rule registration order within the line: if-colon first.
	if got[0].Category != findings.SyntaxError {
		t.Errorf("first finding category = %s, want SyntaxError", got[0].Category)
	}
	if got[1].Category != findings.StyleWarning {
		t.Errorf("second finding category = %s, want StyleWarning", got[1].Category)
	}
	if got[1].Fix != "name == 'admin'" {
		t.Errorf("second fix = %q", got[1].Fix)
	}
}

func TestScanOrdersByLineAscending(t *testing.T) {
	s := newScanner(t)
	doc := findings.Document{
		"x = 10 / y",
		"total = acc / len(values)",
		"for item in items",
	}

	got := s.Scan(doc, findings.Python)
	if len(got) != 3 {
		t.Fatalf("got %d findings, want 3: %+v", len(got), got)
	}
	for i, f := range got {
		if f.Line != i+1 {
			t.Errorf("finding %d on line %d, want %d", i, f.Line, i+1)
		}
	}
}

func TestScanOtherLanguages(t *testing.T) {
	s := newScanner(t)

	tests := []struct {
		name     string
		lang     findings.Language
		line     string
		wantCat  findings.Category
		wantFix  string
		wantHits int
	}{
		{"java if without braces", findings.Java, "if (x > 0) return;", findings.SyntaxError, "if (...) {", 1},
		{"java braced if clean", findings.Java, "if (x > 0) {", "", "", 0},
		{"cpp for without braces", findings.CPP, "for (int i = 0; i < n; i++) sum += i;", findings.SyntaxError, "for (...) {", 1},
		{"js var", findings.JavaScript, "var count = 0;", findings.StyleWarning, "const count", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Scan(findings.Document{tt.line}, tt.lang)
			if len(got) != tt.wantHits {
				t.Fatalf("got %d findings, want %d: %+v", len(got), tt.wantHits, got)
			}
			if tt.wantHits == 0 {
				return
			}
			if got[0].Category != tt.wantCat {
				t.Errorf("category = %s, want %s", got[0].Category, tt.wantCat)
			}
			if got[0].Fix != tt.wantFix {
				t.Errorf("fix = %q, want %q", got[0].Fix, tt.wantFix)
			}
		})
	}
}

func TestScanUnknownLanguageIsEmpty(t *testing.T) {
	s := newScanner(t)
	got := s.Scan(findings.Document{"for i in range(5)"}, "Fortran")
	if len(got) != 0 {
		t.Errorf("got %d findings for unknown language, want 0", len(got))
	}
}
