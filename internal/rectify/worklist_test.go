package rectify

import (
	"testing"

	"github.com/codemend/codemend/internal/findings"
)

func wl(lines ...int) *Worklist {
	ff := make([]findings.Finding, len(lines))
	for i, n := range lines {
		ff[i] = findings.Finding{Line: n}
	}
	return NewWorklist(ff)
}

func mustCurrent(t *testing.T, w *Worklist) findings.Finding {
	t.Helper()
	f, ok := w.Current()
	if !ok {
		t.Fatal("Current: no finding under cursor")
	}
	return f
}

func TestWorklistEmpty(t *testing.T) {
	w := wl()
	if w.Len() != 0 {
		t.Errorf("Len = %d, want 0", w.Len())
	}
	if _, ok := w.Current(); ok {
		t.Error("Current ok = true on empty list")
	}
	if w.Next() || w.Prev() {
		t.Error("Next/Prev moved on empty list")
	}
}

func TestWorklistNavigation(t *testing.T) {
	w := wl(1, 2, 3)

	if f := mustCurrent(t, w); f.Line != 1 {
		t.Errorf("start at line %d, want 1", f.Line)
	}
	if !w.Next() {
		t.Fatal("Next = false")
	}
	if !w.Next() {
		t.Fatal("second Next = false")
	}
	if w.Next() {
		t.Error("Next moved past last entry")
	}
	if f := mustCurrent(t, w); f.Line != 3 {
		t.Errorf("at line %d, want 3", f.Line)
	}
	if !w.Prev() {
		t.Fatal("Prev = false")
	}
	if f := mustCurrent(t, w); f.Line != 2 {
		t.Errorf("at line %d, want 2", f.Line)
	}
	w.Prev()
	if w.Prev() {
		t.Error("Prev moved past first entry")
	}
}

func TestRemoveCurrentKeepsPosition(t *testing.T) {
	w := wl(1, 2, 3)
	w.Next()

	w.RemoveCurrent()
	if w.Len() != 2 {
		t.Fatalf("Len = %d, want 2", w.Len())
	}
	// The entry that followed the removed one slides under the cursor.
	if f := mustCurrent(t, w); f.Line != 3 {
		t.Errorf("at line %d, want 3", f.Line)
	}
}

func TestRemoveCurrentClampsAtEnd(t *testing.T) {
	w := wl(1, 2)
	w.Next()

	w.RemoveCurrent()
	if f := mustCurrent(t, w); f.Line != 1 {
		t.Errorf("at line %d, want 1", f.Line)
	}
}

func TestRemoveCurrentUntilEmpty(t *testing.T) {
	w := wl(1, 2, 3)
	for w.Len() > 0 {
		w.RemoveCurrent()
	}
	if _, ok := w.Current(); ok {
		t.Error("Current ok = true after draining")
	}
	// A further remove is a no-op.
	w.RemoveCurrent()
	if w.Len() != 0 {
		t.Errorf("Len = %d, want 0", w.Len())
	}
}

func TestNewWorklistCopiesInput(t *testing.T) {
	ff := []findings.Finding{{Line: 1}, {Line: 2}}
	w := NewWorklist(ff)

	ff[0].Line = 99
	if f := mustCurrent(t, w); f.Line != 1 {
		t.Errorf("worklist sees caller mutation: line = %d", f.Line)
	}
}
