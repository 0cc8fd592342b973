package rectify

import "github.com/codemend/codemend/internal/findings"

// Worklist is a cursor over a shrinking collection of pending findings, the
// way an interactive caller steps through them one at a time. Removing the
// current entry clamps the cursor back into range; when the list empties the
// cursor becomes "none".
type Worklist struct {
	findings []findings.Finding
	cur      int
}

// NewWorklist builds a worklist over a copy of the given findings. The
// cursor starts at the first entry, or at none for an empty list.
func NewWorklist(ff []findings.Finding) *Worklist {
	w := &Worklist{findings: make([]findings.Finding, len(ff))}
	copy(w.findings, ff)
	if len(w.findings) == 0 {
		w.cur = -1
	}
	return w
}

// Len returns the number of pending findings.
func (w *Worklist) Len() int {
	return len(w.findings)
}

// Current returns the finding under the cursor.
func (w *Worklist) Current() (findings.Finding, bool) {
	if w.cur < 0 || w.cur >= len(w.findings) {
		return findings.Finding{}, false
	}
	return w.findings[w.cur], true
}

// Next advances the cursor. It reports whether the cursor moved.
func (w *Worklist) Next() bool {
	if w.cur < 0 || w.cur+1 >= len(w.findings) {
		return false
	}
	w.cur++
	return true
}

// Prev moves the cursor back. It reports whether the cursor moved.
func (w *Worklist) Prev() bool {
	if w.cur <= 0 {
		return false
	}
	w.cur--
	return true
}

// RemoveCurrent drops the finding under the cursor, typically after it has
// been rectified. The cursor clamps to the new last entry if it ran off the
// end, or to none if nothing remains.
func (w *Worklist) RemoveCurrent() {
	if w.cur < 0 || w.cur >= len(w.findings) {
		return
	}
	w.findings = append(w.findings[:w.cur], w.findings[w.cur+1:]...)
	if len(w.findings) == 0 {
		w.cur = -1
	} else if w.cur >= len(w.findings) {
		w.cur = len(w.findings) - 1
	}
}
