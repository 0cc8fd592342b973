package findings

import "strings"

// Document is an ordered sequence of text lines. Index 0 holds line 1.
type Document []string

// Split breaks source text into a Document. The split is loss-free:
// Join(Split(s)) == s for any s.
func Split(src string) Document {
	return Document(strings.Split(src, "\n"))
}

// Join reassembles the document into source text.
func (d Document) Join() string {
	return strings.Join([]string(d), "\n")
}

// Clone returns an independent copy of the document.
func (d Document) Clone() Document {
	out := make(Document, len(d))
	copy(out, d)
	return out
}
