// Package syntax holds structural checkers: detectors that operate on a
// parsed representation of the source rather than raw text lines.
package syntax

import "github.com/codemend/codemend/internal/findings"

// Checker performs structural analysis of a whole document for one language.
type Checker interface {
	// Name returns the checker identifier (e.g. "python").
	Name() string
	// Language returns the language this checker applies to.
	Language() findings.Language
	// Check parses the source and returns structural findings. A parse
	// failure is not an error: it surfaces as a single SyntaxError finding
	// and the structural passes are skipped.
	Check(src []byte) []findings.Finding
}

// Registry holds registered checkers. Most languages have none.
type Registry struct {
	checkers []Checker
}

// NewRegistry creates an empty checker registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a checker to the registry.
func (r *Registry) Register(c Checker) {
	r.checkers = append(r.checkers, c)
}

// ForLanguage returns the checker for the given language, or nil.
func (r *Registry) ForLanguage(lang findings.Language) Checker {
	for _, c := range r.checkers {
		if c.Language() == lang {
			return c
		}
	}
	return nil
}

// All returns all registered checkers.
func (r *Registry) All() []Checker {
	return r.checkers
}
