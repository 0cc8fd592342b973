package rules

import (
	"fmt"

	"github.com/codemend/codemend/internal/findings"
)

// Catalog is an immutable table of compiled rules keyed by language.
// Insertion order within a language is significant: the scanner applies
// rules in registration order.
type Catalog struct {
	byLanguage map[findings.Language][]Rule
}

// Compile builds a catalog from per-language definitions. Any invalid
// definition fails the whole compile; callers treat this as fatal at startup.
func Compile(defs map[findings.Language][]Definition) (*Catalog, error) {
	c := &Catalog{byLanguage: make(map[findings.Language][]Rule, len(defs))}
	for lang, dd := range defs {
		compiled := make([]Rule, 0, len(dd))
		for i, d := range dd {
			r, err := compile(d)
			if err != nil {
				return nil, fmt.Errorf("rule %d for %s: %w", i, lang, err)
			}
			compiled = append(compiled, r)
		}
		c.byLanguage[lang] = compiled
	}
	return c, nil
}

// Rules returns the rules registered for a language, in registration order.
// Unknown languages have no rules.
func (c *Catalog) Rules(lang findings.Language) []Rule {
	return c.byLanguage[lang]
}

// Languages returns the languages that have at least one rule, in the
// fixed findings.Known order.
func (c *Catalog) Languages() []findings.Language {
	var out []findings.Language
	for _, lang := range findings.Known() {
		if len(c.byLanguage[lang]) > 0 {
			out = append(out, lang)
		}
	}
	return out
}

// WithExtra returns a new catalog with extra definitions compiled and
// appended after the receiver's rules for each language.
func (c *Catalog) WithExtra(extra map[findings.Language][]Definition) (*Catalog, error) {
	added, err := Compile(extra)
	if err != nil {
		return nil, err
	}
	out := &Catalog{byLanguage: make(map[findings.Language][]Rule, len(c.byLanguage))}
	for lang, rr := range c.byLanguage {
		out.byLanguage[lang] = rr
	}
	for lang, rr := range added.byLanguage {
		merged := make([]Rule, 0, len(out.byLanguage[lang])+len(rr))
		merged = append(merged, out.byLanguage[lang]...)
		merged = append(merged, rr...)
		out.byLanguage[lang] = merged
	}
	return out, nil
}
