// Package rules holds the per-language defect detection catalog: each rule
// pairs a line pattern with a category, a human message, and a fix template
// rendered from the pattern's capture groups.
package rules

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/codemend/codemend/internal/findings"
)

// Definition is the serializable form of a rule, as written in the built-in
// tables or in a config file.
type Definition struct {
	Pattern  string            `yaml:"pattern"`
	Category findings.Category `yaml:"category"`
	Message  string            `yaml:"message"`
	Fix      string            `yaml:"fix"`
}

// Rule is a compiled, immutable detection rule.
type Rule struct {
	pattern     *regexp.Regexp
	category    findings.Category
	message     string
	fixTemplate string
}

// Pattern returns the rule's pattern source.
func (r Rule) Pattern() string { return r.pattern.String() }

// Category returns the rule's finding category.
func (r Rule) Category() findings.Category { return r.category }

// Message returns the rule's finding message.
func (r Rule) Message() string { return r.message }

// FixTemplate returns the rule's raw fix template.
func (r Rule) FixTemplate() string { return r.fixTemplate }

// Match attempts a single match against one line. On a hit it returns a
// finding with the rendered fix; Line and Original are left for the caller,
// which knows the position of the line in the document.
func (r Rule) Match(line string) (findings.Finding, bool) {
	m := r.pattern.FindStringSubmatch(line)
	if m == nil {
		return findings.Finding{}, false
	}
	return findings.Finding{
		Category: r.category,
		Message:  r.message,
		Fix:      renderTemplate(r.fixTemplate, m[1:]),
	}, true
}

// compile validates a definition and produces a Rule. A template placeholder
// referencing a group the pattern does not capture is a configuration error.
func compile(d Definition) (Rule, error) {
	re, err := regexp.Compile(d.Pattern)
	if err != nil {
		return Rule{}, fmt.Errorf("compiling pattern %q: %w", d.Pattern, err)
	}

	maxRef, err := maxPlaceholder(d.Fix)
	if err != nil {
		return Rule{}, fmt.Errorf("fix template %q: %w", d.Fix, err)
	}
	if maxRef >= re.NumSubexp() {
		return Rule{}, fmt.Errorf("fix template %q references group %d but pattern %q captures %d group(s)",
			d.Fix, maxRef, d.Pattern, re.NumSubexp())
	}

	switch d.Category {
	case findings.SyntaxError, findings.LogicError, findings.LogicWarning,
		findings.StyleWarning, findings.DeprecationWarning:
	default:
		return Rule{}, fmt.Errorf("unknown category %q", d.Category)
	}

	return Rule{
		pattern:     re,
		category:    d.Category,
		message:     d.Message,
		fixTemplate: d.Fix,
	}, nil
}

// renderTemplate substitutes capture groups positionally into a fix template.
// Placeholders are {0}, {1}, ...; {{ and }} are literal braces. Templates are
// validated at catalog compile time, so malformed runs can be kept verbatim.
func renderTemplate(tmpl string, groups []string) string {
	var b strings.Builder
	for i := 0; i < len(tmpl); {
		c := tmpl[i]
		switch {
		case c == '{' && i+1 < len(tmpl) && tmpl[i+1] == '{':
			b.WriteByte('{')
			i += 2
		case c == '}' && i+1 < len(tmpl) && tmpl[i+1] == '}':
			b.WriteByte('}')
			i += 2
		case c == '{':
			end := strings.IndexByte(tmpl[i:], '}')
			if end < 0 {
				b.WriteByte(c)
				i++
				continue
			}
			idx, err := strconv.Atoi(tmpl[i+1 : i+end])
			if err == nil && idx >= 0 && idx < len(groups) {
				b.WriteString(groups[idx])
			}
			i += end + 1
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String()
}

// maxPlaceholder returns the highest group index referenced by a template,
// or -1 if the template has no placeholders.
func maxPlaceholder(tmpl string) (int, error) {
	maxRef := -1
	for i := 0; i < len(tmpl); {
		c := tmpl[i]
		switch {
		case c == '{' && i+1 < len(tmpl) && tmpl[i+1] == '{':
			i += 2
		case c == '}' && i+1 < len(tmpl) && tmpl[i+1] == '}':
			i += 2
		case c == '{':
			end := strings.IndexByte(tmpl[i:], '}')
			if end < 0 {
				// A brace that never closes is a literal, matching
				// renderTemplate, unless a digit follows: "{0" with no
				// close is a broken placeholder, not a brace.
				if i+1 < len(tmpl) && tmpl[i+1] >= '0' && tmpl[i+1] <= '9' {
					return 0, fmt.Errorf("unterminated placeholder at byte %d", i)
				}
				i++
				continue
			}
			idx, err := strconv.Atoi(tmpl[i+1 : i+end])
			if err != nil || idx < 0 {
				return 0, fmt.Errorf("bad placeholder %q", tmpl[i:i+end+1])
			}
			if idx > maxRef {
				maxRef = idx
			}
			i += end + 1
		case c == '}':
			return 0, fmt.Errorf("unmatched '}' at byte %d", i)
		default:
			i++
		}
	}
	return maxRef, nil
}
