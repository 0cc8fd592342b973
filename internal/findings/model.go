package findings

import "strings"

// Language identifies which rule set and structural checker apply to a document.
type Language string

// Supported languages.
const (
	Python     Language = "Python"
	Java       Language = "Java"
	CPP        Language = "C++"
	JavaScript Language = "JavaScript"
)

// Known returns all supported languages in a fixed order.
func Known() []Language {
	return []Language{Python, Java, CPP, JavaScript}
}

// ParseLanguage maps a language name to its Language tag.
// Matching is case-insensitive and accepts common aliases.
func ParseLanguage(name string) (Language, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "python", "py":
		return Python, true
	case "java":
		return Java, true
	case "c++", "cpp", "cxx":
		return CPP, true
	case "javascript", "js":
		return JavaScript, true
	}
	return "", false
}

// FromExtension maps a file extension (with leading dot) to a Language.
func FromExtension(ext string) (Language, bool) {
	switch strings.ToLower(ext) {
	case ".py":
		return Python, true
	case ".java":
		return Java, true
	case ".cpp", ".cc", ".cxx", ".hpp":
		return CPP, true
	case ".js", ".mjs":
		return JavaScript, true
	}
	return "", false
}

// Category classifies a finding. It affects display only, never processing order.
type Category string

// Finding categories.
const (
	SyntaxError        Category = "SyntaxError"
	LogicError         Category = "LogicError"
	LogicWarning       Category = "LogicWarning"
	StyleWarning       Category = "StyleWarning"
	DeprecationWarning Category = "DeprecationWarning"
)

// Finding is one reported candidate defect: a location, a classification,
// and a suggested whole-line replacement.
type Finding struct {
	Category Category `json:"category"`
	Line     int      `json:"line"` // 1-based
	Message  string   `json:"message"`
	Original string   `json:"original,omitempty"` // the offending line, verbatim
	Fix      string   `json:"fix"`                // replacement line or inserted comment
}

// Report is the result of one analysis run.
type Report struct {
	Count    int       `json:"count"`
	Findings []Finding `json:"findings"`
}

// NewReport builds a Report from a finding sequence. Count always equals
// len(Findings); constructing through here keeps that invariant.
func NewReport(ff []Finding) Report {
	if ff == nil {
		ff = []Finding{}
	}
	return Report{Count: len(ff), Findings: ff}
}
