package checker

import "strings"

// CaseClass is the surface casing of a token. Corrections are rewritten in
// the class of the word they replace.
type CaseClass int

const (
	// CaseOther passes the suggestion through verbatim (lower and mixed case).
	CaseOther CaseClass = iota
	// CaseTitle capitalizes the first letter and lowercases the rest.
	CaseTitle
	// CaseUpper uppercases the whole suggestion.
	CaseUpper
)

// ClassOf classifies the casing of s.
func ClassOf(s string) CaseClass {
	switch {
	case isTitle(s):
		return CaseTitle
	case isUpper(s):
		return CaseUpper
	default:
		return CaseOther
	}
}

// Apply rewrites s in the case class.
func (c CaseClass) Apply(s string) string {
	switch c {
	case CaseTitle:
		return title(s)
	case CaseUpper:
		return strings.ToUpper(s)
	default:
		return s
	}
}

func isTitle(s string) bool {
	if s == "" {
		return false
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) == string(r[0]) && strings.ToLower(string(r[1:])) == string(r[1:])
}

// isUpper requires at least one cased rune; "" and digit-only strings are
// not upper.
func isUpper(s string) bool {
	return s != "" && strings.ToUpper(s) == s && strings.ToLower(s) != s
}

func title(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + strings.ToLower(string(r[1:]))
}
