package domain

import (
	"strings"

	m "oaks.dev/pkg/hygiene/internal/model"
)

// PlacementRules configures which files are policed and what counts as a
// misplaced test.
type PlacementRules struct {
	// Extension selects the implementation language's files, e.g. ".rs".
	Extension string
	// ImplDir is the directory segment files must live under to be checked.
	ImplDir string
	// TestDir is the directory segment where tests belong; files under it are exempt.
	TestDir string
	// Markers are line prefixes that annotate test code, e.g. "#[test]".
	Markers []string
	// ModuleDecls and FunctionDecls confirm a marker when they appear on the
	// marker's line or start the line that follows it.
	ModuleDecls   []string
	FunctionDecls []string
	Quote         QuotePolicy
}

// DefaultPlacementRules returns the rules for the oaks Rust workspace.
func DefaultPlacementRules() PlacementRules {
	return PlacementRules{
		Extension:     ".rs",
		ImplDir:       "src",
		TestDir:       "tests",
		Markers:       []string{"#[cfg(test)]", "#[test]"},
		ModuleDecls:   []string{"mod ", "pub mod ", "pub(crate) mod "},
		FunctionDecls: []string{"fn ", "pub fn ", "pub(crate) fn ", "async fn "},
		Quote: QuotePolicy{
			Open:          "quote! {",
			Close:         "}",
			Terminators:   ";",
			SameLineClose: true,
		},
	}
}

// PlacementScanner finds test markers in implementation files.
// It is stateless; every call to Scan uses its own QuoteTracker.
type PlacementScanner struct {
	rules PlacementRules
}

// NewPlacementScanner builds a scanner for rules.
func NewPlacementScanner(rules PlacementRules) *PlacementScanner {
	return &PlacementScanner{rules: rules}
}

// Eligible reports whether the candidate must be scanned at all.
func (s *PlacementScanner) Eligible(c m.Candidate) bool {
	if c.Ext != s.rules.Extension {
		return false
	}

	if !c.InDir(s.rules.ImplDir) {
		return false
	}

	return s.rules.TestDir == "" || !c.InDir(s.rules.TestDir)
}

// Scan returns the confirmed violations in lines, in ascending line order.
// Callers are expected to have checked Eligible.
func (s *PlacementScanner) Scan(path m.Path, lines []string) []m.Violation {
	var violations []m.Violation

	tracker := NewQuoteTracker(s.rules.Quote)

	for i, line := range lines {
		visible := strings.TrimSpace(tracker.Observe(line))
		if visible == "" || !s.hasMarker(visible) {
			continue
		}

		next := ""
		if i+1 < len(lines) {
			next = strings.TrimSpace(lines[i+1])
		}

		if !s.confirmed(visible, next) {
			continue
		}

		violations = append(violations, m.Violation{
			Path: path,
			Line: i + 1,
			Text: strings.TrimSpace(line),
		})
	}

	return violations
}

func (s *PlacementScanner) hasMarker(trimmed string) bool {
	for _, marker := range s.rules.Markers {
		if strings.HasPrefix(trimmed, marker) {
			return true
		}
	}

	return false
}

// confirmed applies the two-line rule: a declaration on the marker's own line,
// or a following line that starts with one.
func (s *PlacementScanner) confirmed(trimmed, next string) bool {
	for _, decl := range s.declarations() {
		if strings.Contains(trimmed, decl) {
			return true
		}

		if next != "" && strings.HasPrefix(next, decl) {
			return true
		}
	}

	return false
}

func (s *PlacementScanner) declarations() []string {
	decls := make([]string, 0, len(s.rules.ModuleDecls)+len(s.rules.FunctionDecls))
	decls = append(decls, s.rules.ModuleDecls...)

	return append(decls, s.rules.FunctionDecls...)
}
