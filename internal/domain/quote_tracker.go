package domain

import "strings"

// QuotePolicy describes the literal-template delimiters a QuoteTracker follows.
type QuotePolicy struct {
	// Open starts a template region wherever it appears on a line.
	Open string
	// Close ends a region when it is the whole trimmed line, optionally
	// followed by exactly one of Terminators.
	Close       string
	Terminators string
	// SameLineClose treats an opening line whose braces balance after Open
	// as a complete single-line template.
	SameLineClose bool
}

// QuoteTracker classifies lines of one file as inside or outside a
// literal-template region. Regions do not nest: state is a single flag.
// Use a fresh tracker (or Reset) for every file.
type QuoteTracker struct {
	policy QuotePolicy
	inside bool
}

// NewQuoteTracker returns a tracker in the outside state.
func NewQuoteTracker(policy QuotePolicy) *QuoteTracker {
	return &QuoteTracker{policy: policy}
}

// Reset returns the tracker to the outside state.
func (t *QuoteTracker) Reset() {
	t.inside = false
}

// Inside reports whether the next line starts inside a region.
func (t *QuoteTracker) Inside() bool {
	return t.inside
}

// Observe advances the tracker past line and returns the part of the line
// that lies outside any region. The result is empty when the whole line is
// template text.
func (t *QuoteTracker) Observe(line string) string {
	if t.inside {
		if t.closes(line) {
			t.inside = false
		}

		return ""
	}

	if t.policy.Open == "" {
		return line
	}

	idx := strings.Index(line, t.policy.Open)
	if idx < 0 {
		return line
	}

	rest := line[idx+len(t.policy.Open):]
	if !(t.policy.SameLineClose && closesOnLine(t.policy.Open, rest)) {
		t.inside = true
	}

	return line[:idx]
}

func (t *QuoteTracker) closes(line string) bool {
	trimmed := strings.TrimSpace(line)
	if t.policy.Close == "" || !strings.HasPrefix(trimmed, t.policy.Close) {
		return false
	}

	tail := trimmed[len(t.policy.Close):]
	if tail == "" {
		return true
	}

	return len(tail) == 1 && strings.Contains(t.policy.Terminators, tail)
}

// closesOnLine reports whether the braces opened by open are closed again in
// rest. Only the delimiter pair implied by open's last byte is counted.
func closesOnLine(open, rest string) bool {
	opener := open[len(open)-1]

	var closer byte

	switch opener {
	case '{':
		closer = '}'
	case '(':
		closer = ')'
	case '[':
		closer = ']'
	default:
		return false
	}

	depth := 1

	for i := 0; i < len(rest); i++ {
		switch rest[i] {
		case opener:
			depth++
		case closer:
			depth--
			if depth == 0 {
				return true
			}
		}
	}

	return false
}
