// Package snippet resolves a code snippet quoted in chat back to a line of
// the live document.
package snippet

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/tiennsloit/get-agent-sub001/internal/domain"
)

// NotFound is returned when no line matches
const NotFound = -1

// Locator finds the first line of a document matching a snippet pattern.
// The zero value splits on "\n" only and leaves a trailing "\r" on each
// line of a CRLF document.
type Locator struct {
	// StripCarriageReturn drops one trailing "\r" from every line before matching
	StripCarriageReturn bool
}

// Locate interprets pattern as a regular expression and returns the index of
// the first line containing a match, or NotFound. The pattern is compiled
// before any line is tested; a malformed pattern returns ErrInvalidPattern.
func (l Locator) Locate(documentText, pattern string) (int, error) {
	re, err := compile(pattern)
	if err != nil {
		return NotFound, err
	}

	lines := strings.Split(documentText, "\n")
	for i, line := range lines {
		if l.StripCarriageReturn {
			line = strings.TrimSuffix(line, "\r")
		}
		ok, err := re.MatchString(line)
		if err != nil {
			return NotFound, fmt.Errorf("failed to match line %d: %w", i, err)
		}
		if ok {
			return i, nil
		}
	}
	return NotFound, nil
}

// LocateLiteral escapes snippet so it matches verbatim, then locates it
func (l Locator) LocateLiteral(documentText, snippet string) (int, error) {
	return l.Locate(documentText, regexp2.Escape(snippet))
}

// Locate runs the default Locator
func Locate(documentText, pattern string) (int, error) {
	return Locator{}.Locate(documentText, pattern)
}

// LocateLiteral runs the default Locator with an escaped snippet
func LocateLiteral(documentText, snippet string) (int, error) {
	return Locator{}.LocateLiteral(documentText, snippet)
}

// compile uses ECMAScript syntax so patterns behave the way the panel's own
// regex engine treats them
func compile(pattern string) (*regexp2.Regexp, error) {
	re, err := regexp2.Compile(pattern, regexp2.ECMAScript)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", domain.ErrInvalidPattern, pattern, err)
	}
	return re, nil
}
