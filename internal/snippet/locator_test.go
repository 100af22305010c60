package snippet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiennsloit/get-agent-sub001/internal/domain"
)

func TestLocate(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		pattern  string
		expected int
	}{
		{"first match wins", "foo\nbar\nbaz", "ba.", 1},
		{"no match", "abc", "xyz", NotFound},
		{"match on first line", "func main() {\n}", "main", 0},
		{"partial match is enough", "    return x + y", "x \\+ y", 0},
		{"whitespace wildcard", "a\nif  (x)  {\n", "if\\s+\\(x\\)\\s+\\{", 1},
		{"empty document has one empty line", "", "^$", 0},
		{"empty pattern matches line zero", "one\ntwo", "", 0},
		{"trailing newline yields final empty line", "x\n", "^$", 1},
		{"anchored pattern", "xfoo\nfoo", "^foo", 1},
		{"lookahead is supported", "foobar\nfoobaz", "foo(?=baz)", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, err := Locate(tt.text, tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, line)
		})
	}
}

func TestLocateInvalidPattern(t *testing.T) {
	for _, pattern := range []string{"[", "(", "a)"} {
		t.Run(pattern, func(t *testing.T) {
			line, err := Locate("foo\nbar", pattern)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidPattern)
			assert.Equal(t, NotFound, line)
		})
	}
}

func TestLocateInvalidPatternOnEmptyDocument(t *testing.T) {
	// Compilation happens before any line is tested
	_, err := Locate("", "[")
	assert.ErrorIs(t, err, domain.ErrInvalidPattern)
}

func TestLocateDoesNotMutateInput(t *testing.T) {
	text := "alpha\nbeta"
	pattern := "bet."
	_, err := Locate(text, pattern)
	require.NoError(t, err)
	assert.Equal(t, "alpha\nbeta", text)
	assert.Equal(t, "bet.", pattern)
}

func TestLocateCRLF(t *testing.T) {
	text := "first\r\nsecond\r\n"

	line, err := Locate(text, "second$")
	require.NoError(t, err)
	assert.Equal(t, NotFound, line, "default split keeps the carriage return on each line")

	line, err = Locator{StripCarriageReturn: true}.Locate(text, "second$")
	require.NoError(t, err)
	assert.Equal(t, 1, line)

	line, err = Locate(text, "second")
	require.NoError(t, err)
	assert.Equal(t, 1, line, "unanchored patterns still match")
}

func TestLocateLiteral(t *testing.T) {
	text := "x := a[0]\ny := (b + c) * 2"

	line, err := LocateLiteral(text, "(b + c) * 2")
	require.NoError(t, err)
	assert.Equal(t, 1, line)

	line, err = LocateLiteral(text, "[")
	require.NoError(t, err)
	assert.Equal(t, 0, line)

	line, err = LocateLiteral(text, "a.0")
	require.NoError(t, err)
	assert.Equal(t, NotFound, line)
}
