package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"plain text untouched", "hello world", "hello world"},
		{"markup", `<a href="x">&'</a>`, "&lt;a href=&quot;x&quot;&gt;&amp;&#039;&lt;/a&gt;"},
		{"ampersand only", "a && b", "a &amp;&amp; b"},
		{"single quote", "it's", "it&#039;s"},
		{"unicode kept", "naïve <ü>", "naïve &lt;ü&gt;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Escape(tt.input))
		})
	}
}

func TestEscapeIsNotIdempotent(t *testing.T) {
	once := Escape("<b>")
	twice := Escape(once)

	assert.Equal(t, "&lt;b&gt;", once)
	assert.Equal(t, "&amp;lt;b&amp;gt;", twice)
	assert.NotEqual(t, once, twice)
}

func TestEscapeOptional(t *testing.T) {
	assert.Equal(t, "", EscapeOptional(nil))

	empty := ""
	assert.Equal(t, "", EscapeOptional(&empty))

	s := `"quoted"`
	assert.Equal(t, "&quot;quoted&quot;", EscapeOptional(&s))
}
