package workspace

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
)

// PlainText is the language id of files no lexer claims
const PlainText = "plaintext"

// languageAliases maps lower-cased lexer names to editor language ids
var languageAliases = map[string]string{
	"base makefile":   "makefile",
	"bash":            "shellscript",
	"c#":              "csharp",
	"c++":             "cpp",
	"docker":          "dockerfile",
	"protocol buffer": "proto3",
}

// DetectLanguage returns the editor language id for a file path
func DetectLanguage(path string) string {
	lexer := lexers.Match(filepath.Base(path))
	if lexer == nil {
		return PlainText
	}
	name := strings.ToLower(lexer.Config().Name)
	if alias, ok := languageAliases[name]; ok {
		return alias
	}
	return name
}
