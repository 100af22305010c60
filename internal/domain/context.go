package domain

import (
	"fmt"
	"strings"
)

// Position is a zero-based line/character location in a document
type Position struct {
	Character int `json:"character"`
	Line      int `json:"line"`
}

// Before reports whether p comes strictly before other (line-major, then character)
func (p Position) Before(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Character < other.Character
}

// Selection is the selected text plus its start/end positions
type Selection struct {
	End   Position `json:"end"`
	Start Position `json:"start"`
	Text  string   `json:"text"`
}

// Empty reports whether nothing is selected
func (s Selection) Empty() bool {
	return s.Text == ""
}

// Ordered returns the selection with Start <= End
func (s Selection) Ordered() Selection {
	if s.End.Before(s.Start) {
		s.Start, s.End = s.End, s.Start
	}
	return s
}

// ActiveFileInfo is a snapshot of the document focused in the editor.
// It is replaced wholesale on every editor event.
type ActiveFileInfo struct {
	BaseName   string    `json:"baseName"`
	Content    string    `json:"content"`
	Cursor     Position  `json:"cursor"`
	FileName   string    `json:"fileName"`
	LanguageID string    `json:"languageId"`
	LineCount  int       `json:"lineCount"`
	Selection  Selection `json:"selection"`
}

// NodeKind distinguishes files from directories in a CodeStructure tree
type NodeKind string

const (
	NodeDirectory NodeKind = "directory"
	NodeFile      NodeKind = "file"
)

// CodeStructure is a node in a workspace file/directory tree.
// Children are owned by their parent; parent links are not stored.
type CodeStructure struct {
	Children   []CodeStructure `json:"children"`
	Kind       NodeKind        `json:"type"`
	LanguageID string          `json:"language,omitempty"`
	Name       string          `json:"name"`
	Path       string          `json:"path"`
}

// IsFile reports whether the node is a file
func (c *CodeStructure) IsFile() bool {
	return c.Kind == NodeFile
}

// Validate checks node kinds and that file nodes have no children
func (c *CodeStructure) Validate() error {
	switch c.Kind {
	case NodeFile:
		if len(c.Children) > 0 {
			return fmt.Errorf("file node %q has %d children: %w", c.Path, len(c.Children), ErrInvalidInput)
		}
	case NodeDirectory:
		for i := range c.Children {
			if err := c.Children[i].Validate(); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("node %q has unknown kind %q: %w", c.Path, c.Kind, ErrInvalidInput)
	}
	return nil
}

// Clone returns a deep copy so the tree is never shared between owners
func (c *CodeStructure) Clone() *CodeStructure {
	if c == nil {
		return nil
	}
	out := *c
	if c.Children != nil {
		out.Children = make([]CodeStructure, len(c.Children))
		for i := range c.Children {
			out.Children[i] = *c.Children[i].Clone()
		}
	}
	return &out
}

// Walk visits every node depth-first, parents before children.
// Returning false from fn skips the node's children.
func (c *CodeStructure) Walk(fn func(node *CodeStructure, depth int) bool) {
	c.walk(fn, 0)
}

func (c *CodeStructure) walk(fn func(node *CodeStructure, depth int) bool, depth int) {
	if !fn(c, depth) {
		return
	}
	for i := range c.Children {
		c.Children[i].walk(fn, depth+1)
	}
}

// Find returns the node with the given path, or nil
func (c *CodeStructure) Find(path string) *CodeStructure {
	var found *CodeStructure
	c.Walk(func(node *CodeStructure, _ int) bool {
		if found != nil {
			return false
		}
		if node.Path == path {
			found = node
			return false
		}
		// Only descend into directories that can contain the path
		return node.Kind == NodeDirectory && (node.Path == "" || strings.HasPrefix(path, node.Path))
	})
	return found
}

// CountFiles returns the number of file nodes in the tree
func (c *CodeStructure) CountFiles() int {
	count := 0
	c.Walk(func(node *CodeStructure, _ int) bool {
		if node.IsFile() {
			count++
		}
		return true
	})
	return count
}

// ContextState owns the latest active file and workspace tree.
// Both are nil until first reported.
type ContextState struct {
	ActiveFile    *ActiveFileInfo `json:"activeFile"`
	CodeStructure *CodeStructure  `json:"codeStructure"`
}

// Clone returns a deep copy of the state
func (s ContextState) Clone() ContextState {
	out := ContextState{CodeStructure: s.CodeStructure.Clone()}
	if s.ActiveFile != nil {
		info := *s.ActiveFile
		out.ActiveFile = &info
	}
	return out
}
