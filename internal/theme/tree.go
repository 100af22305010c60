package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/tiennsloit/get-agent-sub001/internal/domain"
)

// RenderTree draws a code structure as an indented tree. Files show their
// language id; directories end with a slash.
func RenderTree(root domain.CodeStructure) string {
	return buildTree(root).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(TreeBranchStyle).
		String()
}

func buildTree(node domain.CodeStructure) *tree.Tree {
	t := tree.Root(nodeLabel(node))
	for _, child := range node.Children {
		if child.IsFile() || len(child.Children) == 0 {
			t.Child(nodeLabel(child))
			continue
		}
		t.Child(buildTree(child))
	}
	return t
}

func nodeLabel(node domain.CodeStructure) string {
	if !node.IsFile() {
		return DirectoryStyle.Render(node.Name + "/")
	}
	if node.LanguageID == "" {
		return FileStyle.Render(node.Name)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		FileStyle.Render(node.Name),
		" ",
		LanguageStyle.Render(fmt.Sprintf("(%s)", node.LanguageID)),
	)
}

// KeyValue renders a "label: value" line
func KeyValue(label, value string) string {
	return LabelStyle.Render(label+":") + " " + ValueStyle.Render(value)
}
