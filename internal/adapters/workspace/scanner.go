// Package workspace stands in for the editor collaborator: it scans a
// directory into a CodeStructure tree and reads a file into an
// ActiveFileInfo snapshot.
package workspace

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/gobwas/glob"
	"golang.org/x/sync/errgroup"

	"github.com/tiennsloit/get-agent-sub001/internal/domain"
	"github.com/tiennsloit/get-agent-sub001/internal/logging"
	"github.com/tiennsloit/get-agent-sub001/internal/ports"
)

// ScanConfig holds configuration for the workspace scanner
type ScanConfig struct {
	// ExcludePatterns are glob patterns matched against a node's name and its
	// slash-separated path relative to the root (e.g. "*.log", "docs/**")
	ExcludePatterns []string

	// IncludeHidden keeps dot-files and dot-directories
	IncludeHidden bool

	// MaxDepth stops descending below this many levels; 0 means unlimited
	MaxDepth int
}

// defaultExcludedDirs are never descended into
var defaultExcludedDirs = map[string]struct{}{
	".git":         {},
	".idea":        {},
	".next":        {},
	".vscode-test": {},
	"__pycache__":  {},
	"dist":         {},
	"node_modules": {},
	"out":          {},
	"target":       {},
	"vendor":       {},
}

// Scanner walks a directory into a CodeStructure tree. Symlinks are
// recorded as files and never followed, so the result is always a tree.
type Scanner struct {
	config   ScanConfig
	excludes []glob.Glob
}

var _ ports.WorkspaceScanner = (*Scanner)(nil)

// NewScanner compiles the exclude patterns
func NewScanner(config ScanConfig) (*Scanner, error) {
	excludes := make([]glob.Glob, 0, len(config.ExcludePatterns))
	for _, pattern := range config.ExcludePatterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("%w: exclude %q: %v", domain.ErrInvalidPattern, pattern, err)
		}
		excludes = append(excludes, g)
	}
	return &Scanner{config: config, excludes: excludes}, nil
}

// Scan builds the tree rooted at root
func (s *Scanner) Scan(ctx context.Context, root string) (*domain.CodeStructure, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", root, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", abs, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory: %w", abs, domain.ErrInvalidInput)
	}

	logging.Logger.Debug("Scanning workspace", "root", abs, "max_depth", s.config.MaxDepth)

	node, err := s.scanDir(ctx, abs, "", 0)
	if err != nil {
		return nil, err
	}
	return &node, nil
}

func (s *Scanner) scanDir(ctx context.Context, absPath, relPath string, depth int) (domain.CodeStructure, error) {
	node := domain.CodeStructure{
		Children: []domain.CodeStructure{},
		Kind:     domain.NodeDirectory,
		Name:     filepath.Base(absPath),
		Path:     absPath,
	}

	if err := ctx.Err(); err != nil {
		return node, err
	}
	if s.config.MaxDepth > 0 && depth >= s.config.MaxDepth {
		return node, nil
	}

	entries, err := os.ReadDir(absPath)
	if err != nil {
		if depth == 0 {
			return node, fmt.Errorf("failed to read %s: %w", absPath, err)
		}
		logging.Logger.Debug("Skipping unreadable directory", "path", absPath, "error", err)
		return node, nil
	}

	entries = s.filter(entries, relPath)
	sort.SliceStable(entries, func(i, j int) bool {
		di, dj := isDir(entries[i]), isDir(entries[j])
		if di != dj {
			return di
		}
		return strings.ToLower(entries[i].Name()) < strings.ToLower(entries[j].Name())
	})

	children := make([]domain.CodeStructure, len(entries))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, entry := range entries {
		childAbs := filepath.Join(absPath, entry.Name())
		childRel := joinRel(relPath, entry.Name())

		if !isDir(entry) {
			children[i] = domain.CodeStructure{
				Children:   []domain.CodeStructure{},
				Kind:       domain.NodeFile,
				LanguageID: DetectLanguage(childAbs),
				Name:       entry.Name(),
				Path:       childAbs,
			}
			continue
		}

		g.Go(func() error {
			child, err := s.scanDir(gctx, childAbs, childRel, depth+1)
			children[i] = child
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return node, err
	}

	node.Children = children
	return node, nil
}

// filter drops hidden, default-excluded and pattern-excluded entries
func (s *Scanner) filter(entries []fs.DirEntry, relPath string) []fs.DirEntry {
	out := entries[:0]
	for _, entry := range entries {
		name := entry.Name()
		if !s.config.IncludeHidden && strings.HasPrefix(name, ".") {
			continue
		}
		if isDir(entry) {
			if _, skip := defaultExcludedDirs[name]; skip {
				continue
			}
		}
		if s.excluded(name, joinRel(relPath, name)) {
			continue
		}
		out = append(out, entry)
	}
	return out
}

func (s *Scanner) excluded(name, rel string) bool {
	for _, g := range s.excludes {
		if g.Match(name) || g.Match(rel) {
			return true
		}
	}
	return false
}

// isDir is false for symlinks, even ones pointing at directories
func isDir(entry fs.DirEntry) bool {
	return entry.Type()&fs.ModeSymlink == 0 && entry.IsDir()
}

func joinRel(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "/" + name
}
