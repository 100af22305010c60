package workspace

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tiennsloit/get-agent-sub001/internal/domain"
	"github.com/tiennsloit/get-agent-sub001/internal/format"
	"github.com/tiennsloit/get-agent-sub001/internal/ports"
)

// DefaultMaxFileSize is the largest file ReadActiveFile will load (10MB)
const DefaultMaxFileSize int64 = 10 * 1024 * 1024

// FileReader reads documents from disk the way the editor reports them
type FileReader struct {
	MaxFileSize int64
}

var _ ports.DocumentReader = (*FileReader)(nil)

// NewFileReader creates a reader with the default size limit
func NewFileReader() *FileReader {
	return &FileReader{MaxFileSize: DefaultMaxFileSize}
}

// ReadActiveFile snapshots path with the given cursor and selection. The
// selection is put in start <= end order and, when its text is empty, its
// text is taken from the document.
func (r *FileReader) ReadActiveFile(ctx context.Context, path string, cursor domain.Position, selection domain.Selection) (*domain.ActiveFileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", abs, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory: %w", abs, domain.ErrInvalidInput)
	}
	if r.MaxFileSize > 0 && info.Size() > r.MaxFileSize {
		size, _ := format.Bytes(info.Size())
		limit, _ := format.Bytes(r.MaxFileSize)
		return nil, fmt.Errorf("%s is %s, over the %s limit: %w", abs, size, limit, domain.ErrInvalidInput)
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", abs, err)
	}
	content := string(data)
	lines := strings.Split(content, "\n")

	selection = selection.Ordered()
	if selection.Text == "" {
		selection.Text = textBetween(lines, selection.Start, selection.End)
	}

	return &domain.ActiveFileInfo{
		BaseName:   filepath.Base(abs),
		Content:    content,
		Cursor:     cursor,
		FileName:   abs,
		LanguageID: DetectLanguage(abs),
		LineCount:  len(lines),
		Selection:  selection,
	}, nil
}

// textBetween returns the document text from start to end, clamping both
// positions to the document
func textBetween(lines []string, start, end domain.Position) string {
	if !start.Before(end) {
		return ""
	}
	from := offsetAt(lines, start)
	to := offsetAt(lines, end)
	return strings.Join(lines, "\n")[from:to]
}

// offsetAt converts a line/character position (characters counted in runes)
// to a byte offset into the joined document
func offsetAt(lines []string, pos domain.Position) int {
	if pos.Line < 0 {
		return 0
	}
	offset := 0
	for i := 0; i < pos.Line && i < len(lines); i++ {
		offset += len(lines[i]) + 1
	}
	if pos.Line >= len(lines) {
		// Past the last line: clamp to the end of the document
		return offset - 1
	}

	if pos.Character <= 0 {
		return offset
	}
	line := lines[pos.Line]
	chars := 0
	for byteIdx := range line {
		if chars == pos.Character {
			return offset + byteIdx
		}
		chars++
	}
	return offset + len(line)
}
