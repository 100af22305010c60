package services

import (
	"fmt"

	"github.com/tiennsloit/get-agent-sub001/internal/domain"
	"github.com/tiennsloit/get-agent-sub001/internal/logging"
	"github.com/tiennsloit/get-agent-sub001/internal/sanitize"
	"github.com/tiennsloit/get-agent-sub001/internal/snippet"
	"github.com/tiennsloit/get-agent-sub001/internal/state"
)

// JumpResult is where a chat snippet was found
type JumpResult struct {
	FileName string
	Found    bool
	Line     int
}

// JumpService resolves code quoted in chat back to a line in the editor
type JumpService struct {
	context *state.ContextStore
	locator snippet.Locator
}

// NewJumpService creates a new JumpService
func NewJumpService(store *state.ContextStore, locator snippet.Locator) *JumpService {
	return &JumpService{
		context: store,
		locator: locator,
	}
}

// JumpToCode locates pattern in the active file. With literal set the
// snippet is matched verbatim instead of as a regular expression.
func (s *JumpService) JumpToCode(pattern string, literal bool) (JumpResult, error) {
	active := s.context.ActiveFile()
	if active == nil {
		return JumpResult{}, fmt.Errorf("no active file: %w", domain.ErrStateNotFound)
	}
	return s.JumpInDocument(active.FileName, active.Content, pattern, literal)
}

// JumpInDocument locates pattern in the given document text
func (s *JumpService) JumpInDocument(fileName, text, pattern string, literal bool) (JumpResult, error) {
	locate := s.locator.Locate
	if literal {
		locate = s.locator.LocateLiteral
	}

	line, err := locate(text, pattern)
	if err != nil {
		logging.Logger.Warn("Snippet pattern rejected", "file", fileName, "error", err)
		return JumpResult{}, err
	}

	result := JumpResult{
		FileName: fileName,
		Found:    line != snippet.NotFound,
		Line:     line,
	}
	logging.Logger.Debug("Snippet located", "file", fileName, "found", result.Found, "line", line)
	return result, nil
}

// DisplayText escapes text for the panel; nil renders as empty
func (s *JumpService) DisplayText(text *string) string {
	return sanitize.EscapeOptional(text)
}
