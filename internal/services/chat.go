package services

import (
	"github.com/tiennsloit/get-agent-sub001/internal/domain"
	"github.com/tiennsloit/get-agent-sub001/internal/logging"
	"github.com/tiennsloit/get-agent-sub001/internal/state"
)

// ChatService assembles assistant request payloads from the editor context
type ChatService struct {
	context *state.ContextStore
}

// NewChatService creates a new ChatService
func NewChatService(store *state.ContextStore) *ChatService {
	return &ChatService{context: store}
}

// ChatRequest is what the UI layer supplies for a request
type ChatRequest struct {
	Files             []domain.CodeFile
	IncludeActiveFile bool
	Messages          []domain.ChatMessage
}

// BuildGeneralChatInput reads one snapshot of the context store and combines
// it with the request. The active file is prepended to Files when asked for
// and not already attached; a non-empty selection becomes the target code.
func (s *ChatService) BuildGeneralChatInput(req ChatRequest) domain.GeneralChatInput {
	snapshot := s.context.Get()

	input := domain.GeneralChatInput{
		Files:    make([]domain.CodeFile, 0, len(req.Files)+1),
		Messages: append([]domain.ChatMessage{}, req.Messages...),
	}

	if active := snapshot.ActiveFile; active != nil {
		if req.IncludeActiveFile && !hasFile(req.Files, active.FileName) {
			input.Files = append(input.Files, domain.CodeFile{
				Content:  active.Content,
				Filename: active.FileName,
			})
		}
		if !active.Selection.Empty() {
			input.TargetCode = active.Selection.Text
		}
	}
	input.Files = append(input.Files, req.Files...)

	logging.Logger.Debug("Built chat input",
		"files", len(input.Files),
		"messages", len(input.Messages),
		"has_target_code", input.TargetCode != "")
	return input
}

func hasFile(files []domain.CodeFile, filename string) bool {
	for _, f := range files {
		if f.Filename == filename {
			return true
		}
	}
	return false
}
