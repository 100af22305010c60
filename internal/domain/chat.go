package domain

// Role is the author of a chat message
type Role string

const (
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
)

// CodeFile is a file attached to an assistant request
type CodeFile struct {
	Content  string `json:"content"`
	Filename string `json:"filename"`
}

// ChatMessage is one entry of a conversation
type ChatMessage struct {
	Content string `json:"content"`
	Role    Role   `json:"role"`
}

// GeneralChatInput is the request payload handed to the assistant backend
type GeneralChatInput struct {
	Files      []CodeFile    `json:"files"`
	Messages   []ChatMessage `json:"messages"`
	TargetCode string        `json:"targetCode,omitempty"`
}
