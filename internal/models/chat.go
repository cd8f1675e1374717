package models

// Role identifies the author of a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// ChatMessage is one turn of the recruiter conversation as sent by the
// front-end. The history is request-scoped: validated, forwarded upstream,
// then dropped.
type ChatMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the expected body of POST /recruiter-chat.
type ChatRequest struct {
	Messages []ChatMessage `json:"messages"`
}
