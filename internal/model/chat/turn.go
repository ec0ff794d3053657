package chat

// Roles a conversation turn can carry. Order of turns is significant and is
// only ever appended to, never reordered.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one entry of a conversation, oldest first. The server is
// stateless; callers supply prior turns on every request.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// System builds a system turn.
func System(content string) Turn {
	return Turn{Role: RoleSystem, Content: content}
}

// User builds a user turn.
func User(content string) Turn {
	return Turn{Role: RoleUser, Content: content}
}

// Assistant builds an assistant turn.
func Assistant(content string) Turn {
	return Turn{Role: RoleAssistant, Content: content}
}
