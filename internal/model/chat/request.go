package chat

// Request is the inbound chat payload. Historical frontends named the user
// message differently (last_prompt, then message, then a messages array),
// so all three shapes are accepted.
type Request struct {
	LastPrompt          string `json:"last_prompt,omitempty"`
	Message             string `json:"message,omitempty"`
	Messages            []Turn `json:"messages,omitempty"`
	ConversationHistory []Turn `json:"conversation_history,omitempty"`
	Stream              bool   `json:"stream,omitempty"`
}

// Prompt resolves the latest user text across the accepted field names:
// last_prompt wins, then message, then the last user turn of messages.
func (r Request) Prompt() string {
	if r.LastPrompt != "" {
		return r.LastPrompt
	}
	if r.Message != "" {
		return r.Message
	}
	for i := len(r.Messages) - 1; i >= 0; i-- {
		if r.Messages[i].Role == RoleUser {
			return r.Messages[i].Content
		}
	}
	return ""
}

// History returns the prior turns supplied by the caller. When the messages
// array form is used, every turn before the resolved prompt counts as
// history.
func (r Request) History() []Turn {
	if len(r.ConversationHistory) > 0 {
		return r.ConversationHistory
	}
	if r.LastPrompt != "" || r.Message != "" || len(r.Messages) == 0 {
		return nil
	}
	for i := len(r.Messages) - 1; i >= 0; i-- {
		if r.Messages[i].Role == RoleUser {
			return r.Messages[:i]
		}
	}
	return r.Messages
}

// Response is the buffered reply envelope. Result carries the answer on
// success; Message carries the user-facing failure text otherwise.
type Response struct {
	Success bool   `json:"success"`
	Result  string `json:"result,omitempty"`
	Message string `json:"message,omitempty"`
}

// StreamChunk is one fragment of a streamed reply.
type StreamChunk struct {
	Content string `json:"content"`
}
