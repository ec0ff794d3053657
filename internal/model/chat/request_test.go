package chat

import "testing"

func TestPromptPrefersLastPrompt(t *testing.T) {
	req := Request{LastPrompt: "from last_prompt", Message: "from message"}
	if got := req.Prompt(); got != "from last_prompt" {
		t.Fatalf("expected last_prompt to win, got %q", got)
	}
}

func TestPromptFallsBackToMessage(t *testing.T) {
	req := Request{Message: "from message"}
	if got := req.Prompt(); got != "from message" {
		t.Fatalf("expected message field, got %q", got)
	}
}

func TestPromptFromMessagesArray(t *testing.T) {
	req := Request{Messages: []Turn{
		System("instructions"),
		User("first question"),
		Assistant("an answer"),
		User("latest question"),
	}}
	if got := req.Prompt(); got != "latest question" {
		t.Fatalf("expected last user turn, got %q", got)
	}
}

func TestPromptEmptyRequest(t *testing.T) {
	if got := (Request{}).Prompt(); got != "" {
		t.Fatalf("expected empty prompt, got %q", got)
	}
}

func TestHistoryFromConversationHistory(t *testing.T) {
	history := []Turn{User("earlier"), Assistant("reply")}
	req := Request{Message: "now", ConversationHistory: history}

	got := req.History()
	if len(got) != 2 || got[0].Content != "earlier" {
		t.Fatalf("unexpected history: %+v", got)
	}
}

func TestHistoryFromMessagesArray(t *testing.T) {
	req := Request{Messages: []Turn{
		User("first question"),
		Assistant("an answer"),
		User("latest question"),
	}}

	got := req.History()
	if len(got) != 2 {
		t.Fatalf("expected 2 history turns, got %d", len(got))
	}
	if got[1].Content != "an answer" {
		t.Fatalf("unexpected history: %+v", got)
	}
}

func TestHistoryEmptyForSingleFieldForms(t *testing.T) {
	req := Request{Message: "now"}
	if got := req.History(); len(got) != 0 {
		t.Fatalf("expected no history, got %+v", got)
	}
}
