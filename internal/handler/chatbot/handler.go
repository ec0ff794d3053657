// Package chatbot exposes the chat endpoint. One handler serves both the
// buffered JSON reply and the streamed variant selected by the request
// body.
package chatbot

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hporwanda/ishema-chatbot/internal/model/chat"
	chatservice "github.com/hporwanda/ishema-chatbot/internal/service/chat"
	"github.com/hporwanda/ishema-chatbot/pkg/httpx"
	"github.com/hporwanda/ishema-chatbot/pkg/logx"
)

// Orchestrator is the request pipeline behind the endpoint.
type Orchestrator interface {
	Respond(ctx context.Context, history []chat.Turn, lastPrompt string) chatservice.Reply
	RespondStream(ctx context.Context, history []chat.Turn, lastPrompt string, emit func(fragment string) error) error
}

// Handler serves the chat-bot endpoint.
type Handler struct {
	orchestrator  Orchestrator
	streamDefault bool
}

// New creates the chat handler. streamDefault turns every reply into the
// streamed variant unless the request says otherwise.
func New(orchestrator Orchestrator, streamDefault bool) *Handler {
	return &Handler{orchestrator: orchestrator, streamDefault: streamDefault}
}

// RegisterRoutes mounts the chat route.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat-bot/", h.handleChat)
}

func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var payload chat.Request
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httpx.RespondJSON(w, http.StatusBadRequest, chat.Response{Success: false, Message: "invalid request body"})
		return
	}

	lastPrompt := payload.Prompt()
	if lastPrompt == "" {
		httpx.RespondJSON(w, http.StatusBadRequest, chat.Response{Success: false, Message: "a user message is required"})
		return
	}

	if payload.Stream || h.streamDefault {
		h.handleStream(w, r, payload.History(), lastPrompt)
		return
	}

	reply := h.orchestrator.Respond(r.Context(), payload.History(), lastPrompt)
	if reply.Success {
		httpx.RespondJSON(w, reply.Status, chat.Response{Success: true, Result: reply.Text})
		return
	}
	httpx.RespondJSON(w, reply.Status, chat.Response{Success: false, Message: reply.Text})
}

// handleStream writes reply fragments as "data: {"content":...}" lines,
// flushed as they are produced, and terminates by closing the stream.
func (h *Handler) handleStream(w http.ResponseWriter, r *http.Request, history []chat.Turn, lastPrompt string) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		httpx.RespondJSON(w, http.StatusInternalServerError, chat.Response{Success: false, Message: "streaming unsupported"})
		return
	}

	httpx.SetupStreamHeaders(w)

	emit := func(fragment string) error {
		httpx.SendStreamChunk(w, flusher, chat.StreamChunk{Content: fragment})
		return r.Context().Err()
	}

	if err := h.orchestrator.RespondStream(r.Context(), history, lastPrompt, emit); err != nil {
		logx.Warn().Err(err).Msg("stream ended early")
	}
}
