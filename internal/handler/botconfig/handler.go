// Package botconfig serves the static widget configuration.
package botconfig

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/hporwanda/ishema-chatbot/internal/model/botconfig"
	"github.com/hporwanda/ishema-chatbot/internal/policy"
	"github.com/hporwanda/ishema-chatbot/pkg/httpx"
)

// Handler serves the chat-bot-config endpoint.
type Handler struct{}

// New creates the config handler.
func New() *Handler {
	return &Handler{}
}

// RegisterRoutes mounts the config route.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/chat-bot-config/", h.handleConfig)
}

func (h *Handler) handleConfig(w http.ResponseWriter, r *http.Request) {
	lang := policy.ParseLanguage(strings.ToLower(r.URL.Query().Get("language")))
	httpx.RespondJSON(w, http.StatusOK, botconfig.ForLanguage(lang))
}
