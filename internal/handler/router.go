package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	botconfigHandler "github.com/hporwanda/ishema-chatbot/internal/handler/botconfig"
	"github.com/hporwanda/ishema-chatbot/internal/handler/chatbot"
	debugHandler "github.com/hporwanda/ishema-chatbot/internal/handler/debug"
	"github.com/hporwanda/ishema-chatbot/internal/middleware"
	"github.com/hporwanda/ishema-chatbot/pkg/httpx"
)

// Deps are the services the routes need. Debug parts are optional; the
// route is only mounted when both are present.
type Deps struct {
	Orchestrator  chatbot.Orchestrator
	StreamDefault bool
	Embedder      debugHandler.Embedder
	Matcher       debugHandler.Matcher
}

// NewRouter wires HTTP routes to core services.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS)

	chatbot.New(deps.Orchestrator, deps.StreamDefault).RegisterRoutes(r)
	botconfigHandler.New().RegisterRoutes(r)

	if deps.Embedder != nil && deps.Matcher != nil {
		debugHandler.New(deps.Embedder, deps.Matcher).RegisterRoutes(r)
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		httpx.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return r
}
