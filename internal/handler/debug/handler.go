// Package debug exposes a diagnostics endpoint that exercises the
// embedding and retrieval clients end to end. Operational tooling, not part
// of the chat flow.
package debug

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hporwanda/ishema-chatbot/internal/service/retrieval"
	"github.com/hporwanda/ishema-chatbot/pkg/httpx"
)

const probeQuery = "how to win ishema ryanjye card game"

// Embedder converts text into an embedding vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// Matcher runs a raw top-K query without score filtering.
type Matcher interface {
	Matches(ctx context.Context, vector []float64) ([]retrieval.Match, error)
}

// Handler serves the debug-pinecone endpoint.
type Handler struct {
	embedder Embedder
	matcher  Matcher
}

// New creates the debug handler.
func New(embedder Embedder, matcher Matcher) *Handler {
	return &Handler{embedder: embedder, matcher: matcher}
}

// RegisterRoutes mounts the debug route.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/debug-pinecone/", h.handleDebug)
}

type matchReport struct {
	ID           string   `json:"id"`
	Score        float64  `json:"score"`
	MetadataKeys []string `json:"metadataKeys"`
}

type report struct {
	Query          string        `json:"query"`
	EmbeddingOK    bool          `json:"embeddingOk"`
	Dimension      int           `json:"dimension,omitempty"`
	EmbeddingError string        `json:"embeddingError,omitempty"`
	RetrievalOK    bool          `json:"retrievalOk"`
	MatchCount     int           `json:"matchCount"`
	Matches        []matchReport `json:"matches,omitempty"`
	RetrievalError string        `json:"retrievalError,omitempty"`
}

func (h *Handler) handleDebug(w http.ResponseWriter, r *http.Request) {
	out := report{Query: probeQuery}

	vector, err := h.embedder.Embed(r.Context(), probeQuery)
	if err != nil {
		out.EmbeddingError = err.Error()
		httpx.RespondJSON(w, http.StatusOK, out)
		return
	}
	out.EmbeddingOK = true
	out.Dimension = len(vector)

	matches, err := h.matcher.Matches(r.Context(), vector)
	if err != nil {
		out.RetrievalError = err.Error()
		httpx.RespondJSON(w, http.StatusOK, out)
		return
	}
	out.RetrievalOK = true
	out.MatchCount = len(matches)
	for _, match := range matches {
		keys := make([]string, 0, len(match.Metadata))
		for key := range match.Metadata {
			keys = append(keys, key)
		}
		out.Matches = append(out.Matches, matchReport{ID: match.ID, Score: match.Score, MetadataKeys: keys})
	}

	httpx.RespondJSON(w, http.StatusOK, out)
}
