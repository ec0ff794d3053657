// Package chat sequences one request through the pipeline: classify, then
// either short-circuit with a canned reply or embed, retrieve and complete.
// Every upstream failure is absorbed here into a well-formed user-facing
// reply; nothing below this layer reaches the handler as an error.
package chat

import (
	"context"
	"net/http"

	"github.com/hporwanda/ishema-chatbot/internal/classify"
	"github.com/hporwanda/ishema-chatbot/internal/model/chat"
	"github.com/hporwanda/ishema-chatbot/internal/policy"
	"github.com/hporwanda/ishema-chatbot/internal/prompt"
	"github.com/hporwanda/ishema-chatbot/pkg/errx"
	"github.com/hporwanda/ishema-chatbot/pkg/logx"
)

// Embedder converts text into an embedding vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// Retriever turns a vector into newline-joined handbook context. An empty
// string with a nil error means "no relevant data".
type Retriever interface {
	Query(ctx context.Context, vector []float64) (string, error)
}

// Completer generates text from an assembled conversation, buffered or as a
// fragment stream.
type Completer interface {
	Complete(ctx context.Context, turns []chat.Turn) (string, error)
	Stream(ctx context.Context, turns []chat.Turn, emit func(fragment string) error) (int, error)
}

// Reply is the orchestrator's answer for the buffered path.
type Reply struct {
	Success bool
	Text    string
	Status  int
}

// Service wires the classifier, prompt assembler and upstream clients into
// the request pipeline. It holds no per-request state.
type Service struct {
	classifier *classify.Classifier
	assembler  *prompt.Assembler
	embedder   Embedder
	retriever  Retriever
	completer  Completer
	pol        *policy.Policy
}

// NewService builds the orchestrator.
func NewService(pol *policy.Policy, embedder Embedder, retriever Retriever, completer Completer) *Service {
	return &Service{
		classifier: classify.New(pol),
		assembler:  prompt.New(pol),
		embedder:   embedder,
		retriever:  retriever,
		completer:  completer,
		pol:        pol,
	}
}

// Respond processes one buffered chat request.
func (s *Service) Respond(ctx context.Context, history []chat.Turn, lastPrompt string) Reply {
	result := s.classifier.Classify(lastPrompt)

	if result.ShortCircuit() {
		logx.Info().Str("service", result.Service).Bool("sensitive", result.Sensitive).
			Msg("short-circuiting policy-gated query")
		return ok(s.assembler.ShortCircuitReply(result.Service, result.Sensitive))
	}

	turns := s.leadingTurns(history, result.Language, lastPrompt)

	vector, err := s.embedder.Embed(ctx, lastPrompt)
	if err != nil {
		logx.Error().Err(err).Msg("embedding failed")
		return Reply{Success: false, Text: s.pol.TechnicalIssue, Status: http.StatusInternalServerError}
	}

	retrieved, err := s.retriever.Query(ctx, vector)
	if err != nil {
		// Retrieval failures are deliberately masked as a benign
		// "don't know" answer rather than a technical error.
		logx.Error().Err(err).Str("kind", string(errx.KindOf(err))).Msg("retrieval failed")
		return ok(s.assembler.NoInformation(result.Language))
	}
	if retrieved == "" {
		return ok(s.assembler.NoContext(result.Language))
	}

	turns = append(turns, s.assembler.ContextTurn(result.Language, retrieved))

	answer, err := s.completer.Complete(ctx, turns)
	if err != nil {
		logx.Error().Err(err).Msg("completion failed")
		return Reply{Success: false, Text: s.pol.CompletionIssue, Status: http.StatusInternalServerError}
	}
	if answer == "" {
		answer = s.pol.EmptyCompletion
	}

	return ok(answer)
}

// RespondStream processes one streamed chat request, emitting reply
// fragments as they arrive. Canned replies and failure messages are emitted
// as a single fragment. Returns the error from emit when the client goes
// away; upstream failures are absorbed.
func (s *Service) RespondStream(ctx context.Context, history []chat.Turn, lastPrompt string, emit func(fragment string) error) error {
	result := s.classifier.Classify(lastPrompt)

	if result.ShortCircuit() {
		return emit(s.assembler.ShortCircuitReply(result.Service, result.Sensitive))
	}

	turns := s.leadingTurns(history, result.Language, lastPrompt)

	vector, err := s.embedder.Embed(ctx, lastPrompt)
	if err != nil {
		logx.Error().Err(err).Msg("embedding failed")
		return emit(s.pol.TechnicalIssue)
	}

	retrieved, err := s.retriever.Query(ctx, vector)
	if err != nil {
		logx.Error().Err(err).Msg("retrieval failed")
		return emit(s.assembler.NoInformation(result.Language))
	}
	if retrieved == "" {
		return emit(s.assembler.NoContext(result.Language))
	}

	turns = append(turns, s.assembler.ContextTurn(result.Language, retrieved))

	emitted, err := s.completer.Stream(ctx, turns, emit)
	switch {
	case err != nil && errx.KindOf(err) == "":
		// emit itself failed; the client is gone.
		return err
	case err != nil && emitted == 0:
		// Stream never produced content. One buffered minimal-context
		// attempt, then a final generic fragment. Not a retry loop.
		logx.Error().Err(err).Msg("streamed completion failed, attempting buffered fallback")
		fallbackTurns := []chat.Turn{s.assembler.SystemTurn(result.Language), chat.User(lastPrompt)}
		answer, fbErr := s.completer.Complete(ctx, fallbackTurns)
		if fbErr != nil || answer == "" {
			if fbErr != nil {
				logx.Error().Err(fbErr).Msg("buffered fallback failed")
			}
			return emit(s.pol.StreamFallback)
		}
		return emit(answer)
	case err != nil:
		// Broke mid-stream after delivering content; the fragments
		// already sent stand on their own.
		logx.Error().Err(err).Int("emitted", emitted).Msg("stream interrupted")
		return nil
	case emitted == 0:
		return emit(s.pol.EmptyCompletion)
	default:
		return nil
	}
}

// leadingTurns appends the localized system turn and the user turn to the
// caller-supplied history in order.
func (s *Service) leadingTurns(history []chat.Turn, lang policy.Language, lastPrompt string) []chat.Turn {
	turns := make([]chat.Turn, 0, len(history)+3)
	turns = append(turns, history...)
	turns = append(turns, s.assembler.SystemTurn(lang))
	turns = append(turns, chat.User(lastPrompt))
	return turns
}

func ok(text string) Reply {
	return Reply{Success: true, Text: text, Status: http.StatusOK}
}
