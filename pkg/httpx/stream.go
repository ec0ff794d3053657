package httpx

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/hporwanda/ishema-chatbot/pkg/logx"
)

// SetupStreamHeaders prepares the response for an event-stream body of
// "data: {...}" JSON lines.
func SetupStreamHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// SendStreamChunk writes one JSON payload as a stream chunk and flushes it
// to the client immediately.
func SendStreamChunk(w http.ResponseWriter, flusher http.Flusher, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		logx.Error().Err(err).Msg("failed to marshal stream payload")
		return
	}

	if _, err := fmt.Fprintf(w, "data: %s\n\n", data); err != nil {
		logx.Error().Err(err).Msg("failed to write stream chunk")
		return
	}
	flusher.Flush()
}
