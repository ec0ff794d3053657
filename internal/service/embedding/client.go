// Package embedding wraps the OpenAI embeddings endpoint: text in, vector
// out, typed failure otherwise. Nothing is retried; the orchestrator
// decides what a failure means to the user.
package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hporwanda/ishema-chatbot/internal/config"
	"github.com/hporwanda/ishema-chatbot/pkg/errx"
)

const serviceName = "openai-embeddings"

// Client calls the embeddings endpoint with a bounded timeout.
type Client struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
	model      string
}

// NewClient builds an embedding client from configuration.
func NewClient(cfg config.OpenAIConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   cfg.BaseURL + "/embeddings",
		apiKey:     cfg.APIKey,
		model:      cfg.EmbeddingModel,
	}
}

type embeddingRequest struct {
	Model string `json:"model"`
	Input string `json:"input"`
}

type embeddingResponse struct {
	Data []struct {
		Embedding []float64 `json:"embedding"`
	} `json:"data"`
}

// Embed converts text into its embedding vector. The returned vector is
// non-empty whenever err is nil.
func (c *Client) Embed(ctx context.Context, text string) ([]float64, error) {
	body, err := json.Marshal(embeddingRequest{Model: c.model, Input: text})
	if err != nil {
		return nil, errx.Malformed(serviceName, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errx.Transport(serviceName, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errx.Transport(serviceName, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errx.Transport(serviceName, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errx.Status(serviceName, resp.StatusCode, string(raw))
	}

	var parsed embeddingResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, errx.Malformed(serviceName, err)
	}
	if len(parsed.Data) == 0 || len(parsed.Data[0].Embedding) == 0 {
		return nil, errx.Malformed(serviceName, fmt.Errorf("response contains no embedding"))
	}

	return parsed.Data[0].Embedding, nil
}
