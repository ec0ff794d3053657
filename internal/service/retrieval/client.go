// Package retrieval wraps the Pinecone REST endpoint. A query turns an
// embedding vector into newline-joined handbook context; an empty result is
// a valid success, never an error. Only transport, status and parse
// problems are failures.
package retrieval

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hporwanda/ishema-chatbot/internal/config"
	"github.com/hporwanda/ishema-chatbot/pkg/errx"
)

const serviceName = "pinecone"

// Client queries and upserts vectors against one Pinecone index.
type Client struct {
	httpClient     *http.Client
	queryURL       string
	apiKey         string
	topK           int
	scoreThreshold float64
	metadataKeys   []string
}

// NewClient builds a retrieval client. metadataKeys is the ordered list of
// metadata field names probed for match content.
func NewClient(cfg config.PineconeConfig, metadataKeys []string) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		httpClient:     &http.Client{Timeout: timeout},
		queryURL:       cfg.URL,
		apiKey:         cfg.APIKey,
		topK:           cfg.TopK,
		scoreThreshold: cfg.ScoreThreshold,
		metadataKeys:   metadataKeys,
	}
}

type queryRequest struct {
	Vector          []float64 `json:"vector"`
	TopK            int       `json:"topK"`
	IncludeMetadata bool      `json:"includeMetadata"`
}

// Match is one scored neighbour returned by the index.
type Match struct {
	ID       string                 `json:"id"`
	Score    float64                `json:"score"`
	Metadata map[string]interface{} `json:"metadata"`
}

type queryResponse struct {
	Matches []Match `json:"matches"`
}

// Query finds the top-K neighbours of the vector and assembles their
// content into a single newline-joined context string, preserving match
// order. Matches scoring below the threshold, and matches whose metadata
// carries no recognisable content, are dropped silently. An empty string
// with a nil error means "no relevant data".
func (c *Client) Query(ctx context.Context, vector []float64) (string, error) {
	if len(vector) == 0 {
		return "", errx.Validation(serviceName, "query vector must not be empty")
	}

	matches, err := c.Matches(ctx, vector)
	if err != nil {
		return "", err
	}

	contexts := make([]string, 0, len(matches))
	for _, match := range matches {
		if match.Score < c.scoreThreshold {
			continue
		}
		if content := c.extractContent(match.Metadata); content != "" {
			contexts = append(contexts, content)
		}
	}

	return strings.Join(contexts, "\n"), nil
}

// Matches runs the raw top-K query and returns the scored matches without
// filtering. The debug endpoint uses this to inspect what the index holds.
func (c *Client) Matches(ctx context.Context, vector []float64) ([]Match, error) {
	body, err := json.Marshal(queryRequest{
		Vector:          vector,
		TopK:            c.topK,
		IncludeMetadata: true,
	})
	if err != nil {
		return nil, errx.Malformed(serviceName, err)
	}

	raw, err := c.post(ctx, c.queryURL, body)
	if err != nil {
		return nil, err
	}

	var parsed queryResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, errx.Malformed(serviceName, err)
	}
	return parsed.Matches, nil
}

// extractContent probes the configured metadata keys in order and returns
// the first non-empty value. A match without content contributes nothing;
// no placeholder text is ever fabricated.
func (c *Client) extractContent(metadata map[string]interface{}) string {
	for _, key := range c.metadataKeys {
		value, ok := metadata[key]
		if !ok {
			continue
		}
		text, ok := value.(string)
		if !ok {
			continue
		}
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

func (c *Client) post(ctx context.Context, url string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, errx.Transport(serviceName, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Api-Key", c.apiKey)

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
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, errx.Malformed(serviceName, fmt.Errorf("empty response body"))
	}
	return raw, nil
}
