package retrieval

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/hporwanda/ishema-chatbot/pkg/errx"
)

// Vector is one entry to store in the index. Metadata should carry the
// chunk text under the "text" key so queries can recover it.
type Vector struct {
	ID       string                 `json:"id"`
	Values   []float64              `json:"values"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

type upsertRequest struct {
	Vectors   []Vector `json:"vectors"`
	Namespace string   `json:"namespace,omitempty"`
}

type upsertResponse struct {
	UpsertedCount int `json:"upsertedCount"`
}

// Upsert stores vectors in the index and returns the count the service
// acknowledged. Used by the offline indexer, not the request path.
func (c *Client) Upsert(ctx context.Context, vectors []Vector, namespace string) (int, error) {
	if len(vectors) == 0 {
		return 0, nil
	}

	body, err := json.Marshal(upsertRequest{Vectors: vectors, Namespace: namespace})
	if err != nil {
		return 0, errx.Malformed(serviceName, err)
	}

	raw, err := c.post(ctx, c.upsertURL(), body)
	if err != nil {
		return 0, err
	}

	var parsed upsertResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return 0, errx.Malformed(serviceName, err)
	}
	return parsed.UpsertedCount, nil
}

// upsertURL derives the upsert endpoint from the configured query URL, so a
// single PINECONE_URL setting serves both operations.
func (c *Client) upsertURL() string {
	base := strings.TrimSuffix(c.queryURL, "/query")
	return strings.TrimRight(base, "/") + "/vectors/upsert"
}
