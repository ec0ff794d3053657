package retrieval

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hporwanda/ishema-chatbot/internal/config"
	"github.com/hporwanda/ishema-chatbot/internal/policy"
	"github.com/hporwanda/ishema-chatbot/pkg/errx"
)

func newTestClient(url string, threshold float64) *Client {
	return NewClient(config.PineconeConfig{
		APIKey:         "test-key",
		URL:            url,
		TopK:           5,
		ScoreThreshold: threshold,
		Timeout:        2 * time.Second,
	}, policy.Default().MetadataKeys)
}

func matchServer(t *testing.T, matches []Match) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Api-Key"); got != "test-key" {
			t.Errorf("unexpected api key header %q", got)
		}

		var payload struct {
			Vector          []float64 `json:"vector"`
			TopK            int       `json:"topK"`
			IncludeMetadata bool      `json:"includeMetadata"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		if payload.TopK != 5 || !payload.IncludeMetadata {
			t.Errorf("unexpected query parameters: %+v", payload)
		}

		json.NewEncoder(w).Encode(map[string]any{"matches": matches})
	}))
}

func TestQueryRejectsEmptyVector(t *testing.T) {
	client := newTestClient("http://unused.invalid", 0.5)

	_, err := client.Query(context.Background(), nil)
	if kind := errx.KindOf(err); kind != errx.KindValidation {
		t.Fatalf("expected validation kind, got %q (%v)", kind, err)
	}
}

func TestQueryFiltersByThresholdPreservingOrder(t *testing.T) {
	srv := matchServer(t, []Match{
		{ID: "a", Score: 0.95, Metadata: map[string]interface{}{"text": "first"}},
		{ID: "b", Score: 0.70, Metadata: map[string]interface{}{"text": "dropped"}},
		{ID: "c", Score: 0.80, Metadata: map[string]interface{}{"text": "second"}},
	})
	defer srv.Close()

	got, err := newTestClient(srv.URL, 0.77).Query(context.Background(), []float64{0.1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "first\nsecond" {
		t.Fatalf("unexpected context: %q", got)
	}
}

func TestQueryThresholdIsInclusive(t *testing.T) {
	srv := matchServer(t, []Match{
		{ID: "a", Score: 0.77, Metadata: map[string]interface{}{"text": "kept"}},
	})
	defer srv.Close()

	got, err := newTestClient(srv.URL, 0.77).Query(context.Background(), []float64{0.1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "kept" {
		t.Fatalf("a match at the threshold must survive, got %q", got)
	}
}

func TestQueryMetadataKeyFallback(t *testing.T) {
	srv := matchServer(t, []Match{
		{ID: "a", Score: 0.9, Metadata: map[string]interface{}{"page_content": "from page_content"}},
		{ID: "b", Score: 0.9, Metadata: map[string]interface{}{"content": "from content", "source": "ignored"}},
	})
	defer srv.Close()

	got, err := newTestClient(srv.URL, 0.5).Query(context.Background(), []float64{0.1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "from page_content\nfrom content" {
		t.Fatalf("unexpected context: %q", got)
	}
}

func TestQueryDropsMatchesWithoutContent(t *testing.T) {
	srv := matchServer(t, []Match{
		{ID: "a", Score: 0.9, Metadata: map[string]interface{}{"category": "HIV"}},
		{ID: "b", Score: 0.9, Metadata: map[string]interface{}{"text": "   "}},
		{ID: "c", Score: 0.9, Metadata: map[string]interface{}{"text": "usable"}},
	})
	defer srv.Close()

	got, err := newTestClient(srv.URL, 0.5).Query(context.Background(), []float64{0.1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// No placeholder text is fabricated for content-less matches.
	if got != "usable" {
		t.Fatalf("unexpected context: %q", got)
	}
}

func TestQueryZeroMatchesIsSuccess(t *testing.T) {
	srv := matchServer(t, nil)
	defer srv.Close()

	got, err := newTestClient(srv.URL, 0.5).Query(context.Background(), []float64{0.1})
	if err != nil {
		t.Fatalf("zero matches must not be an error, got %v", err)
	}
	if got != "" {
		t.Fatalf("expected empty context, got %q", got)
	}
}

func TestQueryAllBelowThresholdIsSuccess(t *testing.T) {
	srv := matchServer(t, []Match{
		{ID: "a", Score: 0.1, Metadata: map[string]interface{}{"text": "irrelevant"}},
	})
	defer srv.Close()

	got, err := newTestClient(srv.URL, 0.77).Query(context.Background(), []float64{0.1})
	if err != nil {
		t.Fatalf("below-threshold matches must not be an error, got %v", err)
	}
	if got != "" {
		t.Fatalf("expected empty context, got %q", got)
	}
}

func TestQueryDeterministic(t *testing.T) {
	srv := matchServer(t, []Match{
		{ID: "a", Score: 0.9, Metadata: map[string]interface{}{"text": "one"}},
		{ID: "b", Score: 0.8, Metadata: map[string]interface{}{"text": "two"}},
	})
	defer srv.Close()

	client := newTestClient(srv.URL, 0.5)
	first, err := client.Query(context.Background(), []float64{0.1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := client.Query(context.Background(), []float64{0.1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Fatalf("identical inputs must give identical context: %q vs %q", first, second)
	}
}

func TestQueryNon2xxStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "index not found", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL, 0.5).Query(context.Background(), []float64{0.1})
	if kind := errx.KindOf(err); kind != errx.KindStatus {
		t.Fatalf("expected status kind, got %q (%v)", kind, err)
	}
}

func TestQueryEmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	_, err := newTestClient(srv.URL, 0.5).Query(context.Background(), []float64{0.1})
	if kind := errx.KindOf(err); kind != errx.KindMalformed {
		t.Fatalf("expected malformed kind, got %q (%v)", kind, err)
	}
}

func TestUpsertDerivesEndpointFromQueryURL(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode(map[string]int{"upsertedCount": 2})
	}))
	defer srv.Close()

	client := newTestClient(srv.URL+"/query", 0.5)
	count, err := client.Upsert(context.Background(), []Vector{
		{ID: "1", Values: []float64{0.1}, Metadata: map[string]interface{}{"text": "a"}},
		{ID: "2", Values: []float64{0.2}, Metadata: map[string]interface{}{"text": "b"}},
	}, "default")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 upserted, got %d", count)
	}
	if gotPath != "/vectors/upsert" {
		t.Fatalf("unexpected upsert path %q", gotPath)
	}
}

func TestUpsertEmptyInputIsNoop(t *testing.T) {
	client := newTestClient("http://unused.invalid", 0.5)
	count, err := client.Upsert(context.Background(), nil, "default")
	if err != nil || count != 0 {
		t.Fatalf("expected silent noop, got count=%d err=%v", count, err)
	}
}
