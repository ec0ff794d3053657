// Package completion wraps the chat-completions endpoint, buffered or
// streamed. Streamed fragments are handed to the caller as soon as they are
// decoded; nothing is buffered or reordered.
package completion

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hporwanda/ishema-chatbot/internal/config"
	"github.com/hporwanda/ishema-chatbot/internal/model/chat"
	"github.com/hporwanda/ishema-chatbot/pkg/errx"
)

const (
	serviceName  = "openai-chat"
	doneSentinel = "[DONE]"
)

// Client calls the chat-completions endpoint with a bounded timeout.
type Client struct {
	httpClient  *http.Client
	endpoint    string
	apiKey      string
	model       string
	temperature float64
}

// NewClient builds a completion client from configuration.
func NewClient(cfg config.OpenAIConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		httpClient:  &http.Client{Timeout: timeout},
		endpoint:    cfg.BaseURL + "/chat/completions",
		apiKey:      cfg.APIKey,
		model:       cfg.ChatModel,
		temperature: cfg.Temperature,
	}
}

type completionRequest struct {
	Model       string      `json:"model"`
	Messages    []chat.Turn `json:"messages"`
	Temperature float64     `json:"temperature"`
	Stream      bool        `json:"stream,omitempty"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type streamChunk struct {
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
	} `json:"choices"`
}

// Complete runs one buffered completion over the conversation and returns
// the first choice's content verbatim; the caller decides what a blank
// answer means.
func (c *Client) Complete(ctx context.Context, turns []chat.Turn) (string, error) {
	resp, err := c.send(ctx, turns, false)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errx.Transport(serviceName, err)
	}

	var parsed completionResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", errx.Malformed(serviceName, err)
	}
	if len(parsed.Choices) == 0 {
		return "", errx.Malformed(serviceName, fmt.Errorf("response contains no choices"))
	}

	return parsed.Choices[0].Message.Content, nil
}

// Stream opens a streamed completion and calls emit once per non-empty
// content fragment, in arrival order, until the upstream sends the done
// sentinel or closes the stream. It returns the number of fragments
// emitted. An emit error aborts the read and is returned as-is, so the
// caller can detect its own client going away.
func (c *Client) Stream(ctx context.Context, turns []chat.Turn, emit func(fragment string) error) (int, error) {
	resp, err := c.send(ctx, turns, true)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	emitted := 0
	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "data: ") {
			continue
		}
		payload := strings.TrimPrefix(line, "data: ")
		if payload == doneSentinel {
			break
		}

		var chunk streamChunk
		if err := json.Unmarshal([]byte(payload), &chunk); err != nil {
			// Skip undecodable keep-alive noise rather than abort a
			// stream that is otherwise delivering content.
			continue
		}
		if len(chunk.Choices) == 0 {
			continue
		}
		if fragment := chunk.Choices[0].Delta.Content; fragment != "" {
			if err := emit(fragment); err != nil {
				return emitted, err
			}
			emitted++
		}
	}
	if err := scanner.Err(); err != nil {
		return emitted, errx.Transport(serviceName, err)
	}

	return emitted, nil
}

func (c *Client) send(ctx context.Context, turns []chat.Turn, stream bool) (*http.Response, error) {
	body, err := json.Marshal(completionRequest{
		Model:       c.model,
		Messages:    turns,
		Temperature: c.temperature,
		Stream:      stream,
	})
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
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, errx.Status(serviceName, resp.StatusCode, string(raw))
	}
	return resp, nil
}
