// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config aggregates the configuration of the whole service.
type Config struct {
	Server   ServerConfig
	OpenAI   OpenAIConfig
	Pinecone PineconeConfig
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Port        string `envconfig:"PORT" default:"8080"`
	Environment string `envconfig:"APP_ENV" default:"development"`
}

// Addr normalises the PORT value into a listen address. Values already
// containing a colon are passed through so ":8080" and "127.0.0.1:8080"
// both work.
func (c ServerConfig) Addr() (string, error) {
	port := strings.TrimSpace(c.Port)
	if strings.Contains(port, ":") {
		return port, nil
	}
	if port == "" || strings.Contains(port, " ") {
		return "", fmt.Errorf("invalid PORT value: %q", port)
	}
	return ":" + port, nil
}

// OpenAIConfig describes the embedding and chat-completion endpoints.
type OpenAIConfig struct {
	APIKey         string        `envconfig:"OPENAI_API_KEY" required:"true"`
	BaseURL        string        `envconfig:"OPENAI_BASE_URL" default:"https://api.openai.com/v1"`
	EmbeddingModel string        `envconfig:"OPENAI_EMBEDDING_MODEL" default:"text-embedding-ada-002"`
	ChatModel      string        `envconfig:"OPENAI_CHAT_MODEL" default:"gpt-3.5-turbo"`
	Temperature    float64       `envconfig:"OPENAI_TEMPERATURE" default:"0.7"`
	Timeout        time.Duration `envconfig:"OPENAI_TIMEOUT" default:"30s"`
	Stream         bool          `envconfig:"OPENAI_STREAM" default:"false"`
}

// PineconeConfig describes the vector-search endpoint.
type PineconeConfig struct {
	APIKey         string        `envconfig:"PINECONE_API_KEY" required:"true"`
	URL            string        `envconfig:"PINECONE_URL" required:"true"`
	TopK           int           `envconfig:"PINECONE_TOP_K" default:"5"`
	ScoreThreshold float64       `envconfig:"PINECONE_SCORE_THRESHOLD" default:"0.77"`
	Timeout        time.Duration `envconfig:"PINECONE_TIMEOUT" default:"30s"`
}

// Load reads configuration from the environment. Missing required secrets
// fail here so the process never starts half-configured.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg.Server); err != nil {
		return nil, fmt.Errorf("server config: %w", err)
	}
	if err := envconfig.Process("", &cfg.OpenAI); err != nil {
		return nil, fmt.Errorf("openai config: %w", err)
	}
	if err := envconfig.Process("", &cfg.Pinecone); err != nil {
		return nil, fmt.Errorf("pinecone config: %w", err)
	}
	if _, err := cfg.Server.Addr(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
