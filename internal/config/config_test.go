package config

import (
	"os"
	"testing"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("PINECONE_API_KEY", "pc-test")
	t.Setenv("PINECONE_URL", "https://index-test.svc.pinecone.io/query")
}

func TestLoadAppliesDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected config to load, got %v", err)
	}
	if cfg.Server.Port != "8080" || cfg.Server.Environment != "development" {
		t.Fatalf("unexpected server defaults: %+v", cfg.Server)
	}
	if cfg.OpenAI.EmbeddingModel != "text-embedding-ada-002" {
		t.Fatalf("unexpected embedding model: %q", cfg.OpenAI.EmbeddingModel)
	}
	if cfg.OpenAI.ChatModel != "gpt-3.5-turbo" || cfg.OpenAI.Temperature != 0.7 {
		t.Fatalf("unexpected chat defaults: %+v", cfg.OpenAI)
	}
	if cfg.Pinecone.TopK != 5 || cfg.Pinecone.ScoreThreshold != 0.77 {
		t.Fatalf("unexpected pinecone defaults: %+v", cfg.Pinecone)
	}
}

func TestLoadFailsWithoutOpenAIKey(t *testing.T) {
	setRequired(t)
	os.Unsetenv("OPENAI_API_KEY")

	if _, err := Load(); err == nil {
		t.Fatal("expected a missing OPENAI_API_KEY to fail loading")
	}
}

func TestLoadFailsWithoutPineconeURL(t *testing.T) {
	setRequired(t)
	os.Unsetenv("PINECONE_URL")

	if _, err := Load(); err == nil {
		t.Fatal("expected a missing PINECONE_URL to fail loading")
	}
}

func TestAddrNormalisesPort(t *testing.T) {
	cases := []struct {
		name string
		port string
		want string
		ok   bool
	}{
		{"bare port", "9000", ":9000", true},
		{"already an address", ":8080", ":8080", true},
		{"host and port", "127.0.0.1:8080", "127.0.0.1:8080", true},
		{"padded", " 8080 ", ":8080", true},
		{"empty", "", "", false},
		{"garbage", "80 80", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ServerConfig{Port: tc.port}.Addr()
			if tc.ok && (err != nil || got != tc.want) {
				t.Fatalf("Addr(%q) = %q, %v; want %q", tc.port, got, err, tc.want)
			}
			if !tc.ok && err == nil {
				t.Fatalf("Addr(%q) = %q; expected an error", tc.port, got)
			}
		})
	}
}
