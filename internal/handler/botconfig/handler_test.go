package botconfig

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/hporwanda/ishema-chatbot/internal/model/botconfig"
)

func getConfig(t *testing.T, language string) botconfig.Config {
	t.Helper()

	r := chi.NewRouter()
	New().RegisterRoutes(r)

	url := "/chat-bot-config/"
	if language != "" {
		url += "?language=" + language
	}
	req := httptest.NewRequest(http.MethodGet, url, nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var cfg botconfig.Config
	if err := json.Unmarshal(resp.Body.Bytes(), &cfg); err != nil {
		t.Fatalf("failed to decode config: %v", err)
	}
	return cfg
}

func TestConfigKinyarwanda(t *testing.T) {
	cfg := getConfig(t, "kinyarwanda")
	if !strings.HasPrefix(cfg.StartUpMessage, "Muraho!") {
		t.Fatalf("unexpected startup message: %q", cfg.StartUpMessage)
	}
}

func TestConfigFrench(t *testing.T) {
	cfg := getConfig(t, "french")
	if !strings.HasPrefix(cfg.StartUpMessage, "Bonjour!") {
		t.Fatalf("unexpected startup message: %q", cfg.StartUpMessage)
	}
}

func TestConfigDefaultsToEnglish(t *testing.T) {
	for _, language := range []string{"", "english", "german", "ENGLISH"} {
		cfg := getConfig(t, language)
		if !strings.HasPrefix(cfg.StartUpMessage, "Hello!") {
			t.Fatalf("language %q: unexpected startup message: %q", language, cfg.StartUpMessage)
		}
	}
}

func TestConfigLanguageParameterCaseInsensitive(t *testing.T) {
	cfg := getConfig(t, "KINYARWANDA")
	if !strings.HasPrefix(cfg.StartUpMessage, "Muraho!") {
		t.Fatalf("unexpected startup message: %q", cfg.StartUpMessage)
	}
}
