package botconfig

import (
	"strings"
	"testing"

	"github.com/hporwanda/ishema-chatbot/internal/policy"
)

func TestForLanguageKinyarwanda(t *testing.T) {
	cfg := ForLanguage(policy.Kinyarwanda)

	if !strings.HasPrefix(cfg.StartUpMessage, "Muraho! Ndi Ishema ryanjye.") {
		t.Fatalf("unexpected startup message: %q", cfg.StartUpMessage)
	}
	if len(cfg.CommonButtons) != 4 {
		t.Fatalf("expected 4 buttons, got %d", len(cfg.CommonButtons))
	}
	if cfg.CommonButtons[2].ButtonText != "Ni ayahe maservisisi dutanga?" {
		t.Fatalf("unexpected button: %+v", cfg.CommonButtons[2])
	}
}

func TestForLanguageFrench(t *testing.T) {
	cfg := ForLanguage(policy.French)

	if !strings.HasPrefix(cfg.StartUpMessage, "Bonjour! Je suis Ishema ryanjye.") {
		t.Fatalf("unexpected startup message: %q", cfg.StartUpMessage)
	}
	if cfg.CommonButtons[2].ButtonText != "Quels services offrez-vous?" {
		t.Fatalf("unexpected button: %+v", cfg.CommonButtons[2])
	}
}

func TestForLanguageDefaultsToEnglish(t *testing.T) {
	for _, lang := range []policy.Language{policy.English, policy.Language("klingon"), policy.Language("")} {
		cfg := ForLanguage(lang)
		if !strings.HasPrefix(cfg.StartUpMessage, "Hello! I'm Ishema ryanjye.") {
			t.Fatalf("lang %q: unexpected startup message: %q", lang, cfg.StartUpMessage)
		}
		if cfg.CommonButtons[2].ButtonText != "What services do you offer?" {
			t.Fatalf("lang %q: unexpected button: %+v", lang, cfg.CommonButtons[2])
		}
	}
}

func TestBaseFieldsSharedAcrossLanguages(t *testing.T) {
	for _, lang := range []policy.Language{policy.English, policy.French, policy.Kinyarwanda} {
		cfg := ForLanguage(lang)
		if cfg.BotStatus != 1 || cfg.FontSize != "16" {
			t.Fatalf("lang %q: unexpected base fields: %+v", lang, cfg)
		}
		if cfg.UserAvatarURL == "" || cfg.BotImageURL == "" {
			t.Fatalf("lang %q: avatar URLs must be set", lang)
		}
	}
}
