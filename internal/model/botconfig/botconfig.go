// Package botconfig holds the static widget configuration served to the
// frontend, selected by language. The tables are immutable per process.
package botconfig

import "github.com/hporwanda/ishema-chatbot/internal/policy"

// Button pairs the label shown on a quick-reply button with the prompt it
// submits.
type Button struct {
	ButtonText   string `json:"buttonText"`
	ButtonPrompt string `json:"buttonPrompt"`
}

// Config is the bot widget configuration payload.
type Config struct {
	BotStatus      int      `json:"botStatus"`
	FontSize       string   `json:"fontSize"`
	UserAvatarURL  string   `json:"userAvatarURL"`
	BotImageURL    string   `json:"botImageURL"`
	StartUpMessage string   `json:"StartUpMessage"`
	CommonButtons  []Button `json:"commonButtons"`
}

const (
	userAvatarURL = "https://learnwithhasan.com/wp-content/uploads/2023/09/pngtree-businessman-user-avatar-wearing-suit-with-red-tie-png-image_5809521.png"
	botImageURL   = "https://mlcorporateservices.com/wp-content/uploads/2022/09/cropped-Mlydie_-1.png"
)

// ForLanguage returns the configuration for the requested language.
// English is the default for unknown values.
func ForLanguage(lang policy.Language) Config {
	cfg := Config{
		BotStatus:     1,
		FontSize:      "16",
		UserAvatarURL: userAvatarURL,
		BotImageURL:   botImageURL,
	}

	switch lang {
	case policy.Kinyarwanda:
		cfg.StartUpMessage = "Muraho! Ndi Ishema ryanjye. Nshobora gutanga amakuru ku buzima bw'imyororokere " +
			"na ubwongoze ndetse n'imikino ya Ishema ryanjye. Ungufasha ute?"
		cfg.CommonButtons = []Button{
			{ButtonText: "J'utilise le français", ButtonPrompt: "J utilise le français"},
			{ButtonText: "I use English", ButtonPrompt: "I use English"},
			{ButtonText: "Ni ayahe maservisisi dutanga?", ButtonPrompt: "Ni ayahe maservisisi dutanga?"},
			{ButtonText: "Nigute nashakatse?", ButtonPrompt: "Nigute nashakatse?"},
		}
	case policy.French:
		cfg.StartUpMessage = "Bonjour! Je suis Ishema ryanjye. Je peux vous aider avec la santé reproductive " +
			"et le jeu de cartes Ishema ryanjye. Comment puis-je vous aider?"
		cfg.CommonButtons = []Button{
			{ButtonText: "Nkoresha Ikinyarwanda", ButtonPrompt: "Muraho, nkoresha Ikinyarwanda"},
			{ButtonText: "I use English", ButtonPrompt: "I use English"},
			{ButtonText: "Quels services offrez-vous?", ButtonPrompt: "Quels services offrez-vous?"},
			{ButtonText: "Comment puis-je vous contacter?", ButtonPrompt: "Comment puis-je vous contacter?"},
		}
	default:
		cfg.StartUpMessage = "Hello! I'm Ishema ryanjye. I can help you with sexual and reproductive health " +
			"topics and the Ishema ryanjye card game. How can I help you?"
		cfg.CommonButtons = []Button{
			{ButtonText: "J'utilise le français", ButtonPrompt: "J utilise le français"},
			{ButtonText: "Nkoresha Ikinyarwanda", ButtonPrompt: "Muraho, nkoresha Ikinyarwanda"},
			{ButtonText: "What services do you offer?", ButtonPrompt: "What services do you offer?"},
			{ButtonText: "How can I contact you?", ButtonPrompt: "How can I contact you?"},
		}
	}

	return cfg
}
