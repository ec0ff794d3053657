// Package policy holds the content-policy data the chatbot runs on:
// sensitive-topic keywords, known service names, language markers, retrieval
// tuning values and every localized string the bot can say on its own.
// Keeping all of it as data means the refusal scope, thresholds and wording
// can change without touching handler or client code.
package policy

// Language identifies one of the supported reply languages.
type Language string

const (
	English     Language = "english"
	French      Language = "french"
	Kinyarwanda Language = "kinyarwanda"
)

// String returns the string representation of the language.
func (l Language) String() string {
	return string(l)
}

// ParseLanguage normalises the provided value into one of the known
// languages. Unknown values fall back to English.
func ParseLanguage(v string) Language {
	switch Language(v) {
	case French:
		return French
	case Kinyarwanda:
		return Kinyarwanda
	default:
		return English
	}
}

// Policy aggregates the keyword tables, retrieval tuning and localized
// messages. Construct once at startup and inject; never mutate afterwards.
type Policy struct {
	// SensitiveKeywords short-circuit the request when any appears in the
	// user text (case-insensitive substring match).
	SensitiveKeywords []string
	// KnownServices are matched in order; the first hit selects a canned
	// general-info reply instead of the LLM.
	KnownServices []string
	// ServiceInfo maps a known service to its general-info sentence.
	ServiceInfo map[string]string
	// FallbackServiceInfo is used when a service has no dedicated entry.
	// The %s verb receives the service name.
	FallbackServiceInfo string
	// FrenchMarker is the literal phrase that switches the bot to French.
	FrenchMarker string
	// KinyarwandaKeywords are the stop-word tokens that mark Kinyarwanda.
	KinyarwandaKeywords []string

	// ScoreThreshold is the minimum similarity score a retrieval match must
	// meet to contribute context.
	ScoreThreshold float64
	// TopK is the number of nearest neighbours requested per query.
	TopK int
	// MetadataKeys is the ordered list of metadata field names probed for
	// match content; the first non-empty value wins.
	MetadataKeys []string

	// ContactFooter closes every short-circuit reply.
	ContactFooter string
	// SensitiveReply is the generic disclaimer for sensitive queries that
	// matched no known service.
	SensitiveReply string

	// SystemPrompt holds the per-language behaviour instructions sent as the
	// leading system turn.
	SystemPrompt map[Language]string
	// LanguageInstruction is appended to the context turn to pin the reply
	// language.
	LanguageInstruction map[Language]string
	// NoInformation is returned when retrieval fails or finds nothing
	// relevant to the question.
	NoInformation map[Language]string
	// NoContext is returned when retrieval succeeds but yields no usable
	// content.
	NoContext map[Language]string
	// TechnicalIssue is the user-facing message for embedding failures.
	TechnicalIssue string
	// CompletionIssue is the user-facing message for completion failures.
	CompletionIssue string
	// EmptyCompletion replaces a blank model answer.
	EmptyCompletion string
	// StreamFallback is the final fragment emitted when both the stream and
	// its buffered fallback fail.
	StreamFallback string
}

// Default returns the production policy for the Ishema Ryanjye handbook bot.
func Default() *Policy {
	return &Policy{
		SensitiveKeywords: []string{
			"personal medical history", "specific diagnosis", "private health details",
			"explicit content", "identifying information", "confidential test results",
			"personal contact", "exact location", "private conversations",
		},
		KnownServices: []string{
			"contraception", "family planning", "STI prevention", "HIV testing",
			"pregnancy care", "menstrual health", "sexual education", "reproductive rights",
			"gender health", "adolescent health",
		},
		ServiceInfo: map[string]string{
			"contraception":       "Ishema ryanjye provides information about various contraceptive methods. We can discuss general options, but for personalized advice, please consult a healthcare provider.",
			"family planning":     "We offer general information about family planning methods and resources. For specific medical advice, we recommend speaking with a healthcare professional.",
			"STI prevention":      "We can provide general information about STI prevention methods and safe practices. For testing and specific concerns, please visit a healthcare facility.",
			"HIV testing":         "We can share general information about HIV testing options. For testing services and confidential results, please visit a healthcare facility or testing center.",
			"pregnancy care":      "We provide general information about pregnancy care. For personal medical advice, please consult with a healthcare provider.",
			"menstrual health":    "We offer information about menstrual health and hygiene. For specific concerns, we recommend speaking with a healthcare provider.",
			"sexual education":    "We provide age-appropriate sexual education information. For specific questions, we encourage speaking with trusted adults or healthcare providers.",
			"reproductive rights": "We can discuss general information about reproductive rights and access to healthcare services.",
			"gender health":       "We provide information about gender health and related services. For personal support, we recommend consulting with healthcare professionals.",
			"adolescent health":   "We offer general information about adolescent health and development. For specific concerns, we encourage speaking with trusted adults or healthcare providers.",
		},
		FallbackServiceInfo: `Ishema ryanjye provides information about sexual and reproductive health. For specific questions about "%s", we recommend consulting a healthcare provider.`,
		FrenchMarker:        "J'utilise le français",
		KinyarwandaKeywords: []string{
			"muraho", "mwaramutse", "amakuru", "urakoze", "murabeho", "ubwoba", "ubuzima",
			"abana", "abakobwa", "abahungu", "ubushyinzi", "kwiga", "gukina",
			"kwibuka", "kuvuga", "gusoma", "kwandika",
			"nte", "ningeze", "nabona", "ndashaka", "ndabona", "ndasaba", "nkeneye",
			"iki", "ibi", "gute", "ryari", "hehe", "bangahe", "imikino",
			"amagambo", "ikarita", "ubwenge", "ubumenyi",
		},

		ScoreThreshold: 0.77,
		TopK:           5,
		MetadataKeys:   []string{"text", "content", "page_content", "source", "chunk", "data"},

		ContactFooter:  "If you need more detailed insights, feel free to contact us directly at info@hporwanda.org or call us at +250-123-456789. We're always here to help!",
		SensitiveReply: "We value confidentiality and cannot share certain sensitive details publicly. However, we can assist you with services or general information. Please contact us at info@hporwanda.org or call us at +250-123-456789 for assistance.",

		SystemPrompt: map[Language]string{
			English: "You are Ishema ryanjye, a chatbot that ONLY provides information from the loaded Ishema ryanjye handbook and sexual reproductive health data. " +
				"You must ONLY answer based on the provided context from the handbook. " +
				"Do NOT use general knowledge or information outside of what's provided in the context. " +
				"If the provided context doesn't contain enough information to answer the question, say 'I can only answer based on the information in the Ishema ryanjye handbook.'",
			French: "Merci d'avoir choisi le français. Comment puis-je vous aider aujourd'hui ? " +
				"N'hésitez pas à poser des questions sur nos services.",
			Kinyarwanda: "Uri Ishema ryanjye, chatbot ikoreshwa mu gutanga amakuru yerekeye ubuzima bw'imyororokere na ubwongoze. " +
				"Ugomba gutanga amakuru gusa ashingiye ku byanditswe mu gitabo cya Ishema ryanjye n'amakuru y'ubuzima bw'imyororokere na ubwongoze byakatanzwe. " +
				"NTUGOMBA gukoresha ubumenyi bwite cyangwa amakuru atari ayo watanzwe mu nteruro. " +
				"Niba amakuru yatanzwe adafite ibikenewe byo gusubiza ikibazo, vuga ko 'Nshobora gutanga amakuru gusa ashingiye ku byanditswe mu gitabo cya Ishema ryanjye.'",
		},
		LanguageInstruction: map[Language]string{
			English:     "Respond in English. Only use the information provided here.",
			French:      "Répondez en français. Utilisez uniquement les informations fournies ici.",
			Kinyarwanda: "Subiza mu Kinyarwanda. Gukoresha gusa amakuru yatanzwe hano.",
		},
		NoInformation: map[Language]string{
			English:     "I can only provide information based on the Ishema ryanjye handbook and sexual reproductive health data that has been loaded. I don't have information about your specific question. Please try asking about topics covered in the handbook.",
			French:      "Je ne peux fournir que des informations basées sur le manuel Ishema ryanjye et les données de santé reproductive qui ont été chargées. Je n'ai pas d'informations sur votre question spécifique. Veuillez poser des questions sur les sujets couverts dans le manuel.",
			Kinyarwanda: "Nshobora gutanga amakuru gusa ashingiye ku gitabo cya Ishema ryanjye n'amakuru y'ubuzima bw'imyororokere na ubwongoze byakatanzwe. Sinfite amakuru ku kibazo cyawe. Nyamuneka baza ku ngingo ziri mu gitabo.",
		},
		NoContext: map[Language]string{
			English:     "I can only answer questions based on the information in the Ishema ryanjye handbook. Please ask about topics covered in the handbook.",
			French:      "Je ne peux répondre qu'aux questions basées sur les informations du manuel Ishema ryanjye. Veuillez poser des questions sur les sujets couverts dans le manuel.",
			Kinyarwanda: "Nshobora gusubiza ibibazo gusa bishingiye ku amakuru ari mu gitabo cya Ishema ryanjye. Nyamuneka baza ku ngingo ziri mu gitabo.",
		},
		TechnicalIssue:  "Unable to process your question due to technical issues. Please try again later.",
		CompletionIssue: "Technical issues connecting to AI service. Please try again later.",
		EmptyCompletion: "I can only provide information based on the Ishema ryanjye handbook. Please ask a specific question about the content in the handbook.",
		StreamFallback:  "I'm having trouble answering right now. Please try again later.",
	}
}
