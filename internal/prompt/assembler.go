// Package prompt builds the conversation sent to the model and every canned
// reply the bot produces without the model. All wording comes from the
// injected policy tables.
package prompt

import (
	"fmt"

	"github.com/hporwanda/ishema-chatbot/internal/model/chat"
	"github.com/hporwanda/ishema-chatbot/internal/policy"
)

// Assembler renders prompts and short-circuit replies from policy data.
type Assembler struct {
	pol *policy.Policy
}

// New creates an assembler over the given policy.
func New(pol *policy.Policy) *Assembler {
	return &Assembler{pol: pol}
}

// SystemTurn is the leading behaviour-instruction turn for the language.
func (a *Assembler) SystemTurn(lang policy.Language) chat.Turn {
	return chat.System(a.pol.SystemPrompt[lang])
}

// ContextTurn embeds the retrieved handbook content plus the instruction to
// answer only from it, in the detected language.
func (a *Assembler) ContextTurn(lang policy.Language, retrieved string) chat.Turn {
	content := fmt.Sprintf(
		"Based on the Ishema ryanjye handbook and sexual reproductive health data: \n%s\n\n%s Do not add general knowledge outside of this context.",
		retrieved, a.pol.LanguageInstruction[lang],
	)
	return chat.System(content)
}

// ShortCircuitReply synthesises the canned reply for a sensitive or
// service-matching query. Service matches get that service's general-info
// sentence with the contact footer; bare sensitive matches get the generic
// disclaimer.
func (a *Assembler) ShortCircuitReply(service string, sensitive bool) string {
	if service != "" {
		return a.serviceReply(service)
	}
	if sensitive {
		return a.pol.SensitiveReply
	}
	return ""
}

func (a *Assembler) serviceReply(service string) string {
	info, ok := a.pol.ServiceInfo[service]
	if !ok {
		info = fmt.Sprintf(a.pol.FallbackServiceInfo, service)
	}
	return fmt.Sprintf(
		"It seems like you're asking for specific details related to %q. While we can't share proprietary or confidential information, I can tell you that %s\n\n%s",
		service, info, a.pol.ContactFooter,
	)
}

// NoInformation is the localized reply when retrieval failed or knew
// nothing about the question.
func (a *Assembler) NoInformation(lang policy.Language) string {
	return a.pol.NoInformation[lang]
}

// NoContext is the localized reply when retrieval succeeded but produced no
// usable content.
func (a *Assembler) NoContext(lang policy.Language) string {
	return a.pol.NoContext[lang]
}
