package feedback

import (
	"strings"

	"github.com/BTreeMap/TradeMentor/internal/i18n"
	"github.com/BTreeMap/TradeMentor/internal/models"
)

var taskKeys = map[Mode]string{
	ModeDiagnose:    i18n.KeyAITaskDiagnose,
	ModeImprove:     i18n.KeyAITaskImprove,
	ModeAffirmation: i18n.KeyAITaskAffirmation,
}

// BuildPrompt returns the system instruction (persona voice plus task) and the user data block.
func BuildPrompt(catalog i18n.Catalog, req Request) (string, string) {
	locale := req.Locale
	persona := req.Persona
	if !persona.IsValid() {
		persona = models.PersonaMale
	}
	systemKey := i18n.KeyAISystemPromptMale
	if persona == models.PersonaFemale {
		systemKey = i18n.KeyAISystemPromptFemale
	}
	mode := req.Mode
	if _, ok := taskKeys[mode]; !ok {
		mode = ModeDiagnose
	}
	system := catalog.Resolve(systemKey, locale, i18n.Params{"mentor_name": i18n.MentorName(locale, persona)}) +
		"\n\n" + catalog.Resolve(taskKeys[mode], locale, nil)

	var b strings.Builder
	b.WriteString(catalog.Resolve(i18n.KeyAIDataHeader, locale, nil))
	b.WriteString("\n")
	if p := req.Profile; p != nil {
		b.WriteString(catalog.Resolve(i18n.KeyAIProfileContext, locale, i18n.Params{"goal": p.Goal, "fear": p.Fear}))
		if p.InconsistencyReason != nil && *p.InconsistencyReason != "" {
			b.WriteString(catalog.Resolve(i18n.KeyAIProfileReason, locale, i18n.Params{"reason": *p.InconsistencyReason}))
		}
		b.WriteString("\n")
	}

	scenario := catalog.Resolve(i18n.KeyAIScenario, locale, i18n.Params{"scenario": catalog.Resolve(req.Scenario, locale, nil)})
	switch {
	case req.Bundle != nil:
		lines := []string{
			scenario,
			catalog.Resolve(i18n.KeyAITradeDescription, locale, i18n.Params{"description": req.Bundle.Description}),
			catalog.Resolve(i18n.KeyAITradeEmotion, locale, i18n.Params{"emotion": req.Bundle.Emotion}),
			catalog.Resolve(i18n.KeyAITradeActions, locale, i18n.Params{"actions": req.Bundle.Actions}),
		}
		b.WriteString(strings.Join(lines, "\n"))
		b.WriteString("\n\n")
		b.WriteString(catalog.Resolve(i18n.KeyAITaskRootBelief, locale, nil))
	case req.Profile != nil && req.Profile.TodaysPlan != "":
		lines := []string{
			catalog.Resolve(i18n.KeyAITodaysPlan, locale, i18n.Params{"plan": req.Profile.TodaysPlan}),
			scenario,
			catalog.Resolve(i18n.KeyAIAnswer, locale, i18n.Params{"answer": req.Answer}),
		}
		b.WriteString(strings.Join(lines, "\n"))
		if mode == ModeDiagnose {
			b.WriteString("\n\n")
			b.WriteString(catalog.Resolve(i18n.KeyAITaskAdherence, locale, nil))
		}
	default:
		b.WriteString(scenario)
		b.WriteString("\n")
		b.WriteString(catalog.Resolve(i18n.KeyAIAnswer, locale, i18n.Params{"answer": req.Answer}))
	}
	return system, b.String()
}
