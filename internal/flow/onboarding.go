package flow

import (
	"log/slog"

	"github.com/BTreeMap/TradeMentor/internal/i18n"
	"github.com/BTreeMap/TradeMentor/internal/models"
)

// startOnboarding handles /start (edit=false) and /perfil (edit=true).
// /start greets users that already have a profile; /perfil lets them redo it from the persona question.
func startOnboarding(t *turn, edit bool) error {
	profile, err := t.e.store.GetProfile(t.ctx, t.userID)
	if err != nil {
		return err
	}
	switch {
	case profile == nil:
		t.start(models.FlowTypeOnboarding, models.StateAwaitingLanguage)
		t.send(models.OutboundMessage{
			Text:     t.text(i18n.KeyChooseLanguage, nil),
			Keyboard: i18n.LanguageOptions(),
		})
	case edit:
		t.start(models.FlowTypeOnboarding, models.StateAwaitingPersona)
		askPersona(t)
	default:
		t.say(i18n.KeyWelcomeBack, i18n.Params{
			"name":        profile.Name,
			"mentor_name": i18n.MentorName(t.locale, profile.Persona),
			"goal":        profile.Goal,
			"fear":        profile.Fear,
		})
	}
	return nil
}

func askPersona(t *turn) {
	t.send(models.OutboundMessage{
		Text:     t.text(i18n.KeyProfileQPersona, nil),
		Keyboard: i18n.PersonaOptions(t.locale),
	})
}

func handleLanguage(t *turn, text string) error {
	locale := i18n.ParseLanguageChoice(text)
	if err := t.e.store.SetLocale(t.ctx, t.userID, locale); err != nil {
		return err
	}
	t.locale = locale
	t.session.Locale = locale
	t.session.State = models.StateAwaitingPersona
	t.e.sessions.Save(t.session)
	slog.Debug("Engine onboarding: locale selected", "userID", t.userID, "locale", locale)
	askPersona(t)
	return nil
}

func handlePersona(t *turn, text string) error {
	persona := i18n.ParsePersonaChoice(text, t.locale)
	t.session.SetAnswer(models.DataKeyPersona, string(persona))
	t.session.State = models.StateAwaitingName
	t.e.sessions.Save(t.session)
	t.send(models.OutboundMessage{Text: t.text(i18n.KeyProfileQName, nil), RemoveKeyboard: true})
	return nil
}

func handleName(t *turn, text string) error {
	t.session.SetAnswer(models.DataKeyName, text)
	t.advance(models.StateAwaitingAge, i18n.KeyProfileQAge, i18n.Params{"name": text})
	return nil
}

func handleAge(t *turn, text string) error {
	t.session.SetAnswer(models.DataKeyAge, text)
	t.advance(models.StateAwaitingExperience, i18n.KeyProfileQExperience, nil)
	return nil
}

func handleExperience(t *turn, text string) error {
	t.session.SetAnswer(models.DataKeyExperience, text)
	t.advance(models.StateAwaitingSatisfaction, i18n.KeyProfileQSatisfaction, nil)
	return nil
}

func handleSatisfaction(t *turn, text string) error {
	t.session.SetAnswer(models.DataKeySatisfaction, text)
	if i18n.IsDissatisfied(text) {
		t.advance(models.StateAwaitingReason, i18n.KeyProfileQReason, nil)
		return nil
	}
	t.session.ClearAnswer(models.DataKeyInconsistencyReason)
	t.advance(models.StateAwaitingSource, i18n.KeyProfileQSource, nil)
	return nil
}

func handleReason(t *turn, text string) error {
	t.session.SetAnswer(models.DataKeyInconsistencyReason, text)
	t.advance(models.StateAwaitingSource, i18n.KeyProfileQSource, nil)
	return nil
}

func handleSource(t *turn, text string) error {
	t.session.SetAnswer(models.DataKeySource, text)
	t.advance(models.StateAwaitingGoal, i18n.KeyProfileQGoal, nil)
	return nil
}

func handleGoal(t *turn, text string) error {
	t.session.SetAnswer(models.DataKeyGoal, text)
	t.advance(models.StateAwaitingFear, i18n.KeyProfileQFear, nil)
	return nil
}

// handleFear commits the collected answers as the user's profile.
func handleFear(t *turn, text string) error {
	t.session.SetAnswer(models.DataKeyFear, text)
	profile := profileFromSession(t.session)
	if err := t.e.store.UpsertProfile(t.ctx, t.userID, profile); err != nil {
		return err
	}
	slog.Info("Engine onboarding: profile committed", "userID", t.userID, "persona", profile.Persona, "hasReason", profile.HasReason())
	t.finish()
	t.say(i18n.KeyProfileComplete, i18n.Params{
		"name":           profile.Name,
		"goal":           profile.Goal,
		"fear":           profile.Fear,
		"community_link": t.e.communityLink,
	})
	return nil
}

func profileFromSession(s *models.Session) models.Profile {
	answer := func(k models.DataKey) string {
		v, _ := s.Answer(k)
		return v
	}
	p := models.Profile{
		Name:         answer(models.DataKeyName),
		Age:          answer(models.DataKeyAge),
		Experience:   answer(models.DataKeyExperience),
		Satisfaction: answer(models.DataKeySatisfaction),
		Source:       answer(models.DataKeySource),
		Goal:         answer(models.DataKeyGoal),
		Fear:         answer(models.DataKeyFear),
		Persona:      models.Persona(answer(models.DataKeyPersona)),
	}
	if reason, ok := s.Answer(models.DataKeyInconsistencyReason); ok {
		p.InconsistencyReason = &reason
	}
	if !p.Persona.IsValid() {
		p.Persona = models.PersonaMale
	}
	return p
}
