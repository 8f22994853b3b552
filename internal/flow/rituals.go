package flow

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/BTreeMap/TradeMentor/internal/feedback"
	"github.com/BTreeMap/TradeMentor/internal/i18n"
	"github.com/BTreeMap/TradeMentor/internal/models"
)

// Interaction log command names.
const (
	logPretradeDiagnosis  = "pretrade_diagnosis"
	logPretradeActionPlan = "pretrade_action_plan"
	logPostrade           = "postrade"
	logEOD                = "eod"
	logDormir             = "dormir"
)

// startRitual checks the entry gates and opens the ritual's first question.
// A refused entry leaves the user without a session.
func startRitual(t *turn, cmd models.Command) error {
	profile, err := t.e.store.GetProfile(t.ctx, t.userID)
	if err != nil {
		return err
	}
	if profile == nil {
		t.say(i18n.KeyProfileNeeded, nil)
		return nil
	}
	dayStart, dayEnd := models.DayBounds(t.today())
	count, err := t.e.store.CountInteractionsToday(t.ctx, t.userID, dayStart, dayEnd)
	if err != nil {
		return err
	}
	if count >= t.e.dailyLimit {
		slog.Info("Engine ritual refused: daily limit reached", "userID", t.userID, "command", cmd, "count", count)
		t.say(i18n.KeyLimitReached, nil)
		return nil
	}

	switch cmd {
	case models.CommandPretrade:
		t.start(models.FlowTypePretrade, models.StateAwaitingPlan)
		t.say(i18n.KeyPretradeQPlan, i18n.Params{"fear": profile.Fear})
	case models.CommandPostrade:
		t.start(models.FlowTypePostrade, models.StateAwaitingTradeDetails)
		t.say(i18n.KeyPostradeQDetails, nil)
	case models.CommandEOD:
		plan, err := t.e.store.GetDailyPlan(t.ctx, t.userID, t.today().Format(models.PlanDateLayout))
		if err != nil {
			return err
		}
		t.start(models.FlowTypeEOD, models.StateAwaitingReflection)
		params := i18n.Params{"goal": profile.Goal, "fear": profile.Fear}
		if plan != nil {
			t.session.PlanText = plan.Text
			t.e.sessions.Save(t.session)
			params["plan"] = plan.Text
			t.say(i18n.KeyEODQPlan, params)
		} else {
			t.say(i18n.KeyEODQGeneric, params)
		}
	case models.CommandSleep:
		t.start(models.FlowTypeSleep, models.StateAwaitingNightThought)
		t.say(i18n.KeyDormirQ, nil)
	default:
		return fmt.Errorf("unsupported ritual command %q", cmd)
	}
	return nil
}

// generate runs the feedback generator with the user's persona and profile context.
func (t *turn) generate(mode feedback.Mode, scenario, answer, todaysPlan string, bundle *feedback.TradeBundle) (string, error) {
	profile, err := t.e.store.GetProfile(t.ctx, t.userID)
	if err != nil {
		return "", err
	}
	persona := models.PersonaMale
	if profile != nil && profile.Persona.IsValid() {
		persona = profile.Persona
	}
	out := t.e.feedback.Generate(t.ctx, feedback.Request{
		Locale:   t.locale,
		Persona:  persona,
		Mode:     mode,
		Scenario: scenario,
		Answer:   answer,
		Bundle:   bundle,
		Profile:  profileContext(profile, todaysPlan),
	})
	return out, nil
}

func (t *turn) logInteraction(command, input, response string) error {
	return t.e.store.AppendInteractionLog(t.ctx, models.Interaction{
		UserID:    t.userID,
		Command:   command,
		Input:     input,
		Response:  response,
		CreatedAt: t.e.now(),
	})
}

func handlePlan(t *turn, text string) error {
	if answerTooShort(text) {
		t.say(i18n.KeyElaborationNeeded, nil)
		return nil
	}
	if err := t.e.store.UpsertDailyPlan(t.ctx, t.userID, t.today().Format(models.PlanDateLayout), text); err != nil {
		return err
	}
	t.say(i18n.KeyPretradeAnalyzing, nil)
	diagnosis, err := t.generate(feedback.ModeDiagnose, i18n.KeyScenarioPretrade, text, "", nil)
	if err != nil {
		return err
	}
	t.send(models.Text(diagnosis))
	if err := t.logInteraction(logPretradeDiagnosis, text, diagnosis); err != nil {
		return err
	}
	t.session.PlanText = text
	t.session.Diagnosis = diagnosis
	t.advance(models.StateAwaitingDiagnosisConfirmation, i18n.KeyPretradeConfirmDiagnosis, nil)
	return nil
}

func handleDiagnosisConfirmation(t *turn, text string) error {
	if !i18n.IsAffirmative(text, t.locale) {
		t.finish()
		t.sayWithNextStep(t.text(i18n.KeyPretradeDeclined, nil))
		return nil
	}
	points := ExtractDiagnosisPoints(t.session.Diagnosis)
	if len(points) == 0 {
		t.finish()
		t.sayWithNextStep(t.text(i18n.KeyPretradeNoPoints, nil))
		return nil
	}
	t.session.Points = points
	t.advance(models.StateAwaitingFocusChoice, i18n.KeyPretradeChooseFocus, i18n.Params{"points": strings.Join(points, "\n")})
	return nil
}

func handleFocusChoice(t *turn, text string) error {
	n, err := ParseFocusChoice(text, len(t.session.Points))
	switch {
	case errors.Is(err, ErrChoiceOutOfRange):
		t.say(i18n.KeyPretradeInvalidNumber, i18n.Params{"number": strconv.Itoa(n)})
		return nil
	case err != nil:
		t.say(i18n.KeyPretradeInvalidChoice, nil)
		return nil
	}

	point := t.session.Points[n-1]
	t.say(i18n.KeyPretradeActionPlanPending, nil)
	plan, err := t.generate(feedback.ModeImprove, i18n.KeyScenarioFocus, point, t.session.PlanText, nil)
	if err != nil {
		return err
	}
	t.send(models.Text(plan))
	if err := t.logInteraction(logPretradeActionPlan, point, plan); err != nil {
		return err
	}
	t.finish()
	t.say(i18n.KeyPretradeEODInstruction, nil)
	return nil
}

func handleTradeDetails(t *turn, text string) error {
	if answerTooShort(text) {
		t.say(i18n.KeyElaborationNeeded, nil)
		return nil
	}
	t.session.SetAnswer(models.DataKeyTradeDescription, text)
	t.advance(models.StateAwaitingTradeEmotion, i18n.KeyPostradeQEmotion, nil)
	return nil
}

func handleTradeEmotion(t *turn, text string) error {
	t.session.SetAnswer(models.DataKeyTradeEmotion, text)
	t.advance(models.StateAwaitingTradeActions, i18n.KeyPostradeQActions, nil)
	return nil
}

// handleTradeActions analyses the complete trade review and appends it to the trade log.
func handleTradeActions(t *turn, text string) error {
	t.session.SetAnswer(models.DataKeyTradeActions, text)
	description, _ := t.session.Answer(models.DataKeyTradeDescription)
	emotion, _ := t.session.Answer(models.DataKeyTradeEmotion)
	bundle := &feedback.TradeBundle{Description: description, Emotion: emotion, Actions: text}

	t.say(i18n.KeyPostradeAnalyzing, nil)
	analysis, err := t.generate(feedback.ModeDiagnose, i18n.KeyScenarioPostrade, "", "", bundle)
	if err != nil {
		return err
	}
	t.sayWithNextStep(analysis)
	if err := t.e.store.AppendTradeRecord(t.ctx, models.TradeRecord{
		UserID:           t.userID,
		Description:      description,
		Emotion:          emotion,
		UnplannedActions: text,
		Analysis:         analysis,
		CreatedAt:        t.e.now(),
	}); err != nil {
		return err
	}
	if err := t.logInteraction(logPostrade, formatBundle(bundle), analysis); err != nil {
		return err
	}
	t.finish()
	return nil
}

func formatBundle(b *feedback.TradeBundle) string {
	return fmt.Sprintf("description: %s\nemotion: %s\nactions: %s", b.Description, b.Emotion, b.Actions)
}

func handleReflection(t *turn, text string) error {
	if answerTooShort(text) {
		t.say(i18n.KeyElaborationNeeded, nil)
		return nil
	}
	t.say(i18n.KeyEODAnalyzing, nil)
	analysis, err := t.generate(feedback.ModeDiagnose, i18n.KeyScenarioEOD, text, t.session.PlanText, nil)
	if err != nil {
		return err
	}
	t.sayWithNextStep(analysis)
	if err := t.logInteraction(logEOD, text, analysis); err != nil {
		return err
	}
	t.finish()
	return nil
}

func handleNightThought(t *turn, text string) error {
	t.say(i18n.KeyDormirProcessing, nil)
	affirmation, err := t.generate(feedback.ModeAffirmation, i18n.KeyScenarioDormir, text, "", nil)
	if err != nil {
		return err
	}
	t.sayWithNextStep(affirmation)
	if err := t.logInteraction(logDormir, text, affirmation); err != nil {
		return err
	}
	t.finish()
	return nil
}
