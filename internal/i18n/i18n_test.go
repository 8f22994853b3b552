package i18n

import (
	"strings"
	"testing"

	"github.com/BTreeMap/TradeMentor/internal/models"
)

func TestResolveSubstitutesParams(t *testing.T) {
	got := Resolve(KeyProfileQAge, models.LocaleEnglish, Params{"name": "Ana"})
	if got != "Nice to meet you, Ana. How old are you?" {
		t.Errorf("unexpected text: %q", got)
	}
}

func TestResolveUnknownLocaleFallsBackToPortuguese(t *testing.T) {
	got := Resolve(KeyPretradeAnalyzing, models.Locale("fr"), nil)
	if got != "Analisando seu plano..." {
		t.Errorf("expected portuguese fallback, got %q", got)
	}
}

func TestResolveUnknownKeyReturnsKey(t *testing.T) {
	if got := Resolve("no_such_key", models.LocaleSpanish, nil); got != "no_such_key" {
		t.Errorf("expected raw key, got %q", got)
	}
}

func TestResolveLeavesMissingPlaceholders(t *testing.T) {
	got := Resolve(KeyPretradeInvalidNumber, models.LocaleEnglish, Params{"other": "x"})
	if !strings.Contains(got, "{number}") {
		t.Errorf("expected placeholder to remain, got %q", got)
	}
}

func TestLocaleTablesHaveSameKeys(t *testing.T) {
	table := Default()
	want := table.Keys(models.LocalePortuguese)
	for _, locale := range []models.Locale{models.LocaleEnglish, models.LocaleSpanish} {
		got := table.Keys(locale)
		if strings.Join(got, ",") != strings.Join(want, ",") {
			t.Errorf("locale %s keys differ from pt", locale)
		}
	}
}

func TestEngineKeysExist(t *testing.T) {
	keys := []string{
		KeyChooseLanguage, KeyWelcomeBack, KeyProfileNeeded, KeyRedefineConfirm, KeyRedefineSuccess,
		KeyRedefineCancel, KeyLimitReached, KeyCancelConversation, KeyUnknownCommand, KeyNextStepPrompt,
		KeyElaborationNeeded, KeyGenericError, KeyFeedbackFailed, KeyChooseOptionHint, KeyProfileQPersona,
		KeyProfileQName, KeyProfileQAge, KeyProfileQExperience, KeyProfileQSatisfaction, KeyProfileQReason,
		KeyProfileQSource, KeyProfileQGoal, KeyProfileQFear, KeyProfileComplete, KeyPretradeQPlan,
		KeyPretradeAnalyzing, KeyPretradeConfirmDiagnosis, KeyPretradeDeclined, KeyPretradeNoPoints,
		KeyPretradeChooseFocus, KeyPretradeInvalidChoice, KeyPretradeInvalidNumber, KeyPretradeActionPlanPending,
		KeyPretradeEODInstruction, KeyPostradeQDetails, KeyPostradeQEmotion, KeyPostradeQActions,
		KeyPostradeAnalyzing, KeyEODQGeneric, KeyEODQPlan, KeyEODAnalyzing, KeyDormirQ, KeyDormirProcessing,
		KeyAISystemPromptMale, KeyAISystemPromptFemale, KeyAITaskDiagnose, KeyAITaskImprove,
		KeyAITaskAffirmation, KeyAITaskRootBelief, KeyAITaskAdherence, KeyAIDataHeader, KeyAIProfileContext,
		KeyAIProfileReason, KeyAIScenario, KeyAIAnswer, KeyAITodaysPlan, KeyAITradeDescription,
		KeyAITradeEmotion, KeyAITradeActions, KeyScenarioPretrade, KeyScenarioFocus, KeyScenarioPostrade,
		KeyScenarioEOD, KeyScenarioDormir,
	}
	for _, locale := range models.SupportedLocales {
		for _, key := range keys {
			if got := Resolve(key, locale, nil); got == key {
				t.Errorf("key %q missing for locale %s", key, locale)
			}
		}
	}
}

func TestMentorName(t *testing.T) {
	if got := MentorName(models.LocaleSpanish, models.PersonaFemale); got != "Dra. Emma Jiménez" {
		t.Errorf("unexpected mentor %q", got)
	}
	if got := MentorName(models.Locale("fr"), models.PersonaMale); got != "Mentor" {
		t.Errorf("expected fallback mentor, got %q", got)
	}
}

func TestParseLanguageChoice(t *testing.T) {
	tests := []struct {
		in   string
		want models.Locale
	}{
		{"English 🇺🇸", models.LocaleEnglish},
		{"Español 🇪🇸", models.LocaleSpanish},
		{"Português 🇧🇷", models.LocalePortuguese},
		{"2", models.LocaleEnglish},
		{"3", models.LocaleSpanish},
		{"9", models.LocalePortuguese},
		{"klingon", models.LocalePortuguese},
	}
	for _, tt := range tests {
		if got := ParseLanguageChoice(tt.in); got != tt.want {
			t.Errorf("ParseLanguageChoice(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParsePersonaChoice(t *testing.T) {
	if got := ParsePersonaChoice("dr. jenny williams", models.LocaleEnglish); got != models.PersonaFemale {
		t.Errorf("expected female, got %q", got)
	}
	if got := ParsePersonaChoice("2", models.LocalePortuguese); got != models.PersonaFemale {
		t.Errorf("expected female for option 2, got %q", got)
	}
	if got := ParsePersonaChoice("Dr. Devon Taylor", models.LocaleEnglish); got != models.PersonaMale {
		t.Errorf("expected male, got %q", got)
	}
	if got := ParsePersonaChoice("Dra. Angelica Oliveira", models.LocaleEnglish); got != models.PersonaMale {
		t.Errorf("expected male for another locale's name, got %q", got)
	}
}

func TestIsDissatisfied(t *testing.T) {
	tests := []struct {
		answer string
		want   bool
	}{
		{"NÃO estou satisfeito", true},
		{"I could do much better", true},
		{"Sinto que poderia ir além", true},
		{"Not really", true},
		{"Sim, muito satisfeito", false},
		{"Yes, I am happy", false},
		{"Estoy satisfecho", false},
	}
	for _, tt := range tests {
		if got := IsDissatisfied(tt.answer); got != tt.want {
			t.Errorf("IsDissatisfied(%q) = %v, want %v", tt.answer, got, tt.want)
		}
	}
}

func TestIsAffirmative(t *testing.T) {
	tests := []struct {
		answer string
		locale models.Locale
		want   bool
	}{
		{"Sim!", models.LocalePortuguese, true},
		{"yes", models.LocalePortuguese, true},
		{"YES please", models.LocaleEnglish, true},
		{"Sí, claro", models.LocaleSpanish, true},
		{"sim", models.LocaleEnglish, false},
		{"nope", models.LocaleEnglish, false},
		{"talvez", models.LocalePortuguese, false},
	}
	for _, tt := range tests {
		if got := IsAffirmative(tt.answer, tt.locale); got != tt.want {
			t.Errorf("IsAffirmative(%q, %s) = %v, want %v", tt.answer, tt.locale, got, tt.want)
		}
	}
}

func TestDissatisfiedTokensDeduplicated(t *testing.T) {
	seen := map[string]bool{}
	for _, tok := range DissatisfiedTokens() {
		if seen[tok] {
			t.Errorf("duplicate token %q", tok)
		}
		seen[tok] = true
	}
	for _, tok := range []string{"não", "not", "no", "poderia", "could", "além"} {
		if !seen[tok] {
			t.Errorf("missing token %q", tok)
		}
	}
}
