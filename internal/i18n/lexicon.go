package i18n

import (
	"strings"

	"github.com/BTreeMap/TradeMentor/internal/models"
)

// ---- Token sets ----

// dissatisfiedTokens are words meaning "no" or "could do more", per locale.
var dissatisfiedTokens = map[models.Locale][]string{
	models.LocalePortuguese: {"não", "poderia", "além"},
	models.LocaleEnglish:    {"not", "no", "could"},
	models.LocaleSpanish:    {"no", "podría"},
}

// affirmativeTokens are the confirmation words each locale's prompts ask for.
var affirmativeTokens = map[models.Locale][]string{
	models.LocalePortuguese: {"sim"},
	models.LocaleEnglish:    {"yes"},
	models.LocaleSpanish:    {"sí"},
}

// universalAffirmative is accepted in every locale.
const universalAffirmative = "yes"

// ---- Matching ----

// DissatisfiedTokens returns the union of all locales' dissatisfaction tokens, deduplicated.
func DissatisfiedTokens() []string {
	seen := make(map[string]bool)
	var out []string
	for _, locale := range models.SupportedLocales {
		for _, tok := range dissatisfiedTokens[locale] {
			if !seen[tok] {
				seen[tok] = true
				out = append(out, tok)
			}
		}
	}
	return out
}

// IsDissatisfied reports whether a satisfaction answer contains any dissatisfaction token of any locale.
// Matching is a case-insensitive substring test, independent of the user's locale.
func IsDissatisfied(answer string) bool {
	return containsAny(strings.ToLower(answer), DissatisfiedTokens())
}

// AffirmativeTokens returns the tokens accepted as "yes" for a locale.
func AffirmativeTokens(locale models.Locale) []string {
	if !locale.IsValid() {
		locale = models.DefaultLocale
	}
	toks := append([]string{}, affirmativeTokens[locale]...)
	for _, t := range toks {
		if t == universalAffirmative {
			return toks
		}
	}
	return append(toks, universalAffirmative)
}

// IsAffirmative reports whether an answer confirms, using case-insensitive substring matching.
func IsAffirmative(answer string, locale models.Locale) bool {
	return containsAny(strings.ToLower(answer), AffirmativeTokens(locale))
}

func containsAny(text string, tokens []string) bool {
	for _, tok := range tokens {
		if strings.Contains(text, tok) {
			return true
		}
	}
	return false
}
