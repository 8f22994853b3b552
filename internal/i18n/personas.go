package i18n

import (
	"strconv"
	"strings"

	"github.com/BTreeMap/TradeMentor/internal/models"
)

// fallbackMentorName is used when a locale or persona has no configured mentor.
const fallbackMentorName = "Mentor"

var mentorNames = map[models.Locale]map[models.Persona]string{
	models.LocalePortuguese: {models.PersonaMale: "Dr. Fernando Macedo", models.PersonaFemale: "Dra. Angelica Oliveira"},
	models.LocaleEnglish:    {models.PersonaMale: "Dr. Devon Taylor", models.PersonaFemale: "Dr. Jenny Williams"},
	models.LocaleSpanish:    {models.PersonaMale: "Dr. Alejandro Pérez", models.PersonaFemale: "Dra. Emma Jiménez"},
}

// languageOptions are the labels offered on the language keyboard, in SupportedLocales order.
var languageOptions = []string{"Português 🇧🇷", "English 🇺🇸", "Español 🇪🇸"}

// MentorName returns the display name of the mentor voice for a locale.
func MentorName(locale models.Locale, persona models.Persona) string {
	if name, ok := mentorNames[locale][persona]; ok {
		return name
	}
	return fallbackMentorName
}

// PersonaOptions returns the persona keyboard labels for a locale, male first.
func PersonaOptions(locale models.Locale) []string {
	if !locale.IsValid() {
		locale = models.DefaultLocale
	}
	return []string{MentorName(locale, models.PersonaMale), MentorName(locale, models.PersonaFemale)}
}

// LanguageOptions returns the language keyboard labels.
func LanguageOptions() []string {
	out := make([]string, len(languageOptions))
	copy(out, languageOptions)
	return out
}

// ParseLanguageChoice maps a language keyboard answer to a locale.
// Anything that is not recognizably English or Spanish selects the default locale.
func ParseLanguageChoice(text string) models.Locale {
	text = strings.TrimSpace(text)
	switch {
	case strings.Contains(text, "English"):
		return models.LocaleEnglish
	case strings.Contains(text, "Español"):
		return models.LocaleSpanish
	}
	if n, err := strconv.Atoi(text); err == nil && n >= 1 && n <= len(models.SupportedLocales) {
		return models.SupportedLocales[n-1]
	}
	return models.DefaultLocale
}

// ParsePersonaChoice maps a persona keyboard answer to a persona. Only the exact female mentor name
// (case-insensitive) or option "2" selects the female voice.
func ParsePersonaChoice(text string, locale models.Locale) models.Persona {
	text = strings.TrimSpace(text)
	if text == "2" || strings.EqualFold(text, MentorName(locale, models.PersonaFemale)) {
		return models.PersonaFemale
	}
	return models.PersonaMale
}
