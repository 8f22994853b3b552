// Package i18n provides the localized text catalog, mentor personas and the answer lexicons
// used by the dialog engine.
package i18n

import (
	"sort"
	"strings"

	"github.com/BTreeMap/TradeMentor/internal/models"
)

// Params holds named template parameters, e.g. {"name": "Ana"} for "{name}".
type Params map[string]string

// Catalog resolves a message key for a locale.
type Catalog interface {
	Resolve(key string, locale models.Locale, params Params) string
}

// Table is a static catalog backed by in-process message maps.
type Table struct {
	messages map[models.Locale]map[string]string
	fallback models.Locale
}

// NewTable builds a catalog from per-locale message maps. Unknown locales resolve against fallback.
func NewTable(messages map[models.Locale]map[string]string, fallback models.Locale) *Table {
	return &Table{messages: messages, fallback: fallback}
}

var defaultTable = NewTable(map[models.Locale]map[string]string{
	models.LocalePortuguese: messagesPT,
	models.LocaleEnglish:    messagesEN,
	models.LocaleSpanish:    messagesES,
}, models.DefaultLocale)

// Default returns the built-in pt/en/es catalog.
func Default() *Table {
	return defaultTable
}

// Resolve looks up key in the default catalog.
func Resolve(key string, locale models.Locale, params Params) string {
	return defaultTable.Resolve(key, locale, params)
}

// Resolve returns the template for key in locale with params substituted.
// An unknown locale falls back to the table's fallback locale and an unknown key resolves to the key itself.
// Placeholders without a matching parameter are left untouched.
func (t *Table) Resolve(key string, locale models.Locale, params Params) string {
	msgs, ok := t.messages[locale]
	if !ok {
		msgs = t.messages[t.fallback]
	}
	tmpl, ok := msgs[key]
	if !ok {
		return key
	}
	return render(tmpl, params)
}

// Keys returns the sorted keys defined for a locale.
func (t *Table) Keys(locale models.Locale) []string {
	keys := make([]string, 0, len(t.messages[locale]))
	for k := range t.messages[locale] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func render(tmpl string, params Params) string {
	if len(params) == 0 {
		return tmpl
	}
	pairs := make([]string, 0, len(params)*2)
	for k, v := range params {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}
