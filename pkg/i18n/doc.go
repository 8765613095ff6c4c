// Package i18n localizes user-facing strings and tracks the active UI
// language.
//
// Translations are nested maps loaded through a TranslationAdapter (an
// in-memory map, or files from any fs.FS including embed.FS) and parsed by
// format (JSON or YAML). Keys use dot notation ("validation.required") and
// templates substitute named parameters in the form %{name}.
//
// Locale holds the currently selected language. It normalizes inputs with
// golang.org/x/text language parsing ("EN-us" becomes "en-US", then matches
// the supported base language "en") and rejects languages with no loaded
// translations. The active language is what the API client sends as the
// Accept-Language header on every request.
//
// # Usage
//
//	translator, err := i18n.NewTranslator(ctx,
//		i18n.NewFSAdapter(i18n.NewJSONParser(), translationsFS, "translations"))
//	if err != nil { ... }
//
//	locale := i18n.NewLocale(translator.SupportedLanguages(), "en")
//	_ = locale.SetLanguage("tr")
//
//	msg := translator.T(locale.Language(), "signUp")
package i18n
