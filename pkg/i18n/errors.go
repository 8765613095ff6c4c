package i18n

import "errors"

var (
	// ErrNilAdapter is returned by NewTranslator when no adapter is given.
	ErrNilAdapter = errors.New("i18n: nil translation adapter")

	// ErrNoTranslations is returned when an adapter yields no languages.
	ErrNoTranslations = errors.New("i18n: no translations loaded")

	// ErrParseFailed wraps parser failures for a translation source.
	ErrParseFailed = errors.New("i18n: failed to parse translations")

	// ErrReadFailed wraps filesystem failures while loading translations.
	ErrReadFailed = errors.New("i18n: failed to read translation source")

	// ErrUnsupportedLanguage is returned by Locale.SetLanguage for a
	// language that has no loaded translations.
	ErrUnsupportedLanguage = errors.New("i18n: unsupported language")
)
