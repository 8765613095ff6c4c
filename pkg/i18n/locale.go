package i18n

import (
	"fmt"
	"sync"

	"golang.org/x/text/language"
)

// Locale holds the currently selected UI language. It is safe for
// concurrent use; the API client reads it through Language on every
// request.
type Locale struct {
	mu        sync.RWMutex
	current   string
	supported []language.Tag
	matcher   language.Matcher
}

// NewLocale creates a Locale over the supported language codes, selecting
// fallback as the initial language. Codes that do not parse as BCP 47 tags
// are skipped; when none parse, only the fallback is supported.
func NewLocale(supported []string, fallback string) *Locale {
	if fallback == "" {
		fallback = DefaultLanguage
	}

	tags := make([]language.Tag, 0, len(supported)+1)
	if tag, err := language.Parse(fallback); err == nil {
		tags = append(tags, tag)
	} else {
		tags = append(tags, language.English)
	}
	for _, code := range supported {
		if code == fallback {
			continue
		}
		if tag, err := language.Parse(code); err == nil {
			tags = append(tags, tag)
		}
	}

	return &Locale{
		current:   fallback,
		supported: tags,
		matcher:   language.NewMatcher(tags),
	}
}

// Language returns the active language code.
func (l *Locale) Language() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.current
}

// SetLanguage switches the active language. The code is normalized and
// matched against the supported set, so "EN-us" selects "en". A language
// with no translations is rejected with ErrUnsupportedLanguage.
func (l *Locale) SetLanguage(code string) error {
	tag, err := language.Parse(code)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrUnsupportedLanguage, code)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	_, idx, conf := l.matcher.Match(tag)
	if conf == language.No {
		return fmt.Errorf("%w: %q", ErrUnsupportedLanguage, code)
	}

	base, _ := l.supported[idx].Base()
	l.current = base.String()
	return nil
}

// Supported returns the supported language codes in registration order.
func (l *Locale) Supported() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	codes := make([]string, len(l.supported))
	for i, tag := range l.supported {
		base, _ := tag.Base()
		codes[i] = base.String()
	}
	return codes
}
