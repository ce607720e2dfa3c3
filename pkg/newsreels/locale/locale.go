// Package locale holds the user-facing strings of the reels screens.
package locale

import (
	"embed"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Message IDs.
const (
	FooterOpen  = "FooterOpen"
	FooterSkip  = "FooterSkip"
	FooterBack  = "FooterBack"
	EmptyDeck   = "EmptyDeck"
	ReadingTime = "ReadingTime"
)

//go:embed messages/*.toml
var messageFS embed.FS

// Supported lists the languages with bundled translations, default first.
var Supported = []language.Tag{language.English, language.Turkish}

// Localizer resolves message IDs for one language.
type Localizer struct {
	tag       language.Tag
	localizer *i18n.Localizer
}

// NewBundle loads the embedded translations.
func NewBundle() (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, file := range []string{"messages/active.en.toml", "messages/active.tr.toml"} {
		if _, err := bundle.LoadMessageFileFS(messageFS, file); err != nil {
			return nil, fmt.Errorf("load %s: %w", file, err)
		}
	}
	return bundle, nil
}

// New returns a Localizer for the best match of the requested languages.
// Unknown languages fall back to English.
func New(langs ...string) (*Localizer, error) {
	bundle, err := NewBundle()
	if err != nil {
		return nil, err
	}

	matcher := language.NewMatcher(Supported)
	tag, _ := language.MatchStrings(matcher, langs...)
	base, _ := tag.Base()

	return &Localizer{
		tag:       language.Make(base.String()),
		localizer: i18n.NewLocalizer(bundle, base.String()),
	}, nil
}

// Tag returns the matched language.
func (l *Localizer) Tag() language.Tag {
	if l == nil {
		return language.English
	}
	return l.tag
}

// T returns the translation of id, or id itself when it is unknown. A nil
// Localizer returns every id unchanged.
func (l *Localizer) T(id string) string {
	if l == nil {
		return id
	}
	s, err := l.localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil {
		return id
	}
	return s
}

// Plural returns the translation of id for count.
func (l *Localizer) Plural(id string, count int) string {
	if l == nil {
		return id
	}
	s, err := l.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		PluralCount:  count,
		TemplateData: map[string]any{"Count": count},
	})
	if err != nil {
		return id
	}
	return s
}
