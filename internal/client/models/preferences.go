package models

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/dmitrijs2005/sitekeeper/internal/common"
)

type Theme string

const (
	ThemeLight Theme = "LIGHT"
	ThemeDark  Theme = "DARK"
)

func ParseTheme(s string) (Theme, error) {
	return parseEnum(s, []Theme{ThemeLight, ThemeDark}, "theme")
}

// Toggled returns the other theme.
func (t Theme) Toggled() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

type Language string

const (
	LanguageEN Language = "EN"
	LanguageHI Language = "HI"
)

// DefaultLanguage is used until the user picks one.
const DefaultLanguage = LanguageEN

var (
	supportedTags = []language.Tag{language.English, language.Hindi}
	tagLanguages  = []Language{LanguageEN, LanguageHI}
	matcher       = language.NewMatcher(supportedTags)
)

// ParseLanguage accepts a stored code ("EN", "HI") or any BCP 47 tag that
// matches a supported language, e.g. "hi-IN" or "en_GB".
func ParseLanguage(s string) (Language, error) {
	tag, err := language.Parse(strings.ReplaceAll(strings.TrimSpace(s), "_", "-"))
	if err != nil {
		return "", fmt.Errorf("language %q: %w", s, common.ErrInvalidValue)
	}

	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return "", fmt.Errorf("language %q is not supported: %w", s, common.ErrInvalidValue)
	}
	return tagLanguages[idx], nil
}

// Tag is the BCP 47 tag of l.
func (l Language) Tag() language.Tag {
	for i, known := range tagLanguages {
		if l == known {
			return supportedTags[i]
		}
	}
	return language.English
}

// Toggled returns the other language.
func (l Language) Toggled() Language {
	if l == LanguageHI {
		return LanguageEN
	}
	return LanguageHI
}
