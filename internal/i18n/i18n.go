// Package i18n holds the UI message catalog for the supported languages and
// negotiates the initial language of a session.
package i18n

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// ErrUnknownLanguage is returned by ParseCode for unsupported codes.
var ErrUnknownLanguage = errors.New("unknown language")

// Code identifies a UI language.
type Code string

const (
	EN Code = "EN"
	TR Code = "TR"
	JA Code = "JA"
	KO Code = "KO"
	ZH Code = "ZH"
)

// DefaultCode is used when nothing else is known about the user.
const DefaultCode = EN

var codes = []Code{EN, TR, JA, KO, ZH}

var displayNames = map[Code]string{
	EN: "English",
	TR: "Türkçe",
	JA: "日本語 (Japanese)",
	KO: "한국어 (Korean)",
	ZH: "中文 (Chinese)",
}

// Codes returns the supported languages in selector order.
func Codes() []Code {
	out := make([]Code, len(codes))
	copy(out, codes)
	return out
}

// DisplayName is the label shown in the language selector.
func (c Code) DisplayName() string { return displayNames[c] }

// ParseCode accepts a language code in any case.
func ParseCode(s string) (Code, error) {
	c := Code(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := displayNames[c]; ok {
		return c, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, s)
}

var (
	tags = []language.Tag{
		language.English, // first entry is the fallback
		language.Turkish,
		language.Japanese,
		language.Korean,
		language.Chinese,
	}
	matcher = language.NewMatcher(tags)
)

// Negotiate picks the best supported language for an Accept-Language header.
// It returns DefaultCode when nothing matches.
func Negotiate(acceptLanguage string) Code {
	if strings.TrimSpace(acceptLanguage) == "" {
		return DefaultCode
	}
	prefs, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(prefs) == 0 {
		return DefaultCode
	}
	_, idx, conf := matcher.Match(prefs...)
	if conf == language.No {
		return DefaultCode
	}
	return codes[idx]
}
