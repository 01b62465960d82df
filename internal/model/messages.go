package model

import (
	"fmt"

	"golang.org/x/text/language"
)

// Messages holds the user-facing feedback strings for one locale.
type Messages struct {
	Tag     language.Tag
	HitFmt  string // formatted with the shape label
	MissMsg string
	Labels  map[ShapeKind]string
}

var (
	englishMessages = Messages{
		Tag:     language.English,
		HitFmt:  "You hit the %s",
		MissMsg: "Missed!",
		Labels: map[ShapeKind]string{
			Square:   "square",
			Pentagon: "pentagon",
			Hexagon:  "hexagon",
			Octagon:  "octagon",
		},
	}
	russianMessages = Messages{
		Tag:     language.Russian,
		HitFmt:  "Ты попал в %s",
		MissMsg: "Не попал!",
		Labels: map[ShapeKind]string{
			Square:   "квадрат",
			Pentagon: "пятиугольник",
			Hexagon:  "шестиугольник",
			Octagon:  "восьмиугольник",
		},
	}

	catalogs = []Messages{englishMessages, russianMessages}
	matcher  = language.NewMatcher([]language.Tag{language.English, language.Russian})
)

// MessagesFor returns the catalog best matching the given locale string
// (e.g. "ru", "ru-RU", "en-GB"). Unknown or empty locales fall back to English.
func MessagesFor(locale string) Messages {
	if locale == "" {
		return englishMessages
	}
	_, idx := language.MatchStrings(matcher, locale)
	if idx < 0 || idx >= len(catalogs) {
		return englishMessages
	}
	return catalogs[idx]
}

// Label returns the localized name for kind.
func (m Messages) Label(kind ShapeKind) string {
	if l, ok := m.Labels[kind]; ok {
		return l
	}
	return kind.String()
}

// Hit returns the message shown when a press lands on a shape of kind.
func (m Messages) Hit(kind ShapeKind) string {
	return fmt.Sprintf(m.HitFmt, m.Label(kind))
}

// Miss returns the message shown when a press lands on no shape.
func (m Messages) Miss() string {
	return m.MissMsg
}
