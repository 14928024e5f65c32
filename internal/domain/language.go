package domain

import "strings"

// Language — язык интерфейса витрины.
type Language string

const (
	LanguageRu Language = "ru"
	LanguageUz Language = "uz"
)

// ParseLanguage возвращает fallback для пустого или неизвестного значения.
func ParseLanguage(s string, fallback Language) Language {
	switch Language(strings.ToLower(strings.TrimSpace(s))) {
	case LanguageRu:
		return LanguageRu
	case LanguageUz:
		return LanguageUz
	default:
		return fallback
	}
}

// localized выбирает узбекское название, если оно задано и язык uz.
func localized(lang Language, ru, uz string) string {
	if lang == LanguageUz && strings.TrimSpace(uz) != "" {
		return uz
	}

	return ru
}
