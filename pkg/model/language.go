package model

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// NormalizeLanguage canonicalise un identifiant de langue en son nom anglais,
// la forme attendue par UltraStar dans #LANGUAGE ("en" -> "English",
// "ja-JP" -> "Japanese"). Si la valeur ne se parse pas comme un code BCP 47
// (par exemple si l'utilisateur a déjà passé "English"), elle est retournée
// telle quelle.
func NormalizeLanguage(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	tag, err := language.Parse(trimmed)
	if err != nil {
		return trimmed
	}

	// On ne garde que la langue de base : "ja-JP" doit donner "Japanese",
	// pas "Japanese (Japan)".
	base, _ := tag.Base()
	name := display.English.Languages().Name(base)
	if name == "" {
		return trimmed
	}
	return name
}
