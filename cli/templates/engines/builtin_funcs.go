package engines

import (
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"
)

// isNameSeparator reports whether r separates words of a project name.
func isNameSeparator(r rune) bool {
	return r == '-' || r == '_' || unicode.IsSpace(r)
}

// Title capitalizes every word of name and joins words with spaces:
// weather-api becomes Weather Api.
func Title(name string) string {
	words := strings.FieldsFunc(name, isNameSeparator)
	for i, word := range words {
		r, size := utf8.DecodeRuneInString(word)
		words[i] = string(unicode.ToUpper(r)) + word[size:]
	}
	return strings.Join(words, " ")
}

// Slug lower-cases s and replaces spaces with hyphens.
func Slug(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "-")
}

var builtinFuncs = template.FuncMap{
	"title": Title,
	"lower": strings.ToLower,
	"upper": strings.ToUpper,
	"slug":  Slug,
}
