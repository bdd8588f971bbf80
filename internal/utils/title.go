package utils

import (
	"path"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleAcronyms = map[string]string{
	"api":  "API",
	"id":   "ID",
	"ocr":  "OCR",
	"pdf":  "PDF",
	"sql":  "SQL",
	"url":  "URL",
	"uuid": "UUID",
	"vat":  "VAT",
}

var titleSmallWords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "as": {}, "at": {}, "but": {}, "by": {}, "for": {},
	"from": {}, "in": {}, "nor": {}, "of": {}, "on": {}, "or": {}, "the": {}, "to": {}, "with": {},
}

// FilenameStem returns the base name of a file path without its final extension.
// Dotfiles keep their full name.
func FilenameStem(filename string) string {
	if filename == "" {
		return ""
	}
	base := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	if base == "." || base == "/" {
		return ""
	}
	ext := path.Ext(base)
	if ext == base {
		return base
	}
	return strings.TrimSuffix(base, ext)
}

// FormatTitle turns identifiers like "my_scanned-invoiceCopy" into "My Scanned Invoice Copy".
func FormatTitle(s string) string {
	words := splitTitleWords(s)
	caser := cases.Title(language.English)
	for i, w := range words {
		lower := strings.ToLower(w)
		if acronym, ok := titleAcronyms[lower]; ok {
			words[i] = acronym
			continue
		}
		if _, ok := titleSmallWords[lower]; ok && i > 0 && i < len(words)-1 {
			words[i] = lower
			continue
		}
		words[i] = caser.String(w)
	}
	return strings.Join(words, " ")
}

func splitTitleWords(s string) []string {
	var (
		words   []string
		current []rune
		prev    rune
	)
	flush := func() {
		if len(current) > 0 {
			words = append(words, string(current))
			current = current[:0]
		}
	}
	for _, r := range s {
		switch {
		case unicode.IsSpace(r) || r == '_' || r == '-' || r == '.':
			flush()
		case unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)):
			flush()
			current = append(current, r)
		default:
			current = append(current, r)
		}
		prev = r
	}
	flush()
	return words
}
