package fieldschema

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Turkish display labels for the built-in attribute names.
var fieldLabels = map[string]string{
	"weight":          "Ağırlık",
	"purchasePrice":   "Satın Alma Fiyatı",
	"purchaseKgPrice": "Satın Alma Kg Fiyatı",
	"diameter":        "Çap",
	"length":          "Uzunluk",
	"stock":           "Stok",
	"innerDiameter":   "İç Çap",
}

// TranslateLabel returns the display label for a field name. Names without
// a static translation are title-cased as a readable fallback: the first
// letter of each whitespace-separated token is capitalized, the rest
// lowercased.
func TranslateLabel(name string) string {
	if label, ok := fieldLabels[name]; ok {
		return label
	}
	tokens := strings.Fields(name)
	for i, tok := range tokens {
		tokens[i] = titleToken(tok)
	}
	return strings.Join(tokens, " ")
}

func titleToken(tok string) string {
	r, size := utf8.DecodeRuneInString(tok)
	if r == utf8.RuneError {
		return tok
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(tok[size:])
}
