// Package textutil folds pt_BR labels into ASCII for matching and for
// SQL-safe identifiers.
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// StripAccents removes combining marks: "Logística" -> "Logistica".
func StripAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Fold normalizes a label for case- and accent-insensitive comparison.
func Fold(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(StripAccents(s)), " "))
}

// EqualFold reports whether a and b name the same label once folded.
func EqualFold(a, b string) bool {
	return Fold(a) == Fold(b)
}

// Slug turns a label into a lower snake_case identifier:
// "Valor (R$)" -> "valor_r", "Data Início" -> "data_inicio".
func Slug(s string) string {
	s = StripAccents(s)
	var b strings.Builder
	pendingSep := false
	for _, r := range s {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(unicode.ToLower(r))
		default:
			pendingSep = true
		}
	}
	out := b.String()
	if out != "" && out[0] >= '0' && out[0] <= '9' {
		out = "c_" + out
	}
	return out
}
