package normalize

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// The source convention writes members as "SURNAME GivenName" in a single
// cell, where the surname may span several tokens (DE SANTIS, DALLA COSTA).
// The last token is the given name; everything before it is the surname.

// SplitName splits a combined name cell into (surname, givenName).
// A single token is treated entirely as surname; empty input yields two
// empty strings.
func SplitName(raw string) (surname, givenName string) {
	parts := strings.Fields(raw)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	default:
		return strings.Join(parts[:len(parts)-1], " "), parts[len(parts)-1]
	}
}

// Surname particles stay lowercase ("de Santis", "d'Angelo"). The two
// apostrophe forms attach to the following word, so they match as prefixes;
// the rest are whole tokens. Kept as a table so the convention stays
// swappable and testable on its own.
var (
	particleTokens   = []string{"de", "di", "da", "del", "della"}
	particlePrefixes = []string{"dell'", "d'"}
)

// NormalizeName canonicalizes the capitalization of a name field.
// Per whitespace token: hyphen-joined sub-tokens are capitalized
// independently (MARIA-ROSA -> Maria-Rosa), particle tokens are forced
// lowercase, everything else gets first-letter-upper, rest-lower.
// Word order and single spacing are preserved. Idempotent.
func NormalizeName(name string) string {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return name
	}
	for i, part := range parts {
		parts[i] = normalizeToken(part)
	}
	return strings.Join(parts, " ")
}

func normalizeToken(tok string) string {
	if strings.Contains(tok, "-") {
		sub := strings.Split(tok, "-")
		for i, s := range sub {
			sub[i] = capitalize(s)
		}
		return strings.Join(sub, "-")
	}
	lower := strings.ToLower(tok)
	for _, p := range particleTokens {
		if lower == p {
			return lower
		}
	}
	for _, p := range particlePrefixes {
		if strings.HasPrefix(lower, p) {
			return lower
		}
	}
	return capitalize(tok)
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
