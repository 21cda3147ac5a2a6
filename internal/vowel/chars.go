package vowel

import "unicode"

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// isAlpha reports whether r can start an identifier. '_' is a token on its
// own, so only letters qualify.
func isAlpha(r rune) bool {
	return unicode.IsLetter(r)
}

func isAlphanumeric(r rune) bool {
	return isAlpha(r) || isDigit(r)
}
