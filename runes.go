// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package m2parse

import (
	"unicode"
)

const (
	// CR and LF are control characters, coded 0x0D and 0x0A respectively.
	// Windows uses CR+LF, Unix/Mac uses LF. A stray CR is treated as a
	// space-like rune.

	CR  rune = rune(13)
	LF  rune = rune(10)
	EOF rune = rune(-1)
)

// isIdentStart reports whether ch can begin an identifier: a letter or
// underscore.
func isIdentStart(ch rune) bool {
	return unicode.IsLetter(ch) || ch == '_'
}

// isIdentContinue reports whether ch can continue an identifier:
// a letter, digit, or underscore.
func isIdentContinue(ch rune) bool {
	return unicode.IsLetter(ch) || unicode.IsDigit(ch) || ch == '_'
}

// isDigit reports whether ch is a decimal digit.
func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

// isHexDigit reports whether ch is a hexadecimal digit.
func isHexDigit(ch rune) bool {
	return isDigit(ch) || (ch >= 'A' && ch <= 'F') || (ch >= 'a' && ch <= 'f')
}

// isspace reports whether ch is whitespace other than a line terminator.
func isspace(ch rune) bool {
	return ch != LF && unicode.IsSpace(ch)
}
