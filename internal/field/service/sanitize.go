package service

import (
	"strings"
	"unicode"
)

// Digits strips every character that is not a decimal digit, preserving order.
func Digits(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, c := range text {
		if isDigit(c) {
			b.WriteRune(c)
		}
	}
	return b.String()
}

// Alphanumeric strips every character that is not an ASCII letter or digit and
// upper-cases letters.
func Alphanumeric(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, c := range text {
		switch {
		case isDigit(c):
			b.WriteRune(c)
		case isLetter(c):
			b.WriteRune(unicode.ToUpper(c))
		}
	}
	return b.String()
}

// StripSeparators removes the formatting characters a user or formatter may have
// inserted (whitespace, dashes, slashes, dots, parentheses) and keeps everything else.
func StripSeparators(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, c := range text {
		if !isSeparator(c) {
			b.WriteRune(c)
		}
	}
	return b.String()
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c rune) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isSeparator(c rune) bool {
	switch c {
	case '-', '/', '.', '(', ')':
		return true
	}
	return unicode.IsSpace(c)
}

// IsDigits reports whether s consists of decimal digits only. The empty string does.
func IsDigits(s string) bool {
	for _, c := range s {
		if !isDigit(c) {
			return false
		}
	}
	return true
}

// onlyRunes reports whether every character of s satisfies allowed.
func onlyRunes(s string, allowed func(rune) bool) bool {
	for _, c := range s {
		if !allowed(c) {
			return false
		}
	}
	return true
}
