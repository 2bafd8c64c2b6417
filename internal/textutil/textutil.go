// Package textutil provides word-boundary helpers for the parser's
// alphanumeric class (Latin, digits, Mongolian Cyrillic).
//
// Go's regexp \b only understands ASCII word characters and RE2 has no
// lookarounds, so every pattern that needs Cyrillic-aware boundaries is
// matched unanchored and validated here against the surrounding runes.
package textutil

import (
	"regexp"
	"unicode/utf8"
)

// IsAlnum reports whether r belongs to the parser's alphanumeric class.
func IsAlnum(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= 'А' && r <= 'Я':
		return true
	case r == 'Ё' || r == 'Ө' || r == 'Ү':
		return true
	}
	return false
}

// BoundedLeft reports whether position start is preceded by a
// non-alphanumeric rune or the start of s.
func BoundedLeft(s string, start int) bool {
	if start == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:start])
	return !IsAlnum(r)
}

// BoundedRight reports whether position end is followed by a
// non-alphanumeric rune or the end of s.
func BoundedRight(s string, end int) bool {
	if end == len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[end:])
	return !IsAlnum(r)
}

// FindBounded returns the submatch index slice of the first match of re in s
// whose full match satisfies the requested boundaries, scanning left to
// right. Returns nil when no match qualifies.
func FindBounded(s string, re *regexp.Regexp, left, right bool) []int {
	for _, m := range re.FindAllStringSubmatchIndex(s, -1) {
		if left && !BoundedLeft(s, m[0]) {
			continue
		}
		if right && !BoundedRight(s, m[1]) {
			continue
		}
		return m
	}
	return nil
}

// FindAllBounded returns every match of re in s that sits on word boundaries
// on both sides.
func FindAllBounded(s string, re *regexp.Regexp) [][]int {
	var out [][]int
	for _, m := range re.FindAllStringSubmatchIndex(s, -1) {
		if BoundedLeft(s, m[0]) && BoundedRight(s, m[1]) {
			out = append(out, m)
		}
	}
	return out
}

// EraseMatches replaces every word-bounded match of re that accept approves
// with repl. A nil accept approves everything.
func EraseMatches(s string, re *regexp.Regexp, repl string, accept func(src string, m []int) bool) string {
	ms := FindAllBounded(s, re)
	if len(ms) == 0 {
		return s
	}
	var b []byte
	prev := 0
	for _, m := range ms {
		if accept != nil && !accept(s, m) {
			continue
		}
		b = append(b, s[prev:m[0]]...)
		b = append(b, repl...)
		prev = m[1]
	}
	b = append(b, s[prev:]...)
	return string(b)
}
