package namecase

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Separator joins the words of a compound name, e.g. Салтыков-Щедрин.
const Separator = "-"

// Split splits a compound name into its words.
// Empty words are kept, so Join(Split(s)) == s for any s.
func Split(name string) []string {
	return strings.Split(name, Separator)
}

func Join(words []string) string {
	return strings.Join(words, Separator)
}

// Lower folds s with Russian case mapping.
// cases.Caser is stateful, so every call gets its own.
func Lower(s string) string {
	return cases.Lower(language.Russian).String(s)
}

func Upper(s string) string {
	return cases.Upper(language.Russian).String(s)
}

// IsUpper reports whether s has at least two letters and none of them is lower case.
// A single capital is the normal spelling of a name, not a shouting one.
func IsUpper(s string) bool {
	letters := 0
	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		if !unicode.IsUpper(r) {
			return false
		}
		letters++
	}
	return letters > 1
}

// Len returns the number of code points in s.
func Len(s string) int {
	return utf8.RuneCountInString(s)
}

// TrimRight drops the last n code points of s.
func TrimRight(s string, n int) string {
	if n <= 0 {
		return s
	}
	i := len(s)
	for ; n > 0 && i > 0; n-- {
		_, size := utf8.DecodeLastRuneInString(s[:i])
		i -= size
	}
	return s[:i]
}

// HasSuffix compares code point sequences, so a suffix never ends inside a multi-byte letter.
func HasSuffix(s string, suffix string) bool {
	rs, rsuffix := []rune(s), []rune(suffix)
	if len(rsuffix) > len(rs) {
		return false
	}
	offset := len(rs) - len(rsuffix)
	for i, r := range rsuffix {
		if rs[offset+i] != r {
			return false
		}
	}
	return true
}
