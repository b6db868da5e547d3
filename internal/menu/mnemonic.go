package menu

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// SplitLabel holds a label broken around its mnemonic character.
type SplitLabel struct {
	Before string
	Letter string
	After  string
}

// Split parses a label with one '&'-marked mnemonic. Labels without a marker,
// or with a trailing '&', come back whole in Before.
func Split(label string) SplitLabel {
	idx := strings.IndexByte(label, '&')
	if idx < 0 || idx == len(label)-1 {
		return SplitLabel{Before: label}
	}
	r, size := utf8.DecodeRuneInString(label[idx+1:])
	if r == utf8.RuneError {
		return SplitLabel{Before: label}
	}
	return SplitLabel{
		Before: label[:idx],
		Letter: string(r),
		After:  label[idx+1+size:],
	}
}

// Text returns the label without its marker.
func (s SplitLabel) Text() string {
	return s.Before + s.Letter + s.After
}

// Mnemonic returns the lower-cased mnemonic rune, or 0 when the label has none.
func (s SplitLabel) Mnemonic() rune {
	if s.Letter == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s.Letter)
	return unicode.ToLower(r)
}

// PlainLabel strips the mnemonic marker, matching what assistive text shows.
func PlainLabel(label string) string {
	return strings.Replace(label, "&", "", 1)
}

// MatchesMnemonic reports whether r selects the label's mnemonic, ignoring case.
func MatchesMnemonic(label string, r rune) bool {
	m := Split(label).Mnemonic()
	return m != 0 && m == unicode.ToLower(r)
}

// FindMnemonic returns the index of the first selectable item within limit
// whose mnemonic matches r, or -1.
func FindMnemonic(items []Item, r rune, limit int) int {
	limit = clampLimit(items, limit)
	for i := 0; i < limit; i++ {
		if items[i].Selectable() && MatchesMnemonic(items[i].Label, r) {
			return i
		}
	}
	return -1
}
