// Package limit holds the validation rule behind the bounded text input:
// a fixed character or word limit and the state that rejects edits
// crossing it.
package limit

import (
	"unicode"

	"github.com/rivo/uniseg"
)

// Kind is the quantity a binding limits. It is either ByCharacter or ByWord.
type Kind interface {
	// Max is the configured maximum unit count.
	Max() int
	// Unit names the counted unit in plural form ("characters", "words").
	Unit() string
	sealed()
}

// ByCharacter limits the number of user-perceived characters.
type ByCharacter struct {
	N int
}

// ByWord limits the number of word runs.
type ByWord struct {
	N int
}

func (k ByCharacter) Max() int { return k.N }
func (k ByCharacter) Unit() string { return "characters" }
func (ByCharacter) sealed() {}

func (k ByWord) Max() int { return k.N }
func (k ByWord) Unit() string { return "words" }
func (ByWord) sealed() {}

// UnitCount counts value in the unit selected by kind.
func UnitCount(kind Kind, value string) int {
	switch kind.(type) {
	case ByCharacter:
		return CharacterCount(value)
	case ByWord:
		return WordCount(value)
	}
	return 0
}

// CharacterCount returns the number of grapheme clusters in value.
func CharacterCount(value string) int {
	return uniseg.GraphemeClusterCount(value)
}

// WordCount returns the number of maximal runs of word characters in value.
// Each user-perceived character is classified by its first code point, so
// combining marks and joiners stay inside the word they attach to.
// Punctuation and symbols belong to the run, so "a.b" is a single word.
func WordCount(value string) int {
	count := 0
	inWord := false
	g := uniseg.NewGraphemes(value)
	for g.Next() {
		runes := g.Runes()
		if len(runes) > 0 && IsWordRune(runes[0]) {
			if !inWord {
				count++
			}
			inWord = true
			continue
		}
		inWord = false
	}
	return count
}

// IsWordRune reports whether r is a letter, number, symbol or punctuation.
func IsWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsSymbol(r) || unicode.IsPunct(r)
}
