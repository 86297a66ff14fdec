package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// smallWords are the articles, short prepositions, and conjunctions that
// NYT-style title case leaves lowercase in the middle of a headline.
var smallWords = map[string]bool{
	"a": true, "an": true, "and": true, "as": true, "at": true,
	"but": true, "by": true, "en": true, "for": true, "if": true,
	"in": true, "nor": true, "of": true, "on": true, "or": true,
	"per": true, "the": true, "to": true, "v": true, "vs": true,
	"via": true,
}

// TitleCase applies NYT-style headline capitalization: the first letter of
// every hyphen segment of every word is capitalized, small words are
// lowercased unless positioned at an edge (first or last word of the string,
// or first or last segment of a hyphenated word), and words that are already
// fully uppercase and longer than one character pass through unchanged as
// acronyms.
func TitleCase(s string) string {
	words := strings.Split(s, " ")
	for i, word := range words {
		words[i] = titleWord(word, i == 0, i == len(words)-1)
	}
	return strings.Join(words, " ")
}

func titleWord(word string, firstWord, lastWord bool) string {
	if isAcronym(word) {
		return word
	}

	segments := strings.Split(word, "-")
	hyphenated := len(segments) > 1
	for j, seg := range segments {
		edgeSegment := j == 0 || j == len(segments)-1
		if smallWords[strings.ToLower(stripPunct(seg))] {
			if hyphenated && !edgeSegment {
				segments[j] = strings.ToLower(seg)
				continue
			}
			if !hyphenated && !firstWord && !lastWord {
				segments[j] = strings.ToLower(seg)
				continue
			}
		}
		segments[j] = capitalize(seg)
	}
	return strings.Join(segments, "-")
}

// isAcronym reports whether a word is all uppercase letters and longer than
// one character, e.g. "OPP" or "GTA".
func isAcronym(word string) bool {
	if utf8.RuneCountInString(word) <= 1 {
		return false
	}
	hasLetter := false
	for _, r := range word {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

// stripPunct trims non-letter runes from both ends so trailing punctuation
// ("to," or "at:") does not defeat the small-word check.
func stripPunct(seg string) string {
	return strings.TrimFunc(seg, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

func capitalize(seg string) string {
	r, size := utf8.DecodeRuneInString(seg)
	if r == utf8.RuneError {
		return seg
	}
	return string(unicode.ToUpper(r)) + seg[size:]
}

// HeadlineCase applies the final case transform for a headline: all caps at
// level 3 and above, title case otherwise.
func HeadlineCase(s string, level Level) string {
	if level >= LevelCritical {
		return strings.ToUpper(s)
	}
	return TitleCase(s)
}

// JoinList joins phrases with commas and an ampersand before the last item:
// "", "A", "A & B", "A, B & C". No Oxford comma.
func JoinList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " & " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " & " + items[len(items)-1]
	}
}
