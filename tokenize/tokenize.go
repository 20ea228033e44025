// Package tokenize splits text lines into lowercase ASCII words and decides
// which of them take part in n-gram statistics.
package tokenize

import (
	"iter"
	"strings"
)

// Words returns the maximal runs of ASCII letters in line, left to right,
// lower-cased. Any other byte ends the current word and is dropped.
// The sequence can be ranged over more than once.
func Words(line string) iter.Seq[string] {
	return func(yield func(string) bool) {
		start := -1
		for i := 0; i < len(line); i++ {
			if IsLetter(line[i]) {
				if start < 0 {
					start = i
				}
				continue
			}
			if start >= 0 {
				if !yield(strings.ToLower(line[start:i])) {
					return
				}
				start = -1
			}
		}
		if start >= 0 {
			yield(strings.ToLower(line[start:]))
		}
	}
}

// Admit reports whether word is counted: any word of two or more letters,
// plus the one-letter words "a" and "i".
func Admit(word string) bool {
	return len(word) >= 2 || word == "a" || word == "i"
}

// IsLetter reports whether c is an ASCII letter.
func IsLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
