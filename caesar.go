package main

import (
	"strings"
)

// rotByte moves a letter amount places forward as uppercase, wrapping
// around from Z to A. Anything else is returned unchanged.
func rotByte(c byte, amount int) byte {
	if !isLetter[c] {
		return c
	}
	n := (int(toUpper[c]-'A') + amount%26) % 26
	if n < 0 {
		n += 26
	}
	return alphabet[n]
}

// Rot uppercases and rotates every letter of line. Spaces are kept and
// every other character is dropped.
func Rot(line string, amount int) string {
	var ret strings.Builder
	for i := 0; i < len(line); i++ {
		switch c := line[i]; {
		case isLetter[c]:
			ret.WriteByte(rotByte(toUpper[c], amount))
		case isSpace(c):
			ret.WriteByte(' ')
		}
	}
	return ret.String()
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// RotWords rotates each element of words in place.
func RotWords(words []string, amount int) {
	for i, w := range words {
		if w != "" {
			words[i] = Rot(w, amount)
		}
	}
}

func SplitBySpaces(s string) []string {
	return strings.Fields(s)
}

func JoinWithSpaces(words []string) string {
	return strings.Join(words, " ")
}

// NumWordsIn counts the words that appear in dict. A word listed twice in
// dict counts twice.
func NumWordsIn(words []string, dict wordMap) int {
	n := 0
	for _, w := range words {
		n += dict.find(w)
	}
	return n
}

// CaesarDecrypt tries all 26 shifts of text and returns, in shift order,
// every rotation where more than half of the words are in dict.
func CaesarDecrypt(text string, dict wordMap) []string {
	var cleaned []string
	for _, w := range SplitBySpaces(text) {
		if c := Clean(w); c != "" {
			cleaned = append(cleaned, c)
		}
	}
	if len(cleaned) == 0 {
		return nil
	}

	var ret []string
	for shift := 0; shift < 26; shift++ {
		rotated := append([]string(nil), cleaned...)
		RotWords(rotated, shift)

		if NumWordsIn(rotated, dict) > len(rotated)/2 {
			ret = append(ret, JoinWithSpaces(rotated))
		}
	}
	return ret
}
