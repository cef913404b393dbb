package main

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

var ErrInvalidKey = errors.New("invalid substitution key")

var (
	isLetter [256]bool
	toUpper  [256]byte
)

func init() {
	for i := range toUpper {
		toUpper[i] = byte(i)
	}
	for x := 'A'; x <= 'Z'; x++ {
		isLetter[x] = true
		isLetter[x+'a'-'A'] = true
		toUpper[x+'a'-'A'] = byte(x)
	}
}

func isUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

// Key is a substitution cipher key. For a letter c in the input, the
// output letter is key[c-'A'].
type Key [26]byte

func identityKey() Key {
	var k Key
	copy(k[:], alphabet)
	return k
}

// ParseKey accepts either the 26 output letters in alphabet order
// ("QWERTY...") or a list of mappings such as "AB=QW C=E". Letters not
// named in a mapping list fill the remaining outputs in alphabet order.
func ParseKey(s string) (Key, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if strings.Contains(s, "=") {
		return parseKeyMappings(s)
	}

	var k Key
	if len(s) != len(k) {
		return k, fmt.Errorf("%w: want 26 letters, got %d", ErrInvalidKey, len(s))
	}
	copy(k[:], s)
	if err := k.validate(); err != nil {
		return k, err
	}
	return k, nil
}

func parseKeyMappings(s string) (Key, error) {
	var (
		k    Key
		used [26]bool
	)

	for _, m := range strings.FieldsFunc(s, func(r rune) bool { return r == ' ' || r == ',' }) {
		kv := bytes.SplitN([]byte(m), []byte("="), 2)
		if len(kv) != 2 || len(kv[0]) != len(kv[1]) {
			return k, fmt.Errorf("%w: bad mapping %s", ErrInvalidKey, m)
		}

		// kv[0] is the input letter, kv[1] the letter it becomes
		for i, in := range kv[0] {
			out := kv[1][i]
			if !isUpper(in) || !isUpper(out) {
				return k, fmt.Errorf("%w: bad mapping %s", ErrInvalidKey, m)
			}
			if k[in-'A'] != 0 || used[out-'A'] {
				return k, fmt.Errorf("%w: letter mapped twice in %s", ErrInvalidKey, m)
			}
			k[in-'A'] = out
			used[out-'A'] = true
		}
	}

	next := 0
	for i := range k {
		if k[i] != 0 {
			continue
		}
		for used[next] {
			next++
		}
		k[i] = byte('A' + next)
		used[next] = true
	}
	return k, nil
}

// validate reports whether k is a permutation of the alphabet.
func (k Key) validate() error {
	var seen [26]bool
	for i, c := range k {
		if !isUpper(c) {
			return fmt.Errorf("%w: position %d is %q", ErrInvalidKey, i, c)
		}
		if seen[c-'A'] {
			return fmt.Errorf("%w: %c appears more than once", ErrInvalidKey, c)
		}
		seen[c-'A'] = true
	}
	return nil
}

// Apply substitutes every letter of text, upper or lower case, with its
// uppercase image under the key. Everything else is copied as is.
func (k Key) Apply(text string) string {
	out := make([]byte, len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		if isLetter[c] {
			out[i] = k[toUpper[c]-'A']
		} else {
			out[i] = c
		}
	}
	return string(out)
}

// apply is Apply for text that is known to be uppercase letters only,
// writing into dst to avoid allocating in the search loop.
func (k *Key) apply(dst, text []byte) {
	for i, c := range text {
		dst[i] = k[c-'A']
	}
}

// Invert returns the key that undoes k.
func (k Key) Invert() Key {
	var inv Key
	for i, c := range k {
		inv[c-'A'] = byte('A' + i)
	}
	return inv
}

func (k *Key) swap(i, j int) {
	k[i], k[j] = k[j], k[i]
}

func (k Key) String() string {
	return string(k[:])
}

// Mappings lists the key as "A=Q B=W ..." pairs.
func (k Key) Mappings() string {
	var ret strings.Builder
	for i, c := range k {
		if i > 0 {
			ret.WriteByte(' ')
		}
		fmt.Fprintf(&ret, "%c=%c", 'A'+i, c)
	}
	return ret.String()
}

// Clean returns only the letters of text, uppercased.
func Clean(text string) string {
	ret := make([]byte, 0, len(text))
	for i := 0; i < len(text); i++ {
		if c := text[i]; isLetter[c] {
			ret = append(ret, toUpper[c])
		}
	}
	return string(ret)
}
