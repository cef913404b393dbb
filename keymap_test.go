package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	foxPangram       = "THE QUICK BROWN FOX JUMPS OVER THE LAZY DOG"
	mrPangramPunct   = "Mr. Jock, TV quiz PhD, bags few lynx."
	testCipherLetter = "VYBLZOFMAIDQGJKXHNWERSUPCT"
)

func mustParseKey(t *testing.T, s string) Key {
	t.Helper()
	k, err := ParseKey(s)
	require.NoError(t, err)
	return k
}

func TestApply_Identity(t *testing.T) {
	k := identityKey()

	assert.Equal(t, alphabet, k.Apply(alphabet))
	assert.Equal(t, foxPangram, k.Apply(foxPangram))
	assert.Equal(t, "MR. JOCK, TV QUIZ PHD, BAGS FEW LYNX.", k.Apply(mrPangramPunct))
}

func TestApply_Cipher(t *testing.T) {
	k := mustParseKey(t, testCipherLetter)

	assert.Equal(t, testCipherLetter, k.Apply(alphabet))
	assert.Equal(t, "EMZ HRABD YNKUJ OKP IRGXW KSZN EMZ QVTC LKF", k.Apply(foxPangram))
	assert.Equal(t, "GN. IKBD, ES HRAT XML, YVFW OZU QCJP.", k.Apply(mrPangramPunct))
}

func TestApply_PreservesLengthAndNonLetters(t *testing.T) {
	r := NewRandom(7)
	texts := []string{
		"",
		mrPangramPunct,
		"line one\nline two\ttabbed 12345 !@#$%^&*()",
		"caf\xc3\xa9 na\xc3\xafve",
	}

	for i := 0; i < 20; i++ {
		k := GenRandomSubstCipher(r)
		for _, text := range texts {
			out := k.Apply(text)
			require.Len(t, out, len(text))
			for j := 0; j < len(text); j++ {
				if !isLetter[text[j]] {
					assert.Equal(t, text[j], out[j], "position %d of %q", j, text)
				} else {
					assert.True(t, isUpper(out[j]), "position %d of %q", j, text)
				}
			}
		}
	}
}

func TestApply_InverseUndoesKey(t *testing.T) {
	k := mustParseKey(t, testCipherLetter)
	assert.Equal(t, foxPangram, k.Invert().Apply(k.Apply(foxPangram)))
	assert.Equal(t, k, k.Invert().Invert())

	inv := k.Invert()
	var composed Key
	for i := range composed {
		composed[i] = k[inv[i]-'A']
	}
	assert.Equal(t, identityKey(), composed)
}

func TestClean(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"UPPERCASELETTERS", "UPPERCASELETTERS"},
		{"lowercaseletters", "LOWERCASELETTERS"},
		{"1234567890!@#$%^&*() .,", ""},
		{"a-b C", "ABC"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Clean(tt.in), "%q", tt.in)
	}
}

func TestClean_Idempotent(t *testing.T) {
	for _, s := range []string{mrPangramPunct, foxPangram, "x\ty\nz 9", ""} {
		once := Clean(s)
		assert.Equal(t, once, Clean(once))
	}
}

func TestParseKey(t *testing.T) {
	k, err := ParseKey(strings.ToLower(testCipherLetter))
	require.NoError(t, err)
	assert.Equal(t, testCipherLetter, k.String())

	k, err = ParseKey("AB=BA")
	require.NoError(t, err)
	assert.Equal(t, "BACDEFGHIJKLMNOPQRSTUVWXYZ", k.String())

	k, err = ParseKey("A=Z, Z=A")
	require.NoError(t, err)
	assert.Equal(t, "ZBCDEFGHIJKLMNOPQRSTUVWXYA", k.String())

	k, err = ParseKey("A=C")
	require.NoError(t, err)
	assert.Equal(t, "CABDEFGHIJKLMNOPQRSTUVWXYZ", k.String())
	assert.NoError(t, k.validate())
}

func TestParseKey_Errors(t *testing.T) {
	tests := []string{
		"",
		"ABC",
		"AACDEFGHIJKLMNOPQRSTUVWXYZ",
		"ABCDEFGHIJKLMNOPQRSTUVWXY1",
		"AB=C",
		"A=B B=B",
		"A=B A=C",
		"1=A",
	}
	for _, s := range tests {
		_, err := ParseKey(s)
		assert.ErrorIs(t, err, ErrInvalidKey, "%q", s)
	}
}

func TestKeyMappings(t *testing.T) {
	m := identityKey().Mappings()
	assert.True(t, strings.HasPrefix(m, "A=A B=B C=C"))
	assert.True(t, strings.HasSuffix(m, "Z=Z"))
}
