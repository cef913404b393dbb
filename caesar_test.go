package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRotByte(t *testing.T) {
	tests := []struct {
		c      byte
		amount int
		want   byte
	}{
		{'A', 0, 'A'},
		{'A', 1, 'B'},
		{'Z', 1, 'A'},
		{'A', 10, 'K'},
		{'J', 25, 'I'},
		{'A', 26, 'A'},
		{'A', 53, 'B'},
		{'B', -1, 'A'},
		{'A', -1, 'Z'},
		{'a', 1, 'B'},
		{'!', 3, '!'},
	}
	for _, tt := range tests {
		assert.Equal(t, string(tt.want), string(rotByte(tt.c, tt.amount)), "rot(%c, %d)", tt.c, tt.amount)
	}
}

func TestRot(t *testing.T) {
	tests := []struct {
		line   string
		amount int
		want   string
	}{
		{"A", 0, "A"},
		{"AA", 3, "DD"},
		{"HELLO", 0, "HELLO"},
		{"HELLO", 1, "IFMMP"},
		{"drag on!", 1, "ESBH PO"},
		{"Attack, team!", 7, "HAAHJR ALHT"},
		{"123", 4, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Rot(tt.line, tt.amount), "rot(%q, %d)", tt.line, tt.amount)
	}
}

func TestRotWords(t *testing.T) {
	var empty []string
	RotWords(empty, 10)
	assert.Empty(t, empty)

	words := []string{"ABCD"}
	backing := &words[0]
	RotWords(words, 1)
	assert.Same(t, backing, &words[0], "rotates in place")
	assert.Equal(t, []string{"BCDE"}, words)

	words = []string{"ABCD", "DDDD", "ZZZZ"}
	RotWords(words, 1)
	assert.Equal(t, []string{"BCDE", "EEEE", "AAAA"}, words)
}

func TestSplitBySpaces(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"HI", []string{"HI"}},
		{"HI THERE", []string{"HI", "THERE"}},
		{"A B C DDD", []string{"A", "B", "C", "DDD"}},
		{"  LEADING AND TRAILING SPACES  ", []string{"LEADING", "AND", "TRAILING", "SPACES"}},
		{"  SPACES  ", []string{"SPACES"}},
		{"MULTIPLE    SPACES     BETWEEN", []string{"MULTIPLE", "SPACES", "BETWEEN"}},
	}
	for _, tt := range tests {
		got := SplitBySpaces(tt.in)
		if len(tt.want) == 0 {
			assert.Empty(t, got, "%q", tt.in)
			continue
		}
		assert.Equal(t, tt.want, got, "%q", tt.in)
	}
}

func TestJoinWithSpaces(t *testing.T) {
	assert.Equal(t, "", JoinWithSpaces(nil))
	assert.Equal(t, "WORD", JoinWithSpaces([]string{"WORD"}))
	assert.Equal(t, "MORE WORDS", JoinWithSpaces([]string{"MORE", "WORDS"}))
	assert.Equal(t, "LOOK AT ALL THESE WORDS", JoinWithSpaces([]string{"LOOK", "AT", "ALL", "THESE", "WORDS"}))
}

func TestNumWordsIn(t *testing.T) {
	tests := []struct {
		words []string
		dict  []string
		want  int
	}{
		{[]string{"WORD"}, nil, 0},
		{[]string{"WORD", "NOTWORD"}, []string{"WORD"}, 1},
		{[]string{"WORD", "WORD", "NOTWORD"}, []string{"WORD"}, 2},
		{[]string{"W", "O", "R", "D"}, []string{"A", "B", "C", "D", "E", "F", "G", "H", "R", "W"}, 3},
		{[]string{"WORD"}, []string{"WORD", "WORD"}, 2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NumWordsIn(tt.words, newWordMap(tt.dict)), "%v in %v", tt.words, tt.dict)
	}
}

func TestCaesarDecrypt(t *testing.T) {
	tests := []struct {
		name string
		text string
		dict []string
		want []string
	}{
		{"NoResults", "aaaaaaaaa", nil, nil},
		{"OneWordOneResult", "hello", []string{"HELLO"}, []string{"HELLO"}},
		{"OneWordManyResults", "nk", []string{"BY", "HE", "IF", "NA"}, []string{"BY", "HE", "IF"}},
		{"OneWordVerifyOrder", "hwukqp", []string{"LAYOUT", "FUSION"}, []string{"LAYOUT", "FUSION"}},
		{"OneWordVerifyStartFromZero", "or", []string{"BE", "OR"}, []string{"OR", "BE"}},
		{"TwoWordsOneResult", "ai   nyug", []string{"GO", "TEAM"}, []string{"GO TEAM"}},
		{"ThreeWordsNeedsAtLeastTwo", "FYYFHP FY IFBS", []string{"AT", "ATTACK"}, []string{"ATTACK AT DAWN"}},
		{"TwoWordsNeedsBothInDict", "ai   nyug", []string{"OW", "TEAM", "WE"}, nil},
		{"Punctuation", "Uryyb, jbeyq!", []string{"HELLO", "WORLD"}, []string{"HELLO WORLD"}},
		{"NothingToDecrypt", " 123 !! ", []string{"A"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CaesarDecrypt(tt.text, newWordMap(tt.dict))
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCaesarDecrypt_LongText(t *testing.T) {
	text := "DOLU PU AOL JVBYZL VM OBTHU LCLUAZ PA ILJVTLZ ULJLZZHYF MVY " +
		"VUL WLVWSL AV KPZZVSCL AOL WVSPAPJHS IHUKZ DOPJO OHCL JVUULJALK AOLT " +
		"DPAO HUVAOLY HUK AV HZZBTL HTVUN AOL WVDLYZ VM AOL LHYAO AOL ZLWHYHAL " +
		"HUK LXBHS ZAHAPVU AV DOPJO AOL SHDZ VM UHABYL HUK VM UHABYLZ NVK " +
		"LUAPASL AOLT H KLJLUA YLZWLJA AV AOL VWPUPVUZ VM THURPUK YLXBPYLZ " +
		"AOHA AOLF ZOVBSK KLJSHYL AOL JHBZLZ DOPJO PTWLS AOLT AV AOL ZLWHYHAPVU"
	dict := strings.Fields("A AMONG AND ANOTHER ASSUME BECOMES CONNECTED COURSE DECLARE " +
		"DISSOLVE EARTH EQUAL EVENTS FOR HAVE HUMAN IN IT LAWS NECESSARY OF ONE " +
		"PEOPLE REQUIRES RESPECT SEPARATE SHOULD THAT THE THEM THEY TO WHEN WHICH WITH")

	got := CaesarDecrypt(text, newWordMap(dict))
	assert.Equal(t, []string{
		"WHEN IN THE COURSE OF HUMAN EVENTS IT BECOMES NECESSARY FOR ONE PEOPLE TO DISSOLVE THE " +
			"POLITICAL BANDS WHICH HAVE CONNECTED THEM WITH ANOTHER AND TO ASSUME AMONG THE POWERS OF THE EARTH THE " +
			"SEPARATE AND EQUAL STATION TO WHICH THE LAWS OF NATURE AND OF NATURES GOD ENTITLE THEM A DECENT RESPECT TO " +
			"THE OPINIONS OF MANKIND REQUIRES THAT THEY SHOULD DECLARE THE CAUSES WHICH IMPEL THEM TO THE SEPARATION",
	}, got)
}
