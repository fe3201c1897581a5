package opcode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func marks(symbols []Symbol) string {
	var b strings.Builder
	for _, s := range symbols {
		b.WriteString(s.String())
	}
	return b.String()
}

func TestBitcodes(t *testing.T) {
	cases := map[string]string{
		"push":  "SS",
		"dup":   "SLS",
		"copy":  "STS",
		"swap":  "SLT",
		"pop":   "SLL",
		"slide": "STL",
		"add":   "TSSS",
		"sub":   "TSST",
		"mult":  "TSSL",
		"div":   "TSTS",
		"mod":   "TSTT",
		"store": "TTS",
		"retr":  "TTT",
		"label": "LSS",
		"call":  "LST",
		"jump":  "LSL",
		"jumpz": "LTS",
		"jumpn": "LTT",
		"ret":   "LTL",
		"end":   "LLL",
		"outc":  "TLSS",
		"outn":  "TLST",
		"inc":   "TLTS",
		"inn":   "TLTT",
	}
	require.Len(t, All(), len(cases))

	for name, want := range cases {
		t.Run(name, func(t *testing.T) {
			m, ok := Lookup(name)
			require.True(t, ok)
			assert.Equal(t, name, m.String())
			assert.Equal(t, want, marks(m.Bitcode()))
		})
	}
}

func TestLookupIgnoresCase(t *testing.T) {
	for _, name := range []string{"PUSH", "Push", "push", "pUsH"} {
		m, ok := Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, Push, m)
	}

	_, ok := Lookup("foo")
	assert.False(t, ok)
	_, ok = Lookup("")
	assert.False(t, ok)
}

func TestParamKinds(t *testing.T) {
	assert.Equal(t, ParamValue, Push.Param())
	assert.Equal(t, ParamNumber, Copy.Param())
	assert.Equal(t, ParamNumber, Slide.Param())
	for _, m := range []Mnemonic{Label, Call, Jump, JumpZ, JumpN} {
		assert.Equal(t, ParamLabel, m.Param(), m.String())
	}
	for _, m := range []Mnemonic{Dup, Swap, Pop, Add, Sub, Mult, Div, Mod, Store, Retr, Ret, End, OutC, OutN, InC, InN} {
		assert.Equal(t, ParamNone, m.Param(), m.String())
	}
}

// No bitcode may be a prefix of another, or a symbol stream could not be
// split back into commands.
func TestBitcodesArePrefixFree(t *testing.T) {
	for _, a := range All() {
		for _, b := range All() {
			if a == b {
				continue
			}
			assert.False(t, strings.HasPrefix(marks(b.Bitcode()), marks(a.Bitcode())),
				"%s is a prefix of %s", a, b)
		}
	}
}

func TestBitcodeReturnsCopy(t *testing.T) {
	code := Push.Bitcode()
	code[0] = Line
	assert.Equal(t, "SS", marks(Push.Bitcode()))
}

func TestInvalidMnemonic(t *testing.T) {
	assert.False(t, Mnemonic(-1).Valid())
	assert.False(t, numMnemonics.Valid())
	assert.Equal(t, "unknown", numMnemonics.String())
	assert.Equal(t, "?", Symbol(9).String())
}
