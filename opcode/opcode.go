// Package opcode holds the Whitespace instruction table: the symbol alphabet,
// the closed set of mnemonics and the IMP+command bitcode of each one.
package opcode

import "strings"

// Symbol is one character of the Whitespace alphabet.
type Symbol uint8

const (
	Space Symbol = iota
	Tab
	Line
)

func (s Symbol) String() string {
	switch s {
	case Space:
		return "S"
	case Tab:
		return "T"
	case Line:
		return "L"
	default:
		return "?"
	}
}

// ParamKind describes which parameter a mnemonic takes.
type ParamKind int

const (
	ParamNone   ParamKind = iota
	ParamNumber           // signed integer
	ParamValue            // signed integer or character literal
	ParamLabel            // bit string over {0,1}
)

// Mnemonic identifies one Whitespace command.
type Mnemonic int

const (
	// Stack manipulation
	Push Mnemonic = iota
	Dup
	Copy
	Swap
	Pop
	Slide

	// Arithmetic
	Add
	Sub
	Mult
	Div
	Mod

	// Heap access
	Store
	Retr

	// Flow control
	Label
	Call
	Jump
	JumpZ
	JumpN
	Ret
	End

	// I/O
	OutC
	OutN
	InC
	InN

	numMnemonics
)

// IMP prefixes.
var (
	impStack = []Symbol{Space}
	impMath  = []Symbol{Tab, Space}
	impHeap  = []Symbol{Tab, Tab}
	impFlow  = []Symbol{Line}
	impIO    = []Symbol{Tab, Line}
)

type entry struct {
	name    string
	imp     []Symbol
	command []Symbol
	param   ParamKind
}

var table = [numMnemonics]entry{
	Push:  {"push", impStack, []Symbol{Space}, ParamValue},
	Dup:   {"dup", impStack, []Symbol{Line, Space}, ParamNone},
	Copy:  {"copy", impStack, []Symbol{Tab, Space}, ParamNumber},
	Swap:  {"swap", impStack, []Symbol{Line, Tab}, ParamNone},
	Pop:   {"pop", impStack, []Symbol{Line, Line}, ParamNone},
	Slide: {"slide", impStack, []Symbol{Tab, Line}, ParamNumber},

	Add:  {"add", impMath, []Symbol{Space, Space}, ParamNone},
	Sub:  {"sub", impMath, []Symbol{Space, Tab}, ParamNone},
	Mult: {"mult", impMath, []Symbol{Space, Line}, ParamNone},
	Div:  {"div", impMath, []Symbol{Tab, Space}, ParamNone},
	Mod:  {"mod", impMath, []Symbol{Tab, Tab}, ParamNone},

	Store: {"store", impHeap, []Symbol{Space}, ParamNone},
	Retr:  {"retr", impHeap, []Symbol{Tab}, ParamNone},

	Label: {"label", impFlow, []Symbol{Space, Space}, ParamLabel},
	Call:  {"call", impFlow, []Symbol{Space, Tab}, ParamLabel},
	Jump:  {"jump", impFlow, []Symbol{Space, Line}, ParamLabel},
	JumpZ: {"jumpz", impFlow, []Symbol{Tab, Space}, ParamLabel},
	JumpN: {"jumpn", impFlow, []Symbol{Tab, Tab}, ParamLabel},
	Ret:   {"ret", impFlow, []Symbol{Tab, Line}, ParamNone},
	End:   {"end", impFlow, []Symbol{Line, Line}, ParamNone},

	OutC: {"outc", impIO, []Symbol{Space, Space}, ParamNone},
	OutN: {"outn", impIO, []Symbol{Space, Tab}, ParamNone},
	InC:  {"inc", impIO, []Symbol{Tab, Space}, ParamNone},
	InN:  {"inn", impIO, []Symbol{Tab, Tab}, ParamNone},
}

var byName = func() map[string]Mnemonic {
	m := make(map[string]Mnemonic, numMnemonics)
	for i := range table {
		m[table[i].name] = Mnemonic(i)
	}
	return m
}()

// Lookup resolves a mnemonic name, ignoring case.
func Lookup(name string) (Mnemonic, bool) {
	m, ok := byName[strings.ToLower(name)]
	return m, ok
}

// All returns every mnemonic in table order.
func All() []Mnemonic {
	all := make([]Mnemonic, numMnemonics)
	for i := range all {
		all[i] = Mnemonic(i)
	}
	return all
}

// Valid reports whether m is a member of the instruction set.
func (m Mnemonic) Valid() bool {
	return m >= 0 && m < numMnemonics
}

func (m Mnemonic) String() string {
	if !m.Valid() {
		return "unknown"
	}
	return table[m].name
}

// Param returns the kind of parameter the mnemonic requires.
func (m Mnemonic) Param() ParamKind {
	return table[m].param
}

// Bitcode returns a fresh copy of the IMP followed by the command selector.
func (m Mnemonic) Bitcode() []Symbol {
	e := table[m]
	code := make([]Symbol, 0, len(e.imp)+len(e.command))
	code = append(code, e.imp...)
	return append(code, e.command...)
}
