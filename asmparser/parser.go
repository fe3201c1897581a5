// Package asmparser turns lines of Whitespace assembly into instructions.
package asmparser

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ChainSafe/ws-asm/opcode"
)

// Parse errors. They are wrapped with the offending text, so callers should
// compare with errors.Is.
var (
	ErrUnknownInstruction      = errors.New("unknown instruction")
	ErrMissingParameter        = errors.New("missing parameter")
	ErrUnexpectedParameter     = errors.New("unexpected parameter")
	ErrInvalidNumber           = errors.New("invalid number")
	ErrInvalidCharacterLiteral = errors.New("invalid character literal")
	ErrInvalidLabel            = errors.New("invalid label")
)

// ParameterType tags the surface form a parameter was written in.
type ParameterType int

const (
	ParameterNumber ParameterType = iota + 1
	ParameterCharacter
	ParameterLabel
)

// Parameter is the operand attached to an instruction. Number and Character
// share Value; Character only differs in how it prints.
type Parameter struct {
	Type  ParameterType
	Value *big.Int
	Bits  string
}

// NewNumber returns a numeric parameter.
func NewNumber(n *big.Int) *Parameter {
	return &Parameter{Type: ParameterNumber, Value: new(big.Int).Set(n)}
}

// NewCharacter returns a character parameter holding the rune's code point.
func NewCharacter(r rune) *Parameter {
	return &Parameter{Type: ParameterCharacter, Value: big.NewInt(int64(r))}
}

// NewLabel returns a label parameter. bits is not validated.
func NewLabel(bits string) *Parameter {
	return &Parameter{Type: ParameterLabel, Bits: bits}
}

func (p *Parameter) String() string {
	switch p.Type {
	case ParameterLabel:
		return p.Bits
	case ParameterCharacter:
		if p.Value.IsInt64() {
			return quoteCharacter(rune(p.Value.Int64()))
		}
	}
	return p.Value.String()
}

// Instruction is one parsed line of assembly.
type Instruction struct {
	Mnemonic  opcode.Mnemonic
	Parameter *Parameter // nil when the mnemonic takes none
	Line      int        // 1-based source line, zero when not parsed from text
}

func (i *Instruction) String() string {
	if i.Parameter == nil {
		return i.Mnemonic.String()
	}
	return i.Mnemonic.String() + " " + i.Parameter.String()
}

// ParseLine parses one source line. It returns nil and no error for blank and
// comment-only lines.
func ParseLine(line string) (*Instruction, error) {
	fields := splitFields(line)
	if len(fields) == 0 {
		return nil, nil
	}

	mnemonic, ok := opcode.Lookup(fields[0])
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownInstruction, fields[0])
	}
	instr := &Instruction{Mnemonic: mnemonic}
	args := fields[1:]

	kind := mnemonic.Param()
	if kind == opcode.ParamNone {
		if len(args) > 0 {
			return nil, fmt.Errorf("%w: %s takes no parameter, got %d", ErrUnexpectedParameter, mnemonic, len(args))
		}
		return instr, nil
	}
	switch {
	case len(args) == 0:
		return nil, fmt.Errorf("%w: %s requires one", ErrMissingParameter, mnemonic)
	case len(args) > 1:
		return nil, fmt.Errorf("%w: %s takes one parameter, got %d", ErrUnexpectedParameter, mnemonic, len(args))
	}

	param, err := parseParameter(args[0], kind)
	if err != nil {
		return nil, err
	}
	instr.Parameter = param
	return instr, nil
}

func parseParameter(text string, kind opcode.ParamKind) (*Parameter, error) {
	switch kind {
	case opcode.ParamNumber:
		return ParseNumber(text)
	case opcode.ParamValue:
		if strings.HasPrefix(text, "'") {
			return ParseCharacter(text)
		}
		return ParseNumber(text)
	case opcode.ParamLabel:
		return ParseLabel(text)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedParameter, text)
	}
}

// ParseNumber accepts an optional leading '-' followed by decimal digits.
func ParseNumber(text string) (*Parameter, error) {
	digits := strings.TrimPrefix(text, "-")
	if digits == "" || strings.IndexFunc(digits, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidNumber, text)
	}
	n, ok := new(big.Int).SetString(text, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidNumber, text)
	}
	return &Parameter{Type: ParameterNumber, Value: n}, nil
}

// ParseCharacter accepts a single quoted character, with \n, \\ and \' as
// the only escapes.
func ParseCharacter(text string) (*Parameter, error) {
	invalid := fmt.Errorf("%w: %s", ErrInvalidCharacterLiteral, text)
	if len(text) < 2 || text[0] != '\'' || text[len(text)-1] != '\'' {
		return nil, invalid
	}
	body := text[1 : len(text)-1]

	var r rune
	switch {
	case strings.HasPrefix(body, `\`):
		if len(body) != 2 {
			return nil, invalid
		}
		switch body[1] {
		case 'n':
			r = '\n'
		case '\\':
			r = '\\'
		case '\'':
			r = '\''
		default:
			return nil, invalid
		}
	default:
		var size int
		r, size = utf8.DecodeRuneInString(body)
		if size == 0 || size != len(body) || r == utf8.RuneError || r == '\'' {
			return nil, invalid
		}
	}
	return NewCharacter(r), nil
}

// ParseLabel accepts one or more binary digits.
func ParseLabel(text string) (*Parameter, error) {
	if text == "" || strings.Trim(text, "01") != "" {
		return nil, fmt.Errorf("%w: %s", ErrInvalidLabel, text)
	}
	return NewLabel(text), nil
}

// splitFields drops the comment and splits the rest on whitespace. A quoted
// character literal stays a single field even when it holds a space or ';'.
// An unterminated literal is returned as is for ParseCharacter to reject.
func splitFields(line string) []string {
	var (
		fields  []string
		current strings.Builder
		quoted  bool
		escaped bool
	)
	flush := func() {
		if current.Len() > 0 {
			fields = append(fields, current.String())
			current.Reset()
		}
	}

	for _, r := range line {
		if quoted {
			current.WriteRune(r)
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == '\'':
				quoted = false
			}
			continue
		}
		switch {
		case r == ';':
			flush()
			return fields
		case unicode.IsSpace(r):
			flush()
		case r == '\'':
			quoted = true
			current.WriteRune(r)
		default:
			current.WriteRune(r)
		}
	}
	flush()
	return fields
}

func quoteCharacter(r rune) string {
	switch r {
	case '\n':
		return `'\n'`
	case '\\':
		return `'\\'`
	case '\'':
		return `'\''`
	}
	if !utf8.ValidRune(r) || !unicode.IsPrint(r) {
		return big.NewInt(int64(r)).String()
	}
	return "'" + string(r) + "'"
}
