// Package disassembler turns a rendered Whitespace program back into
// assembly instructions.
package disassembler

import (
	"errors"
	"fmt"
	"math/big"
	"slices"

	"github.com/ChainSafe/ws-asm/asmparser"
	"github.com/ChainSafe/ws-asm/opcode"
	"github.com/ChainSafe/ws-asm/renderer"
)

var (
	ErrUnknownCommand  = errors.New("unknown command")
	ErrTruncated       = errors.New("program truncated")
	ErrMalformedNumber = errors.New("malformed number")
)

// Disassembler decodes a rendered program.
type Disassembler interface {
	Disassemble(data []byte) ([]*asmparser.Instruction, error)
	Format() string
}

type disassembler struct {
	format   string
	alphabet map[byte]opcode.Symbol
}

// NewDisassembler returns a disassembler reading the named format.
func NewDisassembler(format string) (Disassembler, error) {
	alphabet, err := alphabetOf(format)
	if err != nil {
		return nil, err
	}
	return &disassembler{format: format, alphabet: alphabet}, nil
}

func alphabetOf(format string) (map[byte]opcode.Symbol, error) {
	switch format {
	case renderer.FormatRaw:
		return map[byte]opcode.Symbol{' ': opcode.Space, '\t': opcode.Tab, '\n': opcode.Line}, nil
	case renderer.FormatMark:
		return map[byte]opcode.Symbol{'S': opcode.Space, 'T': opcode.Tab, 'L': opcode.Line}, nil
	default:
		return nil, fmt.Errorf("%w: %q", renderer.ErrUnsupportedFormat, format)
	}
}

func (d *disassembler) Format() string {
	return d.format
}

func (d *disassembler) Disassemble(data []byte) ([]*asmparser.Instruction, error) {
	return Disassemble(extract(data, d.alphabet))
}

// Decode extracts the symbols from data rendered in format. Bytes outside
// the format's alphabet are skipped, the way an interpreter treats them as
// comments.
func Decode(data []byte, format string) ([]opcode.Symbol, error) {
	alphabet, err := alphabetOf(format)
	if err != nil {
		return nil, err
	}
	return extract(data, alphabet), nil
}

func extract(data []byte, alphabet map[byte]opcode.Symbol) []opcode.Symbol {
	symbols := make([]opcode.Symbol, 0, len(data))
	for _, b := range data {
		if s, ok := alphabet[b]; ok {
			symbols = append(symbols, s)
		}
	}
	return symbols
}

// Disassemble splits a symbol stream into instructions.
func Disassemble(symbols []opcode.Symbol) ([]*asmparser.Instruction, error) {
	instructions := make([]*asmparser.Instruction, 0)
	pos := 0
	for pos < len(symbols) {
		mnemonic, size, err := matchCommand(symbols[pos:])
		if err != nil {
			return nil, fmt.Errorf("%w at symbol %d", err, pos)
		}
		pos += size
		instr := &asmparser.Instruction{Mnemonic: mnemonic}

		switch mnemonic.Param() {
		case opcode.ParamNumber, opcode.ParamValue:
			n, used, err := DecodeNumber(symbols[pos:])
			if err != nil {
				return nil, fmt.Errorf("%s parameter at symbol %d: %w", mnemonic, pos, err)
			}
			instr.Parameter = asmparser.NewNumber(n)
			pos += used
		case opcode.ParamLabel:
			bits, used, err := DecodeLabel(symbols[pos:])
			if err != nil {
				return nil, fmt.Errorf("%s parameter at symbol %d: %w", mnemonic, pos, err)
			}
			instr.Parameter = asmparser.NewLabel(bits)
			pos += used
		}
		instructions = append(instructions, instr)
	}
	return instructions, nil
}

// matchCommand finds the mnemonic whose bitcode starts symbols. Bitcodes are
// prefix free, so at most one matches.
func matchCommand(symbols []opcode.Symbol) (opcode.Mnemonic, int, error) {
	truncated := false
	for _, m := range opcode.All() {
		code := m.Bitcode()
		n := min(len(code), len(symbols))
		if !slices.Equal(code[:n], symbols[:n]) {
			continue
		}
		if n < len(code) {
			truncated = true
			continue
		}
		return m, len(code), nil
	}
	if truncated {
		return 0, 0, ErrTruncated
	}
	return 0, 0, ErrUnknownCommand
}

// DecodeNumber reads a sign, binary digits and the Line terminator. It
// returns the value and the number of symbols consumed.
func DecodeNumber(symbols []opcode.Symbol) (*big.Int, int, error) {
	if len(symbols) == 0 {
		return nil, 0, ErrTruncated
	}
	negative := false
	switch symbols[0] {
	case opcode.Space:
	case opcode.Tab:
		negative = true
	default:
		return nil, 0, fmt.Errorf("%w: missing sign", ErrMalformedNumber)
	}

	n := new(big.Int)
	for i := 1; i < len(symbols); i++ {
		if symbols[i] == opcode.Line {
			if negative {
				n.Neg(n)
			}
			return n, i + 1, nil
		}
		n.Lsh(n, 1)
		if symbols[i] == opcode.Tab {
			n.SetBit(n, 0, 1)
		}
	}
	return nil, 0, ErrTruncated
}

// DecodeLabel reads label digits up to the Line terminator.
func DecodeLabel(symbols []opcode.Symbol) (string, int, error) {
	bits := make([]byte, 0, len(symbols))
	for i, s := range symbols {
		switch s {
		case opcode.Line:
			return string(bits), i + 1, nil
		case opcode.Tab:
			bits = append(bits, '1')
		default:
			bits = append(bits, '0')
		}
	}
	return "", 0, ErrTruncated
}
