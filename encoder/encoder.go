// Package encoder converts instruction parameters into Whitespace symbols.
package encoder

import (
	"math/big"

	"github.com/ChainSafe/ws-asm/asmparser"
	"github.com/ChainSafe/ws-asm/opcode"
)

// EncodeParameter returns the symbols for p, or nothing when p is nil.
func EncodeParameter(p *asmparser.Parameter) []opcode.Symbol {
	if p == nil {
		return nil
	}
	if p.Type == asmparser.ParameterLabel {
		return EncodeLabel(p.Bits)
	}
	return EncodeNumber(p.Value)
}

// EncodeNumber writes a sign symbol, the magnitude in binary with the most
// significant bit first, and a Line terminator. Zero has no digits.
func EncodeNumber(n *big.Int) []opcode.Symbol {
	mag := new(big.Int).Abs(n)
	out := make([]opcode.Symbol, 0, mag.BitLen()+2)

	if n.Sign() < 0 {
		out = append(out, opcode.Tab)
	} else {
		out = append(out, opcode.Space)
	}
	for i := mag.BitLen() - 1; i >= 0; i-- {
		out = append(out, bitSymbol(mag.Bit(i)))
	}
	return append(out, opcode.Line)
}

// EncodeLabel maps each '0' to Space and '1' to Tab, then appends Line.
// Other characters are ignored; labels are validated by the parser.
func EncodeLabel(bits string) []opcode.Symbol {
	out := make([]opcode.Symbol, 0, len(bits)+1)
	for _, c := range bits {
		switch c {
		case '0':
			out = append(out, opcode.Space)
		case '1':
			out = append(out, opcode.Tab)
		}
	}
	return append(out, opcode.Line)
}

// EncodeInstruction returns the bitcode of the mnemonic followed by its
// encoded parameter.
func EncodeInstruction(instr *asmparser.Instruction) []opcode.Symbol {
	return append(instr.Mnemonic.Bitcode(), EncodeParameter(instr.Parameter)...)
}

func bitSymbol(b uint) opcode.Symbol {
	if b == 1 {
		return opcode.Tab
	}
	return opcode.Space
}
