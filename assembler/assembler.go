// Package assembler drives a whole Whitespace assembly source through the
// line parser and the encoder.
package assembler

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ChainSafe/ws-asm/asmparser"
	"github.com/ChainSafe/ws-asm/encoder"
	"github.com/ChainSafe/ws-asm/opcode"
)

const maxLineSize = 1 << 20

// LineError reports the source line an assembly failure occurred on.
type LineError struct {
	Line int // 1-based
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Program is the ordered list of instructions of one source file.
type Program struct {
	Instructions []*asmparser.Instruction
}

// Parse reads source lines from r and stops at the first line that fails.
func Parse(r io.Reader) (*Program, error) {
	prog := &Program{Instructions: make([]*asmparser.Instruction, 0)}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		instr, err := asmparser.ParseLine(scanner.Text())
		if err != nil {
			return nil, &LineError{Line: lineNum, Err: err}
		}
		if instr == nil { // Blank lines and comments
			continue
		}
		instr.Line = lineNum
		prog.Instructions = append(prog.Instructions, instr)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading source: %w", err)
	}
	return prog, nil
}

// Symbols encodes every instruction in source order.
func (p *Program) Symbols() []opcode.Symbol {
	symbols := make([]opcode.Symbol, 0, len(p.Instructions)*8)
	for _, instr := range p.Instructions {
		symbols = append(symbols, encoder.EncodeInstruction(instr)...)
	}
	return symbols
}

// String lists the program in canonical assembly, one instruction per line.
func (p *Program) String() string {
	var b strings.Builder
	for _, instr := range p.Instructions {
		b.WriteString(instr.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// Assemble parses the source read from r and returns its symbol stream.
func Assemble(r io.Reader) ([]opcode.Symbol, error) {
	prog, err := Parse(r)
	if err != nil {
		return nil, err
	}
	return prog.Symbols(), nil
}

// AssembleString is Assemble for in-memory source.
func AssembleString(src string) ([]opcode.Symbol, error) {
	return Assemble(strings.NewReader(src))
}
