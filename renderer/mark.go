package renderer

import "github.com/ChainSafe/ws-asm/opcode"

// NewMarkRenderer returns a renderer emitting S, T and L in place of space,
// tab and newline. The output is readable but not executable.
func NewMarkRenderer() Renderer {
	return &alphabetRenderer{
		name: FormatMark,
		bytes: [3]byte{
			opcode.Space: 'S',
			opcode.Tab:   'T',
			opcode.Line:  'L',
		},
	}
}
