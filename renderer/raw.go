package renderer

import "github.com/ChainSafe/ws-asm/opcode"

// NewRawRenderer returns a renderer emitting the literal space, tab and
// newline bytes a Whitespace interpreter executes.
func NewRawRenderer() Renderer {
	return &alphabetRenderer{
		name: FormatRaw,
		bytes: [3]byte{
			opcode.Space: ' ',
			opcode.Tab:   '\t',
			opcode.Line:  '\n',
		},
	}
}
