package assembler

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/ChainSafe/ws-asm/asmparser"
	"github.com/ChainSafe/ws-asm/encoder"
	"github.com/ChainSafe/ws-asm/opcode"
	"github.com/ChainSafe/ws-asm/renderer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderString(t *testing.T, format string, symbols []opcode.Symbol) string {
	t.Helper()
	r, err := renderer.New(format)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, r.Render(symbols, &buf))
	return buf.String()
}

func TestHelloScenario(t *testing.T) {
	symbols, err := AssembleString("push 72\noutc\nend")
	require.NoError(t, err)

	push, err := asmparser.ParseLine("push 72")
	require.NoError(t, err)
	var want []opcode.Symbol
	want = append(want, opcode.Push.Bitcode()...)
	want = append(want, encoder.EncodeParameter(push.Parameter)...)
	want = append(want, opcode.OutC.Bitcode()...)
	want = append(want, opcode.End.Bitcode()...)
	assert.Equal(t, want, symbols)

	assert.Equal(t, "SSSTSSTSSSLTLSSLLL", renderString(t, renderer.FormatMark, symbols))
	assert.Equal(t, "   \t  \t   \n\t\n  \n\n\n", renderString(t, renderer.FormatRaw, symbols))
}

func TestCharacterEqualsOrdinal(t *testing.T) {
	char, err := AssembleString("push 'H'")
	require.NoError(t, err)
	num, err := AssembleString("push 72")
	require.NoError(t, err)
	assert.Equal(t, num, char)
}

func TestCaseInsensitiveOutput(t *testing.T) {
	want, err := AssembleString("push 5\noutn")
	require.NoError(t, err)
	for _, src := range []string{"PUSH 5\nOUTN", "Push 5\nOutN"} {
		got, err := AssembleString(src)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestCommentPlacementDoesNotMatter(t *testing.T) {
	trailing, err := Parse(strings.NewReader("outc ;comment"))
	require.NoError(t, err)
	standalone, err := Parse(strings.NewReader(";comment\noutc"))
	require.NoError(t, err)

	require.Len(t, trailing.Instructions, 1)
	require.Len(t, standalone.Instructions, 1)
	assert.Equal(t, trailing.Instructions[0].Mnemonic, standalone.Instructions[0].Mnemonic)
	assert.Nil(t, standalone.Instructions[0].Parameter)
	assert.Equal(t, trailing.Symbols(), standalone.Symbols())
}

func TestUnknownInstruction(t *testing.T) {
	symbols, err := AssembleString("foo")
	assert.Nil(t, symbols)
	require.ErrorIs(t, err, asmparser.ErrUnknownInstruction)

	var lineErr *LineError
	require.True(t, errors.As(err, &lineErr))
	assert.Equal(t, 1, lineErr.Line)
}

func TestFirstErrorWins(t *testing.T) {
	_, err := AssembleString("push 1\n\n; comment\npush x\njump 2\n")
	var lineErr *LineError
	require.ErrorAs(t, err, &lineErr)
	assert.Equal(t, 4, lineErr.Line)
	assert.ErrorIs(t, err, asmparser.ErrInvalidNumber)
}

func TestSourceOrderAndLines(t *testing.T) {
	prog, err := Parse(strings.NewReader("\nlabel 1\n  ; skip\njump 1\r\nend\n"))
	require.NoError(t, err)
	require.Len(t, prog.Instructions, 3)

	assert.Equal(t, opcode.Label, prog.Instructions[0].Mnemonic)
	assert.Equal(t, 2, prog.Instructions[0].Line)
	assert.Equal(t, opcode.Jump, prog.Instructions[1].Mnemonic)
	assert.Equal(t, 4, prog.Instructions[1].Line)
	assert.Equal(t, opcode.End, prog.Instructions[2].Mnemonic)
	assert.Equal(t, 5, prog.Instructions[2].Line)

	assert.Equal(t, "label 1\njump 1\nend\n", prog.String())
}

func TestEmptySource(t *testing.T) {
	symbols, err := AssembleString("")
	require.NoError(t, err)
	assert.Empty(t, symbols)
}

func TestInstructionsEncodeIndependently(t *testing.T) {
	lines := []string{"push -3", "dup", "label 10", "call 10", "push 'x'", "slide 4", "end"}
	var concatenated []opcode.Symbol
	for _, line := range lines {
		one, err := AssembleString(line)
		require.NoError(t, err)
		concatenated = append(concatenated, one...)
	}
	all, err := AssembleString(strings.Join(lines, "\n"))
	require.NoError(t, err)
	assert.Equal(t, concatenated, all)
}

type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestReadError(t *testing.T) {
	_, err := Assemble(brokenReader{})
	assert.ErrorContains(t, err, "boom")
}
