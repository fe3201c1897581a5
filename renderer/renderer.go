// Package renderer writes a Whitespace symbol stream in one of the supported
// output formats.
package renderer

import (
	"errors"
	"fmt"
	"io"

	"github.com/ChainSafe/ws-asm/opcode"
)

// Supported format names.
const (
	FormatRaw  = "raw"
	FormatMark = "mark"
)

// ErrUnsupportedFormat is returned for any format name other than raw or mark.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Renderer defines the interface for rendering a symbol stream.
type Renderer interface {
	// Render writes the symbols to output in the renderer's format.
	Render(symbols []opcode.Symbol, output io.Writer) error

	// Format returns the name of the output format (e.g., "raw", "mark").
	Format() string
}

// New returns the renderer for the named format.
func New(format string) (Renderer, error) {
	switch format {
	case FormatRaw:
		return NewRawRenderer(), nil
	case FormatMark:
		return NewMarkRenderer(), nil
	default:
		return nil, fmt.Errorf("%w: %q (options: %s, %s)", ErrUnsupportedFormat, format, FormatRaw, FormatMark)
	}
}

// Formats lists the names accepted by New.
func Formats() []string {
	return []string{FormatRaw, FormatMark}
}

// alphabetRenderer renders each symbol as a single byte.
type alphabetRenderer struct {
	name  string
	bytes [3]byte // indexed by opcode.Symbol
}

func (r *alphabetRenderer) Render(symbols []opcode.Symbol, output io.Writer) error {
	_, err := output.Write(r.Bytes(symbols))
	return err
}

// Bytes returns the rendered form of symbols.
func (r *alphabetRenderer) Bytes(symbols []opcode.Symbol) []byte {
	buf := make([]byte, len(symbols))
	for i, s := range symbols {
		buf[i] = r.bytes[s]
	}
	return buf
}

func (r *alphabetRenderer) Format() string {
	return r.name
}
