package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/ChainSafe/ws-asm/common"
	"github.com/ChainSafe/ws-asm/disassembler"
	"github.com/ChainSafe/ws-asm/renderer"
	"github.com/urfave/cli/v2"
)

var (
	InputFormatFlag = &cli.StringFlag{
		Name:     "format",
		Aliases:  []string{"f"},
		Usage:    "format of the input program. Options: raw, mark",
		Required: false,
		Value:    renderer.FormatMark,
	}
	ListingOutputFlag = &cli.PathFlag{
		Name:     "output",
		Aliases:  []string{"o"},
		Usage:    "output file path for the assembly listing. Default: stdout",
		Required: false,
	}
)

func CreateDisassembleCommand(action cli.ActionFunc) *cli.Command {
	return &cli.Command{
		Name:        "disassemble",
		Usage:       "Lists a Whitespace program as assembly",
		Description: "Lists a Whitespace program as assembly. Character literals are shown as numbers.",
		ArgsUsage:   "<program.ws>",
		Action:      action,
		Flags: []cli.Flag{
			InputFormatFlag,
			ListingOutputFlag,
		},
	}
}

var DisassembleCommand = CreateDisassembleCommand(DisassembleProgram)

func DisassembleProgram(ctx *cli.Context) error {
	dis, err := disassembler.NewDisassembler(ctx.String(InputFormatFlag.Name))
	if err != nil {
		return err
	}

	source := ctx.Args().First()
	if source == "" {
		return errMissingInput
	}
	data, err := os.ReadFile(source)
	if err != nil {
		return fmt.Errorf("error opening program: %w", err)
	}

	instructions, err := dis.Disassemble(data)
	if err != nil {
		return fmt.Errorf("%s: %w", source, err)
	}

	var listing strings.Builder
	for _, instr := range instructions {
		listing.WriteString(instr.String())
		listing.WriteByte('\n')
	}

	outputPath := ctx.Path(ListingOutputFlag.Name)
	if outputPath == "" || outputPath == stdoutPath {
		_, err = ctx.App.Writer.Write([]byte(listing.String()))
		return err
	}
	return common.WriteFileAtomic(outputPath, []byte(listing.String()))
}
