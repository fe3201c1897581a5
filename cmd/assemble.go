// Package cmd defines all the commands for the cli
package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/ChainSafe/ws-asm/assembler"
	"github.com/ChainSafe/ws-asm/common"
	"github.com/ChainSafe/ws-asm/opcode"
	"github.com/ChainSafe/ws-asm/profile"
	"github.com/ChainSafe/ws-asm/renderer"
	"github.com/urfave/cli/v2"
)

// stdoutPath selects standard output in place of a file.
const stdoutPath = "-"

var errMissingInput = errors.New("missing input file")

var (
	ProfileFlag = &cli.PathFlag{
		Name:     "profile",
		Usage:    "Path to a YAML profile with default format and output extension",
		Required: false,
	}
	FormatFlag = &cli.StringFlag{
		Name:        "format",
		Aliases:     []string{"f"},
		Usage:       "format of the output. Options: raw, mark",
		Required:    false,
		DefaultText: profile.DefaultFormat,
	}
	OutputFlag = &cli.PathFlag{
		Name:        "output",
		Aliases:     []string{"o"},
		Usage:       "output file path. Use - for stdout",
		Required:    false,
		DefaultText: "input path with the profile extension",
	}
)

func CreateAssembleCommand(action cli.ActionFunc) *cli.Command {
	return &cli.Command{
		Name:        "assemble",
		Usage:       "Translates Whitespace assembly into a Whitespace program",
		Description: "Translates Whitespace assembly into a Whitespace program",
		ArgsUsage:   "<input.wsasm>",
		Action:      action,
		Flags: []cli.Flag{
			ProfileFlag,
			FormatFlag,
			OutputFlag,
		},
	}
}

var AssembleCommand = CreateAssembleCommand(AssembleProgram)

func AssembleProgram(ctx *cli.Context) error {
	prof, err := loadProfile(ctx.Path(ProfileFlag.Name))
	if err != nil {
		return fmt.Errorf("error loading profile: %w", err)
	}

	format := prof.Format
	if ctx.IsSet(FormatFlag.Name) {
		format = ctx.String(FormatFlag.Name)
	}
	// Resolved before the source is read so a bad format fails early.
	rendererInstance, err := renderer.New(format)
	if err != nil {
		return err
	}

	source := ctx.Args().First()
	if source == "" {
		return errMissingInput
	}
	outputPath := ctx.Path(OutputFlag.Name)
	if outputPath == "" {
		outputPath = common.DefaultOutputPath(source, prof.Extension)
	}

	symbols, err := assembleFile(source)
	if err != nil {
		return err
	}

	var out bytes.Buffer
	if err := rendererInstance.Render(symbols, &out); err != nil {
		return fmt.Errorf("unable to render output: %w", err)
	}
	if outputPath == stdoutPath {
		_, err = ctx.App.Writer.Write(out.Bytes())
		return err
	}
	return common.WriteFileAtomic(outputPath, out.Bytes())
}

func loadProfile(path string) (*profile.Profile, error) {
	if path == "" {
		return profile.Default(), nil
	}
	return profile.LoadProfile(path)
}

func assembleFile(path string) ([]opcode.Symbol, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening source: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	symbols, err := assembler.Assemble(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return symbols, nil
}
