package main

import (
	"context"
	"log"
	"os"

	"github.com/ChainSafe/ws-asm/cmd"
	"github.com/urfave/cli/v2"
)

func main() {
	app := cli.NewApp()
	app.Name = "ws-asm"
	app.Usage = "Whitespace Assembler"
	app.Description = "Translates readable assembly into Whitespace programs and back"
	app.Commands = []*cli.Command{
		cmd.AssembleCommand,
		cmd.DisassembleCommand,
	}
	err := app.RunContext(context.Background(), os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
