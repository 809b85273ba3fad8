// Command dex2c is a thin CLI harness over the translator pipeline: it
// loads a raw instruction-stream blob, then either disassembles it
// block-by-block or runs the full lowering/rendering pipeline and
// dumps the resulting C-IR.
package main

import (
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
	"github.com/urfave/cli"

	"github.com/dex2c/dtcjit/block"
	"github.com/dex2c/dtcjit/translate"
)

// loadBlob memory-maps file read-only and copies it into a standalone
// byte slice so the map can be released before the pipeline runs.
func loadBlob(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, err
	}
	defer m.Unmap()

	data := make([]byte, len(m))
	copy(data, m)
	return data, nil
}

func disasmBlob(path string) error {
	data, err := loadBlob(path)
	if err != nil {
		return err
	}

	m := methodFromBlob(data)
	blocks, err := block.BuildBlocks(m.DexCode)
	if err != nil {
		return err
	}
	if err := block.ConnectGraph(blocks, m.DexCode); err != nil {
		return err
	}

	for _, b := range blocks {
		fmt.Println(b.String() + ":")
		for _, rec := range b.Records {
			fmt.Printf("  %08X: %s\n", rec.InsnAddr, rec.Insn.Opcode.Name())
		}
		for _, succ := range b.SuccBlocks {
			fmt.Printf("  -> %s\n", succ.String())
		}
	}
	return nil
}

func translateBlob(path, out string) error {
	data, err := loadBlob(path)
	if err != nil {
		return err
	}

	m := methodFromBlob(data)
	rendered, err := translate.Translate(m, noDebugInfo)
	if err != nil {
		return err
	}

	return translate.Dump(rendered, out)
}

func main() {
	app := cli.NewApp()
	app.Name = "dex2c"
	app.Usage = "Translate Dalvik bytecode into rendered C-IR"
	app.Action = func(c *cli.Context) error {
		cli.ShowAppHelp(c)
		return nil
	}
	app.Commands = []cli.Command{
		{
			Name:      "disasm",
			Usage:     "Disassemble a raw instruction blob into basic blocks",
			ArgsUsage: "file",
			Action: func(c *cli.Context) error {
				args := c.Args()
				if len(args) < 1 {
					return cli.NewExitError("Insufficient arguments", 1)
				}
				if err := disasmBlob(args[0]); err != nil {
					return cli.NewExitError(err.Error(), 1)
				}
				return nil
			},
		},
		{
			Name:      "translate",
			Usage:     "Translate a raw instruction blob to C-IR and dump it",
			ArgsUsage: "file",
			Action: func(c *cli.Context) error {
				args := c.Args()
				if len(args) < 1 {
					return cli.NewExitError("Insufficient arguments", 1)
				}
				if err := translateBlob(args[0], c.String("o")); err != nil {
					return cli.NewExitError(err.Error(), 1)
				}
				return nil
			},
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "o",
					Value: "",
					Usage: "output path (default " + translate.DefaultDumpPath + ")",
				},
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
