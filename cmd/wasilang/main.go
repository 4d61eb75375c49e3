// Command wasilang parses a source file, then either interprets it or
// emits it as a WASI-compatible WebAssembly module, per spec.md §6.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/repr"
	"github.com/urfave/cli/v2"
	"github.com/ztrue/tracerr"
	"go.uber.org/zap"

	"wasilang/ast"
	"wasilang/interp"
	"wasilang/parser"
	"wasilang/wasmgen"
)

const version = "0.1.0"

func main() {
	app := &cli.App{
		Name:  "wasilang",
		Usage: "parse, interpret, and compile the wasilang expression language",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "version", Aliases: []string{"v"}, Usage: "print version and exit"},
			&cli.BoolFlag{Name: "execute", Aliases: []string{"x"}, Usage: "interpret instead of emitting WebAssembly"},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Value: "a.wasm", Usage: "emitter output path"},
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "suppress diagnostic logging"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		printError(err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.Bool("version") {
		fmt.Println("wasilang " + version)
		return nil
	}

	logger := zap.NewNop()
	if !c.Bool("quiet") {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			return tracerr.Wrap(err)
		}
	}
	defer logger.Sync()
	wasmgen.SetLogger(logger)

	files := c.Args().Slice()
	if len(files) == 0 {
		return cli.Exit("no input file given", 1)
	}
	if len(files) > 1 {
		return cli.Exit("exactly one input file is supported", 1)
	}

	path := files[0]
	src, err := os.ReadFile(path)
	if err != nil {
		return tracerr.Wrap(err)
	}

	program, err := parser.Parse(string(src), path)
	if err != nil {
		// parser errors are already located and human-readable
		return err
	}

	dumpProgram(program)

	if c.Bool("execute") {
		result, err := interp.Execute(program)
		if err != nil {
			return err
		}
		fmt.Printf("Result from execution: %d\n", result)
		return nil
	}

	out, err := os.Create(c.String("output"))
	if err != nil {
		return tracerr.Wrap(err)
	}
	defer out.Close()

	ok, err := wasmgen.Compile(program, out)
	if err != nil {
		return err
	}
	if !ok {
		return cli.Exit(fmt.Sprintf("failed writing %s", c.String("output")), 1)
	}
	return nil
}

func dumpProgram(program *ast.Program) {
	fmt.Println("Types:")
	repr.Println(program.Types)
	fmt.Println("Functions:")
	repr.Println(program.Functions)
	fmt.Println("Main function:")
	repr.Println(program.MainFunction)
}

func printError(err error) {
	// A tracerr.Error was explicitly wrapped by run() around an
	// unexpected (non-taxonomy) failure; print it with its stack trace.
	// Everything else is a parser/interp/wasmgen taxonomy error or a
	// cli.ExitCoder, both of which already format themselves.
	if tErr, ok := err.(tracerr.Error); ok {
		tracerr.PrintSourceColor(tErr)
		return
	}
	fmt.Fprintln(os.Stderr, err)
}
