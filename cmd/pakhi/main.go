/*
File    : pakhi-bhasha/cmd/pakhi/main.go
Author  : Shafin098
Contact : shafin098@users.noreply.github.com
*/

// Command pakhi is the interpreter's entry point: two subcommands, `run` and
// `repl`. Grounded on db47h-ngaro/cmd/retro/main.go for the flag-based,
// no-framework driver shape (the teacher's own main/main.go mixes a real
// driver with a TCP server mode and AST-printing debug hooks spec.md has no
// room for, so the subcommand split is drawn from the wider pack instead).
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/Shafin098/pakhi-bhasha/eval"
	"github.com/Shafin098/pakhi-bhasha/host"
	"github.com/Shafin098/pakhi-bhasha/repl"
)

// version is reported by `pakhi repl`'s banner and is not otherwise
// meaningful to the interpreter.
const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "run":
		run(os.Args[2:])
	case "repl":
		repl.New(version).Start(os.Stdout)
	case "-h", "--help", "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "pakhi: unknown command %q\n", os.Args[1])
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage:")
	fmt.Fprintln(os.Stderr, "  pakhi run <file.pakhi>   run a Pakhi source file")
	fmt.Fprintln(os.Stderr, "  pakhi repl               start the interactive shell")
}

// run executes a single source file as the root module. Exit code 0 on
// success, nonzero on any lex/parse/resolve/runtime error, per spec.md §6.
func run(args []string) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	fs.Parse(args)

	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: pakhi run <file.pakhi>")
		os.Exit(1)
	}
	path := fs.Arg(0)

	h := host.NewOSHost(bufio.NewReader(os.Stdin))
	e := eval.New(h)
	e.Writer = os.Stdout

	if err := e.RunFile(path); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
