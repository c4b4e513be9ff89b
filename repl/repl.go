/*
File    : pakhi-bhasha/repl/repl.go
Author  : Shafin098
Contact : shafin098@users.noreply.github.com
*/

// Package repl implements Pakhi's interactive shell. Grounded directly on
// akashmaji946-go-mix/repl/repl.go: the Banner/Version/Author/Line/License/
// Prompt struct shape, its colored-output scheme, and the
// read-line/trim/dot-exit/history loop, adapted to evaluate against Pakhi's
// module-aware Evaluator instead of GoMix's single-scope one.
package repl

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/Shafin098/pakhi-bhasha/env"
	"github.com/Shafin098/pakhi-bhasha/eval"
	"github.com/Shafin098/pakhi-bhasha/host"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is one interactive session's banner/prompt configuration.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// New builds a Repl with Pakhi's own banner text.
func New(version string) *Repl {
	return &Repl{
		Banner:  "পাখি",
		Version: version,
		Author:  "Shafin098",
		Line:    strings.Repeat("-", 40),
		License: "MIT",
		Prompt:  "পাখি >>> ",
	}
}

// PrintBannerInfo writes the startup banner and usage hints to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "পাখিতে স্বাগতম! (Welcome to Pakhi!)")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter.")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit.")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the read-eval-print loop against writer until '.exit' or EOF.
//
// One Evaluator and one top-level *env.Environment are created for the
// whole session and held across every line read from the prompt — not one
// Evaluator per line — so নাম/ফাং declarations from earlier lines stay
// visible to later ones, the same way a single module's top-level scope
// would. The Evaluator's own module resolver (for any মডিউল statement
// typed at the prompt) resolves relative paths against the process's
// working directory, since a REPL session has no enclosing source file of
// its own.
//
// Parameters:
//   - writer: where দেখাও output, built-in I/O output, echoed values, and
//     the banner/error text all go. The REPL never writes to os.Stdout
//     directly, so it can be driven from a test with a bytes.Buffer.
//
// Start returns when the user types ".exit", when readline hits EOF (e.g.
// Ctrl-D), or when readline itself fails to initialize — there is no other
// exit path.
func (r *Repl) Start(writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		redColor.Fprintf(writer, "[REPL ERROR] %v\n", err)
		return
	}
	defer rl.Close()

	dir, err := os.Getwd()
	if err != nil {
		dir = "."
	}

	e := eval.New(host.NewOSHost(bufio.NewReader(os.Stdin)))
	e.Writer = writer
	scope := e.NewSession(dir)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("বিদায়!\n"))
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("বিদায়!\n"))
			return
		}
		rl.SaveHistory(line)

		r.evalAndPrint(writer, line, dir, e, scope)
	}
}

func (r *Repl) evalAndPrint(writer io.Writer, line, dir string, e *eval.Evaluator, scope *env.Environment) {
	v, err := e.EvalLine(line, dir, scope)
	if err != nil {
		redColor.Fprintf(writer, "%v\n", err)
		return
	}
	if v != nil {
		yellowColor.Fprintf(writer, "%s\n", v.String())
	}
}
