/*
File    : pakhi-bhasha/builtin/builtin.go
Author  : Shafin098
Contact : shafin098@users.noreply.github.com
*/

// Package builtin implements Pakhi's pre-bound root-scope functions
// (spec.md §4.5). Grounded on akashmaji946-go-mix/std's per-concern-file
// layout and {Name, Callback} registration list (builtins.go's Builtin
// struct, common.go/file_io.go/os.go's slice-of-builtins-then-append
// pattern) — adapted from the teacher's "return an Error value" convention
// to returning a Go error, since Pakhi has no try/catch and every builtin
// failure is meant to unwind the whole interpreter (spec.md §7), which is
// exactly what a Go error return already does.
package builtin

import (
	"github.com/Shafin098/pakhi-bhasha/env"
	"github.com/Shafin098/pakhi-bhasha/host"
	"github.com/Shafin098/pakhi-bhasha/value"
)

// entry pairs a builtin's bound name with its value.Builtin.
type entry struct {
	name string
	fn   *value.Builtin
}

// Install declares every built-in function and constant from spec.md §4.5
// into e, the root scope of one module. h backs the I/O built-ins; dir is
// that module's directory, used for the _ডাইরেক্টরি constant.
func Install(e *env.Environment, h host.Host, dir string) {
	var entries []entry
	entries = append(entries, conversionBuiltins()...)
	entries = append(entries, listBuiltins()...)
	entries = append(entries, stringBuiltins()...)
	entries = append(entries, reflectBuiltins()...)
	entries = append(entries, controlBuiltins()...)
	entries = append(entries, ioBuiltins(h)...)

	for _, ent := range entries {
		e.Declare(ent.name, ent.fn)
	}

	e.Declare("_ডাইরেক্টরি", &value.String{Value: dir})
	e.Declare("_প্ল্যাটফর্ম", &value.String{Value: h.Platform()})
}

func builtin(name string, fn func(args []value.Value) (value.Value, error)) entry {
	return entry{name: name, fn: &value.Builtin{Name: name, Fn: fn}}
}
