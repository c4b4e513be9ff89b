package builtin

import (
	"github.com/Shafin098/pakhi-bhasha/perr"
	"github.com/Shafin098/pakhi-bhasha/value"
)

func reflectBuiltins() []entry {
	return []entry{
		builtin("_টাইপ", typeOf),
	}
}

// kindTags maps each runtime Kind to its §4.5 string form.
var kindTags = map[value.Kind]string{
	value.NumberKind:   "_সংখ্যা",
	value.BooleanKind:  "_বুলিয়ান",
	value.StringKind:   "_স্ট্রিং",
	value.ListKind:     "_লিস্ট",
	value.RecordKind:   "_রেকর্ড",
	value.FunctionKind: "_ফাং",
	value.NullKind:     "_শূন্য",
}

func typeOf(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, perr.New(perr.ArityError, "_টাইপ expects 1 argument, got %d", len(args))
	}
	return &value.String{Value: kindTags[args[0].Kind()]}, nil
}
