package builtin

import (
	"strconv"

	"github.com/Shafin098/pakhi-bhasha/digits"
	"github.com/Shafin098/pakhi-bhasha/perr"
	"github.com/Shafin098/pakhi-bhasha/value"
)

func conversionBuiltins() []entry {
	return []entry{
		builtin("_স্ট্রিং", toString),
		builtin("_সংখ্যা", toNumber),
	}
}

// toString renders any value in its canonical form, per spec.md §4.5.
func toString(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, perr.New(perr.ArityError, "_স্ট্রিং expects 1 argument, got %d", len(args))
	}
	return &value.String{Value: args[0].String()}, nil
}

// toNumber parses a Bengali/ASCII decimal numeral, erroring on invalid
// input per spec.md §4.5.
func toNumber(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, perr.New(perr.ArityError, "_সংখ্যা expects 1 argument, got %d", len(args))
	}
	s, ok := args[0].(*value.String)
	if !ok {
		return nil, perr.New(perr.TypeError, "_সংখ্যা expects a স্ট্রিং, got %s", args[0].Kind())
	}
	f, err := strconv.ParseFloat(digits.Normalize(s.Value), 64)
	if err != nil {
		return nil, perr.New(perr.TypeError, "_সংখ্যা: invalid numeral %q", s.Value)
	}
	return &value.Number{Value: f}, nil
}
