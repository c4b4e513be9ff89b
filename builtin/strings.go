package builtin

import (
	"strings"

	"github.com/Shafin098/pakhi-bhasha/perr"
	"github.com/Shafin098/pakhi-bhasha/value"
)

func stringBuiltins() []entry {
	return []entry{
		builtin("_স্ট্রিং-স্প্লিট", stringSplit),
		builtin("_স্ট্রিং-জয়েন", stringJoin),
	}
}

func stringSplit(args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return nil, perr.New(perr.ArityError, "_স্ট্রিং-স্প্লিট expects 2 arguments, got %d", len(args))
	}
	s, ok := args[0].(*value.String)
	if !ok {
		return nil, perr.New(perr.TypeError, "_স্ট্রিং-স্প্লিট expects a স্ট্রিং, got %s", args[0].Kind())
	}
	sep, ok := args[1].(*value.String)
	if !ok {
		return nil, perr.New(perr.TypeError, "_স্ট্রিং-স্প্লিট expects a স্ট্রিং separator, got %s", args[1].Kind())
	}
	parts := strings.Split(s.Value, sep.Value)
	items := make([]value.Value, len(parts))
	for i, p := range parts {
		items[i] = &value.String{Value: p}
	}
	return &value.List{Items: items}, nil
}

func stringJoin(args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return nil, perr.New(perr.ArityError, "_স্ট্রিং-জয়েন expects 2 arguments, got %d", len(args))
	}
	l, ok := args[0].(*value.List)
	if !ok {
		return nil, perr.New(perr.TypeError, "_স্ট্রিং-জয়েন expects a লিস্ট, got %s", args[0].Kind())
	}
	sep, ok := args[1].(*value.String)
	if !ok {
		return nil, perr.New(perr.TypeError, "_স্ট্রিং-জয়েন expects a স্ট্রিং separator, got %s", args[1].Kind())
	}
	parts := make([]string, len(l.Items))
	for i, item := range l.Items {
		s, ok := item.(*value.String)
		if !ok {
			return nil, perr.New(perr.TypeError, "_স্ট্রিং-জয়েন: element %d is not a স্ট্রিং, got %s", i, item.Kind())
		}
		parts[i] = s.Value
	}
	return &value.String{Value: strings.Join(parts, sep.Value)}, nil
}
