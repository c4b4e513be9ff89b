package builtin

import (
	"github.com/Shafin098/pakhi-bhasha/perr"
	"github.com/Shafin098/pakhi-bhasha/value"
)

func listBuiltins() []entry {
	return []entry{
		builtin("_লিস্ট-পুশ", listPush),
		builtin("_লিস্ট-পপ", listPop),
		builtin("_লিস্ট-লেন", listLen),
	}
}

func asList(name string, v value.Value) (*value.List, error) {
	l, ok := v.(*value.List)
	if !ok {
		return nil, perr.New(perr.TypeError, "%s expects a লিস্ট, got %s", name, v.Kind())
	}
	return l, nil
}

func indexArg(name string, v value.Value) (int, error) {
	n, ok := v.(*value.Number)
	if !ok {
		return 0, perr.New(perr.TypeError, "%s expects a সংখ্যা index, got %s", name, v.Kind())
	}
	return int(n.Value), nil
}

// listPush appends, or inserts at an index when a third argument is given:
// _লিস্ট-পুশ(list, v) or _লিস্ট-পুশ(list, i, v).
func listPush(args []value.Value) (value.Value, error) {
	switch len(args) {
	case 2:
		l, err := asList("_লিস্ট-পুশ", args[0])
		if err != nil {
			return nil, err
		}
		l.Items = append(l.Items, args[1])
		return value.Nil, nil
	case 3:
		l, err := asList("_লিস্ট-পুশ", args[0])
		if err != nil {
			return nil, err
		}
		i, err := indexArg("_লিস্ট-পুশ", args[1])
		if err != nil {
			return nil, err
		}
		if i < 0 || i > len(l.Items) {
			return nil, perr.New(perr.IndexError, "_লিস্ট-পুশ: index %d out of range", i)
		}
		l.Items = append(l.Items, nil)
		copy(l.Items[i+1:], l.Items[i:])
		l.Items[i] = args[2]
		return value.Nil, nil
	default:
		return nil, perr.New(perr.ArityError, "_লিস্ট-পুশ expects 2 or 3 arguments, got %d", len(args))
	}
}

// listPop removes the last element, or an element at an index when given:
// _লিস্ট-পপ(list) or _লিস্ট-পপ(list, i).
func listPop(args []value.Value) (value.Value, error) {
	if len(args) != 1 && len(args) != 2 {
		return nil, perr.New(perr.ArityError, "_লিস্ট-পপ expects 1 or 2 arguments, got %d", len(args))
	}
	l, err := asList("_লিস্ট-পপ", args[0])
	if err != nil {
		return nil, err
	}
	if len(l.Items) == 0 {
		return nil, perr.New(perr.IndexError, "_লিস্ট-পপ: list is empty")
	}
	i := len(l.Items) - 1
	if len(args) == 2 {
		i, err = indexArg("_লিস্ট-পপ", args[1])
		if err != nil {
			return nil, err
		}
	}
	if i < 0 || i >= len(l.Items) {
		return nil, perr.New(perr.IndexError, "_লিস্ট-পপ: index %d out of range", i)
	}
	removed := l.Items[i]
	l.Items = append(l.Items[:i], l.Items[i+1:]...)
	return removed, nil
}

func listLen(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, perr.New(perr.ArityError, "_লিস্ট-লেন expects 1 argument, got %d", len(args))
	}
	l, err := asList("_লিস্ট-লেন", args[0])
	if err != nil {
		return nil, err
	}
	return &value.Number{Value: float64(len(l.Items))}, nil
}
