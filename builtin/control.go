package builtin

import (
	"github.com/Shafin098/pakhi-bhasha/perr"
	"github.com/Shafin098/pakhi-bhasha/value"
)

func controlBuiltins() []entry {
	return []entry{
		builtin("_এরর", raiseError),
	}
}

// raiseError raises a runtime error carrying the given message, per
// spec.md §4.5. It is the only builtin whose whole purpose is to fail.
func raiseError(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, perr.New(perr.ArityError, "_এরর expects 1 argument, got %d", len(args))
	}
	msg, ok := args[0].(*value.String)
	if !ok {
		return nil, perr.New(perr.TypeError, "_এরর expects a স্ট্রিং, got %s", args[0].Kind())
	}
	return nil, perr.New(perr.UserError, "%s", msg.Value)
}
