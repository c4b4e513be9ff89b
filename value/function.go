package value

// Builtin is one of the two shapes a ফাং value can take — the other,
// Closure, is defined in package eval because it needs to hold an
// *env.Environment and env already imports value (a Closure living here
// would create an import cycle). Fn closes over whatever host capability it
// needs; builtin.go constructs these, it never exposes package os directly.
type Builtin struct {
	Name string
	Fn   func(args []Value) (Value, error)
}

func (*Builtin) Kind() Kind       { return FunctionKind }
func (*Builtin) String() string { return "<ফাং>" }
