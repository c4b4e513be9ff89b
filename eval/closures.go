package eval

import (
	"github.com/Shafin098/pakhi-bhasha/ast"
	"github.com/Shafin098/pakhi-bhasha/env"
	"github.com/Shafin098/pakhi-bhasha/module"
	"github.com/Shafin098/pakhi-bhasha/value"
)

// Closure is the other shape a ফাং value can take (value.Builtin is the
// host-capability-free one). It lives here, not in package value, because
// it must hold an *env.Environment and env already imports value — see
// value/function.go's doc comment.
type Closure struct {
	Name    string
	Params  []*ast.Identifier
	Body    *ast.BlockStatement
	Defined *env.Environment // the scope active when ফাং was declared
}

func (*Closure) Kind() value.Kind { return value.FunctionKind }
func (*Closure) String() string  { return "<ফাং>" }

// moduleRef is the value bound to a মডিউল name. Its Kind sits outside the
// six kinds spec.md §3 tabulates on purpose: spec.md §4.3 says "using one
// as a value is an error", and giving it a sentinel kind means every
// existing type-switch over the six real kinds already rejects it without
// special-casing.
type moduleRef struct {
	Path string
	Mod  *module.Module
}

const moduleKind value.Kind = "মডিউল"

func (*moduleRef) Kind() value.Kind { return moduleKind }
func (m *moduleRef) String() string { return "<মডিউল " + m.Path + ">" }
