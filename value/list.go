package value

import "strings"

// List is লিস্ট: a mutable, heterogeneous, reference-typed sequence.
// Grounded on the teacher's Array (objects/objects.go), generalized from a
// fixed Elements slice to a type that builtin/list.go's _লিস্ট-পুশ/_লিস্ট-পপ
// mutate in place — every binding that holds this *List shares one backing
// array, matching spec.md §4.3's reference-semantics rule.
type List struct {
	Items []Value
}

func (*List) Kind() Kind { return ListKind }

func (l *List) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, item := range l.Items {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(item.String())
	}
	b.WriteByte(']')
	return b.String()
}
