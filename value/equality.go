package value

// Equal implements spec.md §4.4's equality rules: numbers/booleans/strings
// compare by value, লিস্ট/রেকর্ড compare structurally (deep, order-sensitive
// for lists, key-set-sensitive for records), ফাং and শূন্য compare by
// identity — two distinct closures are never equal even with identical
// source, and শূন্য equals only শূন্য.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Null:
		_, ok := b.(Null)
		return ok
	case *Number:
		bv, ok := b.(*Number)
		return ok && av.Value == bv.Value
	case *Boolean:
		bv, ok := b.(*Boolean)
		return ok && av.Value == bv.Value
	case *String:
		bv, ok := b.(*String)
		return ok && av.Value == bv.Value
	case *List:
		bv, ok := b.(*List)
		if !ok || len(av.Items) != len(bv.Items) {
			return false
		}
		for i := range av.Items {
			if !Equal(av.Items[i], bv.Items[i]) {
				return false
			}
		}
		return true
	case *Record:
		bv, ok := b.(*Record)
		if !ok || len(av.Keys) != len(bv.Keys) {
			return false
		}
		for _, k := range av.Keys {
			bvv, ok := bv.Get(k)
			if !ok || !Equal(av.Pairs[k], bvv) {
				return false
			}
		}
		return true
	default:
		// ফাং (Builtin or eval.Closure): reference identity.
		return a == b
	}
}
