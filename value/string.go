package value

// String is স্ট্রিং. Its canonical form (used by দেখাও and nested inside
// লিস্ট/রেকর্ড) is the bare text, matching the teacher's String.ToString —
// quoting only happens for রেকর্ড keys, handled in record.go.
type String struct {
	Value string
}

func (*String) Kind() Kind     { return StringKind }
func (s *String) String() string { return s.Value }
