package value

import (
	"strconv"

	"github.com/Shafin098/pakhi-bhasha/digits"
)

// Number is সংখ্যা. Pakhi has one numeric type, not an integer/float split —
// grounded on the teacher's Integer/Float pair (objects/objects.go), merged
// into a single float64-backed variant per spec.md §4.3.
type Number struct {
	Value float64
}

func (*Number) Kind() Kind { return NumberKind }

// String renders the number with Bengali digits, dropping the fractional
// part when the value is integral (স্ট্রিং(৩.০) reads "৩", not "৩.০").
func (n *Number) String() string {
	s := strconv.FormatFloat(n.Value, 'f', -1, 64)
	return digits.ToBengali(s)
}
