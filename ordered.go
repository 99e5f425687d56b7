package exactnum

// OrderedNumber wraps Number with reflexive equality (NaN equals itself)
// and a total order (NaN < -Infinity < finite < +Infinity), for use as a
// collection key (spec §4.7, §6's "Collection-key wrapper").
//
// Number itself is not a safe native Go map key: its Decimal/BigDecimal
// variants hold *big.Int payloads, so Go's built-in == would compare
// pointers rather than values. OrderedNumber.Key() produces a canonical
// string suitable as a real map[string]V key; Less/Compare support a
// sorted-slice or tree-map usage instead.
type OrderedNumber struct {
	n Number
}

// NewOrderedNumber wraps n for collection-key use.
func NewOrderedNumber(n Number) OrderedNumber { return OrderedNumber{n: n} }

// Number returns the wrapped value.
func (o OrderedNumber) Number() Number { return o.n }

// Equal implements the wrapper's reflexive equality: NaN == NaN here, even
// though Number.Equal (IEEE semantics) says otherwise.
func (o OrderedNumber) Equal(other OrderedNumber) bool {
	if o.n.val.isNaN() && other.n.val.isNaN() {
		return true
	}
	return o.n.Equal(other.n)
}

// orderRank places NaN below -Infinity, which is below every finite value
// (including -0 and +0, both rank 0), which is below +Infinity.
func orderRank(n Number) int {
	switch {
	case n.val.isNaN():
		return -2
	case n.val.isNegInf():
		return -1
	case n.val.isPosInf():
		return 1
	default:
		return 0
	}
}

// Compare returns -1, 0, or 1 under the wrapper's total order.
func (o OrderedNumber) Compare(other OrderedNumber) int {
	if o.Equal(other) {
		return 0
	}
	ra, rb := orderRank(o.n), orderRank(other.n)
	if ra != rb {
		return cmpInt(ra, rb)
	}
	cmp, ok := o.n.Compare(other.n)
	if !ok {
		return 0
	}
	return cmp
}

// Less reports whether o sorts before other under the total order.
func (o OrderedNumber) Less(other OrderedNumber) bool { return o.Compare(other) < 0 }

// Key returns a canonical string usable as a native Go map key, consistent
// with Equal: Equal(a, b) implies Key(a) == Key(b).
func (o OrderedNumber) Key() string {
	if o.n.val.isNaN() {
		return "NaN"
	}
	return hexKey(o.n.hash64())
}

// HashKey returns the wrapper-consistent hash (spec §4.7's "used via the
// collection wrapper" hash requirement): every NaN hashes identically, and
// a == b (wrapper Equal) implies HashKey(a) == HashKey(b).
func (o OrderedNumber) HashKey() uint64 { return o.n.hash64() }

func hexKey(h uint64) string {
	const hexDigits = "0123456789abcdef"
	buf := make([]byte, 16)
	for i := 15; i >= 0; i-- {
		buf[i] = hexDigits[h&0xf]
		h >>= 4
	}
	return string(buf)
}
