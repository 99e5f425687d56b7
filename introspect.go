package exactnum

// Info is the small record returned by Number.Info(), so external code
// never needs to pattern-match the private NumericValue tag (spec §4.8).
type Info struct {
	Carrier       string
	Flag          ApproximationFlag
	IsExact       bool
	PrecisionBits int // only meaningful when Flag == Transcendental; 0 otherwise
}

// Info returns n's introspection record.
func (n Number) Info() Info {
	info := Info{
		Carrier: n.val.representation(),
		Flag:    n.flag,
		IsExact: n.flag == Exact,
	}
	if n.flag == Transcendental {
		info.PrecisionBits = transcendentalPrecisionBits
	}
	return info
}
