package semver

// Subset reports whether every version satisfying r also satisfies o. This
// is decided alternative-by-alternative: r (a disjunction) is a subset of
// o when each of r's alternatives is, on its own, a subset of at least one
// of o's alternatives. This is the same reduction node-semver's subset.js
// performs instead of computing a full union containment proof. An
// alternative of r that is covered only by the union of several of o's
// alternatives, and by none of them alone, makes the result false.
func (r *Range) Subset(o *Range) bool {
	for _, a := range r.Set {
		if alternativeIsEmpty(a) {
			continue
		}
		if !alternativeSubsetOfRange(a, o) {
			return false
		}
	}
	return true
}

func alternativeIsEmpty(alt []*Comparator) bool {
	for _, c := range alt {
		if c.isEmpty() {
			return true
		}
	}
	b := combinedBounds(alt)
	if b.pinned != nil {
		return false
	}
	if b.lo != nil && b.hi != nil {
		cmp := b.lo.Compare(b.hi)
		if cmp > 0 {
			return true
		}
		if cmp == 0 && (b.loEx || b.hiEx) {
			return true
		}
	}
	return false
}

func alternativeSubsetOfRange(a []*Comparator, o *Range) bool {
	for _, b := range o.Set {
		if alternativeSubset(a, b) {
			return true
		}
	}
	return false
}

type bounds struct {
	lo, hi     *Version
	loEx, hiEx bool
	pinned     *Version
}

func combinedBounds(alt []*Comparator) bounds {
	var b bounds
	for _, c := range alt {
		if c.IsAny {
			continue
		}
		switch c.Op {
		case OpEQ:
			b.pinned = c.Ver
		case OpGT, OpGTE:
			if b.lo == nil || c.Ver.Compare(b.lo) > 0 || (c.Ver.Compare(b.lo) == 0 && c.Op == OpGT && !b.loEx) {
				b.lo = c.Ver
				b.loEx = c.Op == OpGT
			}
		case OpLT, OpLTE:
			if b.hi == nil || c.Ver.Compare(b.hi) < 0 || (c.Ver.Compare(b.hi) == 0 && c.Op == OpLT && !b.hiEx) {
				b.hi = c.Ver
				b.hiEx = c.Op == OpLT
			}
		}
	}
	return b
}

// alternativeSubset reports whether every version satisfying a also
// satisfies b.
func alternativeSubset(a, b []*Comparator) bool {
	ab := combinedBounds(a)
	bb := combinedBounds(b)

	if ab.pinned != nil {
		return testBounds(bb, ab.pinned)
	}
	if bb.pinned != nil {
		// b only admits one version; a admits a whole interval unless its
		// inclusive bounds collapse to exactly that point.
		return ab.lo != nil && ab.hi != nil && !ab.loEx && !ab.hiEx &&
			ab.lo.Compare(ab.hi) == 0 && testBounds(bb, ab.lo)
	}
	return lowerSubset(ab.lo, ab.loEx, bb.lo, bb.loEx) && upperSubset(ab.hi, ab.hiEx, bb.hi, bb.hiEx)
}

func testBounds(b bounds, v *Version) bool {
	if b.pinned != nil {
		return v.Equals(b.pinned)
	}
	if b.lo != nil {
		cmp := v.Compare(b.lo)
		if cmp < 0 || (cmp == 0 && b.loEx) {
			return false
		}
	}
	if b.hi != nil {
		cmp := v.Compare(b.hi)
		if cmp > 0 || (cmp == 0 && b.hiEx) {
			return false
		}
	}
	return true
}

func lowerSubset(aLo *Version, aLoEx bool, bLo *Version, bLoEx bool) bool {
	if bLo == nil {
		return true
	}
	if aLo == nil {
		return false
	}
	cmp := aLo.Compare(bLo)
	switch {
	case cmp > 0:
		return true
	case cmp < 0:
		return false
	default:
		return !(bLoEx && !aLoEx)
	}
}

func upperSubset(aHi *Version, aHiEx bool, bHi *Version, bHiEx bool) bool {
	if bHi == nil {
		return true
	}
	if aHi == nil {
		return false
	}
	cmp := aHi.Compare(bHi)
	switch {
	case cmp < 0:
		return true
	case cmp > 0:
		return false
	default:
		return !(bHiEx && !aHiEx)
	}
}
