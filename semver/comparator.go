package semver

import "strings"

// Operator is one of the five primitive comparator relations, or the empty
// string for exact equality.
type Operator string

const (
	OpLT  Operator = "<"
	OpLTE Operator = "<="
	OpEQ  Operator = ""
	OpGTE Operator = ">="
	OpGT  Operator = ">"
)

// Comparator is a single primitive op-version test. A Comparator with
// IsAny set matches every version regardless of Op/Ver, modeled as an
// explicit tagged variant rather than an out-of-band sentinel value.
type Comparator struct {
	Op    Operator
	Ver   *Version
	IsAny bool
	Opts  Options
}

// ParseComparator parses a single "op version" primitive, such as ">=1.2.3"
// or "1.2.3". An empty string parses to the ANY sentinel.
func ParseComparator(s string, opts Options) (*Comparator, error) {
	raw := s
	s = strings.TrimSpace(s)
	if s == "" {
		return &Comparator{Op: OpEQ, IsAny: true, Opts: opts}, nil
	}
	op, rest := splitOperator(s)
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return &Comparator{Op: op, IsAny: true, Opts: opts}, nil
	}
	v, err := ParseVersion(rest, opts)
	if err != nil {
		return nil, &ParseError{Kind: "comparator", Input: raw}
	}
	return &Comparator{Op: op, Ver: v, Opts: opts}, nil
}

func splitOperator(s string) (Operator, string) {
	switch {
	case strings.HasPrefix(s, "<="):
		return OpLTE, s[2:]
	case strings.HasPrefix(s, ">="):
		return OpGTE, s[2:]
	case strings.HasPrefix(s, "<"):
		return OpLT, s[1:]
	case strings.HasPrefix(s, ">"):
		return OpGT, s[1:]
	case strings.HasPrefix(s, "="):
		return OpEQ, s[1:]
	default:
		return OpEQ, s
	}
}

// String renders the canonical "op+version" form, or "" for the ANY sentinel.
func (c *Comparator) String() string {
	if c.IsAny {
		return ""
	}
	return string(c.Op) + c.Ver.String()
}

// Equals reports structural equality between two comparators.
func (c *Comparator) Equals(o *Comparator) bool {
	if c.IsAny || o.IsAny {
		return c.IsAny == o.IsAny
	}
	return c.Op == o.Op && c.Ver.Equals(o.Ver)
}

// Test reports whether v satisfies c.
func (c *Comparator) Test(v *Version) bool {
	if c.IsAny || v == nil {
		return true
	}
	cmp := v.Compare(c.Ver)
	switch c.Op {
	case OpLT:
		return cmp < 0
	case OpLTE:
		return cmp <= 0
	case OpGTE:
		return cmp >= 0
	case OpGT:
		return cmp > 0
	default:
		return cmp == 0
	}
}

// isEmpty reports whether c can never be satisfied by any version, the
// "<0.0.0-0" sentinel, generalized (for strict mode, where
// strict mode) to any "<0.0.0" when pre-releases are not included.
func (c *Comparator) isEmpty() bool {
	if c.IsAny || c.Op != OpLT {
		return false
	}
	v := c.Ver
	if v.Major != 0 || v.Minor != 0 || v.Patch != 0 {
		return false
	}
	if len(v.Pre) == 1 && v.Pre[0].isNum && v.Pre[0].num == 0 {
		return true
	}
	if len(v.Pre) == 0 && !c.Opts.IncludePrerelease {
		return true
	}
	return false
}

// lowerBound returns the version below which c excludes everything, and
// whether that bound itself is excluded; nil means "no lower bound" (-inf).
func (c *Comparator) lowerBound() (v *Version, exclusive bool) {
	if c.IsAny {
		return nil, false
	}
	switch c.Op {
	case OpGT:
		return c.Ver, true
	case OpGTE, OpEQ:
		return c.Ver, false
	default:
		return nil, false
	}
}

// upperBound is the dual of lowerBound; nil means "no upper bound" (+inf).
func (c *Comparator) upperBound() (v *Version, exclusive bool) {
	if c.IsAny {
		return nil, false
	}
	switch c.Op {
	case OpLT:
		return c.Ver, true
	case OpLTE, OpEQ:
		return c.Ver, false
	default:
		return nil, false
	}
}

// Intersects reports whether some version satisfies both c and o, decided
// via a bound-overlap comparison: an interval test rather than a
// one-version test, adapted to a single op+version pair.
func (c *Comparator) Intersects(o *Comparator) bool {
	if c.isEmpty() || o.isEmpty() {
		return false
	}
	cLo, cLoEx := c.lowerBound()
	cHi, cHiEx := c.upperBound()
	oLo, oLoEx := o.lowerBound()
	oHi, oHiEx := o.upperBound()
	return boundsCompatible(cLo, cLoEx, oHi, oHiEx) && boundsCompatible(oLo, oLoEx, cHi, cHiEx)
}

// AsComparator extracts r's single comparator when r desugars to exactly
// one alternative holding exactly one primitive test, and reports a
// TypeError otherwise. This is the inverse of the implicit Range-from-
// Comparator wrapping ParseRange performs, for callers that parsed
// generic range input but need a single op+version pair, e.g. to feed an
// index lookup keyed on one bound.
func AsComparator(r *Range) (*Comparator, error) {
	if len(r.Set) != 1 || len(r.Set[0]) != 1 {
		return nil, &TypeError{Expected: "Comparator", Got: "Range"}
	}
	return r.Set[0][0], nil
}

// boundsCompatible reports whether a value satisfying "lo [<]= x" can also
// satisfy "x [<]= hi", i.e. whether the half-open interval [lo, hi] is
// non-empty given the two exclusivity flags.
func boundsCompatible(lo *Version, loExclusive bool, hi *Version, hiExclusive bool) bool {
	if lo == nil || hi == nil {
		return true
	}
	cmp := lo.Compare(hi)
	switch {
	case cmp < 0:
		return true
	case cmp > 0:
		return false
	default:
		return !(loExclusive || hiExclusive)
	}
}
