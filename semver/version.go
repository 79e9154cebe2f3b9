package semver

import (
	"strconv"
	"strings"
)

// Options controls parsing and satisfaction leniency, threaded by value
// through every constructor in this package.
type Options struct {
	// Loose accepts leading "v"/"=v", surrounding whitespace, and numeric
	// fields with leading zeros.
	Loose bool
	// IncludePrerelease disables the pre-release containment gate in Range.Test.
	IncludePrerelease bool
}

// preID is one dotted segment of a pre-release identifier list, tagged as
// either numeric or opaque string rather than left as an untyped union.
type preID struct {
	isNum bool
	num   uint64
	str   string
}

func newPreID(s string) preID {
	if n, err := strconv.ParseUint(s, 10, 64); err == nil && n <= MaxSafeInteger {
		// A leading zero (e.g. "01") never parses as numeric per the SemVer
		// grammar, even though strconv would happily accept it.
		if !(len(s) > 1 && s[0] == '0') {
			return preID{isNum: true, num: n}
		}
	}
	return preID{str: s}
}

func (id preID) String() string {
	if id.isNum {
		return strconv.FormatUint(id.num, 10)
	}
	return id.str
}

func comparePreIDs(a, b preID) int {
	switch {
	case a.isNum && b.isNum:
		switch {
		case a.num < b.num:
			return -1
		case a.num > b.num:
			return 1
		default:
			return 0
		}
	case a.isNum && !b.isNum:
		return -1
	case !a.isNum && b.isNum:
		return 1
	default:
		return strings.Compare(a.str, b.str)
	}
}

// Version is the parsed form of a SemVer 2.0 version string.
type Version struct {
	Major, Minor, Patch uint64
	Pre                 []preID
	Build               []string
	Raw                 string
	Opts                Options
}

// ParseVersion parses s as a SemVer version. It rejects strings longer than
// MaxLength, strings that do not match the grammar (strict unless
// opts.Loose), and numeric fields that exceed MaxSafeInteger.
func ParseVersion(s string, opts Options) (*Version, error) {
	raw := s
	if len(s) > MaxLength {
		return nil, &OutOfRangeError{Field: "input length", Value: strconv.Itoa(len(s))}
	}
	if opts.Loose {
		s = strings.TrimSpace(s)
	}

	pattern := fullStrictPattern
	if opts.Loose {
		pattern = fullLoosePattern
	}
	m := pattern.FindStringSubmatch(s)
	if m == nil {
		return nil, &ParseError{Kind: "version", Input: raw}
	}

	major, err := parseNumericField("major", m[1])
	if err != nil {
		return nil, err
	}
	minor, err := parseNumericField("minor", m[2])
	if err != nil {
		return nil, err
	}
	patch, err := parseNumericField("patch", m[3])
	if err != nil {
		return nil, err
	}

	var pre []preID
	if m[4] != "" {
		pre, err = parsePreRelease(m[4], opts)
		if err != nil {
			return nil, err
		}
	}

	var build []string
	if m[5] != "" {
		build, err = parseBuild(m[5])
		if err != nil {
			return nil, err
		}
	}

	v := &Version{Major: major, Minor: minor, Patch: patch, Pre: pre, Build: build, Opts: opts}
	v.Raw = v.format()
	return v, nil
}

func parseNumericField(name, s string) (uint64, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil || n > MaxSafeInteger {
		return 0, &OutOfRangeError{Field: name, Value: s}
	}
	return n, nil
}

func parsePreRelease(s string, opts Options) ([]preID, error) {
	pattern := strictIdentPattern
	if opts.Loose {
		pattern = looseIdentPattern
	}
	parts := strings.Split(s, ".")
	ids := make([]preID, len(parts))
	for i, p := range parts {
		if !pattern.MatchString(p) {
			return nil, &ParseError{Kind: "identifier", Input: p}
		}
		ids[i] = newPreID(p)
	}
	return ids, nil
}

func parseBuild(s string) ([]string, error) {
	parts := strings.Split(s, ".")
	for _, p := range parts {
		if !buildIdentPattern.MatchString(p) {
			return nil, &ParseError{Kind: "identifier", Input: p}
		}
	}
	return parts, nil
}

// String returns the canonical "major.minor.patch[-pre][+build]" form.
func (v *Version) String() string {
	return v.format()
}

func (v *Version) format() string {
	var b strings.Builder
	b.WriteString(strconv.FormatUint(v.Major, 10))
	b.WriteByte('.')
	b.WriteString(strconv.FormatUint(v.Minor, 10))
	b.WriteByte('.')
	b.WriteString(strconv.FormatUint(v.Patch, 10))
	if len(v.Pre) > 0 {
		b.WriteByte('-')
		for i, id := range v.Pre {
			if i > 0 {
				b.WriteByte('.')
			}
			b.WriteString(id.String())
		}
	}
	if len(v.Build) > 0 {
		b.WriteByte('+')
		b.WriteString(strings.Join(v.Build, "."))
	}
	return b.String()
}

// IsPrerelease reports whether v has a non-empty pre-release tag.
func (v *Version) IsPrerelease() bool {
	return len(v.Pre) > 0
}

// IsStable is the complement of IsPrerelease.
func (v *Version) IsStable() bool {
	return !v.IsPrerelease()
}

// TripletEquals reports whether v and o share the same major.minor.patch,
// ignoring pre-release and build.
func (v *Version) TripletEquals(o *Version) bool {
	return v.Major == o.Major && v.Minor == o.Minor && v.Patch == o.Patch
}

// Equals reports full structural equality, including build metadata.
func (v *Version) Equals(o *Version) bool {
	return v.Compare(o) == 0 && compareBuildIdentifiers(v.Build, o.Build) == 0
}

// CompareMain lexicographically compares the numeric (major, minor, patch) triple.
func (v *Version) CompareMain(o *Version) int {
	switch {
	case v.Major != o.Major:
		return cmpUint(v.Major, o.Major)
	case v.Minor != o.Minor:
		return cmpUint(v.Minor, o.Minor)
	default:
		return cmpUint(v.Patch, o.Patch)
	}
}

func cmpUint(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// ComparePre compares the pre-release identifier lists of v and o.
// A version with a pre-release tag orders before the same triple without
// one; otherwise identifiers compare pairwise, and a shorter, otherwise
// equal, list is smaller.
func (v *Version) ComparePre(o *Version) int {
	return comparePreLists(v.Pre, o.Pre)
}

func comparePreLists(a, b []preID) int {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	if len(a) == 0 {
		return 1
	}
	if len(b) == 0 {
		return -1
	}
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if cmp := comparePreIDs(a[i], b[i]); cmp != 0 {
			return cmp
		}
	}
	return cmpInt(len(a), len(b))
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// CompareBuild compares build-metadata identifier lists pairwise like
// ComparePre, but string-only (no numeric promotion), and an empty list
// orders before a non-empty one. Build metadata never affects Compare's
// result. This is exposed for callers that want a deterministic tiebreak;
// Sort and Rsort do not use it and keep equal versions in input order.
func (v *Version) CompareBuild(o *Version) int {
	return compareBuildIdentifiers(v.Build, o.Build)
}

func compareBuildIdentifiers(a, b []string) int {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	if len(a) == 0 {
		return -1
	}
	if len(b) == 0 {
		return 1
	}
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if cmp := strings.Compare(a[i], b[i]); cmp != 0 {
			return cmp
		}
	}
	return cmpInt(len(a), len(b))
}

// Compare returns -1, 0, or 1 as v is less than, equal to, or greater than
// o, ignoring build metadata.
func (v *Version) Compare(o *Version) int {
	if cmp := v.CompareMain(o); cmp != 0 {
		return cmp
	}
	return v.ComparePre(o)
}
