package semver

import "sort"

// Satisfies reports whether the version string v satisfies the range
// string rng. Predicate functions in this file swallow a parse failure
// into a false result rather than surfacing it. Callers that need the
// error use ParseVersion/ParseRange directly.
func Satisfies(v, rng string, opts Options) bool {
	pv, err := ParseVersion(v, opts)
	if err != nil {
		return false
	}
	pr, err := ParseRange(rng, opts)
	if err != nil {
		return false
	}
	return pr.Test(pv)
}

// MaxSatisfying returns the greatest of versions that satisfies rng, or
// "" if none does or rng fails to parse.
func MaxSatisfying(versions []string, rng string, opts Options) string {
	pr, err := ParseRange(rng, opts)
	if err != nil {
		return ""
	}
	var best *Version
	var bestRaw string
	for _, s := range versions {
		v, err := ParseVersion(s, opts)
		if err != nil {
			continue
		}
		if !pr.Test(v) {
			continue
		}
		if best == nil || v.Compare(best) > 0 {
			best = v
			bestRaw = s
		}
	}
	return bestRaw
}

// MinSatisfying returns the least of versions that satisfies rng, or "" if
// none does or rng fails to parse.
func MinSatisfying(versions []string, rng string, opts Options) string {
	pr, err := ParseRange(rng, opts)
	if err != nil {
		return ""
	}
	var best *Version
	var bestRaw string
	for _, s := range versions {
		v, err := ParseVersion(s, opts)
		if err != nil {
			continue
		}
		if !pr.Test(v) {
			continue
		}
		if best == nil || v.Compare(best) < 0 {
			best = v
			bestRaw = s
		}
	}
	return bestRaw
}

// Gtr reports whether v is greater than every version matched by rng.
func Gtr(v, rng string, opts Options) bool {
	pv, err := ParseVersion(v, opts)
	if err != nil {
		return false
	}
	pr, err := ParseRange(rng, opts)
	if err != nil {
		return false
	}
	return pr.Gtr(pv)
}

// Ltr reports whether v is lower than every version matched by rng.
func Ltr(v, rng string, opts Options) bool {
	pv, err := ParseVersion(v, opts)
	if err != nil {
		return false
	}
	pr, err := ParseRange(rng, opts)
	if err != nil {
		return false
	}
	return pr.Ltr(pv)
}

// Intersects reports whether r1 and r2 share at least one satisfying
// version.
func Intersects(r1, r2 string, opts Options) bool {
	pr1, err := ParseRange(r1, opts)
	if err != nil {
		return false
	}
	pr2, err := ParseRange(r2, opts)
	if err != nil {
		return false
	}
	return pr1.Intersects(pr2)
}

// Subset reports whether every version satisfying sub also satisfies dom.
func Subset(sub, dom string, opts Options) bool {
	prSub, err := ParseRange(sub, opts)
	if err != nil {
		return false
	}
	prDom, err := ParseRange(dom, opts)
	if err != nil {
		return false
	}
	return prSub.Subset(prDom)
}

// Diff returns the first field at which v1 and v2 differ: "major", "minor",
// "patch", "premajor", "preminor", "prepatch", "prerelease", or "" if they
// are equal. The higher of the two versions is the one consulted for the
// "pre"-prefixed kinds: a main-version bump is classified as premajor/
// preminor/prepatch rather than plain major/minor/patch when the higher
// version itself carries a pre-release tag, since it hasn't been released
// yet. Useful for classifying the size of a version bump, e.g. for
// changelog grouping.
func Diff(v1, v2 string, opts Options) string {
	a, err := ParseVersion(v1, opts)
	if err != nil {
		return ""
	}
	b, err := ParseVersion(v2, opts)
	if err != nil {
		return ""
	}
	lo, hi := a, b
	if lo.Compare(hi) > 0 {
		lo, hi = hi, lo
	}

	hiIsPre := hi.IsPrerelease()
	switch {
	case lo.Major != hi.Major:
		if hiIsPre {
			return "premajor"
		}
		return "major"
	case lo.Minor != hi.Minor:
		if hiIsPre {
			return "preminor"
		}
		return "minor"
	case lo.Patch != hi.Patch:
		if hiIsPre {
			return "prepatch"
		}
		return "patch"
	case a.ComparePre(b) != 0 || len(a.Pre) != len(b.Pre):
		return "prerelease"
	default:
		return ""
	}
}

// Inc returns the string form of applying release/identifier/identifierBase
// to v, or "" if v fails to parse or the transition itself errors.
func Inc(v, release, identifier string, identifierBase *bool, opts Options) string {
	pv, err := ParseVersion(v, opts)
	if err != nil {
		return ""
	}
	nv, err := pv.Inc(release, identifier, identifierBase)
	if err != nil {
		return ""
	}
	return nv.String()
}

// Sort sorts versions ascending in place, dropping strings that fail to
// parse to the end in their original relative order.
func Sort(versions []string, opts Options) {
	sortVersions(versions, opts, false)
}

// Rsort sorts versions descending in place.
func Rsort(versions []string, opts Options) {
	sortVersions(versions, opts, true)
}

func sortVersions(versions []string, opts Options, desc bool) {
	type parsed struct {
		raw string
		v   *Version
		ok  bool
	}
	items := make([]parsed, len(versions))
	for i, s := range versions {
		v, err := ParseVersion(s, opts)
		items[i] = parsed{raw: s, v: v, ok: err == nil}
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].ok != items[j].ok {
			return items[i].ok
		}
		if !items[i].ok {
			return false
		}
		cmp := items[i].v.Compare(items[j].v)
		if desc {
			return cmp > 0
		}
		return cmp < 0
	})
	for i, p := range items {
		versions[i] = p.raw
	}
}

// Coerce extracts the first "major[.minor[.patch]]" run of digits found in
// s and returns it as a Version, filling missing trailing fields with 0,
// or nil if no such run exists.
func Coerce(s string, opts Options) *Version {
	if len(s) > MaxLength*4 {
		s = s[:MaxLength*4]
	}
	m := coerceRegex.FindStringSubmatch(s)
	if m == nil {
		return nil
	}
	major, err := parseNumericField("major", m[1])
	if err != nil {
		return nil
	}
	var minor, patch uint64
	if m[2] != "" {
		minor, err = parseNumericField("minor", m[2])
		if err != nil {
			return nil
		}
	}
	if m[3] != "" {
		patch, err = parseNumericField("patch", m[3])
		if err != nil {
			return nil
		}
	}
	return mkVersion(major, minor, patch, nil, opts)
}

// Simplify attempts to re-express rng, restricted to the supplied
// versions, as a reduced range string. It returns rng unchanged if no
// simplification is possible. Mirrors node-semver's range-simplification
// behavior of collapsing a range down to a single bound when every
// supplied version inside it shares the same edges.
func Simplify(versions []string, rng string, opts Options) string {
	pr, err := ParseRange(rng, opts)
	if err != nil {
		return rng
	}
	var matched []*Version
	for _, s := range versions {
		v, err := ParseVersion(s, opts)
		if err != nil {
			continue
		}
		if pr.Test(v) {
			matched = append(matched, v)
		}
	}
	if len(matched) == 0 {
		return rng
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Compare(matched[j]) < 0 })

	contiguous := true
	lo, hi := matched[0], matched[len(matched)-1]
	for _, s := range versions {
		v, err := ParseVersion(s, opts)
		if err != nil {
			continue
		}
		if v.Compare(lo) >= 0 && v.Compare(hi) <= 0 && !pr.Test(v) {
			contiguous = false
			break
		}
	}
	if !contiguous {
		return rng
	}
	if len(matched) == 1 {
		return matched[0].String()
	}
	return ">=" + matched[0].String() + " <=" + matched[len(matched)-1].String()
}
