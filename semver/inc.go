package semver

// Inc returns the version that results from applying the given release
// transition. release must be one of "major",
// "minor", "patch", "premajor", "preminor", "prepatch", "prerelease",
// "pre", or "release". identifier, when non-empty, names the pre-release
// tag to apply ("rc", "beta", ...). identifierBase selects the numeric
// base a newly-created pre-release identifier starts from: nil means
// "unset" (base 0), a pointer to true means base 1, a pointer to false
// means base 0 with these differences from nil: a new tag is written as
// the bare identifier with no numeric slot after it, an empty identifier
// is an error, and so is requesting an identifier that already exactly
// matches the current pre-release tag.
func (v *Version) Inc(release, identifier string, identifierBase *bool) (*Version, error) {
	nv := &Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch, Pre: append([]preID(nil), v.Pre...), Opts: v.Opts}

	switch release {
	case "major":
		if nv.Minor != 0 || nv.Patch != 0 || len(nv.Pre) == 0 {
			nv.Major++
			nv.Minor = 0
			nv.Patch = 0
		}
		nv.Pre = nil
	case "minor":
		if nv.Patch != 0 || len(nv.Pre) == 0 {
			nv.Minor++
			nv.Patch = 0
		}
		nv.Pre = nil
	case "patch":
		if len(nv.Pre) == 0 {
			nv.Patch++
		}
		nv.Pre = nil
	case "premajor":
		nv.Major++
		nv.Minor, nv.Patch, nv.Pre = 0, 0, nil
		if err := nv.applyPre(identifier, identifierBase); err != nil {
			return nil, err
		}
	case "preminor":
		nv.Minor++
		nv.Patch, nv.Pre = 0, nil
		if err := nv.applyPre(identifier, identifierBase); err != nil {
			return nil, err
		}
	case "prepatch":
		nv.Pre = nil
		nv.Patch++
		if err := nv.applyPre(identifier, identifierBase); err != nil {
			return nil, err
		}
	case "prerelease":
		if len(nv.Pre) == 0 {
			nv.Patch++
		}
		if err := nv.applyPre(identifier, identifierBase); err != nil {
			return nil, err
		}
	case "pre":
		if err := nv.applyPre(identifier, identifierBase); err != nil {
			return nil, err
		}
	case "release":
		if len(nv.Pre) == 0 {
			return nil, &ArgumentError{Op: "inc", Msg: "release: no pre-release to release from"}
		}
		nv.Pre = nil
	default:
		return nil, &ArgumentError{Op: "inc", Msg: "unknown release type " + release}
	}

	// Every transition drops build metadata: build is orthogonal to the
	// release lineage.
	nv.Build = nil
	nv.Raw = nv.format()
	return nv, nil
}

// applyPre implements the "pre" release kind: set or advance the
// pre-release identifier list in place.
func (v *Version) applyPre(identifier string, identifierBase *bool) error {
	explicitFalse := identifierBase != nil && !*identifierBase
	truthy := identifierBase != nil && *identifierBase

	var base uint64
	if truthy {
		base = 1
	}

	if identifier == "" && explicitFalse {
		return &ArgumentError{Op: "inc", Msg: "identifier is empty"}
	}

	if len(v.Pre) == 0 {
		v.Pre = []preID{{isNum: true, num: base}}
	} else {
		incremented := false
		for i := len(v.Pre) - 1; i >= 0; i-- {
			if v.Pre[i].isNum {
				v.Pre[i].num++
				incremented = true
				break
			}
		}
		if !incremented {
			if explicitFalse && identifier == joinPre(v.Pre) {
				return &ArgumentError{Op: "inc", Msg: "identifier already exists"}
			}
			v.Pre = append(v.Pre, preID{isNum: true, num: base})
		}
	}

	if identifier != "" {
		var replacement []preID
		if explicitFalse {
			replacement = []preID{{str: identifier}}
		} else {
			replacement = []preID{{str: identifier}, {isNum: true, num: base}}
		}
		if v.Pre[0].String() == identifier {
			if len(v.Pre) < 2 || !v.Pre[1].isNum {
				v.Pre = replacement
			}
		} else {
			v.Pre = replacement
		}
	}
	return nil
}

func joinPre(pre []preID) string {
	s := ""
	for i, id := range pre {
		if i > 0 {
			s += "."
		}
		s += id.String()
	}
	return s
}
