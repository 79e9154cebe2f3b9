// Package semver implements a SemVer 2.0 parser, comparator, and npm-style
// range engine: version parsing and ordering, comparator intersection, range
// desugaring (tilde, caret, hyphen, x-ranges, ||-unions), satisfaction and
// subset queries, and version increment.
package semver

import "regexp"

// MaxLength is the maximum accepted length, in bytes, of any version or
// range string handed to a constructor in this package.
const MaxLength = 256

// MaxSafeInteger is the largest numeric value accepted for major, minor,
// patch, or a numeric pre-release identifier.
const MaxSafeInteger = 1<<53 - 1

// The sub-patterns below build the grammar bottom-up out of
// string-concatenated fragments that are compiled once into package-level
// regexps, rather than one monolithic literal.
const (
	numericIdentifierLoose  = `\d+`
	numericIdentifierStrict = `0|[1-9]\d*`

	nonNumericIdentifier = `\d*[a-zA-Z-][a-zA-Z0-9-]*`

	preReleaseIdentifierLoose  = `(?:` + numericIdentifierLoose + `|` + nonNumericIdentifier + `)`
	preReleaseIdentifierStrict = `(?:` + numericIdentifierStrict + `|` + nonNumericIdentifier + `)`

	preReleaseLoose  = `(?:-?(` + preReleaseIdentifierLoose + `(?:\.` + preReleaseIdentifierLoose + `)*))`
	preReleaseStrict = `(?:-(` + preReleaseIdentifierStrict + `(?:\.` + preReleaseIdentifierStrict + `)*))`

	buildIdentifier = `[0-9A-Za-z-]+`
	build           = `(?:\+(` + buildIdentifier + `(?:\.` + buildIdentifier + `)*))`

	xRangeIdentifierLoose  = numericIdentifierLoose + `|x|X|\*`
	xRangeIdentifierStrict = numericIdentifierStrict + `|x|X|\*`

	xRangePlainLoose = `[v=\s]*(` + xRangeIdentifierLoose + `)` +
		`(?:\.(` + xRangeIdentifierLoose + `)` +
		`(?:\.(` + xRangeIdentifierLoose + `)` +
		`(?:` + preReleaseLoose + `)?` + build + `?` +
		`)?)?`

	xRangePlainStrict = `[v=\s]*(` + xRangeIdentifierStrict + `)` +
		`(?:\.(` + xRangeIdentifierStrict + `)` +
		`(?:\.(` + xRangeIdentifierStrict + `)` +
		`(?:` + preReleaseStrict + `)?` + build + `?` +
		`)?)?`
)

// Anchored, compiled matchers. Compiled once at package init, read-only
// thereafter. There is nothing expensive enough here to warrant hiding the
// compilation behind a sync.Once, so these are plain package vars.
var (
	fullPlainLoose  = `[v=\s]*` + `(` + numericIdentifierLoose + `)` + `\.` + `(` + numericIdentifierLoose + `)` + `\.` + `(` + numericIdentifierLoose + `)` + preReleaseLoose + `?` + build + `?`
	fullPlainStrict = `v?` + `(` + numericIdentifierStrict + `)` + `\.` + `(` + numericIdentifierStrict + `)` + `\.` + `(` + numericIdentifierStrict + `)` + preReleaseStrict + `?` + build + `?`

	fullLoosePattern  = regexp.MustCompile(`^` + fullPlainLoose + `$`)
	fullStrictPattern = regexp.MustCompile(`^` + fullPlainStrict + `$`)

	looseIdentPattern  = regexp.MustCompile(`^` + preReleaseIdentifierLoose + `$`)
	strictIdentPattern = regexp.MustCompile(`^` + preReleaseIdentifierStrict + `$`)

	buildIdentPattern = regexp.MustCompile(`^` + buildIdentifier + `$`)

	// Hyphen halves are wrapped non-capturing so the inner major/minor/
	// patch/pre/build groups of the first half land at indices 1-5 and the
	// second half at 6-10.
	hyphenRangeLoosePattern  = regexp.MustCompile(`^\s*(?:` + xRangePlainLoose + `)\s+-\s+(?:` + xRangePlainLoose + `)\s*$`)
	hyphenRangeStrictPattern = regexp.MustCompile(`^\s*(?:` + xRangePlainStrict + `)\s+-\s+(?:` + xRangePlainStrict + `)\s*$`)

	// Token = optional operator (group 1) + partial (groups 2-6: major,
	// minor, patch, pre, build).
	tokenPatternLoose  = regexp.MustCompile(`^(<=|>=|<|>|=|~>|~|\^)?` + xRangePlainLoose + `$`)
	tokenPatternStrict = regexp.MustCompile(`^(<=|>=|<|>|=|~>|~|\^)?` + xRangePlainStrict + `$`)

	opWSPattern = regexp.MustCompile(`([<>=~^])(?:\s+|\s*v)`)

	splitOrPattern  = regexp.MustCompile(`\s*\|\|\s*`)
	splitAndPattern = regexp.MustCompile(`\s+`)

	coerceRegex = regexp.MustCompile(`(?:^|[^\d])(\d{1,16})(?:\.(\d{1,16}))?(?:\.(\d{1,16}))?(?:$|[^\d])`)
)
