package semver

import "fmt"

// ParseError reports that an input string did not match the version or
// range grammar.
type ParseError struct {
	Kind  string // "version", "comparator", "range", "identifier"
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("semver: invalid %s %q", e.Kind, e.Input)
}

// OutOfRangeError reports a numeric field or input string that exceeded one
// of the package's safety caps (MaxSafeInteger, MaxLength).
type OutOfRangeError struct {
	Field string
	Value string
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("semver: %s out of range: %s", e.Field, e.Value)
}

// ArgumentError reports a semantically invalid combination of arguments to
// an operation, such as an inc() release kind that cannot apply to the
// given version.
type ArgumentError struct {
	Op  string
	Msg string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("semver: %s: %s", e.Op, e.Msg)
}

// TypeError reports that a Range was supplied where a Comparator was
// required, or vice versa.
type TypeError struct {
	Expected string
	Got      string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("semver: expected %s, got %s", e.Expected, e.Got)
}
