package semver

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseVersionBasic(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"1.2.3", false},
		{"0.0.0", false},
		{"1.2.3-alpha", false},
		{"1.2.3-alpha.1", false},
		{"1.2.3+build.5", false},
		{"1.2.3-alpha.1+build.5", false},
		{"1.2", true},
		{"1.2.3.4", true},
		{"1.2.3-", true},
		{"01.2.3", true},
		{"1.2.3-01", true},
	}
	for _, tc := range tests {
		_, err := ParseVersion(tc.in, Options{})
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseVersion(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
	}
}

func TestParseVersionLoose(t *testing.T) {
	v, err := ParseVersion(" v1.2.3 ", Options{Loose: true})
	if err != nil {
		t.Fatalf("ParseVersion loose: %v", err)
	}
	if v.Major != 1 || v.Minor != 2 || v.Patch != 3 {
		t.Fatalf("got %+v", v)
	}

	v2, err := ParseVersion("01.02.03", Options{Loose: true})
	if err != nil {
		t.Fatalf("ParseVersion loose leading zero: %v", err)
	}
	if v2.Major != 1 || v2.Minor != 2 || v2.Patch != 3 {
		t.Fatalf("got %+v", v2)
	}
}

func TestVersionStringRoundTrip(t *testing.T) {
	inputs := []string{
		"1.2.3",
		"1.2.3-alpha.1",
		"1.2.3+build.7",
		"1.2.3-alpha.1+build.7",
		"0.0.0-0",
	}
	for _, in := range inputs {
		v, err := ParseVersion(in, Options{})
		if err != nil {
			t.Fatalf("ParseVersion(%q): %v", in, err)
		}
		if v.String() != in {
			t.Errorf("ParseVersion(%q).String() = %q", in, v.String())
		}
	}
}

func TestVersionCompareOrdering(t *testing.T) {
	// Ascending order taken directly from the SemVer 2.0 spec's own
	// precedence example.
	ordered := []string{
		"1.0.0-alpha",
		"1.0.0-alpha.1",
		"1.0.0-alpha.beta",
		"1.0.0-beta",
		"1.0.0-beta.2",
		"1.0.0-beta.11",
		"1.0.0-rc.1",
		"1.0.0",
	}
	versions := make([]*Version, len(ordered))
	for i, s := range ordered {
		v, err := ParseVersion(s, Options{})
		if err != nil {
			t.Fatalf("ParseVersion(%q): %v", s, err)
		}
		versions[i] = v
	}
	for i := 0; i < len(versions)-1; i++ {
		if cmp := versions[i].Compare(versions[i+1]); cmp >= 0 {
			t.Errorf("expected %s < %s, got Compare=%d", versions[i], versions[i+1], cmp)
		}
	}
}

func TestVersionCompareTotalOrder(t *testing.T) {
	a, _ := ParseVersion("1.2.3", Options{})
	b, _ := ParseVersion("1.2.4", Options{})
	if a.Compare(b) != -b.Compare(a) {
		t.Fatalf("Compare is not antisymmetric")
	}
	if a.Compare(a) != 0 {
		t.Fatalf("Compare is not reflexive")
	}
}

func TestVersionEqualsIgnoresBuildForOrdering(t *testing.T) {
	a, _ := ParseVersion("1.2.3+build1", Options{})
	b, _ := ParseVersion("1.2.3+build2", Options{})
	if a.Compare(b) != 0 {
		t.Fatalf("Compare should ignore build metadata")
	}
	if a.Equals(b) {
		t.Fatalf("Equals should distinguish build metadata")
	}
}

func TestVersionIsPrerelease(t *testing.T) {
	v, _ := ParseVersion("1.2.3-rc.1", Options{})
	if !v.IsPrerelease() || v.IsStable() {
		t.Fatalf("expected %s to be a prerelease", v)
	}
	v2, _ := ParseVersion("1.2.3", Options{})
	if v2.IsPrerelease() || !v2.IsStable() {
		t.Fatalf("expected %s to be stable", v2)
	}
}

func TestVersionStruct(t *testing.T) {
	v, err := ParseVersion("1.2.3-alpha.1+build.1", Options{})
	if err != nil {
		t.Fatalf("ParseVersion: %v", err)
	}
	want := &Version{
		Major: 1, Minor: 2, Patch: 3,
		Pre:   []preID{{str: "alpha"}, {isNum: true, num: 1}},
		Build: []string{"build", "1"},
		Raw:   "1.2.3-alpha.1+build.1",
		Opts:  Options{},
	}
	if diff := cmp.Diff(want, v, cmp.AllowUnexported(Version{}, preID{})); diff != "" {
		t.Errorf("ParseVersion mismatch (-want +got):\n%s", diff)
	}
}

func ExampleParseVersion() {
	v, err := ParseVersion("1.2.3-beta.2+exp.sha.5114f85", Options{})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(v)
	fmt.Println(v.IsPrerelease())
	// Output:
	// 1.2.3-beta.2+exp.sha.5114f85
	// true
}
