package semver

import (
	"fmt"
	"testing"
)

func TestIncBasic(t *testing.T) {
	tests := []struct {
		in, release, want string
	}{
		{"1.2.3", "major", "2.0.0"},
		{"1.2.3", "minor", "1.3.0"},
		{"1.2.3", "patch", "1.2.4"},
		{"1.2.3-alpha.1", "major", "2.0.0"},
		{"1.0.0-alpha.1", "patch", "1.0.0"},
		{"1.2.3", "premajor", "2.0.0-0"},
		{"1.2.3", "preminor", "1.3.0-0"},
		{"1.2.3", "prepatch", "1.2.4-0"},
		{"1.2.3", "prerelease", "1.2.4-0"},
		{"1.2.3-0", "prerelease", "1.2.3-1"},
	}
	for _, tc := range tests {
		v, err := ParseVersion(tc.in, Options{})
		if err != nil {
			t.Fatalf("ParseVersion(%q): %v", tc.in, err)
		}
		nv, err := v.Inc(tc.release, "", nil)
		if err != nil {
			t.Fatalf("Inc(%q, %q): %v", tc.in, tc.release, err)
		}
		if nv.String() != tc.want {
			t.Errorf("Inc(%q, %q) = %q, want %q", tc.in, tc.release, nv.String(), tc.want)
		}
	}
}

func TestIncPreWithIdentifier(t *testing.T) {
	v, _ := ParseVersion("1.2.3", Options{})
	base := true
	nv, err := v.Inc("prerelease", "rc", &base)
	if err != nil {
		t.Fatalf("Inc: %v", err)
	}
	if nv.String() != "1.2.4-rc.1" {
		t.Fatalf("got %q, want 1.2.4-rc.1", nv.String())
	}

	v2, _ := ParseVersion("1.2.4-rc.1", Options{})
	nv2, err := v2.Inc("prerelease", "rc", &base)
	if err != nil {
		t.Fatalf("Inc: %v", err)
	}
	if nv2.String() != "1.2.4-rc.2" {
		t.Fatalf("got %q, want 1.2.4-rc.2", nv2.String())
	}
}

func TestIncPreIdentifierBaseFalseRejectsReuse(t *testing.T) {
	v, _ := ParseVersion("1.2.3-rc", Options{})
	base := false
	_, err := v.Inc("pre", "rc", &base)
	if err == nil {
		t.Fatalf("expected error reusing exact identifier with identifierBase=false")
	}
}

func TestIncReleaseRequiresPrerelease(t *testing.T) {
	v, _ := ParseVersion("1.2.3", Options{})
	if _, err := v.Inc("release", "", nil); err == nil {
		t.Fatalf("expected error releasing a non-prerelease version")
	}
}

func TestIncUnknownRelease(t *testing.T) {
	v, _ := ParseVersion("1.2.3", Options{})
	if _, err := v.Inc("bogus", "", nil); err == nil {
		t.Fatalf("expected error for unknown release kind")
	}
}

func TestIncDropsBuildMetadata(t *testing.T) {
	v, _ := ParseVersion("1.2.3+build.5", Options{})
	nv, err := v.Inc("patch", "", nil)
	if err != nil {
		t.Fatalf("Inc: %v", err)
	}
	if nv.String() != "1.2.4" {
		t.Fatalf("got %q, want build metadata dropped", nv.String())
	}
}

func ExampleVersion_Inc() {
	v, _ := ParseVersion("1.2.3", Options{})
	nv, _ := v.Inc("minor", "", nil)
	fmt.Println(nv)
	// Output:
	// 1.3.0
}
