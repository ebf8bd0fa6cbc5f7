// Package version parses and compares dotted version strings and exposes
// the build version.
package version

import (
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/ruslanmv/factoryai/internal/errdefs"
)

// Version is the factoryai build version, overridable with -ldflags "-X".
var Version = "0.1.0"

// Current returns the build version. A value that is not valid semver
// falls back to "0.1.0".
func Current() string {
	if _, err := semver.NewVersion(Version); err != nil {
		return "0.1.0"
	}
	return Version
}

// Parse splits a dotted version string into its integer parts.
func Parse(s string) ([]int, error) {
	parts := strings.Split(s, ".")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, errdefs.Wrap(errdefs.CodeInvalidVersion, err, "Invalid version string: %s", s)
		}
		out = append(out, n)
	}
	return out, nil
}

// Compare returns -1, 0 or 1 as a is less than, equal to or greater than b.
// Tuples compare element-wise; on an equal prefix the shorter one is
// smaller, so Compare("1.2", "1.2.0") is -1.
func Compare(a, b string) (int, error) {
	va, err := Parse(a)
	if err != nil {
		return 0, err
	}
	vb, err := Parse(b)
	if err != nil {
		return 0, err
	}
	for i := 0; i < len(va) && i < len(vb); i++ {
		switch {
		case va[i] < vb[i]:
			return -1, nil
		case va[i] > vb[i]:
			return 1, nil
		}
	}
	switch {
	case len(va) < len(vb):
		return -1, nil
	case len(va) > len(vb):
		return 1, nil
	}
	return 0, nil
}
