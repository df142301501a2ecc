// Package semver holds semantic version values reported by the binaries.
package semver

import (
	"fmt"
	"strconv"
	"strings"
)

type (
	// V is structured semantic version representation
	V struct {
		Major, Minor, Patch uint
		PreRelease          string
		BuildMetadata       []string
	}
)

func (v V) String() string {
	buf := strings.Builder{}
	buf.WriteString(strconv.FormatUint(uint64(v.Major), 10))
	buf.WriteByte('.')
	buf.WriteString(strconv.FormatUint(uint64(v.Minor), 10))
	buf.WriteByte('.')
	buf.WriteString(strconv.FormatUint(uint64(v.Patch), 10))
	if v.PreRelease != "" {
		buf.WriteByte('-')
		buf.WriteString(v.PreRelease)
	}
	if len(v.BuildMetadata) > 0 {
		buf.WriteByte('+')
		buf.WriteString(strings.Join(v.BuildMetadata, "."))
	}

	return buf.String()
}

// Parse - parses "MAJOR.MINOR.PATCH[-PRERELEASE][+BUILD]", leading "v" is allowed.
func Parse(s string) (V, error) {
	v := V{}
	rest := strings.TrimPrefix(strings.TrimSpace(s), "v")
	if i := strings.IndexByte(rest, '+'); i >= 0 {
		if rest[i+1:] == "" {
			return V{}, fmt.Errorf("semver.Parse: empty build metadata in %q", s)
		}
		v.BuildMetadata = strings.Split(rest[i+1:], ".")
		rest = rest[:i]
	}
	if i := strings.IndexByte(rest, '-'); i >= 0 {
		if rest[i+1:] == "" {
			return V{}, fmt.Errorf("semver.Parse: empty pre-release in %q", s)
		}
		v.PreRelease = rest[i+1:]
		rest = rest[:i]
	}
	parts := strings.Split(rest, ".")
	if len(parts) != 3 {
		return V{}, fmt.Errorf("semver.Parse: %q is not MAJOR.MINOR.PATCH", s)
	}
	nums := [3]*uint{&v.Major, &v.Minor, &v.Patch}
	for i, p := range parts {
		n, err := strconv.ParseUint(p, 10, 0)
		if err != nil {
			return V{}, fmt.Errorf("semver.Parse: invalid number %q in %q", p, s)
		}
		*nums[i] = uint(n)
	}
	return v, nil
}

// MustParse - same as Parse, but panics on error.
func MustParse(s string) V {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}
