package interp

import (
	"strconv"
	"strings"
)

// Version represents an interpreter version.
type Version struct {
	Raw   string // the raw version string (e.g., "3.11", "2.7.18")
	Major int
	Minor int
}

// ParseVersion parses a dotted version string. Unparseable components are
// left at zero; parsing is best-effort and never fails.
func ParseVersion(raw string) Version {
	v := Version{Raw: strings.TrimSpace(raw)}
	parts := strings.Split(v.Raw, ".")
	if len(parts) > 0 {
		v.Major, _ = strconv.Atoi(parts[0])
	}
	if len(parts) > 1 {
		// Tolerate suffixes like "7rc1"
		digits := parts[1]
		for i, r := range digits {
			if r < '0' || r > '9' {
				digits = digits[:i]
				break
			}
		}
		v.Minor, _ = strconv.Atoi(digits)
	}
	return v
}

// String returns the string representation of the version.
func (v Version) String() string {
	if v.Raw != "" {
		return v.Raw
	}
	return strconv.Itoa(v.Major) + "." + strconv.Itoa(v.Minor)
}

// Compare returns -1, 0, or 1 ordering v against other by major then minor.
func (v Version) Compare(other Version) int {
	if v.Major != other.Major {
		if v.Major < other.Major {
			return -1
		}
		return 1
	}
	if v.Minor != other.Minor {
		if v.Minor < other.Minor {
			return -1
		}
		return 1
	}
	return 0
}

// AtMost reports whether v is less than or equal to major.minor.
func (v Version) AtMost(major, minor int) bool {
	return v.Compare(Version{Major: major, Minor: minor}) <= 0
}

// IsZero reports whether the version is unknown.
func (v Version) IsZero() bool {
	return v.Raw == "" && v.Major == 0 && v.Minor == 0
}
