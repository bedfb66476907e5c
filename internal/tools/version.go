package tools

import (
	"regexp"

	"github.com/blang/semver"
)

var versionRegex = regexp.MustCompile(`\d+\.\d+\.\d+`)

// ExtractVersion extracts the leading semantic version from a tool's
// version output (e.g. "v22.1.0" -> "22.1.0"). ok is false when no
// version-shaped substring is present.
func ExtractVersion(output string) (string, bool) {
	match := versionRegex.FindString(output)
	if match == "" {
		return "", false
	}
	return match, true
}

// meetsMinimum reports whether a version string satisfies a minimum
// major version. Malformed versions never meet the minimum.
func meetsMinimum(version string, minMajor uint64) bool {
	parsed, err := semver.ParseTolerant(version)
	if err != nil {
		return false
	}
	return parsed.Major >= minMajor
}
