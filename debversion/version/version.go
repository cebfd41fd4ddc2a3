// Package version parses, renders, compares, and rewrites Debian package
// version strings of the form [epoch:]upstream-version[-debian-revision].
//
// Versions are immutable once constructed: Parse is the only way to obtain
// one from raw text, and the With/Map helpers return validated copies rather
// than modifying in place. Comparison implements the dpkg ordering rules
// natively and is total, so it never returns an error.
package version

import "strconv"

// Version is a validated Debian package version. The zero value is not
// meaningful; obtain a Version through Parse.
type Version struct {
	epoch    *int
	upstream string
	revision string // empty means no revision segment was present
}

// Epoch returns the epoch and whether one was present in the source text. An
// absent epoch compares as zero but renders without a "0:" prefix.
func (v Version) Epoch() (int, bool) {
	if v.epoch == nil {
		return 0, false
	}
	return *v.epoch, true
}

// UpstreamVersion returns the upstream version component.
func (v Version) UpstreamVersion() string {
	return v.upstream
}

// Revision returns the debian revision and whether one was present.
func (v Version) Revision() (string, bool) {
	return v.revision, v.revision != ""
}

// String renders the version as [epoch:]upstream-version[-debian-revision],
// omitting the epoch and revision segments along with their separators when
// absent. The rendering of a parsed version re-parses to an equal Version.
func (v Version) String() string {
	result := v.upstream
	if v.epoch != nil {
		result = strconv.Itoa(*v.epoch) + ":" + result
	}
	if v.revision != "" {
		result += "-" + v.revision
	}
	return result
}
