package version

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pkgsmith/debversion/internal/stringutil"
)

var epochPattern = regexp.MustCompile(`^(?P<epoch>[0-9]+):`)

// Parse parses a raw version string of the form
// [epoch:]upstream-version[-debian-revision] into a Version.
//
// The parse is strict: each component is validated before a Version is
// constructed, and the first violation is returned as one of the Err*
// sentinel errors with no partial result. Violations are reported in a fixed
// order: emptiness of the whole string, then the epoch, then emptiness of the
// remainder, then the upstream version, then the revision.
func Parse(raw string) (Version, error) {
	if raw == "" {
		return Version{}, ErrEmpty
	}

	var epoch *int
	remainder := raw

	// everything before the first colon is an epoch candidate; later colons
	// belong to the upstream version
	if i := strings.IndexByte(raw, ':'); i != -1 {
		value, err := parseEpoch(raw[:i])
		if err != nil {
			return Version{}, err
		}
		epoch = &value
		remainder = raw[i+1:]
	}

	if remainder == "" {
		return Version{}, ErrEmpty
	}

	// upstream versions legitimately contain dashes (e.g. 5.10.104-tegra),
	// so only the rightmost dash separates the revision
	if i := strings.LastIndexByte(remainder, '-'); i != -1 {
		upstream, revision := remainder[:i], remainder[i+1:]
		if err := validateUpstreamVersion(upstream, true); err != nil {
			return Version{}, err
		}
		if err := validateRevision(revision); err != nil {
			return Version{}, err
		}
		return Version{epoch: epoch, upstream: upstream, revision: revision}, nil
	}

	if err := validateUpstreamVersion(remainder, false); err != nil {
		return Version{}, err
	}
	return Version{epoch: epoch, upstream: remainder}, nil
}

// MustParse is meant for testing only, do not use within the library.
func MustParse(raw string) Version {
	v, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return v
}

// ExtractEpoch pulls the epoch off the front of a raw version string without
// parsing the rest of it, returning nil when no well-formed epoch prefix is
// present. Useful for deciding whether an external data source carries epochs
// at all (see ComparisonConfig).
func ExtractEpoch(raw string) *int {
	groups := stringutil.MatchCaptureGroups(epochPattern, raw)
	candidate, ok := groups["epoch"]
	if !ok {
		return nil
	}
	epoch, err := strconv.Atoi(candidate)
	if err != nil {
		return nil
	}
	return &epoch
}

func parseEpoch(candidate string) (int, error) {
	if candidate == "" {
		return 0, ErrInvalidEpoch
	}
	for i := 0; i < len(candidate); i++ {
		if !isASCIIDigit(candidate[i]) {
			return 0, ErrInvalidEpoch
		}
	}
	epoch, err := strconv.Atoi(candidate)
	if err != nil {
		// all-digit candidates only fail here by exceeding the int range
		return 0, ErrInvalidEpoch
	}
	return epoch, nil
}
