/*
Package debversion provides convenience operations over raw Debian package
version strings: bulk sorting in strict and lenient flavors, newest-candidate
selection, and constraint evaluation. The underlying parse, compare, and
constraint machinery lives in the version subpackage.
*/
package debversion

import (
	"errors"
	"fmt"
	"sort"

	"github.com/pkgsmith/debversion/debversion/logger"
	"github.com/pkgsmith/debversion/debversion/version"
	"github.com/pkgsmith/debversion/internal/log"
)

// ErrNoVersionsProvided indicates that a selection operation was invoked with
// nothing to select from.
var ErrNoVersionsProvided = errors.New("no versions provided")

// SetLogger routes all library log messages to the given logger.
func SetLogger(l logger.Logger) {
	log.Log = l
}

// Sort parses every raw version string and returns the inputs reordered
// ascending. The first unparseable entry aborts the sort with an error
// wrapping the specific violation.
func Sort(raws []string) ([]string, error) {
	entries, err := parseAll(raws)
	if err != nil {
		return nil, err
	}
	return sortedRaws(entries), nil
}

// SortLenient sorts the parseable entries ascending and drops malformed ones,
// logging each drop at the warning level.
func SortLenient(raws []string) []string {
	entries := make([]entry, 0, len(raws))
	for _, raw := range raws {
		v, err := version.Parse(raw)
		if err != nil {
			log.Warnf("unable to parse version %q: %v (dropping from sort)", raw, err)
			continue
		}
		entries = append(entries, entry{raw: raw, version: v})
	}
	return sortedRaws(entries)
}

// Newest returns the logically newest of the given raw version strings, as it
// was given. Among entries that compare equal the earliest one wins.
func Newest(raws ...string) (string, error) {
	if len(raws) == 0 {
		return "", ErrNoVersionsProvided
	}

	newestRaw := raws[0]
	newest, err := version.Parse(raws[0])
	if err != nil {
		return "", fmt.Errorf("unable to parse version %q: %w", raws[0], err)
	}

	for _, raw := range raws[1:] {
		v, err := version.Parse(raw)
		if err != nil {
			return "", fmt.Errorf("unable to parse version %q: %w", raw, err)
		}
		if version.Compare(v, newest) > 0 {
			newest = v
			newestRaw = raw
		}
	}
	return newestRaw, nil
}

// Satisfies reports whether the raw version is within the constraint phrase.
func Satisfies(raw, phrase string) (bool, error) {
	v, err := version.Parse(raw)
	if err != nil {
		return false, fmt.Errorf("unable to parse version %q: %w", raw, err)
	}
	c, err := version.ParseConstraint(phrase)
	if err != nil {
		return false, fmt.Errorf("unable to parse constraint %q: %w", phrase, err)
	}
	return c.Satisfied(v), nil
}

type entry struct {
	raw     string
	version version.Version
}

func sortedRaws(entries []entry) []string {
	sort.SliceStable(entries, func(i, j int) bool {
		return version.Compare(entries[i].version, entries[j].version) < 0
	})

	sorted := make([]string, 0, len(entries))
	for _, e := range entries {
		sorted = append(sorted, e.raw)
	}
	return sorted
}

func parseAll(raws []string) ([]entry, error) {
	entries := make([]entry, 0, len(raws))
	for _, raw := range raws {
		v, err := version.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("unable to parse version %q: %w", raw, err)
		}
		entries = append(entries, entry{raw: raw, version: v})
	}
	return entries, nil
}
