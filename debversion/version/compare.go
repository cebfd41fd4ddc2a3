package version

// MissingEpochStrategy selects how a comparison treats a version that carries
// no epoch when the other side has one.
type MissingEpochStrategy string

const (
	// MissingEpochStrategyZero treats an absent epoch as 0, matching dpkg.
	MissingEpochStrategyZero MissingEpochStrategy = "zero"

	// MissingEpochStrategyAuto excludes the epoch from the comparison when
	// exactly one side carries one, assuming the bare version came from a
	// source that strips epochs.
	MissingEpochStrategyAuto MissingEpochStrategy = "auto"
)

// ComparisonConfig adjusts comparison behavior for version data whose epochs
// may have been stripped in transit. The zero value gives strict dpkg
// semantics.
type ComparisonConfig struct {
	MissingEpochStrategy MissingEpochStrategy
}

// Compare returns 0 if v == other, -1 if v < other, or +1 if v > other,
// ordering by epoch (absent treated as 0), then upstream version, then
// debian revision (absent treated as empty, which orders the same as "0").
// The ordering is total: every pair of Versions compares without error.
func (v Version) Compare(other Version) int {
	return Compare(v, other)
}

// Compare returns 0 if a == b, -1 if a < b, or +1 if a > b.
func Compare(a, b Version) int {
	if diff := compareInts(a.epochOrZero(), b.epochOrZero()); diff != 0 {
		return diff
	}
	return a.compareWithoutEpoch(b)
}

// CompareWithConfig is Compare with cfg applied. Under
// MissingEpochStrategyAuto a one-sided epoch is left out of the comparison;
// every other strategy value falls back to the strict zero treatment.
func (v Version) CompareWithConfig(other Version, cfg ComparisonConfig) int {
	if cfg.MissingEpochStrategy == MissingEpochStrategyAuto {
		if (v.epoch == nil) != (other.epoch == nil) {
			return v.compareWithoutEpoch(other)
		}
	}
	return Compare(v, other)
}

func (v Version) compareWithoutEpoch(other Version) int {
	if diff := compareSegment(v.upstream, other.upstream); diff != 0 {
		return diff
	}
	return compareSegment(v.revision, other.revision)
}

func (v Version) epochOrZero() int {
	if v.epoch == nil {
		return 0
	}
	return *v.epoch
}

// compareSegment orders two upstream-version or revision strings by the dpkg
// rules: alternating runs of non-digit and digit characters are compared in
// turn. Non-digit runs use a modified lexical order in which "~" sorts before
// the end of the run, the end of the run sorts before letters, and letters
// sort before everything else. Digit runs compare numerically with an absent
// run counting as zero.
func compareSegment(a, b string) int {
	i, j := 0, 0
	for i < len(a) || j < len(b) {
		for (i < len(a) && !isASCIIDigit(a[i])) || (j < len(b) && !isASCIIDigit(b[j])) {
			ac, bc := 0, 0
			if i < len(a) {
				ac = charOrder(a[i])
			}
			if j < len(b) {
				bc = charOrder(b[j])
			}
			if ac != bc {
				return compareInts(ac, bc)
			}
			i++
			j++
		}

		// digit runs are compared without materializing integers, so
		// arbitrarily long runs cannot overflow: strip leading zeros, then the
		// longer remaining run wins, then the first differing digit decides
		for i < len(a) && a[i] == '0' {
			i++
		}
		for j < len(b) && b[j] == '0' {
			j++
		}

		firstDiff := 0
		for i < len(a) && isASCIIDigit(a[i]) && j < len(b) && isASCIIDigit(b[j]) {
			if firstDiff == 0 {
				firstDiff = int(a[i]) - int(b[j])
			}
			i++
			j++
		}

		if i < len(a) && isASCIIDigit(a[i]) {
			return 1
		}
		if j < len(b) && isASCIIDigit(b[j]) {
			return -1
		}
		if firstDiff != 0 {
			return compareInts(firstDiff, 0)
		}
	}
	return 0
}

// charOrder weighs a single character for the non-digit run comparison. A
// digit ends the run and weighs the same as running off the end of the
// string.
func charOrder(c byte) int {
	switch {
	case isASCIIDigit(c):
		return 0
	case isASCIILetter(c):
		return int(c)
	case c == '~':
		return -1
	}
	return int(c) + 256
}

func compareInts(a, b int) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	}
	return 0
}
