package version

// The helpers below rewrite a version by reconstructing it with one component
// changed and re-validating that component, so an invalid Version is never
// observable. Each returns a copy; the receiver is untouched.

// WithEpoch returns a copy of v carrying the given epoch. Negative epochs are
// rejected with ErrInvalidEpoch.
func (v Version) WithEpoch(epoch int) (Version, error) {
	if epoch < 0 {
		return Version{}, ErrInvalidEpoch
	}
	v.epoch = &epoch
	return v, nil
}

// WithoutEpoch returns a copy of v with no epoch component.
func (v Version) WithoutEpoch() Version {
	v.epoch = nil
	return v
}

// WithUpstreamVersion returns a copy of v with the given upstream version,
// validated under the character rules matching v's current shape: embedded
// dashes are only accepted while a revision is present.
func (v Version) WithUpstreamVersion(upstream string) (Version, error) {
	if err := validateUpstreamVersion(upstream, v.revision != ""); err != nil {
		return Version{}, err
	}
	v.upstream = upstream
	return v, nil
}

// WithRevision returns a copy of v carrying the given debian revision.
func (v Version) WithRevision(revision string) (Version, error) {
	if err := validateRevision(revision); err != nil {
		return Version{}, err
	}
	v.revision = revision
	return v, nil
}

// WithoutRevision returns a copy of v with no revision segment. The upstream
// version is re-validated under the without-revision rules: an embedded dash
// that was legal alongside a revision would render to a string that re-parses
// differently, so it is rejected here.
func (v Version) WithoutRevision() (Version, error) {
	if err := validateUpstreamVersion(v.upstream, false); err != nil {
		return Version{}, err
	}
	v.revision = ""
	return v, nil
}

// MapUpstreamVersion applies f to the upstream version and re-validates the
// result.
func (v Version) MapUpstreamVersion(f func(string) string) (Version, error) {
	return v.WithUpstreamVersion(f(v.upstream))
}

// MapRevision applies f to the revision, if one is present, and re-validates
// the result. A version with no revision is returned unchanged.
func (v Version) MapRevision(f func(string) string) (Version, error) {
	if v.revision == "" {
		return v, nil
	}
	return v.WithRevision(f(v.revision))
}
