package version

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// Lint reports every rule violation in raw rather than only the first one
// Parse would return. The result is nil for a parseable string; otherwise
// each collected error matches one of the Err* sentinels under errors.Is.
// Parse remains the authority on which single error wins for a given input.
func Lint(raw string) error {
	if raw == "" {
		return ErrEmpty
	}

	var errs error

	remainder := raw
	if i := strings.IndexByte(raw, ':'); i != -1 {
		if _, err := parseEpoch(raw[:i]); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("epoch %q: %w", raw[:i], err))
		}
		remainder = raw[i+1:]
	}

	if remainder == "" {
		return multierror.Append(errs, fmt.Errorf("after epoch separator: %w", ErrEmpty))
	}

	if i := strings.LastIndexByte(remainder, '-'); i != -1 {
		upstream, revision := remainder[:i], remainder[i+1:]
		if err := validateUpstreamVersion(upstream, true); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("upstream version %q: %w", upstream, err))
		}
		if err := validateRevision(revision); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("debian revision %q: %w", revision, err))
		}
		return errs
	}

	if err := validateUpstreamVersion(remainder, false); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("upstream version %q: %w", remainder, err))
	}

	return errs
}
