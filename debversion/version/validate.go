package version

import "strings"

// Character rules follow Debian policy section 5.6.12: the upstream version
// holds alphanumerics plus ". + : ~", and may additionally hold "-" only when
// a debian revision is present; the revision holds alphanumerics plus
// "+ . ~ :" and never a dash, since the rightmost dash is the separator.
const (
	upstreamPunctuation             = `.+:~`
	upstreamWithRevisionPunctuation = `.+-:~`
	revisionPunctuation             = `+.~:`
)

func isASCIIDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isASCIIAlphanumeric(c byte) bool {
	return isASCIIDigit(c) || isASCIILetter(c)
}

// validateUpstreamVersion checks an upstream version component. withRevision
// selects the character set that permits embedded dashes, which is only
// unambiguous when a revision was split off the raw string.
func validateUpstreamVersion(s string, withRevision bool) error {
	if s == "" {
		return ErrEmptyUpstream
	}
	if !isASCIIDigit(s[0]) {
		return ErrUpstreamStartsWithNonDigit
	}
	punctuation := upstreamPunctuation
	if withRevision {
		punctuation = upstreamWithRevisionPunctuation
	}
	if !hasOnlyValidChars(s, punctuation) {
		return ErrUpstreamInvalidCharacters
	}
	return nil
}

// validateRevision checks a debian revision component. Parsed revisions can
// never contain a dash; the character rule still applies to values supplied
// through the With/Map helpers.
func validateRevision(s string) error {
	if s == "" {
		return ErrEmptyRevision
	}
	if !hasOnlyValidChars(s, revisionPunctuation) {
		return ErrRevisionInvalidCharacters
	}
	return nil
}

// hasOnlyValidChars reports whether s consists solely of ASCII alphanumerics
// and the given punctuation characters. Comparing bytes rather than runes
// means any multi-byte character fails the check, which is intended: version
// strings are ASCII by policy.
func hasOnlyValidChars(s, punctuation string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !isASCIIAlphanumeric(c) && strings.IndexByte(punctuation, c) == -1 {
			return false
		}
	}
	return true
}
