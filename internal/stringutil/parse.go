package stringutil

import "regexp"

// MatchCaptureGroups takes a regular expression and string and returns all of
// the named capture group results in a map. An unmatched string yields an
// empty map.
func MatchCaptureGroups(regEx *regexp.Regexp, str string) map[string]string {
	return captureGroups(regEx, regEx.FindStringSubmatch(str))
}

// MatchAllCaptureGroups is MatchCaptureGroups applied to every
// non-overlapping match in the string, in order.
func MatchAllCaptureGroups(regEx *regexp.Regexp, str string) []map[string]string {
	var results []map[string]string
	for _, match := range regEx.FindAllStringSubmatch(str, -1) {
		results = append(results, captureGroups(regEx, match))
	}
	return results
}

func captureGroups(regEx *regexp.Regexp, match []string) map[string]string {
	results := make(map[string]string)
	for i, name := range regEx.SubexpNames() {
		if i > 0 && i <= len(match) && name != "" {
			results[name] = match[i]
		}
	}
	return results
}
