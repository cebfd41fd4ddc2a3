package version

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pkgsmith/debversion/internal/stringutil"
)

// operator group only matches on range operators (GT, LT, GTE, LTE, EQ);
// version group matches on everything except for whitespace, operators, and
// the boolean separators
var constraintPartPattern = regexp.MustCompile(`(?P<operator>[><=]*)\s*(?P<version>[^><=\s,|]+)`)

// Constraint is a boolean expression over version ranges: comma-separated
// units are ANDed together and ||-separated groups are ORed. The empty
// constraint is satisfied by every version.
type Constraint struct {
	raw string
	// only supports or'ing a group of and'ed units
	units [][]constraintUnit
}

type constraintUnit struct {
	operator Operator
	raw      string
	version  Version
}

// ParseConstraint parses a constraint phrase such as
// ">= 2.1.1-1, < 3:1.0 || = 1.5~rc2". Unit versions are parsed eagerly, so an
// invalid version anywhere in the phrase fails construction rather than
// surfacing later during evaluation.
func ParseConstraint(phrase string) (Constraint, error) {
	if strings.TrimSpace(phrase) == "" {
		return Constraint{raw: phrase}, nil
	}
	if strings.ContainsAny(phrase, "()") {
		return Constraint{}, fmt.Errorf("grouping by parentheses is not supported in constraints")
	}

	var units [][]constraintUnit
	for _, orPart := range strings.Split(phrase, "||") {
		andUnits, err := parseConstraintUnits(orPart)
		if err != nil {
			return Constraint{}, err
		}
		units = append(units, andUnits)
	}

	return Constraint{raw: phrase, units: units}, nil
}

// MustParseConstraint is meant for testing only, do not use within the
// library.
func MustParseConstraint(phrase string) Constraint {
	c, err := ParseConstraint(phrase)
	if err != nil {
		panic(err)
	}
	return c
}

func parseConstraintUnits(phrase string) ([]constraintUnit, error) {
	matches := stringutil.MatchAllCaptureGroups(constraintPartPattern, phrase)
	if len(matches) == 0 {
		return nil, fmt.Errorf("unable to parse constraint phrase: %q", phrase)
	}

	units := make([]constraintUnit, 0, len(matches))
	for _, match := range matches {
		op, err := ParseOperator(match["operator"])
		if err != nil {
			return nil, fmt.Errorf("unable to parse constraint operator=%q: %w", match["operator"], err)
		}

		ver, err := Parse(match["version"])
		if err != nil {
			return nil, fmt.Errorf("unable to parse constraint version=%q: %w", match["version"], err)
		}

		units = append(units, constraintUnit{
			operator: op,
			raw:      match["version"],
			version:  ver,
		})
	}

	return units, nil
}

// Satisfied reports whether the given version is within the constraint.
func (c Constraint) Satisfied(v Version) bool {
	if len(c.units) == 0 {
		// an empty constraint is always satisfied
		return true
	}

	for _, andGroup := range c.units {
		groupSatisfied := true
		for _, unit := range andGroup {
			if !unit.satisfied(Compare(v, unit.version)) {
				groupSatisfied = false
				break
			}
		}
		if groupSatisfied {
			return true
		}
	}
	return false
}

// String returns the raw constraint phrase, or "none" for the empty
// constraint.
func (c Constraint) String() string {
	if c.raw == "" {
		return "none"
	}
	return c.raw
}

func (u constraintUnit) satisfied(comparison int) bool {
	switch u.operator {
	case EQ:
		return comparison == 0
	case GT:
		return comparison > 0
	case GTE:
		return comparison >= 0
	case LT:
		return comparison < 0
	case LTE:
		return comparison <= 0
	}
	panic(fmt.Errorf("unknown operator: %s", u.operator))
}
