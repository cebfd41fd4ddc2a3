package version

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name       string
	version    string
	constraint string
	satisfied  bool
}

func (c *testCase) tName() string {
	if c.name != "" {
		return c.name
	}

	return fmt.Sprintf("ver='%s'const='%s'", c.version, strings.ReplaceAll(c.constraint, " ", ""))
}

func (c *testCase) assertVersionConstraint(t *testing.T, constraint Constraint) {
	t.Helper()

	version, err := Parse(c.version)
	require.NoError(t, err, "unexpected error from Parse: %v", err)

	assert.Equal(t, c.satisfied, constraint.Satisfied(version), "unexpected constraint check result")
}

type comparisonFixture struct {
	a        string
	b        string
	expected int
}

// loadComparisonFixtures reads fixture lines of the form "a OP b" where OP is
// one of "<", "=", ">". Blank lines and comment lines are skipped.
func loadComparisonFixtures(t *testing.T, filename string) []comparisonFixture {
	t.Helper()

	file, err := os.Open(filepath.Join("testdata", filename))
	require.NoError(t, err, "unable to open fixture file")
	defer file.Close()

	var fixtures []comparisonFixture
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "# ") || strings.HasPrefix(line, "// ") {
			continue
		}

		pieces := strings.Split(line, " ")
		require.Lenf(t, pieces, 3, "malformed fixture line %q", line)

		fixtures = append(fixtures, comparisonFixture{
			a:        pieces[0],
			b:        pieces[2],
			expected: expectedResult(t, pieces[1]),
		})
	}
	require.NoError(t, scanner.Err())
	require.NotEmpty(t, fixtures)

	return fixtures
}

func expectedResult(t *testing.T, comparator string) int {
	t.Helper()

	switch comparator {
	case "<":
		return -1
	case "=":
		return 0
	case ">":
		return 1
	}
	t.Fatalf("unknown comparator %q", comparator)
	return 0
}

// fixtureVersions returns the distinct version strings appearing in the
// fixtures, parsed.
func fixtureVersions(t *testing.T, fixtures []comparisonFixture) []Version {
	t.Helper()

	seen := make(map[string]struct{})
	var versions []Version
	for _, fix := range fixtures {
		for _, raw := range []string{fix.a, fix.b} {
			if _, ok := seen[raw]; ok {
				continue
			}
			seen[raw] = struct{}{}
			versions = append(versions, MustParse(raw))
		}
	}
	return versions
}
