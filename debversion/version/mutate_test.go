package version

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionWithEpoch(t *testing.T) {
	tests := []struct {
		name     string
		version  string
		epoch    int
		expected string
		wantErr  error
	}{
		{name: "add epoch", version: "1.0-1", epoch: 2, expected: "2:1.0-1"},
		{name: "replace epoch", version: "1:1.0", epoch: 3, expected: "3:1.0"},
		{name: "zero epoch renders explicitly", version: "1.0", epoch: 0, expected: "0:1.0"},
		{name: "negative epoch is rejected", version: "1.0", epoch: -1, wantErr: ErrInvalidEpoch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := MustParse(tt.version).WithEpoch(tt.epoch)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result.String())
		})
	}
}

func TestVersionWithoutEpoch(t *testing.T) {
	assert.Equal(t, "1.0-1", MustParse("5:1.0-1").WithoutEpoch().String())
	assert.Equal(t, "1.0", MustParse("1.0").WithoutEpoch().String())
}

func TestVersionWithUpstreamVersion(t *testing.T) {
	tests := []struct {
		name     string
		version  string
		upstream string
		expected string
		wantErr  error
	}{
		{name: "replace upstream", version: "1.0-1", upstream: "2.0", expected: "2.0-1"},
		{name: "epoch and revision survive", version: "3:1.0-1", upstream: "1.1", expected: "3:1.1-1"},
		{name: "dash allowed while a revision is present", version: "1.0-1", upstream: "1.0-rc", expected: "1.0-rc-1"},
		{name: "dash rejected without a revision", version: "1.0", upstream: "1.0-rc", wantErr: ErrUpstreamInvalidCharacters},
		{name: "empty upstream is rejected", version: "1.0", upstream: "", wantErr: ErrEmptyUpstream},
		{name: "leading letter is rejected", version: "1.0", upstream: "v2", wantErr: ErrUpstreamStartsWithNonDigit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := MustParse(tt.version).WithUpstreamVersion(tt.upstream)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result.String())
		})
	}
}

func TestVersionWithRevision(t *testing.T) {
	tests := []struct {
		name     string
		version  string
		revision string
		expected string
		wantErr  error
	}{
		{name: "add revision", version: "1.0", revision: "1", expected: "1.0-1"},
		{name: "replace revision", version: "1.0-1", revision: "2ubuntu1", expected: "1.0-2ubuntu1"},
		{name: "empty revision is rejected", version: "1.0", revision: "", wantErr: ErrEmptyRevision},
		{name: "dash in revision is rejected", version: "1.0", revision: "1-2", wantErr: ErrRevisionInvalidCharacters},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := MustParse(tt.version).WithRevision(tt.revision)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result.String())
		})
	}
}

func TestVersionWithoutRevision(t *testing.T) {
	t.Run("revision dropped", func(t *testing.T) {
		result, err := MustParse("1:1.0-1").WithoutRevision()
		require.NoError(t, err)
		assert.Equal(t, "1:1.0", result.String())
	})

	t.Run("no-op without a revision", func(t *testing.T) {
		result, err := MustParse("1.0").WithoutRevision()
		require.NoError(t, err)
		assert.Equal(t, "1.0", result.String())
	})

	t.Run("dash in upstream becomes illegal", func(t *testing.T) {
		// dropping the revision would leave a rendering that re-parses with a
		// different upstream/revision split
		_, err := MustParse("5.10.104-tegra-35.2.1-20230124153320").WithoutRevision()
		assert.ErrorIs(t, err, ErrUpstreamInvalidCharacters)
	})
}

func TestVersionMapUpstreamVersion(t *testing.T) {
	t.Run("strip a suffix", func(t *testing.T) {
		result, err := MustParse("1.2+dfsg-1").MapUpstreamVersion(func(s string) string {
			return strings.TrimSuffix(s, "+dfsg")
		})
		require.NoError(t, err)
		assert.Equal(t, "1.2-1", result.String())
	})

	t.Run("mapping to an invalid value fails", func(t *testing.T) {
		_, err := MustParse("1.0").MapUpstreamVersion(func(string) string { return "" })
		assert.ErrorIs(t, err, ErrEmptyUpstream)
	})
}

func TestVersionMapRevision(t *testing.T) {
	t.Run("rewrite the revision", func(t *testing.T) {
		result, err := MustParse("1.0-1").MapRevision(func(s string) string {
			return s + "ubuntu1"
		})
		require.NoError(t, err)
		assert.Equal(t, "1.0-1ubuntu1", result.String())
	})

	t.Run("absent revision is left untouched", func(t *testing.T) {
		result, err := MustParse("1.0").MapRevision(func(s string) string {
			return s + "never-applied"
		})
		require.NoError(t, err)
		assert.Equal(t, "1.0", result.String())
	})

	t.Run("mapping to an invalid value fails", func(t *testing.T) {
		_, err := MustParse("1.0-1").MapRevision(func(string) string { return "a b" })
		assert.ErrorIs(t, err, ErrRevisionInvalidCharacters)
	})
}

func TestMutationLeavesOriginalUntouched(t *testing.T) {
	original := MustParse("1:1.0-1")

	withEpoch, err := original.WithEpoch(9)
	require.NoError(t, err)
	_, err = original.WithUpstreamVersion("2.0")
	require.NoError(t, err)
	_, err = original.WithRevision("7")
	require.NoError(t, err)
	_ = original.WithoutEpoch()

	assert.Equal(t, "1:1.0-1", original.String())
	assert.Equal(t, "9:1.0-1", withEpoch.String())
}
