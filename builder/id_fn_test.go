package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routeplan/builder"
)

// TestIDFns verifies each IDFn on valid inputs and panics on invalid ones.
func TestIDFns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		fn          builder.IDFn
		input       int
		want        string
		shouldPanic bool
	}{
		{"DefaultIDFn_zero", builder.DefaultIDFn, 0, "0", false},
		{"DefaultIDFn_multi", builder.DefaultIDFn, 123, "123", false},

		{"LetterIDFn_first", builder.LetterIDFn, 0, "A", false},
		{"LetterIDFn_last_single", builder.LetterIDFn, 25, "Z", false},
		{"LetterIDFn_first_double", builder.LetterIDFn, 26, "AA", false},
		{"LetterIDFn_AB", builder.LetterIDFn, 27, "AB", false},
		{"LetterIDFn_ZZ", builder.LetterIDFn, 701, "ZZ", false},
		{"LetterIDFn_AAA", builder.LetterIDFn, 702, "AAA", false},
		{"LetterIDFn_neg", builder.LetterIDFn, -1, "", true},

		{"PrefixIDFn", builder.PrefixIDFn("City"), 7, "City7", false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if tc.shouldPanic {
				assert.Panics(t, func() { tc.fn(tc.input) })
				return
			}
			assert.Equal(t, tc.want, tc.fn(tc.input))
		})
	}
}

func TestLetterNames(t *testing.T) {
	t.Parallel()

	assert.Empty(t, builder.LetterNames(0))
	assert.Equal(t, []string{"A", "B", "C"}, builder.LetterNames(3))

	names := builder.LetterNames(30)
	require.Len(t, names, 30)
	assert.Equal(t, "Z", names[25])
	assert.Equal(t, "AD", names[29])

	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		_, dup := seen[n]
		assert.False(t, dup, "duplicate name %q", n)
		seen[n] = struct{}{}
	}
}
