package placename_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/placegen/pkg/placename"
)

func TestParseDataset(t *testing.T) {
	t.Run("minimal document with only parts", func(t *testing.T) {
		ds, err := placename.ParseDataset([]byte(`
parts:
  - [ash, glen]
  - [ford]
`))
		require.NoError(t, err)

		assert.Equal(t, []string{"ash", "glen"}, ds.FirstParts)
		assert.Equal(t, []string{"ford"}, ds.SecondParts)
		assert.Empty(t, ds.Prefixes)
		assert.Empty(t, ds.Suffixes)
		assert.Equal(t, placename.DefaultThresholds(), ds.Thresholds)
	})

	t.Run("settings override defaults", func(t *testing.T) {
		ds, err := placename.ParseDataset([]byte(`
settings:
  prefixThreshold: 0.4
  suffixThreshold: 0.3
  doubleThreshold: 0.2
parts:
  - [ash]
  - [ford]
`))
		require.NoError(t, err)

		assert.Equal(t, placename.Thresholds{Prefix: 0.4, Suffix: 0.3, Double: 0.2}, ds.Thresholds)
	})

	t.Run("whole-number threshold is accepted", func(t *testing.T) {
		ds, err := placename.ParseDataset([]byte(`
settings:
  prefixThreshold: 1
parts:
  - [ash]
  - [ford]
`))
		require.NoError(t, err)

		assert.Equal(t, 1.0, ds.Thresholds.Prefix)
		assert.Equal(t, placename.DefaultSuffixThreshold, ds.Thresholds.Suffix)
	})

	t.Run("malformed threshold values fall back silently", func(t *testing.T) {
		ds, err := placename.ParseDataset([]byte(`
settings:
  prefixThreshold: definitely
  suffixThreshold: [0.3]
  doubleThreshold: 0.2
parts:
  - [ash]
  - [ford]
`))
		require.NoError(t, err)

		assert.Equal(t, placename.DefaultPrefixThreshold, ds.Thresholds.Prefix)
		assert.Equal(t, placename.DefaultSuffixThreshold, ds.Thresholds.Suffix)
		assert.Equal(t, 0.2, ds.Thresholds.Double)
	})

	t.Run("non-mapping settings falls back silently", func(t *testing.T) {
		ds, err := placename.ParseDataset([]byte(`
settings: 42
parts:
  - [ash]
  - [ford]
`))
		require.NoError(t, err)

		assert.Equal(t, placename.DefaultThresholds(), ds.Thresholds)
	})

	t.Run("out-of-range thresholds are clamped", func(t *testing.T) {
		ds, err := placename.ParseDataset([]byte(`
settings:
  prefixThreshold: -0.5
  suffixThreshold: 3.5
parts:
  - [ash]
  - [ford]
`))
		require.NoError(t, err)

		assert.Equal(t, 0.0, ds.Thresholds.Prefix)
		assert.Equal(t, 1.0, ds.Thresholds.Suffix)
	})

	t.Run("blank fragments are dropped", func(t *testing.T) {
		ds, err := placename.ParseDataset([]byte(`
prefixes: ["Old", "", "  "]
parts:
  - ["ash", "", "  glen  "]
  - [ford]
`))
		require.NoError(t, err)

		assert.Equal(t, []string{"ash", "glen"}, ds.FirstParts)
		assert.Equal(t, []string{"Old"}, ds.Prefixes)
	})
}

func TestParseDatasetFailures(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		expected error
	}{
		{
			name:     "missing parts",
			doc:      "prefixes: [Old]",
			expected: placename.ErrMissingParts,
		},
		{
			name:     "single pool in parts",
			doc:      "parts:\n  - [ash]",
			expected: placename.ErrMissingParts,
		},
		{
			name:     "empty first pool",
			doc:      "parts:\n  - []\n  - [ford]",
			expected: placename.ErrEmptyPool,
		},
		{
			name:     "second pool only blanks",
			doc:      "parts:\n  - [ash]\n  - [\"\", \"  \"]",
			expected: placename.ErrEmptyPool,
		},
		{
			name:     "parts element is not a sequence",
			doc:      "parts:\n  - ash\n  - [ford]",
			expected: placename.ErrInvalidDocument,
		},
		{
			name:     "document is a sequence",
			doc:      "- ash\n- ford",
			expected: placename.ErrInvalidDocument,
		},
		{
			name:     "document is not YAML",
			doc:      "{{{",
			expected: placename.ErrInvalidDocument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := placename.ParseDataset([]byte(tt.doc))
			assert.Nil(t, ds)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}
