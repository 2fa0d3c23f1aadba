package placename_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/placegen/pkg/placename"
)

func TestDefaultDataset(t *testing.T) {
	ds := placename.DefaultDataset()
	require.NotNil(t, ds)

	assert.NotEmpty(t, ds.FirstParts)
	assert.NotEmpty(t, ds.SecondParts)
	assert.NotEmpty(t, ds.Prefixes)
	assert.NotEmpty(t, ds.Suffixes)
	assert.Equal(t, placename.DefaultThresholds(), ds.Thresholds)

	// Parsed once, shared afterwards.
	assert.Same(t, ds, placename.DefaultDataset())
}

func TestDefaultDatasetGenerates(t *testing.T) {
	gen := placename.New(placename.WithDataset(placename.DefaultDataset()))

	seen := map[string]bool{}
	for i := 0; i < 1_000; i++ {
		name := gen.Generate()
		require.NotEmpty(t, name)
		seen[name] = true
	}

	// Pool sizes in the built-in dataset give ample variety.
	assert.Greater(t, len(seen), 100)
}
