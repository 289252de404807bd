package flags

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/arcade-backend/internal/entity"
)

func TestLoadCatalog(t *testing.T) {
	// When: loading the built-in commands
	catalog, err := LoadCatalog()
	require.NoError(t, err)

	// Then: each tier has one command per action
	for _, tier := range [][]entity.FlagCommand{catalog.Basic, catalog.Variation, catalog.Complex, catalog.Trick} {
		require.Len(t, tier, 6)
		assert.ElementsMatch(t, []entity.FlagAction{
			entity.ActionWhiteUp, entity.ActionWhiteDown, entity.ActionBlueUp,
			entity.ActionBlueDown, entity.ActionStand, entity.ActionSit,
		}, []entity.FlagAction{tier[0].Action, tier[1].Action, tier[2].Action, tier[3].Action, tier[4].Action, tier[5].Action})
	}

	assert.Equal(t, entity.FlagCommand{Action: entity.ActionWhiteUp, Text: "백기 올려!"}, catalog.Basic[0])
}

func TestParseCatalog(t *testing.T) {
	t.Run("Unknown action is rejected", func(t *testing.T) {
		data := []byte(`
basic: [{action: wave, text: "wave"}]
variation: [{action: sit, text: "sit"}]
complex: [{action: sit, text: "sit"}]
trick: [{action: sit, text: "sit"}]
`)

		_, err := ParseCatalog(data)

		require.ErrorIs(t, err, ErrInvalidAction)
	})

	t.Run("Missing tier is rejected", func(t *testing.T) {
		_, err := ParseCatalog([]byte(`basic: [{action: sit, text: "sit"}]`))

		require.ErrorIs(t, err, ErrEmptyTier)
	})

	t.Run("Malformed yaml", func(t *testing.T) {
		_, err := ParseCatalog([]byte(`basic: {`))

		require.Error(t, err)
	})
}

func TestCatalog_Available(t *testing.T) {
	catalog, err := LoadCatalog()
	require.NoError(t, err)

	tests := []struct {
		difficulty int
		expected   int
	}{
		{difficulty: 1, expected: 6},
		{difficulty: 2, expected: 12},
		{difficulty: 3, expected: 18},
		{difficulty: 4, expected: 24},
		{difficulty: 5, expected: 24},
	}

	for _, tt := range tests {
		assert.Len(t, catalog.Available(tt.difficulty), tt.expected, "difficulty %d", tt.difficulty)
	}

	assert.Equal(t, catalog.Trick[5], catalog.Available(4)[23])
}
