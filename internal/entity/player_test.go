package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlayer(t *testing.T) {
	t.Run("Accepts both cases", func(t *testing.T) {
		for input, expected := range map[string]Player{
			"x":   PlayerX,
			"X":   PlayerX,
			"o":   PlayerO,
			" O ": PlayerO,
			"":    NoPlayer,
		} {
			// When: parsing the mark
			player, err := ParsePlayer(input)

			// Then: the canonical player is returned
			require.NoError(t, err, input)
			assert.Equal(t, expected, player, input)
		}
	})

	t.Run("Rejects unknown marks", func(t *testing.T) {
		// When: parsing something that is not a mark
		player, err := ParsePlayer("z")

		// Then: ErrInvalidPlayer is returned
		require.ErrorIs(t, err, ErrInvalidPlayer)
		assert.Equal(t, NoPlayer, player)
	})
}

func TestPlayer_Other(t *testing.T) {
	assert.Equal(t, PlayerO, PlayerX.Other())
	assert.Equal(t, PlayerX, PlayerO.Other())
	assert.Equal(t, NoPlayer, NoPlayer.Other())
}

func TestRandomPlayer(t *testing.T) {
	// When: drawing a random starting player many times
	seen := map[Player]bool{}
	for range 200 {
		seen[RandomPlayer()] = true
	}

	// Then: only X and O come up, and both do
	assert.Equal(t, map[Player]bool{PlayerX: true, PlayerO: true}, seen)
}

func TestCellState(t *testing.T) {
	t.Run("Empty cell", func(t *testing.T) {
		assert.True(t, Empty.IsEmpty())
		assert.False(t, Empty.Settled())
		assert.Equal(t, NoPlayer, Empty.Player())
		assert.Equal(t, ".", Empty.String())
	})

	t.Run("Marked cell", func(t *testing.T) {
		state := Marked(PlayerO)

		assert.False(t, state.IsEmpty())
		assert.True(t, state.Settled())
		assert.Equal(t, PlayerO, state.Player())
		assert.Equal(t, state, state.Mark())
		assert.Equal(t, "O", state.String())
		assert.NotEqual(t, Marked(PlayerX), state)
	})
}
