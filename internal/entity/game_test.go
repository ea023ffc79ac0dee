package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

func TestGame_AddPlayer(t *testing.T) {
	t.Run("Second player starts the game", func(t *testing.T) {
		// Given: a new game
		game := NewGame("123")
		alice, _ := NewPlayer("Alice", "X")
		bob, _ := NewPlayer("Bob", "O")

		// When: the first player joins
		require.NoError(t, game.AddPlayer(alice))

		// Then: the game is still in setup
		assert.True(t, game.IsWaiting())
		assert.Equal(t, []string{"X"}, game.TakenMarkers())

		// When: the second player joins
		require.NoError(t, game.AddPlayer(bob))

		// Then: the game is ongoing and player 1 moves first
		assert.True(t, game.IsOngoing())
		assert.Equal(t, alice, game.CurrentPlayer())
	})

	t.Run("Duplicate marker is rejected", func(t *testing.T) {
		game := NewGame("123")
		alice, _ := NewPlayer("Alice", "X")
		bob, _ := NewPlayer("Bob", "X")
		require.NoError(t, game.AddPlayer(alice))

		err := game.AddPlayer(bob)

		require.ErrorIs(t, err, apperror.ErrMarkerTaken)
		assert.Len(t, game.Players, 1)
	})

	t.Run("Third player is rejected", func(t *testing.T) {
		game := NewGame("123")
		for _, marker := range []string{"X", "O"} {
			player, _ := NewPlayer("P"+marker, marker)
			require.NoError(t, game.AddPlayer(player))
		}

		carol, _ := NewPlayer("Carol", "C")
		err := game.AddPlayer(carol)

		require.ErrorIs(t, err, apperror.ErrGameIsFull)
	})
}

func TestGame_SwitchPlayer(t *testing.T) {
	game := NewGame("123")
	alice, _ := NewPlayer("Alice", "X")
	bob, _ := NewPlayer("Bob", "O")
	require.NoError(t, game.AddPlayer(alice))
	require.NoError(t, game.AddPlayer(bob))

	game.SwitchPlayer()
	assert.Equal(t, bob, game.CurrentPlayer())

	game.SwitchPlayer()
	assert.Equal(t, alice, game.CurrentPlayer())
}

func TestGame_ConfirmOngoingState(t *testing.T) {
	t.Run("Returns nil when game is ongoing", func(t *testing.T) {
		game := &Game{Status: StatusOngoing}

		assert.NoError(t, game.ConfirmOngoingState())
	})

	t.Run("Returns ErrGameIsNotStarted during setup", func(t *testing.T) {
		game := &Game{Status: StatusSetup}

		assert.ErrorIs(t, game.ConfirmOngoingState(), apperror.ErrGameIsNotStarted)
	})

	t.Run("Returns ErrGameFinished when game is won or tied", func(t *testing.T) {
		for _, status := range []string{StatusWon, StatusTied} {
			game := &Game{Status: status}

			assert.ErrorIs(t, game.ConfirmOngoingState(), apperror.ErrGameFinished)
		}
	})

	t.Run("Returns error for unknown game status", func(t *testing.T) {
		game := &Game{Status: "unknown"}

		assert.ErrorIs(t, game.ConfirmOngoingState(), ErrUnknownGameStatus)
	})
}

func TestGame_Winner(t *testing.T) {
	t.Run("No winner while ongoing", func(t *testing.T) {
		game := NewGame("123")
		alice, _ := NewPlayer("Alice", "X")
		require.NoError(t, game.AddPlayer(alice))

		assert.Nil(t, game.Winner())
	})

	t.Run("Current player is the winner", func(t *testing.T) {
		game := NewGame("123")
		alice, _ := NewPlayer("Alice", "X")
		require.NoError(t, game.AddPlayer(alice))
		game.Status = StatusWon

		assert.Equal(t, alice, game.Winner())
	})
}
