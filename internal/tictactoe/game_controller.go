package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// MakeTurn - places the current player's marker and moves the game to its next state.
func MakeTurn(game *entity.Game, position int) error {
	if err := game.ConfirmOngoingState(); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	player := game.CurrentPlayer()
	if err := game.Board.PlaceMarker(position, player.Marker()); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}
	game.Moves++

	updateGameStatus(game)

	return nil
}

// updateGameStatus - a win keeps the current player as the winner, otherwise full board is a tie.
func updateGameStatus(game *entity.Game) {
	switch {
	case game.Board.IsGameOver():
		game.Status = entity.StatusWon
	case game.Board.IsFull():
		game.Status = entity.StatusTied
	default:
		game.SwitchPlayer()
	}
}
