package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

const (
	StatusSetup   = "setup"
	StatusOngoing = "ongoing"
	StatusWon     = "won"
	StatusTied    = "tied"

	playersCount = 2
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// Game is one session: two players, a board and whose turn it is.
type Game struct {
	ID      string
	Board   *Board
	Status  string
	Players []*Player
	Moves   int

	current int
}

func NewGame(id string) *Game {
	return &Game{
		ID:      id,
		Board:   NewBoard(),
		Status:  StatusSetup,
		Players: make([]*Player, 0, playersCount),
	}
}

// AddPlayer - registers a player. Player 1 moves first; the second player starts the game.
func (that *Game) AddPlayer(player *Player) error {
	if len(that.Players) >= playersCount {
		return apperror.ErrGameIsFull
	}

	for _, existing := range that.Players {
		if existing.Marker() == player.Marker() {
			return fmt.Errorf("%w: %q", apperror.ErrMarkerTaken, player.Marker())
		}
	}

	that.Players = append(that.Players, player)
	if len(that.Players) == playersCount {
		that.current = 0
		that.Status = StatusOngoing
	}

	return nil
}

// TakenMarkers - markers of the already registered players.
func (that *Game) TakenMarkers() []string {
	markers := make([]string, 0, len(that.Players))
	for _, player := range that.Players {
		markers = append(markers, player.Marker())
	}

	return markers
}

func (that *Game) CurrentPlayer() *Player {
	if len(that.Players) == 0 {
		return nil
	}

	return that.Players[that.current]
}

// SwitchPlayer - passes the turn to the other player.
func (that *Game) SwitchPlayer() {
	that.current = (that.current + 1) % len(that.Players)
}

// Winner - the player who completed a triple, nil unless the game is won.
func (that *Game) Winner() *Player {
	if that.Status != StatusWon {
		return nil
	}

	return that.CurrentPlayer()
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusWon || that.Status == StatusTied
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWaiting() bool {
	return that.Status == StatusSetup
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsWaiting():
		return apperror.ErrGameIsNotStarted
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}
