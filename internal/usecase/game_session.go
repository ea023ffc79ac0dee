package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
)

type prompterDep interface {
	ShowIntro() error
	AskName(ctx context.Context, number int) (string, error)
	AskMarker(ctx context.Context, taken []string) (string, error)
	AskMove(ctx context.Context, player *entity.Player) (string, error)
	ShowBoard(board *entity.Board) error
	ShowInputError() error
	ShowWinner(player *entity.Player) error
	ShowTie() error
}

type GameSession struct {
	logger   *slog.Logger
	prompter prompterDep
}

func NewGameSession(logger *slog.Logger, prompter prompterDep) *GameSession {
	return &GameSession{
		logger:   logger.With("component", "game_session"),
		prompter: prompter,
	}
}

// Play - runs one session from setup to a win or a tie with a fresh board and players.
func (that *GameSession) Play(ctx context.Context) (*entity.Game, error) {
	game := entity.NewGame(uuid.NewString())
	log := that.logger.With("game_id", game.ID)

	log.Info("game started")

	if err := that.setUp(ctx, log, game); err != nil {
		return game, fmt.Errorf("failed to set up game: %w", err)
	}

	if err := that.prompter.ShowBoard(game.Board); err != nil {
		return game, err
	}

	if err := that.playTurns(ctx, log, game); err != nil {
		return game, fmt.Errorf("failed to play game: %w", err)
	}

	if err := that.announce(game); err != nil {
		return game, err
	}

	log.Info("game finished", "status", game.Status, "moves", game.Moves)

	return game, nil
}

func (that *GameSession) setUp(ctx context.Context, log *slog.Logger, game *entity.Game) error {
	if err := that.prompter.ShowIntro(); err != nil {
		return err
	}

	for number := 1; game.IsWaiting(); number++ {
		player, err := that.createPlayer(ctx, log, number, game.TakenMarkers())
		if err != nil {
			return fmt.Errorf("failed to create player %d: %w", number, err)
		}

		if err = game.AddPlayer(player); err != nil {
			return fmt.Errorf("failed to add player %d: %w", number, err)
		}

		log.Info("player registered", "number", number, "name", player.Name(), "marker", player.Marker())
	}

	return nil
}

func (that *GameSession) createPlayer(ctx context.Context, log *slog.Logger, number int, taken []string) (*entity.Player, error) {
	name, err := that.nameInput(ctx, log, number)
	if err != nil {
		return nil, err
	}

	marker, err := that.markerInput(ctx, log, taken)
	if err != nil {
		return nil, err
	}

	return entity.NewPlayer(name, marker, taken...)
}

// nameInput - asks until the name is not blank.
func (that *GameSession) nameInput(ctx context.Context, log *slog.Logger, number int) (string, error) {
	for {
		name, err := that.prompter.AskName(ctx, number)
		if err != nil {
			return "", err
		}

		if strings.TrimSpace(name) != "" {
			return name, nil
		}

		log.Debug("invalid name input", "error", apperror.ErrEmptyName)
		if err = that.prompter.ShowInputError(); err != nil {
			return "", err
		}
	}
}

// markerInput - asks until the marker is a single letter nobody uses yet.
func (that *GameSession) markerInput(ctx context.Context, log *slog.Logger, taken []string) (string, error) {
	for {
		marker, err := that.prompter.AskMarker(ctx, taken)
		if err != nil {
			return "", err
		}

		marker = strings.TrimSpace(marker)

		err = entity.ValidateMarker(marker, taken...)
		if err == nil {
			return marker, nil
		}

		log.Debug("invalid marker input", "input", marker, "error", err)
		if err = that.prompter.ShowInputError(); err != nil {
			return "", err
		}
	}
}

func (that *GameSession) playTurns(ctx context.Context, log *slog.Logger, game *entity.Game) error {
	for game.IsOngoing() {
		player := game.CurrentPlayer()

		position, err := that.moveInput(ctx, log, game.Board, player)
		if err != nil {
			return err
		}

		if err = tictactoe.MakeTurn(game, position); err != nil {
			return fmt.Errorf("failed to make turn: %w", err)
		}

		log.Debug("move applied", "player", player.Name(), "position", position)

		if err = that.prompter.ShowBoard(game.Board); err != nil {
			return err
		}
	}

	return nil
}

// moveInput - asks until the answer is a number of a free cell.
func (that *GameSession) moveInput(ctx context.Context, log *slog.Logger, board *entity.Board, player *entity.Player) (int, error) {
	for {
		answer, err := that.prompter.AskMove(ctx, player)
		if err != nil {
			return 0, err
		}

		position, err := parseMove(answer, board)
		if err == nil {
			return position, nil
		}

		log.Debug("invalid move input", "input", answer, "error", err)
		if err = that.prompter.ShowInputError(); err != nil {
			return 0, err
		}
	}
}

func parseMove(answer string, board *entity.Board) (int, error) {
	position, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", apperror.ErrInvalidCell, answer)
	}

	if !board.IsValidMove(position) {
		if _, occupied := board.Cell(position); occupied {
			return 0, fmt.Errorf("%w: %d", apperror.ErrCellOccupied, position)
		}

		return 0, fmt.Errorf("%w: %d", apperror.ErrInvalidCell, position)
	}

	return position, nil
}

func (that *GameSession) announce(game *entity.Game) error {
	switch game.Status {
	case entity.StatusWon:
		return that.prompter.ShowWinner(game.Winner())
	case entity.StatusTied:
		return that.prompter.ShowTie()
	default:
		return fmt.Errorf("%w: %s", entity.ErrUnknownGameStatus, game.Status)
	}
}
