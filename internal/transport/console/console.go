package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

type line struct {
	text string
	err  error
}

// Console reads answers line by line and writes prompts, boards and results.
type Console struct {
	reader *bufio.Reader
	writer io.Writer

	startOnce sync.Once
	lines     chan line
}

func New(reader io.Reader, writer io.Writer) *Console {
	return &Console{
		reader: bufio.NewReader(reader),
		writer: writer,
		lines:  make(chan line),
	}
}

// ReadLine - blocks until a line is entered, the input is closed or ctx is done.
func (that *Console) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("read line: %w", err)
	}

	that.startOnce.Do(func() {
		go that.scan()
	})

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("read line: %w", ctx.Err())
	case l, ok := <-that.lines:
		if !ok {
			return "", apperror.ErrInputClosed
		}

		return l.text, l.err
	}
}

// scan - feeds lines of any length to ReadLine until the input ends.
func (that *Console) scan() {
	defer close(that.lines)

	for {
		text, err := that.reader.ReadString('\n')
		if text != "" {
			that.lines <- line{text: strings.TrimRight(text, "\r\n")}
		}

		switch {
		case err == nil:
		case errors.Is(err, io.EOF):
			return
		default:
			that.lines <- line{err: fmt.Errorf("read input: %w", err)}
			return
		}
	}
}

func (that *Console) println(text string) error {
	if _, err := fmt.Fprintln(that.writer, text); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}

func (that *Console) ask(ctx context.Context, prompts ...string) (string, error) {
	for _, prompt := range prompts {
		if err := that.println(prompt); err != nil {
			return "", err
		}
	}

	return that.ReadLine(ctx)
}

func (that *Console) ShowIntro() error {
	return that.println(introMessage())
}

func (that *Console) AskName(ctx context.Context, number int) (string, error) {
	return that.ask(ctx, namePromptMessage(number))
}

// AskMarker - taken markers are listed so the second player knows what to avoid.
func (that *Console) AskMarker(ctx context.Context, taken []string) (string, error) {
	prompts := []string{markerPromptMessage()}
	for _, marker := range taken {
		prompts = append(prompts, unavailableMarkerMessage(marker))
	}

	return that.ask(ctx, prompts...)
}

func (that *Console) AskMove(ctx context.Context, player *entity.Player) (string, error) {
	return that.ask(ctx, playerTurnMessage(player.Name(), player.Marker()))
}

// AskPlayAgain - only an answer whose first character is y or Y means yes.
func (that *Console) AskPlayAgain(ctx context.Context) (bool, error) {
	answer, err := that.ask(ctx, playAgainMessage())
	if err != nil {
		return false, err
	}

	return strings.HasPrefix(strings.ToUpper(answer), "Y"), nil
}

func (that *Console) ShowBoard(board *entity.Board) error {
	return that.println(board.Render())
}

func (that *Console) ShowInputError() error {
	return that.println(inputErrorMessage())
}

func (that *Console) ShowWinner(player *entity.Player) error {
	return that.println(winnerMessage(player.Name()))
}

func (that *Console) ShowTie() error {
	return that.println(tieMessage())
}

func (that *Console) ShowFarewell() error {
	return that.println(farewellMessage())
}
