package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

func boardWith(t *testing.T, markers map[int]string) *Board {
	t.Helper()

	board := NewBoard()
	for position, marker := range markers {
		require.NoError(t, board.PlaceMarker(position, marker))
	}

	return board
}

func TestBoard_IsValidMove(t *testing.T) {
	t.Run("Every position is valid on a new board", func(t *testing.T) {
		board := NewBoard()

		for position := 1; position <= BoardSize; position++ {
			assert.True(t, board.IsValidMove(position), "position %d", position)
		}
	})

	t.Run("Out of range positions are invalid", func(t *testing.T) {
		board := NewBoard()

		for _, position := range []int{-1, 0, 10, 100} {
			assert.False(t, board.IsValidMove(position), "position %d", position)
		}
	})

	t.Run("Occupied position becomes invalid", func(t *testing.T) {
		// Given: a new board
		board := NewBoard()

		// When: a marker is placed on 5
		require.NoError(t, board.PlaceMarker(5, "X"))

		// Then: 5 is no longer valid and reports the marker
		assert.False(t, board.IsValidMove(5))
		marker, occupied := board.Cell(5)
		assert.True(t, occupied)
		assert.Equal(t, "X", marker)

		// Then: other positions stay valid
		assert.True(t, board.IsValidMove(4))
	})
}

func TestBoard_PlaceMarker(t *testing.T) {
	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a board with X on 1
		board := boardWith(t, map[int]string{1: "X"})

		// When: O is placed on 1
		err := board.PlaceMarker(1, "O")

		// Then: the move is rejected and the cell keeps X
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		marker, _ := board.Cell(1)
		assert.Equal(t, "X", marker)
	})

	t.Run("Error on invalid position", func(t *testing.T) {
		board := NewBoard()

		err := board.PlaceMarker(0, "X")

		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		require.ErrorIs(t, err, apperror.ErrInvalidCell)
	})

	t.Run("Error on empty marker", func(t *testing.T) {
		board := NewBoard()

		err := board.PlaceMarker(3, "")

		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		assert.True(t, board.IsValidMove(3))
	})
}

func TestBoard_IsFull(t *testing.T) {
	t.Run("New board is not full", func(t *testing.T) {
		assert.False(t, NewBoard().IsFull())
	})

	t.Run("One empty cell is not full", func(t *testing.T) {
		board := boardWith(t, map[int]string{
			1: "X", 2: "O", 3: "X",
			4: "X", 5: "O", 6: "O",
			7: "O", 8: "X",
		})

		assert.False(t, board.IsFull())
	})

	t.Run("All cells occupied", func(t *testing.T) {
		board := boardWith(t, map[int]string{
			1: "X", 2: "O", 3: "X",
			4: "X", 5: "O", 6: "O",
			7: "O", 8: "X", 9: "X",
		})

		assert.True(t, board.IsFull())
		assert.False(t, board.IsGameOver())
	})
}

func TestBoard_IsGameOver(t *testing.T) {
	t.Run("New board is not over", func(t *testing.T) {
		assert.False(t, NewBoard().IsGameOver())
	})

	lines := map[string][3]int{
		"top row":        {1, 2, 3},
		"middle row":     {4, 5, 6},
		"bottom row":     {7, 8, 9},
		"left column":    {1, 4, 7},
		"middle column":  {2, 5, 8},
		"right column":   {3, 6, 9},
		"main diagonal":  {1, 5, 9},
		"other diagonal": {3, 5, 7},
	}

	for name, line := range lines {
		t.Run("Winner on "+name, func(t *testing.T) {
			board := boardWith(t, map[int]string{line[0]: "Q", line[1]: "Q", line[2]: "Q"})

			assert.True(t, board.IsGameOver())
			winner, ok := board.Winner()
			assert.True(t, ok)
			assert.Equal(t, "Q", winner)
		})
	}

	t.Run("Mixed markers are not a win", func(t *testing.T) {
		board := boardWith(t, map[int]string{1: "X", 2: "O", 3: "X"})

		assert.False(t, board.IsGameOver())
	})

	t.Run("Markers are case-sensitive", func(t *testing.T) {
		board := boardWith(t, map[int]string{1: "x", 2: "X", 3: "x"})

		assert.False(t, board.IsGameOver())
	})
}

func TestBoard_Render(t *testing.T) {
	t.Run("New board shows positions", func(t *testing.T) {
		expected := "| 1 | 2 | 3 |\n" +
			" ---+---+--- \n" +
			"| 4 | 5 | 6 |\n" +
			" ---+---+--- \n" +
			"| 7 | 8 | 9 |"

		assert.Equal(t, expected, NewBoard().Render())
	})

	t.Run("Markers replace positions", func(t *testing.T) {
		board := boardWith(t, map[int]string{1: "X", 5: "O", 9: "X"})

		expected := "| X | 2 | 3 |\n" +
			" ---+---+--- \n" +
			"| 4 | O | 6 |\n" +
			" ---+---+--- \n" +
			"| 7 | 8 | X |"

		assert.Equal(t, expected, board.Render())
	})

	t.Run("Wide markers keep the grid aligned", func(t *testing.T) {
		board := boardWith(t, map[int]string{1: "字"})

		expected := "| 字 | 2  | 3  |\n" +
			" ----+----+---- \n" +
			"| 4  | 5  | 6  |\n" +
			" ----+----+---- \n" +
			"| 7  | 8  | 9  |"

		assert.Equal(t, expected, board.Render())
	})

	t.Run("Render has no side effects", func(t *testing.T) {
		board := NewBoard()
		_ = board.Render()

		assert.Equal(t, NewBoard(), board)
	})
}
