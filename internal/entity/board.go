package entity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

const (
	BoardSize = 9
	rowSize   = 3
)

// winCombos - the 8 winning triples: rows, columns and diagonals.
var winCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Cell is empty while Marker is "". An empty cell is shown by its position number.
type Cell struct {
	Marker string
}

func (that Cell) IsEmpty() bool {
	return that.Marker == ""
}

// Board holds the 3x3 grid. Positions are 1-9, cells are indexed 0-8.
type Board struct {
	Cells [BoardSize]Cell
}

func NewBoard() *Board {
	return &Board{}
}

// IsValidMove - checks that position is in 1-9 and the cell is still empty.
func (that *Board) IsValidMove(position int) bool {
	if position < 1 || position > BoardSize {
		return false
	}

	return that.Cells[position-1].IsEmpty()
}

// PlaceMarker - puts marker on position. Callers validate first; a violation means a logic defect.
func (that *Board) PlaceMarker(position int, marker string) error {
	if position < 1 || position > BoardSize {
		return fmt.Errorf("%w: %w: position %d", apperror.ErrInvalidMove, apperror.ErrInvalidCell, position)
	}

	if !that.Cells[position-1].IsEmpty() {
		return fmt.Errorf("%w: %w: position %d", apperror.ErrInvalidMove, apperror.ErrCellOccupied, position)
	}

	if marker == "" {
		return fmt.Errorf("%w: empty marker", apperror.ErrInvalidMove)
	}

	that.Cells[position-1] = Cell{Marker: marker}

	return nil
}

// Cell returns the marker at position and whether the cell is occupied.
func (that *Board) Cell(position int) (string, bool) {
	if position < 1 || position > BoardSize {
		return "", false
	}

	cell := that.Cells[position-1]

	return cell.Marker, !cell.IsEmpty()
}

func (that *Board) IsFull() bool {
	for _, cell := range that.Cells {
		if cell.IsEmpty() {
			return false
		}
	}

	return true
}

func (that *Board) IsGameOver() bool {
	_, ok := that.Winner()
	return ok
}

// Winner - returns the marker of the first completed triple.
func (that *Board) Winner() (string, bool) {
	for _, combo := range winCombos {
		a, b, c := that.Cells[combo[0]], that.Cells[combo[1]], that.Cells[combo[2]]
		if !a.IsEmpty() && a == b && b == c {
			return a.Marker, true
		}
	}

	return "", false
}

// Render - draws the grid, padding every cell to the widest one.
func (that *Board) Render() string {
	labels := make([]string, BoardSize)
	width := 1
	for i, cell := range that.Cells {
		labels[i] = cell.Marker
		if cell.IsEmpty() {
			labels[i] = strconv.Itoa(i + 1)
		}

		if w := runewidth.StringWidth(labels[i]); w > width {
			width = w
		}
	}

	dashes := make([]string, rowSize)
	for i := range dashes {
		dashes[i] = strings.Repeat("-", width+2)
	}
	separator := " " + strings.Join(dashes, "+") + " "

	rows := make([]string, 0, rowSize*2-1)
	for row := 0; row < rowSize; row++ {
		if row > 0 {
			rows = append(rows, separator)
		}

		cells := make([]string, rowSize)
		for col := range cells {
			cells[col] = runewidth.FillRight(labels[row*rowSize+col], width)
		}
		rows = append(rows, "| "+strings.Join(cells, " | ")+" |")
	}

	return strings.Join(rows, "\n")
}
