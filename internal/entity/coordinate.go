package entity

import "fmt"

// Coordinate - a validated board position. Col maps to letters A..O,
// Row maps to numbers 1..15, both stored zero-based.
type Coordinate struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

func NewCoordinate(col, row int) (Coordinate, error) {
	if col < 0 || col >= BoardSize {
		return Coordinate{}, fmt.Errorf("column %d is outside the board", col)
	}

	if row < 0 || row >= BoardSize {
		return Coordinate{}, fmt.Errorf("row %d is outside the board", row)
	}

	return Coordinate{Col: col, Row: row}, nil
}

// String - renders the coordinate in the notation players submit, e.g. "H,8".
func (that Coordinate) String() string {
	return fmt.Sprintf("%c,%d", rune('A'+that.Col), that.Row+1)
}
