package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/readme-games/omok-engine/internal/apperror"
	"github.com/readme-games/omok-engine/internal/entity"
)

// movePattern - a column letter immediately followed by a row number,
// with an optional comma or space separator. Matches "A,1", "A1", "A 1"
// anywhere in the text, so prefixed titles like "Play at A,1" work too.
var movePattern = regexp.MustCompile(`([A-Za-z])(?:\s*,\s*|\s+)?(\d+)`)

// ParseCoordinate - extracts the first coordinate pair from a raw move
// title. The first candidate decides the outcome: an out-of-range letter
// or number is an error, not a reason to keep scanning.
func ParseCoordinate(raw string) (entity.Coordinate, error) {
	title := strings.TrimSpace(raw)

	match := movePattern.FindStringSubmatch(title)
	if match == nil {
		return entity.Coordinate{}, apperror.ErrNoCoordinate
	}

	colChar := strings.ToUpper(match[1])[0]
	col := int(colChar - 'A')
	if col < 0 || col >= entity.BoardSize {
		return entity.Coordinate{}, apperror.ErrColumnOutOfRange
	}

	rowNum, err := strconv.Atoi(match[2])
	if err != nil || rowNum < 1 || rowNum > entity.BoardSize {
		return entity.Coordinate{}, apperror.ErrRowOutOfRange
	}

	return entity.Coordinate{Col: col, Row: rowNum - 1}, nil
}
