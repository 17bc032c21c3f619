package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/readme-games/omok-engine/internal/entity"
)

const (
	cellSize    = 30
	boardMargin = 40
	stoneRadius = 12

	boardSpan = (entity.BoardSize - 1) * cellSize
	svgWidth  = boardSpan + 2*boardMargin
	svgHeight = boardSpan + 2*boardMargin + 60 // extra space for the status banner
)

// starPoints - traditional board markings at (row, col) intersections.
var starPoints = [5][2]int{{3, 3}, {3, 11}, {7, 7}, {11, 3}, {11, 11}}

// BoardSVG - a vector rendering of the board: grid, star points, labels,
// stones with a radial gradient, a red ring around the last move and a
// status banner.
func BoardSVG(game *entity.Game) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, `<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">`+"\n", svgWidth, svgHeight)
	fmt.Fprintf(&sb, `<rect width="%d" height="%d" fill="#f5f5dc" stroke="none"/>`+"\n", svgWidth, svgHeight)

	fmt.Fprintf(&sb, `<rect x="%d" y="%d" width="%d" height="%d" fill="#daa520" stroke="#8b4513" stroke-width="2"/>`+"\n",
		boardMargin-10, boardMargin-10, boardSpan+20, boardSpan+20)

	writeGridLines(&sb)
	writeStarPoints(&sb)
	writeLabels(&sb)
	writeStones(&sb, game)

	if game.LastMove != nil {
		x := boardMargin + game.LastMove.Col*cellSize
		y := boardMargin + game.LastMove.Row*cellSize
		fmt.Fprintf(&sb, `<circle cx="%d" cy="%d" r="16" fill="none" stroke="#ff0000" stroke-width="2" opacity="0.8"/>`+"\n", x, y)
	}

	writeStatusBanner(&sb, game)

	sb.WriteString("</svg>")

	return sb.String()
}

// WriteBoardSVG - renders the board and writes it to path.
func WriteBoardSVG(path string, game *entity.Game) error {
	if err := os.WriteFile(path, []byte(BoardSVG(game)), 0o644); err != nil {
		return fmt.Errorf("failed to write board svg: %w", err)
	}

	return nil
}

func writeGridLines(sb *strings.Builder) {
	for i := 0; i < entity.BoardSize; i++ {
		x := boardMargin + i*cellSize
		fmt.Fprintf(sb, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#8b4513" stroke-width="1"/>`+"\n",
			x, boardMargin, x, boardMargin+boardSpan)
	}

	for i := 0; i < entity.BoardSize; i++ {
		y := boardMargin + i*cellSize
		fmt.Fprintf(sb, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#8b4513" stroke-width="1"/>`+"\n",
			boardMargin, y, boardMargin+boardSpan, y)
	}
}

func writeStarPoints(sb *strings.Builder) {
	for _, point := range starPoints {
		x := boardMargin + point[1]*cellSize
		y := boardMargin + point[0]*cellSize
		fmt.Fprintf(sb, `<circle cx="%d" cy="%d" r="3" fill="#8b4513"/>`+"\n", x, y)
	}
}

func writeLabels(sb *strings.Builder) {
	for i := 0; i < entity.BoardSize; i++ {
		x := boardMargin + i*cellSize
		fmt.Fprintf(sb, `<text x="%d" y="%d" text-anchor="middle" font-family="Arial, sans-serif" font-size="12" font-weight="bold" fill="#8b4513">%c</text>`+"\n",
			x, boardMargin-15, rune('A'+i))
	}

	for i := 0; i < entity.BoardSize; i++ {
		y := boardMargin + i*cellSize + 5
		fmt.Fprintf(sb, `<text x="%d" y="%d" text-anchor="middle" font-family="Arial, sans-serif" font-size="12" font-weight="bold" fill="#8b4513">%d</text>`+"\n",
			boardMargin-15, y, i+1)
	}
}

func writeStones(sb *strings.Builder, game *entity.Game) {
	for row := 0; row < entity.BoardSize; row++ {
		for col := 0; col < entity.BoardSize; col++ {
			cell := game.Board[row][col]
			if cell == entity.StoneEmpty {
				continue
			}

			x := boardMargin + col*cellSize
			y := boardMargin + row*cellSize

			gradientID := fmt.Sprintf("%sGradient_%d_%d", cell, row, col)
			startColor, stopColor := "#ffffff", "#e0e0e0"
			if cell == entity.StoneBlack {
				startColor, stopColor = "#444444", "#000000"
			}

			fmt.Fprintf(sb, `<defs><radialGradient id="%s" cx="0.3" cy="0.3" r="0.7"><stop offset="0%%" stop-color="%s"/><stop offset="100%%" stop-color="%s"/></radialGradient></defs>`+"\n",
				gradientID, startColor, stopColor)
			fmt.Fprintf(sb, `<circle cx="%d" cy="%d" r="%d" fill="url(#%s)" stroke="#000000" stroke-width="1"/>`+"\n",
				x, y, stoneRadius, gradientID)
		}
	}
}

func writeStatusBanner(sb *strings.Builder, game *entity.Game) {
	statusY := svgHeight - 30

	fmt.Fprintf(sb, `<rect x="10" y="%d" width="%d" height="40" fill="#ffffff" stroke="#cccccc" stroke-width="1" rx="5"/>`+"\n",
		statusY-20, svgWidth-20)
	fmt.Fprintf(sb, `<text x="%d" y="%d" text-anchor="middle" font-family="Arial, sans-serif" font-size="16" font-weight="bold" fill="#333333">%s</text>`+"\n",
		svgWidth/2, statusY, StatusLine(game))
}
