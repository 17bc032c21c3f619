package render

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/readme-games/omok-engine/internal/entity"
)

const (
	boardStartMarker = "### Current Game State"
	boardEndMarker   = "### 📋 How to Play"
)

var ErrMarkerNotFound = errors.New("board section marker not found")

// ReadmeUpdater - rewrites the board section of the README between the
// start and end markers, leaving the rest of the file untouched.
type ReadmeUpdater struct {
	path string
}

func NewReadmeUpdater(path string) *ReadmeUpdater {
	return &ReadmeUpdater{
		path: path,
	}
}

func (that *ReadmeUpdater) Update(game *entity.Game) error {
	content, err := os.ReadFile(that.path)
	if err != nil {
		return fmt.Errorf("failed to read readme: %w", err)
	}

	updated, err := ReplaceBoardSection(string(content), boardSection(game))
	if err != nil {
		return err
	}

	if err = os.WriteFile(that.path, []byte(updated), 0o644); err != nil {
		return fmt.Errorf("failed to write readme: %w", err)
	}

	return nil
}

func boardSection(game *entity.Game) string {
	return fmt.Sprintf("%s\n\n%s\n\n", boardStartMarker, CompleteDisplay(game))
}

// ReplaceBoardSection - swaps the text between the markers for a freshly
// rendered section. Both markers must be present.
func ReplaceBoardSection(content, section string) (string, error) {
	startIdx := strings.Index(content, boardStartMarker)
	if startIdx < 0 {
		return "", fmt.Errorf("%w: %q", ErrMarkerNotFound, boardStartMarker)
	}

	endIdx := strings.Index(content[startIdx:], boardEndMarker)
	if endIdx < 0 {
		return "", fmt.Errorf("%w: %q", ErrMarkerNotFound, boardEndMarker)
	}
	endIdx += startIdx

	return content[:startIdx] + section + content[endIdx:], nil
}
