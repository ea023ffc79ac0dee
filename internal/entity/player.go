package entity

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

// Player is immutable once created.
type Player struct {
	name   string
	marker string
}

// NewPlayer - validates the name and the marker against markers already in use.
func NewPlayer(name, marker string, taken ...string) (*Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperror.ErrEmptyName
	}

	if err := ValidateMarker(marker, taken...); err != nil {
		return nil, err
	}

	return &Player{
		name:   name,
		marker: marker,
	}, nil
}

// ValidateMarker - a marker is exactly one letter and differs from every taken marker. Case-sensitive.
func ValidateMarker(marker string, taken ...string) error {
	if utf8.RuneCountInString(marker) != 1 {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidMarker, marker)
	}

	if r, _ := utf8.DecodeRuneInString(marker); !unicode.IsLetter(r) {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidMarker, marker)
	}

	for _, used := range taken {
		if marker == used {
			return fmt.Errorf("%w: %q", apperror.ErrMarkerTaken, marker)
		}
	}

	return nil
}

func (that *Player) Name() string {
	return that.name
}

func (that *Player) Marker() string {
	return that.marker
}
