package engine

import "errors"

var (
	// ErrInvalidBoard reports a board whose dimensions or cell contents do
	// not match what the engine was constructed for.
	ErrInvalidBoard = errors.New("invalid board")

	// ErrInvalidPlayer reports a moving-player identifier that is neither
	// PlayerBlack nor PlayerWhite.
	ErrInvalidPlayer = errors.New("invalid player")

	ErrInvalidOptions = errors.New("invalid options")
)
