package player

import (
	"skull-toolbox/internal/events"
	"skull-toolbox/internal/game"
)

// Player is the interface that all player types (human or AI) must implement.
// It also implements events.Listener to react to game events.
type Player interface {
	events.Listener // Embed the Listener interface

	Name() string
	IsHuman() bool
	Setup(seat int, playerNames []string)
	// Decide answers an input request for this player's seat. An error
	// means the player can't go on (closed input, no legal move).
	Decide(view game.View, req events.InputRequired) (game.Response, error)
}

// RejectionListener is implemented by players who want to hear why the game
// refused their last response.
type RejectionListener interface {
	Rejected(resp game.Response, err error)
}
