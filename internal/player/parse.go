package player

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"skull-toolbox/internal/game"
	"skull-toolbox/internal/hand"
)

var (
	ErrEmptyCommand   = errors.New("empty command")
	ErrUnknownCommand = errors.New("unknown command")
	// ErrHelp is returned for "help" so callers can print the command list.
	ErrHelp = errors.New("help requested")
)

// ParseResponse turns a typed command into a response:
//
//	play safe|penalty   (pl, s|p)
//	bid N               (b)
//	pass                (pa)
//	flip SEAT INDEX     (f)
func ParseResponse(input string) (game.Response, error) {
	fields := strings.Fields(strings.ToLower(input))
	if len(fields) == 0 {
		return nil, ErrEmptyCommand
	}
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "play", "pl":
		if len(args) != 1 {
			return nil, fmt.Errorf("usage: play safe|penalty")
		}
		card, ok := hand.ParseCard(args[0])
		if !ok {
			return nil, fmt.Errorf("unknown card %q", args[0])
		}
		return game.PlayCard{Card: card}, nil
	case "bid", "b":
		if len(args) != 1 {
			return nil, fmt.Errorf("usage: bid N")
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, fmt.Errorf("bid %q is not a number", args[0])
		}
		return game.Bid{N: n}, nil
	case "pass", "pa":
		if len(args) != 0 {
			return nil, fmt.Errorf("usage: pass")
		}
		return game.Pass{}, nil
	case "flip", "f":
		if len(args) != 2 {
			return nil, fmt.Errorf("usage: flip SEAT INDEX")
		}
		seat, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, fmt.Errorf("seat %q is not a number", args[0])
		}
		index, err := strconv.Atoi(args[1])
		if err != nil {
			return nil, fmt.Errorf("index %q is not a number", args[1])
		}
		return game.Flip{Player: seat, Index: index}, nil
	case "help", "h", "?":
		return nil, ErrHelp
	default:
		return nil, fmt.Errorf("%w '%s'", ErrUnknownCommand, cmd)
	}
}
