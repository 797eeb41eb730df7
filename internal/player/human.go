package player

import (
	"errors"
	"fmt"
	"io"

	"skull-toolbox/internal/events"
	"skull-toolbox/internal/game"
)

// Prompter reads one line of input. *liner.State satisfies it.
type Prompter interface {
	Prompt(prompt string) (string, error)
}

// HumanPlayer represents a player controlled by a person at the terminal.
type HumanPlayer struct {
	name   string
	seat   int
	prompt Prompter
	out    io.Writer
	// Help is printed when the person types "help".
	Help func()
}

// NewHumanPlayer reads commands from prompt and writes feedback to out.
func NewHumanPlayer(prompt Prompter, out io.Writer) *HumanPlayer {
	return &HumanPlayer{prompt: prompt, out: out}
}

func (h *HumanPlayer) Name() string  { return h.name }
func (h *HumanPlayer) IsHuman() bool { return true }

func (h *HumanPlayer) Setup(seat int, playerNames []string) {
	h.seat = seat
	h.name = playerNames[seat]
}

// HandleEvent is a no-op: the terminal renderer already shows every event.
func (h *HumanPlayer) HandleEvent(e events.Event) {}

// Decide prompts until the person types a well-formed command. Whether the
// response is legal is left to the game.
func (h *HumanPlayer) Decide(view game.View, req events.InputRequired) (game.Response, error) {
	fmt.Fprintf(h.out, "%s, your hand is %s and you committed %s.\n",
		h.name, view.Hands()[h.seat], view.Piles()[h.seat])
	fmt.Fprintf(h.out, "Expected: %s\n", req.Input)

	for {
		input, err := h.prompt.Prompt(fmt.Sprintf("(%s) ", h.name))
		if err != nil {
			return nil, fmt.Errorf("reading %s's command: %w", h.name, err)
		}
		resp, err := ParseResponse(input)
		switch {
		case err == nil:
			return resp, nil
		case errors.Is(err, ErrEmptyCommand):
		case errors.Is(err, ErrHelp):
			if h.Help != nil {
				h.Help()
			}
		default:
			fmt.Fprintf(h.out, "%v\n", err)
		}
	}
}

// Rejected tells the person why the game refused their response.
func (h *HumanPlayer) Rejected(resp game.Response, err error) {
	fmt.Fprintf(h.out, "Can't %s: %v\n", resp, err)
}
