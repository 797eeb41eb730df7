package player

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"skull-toolbox/internal/events"
	"skull-toolbox/internal/game"
	"skull-toolbox/internal/hand"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResponse(t *testing.T) {
	tests := []struct {
		input    string
		expected game.Response
	}{
		{"play safe", game.PlayCard{Card: hand.Safe}},
		{"PL Penalty", game.PlayCard{Card: hand.Penalty}},
		{"play p", game.PlayCard{Card: hand.Penalty}},
		{"bid 3", game.Bid{N: 3}},
		{"  b   12 ", game.Bid{N: 12}},
		{"pass", game.Pass{}},
		{"pa", game.Pass{}},
		{"flip 2 0", game.Flip{Player: 2, Index: 0}},
		{"f 0 3", game.Flip{Player: 0, Index: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			r, err := ParseResponse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, r)
		})
	}

	t.Run("malformed commands", func(t *testing.T) {
		for input, message := range map[string]string{
			"play":        "usage: play safe|penalty",
			"play skull":  `unknown card "skull"`,
			"bid":         "usage: bid N",
			"bid many":    `bid "many" is not a number`,
			"pass now":    "usage: pass",
			"flip 1":      "usage: flip SEAT INDEX",
			"flip one 2":  `seat "one" is not a number`,
			"flip 1 two":  `index "two" is not a number`,
			"accuse plum": "unknown command 'accuse'",
			"":            "empty command",
		} {
			_, err := ParseResponse(input)
			assert.EqualError(t, err, message, "input %q", input)
		}
	})

	t.Run("sentinels", func(t *testing.T) {
		_, err := ParseResponse("help")
		assert.ErrorIs(t, err, ErrHelp)
		_, err = ParseResponse("dance")
		assert.ErrorIs(t, err, ErrUnknownCommand)
		_, err = ParseResponse("   ")
		assert.ErrorIs(t, err, ErrEmptyCommand)
	})
}

// scriptedPrompter replays lines, then reports end of input.
type scriptedPrompter struct {
	lines   []string
	prompts []string
}

func (s *scriptedPrompter) Prompt(prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

func TestHumanPlayer(t *testing.T) {
	req := events.InputRequired{Player: 1, Input: events.InputPlayCard}

	t.Run("it re-prompts until a command parses", func(t *testing.T) {
		var out bytes.Buffer
		prompter := &scriptedPrompter{lines: []string{"", "dance", "help", "play safe"}}
		h := NewHumanPlayer(prompter, &out)
		helped := false
		h.Help = func() { helped = true }
		h.Setup(1, []string{"Ana", "Bo", "Cy"})

		r, err := h.Decide(game.New(3), req)
		require.NoError(t, err)
		assert.Equal(t, game.PlayCard{Card: hand.Safe}, r)
		assert.True(t, helped)
		assert.Len(t, prompter.prompts, 4)
		assert.Equal(t, "(Bo) ", prompter.prompts[0])
		assert.Contains(t, out.String(), "Bo, your hand is [Penalty Safe Safe Safe] and you committed [].")
		assert.Contains(t, out.String(), "Expected: PlayCard")
		assert.Contains(t, out.String(), "unknown command 'dance'")
	})

	t.Run("closed input stops the player", func(t *testing.T) {
		h := NewHumanPlayer(&scriptedPrompter{}, io.Discard)
		h.Setup(0, []string{"Ana", "Bo", "Cy"})
		_, err := h.Decide(game.New(3), req)
		assert.ErrorIs(t, err, io.EOF)
		assert.ErrorContains(t, err, "reading Ana's command")
	})

	t.Run("rejections are explained", func(t *testing.T) {
		var out bytes.Buffer
		h := NewHumanPlayer(&scriptedPrompter{}, &out)
		h.Rejected(game.Bid{N: 9}, errors.New("bid too high, needs to be at most 3"))
		assert.Equal(t, "Can't bid 9: bid too high, needs to be at most 3\n", out.String())
	})

	t.Run("it is a human", func(t *testing.T) {
		var p Player = NewHumanPlayer(&scriptedPrompter{}, io.Discard)
		assert.True(t, p.IsHuman())
		_, ok := p.(RejectionListener)
		assert.True(t, ok)
	})
}
