package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/peterh/liner"
)

// C holds pre-configured color objects for printing to the console.
var C = struct {
	Yes, No, Maybe, Info, Warn, Header, Prompt, Debug *color.Color
}{
	Yes:    color.New(color.FgGreen),
	No:     color.New(color.FgRed),
	Maybe:  color.New(color.FgYellow),
	Info:   color.New(color.FgCyan),
	Warn:   color.New(color.FgHiYellow),
	Header: color.New(color.FgWhite, color.Bold),
	Prompt: color.New(color.FgHiWhite),
	Debug:  color.New(color.FgMagenta),
}

// SeatColors gives each seat its own color, in seat order.
var SeatColors = []*color.Color{
	color.New(color.FgRed),
	color.New(color.FgYellow),
	color.New(color.FgBlue),
	color.New(color.FgGreen),
	color.New(color.FgMagenta),
	color.New(color.FgHiCyan),
}

// ColorizeSeat returns a player's name in their seat's color.
func ColorizeSeat(seat int, name string) string {
	if seat >= 0 && seat < len(SeatColors) {
		return SeatColors[seat].Sprint(name)
	}
	return name
}

// --- Prompting and Usage ---

func (c *CLI) printPlayHelp() {
	C.Header.Println("\n--- Commands ---")
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Command", "Alias", "Description"})
	t.AppendSeparator()
	t.AppendRows([]table.Row{
		{"play safe|penalty", "pl", "Commit a card face down on your pile."},
		{"bid N", "b", "Open the bidding or raise it to N cards."},
		{"pass", "pa", "Drop out of the current bidding."},
		{"flip SEAT INDEX", "f", "Reveal a card during your challenge (index 0 is the bottom)."},
		{"help", "h", "Show this help message."},
	})
	t.SetStyle(table.StyleLight)
	t.Render()
}

// linePrompter reads commands through liner and keeps them in history.
type linePrompter struct {
	line *liner.State
}

func (p *linePrompter) Prompt(prompt string) (string, error) {
	input, err := p.line.Prompt(prompt)
	if err != nil {
		if err == liner.ErrPromptAborted {
			return "", io.EOF
		}
		return "", err
	}
	if trimmed := strings.TrimSpace(input); trimmed != "" {
		p.line.AppendHistory(trimmed)
	}
	return input, nil
}

func (c *CLI) promptForString(prompt string) (string, error) {
	for {
		C.Prompt.Print(prompt)
		input, err := c.line.Prompt("")
		if err != nil {
			return "", err
		}
		trimmed := strings.TrimSpace(input)
		if trimmed != "" {
			c.line.AppendHistory(trimmed)
			return trimmed, nil
		}
	}
}

// promptForName asks for a player name, keeping the suggestion when the
// answer is "-".
func (c *CLI) promptForName(seat int, suggestion string) (string, error) {
	name, err := c.promptForString(fmt.Sprintf("Name for seat %d [%s, '-' to keep]: ", seat+1, suggestion))
	if err != nil {
		return "", err
	}
	if name == "-" {
		return suggestion, nil
	}
	return name, nil
}
