package cli

import (
	"fmt"
	"io"

	"skull-toolbox/internal/events"
	"skull-toolbox/internal/game"
	"skull-toolbox/internal/stats"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// TableRenderer implements events.Listener to narrate a match to the console.
type TableRenderer struct {
	out    io.Writer
	view   game.View
	names  []string
	humans map[int]bool
}

// NewTableRenderer narrates the game behind view. The table is drawn before
// every decision of the seats listed in humans.
func NewTableRenderer(out io.Writer, view game.View, names []string, humans ...int) *TableRenderer {
	r := &TableRenderer{out: out, view: view, names: names, humans: make(map[int]bool)}
	for _, seat := range humans {
		r.humans[seat] = true
	}
	return r
}

func (r *TableRenderer) name(seat int) string {
	if seat >= 0 && seat < len(r.names) {
		return ColorizeSeat(seat, r.names[seat])
	}
	return fmt.Sprintf("player %d", seat)
}

// HandleEvent is the central dispatcher for rendering events.
func (r *TableRenderer) HandleEvent(e events.Event) {
	switch event := e.(type) {
	case events.InputRequired:
		if r.humans[event.Player] {
			fmt.Fprintln(r.out)
			RenderTable(r.out, r.view, r.names)
		}
	case events.BidStarted:
		C.Header.Fprintln(r.out, "--- Bidding opens ---")
	case events.ChallengeStarted:
		if s, ok := r.view.State().(game.Resolving); ok {
			C.Header.Fprintf(r.out, "--- %s must reveal %d cards ---\n", r.name(s.Challenger), s.Target)
		} else {
			C.Header.Fprintln(r.out, "--- Challenge ---")
		}
	case events.ChallengerRevealedPenalty:
		if event.Holder == event.Challenger {
			C.No.Fprintf(r.out, "%s turned up their own penalty card!\n", r.name(event.Challenger))
		} else {
			C.No.Fprintf(r.out, "%s turned up %s's penalty card!\n", r.name(event.Challenger), r.name(event.Holder))
		}
	case events.PlayerEliminated:
		C.Warn.Fprintf(r.out, "%s has lost their last card and is out.\n", r.name(event.Player))
	case events.ChallengeWon:
		C.Yes.Fprintf(r.out, "%s wins the challenge.\n", r.name(event.Player))
	case events.ChallengeAndGameWon:
		r.renderGameResult(event.Player, "wins a second challenge")
	case events.LastPlayerStanding:
		r.renderGameResult(event.Player, "is the last player with cards")
	}
}

// Responded prints every accepted response.
func (r *TableRenderer) Responded(seat int, resp game.Response) {
	switch resp := resp.(type) {
	case game.PlayCard:
		// the card itself stays hidden
		C.Info.Fprintf(r.out, "%s commits a card.\n", r.name(seat))
	case game.Flip:
		C.Info.Fprintf(r.out, "%s flips %s's card %d.\n", r.name(seat), r.name(resp.Player), resp.Index)
	default:
		C.Info.Fprintf(r.out, "%s: %s\n", r.name(seat), resp)
	}
}

func (r *TableRenderer) renderGameResult(winner int, how string) {
	C.Header.Fprintln(r.out, "\n--- GAME OVER ---")
	C.Yes.Fprintf(r.out, "%s %s and wins!\n", r.name(winner), how)
	RenderTable(r.out, r.view, r.names)
}

// RenderTable displays scores, card counts and the phase of play.
func RenderTable(out io.Writer, view game.View, names []string) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetTitle(fmt.Sprintf("Table: %s", view.State()))
	t.AppendHeader(table.Row{"Seat", "Player", "Score", "Cards", "Committed", "Status"})

	scores, hands, piles := view.Scores(), view.Hands(), view.Piles()
	for seat := range scores {
		name := fmt.Sprintf("Player %d", seat+1)
		if seat < len(names) {
			name = names[seat]
		}
		t.AppendRow(table.Row{
			seat,
			ColorizeSeat(seat, name),
			scores[seat],
			hands[seat].Count(),
			piles[seat].Len(),
			seatStatus(view, seat),
		})
	}
	t.SetStyle(table.StyleRounded)
	t.Style().Title.Align = text.AlignCenter
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})
	t.Render()
}

func seatStatus(view game.View, seat int) string {
	if view.Hands()[seat].IsEmpty() {
		return C.No.Sprint("out")
	}
	switch s := view.State().(type) {
	case game.Committing:
		if s.CurrentPlayer == seat {
			return C.Maybe.Sprint("to play")
		}
	case game.Bidding:
		switch {
		case s.CurrentBidder == seat:
			return C.Maybe.Sprint("to bid")
		case s.HighestBidder == seat:
			return fmt.Sprintf("high bid %d", s.HighestBid)
		case s.Passed[seat]:
			return "passed"
		}
	case game.Resolving:
		if s.Challenger == seat {
			return C.Maybe.Sprintf("challenging for %d", s.Target)
		}
		if n := len(s.Flipped[seat]); n > 0 {
			return fmt.Sprintf("%d revealed", n)
		}
	}
	return ""
}

// RenderStats displays the per-seat tallies of a simulation.
func RenderStats(out io.Writer, c *stats.Collector) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetTitle(fmt.Sprintf("%d matches, %d biddings", c.Matches(), c.BidsOpened()))
	t.AppendHeader(table.Row{"Seat", "Player", "Wins", "Win %", "Last standing", "Challenges", "Won", "Own penalty", "Defences", "Eliminated"})
	for seat, s := range c.Seats() {
		t.AppendRow(table.Row{
			seat,
			ColorizeSeat(seat, s.Name),
			s.Wins,
			fmt.Sprintf("%.1f", 100*s.WinRate(c.Matches())),
			s.LastStanding,
			s.Challenges,
			s.ChallengesWon,
			s.OwnPenalties,
			s.Defences,
			s.Eliminations,
		})
	}
	t.SetStyle(table.StyleRounded)
	t.Style().Title.Align = text.AlignCenter
	t.Render()
}
