package game

import (
	"skull-toolbox/internal/events"
	"skull-toolbox/internal/hand"
)

// LegalResponses lists every response Respond would accept right now. It
// returns nil while a notification is pending or after the game is over.
// The list is ordered: cards, then bids from low to high, then pass, then
// flips by player and index.
func (g *Game) LegalResponses() []Response {
	if g.pending != nil {
		return nil
	}
	if _, over := g.Winner(); over {
		return nil
	}

	var out []Response
	switch s := g.state.(type) {
	case Committing:
		input := g.expectedInput()
		if input != events.InputStartBid {
			avail := g.available(s.CurrentPlayer)
			for _, c := range []hand.Card{hand.Safe, hand.Penalty} {
				if avail.Has(c) {
					out = append(out, PlayCard{Card: c})
				}
			}
		}
		if input != events.InputPlayCard {
			for n := 1; n <= g.cardsPlayed(); n++ {
				out = append(out, Bid{N: n})
			}
		}
	case Bidding:
		for n := s.HighestBid + 1; n <= s.MaxBid; n++ {
			out = append(out, Bid{N: n})
		}
		out = append(out, Pass{})
	case Resolving:
		for p, pile := range g.piles {
			if p == s.Challenger {
				continue
			}
			for i := 0; i < pile.Len(); i++ {
				if !s.isFlipped(p, i) {
					out = append(out, Flip{Player: p, Index: i})
				}
			}
		}
	}
	return out
}
