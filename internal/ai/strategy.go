package ai

import (
	"skull-toolbox/internal/game"
	"skull-toolbox/internal/hand"
)

// Strategy defines the interface for an AI's decision-making logic. A
// strategy returns false when it has nothing to say about the situation.
type Strategy interface {
	Respond(b *Brain, view game.View, legal []game.Response) (game.Response, bool)
}

// --- Strategy Implementations ---

// 1. FlipStrategy
type FlipStrategy struct{}

// Respond prefers the players whose penalty card has caught challengers
// least often, then smaller piles, then the top card of a pile.
func (s *FlipStrategy) Respond(b *Brain, view game.View, legal []game.Response) (game.Response, bool) {
	if _, ok := view.State().(game.Resolving); !ok {
		return nil, false
	}
	piles := view.Piles()
	best, bestScore := game.Flip{}, -1
	for _, r := range legal {
		flip, ok := r.(game.Flip)
		if !ok {
			continue
		}
		score := piles[flip.Player].Len()
		if flip.Player < len(b.penaltyHits) {
			score += 10 * b.penaltyHits[flip.Player]
		}
		// favour the top of the pile on ties
		score = score*hand.PileCapacity + (hand.PileCapacity - 1 - flip.Index)
		if bestScore < 0 || score < bestScore {
			best, bestScore = flip, score
		}
	}
	if bestScore < 0 {
		return nil, false
	}
	b.log.Debugf("Strategy: FLIP. Revealing %s's card %d.", b.playerName(best.Player), best.Index)
	return best, true
}

// 2. BidStrategy
type BidStrategy struct{}

// Respond raises while the brain's confidence covers the next bid and
// passes otherwise. A forced opening bid is the smallest one possible
// unless the brain is confident.
func (s *BidStrategy) Respond(b *Brain, view game.View, legal []game.Response) (game.Response, bool) {
	switch st := view.State().(type) {
	case game.Bidding:
		if next := st.HighestBid + 1; next <= b.confidence(view) {
			b.log.Debugf("Strategy: RAISE to %d.", next)
			return game.Bid{N: next}, true
		}
		b.log.Debugf("Strategy: PASS on %d.", st.HighestBid)
		return game.Pass{}, true
	case game.Committing:
		if !b.available(view).IsEmpty() {
			return nil, false
		}
		return game.Bid{N: max(1, min(b.confidence(view), maxBid(legal)))}, true
	}
	return nil, false
}

// 3. CommitStrategy
type CommitStrategy struct{}

// Respond opens a round with the penalty card now and then, commits safe
// cards after that, and starts bidding once its own pile is worth
// defending.
func (s *CommitStrategy) Respond(b *Brain, view game.View, legal []game.Response) (game.Response, bool) {
	if _, ok := view.State().(game.Committing); !ok {
		return nil, false
	}
	avail := b.available(view)
	own := view.Piles()[b.seat]

	if own.Len() == 0 && avail.Has(hand.Penalty) && chance(b.chooser, 3) {
		b.log.Debugf("Strategy: BLUFF. Opening with the penalty card.")
		return game.PlayCard{Card: hand.Penalty}, true
	}
	if canBid(legal) && !own.Contains(hand.Penalty) && own.Len() > 0 && chance(b.chooser, 2) {
		return game.Bid{N: max(1, min(own.Len(), maxBid(legal)))}, true
	}
	if avail.Has(hand.Safe) {
		return game.PlayCard{Card: hand.Safe}, true
	}
	if canBid(legal) {
		return game.Bid{N: 1}, true
	}
	return game.PlayCard{Card: hand.Penalty}, true
}

func canBid(legal []game.Response) bool {
	return maxBid(legal) > 0
}

func maxBid(legal []game.Response) int {
	n := 0
	for _, r := range legal {
		if bid, ok := r.(game.Bid); ok && bid.N > n {
			n = bid.N
		}
	}
	return n
}
