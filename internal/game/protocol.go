package game

import (
	"skull-toolbox/internal/events"
	"skull-toolbox/internal/hand"

	"github.com/sirupsen/logrus"
)

// WhatNext returns the next thing the caller must deal with.
//
// A buffered notification is returned first, after the state transition it
// stands for has been applied; the caller must drain every notification
// before responding. Without one, WhatNext describes the input the game is
// waiting for. Once the game has been won the terminal event is returned on
// every call.
func (g *Game) WhatNext() events.Event {
	if ev := g.pending; ev != nil {
		g.pending = nil
		g.acknowledge(ev)
		return ev
	}
	if winner, ok := g.Winner(); ok {
		if g.scores[winner] >= WinningScore {
			return events.ChallengeAndGameWon{Player: winner}
		}
		return events.LastPlayerStanding{Player: winner}
	}
	return events.InputRequired{Player: g.state.Actor(), Input: g.expectedInput()}
}

// acknowledge applies the transition attached to a drained event.
func (g *Game) acknowledge(ev events.Event) {
	switch ev := ev.(type) {
	case events.ChallengeStarted:
		g.revealChallengerPile()
	case events.ChallengeWon:
		g.clearPiles()
		g.state = Committing{CurrentPlayer: ev.Player}
		g.log.WithField("player", ev.Player).Debug("Round over, challenger starts the next one")
	case events.ChallengerRevealedPenalty:
		g.clearPiles()
		next := ev.Holder
		if g.isOut(ev.Challenger) {
			g.pending = events.PlayerEliminated{Player: ev.Challenger}
			if ev.Challenger == ev.Holder {
				next = g.nextPlayer(ev.Challenger, nil)
			}
		}
		g.state = Committing{CurrentPlayer: next}
		g.log.WithFields(logrus.Fields{"challenger": ev.Challenger, "holder": ev.Holder, "next": next}).Debug("Round over, challenge lost")
	case events.PlayerEliminated:
		if g.RemainingPlayerCount() == 1 {
			winner, _ := g.Winner()
			g.pending = events.LastPlayerStanding{Player: winner}
		}
	case events.InputRequired:
		panic("game: input requests are never buffered")
	}
}

// expectedInput is the kind of response the current actor must give.
// Bidding may open once at least one card per remaining player is down;
// eliminated seats don't count towards that threshold.
func (g *Game) expectedInput() events.InputType {
	switch s := g.state.(type) {
	case Committing:
		if g.available(s.CurrentPlayer).IsEmpty() {
			return events.InputStartBid
		}
		if g.cardsPlayed() >= g.RemainingPlayerCount() {
			return events.InputPlayCardOrStartBid
		}
		return events.InputPlayCard
	case Bidding:
		return events.InputBidOrPass
	default:
		return events.InputFlipCard
	}
}

// Respond applies a player's response. A rejected response returns a
// *ResponseError and leaves the game unchanged.
func (g *Game) Respond(r Response) error {
	if g.pending != nil {
		return ErrPendingEvent
	}
	if _, over := g.Winner(); over {
		return ErrGameOver
	}

	var err error
	switch s := g.state.(type) {
	case Committing:
		err = g.respondCommitting(s, r)
	case Bidding:
		err = g.respondBidding(s, r)
	case Resolving:
		err = g.respondResolving(s, r)
	}
	if err != nil {
		g.log.WithFields(logrus.Fields{"response": r, "error": err}).Debug("Response rejected")
	}
	return err
}

func (g *Game) respondCommitting(s Committing, r Response) error {
	expected := g.expectedInput()
	switch r := r.(type) {
	case PlayCard:
		if expected == events.InputStartBid {
			return incorrectInputType(expected)
		}
		if !g.available(s.CurrentPlayer).Has(r.Card) {
			return ErrCardNotInHand
		}
		if err := g.piles[s.CurrentPlayer].Push(r.Card); err != nil {
			// available() is never larger than the space left in the pile
			panic(err)
		}
		g.state = Committing{CurrentPlayer: g.nextPlayer(s.CurrentPlayer, nil)}
		g.log.WithField("player", s.CurrentPlayer).Debug("Card committed")
		return nil

	case Bid:
		if expected == events.InputPlayCard {
			return incorrectInputType(expected)
		}
		total := g.cardsPlayed()
		if r.N < 1 {
			return bidTooLow(1)
		}
		if r.N > total {
			return bidTooHigh(total)
		}
		if r.N == total {
			g.startChallenge(s.CurrentPlayer, total)
			return nil
		}
		g.state = Bidding{
			CurrentBidder: g.nextPlayer(s.CurrentPlayer, nil),
			HighestBid:    r.N,
			HighestBidder: s.CurrentPlayer,
			MaxBid:        total,
			Passed:        make([]bool, g.PlayerCount()),
		}
		g.pending = events.BidStarted{}
		g.log.WithFields(logrus.Fields{"player": s.CurrentPlayer, "bid": r.N, "max": total}).Debug("Bidding opened")
		return nil

	default:
		return incorrectInputType(expected)
	}
}

func (g *Game) respondBidding(s Bidding, r Response) error {
	switch r := r.(type) {
	case Bid:
		if r.N > s.MaxBid {
			return bidTooHigh(s.MaxBid)
		}
		if r.N <= s.HighestBid {
			return bidTooLow(s.HighestBid + 1)
		}
		if r.N == s.MaxBid {
			g.startChallenge(s.CurrentBidder, r.N)
			return nil
		}
		s = s.clone().(Bidding)
		s.HighestBid = r.N
		s.HighestBidder = s.CurrentBidder
		s.CurrentBidder = g.nextPlayer(s.CurrentBidder, s.Passed)
		g.state = s
		g.log.WithFields(logrus.Fields{"player": s.HighestBidder, "bid": r.N}).Debug("Bid raised")
		return nil

	case Pass:
		s = s.clone().(Bidding)
		s.Passed[s.CurrentBidder] = true
		if s.PassedCount() == g.RemainingPlayerCount()-1 {
			g.startChallenge(s.HighestBidder, s.HighestBid)
			return nil
		}
		g.log.WithField("player", s.CurrentBidder).Debug("Bidder passed")
		s.CurrentBidder = g.nextPlayer(s.CurrentBidder, s.Passed)
		g.state = s
		return nil

	default:
		return incorrectInputType(events.InputBidOrPass)
	}
}

func (g *Game) respondResolving(s Resolving, r Response) error {
	flip, ok := r.(Flip)
	if !ok {
		return incorrectInputType(events.InputFlipCard)
	}
	if flip.Player < 0 || flip.Player >= g.PlayerCount() ||
		flip.Index < 0 || flip.Index >= g.piles[flip.Player].Len() {
		return ErrInvalidIndex
	}
	if flip.Player == s.Challenger {
		return ErrManuallyFlippingOwnCards
	}
	if s.isFlipped(flip.Player, flip.Index) {
		return ErrCardAlreadyFlipped
	}

	s = s.clone().(Resolving)
	s.Flipped[flip.Player] = append(s.Flipped[flip.Player], flip.Index)
	g.state = s
	if g.piles[flip.Player].At(flip.Index) == hand.Penalty {
		g.loseChallenge(s.Challenger, flip.Player)
		return nil
	}
	if s.FlippedCount() == s.Target {
		g.winChallenge(s.Challenger)
	}
	return nil
}

func (g *Game) startChallenge(challenger, target int) {
	g.state = Resolving{
		Challenger: challenger,
		Target:     target,
		Flipped:    make([][]int, g.PlayerCount()),
	}
	g.pending = events.ChallengeStarted{}
	g.log.WithFields(logrus.Fields{"challenger": challenger, "target": target}).Debug("Challenge started")
}

// revealChallengerPile flips the challenger's own cards from the top down:
// the top target cards, or the whole pile when the target is larger. The
// first penalty card ends the challenge.
func (g *Game) revealChallengerPile() {
	s := g.state.(Resolving).clone().(Resolving)
	pile := g.piles[s.Challenger]
	lowest := max(pile.Len()-s.Target, 0)

	penaltyAt := -1
	for i := pile.Len() - 1; i >= lowest; i-- {
		if pile.At(i) == hand.Penalty {
			penaltyAt = i
			break
		}
	}
	if penaltyAt >= 0 {
		lowest = penaltyAt
	}
	own := make([]int, 0, pile.Len()-lowest)
	for i := lowest; i < pile.Len(); i++ {
		own = append(own, i)
	}
	s.Flipped[s.Challenger] = own
	g.state = s

	switch {
	case penaltyAt >= 0:
		g.loseChallenge(s.Challenger, s.Challenger)
	case s.FlippedCount() == s.Target:
		g.winChallenge(s.Challenger)
	}
}

func (g *Game) loseChallenge(challenger, holder int) {
	discarded := g.hands[challenger].DiscardOne(g.rand)
	g.pending = events.ChallengerRevealedPenalty{Challenger: challenger, Holder: holder}
	g.log.WithFields(logrus.Fields{"challenger": challenger, "holder": holder, "discarded": discarded}).Debug("Penalty card revealed")
}

func (g *Game) winChallenge(challenger int) {
	g.scores[challenger]++
	if g.scores[challenger] >= WinningScore {
		g.pending = events.ChallengeAndGameWon{Player: challenger}
	} else {
		g.pending = events.ChallengeWon{Player: challenger}
	}
	g.log.WithFields(logrus.Fields{"challenger": challenger, "score": g.scores[challenger]}).Debug("Challenge won")
}
