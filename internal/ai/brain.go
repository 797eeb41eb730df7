package ai

import (
	"fmt"

	"skull-toolbox/internal/events"
	"skull-toolbox/internal/game"
	"skull-toolbox/internal/hand"

	"github.com/sirupsen/logrus"
)

// Brain is a computer player. It only looks at what a person at the table
// could see: scores, pile sizes, hand sizes and its own cards.
type Brain struct {
	name    string
	seat    int
	players []string
	// penaltyHits counts, per seat, the challenges that player's penalty
	// card has ended.
	penaltyHits []int
	strategies  []Strategy
	log         logrus.FieldLogger
	chooser     Chooser
}

// NewBrain is the constructor for the strategic AI player.
func NewBrain(logger logrus.FieldLogger, chooser Chooser) *Brain {
	return &Brain{
		log:     logger,
		chooser: chooser,
		strategies: []Strategy{
			&FlipStrategy{},
			&BidStrategy{},
			&CommitStrategy{},
		},
	}
}

// NewRandomBrain returns a player that picks uniformly among the legal
// responses.
func NewRandomBrain(logger logrus.FieldLogger, chooser Chooser) *Brain {
	return &Brain{log: logger, chooser: chooser}
}

func (b *Brain) Name() string  { return b.name }
func (b *Brain) IsHuman() bool { return false }
func (b *Brain) Seat() int     { return b.seat }

func (b *Brain) Setup(seat int, playerNames []string) {
	b.seat = seat
	b.name = playerNames[seat]
	b.players = playerNames
	b.penaltyHits = make([]int, len(playerNames))
	b.log = b.log.WithField("player", b.name)
}

// PenaltyHits returns how often each seat's penalty card has ended a
// challenge, as observed by this brain.
func (b *Brain) PenaltyHits() []int {
	return append([]int(nil), b.penaltyHits...)
}

func (b *Brain) HandleEvent(e events.Event) {
	switch event := e.(type) {
	case events.ChallengerRevealedPenalty:
		if event.Holder == event.Challenger || event.Holder >= len(b.penaltyHits) {
			return
		}
		b.penaltyHits[event.Holder]++
		b.log.Debugf("Noted that %s defended with their penalty card.", b.playerName(event.Holder))
	}
}

// Decide returns a legal response for the pending input request.
func (b *Brain) Decide(view game.View, req events.InputRequired) (game.Response, error) {
	legal := view.LegalResponses()
	if len(legal) == 0 {
		return nil, fmt.Errorf("%s has no legal response to %s", b.name, req.Input)
	}
	for _, s := range b.strategies {
		if r, ok := s.Respond(b, view, legal); ok && isLegal(legal, r) {
			b.log.WithField("response", r).Debugf("Strategy %T decided.", s)
			return r, nil
		}
	}
	return legal[b.chooser.Choose(len(legal))], nil
}

func (b *Brain) playerName(seat int) string {
	if seat < len(b.players) {
		return b.players[seat]
	}
	return fmt.Sprintf("player %d", seat)
}

// available is what the brain can still commit this round.
func (b *Brain) available(view game.View) hand.Hand {
	played, err := view.Piles()[b.seat].Hand()
	if err != nil {
		return hand.Empty()
	}
	rest, err := view.Hands()[b.seat].Sub(played)
	if err != nil {
		return hand.Empty()
	}
	return rest
}

// confidence is the bid the brain believes it can make good: its own
// committed cards when they are all safe, plus half the others' cards.
func (b *Brain) confidence(view game.View) int {
	piles := view.Piles()
	own := piles[b.seat]
	if own.Contains(hand.Penalty) {
		return 0
	}
	others := 0
	for seat, p := range piles {
		if seat != b.seat {
			others += p.Len()
		}
	}
	estimate := own.Len() + others/2
	if chance(b.chooser, 4) {
		estimate++
	}
	return estimate
}

func isLegal(legal []game.Response, r game.Response) bool {
	for _, l := range legal {
		if l == r {
			return true
		}
	}
	return false
}
