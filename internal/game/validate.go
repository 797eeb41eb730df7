package game

import (
	"fmt"

	"skull-toolbox/internal/events"
	"skull-toolbox/internal/hand"

	"go.uber.org/multierr"
)

// Validate checks a snapshot for internal consistency without changing it.
// Every violated invariant is reported; a nil error means the snapshot could
// have been reached by normal play.
func Validate(s Snapshot) error {
	v := &validator{s: s}
	v.run()
	return v.err
}

type validator struct {
	s   Snapshot
	err error

	n         int
	remaining int
	played    int
}

func (v *validator) failf(format string, args ...any) {
	v.err = multierr.Append(v.err, fmt.Errorf(format, args...))
}

func (v *validator) out(p int) bool { return v.s.Hands[p].IsEmpty() }

func (v *validator) inRange(p int) bool { return p >= 0 && p < v.n }

func (v *validator) run() {
	s := v.s
	v.n = len(s.Hands)
	if err := checkPlayerCount(v.n); err != nil {
		v.failf("%v", err)
		return
	}
	if len(s.Scores) != v.n || len(s.Piles) != v.n {
		v.failf("expected %d scores and piles, got %d and %d", v.n, len(s.Scores), len(s.Piles))
		return
	}
	if s.State == nil {
		v.failf("no state given")
		return
	}

	for _, h := range s.Hands {
		if !h.IsEmpty() {
			v.remaining++
		}
	}
	for _, p := range s.Piles {
		v.played += p.Len()
	}
	if v.remaining == 0 {
		v.failf("every player is out of cards")
	}

	v.checkScores()
	v.checkHandsAndPiles()
	v.checkPending()

	switch st := s.State.(type) {
	case Committing:
		v.checkCommitting(st)
	case Bidding:
		v.checkBidding(st)
	case Resolving:
		v.checkResolving(st)
	default:
		v.failf("unknown state %T", s.State)
	}
}

func (v *validator) checkScores() {
	winners := 0
	for i, score := range v.s.Scores {
		if score < 0 || score > WinningScore {
			v.failf("player %d has score %d, outside 0..%d", i, score, WinningScore)
		}
		if score == WinningScore {
			winners++
			if r, ok := v.s.State.(Resolving); !ok || r.Challenger != i {
				v.failf("player %d has won the game outside of their own challenge", i)
			}
			if v.s.Pending != nil && v.s.Pending != (events.ChallengeAndGameWon{Player: i}) {
				v.failf("player %d has won the game but %v is pending", i, v.s.Pending)
			}
		}
	}
	if winners > 1 {
		v.failf("%d players have a winning score", winners)
	}
}

func (v *validator) checkHandsAndPiles() {
	challenger, lossPending := -1, false
	if ev, ok := v.s.Pending.(events.ChallengerRevealedPenalty); ok {
		challenger, lossPending = ev.Challenger, true
	}

	lo, hi := hand.PileCapacity+1, -1
	for i, h := range v.s.Hands {
		if !h.Valid() {
			v.failf("player %d has an invalid hand %s", i, h)
			continue
		}
		pile := v.s.Piles[i]
		played, err := pile.Hand()
		if err != nil {
			v.failf("player %d has played cards %s that can't come from one hand: %v", i, pile, err)
			continue
		}
		if !h.IsSupersetOf(played) && !(lossPending && i == challenger && absorbsDiscard(h, played)) {
			v.failf("player %d has played %s but only holds %s", i, pile, h)
		}
		if !h.IsEmpty() {
			lo, hi = min(lo, pile.Len()), max(hi, pile.Len())
		}
	}
	if hi-lo > 1 {
		v.failf("some players have committed 2+ more cards than others")
	}
}

// absorbsDiscard reports whether played fits in h plus one card, the card
// the challenger discarded when the penalty turned up.
func absorbsDiscard(h, played hand.Hand) bool {
	for _, c := range []hand.Card{hand.Safe, hand.Penalty} {
		if before, err := h.Add(c); err == nil && before.IsSupersetOf(played) {
			return true
		}
	}
	return false
}

func (v *validator) checkPending() {
	s := v.s
	switch ev := s.Pending.(type) {
	case nil:
	case events.InputRequired:
		v.failf("input requests are never pending")
	case events.BidStarted:
		if b, ok := s.State.(Bidding); !ok {
			v.failf("bid started but not bidding")
		} else if b.PassedCount() != 0 {
			v.failf("bid just started but players have already passed")
		}
	case events.ChallengeStarted:
		if r, ok := s.State.(Resolving); !ok {
			v.failf("challenge started but not resolving")
		} else if r.FlippedCount() != 0 {
			v.failf("challenge just started but cards are already flipped")
		}
	case events.ChallengerRevealedPenalty:
		if r, ok := s.State.(Resolving); !ok || r.Challenger != ev.Challenger {
			v.failf("penalty reveal by player %d doesn't match the challenge", ev.Challenger)
		}
		if !v.inRange(ev.Holder) {
			v.failf("penalty holder %d out of range", ev.Holder)
		}
	case events.PlayerEliminated:
		if _, ok := s.State.(Committing); !ok {
			v.failf("player eliminated outside the commit phase")
		}
		if !v.inRange(ev.Player) || !v.out(ev.Player) {
			v.failf("player %d reported eliminated but still has cards", ev.Player)
		}
		v.checkPilesCleared()
	case events.LastPlayerStanding:
		if _, ok := s.State.(Committing); !ok {
			v.failf("last player standing outside the commit phase")
		}
		if v.remaining != 1 || !v.inRange(ev.Player) || v.out(ev.Player) {
			v.failf("player %d reported as last standing with %d players remaining", ev.Player, v.remaining)
		}
		v.checkPilesCleared()
	case events.ChallengeWon:
		v.checkWonChallenge(ev.Player)
		if v.inRange(ev.Player) && (s.Scores[ev.Player] < 1 || s.Scores[ev.Player] >= WinningScore) {
			v.failf("player %d won a challenge but has score %d", ev.Player, s.Scores[ev.Player])
		}
	case events.ChallengeAndGameWon:
		v.checkWonChallenge(ev.Player)
		if v.inRange(ev.Player) && s.Scores[ev.Player] != WinningScore {
			v.failf("player %d won the game but has score %d", ev.Player, s.Scores[ev.Player])
		}
	default:
		v.failf("unknown pending event %T", ev)
	}
}

func (v *validator) checkWonChallenge(player int) {
	r, ok := v.s.State.(Resolving)
	if !ok || r.Challenger != player {
		v.failf("player %d reported as challenge winner but isn't the challenger", player)
	}
}

func (v *validator) checkPilesCleared() {
	if v.played != 0 {
		v.failf("round is over but %d cards are still on the table", v.played)
	}
}

func (v *validator) checkCommitting(st Committing) {
	if !v.inRange(st.CurrentPlayer) {
		v.failf("current player %d out of range", st.CurrentPlayer)
		return
	}
	if v.out(st.CurrentPlayer) {
		v.failf("current player %d is out of cards", st.CurrentPlayer)
	}
}

func (v *validator) checkBidding(st Bidding) {
	if len(st.Passed) != v.n {
		v.failf("expected %d pass flags, got %d", v.n, len(st.Passed))
		return
	}
	if !v.inRange(st.CurrentBidder) || !v.inRange(st.HighestBidder) {
		v.failf("bidder index out of range (current %d, highest %d)", st.CurrentBidder, st.HighestBidder)
		return
	}
	if v.played < v.remaining {
		v.failf("bidding with %d cards down for %d players", v.played, v.remaining)
	}
	if v.out(st.CurrentBidder) {
		v.failf("current bidder %d is out of cards", st.CurrentBidder)
	}
	if v.out(st.HighestBidder) {
		v.failf("highest bidder %d is out of cards", st.HighestBidder)
	}
	if st.CurrentBidder == st.HighestBidder {
		v.failf("current and highest bidder are both player %d", st.CurrentBidder)
	}
	if st.MaxBid != v.played {
		v.failf("maximum bid %d doesn't match the %d cards committed", st.MaxBid, v.played)
	}
	if st.HighestBid < 1 || st.HighestBid >= st.MaxBid {
		v.failf("highest bid %d must be between 1 and %d, else a challenge should have started", st.HighestBid, st.MaxBid-1)
	}
	if st.PassedCount() > v.remaining-2 {
		v.failf("%d players have passed with %d remaining", st.PassedCount(), v.remaining)
	}
	if st.Passed[st.CurrentBidder] || st.Passed[st.HighestBidder] {
		v.failf("current or highest bidder has passed")
	}
	for i, passed := range st.Passed {
		if passed && v.out(i) {
			v.failf("player %d is out of cards but marked as passed", i)
		}
	}
}

func (v *validator) checkResolving(st Resolving) {
	if !v.inRange(st.Challenger) {
		v.failf("challenger %d out of range", st.Challenger)
		return
	}
	if len(st.Flipped) != v.n {
		v.failf("expected %d flip lists, got %d", v.n, len(st.Flipped))
		return
	}
	lossPending, ownPenalty := false, false
	if ev, ok := v.s.Pending.(events.ChallengerRevealedPenalty); ok {
		lossPending = true
		ownPenalty = ev.Holder == st.Challenger
	}
	if v.out(st.Challenger) && !lossPending {
		v.failf("challenger %d is out of cards", st.Challenger)
	}
	if v.played < v.remaining {
		v.failf("challenging with %d cards down for %d players", v.played, v.remaining)
	}
	if st.Target < 1 || st.Target > v.played {
		v.failf("target %d must be between 1 and the %d cards committed", st.Target, v.played)
	}

	safe, penalties, penaltyHolder := 0, 0, -1
	for p, indexes := range st.Flipped {
		seen := make(map[int]bool, len(indexes))
		for _, i := range indexes {
			if i < 0 || i >= v.s.Piles[p].Len() {
				v.failf("player %d has out of range flipped index %d", p, i)
				continue
			}
			if seen[i] {
				v.failf("player %d has index %d flipped twice", p, i)
				continue
			}
			seen[i] = true
			if v.s.Piles[p].At(i) == hand.Penalty {
				penalties++
				penaltyHolder = p
			} else {
				safe++
			}
		}
	}

	if _, started := v.s.Pending.(events.ChallengeStarted); !started {
		v.checkOwnFlips(st, ownPenalty)
	}

	if lossPending {
		ev := v.s.Pending.(events.ChallengerRevealedPenalty)
		if penalties != 1 || penaltyHolder != ev.Holder {
			v.failf("expected player %d's penalty card to be the one flipped, %d penalty cards flipped", ev.Holder, penalties)
		}
	} else if penalties != 0 {
		v.failf("%d penalty cards flipped without a pending penalty reveal", penalties)
	}

	if safe > st.Target {
		v.failf("%d safe cards flipped for a target of %d", safe, st.Target)
	}
	won := false
	switch v.s.Pending.(type) {
	case events.ChallengeWon, events.ChallengeAndGameWon:
		won = true
	case nil:
		won = v.s.Scores[st.Challenger] == WinningScore
	}
	if safe == st.Target && !won {
		v.failf("target reached but the challenge isn't declared won")
	}
	if won && safe != st.Target {
		v.failf("challenge declared won with %d of %d cards flipped", safe, st.Target)
	}
}

// checkOwnFlips verifies the challenger revealed their own pile from the top:
// the top Target cards or the whole pile, stopping early only at their own
// penalty card.
func (v *validator) checkOwnFlips(st Resolving, ownPenalty bool) {
	pile := v.s.Piles[st.Challenger]
	own := st.Flipped[st.Challenger]
	lowest := max(pile.Len()-st.Target, 0)

	if len(own) > pile.Len() {
		v.failf("challenger flipped %d of their own cards but has only %d", len(own), pile.Len())
		return
	}
	for k, i := range own {
		if i != pile.Len()-len(own)+k {
			v.failf("challenger's own flips %v aren't the top of their pile", own)
			return
		}
	}
	if ownPenalty {
		if len(own) == 0 || pile.At(own[0]) != hand.Penalty || own[0] < lowest {
			v.failf("challenger's own penalty card isn't the last card they flipped")
		}
		return
	}
	if len(own) != pile.Len()-lowest {
		v.failf("challenger flipped %d of their own cards, expected %d", len(own), pile.Len()-lowest)
	}
	if st.Target <= pile.Len() {
		for p, indexes := range st.Flipped {
			if p != st.Challenger && len(indexes) > 0 {
				v.failf("player %d's cards flipped although the challenger's own cards meet the target", p)
			}
		}
	}
}
