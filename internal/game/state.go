package game

import "fmt"

// State is the phase of play. Exactly one of Committing, Bidding or
// Resolving is active; each carries what is needed to resume that phase.
type State interface {
	// Actor is the player the phase is waiting on.
	Actor() int
	clone() State
	isState()
}

// Committing is the phase where players put cards face down.
type Committing struct {
	CurrentPlayer int
}

// Bidding is the phase where players raise the number of cards to reveal.
type Bidding struct {
	CurrentBidder int
	HighestBid    int
	HighestBidder int
	// MaxBid is the number of cards committed this round.
	MaxBid int
	Passed []bool
}

// Resolving is the challenge: the challenger reveals cards until Target
// safe cards are shown or a penalty card turns up.
type Resolving struct {
	Challenger int
	Target     int
	// Flipped holds, per player, the pile indexes revealed so far. The
	// challenger's own indexes are ascending since they are flipped
	// automatically.
	Flipped [][]int
}

// Actor is the player due to commit a card or bid.
func (s Committing) Actor() int { return s.CurrentPlayer }

// Actor is the player due to raise or pass.
func (s Bidding) Actor() int { return s.CurrentBidder }

// Actor is the challenger, who does all the flipping.
func (s Resolving) Actor() int { return s.Challenger }

func (s Committing) clone() State { return s }

func (s Bidding) clone() State {
	s.Passed = append([]bool(nil), s.Passed...)
	return s
}

func (s Resolving) clone() State {
	flipped := make([][]int, len(s.Flipped))
	for i, f := range s.Flipped {
		flipped[i] = append([]int{}, f...)
	}
	s.Flipped = flipped
	return s
}

func (Committing) isState() {}
func (Bidding) isState()    {}
func (Resolving) isState()  {}

func (s Committing) String() string {
	return fmt.Sprintf("committing (player %d)", s.CurrentPlayer)
}

func (s Bidding) String() string {
	return fmt.Sprintf("bidding (bidder %d, high bid %d by %d, max %d)", s.CurrentBidder, s.HighestBid, s.HighestBidder, s.MaxBid)
}

func (s Resolving) String() string {
	return fmt.Sprintf("resolving (challenger %d, target %d)", s.Challenger, s.Target)
}

// FlippedCount is the number of cards revealed so far across all piles.
func (s Resolving) FlippedCount() int {
	n := 0
	for _, f := range s.Flipped {
		n += len(f)
	}
	return n
}

func (s Resolving) isFlipped(player, index int) bool {
	for _, i := range s.Flipped[player] {
		if i == index {
			return true
		}
	}
	return false
}

// PassedCount is the number of bidders who have passed.
func (s Bidding) PassedCount() int {
	n := 0
	for _, p := range s.Passed {
		if p {
			n++
		}
	}
	return n
}
