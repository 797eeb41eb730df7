package events

import "fmt"

// Kind identifies the variant of an Event.
type Kind int

const (
	KindInputRequired Kind = iota
	KindBidStarted
	KindChallengeStarted
	KindChallengerRevealedPenalty
	KindPlayerEliminated
	KindChallengeWon
	KindChallengeAndGameWon
	KindLastPlayerStanding
)

// Event is either a notification about something that already happened or
// a request for input from one player.
type Event interface {
	Kind() Kind
	fmt.Stringer
}

// Listener defines an interface for any component that wants to react to events.
type Listener interface {
	HandleEvent(e Event)
}

// Manager (or Event Bus) manages listeners and dispatches events.
type Manager struct {
	listeners []Listener
}

func NewManager() *Manager {
	return &Manager{}
}
func (em *Manager) Subscribe(l Listener) {
	em.listeners = append(em.listeners, l)
}
func (em *Manager) Publish(e Event) {
	for _, l := range em.listeners {
		l.HandleEvent(e)
	}
}

// ListenerFunc adapts a plain function to the Listener interface.
type ListenerFunc func(e Event)

func (f ListenerFunc) HandleEvent(e Event) { f(e) }

// --- Input requests ---

// InputType is the category of response the game expects next.
type InputType int

const (
	// InputPlayCard: not everyone has committed a card yet.
	InputPlayCard InputType = iota
	// InputPlayCardOrStartBid: enough cards are down to open the bidding.
	InputPlayCardOrStartBid
	// InputStartBid: the player has no cards left to commit.
	InputStartBid
	InputBidOrPass
	InputFlipCard
)

func (it InputType) String() string {
	switch it {
	case InputPlayCard:
		return "PlayCard"
	case InputPlayCardOrStartBid:
		return "PlayCard or Bid"
	case InputStartBid:
		return "Bid"
	case InputBidOrPass:
		return "Bid or Pass"
	case InputFlipCard:
		return "Flip"
	default:
		return fmt.Sprintf("InputType(%d)", int(it))
	}
}

// InputRequired asks Player for a response of type Input.
type InputRequired struct {
	Player int
	Input  InputType
}

func (InputRequired) Kind() Kind { return KindInputRequired }
func (e InputRequired) String() string {
	return fmt.Sprintf("player %d: %s", e.Player, e.Input)
}

// --- Notifications ---

type BidStarted struct{}

func (BidStarted) Kind() Kind     { return KindBidStarted }
func (BidStarted) String() string { return "bid started" }

type ChallengeStarted struct{}

func (ChallengeStarted) Kind() Kind     { return KindChallengeStarted }
func (ChallengeStarted) String() string { return "challenge started" }

// ChallengerRevealedPenalty ends a challenge in failure. Holder is the
// player whose penalty card was revealed and may equal Challenger.
type ChallengerRevealedPenalty struct {
	Challenger int
	Holder     int
}

func (ChallengerRevealedPenalty) Kind() Kind { return KindChallengerRevealedPenalty }
func (e ChallengerRevealedPenalty) String() string {
	return fmt.Sprintf("player %d revealed player %d's penalty card", e.Challenger, e.Holder)
}

type PlayerEliminated struct {
	Player int
}

func (PlayerEliminated) Kind() Kind { return KindPlayerEliminated }
func (e PlayerEliminated) String() string {
	return fmt.Sprintf("player %d is out of cards", e.Player)
}

type ChallengeWon struct {
	Player int
}

func (ChallengeWon) Kind() Kind { return KindChallengeWon }
func (e ChallengeWon) String() string {
	return fmt.Sprintf("player %d won the challenge", e.Player)
}

// ChallengeAndGameWon is a won challenge that brought the challenger to the
// winning score.
type ChallengeAndGameWon struct {
	Player int
}

func (ChallengeAndGameWon) Kind() Kind { return KindChallengeAndGameWon }
func (e ChallengeAndGameWon) String() string {
	return fmt.Sprintf("player %d won the challenge and the game", e.Player)
}

// LastPlayerStanding ends the game when every other player is eliminated.
type LastPlayerStanding struct {
	Player int
}

func (LastPlayerStanding) Kind() Kind { return KindLastPlayerStanding }
func (e LastPlayerStanding) String() string {
	return fmt.Sprintf("player %d is the last player with cards and wins the game", e.Player)
}

// IsTerminal reports whether e ends the game.
func IsTerminal(e Event) bool {
	switch e.(type) {
	case ChallengeAndGameWon, LastPlayerStanding:
		return true
	}
	return false
}
