package game

import (
	"io"
	"math/rand"
	"time"

	"skull-toolbox/internal/events"
	"skull-toolbox/internal/hand"

	"github.com/sirupsen/logrus"
)

const (
	MinPlayers = 3
	MaxPlayers = 6
	// WinningScore is the number of won challenges that wins the game.
	WinningScore = 2
)

// Game is the state and rules of a single Skull match for 3 to 6 players.
// It is not safe for concurrent use; callers serialize access themselves.
type Game struct {
	scores  []int
	hands   []hand.Hand
	piles   []hand.Pile
	state   State
	pending events.Event // at most one unacknowledged notification
	log     logrus.FieldLogger
	rand    hand.Picker
}

// View is the read-only surface of a Game handed to players.
type View interface {
	Scores() []int
	Hands() []hand.Hand
	Piles() []hand.Pile
	State() State
	PlayerCount() int
	RemainingPlayerCount() int
	LegalResponses() []Response
}

// Option configures the collaborators of a Game.
type Option func(*Game)

// WithLogger routes the game's debug logging to logger.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(g *Game) { g.log = logger }
}

// WithPicker sets the random source used for penalty discards.
func WithPicker(p hand.Picker) Option {
	return func(g *Game) { g.rand = p }
}

// New starts a game for playerCount players with full hands, empty piles and
// player 0 to commit first. It panics unless 3 <= playerCount <= 6.
func New(playerCount int, opts ...Option) *Game {
	g, err := NewBuilder(nil, nil).WithPlayers(playerCount).WithOptions(opts...).Build()
	if err != nil {
		panic(err)
	}
	return g
}

func newGame(scores []int, hands []hand.Hand, piles []hand.Pile, state State, pending events.Event, opts []Option) *Game {
	g := &Game{
		scores:  scores,
		hands:   hands,
		piles:   piles,
		state:   state,
		pending: pending,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		g.log = discard
	}
	if g.rand == nil {
		g.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return g
}

// --- Read accessors; all return copies ---

// Scores returns the number of challenges each player has won.
func (g *Game) Scores() []int {
	return append([]int(nil), g.scores...)
}

// Hands returns each player's cards, committed ones included.
func (g *Game) Hands() []hand.Hand {
	return append([]hand.Hand(nil), g.hands...)
}

// Piles returns each player's committed cards, bottom first.
func (g *Game) Piles() []hand.Pile {
	return append([]hand.Pile(nil), g.piles...)
}

// State returns the current phase of play.
func (g *Game) State() State {
	return g.state.clone()
}

// Pending returns the buffered notification, or nil.
func (g *Game) Pending() events.Event {
	return g.pending
}

// PlayerCount is the number of seats, eliminated players included.
func (g *Game) PlayerCount() int {
	return len(g.hands)
}

// RemainingPlayerCount is the number of players who still have cards.
func (g *Game) RemainingPlayerCount() int {
	n := 0
	for _, h := range g.hands {
		if !h.IsEmpty() {
			n++
		}
	}
	return n
}

// Winner reports the player who has won the game, if any.
func (g *Game) Winner() (int, bool) {
	for i, s := range g.scores {
		if s >= WinningScore {
			return i, true
		}
	}
	if g.RemainingPlayerCount() == 1 {
		for i, h := range g.hands {
			if !h.IsEmpty() {
				return i, true
			}
		}
	}
	return 0, false
}

// Snapshot exports the raw state, suitable for CreateFrom.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Scores:  g.Scores(),
		Hands:   g.Hands(),
		Piles:   g.Piles(),
		State:   g.State(),
		Pending: g.pending,
	}
}

// --- Turn order ---

func (g *Game) isOut(player int) bool {
	return g.hands[player].IsEmpty()
}

// nextPlayer returns the first player after from who still has cards and,
// when passed is non-nil, hasn't passed. Finding nobody is a bug in the
// caller and panics rather than looping forever.
func (g *Game) nextPlayer(from int, passed []bool) int {
	n := g.PlayerCount()
	for step := 1; step <= n; step++ {
		p := (from + step) % n
		if g.isOut(p) || (passed != nil && passed[p]) {
			continue
		}
		return p
	}
	panic("game: no eligible player to take the next turn")
}

func (g *Game) cardsPlayed() int {
	n := 0
	for _, p := range g.piles {
		n += p.Len()
	}
	return n
}

// available is what a player can still commit: hand minus pile.
func (g *Game) available(player int) hand.Hand {
	played, err := g.piles[player].Hand()
	if err != nil {
		panic(err)
	}
	rest, err := g.hands[player].Sub(played)
	if err != nil {
		panic(err)
	}
	return rest
}

func (g *Game) clearPiles() {
	for i := range g.piles {
		g.piles[i] = hand.Pile{}
	}
}
