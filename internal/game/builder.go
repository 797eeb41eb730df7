package game

import (
	"fmt"

	"skull-toolbox/internal/events"
	"skull-toolbox/internal/hand"

	"github.com/sirupsen/logrus"
)

// Builder provides a step-by-step API for constructing a Game object.
type Builder struct {
	log        logrus.FieldLogger
	rand       hand.Picker
	numPlayers int
	opts       []Option
}

// NewBuilder creates a new Builder with its collaborators. A nil logger
// discards output; a nil picker falls back to a time-seeded source.
func NewBuilder(logger logrus.FieldLogger, rand hand.Picker) *Builder {
	return &Builder{
		log:  logger,
		rand: rand,
	}
}

func (b *Builder) WithPlayers(n int) *Builder {
	b.numPlayers = n
	return b
}

// WithOptions appends options applied after the builder's own collaborators.
func (b *Builder) WithOptions(opts ...Option) *Builder {
	b.opts = append(b.opts, opts...)
	return b
}

func (b *Builder) options() []Option {
	var opts []Option
	if b.log != nil {
		opts = append(opts, WithLogger(b.log))
	}
	if b.rand != nil {
		opts = append(opts, WithPicker(b.rand))
	}
	return append(opts, b.opts...)
}

// Build constructs a fresh game after all options have been configured.
func (b *Builder) Build() (*Game, error) {
	if err := checkPlayerCount(b.numPlayers); err != nil {
		return nil, err
	}

	hands := make([]hand.Hand, b.numPlayers)
	for i := range hands {
		hands[i] = hand.New()
	}
	g := newGame(
		make([]int, b.numPlayers),
		hands,
		make([]hand.Pile, b.numPlayers),
		Committing{CurrentPlayer: 0},
		nil,
		b.options(),
	)
	g.log.WithField("players", b.numPlayers).Debug("Game created")
	return g, nil
}

// FromSnapshot constructs a game from raw state. The snapshot is validated
// first and rejected with every violated invariant.
func (b *Builder) FromSnapshot(s Snapshot) (*Game, error) {
	if err := Validate(s); err != nil {
		return nil, fmt.Errorf("invalid game state: %w", err)
	}
	s = s.clone()
	g := newGame(s.Scores, s.Hands, s.Piles, s.State, s.Pending, b.options())
	g.log.WithField("state", s.State).Debug("Game restored from snapshot")
	return g, nil
}

func checkPlayerCount(n int) error {
	if n < MinPlayers || n > MaxPlayers {
		return fmt.Errorf("invalid number of players %d, must be between %d and %d", n, MinPlayers, MaxPlayers)
	}
	return nil
}

// Snapshot is the raw state of a game, used to seed a game mid-match.
type Snapshot struct {
	Scores  []int
	Hands   []hand.Hand
	Piles   []hand.Pile
	State   State
	Pending events.Event
}

func (s Snapshot) clone() Snapshot {
	out := Snapshot{
		Scores:  append([]int(nil), s.Scores...),
		Hands:   append([]hand.Hand(nil), s.Hands...),
		Piles:   append([]hand.Pile(nil), s.Piles...),
		Pending: s.Pending,
	}
	if s.State != nil {
		out.State = s.State.clone()
	}
	return out
}

// CreateFrom builds a game from raw state after validating it.
func CreateFrom(s Snapshot, opts ...Option) (*Game, error) {
	return NewBuilder(nil, nil).WithOptions(opts...).FromSnapshot(s)
}

// MustCreateFrom is CreateFrom for states that are known to be consistent.
// An inconsistent state is a programming error and panics.
func MustCreateFrom(s Snapshot, opts ...Option) *Game {
	g, err := CreateFrom(s, opts...)
	if err != nil {
		panic(err)
	}
	return g
}
