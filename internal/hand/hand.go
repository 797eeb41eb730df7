package hand

import (
	"errors"
	"fmt"
	"strings"
)

// MaxSafe is the number of safe cards in a starting hand.
const MaxSafe = 3

var (
	ErrMultiplePenalty = errors.New("invalid hand, multiple penalty cards")
	ErrTooManySafe     = errors.New("invalid hand, too many safe cards")
)

// NotSubsetError is returned by Sub when the right-hand side holds cards
// the left-hand side doesn't.
type NotSubsetError struct {
	Left, Right Hand
}

func (e *NotSubsetError) Error() string {
	return fmt.Sprintf("right side of subtraction has cards the left side doesn't: left %s, right %s", e.Left, e.Right)
}

// Hand is the multiset of cards a player still owns: at most one penalty
// card and up to three safe cards. The zero value is an empty hand.
type Hand struct {
	penalty bool
	safe    int
}

// New returns the full starting hand.
func New() Hand {
	return Hand{penalty: true, safe: MaxSafe}
}

// Empty returns a hand with no cards, the hand of an eliminated player.
func Empty() Hand {
	return Hand{}
}

// FromCards builds a hand out of a sequence of cards.
func FromCards(cards ...Card) (Hand, error) {
	var h Hand
	for _, c := range cards {
		var err error
		if h, err = h.Add(c); err != nil {
			return Hand{}, err
		}
	}
	return h, nil
}

// MustFromCards is FromCards that panics on an invalid sequence.
func MustFromCards(cards ...Card) Hand {
	h, err := FromCards(cards...)
	if err != nil {
		panic(err)
	}
	return h
}

func (h Hand) HasPenalty() bool { return h.penalty }
func (h Hand) SafeCount() int   { return h.safe }

func (h Hand) Has(c Card) bool {
	if c == Penalty {
		return h.penalty
	}
	return h.safe > 0
}

func (h Hand) Count() int {
	if h.penalty {
		return h.safe + 1
	}
	return h.safe
}

func (h Hand) IsEmpty() bool { return h.Count() == 0 }

// Valid reports whether the hand could have come from a starting hand.
func (h Hand) Valid() bool {
	return h.safe >= 0 && h.safe <= MaxSafe
}

// IsSupersetOf reports whether every card of other is also in h.
func (h Hand) IsSupersetOf(other Hand) bool {
	penaltyOK := h.penalty || !other.penalty
	return penaltyOK && h.safe >= other.safe
}

// Sub returns the cards of h that are not in other.
func (h Hand) Sub(other Hand) (Hand, error) {
	if !h.IsSupersetOf(other) {
		return Hand{}, &NotSubsetError{Left: h, Right: other}
	}
	// With the subset check done, a penalty on both sides cancels out.
	return Hand{penalty: h.penalty != other.penalty, safe: h.safe - other.safe}, nil
}

// Add returns h with one more card of kind c.
func (h Hand) Add(c Card) (Hand, error) {
	switch c {
	case Penalty:
		if h.penalty {
			return h, ErrMultiplePenalty
		}
		h.penalty = true
	default:
		if h.safe >= MaxSafe {
			return h, ErrTooManySafe
		}
		h.safe++
	}
	return h, nil
}

// DiscardOne removes a card chosen uniformly at random and returns its kind.
// It panics when the hand is empty.
func (h *Hand) DiscardOne(p Picker) Card {
	n := h.Count()
	if n == 0 {
		panic("hand: discard from an empty hand")
	}
	if h.penalty && p.Intn(n) == 0 {
		h.penalty = false
		return Penalty
	}
	h.safe--
	return Safe
}

// Cards lists the hand's cards, penalty first.
func (h Hand) Cards() []Card {
	cards := make([]Card, 0, h.Count())
	if h.penalty {
		cards = append(cards, Penalty)
	}
	for i := 0; i < h.safe; i++ {
		cards = append(cards, Safe)
	}
	return cards
}

func (h Hand) String() string {
	return cardsString(h.Cards())
}

func cardsString(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
