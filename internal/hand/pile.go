package hand

import "errors"

// PileCapacity is the most cards a player can commit in one round.
const PileCapacity = 4

var ErrPileFull = errors.New("pile already holds four cards")

// Pile is the ordered stack of cards a player has committed face down,
// bottom first. The zero value is an empty pile.
type Pile struct {
	cards [PileCapacity]Card
	n     int
}

// NewPile builds a pile from cards listed bottom to top.
func NewPile(cards ...Card) (Pile, error) {
	var p Pile
	for _, c := range cards {
		if err := p.Push(c); err != nil {
			return Pile{}, err
		}
	}
	return p, nil
}

// MustPile is NewPile that panics when more than four cards are given.
func MustPile(cards ...Card) Pile {
	p, err := NewPile(cards...)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *Pile) Push(c Card) error {
	if p.n == PileCapacity {
		return ErrPileFull
	}
	p.cards[p.n] = c
	p.n++
	return nil
}

func (p Pile) Len() int { return p.n }

// At returns the card at index i, counted from the bottom.
func (p Pile) At(i int) Card {
	if i < 0 || i >= p.n {
		panic("hand: pile index out of range")
	}
	return p.cards[i]
}

func (p Pile) Cards() []Card {
	out := make([]Card, p.n)
	copy(out, p.cards[:p.n])
	return out
}

func (p Pile) Contains(c Card) bool {
	for _, pc := range p.cards[:p.n] {
		if pc == c {
			return true
		}
	}
	return false
}

// Hand returns the pile's contents as a hand, failing if the pile could
// not have come out of a single starting hand.
func (p Pile) Hand() (Hand, error) {
	return FromCards(p.cards[:p.n]...)
}

func (p Pile) String() string {
	return cardsString(p.cards[:p.n])
}
