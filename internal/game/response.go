package game

import (
	"fmt"

	"skull-toolbox/internal/events"
	"skull-toolbox/internal/hand"
)

// Response is the action a player hands to Game.Respond.
type Response interface {
	fmt.Stringer
	isResponse()
}

// PlayCard commits a card from the current player's hand to their pile.
type PlayCard struct {
	Card hand.Card
}

// Bid opens or raises the bidding to N cards.
type Bid struct {
	N int
}

// Pass drops the current bidder out of the bidding.
type Pass struct{}

// Flip reveals the card at Index of Player's pile during a challenge.
type Flip struct {
	Player int
	Index  int
}

func (PlayCard) isResponse() {}
func (Bid) isResponse()      {}
func (Pass) isResponse()     {}
func (Flip) isResponse()     {}

func (r PlayCard) String() string { return "play " + r.Card.String() }
func (r Bid) String() string      { return fmt.Sprintf("bid %d", r.N) }
func (Pass) String() string       { return "pass" }
func (r Flip) String() string     { return fmt.Sprintf("flip %d %d", r.Player, r.Index) }

// ErrorKind classifies a rejected response.
type ErrorKind int

const (
	// KindPendingEvent: an event must be drained with WhatNext first.
	KindPendingEvent ErrorKind = iota
	KindIncorrectInputType
	KindCardNotInHand
	KindBidTooLow
	KindBidTooHigh
	KindInvalidIndex
	KindCardAlreadyFlipped
	KindManuallyFlippingOwnCards
	KindGameOver
)

// ResponseError is returned by Respond. The game is left untouched, so the
// caller can retry with a corrected response.
type ResponseError struct {
	Kind ErrorKind
	// Expected is the input type the game wanted (KindIncorrectInputType).
	Expected events.InputType
	// Limit is the minimum (KindBidTooLow) or maximum (KindBidTooHigh)
	// acceptable bid.
	Limit int
}

var (
	ErrPendingEvent             = &ResponseError{Kind: KindPendingEvent}
	ErrCardNotInHand            = &ResponseError{Kind: KindCardNotInHand}
	ErrInvalidIndex             = &ResponseError{Kind: KindInvalidIndex}
	ErrCardAlreadyFlipped       = &ResponseError{Kind: KindCardAlreadyFlipped}
	ErrManuallyFlippingOwnCards = &ResponseError{Kind: KindManuallyFlippingOwnCards}
	ErrGameOver                 = &ResponseError{Kind: KindGameOver}
)

func incorrectInputType(expected events.InputType) *ResponseError {
	return &ResponseError{Kind: KindIncorrectInputType, Expected: expected}
}

func bidTooLow(min int) *ResponseError {
	return &ResponseError{Kind: KindBidTooLow, Limit: min}
}

func bidTooHigh(max int) *ResponseError {
	return &ResponseError{Kind: KindBidTooHigh, Limit: max}
}

// Is matches on Kind so that errors.Is(err, ErrPendingEvent) works for any
// pending-event error; payloads are ignored.
func (e *ResponseError) Is(target error) bool {
	t, ok := target.(*ResponseError)
	return ok && t.Kind == e.Kind
}

func (e *ResponseError) Error() string {
	switch e.Kind {
	case KindPendingEvent:
		return "there's a pending event that needs to be processed with WhatNext"
	case KindIncorrectInputType:
		return fmt.Sprintf("incorrect input type, expected %s", e.Expected)
	case KindCardNotInHand:
		return "the player doesn't have that card"
	case KindBidTooLow:
		return fmt.Sprintf("bid too low, needs to be at least %d", e.Limit)
	case KindBidTooHigh:
		return fmt.Sprintf("bid too high, needs to be at most %d", e.Limit)
	case KindInvalidIndex:
		return "invalid index, outside of allowed range"
	case KindCardAlreadyFlipped:
		return "that card has already been flipped"
	case KindManuallyFlippingOwnCards:
		return "challenger is trying to flip their own cards, which are flipped automatically"
	case KindGameOver:
		return "the game is over"
	default:
		return fmt.Sprintf("response error %d", int(e.Kind))
	}
}
