package hand

import "strings"

// Card is one of the two card kinds a player owns.
type Card int

const (
	Safe Card = iota
	Penalty
)

func (c Card) String() string {
	switch c {
	case Safe:
		return "Safe"
	case Penalty:
		return "Penalty"
	default:
		return "Unknown"
	}
}

// ParseCard maps a card name (case-insensitive, "s"/"p" accepted) to a Card.
func ParseCard(s string) (Card, bool) {
	switch strings.ToLower(s) {
	case "safe", "s":
		return Safe, true
	case "penalty", "p":
		return Penalty, true
	}
	return Safe, false
}
