package stats

import (
	"skull-toolbox/internal/events"
)

// SeatStats is what one seat did across every observed match.
type SeatStats struct {
	Name          string
	Wins          int
	LastStanding  int
	Challenges    int
	ChallengesWon int
	// OwnPenalties counts challenges lost to the challenger's own card.
	OwnPenalties int
	// Defences counts challenges this seat's penalty card stopped.
	Defences     int
	Eliminations int
}

// WinRate is the share of matches this seat won.
func (s SeatStats) WinRate(matches int) float64 {
	if matches == 0 {
		return 0
	}
	return float64(s.Wins) / float64(matches)
}

// Collector listens to the events of any number of matches played with the
// same seating and tallies outcomes per seat.
type Collector struct {
	seats   []SeatStats
	matches int
	bids    int
}

func NewCollector(names []string) *Collector {
	seats := make([]SeatStats, len(names))
	for i, n := range names {
		seats[i].Name = n
	}
	return &Collector{seats: seats}
}

func (c *Collector) HandleEvent(e events.Event) {
	switch event := e.(type) {
	case events.BidStarted:
		c.bids++
	case events.ChallengeWon:
		c.seat(event.Player, func(s *SeatStats) {
			s.Challenges++
			s.ChallengesWon++
		})
	case events.ChallengeAndGameWon:
		c.matches++
		c.seat(event.Player, func(s *SeatStats) {
			s.Challenges++
			s.ChallengesWon++
			s.Wins++
		})
	case events.ChallengerRevealedPenalty:
		c.seat(event.Challenger, func(s *SeatStats) {
			s.Challenges++
			if event.Holder == event.Challenger {
				s.OwnPenalties++
			}
		})
		if event.Holder != event.Challenger {
			c.seat(event.Holder, func(s *SeatStats) { s.Defences++ })
		}
	case events.PlayerEliminated:
		c.seat(event.Player, func(s *SeatStats) { s.Eliminations++ })
	case events.LastPlayerStanding:
		c.matches++
		c.seat(event.Player, func(s *SeatStats) {
			s.Wins++
			s.LastStanding++
		})
	}
}

func (c *Collector) seat(i int, f func(*SeatStats)) {
	if i >= 0 && i < len(c.seats) {
		f(&c.seats[i])
	}
}

// Matches is the number of finished matches observed.
func (c *Collector) Matches() int { return c.matches }

// BidsOpened is the number of bidding phases observed.
func (c *Collector) BidsOpened() int { return c.bids }

// Seats returns a copy of the per-seat tallies.
func (c *Collector) Seats() []SeatStats {
	return append([]SeatStats(nil), c.seats...)
}
