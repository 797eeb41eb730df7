package stats

import (
	"testing"

	"skull-toolbox/internal/events"

	"github.com/stretchr/testify/assert"
)

func TestCollector(t *testing.T) {
	c := NewCollector([]string{"Ana", "Bo", "Cy"})
	for _, e := range []events.Event{
		events.InputRequired{Player: 0, Input: events.InputPlayCard},
		events.BidStarted{},
		events.ChallengeStarted{},
		events.ChallengeWon{Player: 1},
		events.ChallengeStarted{},
		events.ChallengerRevealedPenalty{Challenger: 0, Holder: 2},
		events.ChallengeStarted{},
		events.ChallengerRevealedPenalty{Challenger: 0, Holder: 0},
		events.PlayerEliminated{Player: 0},
		events.BidStarted{},
		events.ChallengeAndGameWon{Player: 1},
		// a second match with the same seating
		events.ChallengerRevealedPenalty{Challenger: 9, Holder: 9},
		events.LastPlayerStanding{Player: 2},
	} {
		c.HandleEvent(e)
	}

	assert.Equal(t, 2, c.Matches())
	assert.Equal(t, 2, c.BidsOpened())
	assert.Equal(t, []SeatStats{
		{Name: "Ana", Challenges: 2, OwnPenalties: 1, Eliminations: 1},
		{Name: "Bo", Wins: 1, Challenges: 2, ChallengesWon: 2},
		{Name: "Cy", Wins: 1, LastStanding: 1, Defences: 1},
	}, c.Seats())
	assert.InDelta(t, 0.5, c.Seats()[1].WinRate(c.Matches()), 1e-9)
	assert.Zero(t, SeatStats{}.WinRate(0))
}
