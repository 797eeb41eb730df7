package game

import (
	"math/rand"
	"reflect"
	"testing"

	"skull-toolbox/internal/events"
	"skull-toolbox/internal/hand"

	"pgregory.net/rapid"
)

const maxPropertySteps = 5000

// randomResponse draws any response, legal or not.
func randomResponse(t *rapid.T) Response {
	switch rapid.IntRange(0, 3).Draw(t, "kind") {
	case 0:
		return PlayCard{Card: rapid.SampledFrom([]hand.Card{hand.Safe, hand.Penalty}).Draw(t, "card")}
	case 1:
		return Bid{N: rapid.IntRange(-1, 25).Draw(t, "bid")}
	case 2:
		return Pass{}
	default:
		return Flip{
			Player: rapid.IntRange(-1, MaxPlayers).Draw(t, "flip player"),
			Index:  rapid.IntRange(-1, hand.PileCapacity).Draw(t, "flip index"),
		}
	}
}

func contains(rs []Response, r Response) bool {
	for _, x := range rs {
		if x == r {
			return true
		}
	}
	return false
}

func TestRandomPlayKeepsInvariants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		players := rapid.IntRange(MinPlayers, MaxPlayers).Draw(t, "players")
		seed := rapid.Int64().Draw(t, "seed")
		g := New(players, WithPicker(rand.New(rand.NewSource(seed))), WithLogger(quietLogger()))

		eliminated := make([]bool, players)
		played, flipped := 0, 0
		check := func(after any) {
			if err := Validate(g.Snapshot()); err != nil {
				t.Fatalf("invalid state after %v: %v", after, err)
			}
			now := g.cardsPlayed()
			if now < played && now != 0 {
				t.Fatalf("committed cards dropped from %d to %d without a reset", played, now)
			}
			played = now

			s, ok := g.State().(Resolving)
			if !ok {
				flipped = 0
				return
			}
			if s.FlippedCount() < flipped {
				t.Fatalf("flipped cards dropped from %d to %d", flipped, s.FlippedCount())
			}
			if s.Target > now {
				t.Fatalf("target %d above the %d cards committed", s.Target, now)
			}
			flipped = s.FlippedCount()
		}

		for step := 0; step < maxPropertySteps; step++ {
			ev := g.WhatNext()
			check(ev)

			switch ev := ev.(type) {
			case events.PlayerEliminated:
				if eliminated[ev.Player] {
					t.Fatalf("player %d eliminated twice", ev.Player)
				}
				eliminated[ev.Player] = true
			case events.InputRequired:
				if eliminated[ev.Player] {
					t.Fatalf("eliminated player %d asked for %s", ev.Player, ev.Input)
				}
				if b, ok := g.State().(Bidding); ok && b.Passed[ev.Player] {
					t.Fatalf("player %d asked to bid after passing", ev.Player)
				}
			}
			if events.IsTerminal(ev) {
				if g.Respond(Pass{}) != ErrGameOver {
					t.Fatalf("game accepted a response after %v", ev)
				}
				return
			}
			if _, ok := ev.(events.InputRequired); !ok {
				continue
			}

			legal := g.LegalResponses()
			if len(legal) == 0 {
				t.Fatalf("no legal response in %v", g.State())
			}
			r := rapid.SampledFrom(legal).Draw(t, "response")
			if err := g.Respond(r); err != nil {
				t.Fatalf("legal response %v rejected: %v", r, err)
			}
			check(r)
		}
	})
}

func TestLegalResponsesMatchRespond(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		players := rapid.IntRange(MinPlayers, MaxPlayers).Draw(t, "players")
		g := New(players, WithPicker(rand.New(rand.NewSource(rapid.Int64().Draw(t, "seed")))))

		steps := rapid.IntRange(0, 200).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			ev := g.WhatNext()
			if events.IsTerminal(ev) {
				return
			}
			if _, ok := ev.(events.InputRequired); !ok {
				continue
			}
			legal := g.LegalResponses()

			candidate := randomResponse(t)
			probe := MustCreateFrom(g.Snapshot(), WithPicker(hand.FixedPicker(0)))
			before := probe.Snapshot()
			err := probe.Respond(candidate)
			switch {
			case contains(legal, candidate) && err != nil:
				t.Fatalf("legal response %v rejected in %v: %v", candidate, g.State(), err)
			case !contains(legal, candidate) && err == nil:
				t.Fatalf("response %v accepted in %v but not listed as legal", candidate, g.State())
			}
			if err != nil && !reflect.DeepEqual(before, probe.Snapshot()) {
				t.Fatalf("rejected response %v changed the game", candidate)
			}

			if err := g.Respond(rapid.SampledFrom(legal).Draw(t, "response")); err != nil {
				t.Fatal(err)
			}
		}
	})
}
