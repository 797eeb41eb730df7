package hand

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromCards(t *testing.T) {
	t.Run("it builds a hand from valid cards", func(t *testing.T) {
		h, err := FromCards(Safe, Penalty, Safe)
		require.NoError(t, err)
		assert.True(t, h.HasPenalty())
		assert.Equal(t, 2, h.SafeCount())
		assert.Equal(t, 3, h.Count())
	})

	t.Run("it rejects a second penalty card", func(t *testing.T) {
		_, err := FromCards(Penalty, Safe, Penalty)
		assert.ErrorIs(t, err, ErrMultiplePenalty)
	})

	t.Run("it rejects a fourth safe card", func(t *testing.T) {
		_, err := FromCards(Safe, Safe, Safe, Safe)
		assert.ErrorIs(t, err, ErrTooManySafe)
	})

	t.Run("an empty sequence is the empty hand", func(t *testing.T) {
		h, err := FromCards()
		require.NoError(t, err)
		assert.True(t, h.IsEmpty())
		assert.Equal(t, Empty(), h)
	})
}

func TestHandMembership(t *testing.T) {
	full := New()
	assert.True(t, full.Has(Penalty))
	assert.True(t, full.Has(Safe))
	assert.Equal(t, 4, full.Count())
	assert.Equal(t, []Card{Penalty, Safe, Safe, Safe}, full.Cards())

	onlySafe := MustFromCards(Safe)
	assert.False(t, onlySafe.Has(Penalty))
	assert.True(t, onlySafe.Has(Safe))

	onlyPenalty := MustFromCards(Penalty)
	assert.False(t, onlyPenalty.Has(Safe))
	assert.Equal(t, "[Penalty]", onlyPenalty.String())
}

func TestIsSupersetOf(t *testing.T) {
	tests := []struct {
		name     string
		left     Hand
		right    Hand
		expected bool
	}{
		{"full covers anything", New(), MustFromCards(Penalty, Safe, Safe, Safe), true},
		{"penalty on the right only", MustFromCards(Safe, Safe), MustFromCards(Penalty), false},
		{"penalty on the left only", MustFromCards(Penalty, Safe), MustFromCards(Safe), true},
		{"too few safe cards", MustFromCards(Safe), MustFromCards(Safe, Safe), false},
		{"empty covers empty", Empty(), Empty(), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.left.IsSupersetOf(tt.right))
		})
	}
}

func TestSub(t *testing.T) {
	t.Run("penalty on both sides cancels", func(t *testing.T) {
		got, err := New().Sub(MustFromCards(Penalty, Safe))
		require.NoError(t, err)
		assert.Equal(t, MustFromCards(Safe, Safe), got)
	})

	t.Run("penalty kept when only on the left", func(t *testing.T) {
		got, err := New().Sub(MustFromCards(Safe, Safe, Safe))
		require.NoError(t, err)
		assert.Equal(t, MustFromCards(Penalty), got)
	})

	t.Run("it fails when the right side is not a subset", func(t *testing.T) {
		left := MustFromCards(Safe)
		right := MustFromCards(Penalty)
		_, err := left.Sub(right)

		var nse *NotSubsetError
		require.ErrorAs(t, err, &nse)
		assert.Equal(t, left, nse.Left)
		assert.Equal(t, right, nse.Right)
	})
}

func TestDiscardOne(t *testing.T) {
	t.Run("picking index zero discards the penalty card", func(t *testing.T) {
		h := New()
		discarded := h.DiscardOne(FixedPicker(0))
		assert.Equal(t, Penalty, discarded)
		assert.Equal(t, MustFromCards(Safe, Safe, Safe), h)
	})

	t.Run("any other index discards a safe card", func(t *testing.T) {
		h := New()
		discarded := h.DiscardOne(FixedPicker(3))
		assert.Equal(t, Safe, discarded)
		assert.Equal(t, MustFromCards(Penalty, Safe, Safe), h)
	})

	t.Run("a safe-only hand always loses a safe card", func(t *testing.T) {
		h := MustFromCards(Safe, Safe)
		assert.Equal(t, Safe, h.DiscardOne(FixedPicker(0)))
		assert.Equal(t, 1, h.Count())
	})

	t.Run("a lone penalty card is discarded", func(t *testing.T) {
		h := MustFromCards(Penalty)
		assert.Equal(t, Penalty, h.DiscardOne(FixedPicker(5)))
		assert.True(t, h.IsEmpty())
	})

	t.Run("it panics on an empty hand", func(t *testing.T) {
		h := Empty()
		assert.Panics(t, func() { h.DiscardOne(FixedPicker(0)) })
	})

	t.Run("the discard is weighted by card count", func(t *testing.T) {
		// GIVEN a seeded source and many full hands
		r := rand.New(rand.NewSource(7))
		penalties := 0
		const trials = 4000

		// WHEN one card is discarded from each
		for i := 0; i < trials; i++ {
			h := New()
			if h.DiscardOne(r) == Penalty {
				penalties++
			}
		}

		// THEN roughly a quarter of the discards are the penalty card
		assert.InDelta(t, trials/4, penalties, trials/20)
	})
}

func TestPile(t *testing.T) {
	t.Run("it keeps cards bottom to top", func(t *testing.T) {
		p := MustPile(Safe, Penalty)
		assert.Equal(t, 2, p.Len())
		assert.Equal(t, Safe, p.At(0))
		assert.Equal(t, Penalty, p.At(1))
		assert.True(t, p.Contains(Penalty))
		assert.Equal(t, "[Safe Penalty]", p.String())
	})

	t.Run("it refuses a fifth card", func(t *testing.T) {
		p := MustPile(Safe, Safe, Safe, Penalty)
		assert.ErrorIs(t, p.Push(Safe), ErrPileFull)
		assert.Equal(t, 4, p.Len())
	})

	t.Run("its cards must form a hand", func(t *testing.T) {
		_, err := MustPile(Penalty, Safe, Penalty).Hand()
		assert.ErrorIs(t, err, ErrMultiplePenalty)
	})

	t.Run("Cards returns a copy", func(t *testing.T) {
		p := MustPile(Safe)
		cards := p.Cards()
		cards[0] = Penalty
		assert.Equal(t, Safe, p.At(0))
	})
}

func TestParseCard(t *testing.T) {
	c, ok := ParseCard("PENALTY")
	assert.True(t, ok)
	assert.Equal(t, Penalty, c)

	c, ok = ParseCard("s")
	assert.True(t, ok)
	assert.Equal(t, Safe, c)

	_, ok = ParseCard("joker")
	assert.False(t, ok)
}
