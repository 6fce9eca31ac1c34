package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoshDreamland/FreeCell-Solver/card"
)

func wonBoard() Board {
	b := NewBoard()
	for s := card.Spade; s <= card.Club; s++ {
		b.Foundation[s] = uint8(card.King)
	}
	return b
}

func TestIsWon(t *testing.T) {
	assert.True(t, wonBoard().IsWon(), "all-king foundation should be won")
	b := wonBoard()
	b.Foundation[card.Heart] = uint8(card.Queen)
	assert.False(t, b.IsWon(), "foundation short of a king should not be won")
}

func TestCompletion(t *testing.T) {
	assert.Equal(t, 100, wonBoard().Completion())
	assert.Equal(t, 0, NewBoard().Completion())
}

func TestCloneIsIndependent(t *testing.T) {
	b := NewBoard()
	b.Cascades[0] = []card.Card{{Suit: card.Spade, Face: card.Ace}}
	c := b.Clone()
	c.Cascades[0][0] = card.Card{Suit: card.Heart, Face: card.King}
	assert.Equal(t, card.Ace, b.Cascades[0][0].Face, "mutating a clone's cascade should not mutate the original")
}

func TestSerializeExcludesReserve(t *testing.T) {
	b := NewBoard()
	b.Cascades[0] = []card.Card{{Suit: card.Spade, Face: card.Ace}}
	a := b
	a.Reserve = []card.Card{{Suit: card.Heart, Face: card.Two}, {Suit: card.Club, Face: card.Three}}
	c := b
	c.Reserve = []card.Card{{Suit: card.Club, Face: card.Three}, {Suit: card.Heart, Face: card.Two}}

	assert.Equal(t, a.Serialize(), c.Serialize(), "reserve-slot permutation should not change the fingerprint")
}

func TestSerializeDiffersOnCascade(t *testing.T) {
	b1 := NewBoard()
	b1.Cascades[0] = []card.Card{{Suit: card.Spade, Face: card.Ace}}
	b2 := NewBoard()
	b2.Cascades[0] = []card.Card{{Suit: card.Spade, Face: card.Two}}
	assert.NotEqual(t, b1.Serialize(), b2.Serialize(), "different cascade contents should not share a fingerprint")
}

func TestValidateCountsFiftyTwo(t *testing.T) {
	b := NewBoard()
	b.Cascades[0] = []card.Card{{Suit: card.Spade, Face: card.Ace}}
	assert.Error(t, b.Validate(), "a board with only one card should fail validation")
}

func TestValidateDuplicateCard(t *testing.T) {
	b := referenceLikeBoard(t)
	b.Cascades[0] = append(b.Cascades[0], b.Cascades[1][0])
	assert.Error(t, b.Validate(), "duplicated card should fail validation")
}

func TestAppliersDoNotMutateInput(t *testing.T) {
	b := NewBoard()
	b.Cascades[0] = []card.Card{{Suit: card.Spade, Face: card.Ace}}
	b.Foundation[card.Spade] = 0

	out := b.TableauToFoundation(0)
	assert.Len(t, b.Cascades[0], 1, "TableauToFoundation mutated the receiver's cascade")
	assert.Equal(t, uint8(card.Ace), out.Foundation[card.Spade])
	assert.Empty(t, out.Cascades[0], "TableauToFoundation result should have emptied the cascade")
}

func TestReserveRoundTrip(t *testing.T) {
	b := NewBoard()
	b.Cascades[0] = []card.Card{{Suit: card.Spade, Face: card.Ace}}
	toReserve := b.TableauToReserve(0)
	require.Len(t, toReserve.Reserve, 1)
	require.Empty(t, toReserve.Cascades[0])

	back := toReserve.ReserveToTableau(0, 1)
	assert.Empty(t, back.Reserve)
	assert.Len(t, back.Cascades[1], 1)
}

func TestFoundationRoundTrip(t *testing.T) {
	b := NewBoard()
	b.Foundation[card.Spade] = uint8(card.Two)
	down := b.FoundationToTableau(card.Spade, 0)
	assert.Equal(t, uint8(card.Ace), down.Foundation[card.Spade])
	top, ok := down.CascadeTop(0)
	require.True(t, ok)
	assert.Equal(t, card.Card{Suit: card.Spade, Face: card.Two}, top)
}

func TestEmptyCascades(t *testing.T) {
	b := NewBoard()
	b.Cascades[3] = []card.Card{{Suit: card.Spade, Face: card.Ace}}
	empty := b.EmptyCascades()
	assert.Len(t, empty, NumCascades-1)
	assert.NotContains(t, empty, 3, "cascade 3 should not be reported empty")
}

// referenceLikeBoard builds a board containing each of the 52 cards exactly
// once, split arbitrarily across the eight cascades, for tests that need a
// structurally valid starting point.
func referenceLikeBoard(t *testing.T) Board {
	t.Helper()
	b := NewBoard()
	i := 0
	for s := card.Spade; s <= card.Club; s++ {
		for f := card.Ace; f <= card.King; f++ {
			b.Cascades[i%NumCascades] = append(b.Cascades[i%NumCascades], card.Card{Suit: s, Face: f})
			i++
		}
	}
	require.NoError(t, b.Validate(), "referenceLikeBoard is not valid")
	return b
}
