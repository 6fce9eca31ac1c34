package dealio

import (
	"lukechampine.com/frand"

	"github.com/JoshDreamland/FreeCell-Solver/board"
	"github.com/JoshDreamland/FreeCell-Solver/card"
)

// ShuffledDeal returns a structurally valid board holding all 52 cards,
// shuffled and dealt round-robin across the 8 cascades. It exists for
// tests and benchmarks that need a randomized but always-valid starting
// position, not for anything deterministic.
func ShuffledDeal() board.Board {
	deck := make([]card.Card, 0, 52)
	for s := card.Spade; s <= card.Club; s++ {
		for f := card.Ace; f <= card.King; f++ {
			deck = append(deck, card.Card{Suit: s, Face: f})
		}
	}
	frand.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })

	var b board.Board
	for i, c := range deck {
		b.Cascades[i%board.NumCascades] = append(b.Cascades[i%board.NumCascades], c)
	}
	return b
}
