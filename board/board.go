// Package board defines the compact FreeCell board representation: eight
// cascades, up to four reserve slots, and four foundation counters. It owns
// canonical serialization (the fingerprint used by the search graph) and
// the six move appliers, each of which produces a new Board rather than
// mutating its receiver.
package board

import (
	"bytes"
	"fmt"

	"github.com/samber/lo"

	"github.com/JoshDreamland/FreeCell-Solver/card"
	"github.com/JoshDreamland/FreeCell-Solver/invariant"
)

// NumCascades is the fixed number of tableau cascades.
const NumCascades = 8

// MaxReserve is the number of reserve slots.
const MaxReserve = 4

// Board is the canonical FreeCell game state. The zero Board is the empty
// board (no cards anywhere, foundation all at zero), which is what NewBoard
// returns; a dealt board comes from a dealio parse.
//
// Board is a value type: every applier below returns a new Board and never
// mutates its receiver.
type Board struct {
	Cascades   [NumCascades][]card.Card
	Reserve    []card.Card // unordered bag, len() <= MaxReserve
	Foundation [4]uint8    // indexed by card.Suit, each 0..13
}

// NewBoard returns an empty board: no cascades, no reserve, foundation all
// at zero.
func NewBoard() Board {
	return Board{}
}

// Clone returns a deep copy of b, since Cascades/Reserve are slices and
// sharing backing arrays would violate the "appliers never mutate the
// input" contract.
func (b Board) Clone() Board {
	var out Board
	for i := range b.Cascades {
		if len(b.Cascades[i]) > 0 {
			out.Cascades[i] = append([]card.Card(nil), b.Cascades[i]...)
		}
	}
	if len(b.Reserve) > 0 {
		out.Reserve = append([]card.Card(nil), b.Reserve...)
	}
	out.Foundation = b.Foundation
	return out
}

// IsWon reports whether every foundation counter has reached King (13),
// i.e. all 52 cards have migrated to the foundation.
func (b Board) IsWon() bool {
	for _, f := range b.Foundation {
		if f != uint8(card.King) {
			return false
		}
	}
	return true
}

// Completion returns progress as a percentage in [0, 100]: the sum of the
// foundation counters, scaled by 100/52.
func (b Board) Completion() int {
	sum := 0
	for _, f := range b.Foundation {
		sum += int(f)
	}
	return sum * 100 / 52
}

// CascadeTop returns the top (tail) card of cascade i and whether the
// cascade is non-empty.
func (b Board) CascadeTop(i int) (card.Card, bool) {
	c := b.Cascades[i]
	if len(c) == 0 {
		return card.Card{}, false
	}
	return c[len(c)-1], true
}

// EmptyCascades returns the indices of cascades with no cards, in
// ascending order.
func (b Board) EmptyCascades() []int {
	idx := make([]int, 0, NumCascades)
	for i := range b.Cascades {
		idx = append(idx, i)
	}
	return lo.Filter(idx, func(i int, _ int) bool { return len(b.Cascades[i]) == 0 })
}

// Serialize emits the canonical fingerprint used for de-duplication in the
// search graph: 4 foundation bytes, then for each cascade a length byte
// followed by that many card bytes. The reserve is deliberately excluded
// so that reserve-slot permutations collapse to one fingerprint.
func (b Board) Serialize() []byte {
	var buf bytes.Buffer
	for _, f := range b.Foundation {
		buf.WriteByte(f)
	}
	for _, c := range b.Cascades {
		buf.WriteByte(byte(len(c)))
		for _, cd := range c {
			buf.WriteByte(cd.Byte())
		}
	}
	return buf.Bytes()
}

// Validate checks structural invariants: every one of the 52 cards
// appears exactly once across cascades, reserve, and the implicit
// foundation ranks; foundation counters are in range; reserve has at most
// MaxReserve cards. It returns a descriptive error on the first violation
// found.
func (b Board) Validate() error {
	if len(b.Reserve) > MaxReserve {
		return fmt.Errorf("reserve holds %d cards, exceeds max %d", len(b.Reserve), MaxReserve)
	}

	var seen [4][14]bool // seen[suit][face]
	mark := func(c card.Card) error {
		if seen[c.Suit][c.Face] {
			return fmt.Errorf("card %s appears more than once", c)
		}
		seen[c.Suit][c.Face] = true
		return nil
	}

	for i, casc := range b.Cascades {
		for _, c := range casc {
			if c.IsEmpty() {
				return fmt.Errorf("cascade %d contains the empty sentinel card", i)
			}
			if err := mark(c); err != nil {
				return err
			}
		}
	}
	for _, c := range b.Reserve {
		if c.IsEmpty() {
			return fmt.Errorf("reserve contains the empty sentinel card")
		}
		if err := mark(c); err != nil {
			return err
		}
	}
	for s, f := range b.Foundation {
		if f > uint8(card.King) {
			return fmt.Errorf("foundation[%s] = %d exceeds King", card.Suit(s), f)
		}
		for rank := card.Ace; rank <= card.Face(f); rank++ {
			if err := mark(card.Card{Suit: card.Suit(s), Face: rank}); err != nil {
				return err
			}
		}
	}

	total := 0
	for _, casc := range b.Cascades {
		total += len(casc)
	}
	total += len(b.Reserve)
	for _, f := range b.Foundation {
		total += int(f)
	}
	if total != 52 {
		return fmt.Errorf("board accounts for %d cards, want 52", total)
	}
	return nil
}

// TableauToFoundation moves the top card of cascade i onto the foundation.
// The caller must have already checked legality (see package movegen).
func (b Board) TableauToFoundation(i int) Board {
	out := b.Clone()
	invariant.Check(len(out.Cascades[i]) > 0, "TableauToFoundation: cascade %d is empty", i)
	c := out.Cascades[i][len(out.Cascades[i])-1]
	out.Cascades[i] = out.Cascades[i][:len(out.Cascades[i])-1]
	out.Foundation[c.Suit] = uint8(c.Face)
	return out
}

// ReserveToFoundation moves the reserve card at index j onto the
// foundation.
func (b Board) ReserveToFoundation(j int) Board {
	out := b.Clone()
	invariant.Check(j >= 0 && j < len(out.Reserve), "ReserveToFoundation: reserve index %d out of bounds (len %d)", j, len(out.Reserve))
	c := out.Reserve[j]
	out.Reserve = removeAt(out.Reserve, j)
	out.Foundation[c.Suit] = uint8(c.Face)
	return out
}

// FoundationToTableau moves the top card off foundation suit s onto
// cascade i.
func (b Board) FoundationToTableau(s card.Suit, i int) Board {
	out := b.Clone()
	invariant.Check(out.Foundation[s] > 0, "FoundationToTableau: foundation %s is empty", s)
	face := card.Face(out.Foundation[s])
	out.Foundation[s] = uint8(face - 1)
	out.Cascades[i] = append(out.Cascades[i], card.Card{Suit: s, Face: face})
	return out
}

// TableauToTableau moves the top card of cascade i onto cascade j.
func (b Board) TableauToTableau(i, j int) Board {
	out := b.Clone()
	invariant.Check(len(out.Cascades[i]) > 0, "TableauToTableau: cascade %d is empty", i)
	c := out.Cascades[i][len(out.Cascades[i])-1]
	out.Cascades[i] = out.Cascades[i][:len(out.Cascades[i])-1]
	out.Cascades[j] = append(out.Cascades[j], c)
	return out
}

// TableauToReserve moves the top card of cascade i into a free reserve
// slot.
func (b Board) TableauToReserve(i int) Board {
	out := b.Clone()
	invariant.Check(len(out.Cascades[i]) > 0, "TableauToReserve: cascade %d is empty", i)
	invariant.Check(len(out.Reserve) < MaxReserve, "TableauToReserve: reserve already holds %d cards", len(out.Reserve))
	c := out.Cascades[i][len(out.Cascades[i])-1]
	out.Cascades[i] = out.Cascades[i][:len(out.Cascades[i])-1]
	out.Reserve = append(out.Reserve, c)
	return out
}

// ReserveToTableau moves the reserve card at index j onto cascade i.
func (b Board) ReserveToTableau(j, i int) Board {
	out := b.Clone()
	invariant.Check(j >= 0 && j < len(out.Reserve), "ReserveToTableau: reserve index %d out of bounds (len %d)", j, len(out.Reserve))
	c := out.Reserve[j]
	out.Reserve = removeAt(out.Reserve, j)
	out.Cascades[i] = append(out.Cascades[i], c)
	return out
}

func removeAt(cards []card.Card, idx int) []card.Card {
	out := make([]card.Card, 0, len(cards)-1)
	out = append(out, cards[:idx]...)
	out = append(out, cards[idx+1:]...)
	return out
}
