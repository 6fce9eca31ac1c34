// Package move defines the Move value type: a single-card transition
// between two locations on a board, along with human-readable rendering.
package move

import (
	"fmt"

	"github.com/JoshDreamland/FreeCell-Solver/card"
)

// Place identifies which part of the board an endpoint of a move refers
// to.
type Place uint8

const (
	PlaceCascade Place = iota
	PlaceReserve
	PlaceFoundation
)

func (p Place) String() string {
	switch p {
	case PlaceCascade:
		return "cascade"
	case PlaceReserve:
		return "reserve"
	case PlaceFoundation:
		return "foundation"
	}
	return "?"
}

// Move is a single-card transition record. Count is always 1 in this
// core: every legal transition moves exactly one card, multi-card
// supermoves are not modeled.
//
// Source is always a concrete location: the cascade or reserve slot the
// card is coming from, or the foundation (identified implicitly by the
// card's suit). Dest is a concrete location too (which cascade or reserve
// slot the card lands in, or the foundation); DestTop additionally records
// the card that was sitting on top of the destination before the move —
// the Empty sentinel value when the destination was an empty cascade, a
// free reserve slot, or the foundation. Move.String renders source/dest in
// prose using DestTop to choose between "onto the <card>" and "onto an
// empty cascade".
type Move struct {
	Card    card.Card
	From    Place
	FromIdx int // cascade index or reserve slot index; unused when From == PlaceFoundation
	To      Place
	ToIdx   int // cascade index or reserve slot index; unused when To == PlaceFoundation
	DestTop card.Card
	Count   int
}

// String renders m as a single line of prose, e.g. "Move the Seven of
// Diamonds onto the Eight of Clubs." or "Move the Ace of Spades onto the
// foundation."
func (m Move) String() string {
	switch m.To {
	case PlaceFoundation:
		return fmt.Sprintf("Move the %s onto the foundation.", m.Card)
	case PlaceReserve:
		return fmt.Sprintf("Move the %s into the reserve.", m.Card)
	case PlaceCascade:
		if m.DestTop.IsEmpty() {
			return fmt.Sprintf("Move the %s onto an empty cascade.", m.Card)
		}
		return fmt.Sprintf("Move the %s onto the %s.", m.Card, m.DestTop)
	}
	return fmt.Sprintf("Move the %s (unknown destination).", m.Card)
}
