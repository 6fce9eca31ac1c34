// Package movegen enumerates legal single-card transitions out of a board
// and applies them to produce successor boards. It implements the
// legality table and the deterministic candidate order a fully-faithful
// reimplementation of this solver must produce.
package movegen

import (
	"github.com/samber/lo"

	"github.com/JoshDreamland/FreeCell-Solver/board"
	"github.com/JoshDreamland/FreeCell-Solver/card"
	"github.com/JoshDreamland/FreeCell-Solver/move"
)

// Successor pairs a generated move with the board it produces.
type Successor struct {
	Move  move.Move
	Board board.Board
}

// stackable reports whether dest can receive src in a tableau-style
// sequence: destination empty, or descending by one face with alternating
// color.
func stackable(dest card.Card, destEmpty bool, src card.Card) bool {
	if destEmpty {
		return true
	}
	return dest.Face == src.Face+1 && dest.Black() != src.Black()
}

// Generate enumerates every legal transition out of b and returns the
// resulting successors in the specified candidate order: for each cascade
// i, reserve-to-cascade(i) for every reserve slot, then cascade(i)-to-
// cascade(j) for every other cascade, cascade(i)-to-reserve,
// cascade(i)-to-foundation, and foundation-to-cascade(i) for every suit;
// finally, after all cascades, reserve-to-foundation for every reserve
// slot. The order is semantically irrelevant but kept deterministic so
// search traces reproduce.
//
// allowFoundationRescue gates foundation-to-cascade generation per the
// config knob of the same name; disabling it shrinks the branching factor
// at the cost of occasionally missing a rescue play.
func Generate(b board.Board, allowFoundationRescue bool) []Successor {
	var out []Successor

	for i := 0; i < board.NumCascades; i++ {
		destTop, destEmpty := b.CascadeTop(i)

		for j, rc := range b.Reserve {
			if stackable(destTop, destEmpty, rc) {
				out = append(out, Successor{
					Move: move.Move{
						Card: rc, From: move.PlaceReserve, FromIdx: j,
						To: move.PlaceCascade, ToIdx: i, DestTop: destTop, Count: 1,
					},
					Board: b.ReserveToTableau(j, i),
				})
			}
		}

		srcTop, srcOk := b.CascadeTop(i)
		if srcOk {
			for j := 0; j < board.NumCascades; j++ {
				if j == i {
					continue
				}
				jTop, jEmpty := b.CascadeTop(j)
				if stackable(jTop, jEmpty, srcTop) {
					out = append(out, Successor{
						Move: move.Move{
							Card: srcTop, From: move.PlaceCascade, FromIdx: i,
							To: move.PlaceCascade, ToIdx: j, DestTop: jTop, Count: 1,
						},
						Board: b.TableauToTableau(i, j),
					})
				}
			}

			if len(b.Reserve) < board.MaxReserve {
				out = append(out, Successor{
					Move: move.Move{
						Card: srcTop, From: move.PlaceCascade, FromIdx: i,
						To: move.PlaceReserve, ToIdx: len(b.Reserve), Count: 1,
					},
					Board: b.TableauToReserve(i),
				})
			}

			if b.Foundation[srcTop.Suit] == uint8(srcTop.Face)-1 {
				out = append(out, Successor{
					Move: move.Move{
						Card: srcTop, From: move.PlaceCascade, FromIdx: i,
						To: move.PlaceFoundation, Count: 1,
					},
					Board: b.TableauToFoundation(i),
				})
			}
		}

		if allowFoundationRescue {
			for s := card.Spade; s <= card.Club; s++ {
				if b.Foundation[s] == 0 {
					continue
				}
				fc := card.Card{Suit: s, Face: card.Face(b.Foundation[s])}
				if stackable(destTop, destEmpty, fc) {
					out = append(out, Successor{
						Move: move.Move{
							Card: fc, From: move.PlaceFoundation,
							To: move.PlaceCascade, ToIdx: i, DestTop: destTop, Count: 1,
						},
						Board: b.FoundationToTableau(s, i),
					})
				}
			}
		}
	}

	for j, rc := range b.Reserve {
		if b.Foundation[rc.Suit] == uint8(rc.Face)-1 {
			out = append(out, Successor{
				Move: move.Move{
					Card: rc, From: move.PlaceReserve, FromIdx: j,
					To: move.PlaceFoundation, Count: 1,
				},
				Board: b.ReserveToFoundation(j),
			})
		}
	}

	return out
}

// PlayableTops returns, for informational/debug use, the cascade indices
// whose top card can currently move straight to the foundation.
func PlayableTops(b board.Board) []int {
	idx := make([]int, 0, board.NumCascades)
	for i := 0; i < board.NumCascades; i++ {
		idx = append(idx, i)
	}
	return lo.Filter(idx, func(i int, _ int) bool {
		top, ok := b.CascadeTop(i)
		return ok && b.Foundation[top.Suit] == uint8(top.Face)-1
	})
}
