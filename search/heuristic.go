package search

import (
	"github.com/JoshDreamland/FreeCell-Solver/board"
	"github.com/JoshDreamland/FreeCell-Solver/config"
)

// Score computes the frontier's ordering key for b at the given search
// depth:
//
//	score =   GREED   × Σ foundation[s]
//	        + REWARD  × (# ordered adjacent cascade pairs)
//	        − PENALTY × Σ (cascade_size − i) over inverted adjacent pairs
//	        − MOVE_COST × depth
//
// Each cascade is scanned once: an adjacent pair (i-1, i) where the top
// card's face exceeds the one below it is an inversion, penalized in
// proportion to how deep it sits in the stack; any other adjacent pair
// earns the flat ordered-pair reward. If every weight is zero the score
// is always zero, and the frontier's order among equal scores is not
// first-in-first-out (see Frontier).
func Score(b board.Board, depth int, w config.Weights) int {
	score := 0
	for _, f := range b.Foundation {
		score += w.Greed * int(f)
	}
	for _, c := range b.Cascades {
		for i := 1; i < len(c); i++ {
			if c[i].Face > c[i-1].Face {
				score -= w.Penalty * (len(c) - i)
			} else {
				score += w.Reward
			}
		}
	}
	score -= w.MoveCost * depth
	return score
}
