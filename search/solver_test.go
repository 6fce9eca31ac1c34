package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoshDreamland/FreeCell-Solver/board"
	"github.com/JoshDreamland/FreeCell-Solver/card"
	"github.com/JoshDreamland/FreeCell-Solver/config"
	"github.com/JoshDreamland/FreeCell-Solver/dealio"
	"github.com/JoshDreamland/FreeCell-Solver/move"
)

func wonBoard() board.Board {
	b := board.NewBoard()
	for s := card.Spade; s <= card.Club; s++ {
		b.Foundation[s] = uint8(card.King)
	}
	return b
}

// Scenario 1: trivial win.
func TestSolveTrivialWin(t *testing.T) {
	s := New(config.Default())
	res, err := s.Solve(context.Background(), wonBoard())
	require.NoError(t, err)
	require.True(t, res.Solved, "an already-won board should solve immediately")
	assert.Empty(t, res.Steps)
}

// Scenario 2: one-move win. Foundations all at Queen, one lone King per
// cascade; every king must move straight to the foundation.
func TestSolveOneMoveWin(t *testing.T) {
	b := board.NewBoard()
	for s := card.Spade; s <= card.Club; s++ {
		b.Foundation[s] = uint8(card.Queen)
	}
	b.Cascades[0] = []card.Card{{Suit: card.Spade, Face: card.King}}
	b.Cascades[1] = []card.Card{{Suit: card.Heart, Face: card.King}}
	b.Cascades[2] = []card.Card{{Suit: card.Diamond, Face: card.King}}
	b.Cascades[3] = []card.Card{{Suit: card.Club, Face: card.King}}

	s := New(config.Default())
	res, err := s.Solve(context.Background(), b)
	require.NoError(t, err)
	require.True(t, res.Solved, "expected the kings-to-foundation board to be solvable")
	require.Len(t, res.Steps, 4)
	for _, step := range res.Steps {
		assert.Equalf(t, move.PlaceFoundation, step.Move.To, "move %v should have landed on the foundation", step.Move)
		assert.Equalf(t, card.King, step.Move.Card.Face, "move %v should have moved a king", step.Move)
		assert.Containsf(t, step.Move.String(), "onto the foundation", "move %v should render as landing onto the foundation", step.Move)
	}
	assert.True(t, res.Steps[len(res.Steps)-1].Board.IsWon(), "the final board in the solution should be won")
}

// Scenario 3: the canonical reference deal, start to finish. Skipped by
// default: a full best-first search over the reference deal expands
// millions of nodes and is unsuitable for a routine test run.
func TestSolveReferenceDeal(t *testing.T) {
	t.Skip("expensive: full search over the 52-card reference deal, run manually")

	s := New(config.Default())
	res, err := s.Solve(context.Background(), dealio.ReferenceDeal())
	require.NoError(t, err)
	require.True(t, res.Solved, "expected the reference deal to be solvable")
	assert.True(t, res.Steps[len(res.Steps)-1].Board.IsWon(), "the final board in the solution should be won")
}

// Scenario 4: the reference deal under a tight frontier ceiling and
// all-zero weights (every score equal) should exhaust its budget without a
// solution. Skipped by default for the same reason as scenario 3: an
// exhaustive unguided crawl of this state space still visits a very large
// number of boards before giving up.
func TestSolveUnsolvableUnderTightBudget(t *testing.T) {
	t.Skip("expensive: exhaustive zero-weight crawl under a 1000-entry frontier ceiling, run manually")

	cfg := config.Default()
	cfg.GCUpperBound = 1000
	cfg.Weights = config.Weights{}

	s := New(cfg)
	res, err := s.Solve(context.Background(), dealio.ReferenceDeal())
	require.NoError(t, err)
	assert.False(t, res.Solved, "expected no solution under a 1000-entry frontier ceiling")
}

// Scenario 5: relaxation. Two paths reach the same fingerprint at
// different depths; the shorter one must win.
func TestGraphRelaxationKeepsShorterPath(t *testing.T) {
	g := NewGraph(1.0 / 1024)
	b := board.NewBoard()
	b.Cascades[0] = []card.Card{{Suit: card.Spade, Face: card.Ace}}
	fp := b.Serialize()

	longMove := move.Move{Card: card.Card{Suit: card.Heart, Face: card.Two}}
	idx, status := g.InsertOrRelax(fp, b, 5, 0, longMove, 0)
	require.Equal(t, Inserted, status)

	shortMove := move.Move{Card: card.Card{Suit: card.Club, Face: card.Three}}
	idx2, status2 := g.InsertOrRelax(fp, b, 2, 1, shortMove, 0)
	require.Equal(t, Relaxed, status2)
	require.Equal(t, idx, idx2, "relax should return the same arena index")

	n := g.Node(idx)
	assert.Equal(t, 2, n.Depth)
	assert.EqualValues(t, 1, n.Predecessor)
	assert.Equal(t, shortMove, n.Move)

	// A longer path arriving afterward should not undo the relaxation.
	_, status3 := g.InsertOrRelax(fp, b, 9, 2, move.Move{}, 0)
	require.Equal(t, Unchanged, status3, "a longer path should leave the node unchanged")
	assert.Equal(t, 2, g.Node(idx).Depth, "a longer path should not have overwritten the relaxed depth")
}

// Scenario 6: two boards identical save reserve-slot order must
// de-duplicate to the same graph node.
func TestGraphDeduplicatesReservePermutations(t *testing.T) {
	g := NewGraph(1.0 / 1024)

	a := board.NewBoard()
	a.Cascades[0] = []card.Card{{Suit: card.Spade, Face: card.Ace}}
	a.Reserve = []card.Card{{Suit: card.Heart, Face: card.Two}, {Suit: card.Club, Face: card.Three}}

	c := board.NewBoard()
	c.Cascades[0] = []card.Card{{Suit: card.Spade, Face: card.Ace}}
	c.Reserve = []card.Card{{Suit: card.Club, Face: card.Three}, {Suit: card.Heart, Face: card.Two}}

	idxA, statusA := g.InsertOrRelax(a.Serialize(), a, 0, noPredecessor, move.Move{}, 0)
	require.Equal(t, Inserted, statusA)
	idxC, statusC := g.InsertOrRelax(c.Serialize(), c, 0, noPredecessor, move.Move{}, 0)
	require.Equal(t, Unchanged, statusC, "reserve-permuted board at equal depth should be Unchanged")
	assert.Equal(t, idxA, idxC, "boards differing only in reserve-slot order should share a graph node")
}
