package search

import (
	"github.com/JoshDreamland/FreeCell-Solver/board"
	"github.com/JoshDreamland/FreeCell-Solver/move"
)

// noPredecessor marks the root node, which has no predecessor.
const noPredecessor = -1

// Node is one discovered board: the board itself, its heuristic score,
// its depth from the root, and a back-pointer to the node and move that
// produced it. Nodes live in a Graph's append-only arena and are
// referenced elsewhere by index, never by pointer, since the arena may
// reallocate as it grows.
type Node struct {
	Board       board.Board
	Fingerprint []byte
	Score       int
	Depth       int
	Predecessor int32
	Move        move.Move
}

func (n Node) isRoot() bool {
	return n.Predecessor == noPredecessor
}
