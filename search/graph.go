// Package search implements the best-first search engine: the visited-set
// graph, the bounded priority frontier, the heuristic scoring function,
// and the driver loop that ties them together.
package search

import (
	"bytes"
	"math/bits"

	"github.com/cespare/xxhash/v2"
	"github.com/pbnjay/memory"
	"github.com/rs/zerolog/log"

	"github.com/JoshDreamland/FreeCell-Solver/board"
	"github.com/JoshDreamland/FreeCell-Solver/move"
)

// InsertStatus reports what InsertOrRelax did with a candidate successor.
type InsertStatus uint8

const (
	// Inserted means the fingerprint was new; a Node was created and
	// should be pushed onto the frontier.
	Inserted InsertStatus = iota
	// Relaxed means the fingerprint already existed and the new path was
	// strictly shorter; predecessor and depth were overwritten in place.
	// The node is NOT re-pushed onto the frontier.
	Relaxed
	// Unchanged means the fingerprint already existed and the new path
	// was not shorter; nothing was modified.
	Unchanged
)

// emptyBucket marks a hash-table slot with no occupant.
const emptyBucket = -1

// minBuckets is the smallest bucket-table size Graph will allocate,
// regardless of how little memory NewGraph is asked to reserve.
const minBuckets = 1 << 16

// Graph is the visited set ("move graph"): an append-only arena of Nodes
// plus an open-addressed hash table, keyed by each board's exact
// fingerprint byte, for O(1) amortized lookup. Unlike a Scrabble
// transposition table, collisions are resolved by full byte comparison,
// never accepted as probabilistic matches: de-duplication correctness
// requires it.
type Graph struct {
	nodes   []Node
	buckets []int32 // index into nodes, or emptyBucket
	mask    uint64
}

// NewGraph allocates a Graph sized to hold roughly fractionOfMemory of
// total system RAM worth of hash-table buckets, rounded up to the next
// power of two and floored at minBuckets.
func NewGraph(fractionOfMemory float64) *Graph {
	total := memory.TotalMemory()
	desired := uint64(fractionOfMemory * float64(total) / 4) // 4 bytes per bucket
	numBuckets := nextPowerOfTwo(desired)
	if numBuckets < minBuckets {
		numBuckets = minBuckets
	}

	g := &Graph{
		buckets: make([]int32, numBuckets),
		mask:    uint64(numBuckets - 1),
	}
	for i := range g.buckets {
		g.buckets[i] = emptyBucket
	}

	log.Debug().
		Uint64("total-system-memory-bytes", total).
		Int("num-buckets", numBuckets).
		Msg("search-graph-sized")
	return g
}

func nextPowerOfTwo(n uint64) int {
	if n == 0 {
		return 1
	}
	shift := bits.Len64(n - 1)
	return 1 << shift
}

// Len returns the number of distinct boards currently visited.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Node returns the node stored at arena index idx.
func (g *Graph) Node(idx int32) *Node {
	return &g.nodes[idx]
}

func (g *Graph) find(fp []byte) (int32, bool) {
	h := xxhash.Sum64(fp)
	i := h & g.mask
	for {
		b := g.buckets[i]
		if b == emptyBucket {
			return -1, false
		}
		if bytes.Equal(g.nodes[b].Fingerprint, fp) {
			return b, true
		}
		i = (i + 1) & g.mask
	}
}

// InsertOrRelax looks up fp. If absent, it appends a new Node (score,
// depth, predecessor, originating move, board) to the arena and inserts
// it into the hash table, growing the table first if the load factor
// would exceed 70%. If present and depth is strictly smaller than the
// stored depth, it relaxes the stored predecessor/depth (the heuristic
// score and frontier position are left untouched, per the specified
// relaxation semantics). Returns the arena index and what happened.
func (g *Graph) InsertOrRelax(fp []byte, b board.Board, depth int, predecessor int32, mv move.Move, score int) (int32, InsertStatus) {
	if idx, ok := g.find(fp); ok {
		n := &g.nodes[idx]
		if depth < n.Depth {
			n.Depth = depth
			n.Predecessor = predecessor
			n.Move = mv
			return idx, Relaxed
		}
		return idx, Unchanged
	}

	if (len(g.nodes)+1)*10 >= len(g.buckets)*7 {
		g.grow()
	}

	idx := int32(len(g.nodes))
	g.nodes = append(g.nodes, Node{
		Board:       b,
		Fingerprint: fp,
		Score:       score,
		Depth:       depth,
		Predecessor: predecessor,
		Move:        mv,
	})
	g.insertBucket(fp, idx)
	return idx, Inserted
}

func (g *Graph) insertBucket(fp []byte, idx int32) {
	h := xxhash.Sum64(fp)
	i := h & g.mask
	for g.buckets[i] != emptyBucket {
		i = (i + 1) & g.mask
	}
	g.buckets[i] = idx
}

// grow doubles the bucket table and rehashes every occupied slot. The
// node arena itself is untouched; only the index is rebuilt.
func (g *Graph) grow() {
	newBuckets := make([]int32, len(g.buckets)*2)
	for i := range newBuckets {
		newBuckets[i] = emptyBucket
	}
	g.buckets = newBuckets
	g.mask = uint64(len(g.buckets) - 1)

	for idx := range g.nodes {
		g.insertBucket(g.nodes[idx].Fingerprint, int32(idx))
	}
	log.Debug().Int("num-buckets", len(g.buckets)).Msg("search-graph-grown")
}
