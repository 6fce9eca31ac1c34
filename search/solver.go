package search

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/JoshDreamland/FreeCell-Solver/board"
	"github.com/JoshDreamland/FreeCell-Solver/config"
	"github.com/JoshDreamland/FreeCell-Solver/invariant"
	"github.com/JoshDreamland/FreeCell-Solver/move"
	"github.com/JoshDreamland/FreeCell-Solver/movegen"
)

// progressInterval is how many driver iterations pass between structured
// progress log lines.
const progressInterval = 50000

// Step is one entry of a solution: the move applied and the board that
// resulted from applying it.
type Step struct {
	Move  move.Move
	Board board.Board
}

// Result is the outcome of a Solve call.
type Result struct {
	Solved bool
	Steps  []Step
	// Expanded is the number of nodes popped and expanded before
	// termination, for diagnostics.
	Expanded int
}

// Solver runs the best-first search described by its Config against an
// initial board.
type Solver struct {
	Config config.Config
}

// New returns a Solver using cfg.
func New(cfg config.Config) *Solver {
	return &Solver{Config: cfg}
}

// Solve runs the driver loop to completion, to ctx cancellation, or to
// frontier exhaustion, whichever comes first. The loop checks ctx.Done
// once per iteration, the idiomatic Go equivalent of checking a shared
// cancellation flag between pops.
func (s *Solver) Solve(ctx context.Context, initial board.Board) (Result, error) {
	runID := uuid.New().String()
	logger := log.With().Str("run-id", runID).Logger()

	graph := NewGraph(s.Config.MemoryFraction)
	frontier := NewFrontier()

	rootFP := initial.Serialize()
	rootScore := Score(initial, 0, s.Config.Weights)
	rootIdx, _ := graph.InsertOrRelax(rootFP, initial, 0, noPredecessor, move.Move{}, rootScore)
	frontier.Push(rootIdx, rootScore)

	expanded := 0
	for {
		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		default:
		}

		topIdx, ok := frontier.PeekBest()
		if !ok {
			logger.Info().Int("expanded", expanded).Int("visited", graph.Len()).Msg("search-exhausted")
			s.logFrontierHistogram(&logger, frontier)
			return Result{Solved: false, Expanded: expanded}, nil
		}

		top := graph.Node(topIdx)
		if top.Board.IsWon() {
			steps := s.reconstruct(graph, topIdx)
			logger.Info().Int("expanded", expanded).Int("visited", graph.Len()).Int("moves", len(steps)).Msg("search-solved")
			s.logFrontierHistogram(&logger, frontier)
			return Result{Solved: true, Steps: steps, Expanded: expanded}, nil
		}

		frontier.PopBest()
		expanded++

		successors := movegen.Generate(top.Board, s.Config.EnableFoundationRescue)
		for _, succ := range successors {
			if err := succ.Board.Validate(); err != nil {
				invariant.Fatalf("movegen produced an invalid successor board: %v", err)
			}
			fp := succ.Board.Serialize()
			depth := top.Depth + 1
			score := Score(succ.Board, depth, s.Config.Weights)
			idx, status := graph.InsertOrRelax(fp, succ.Board, depth, topIdx, succ.Move, score)
			if status == Inserted {
				frontier.Push(idx, score)
			}
		}

		if expanded%progressInterval == 0 {
			logger.Debug().
				Int("expanded", expanded).
				Int("visited", graph.Len()).
				Int("frontier-size", frontier.Len()).
				Int("completion", top.Board.Completion()).
				Msg("search-progress")
		}

		frontier.Prune(s.Config.GCUpperBound)
	}
}

// reconstruct walks predecessor pointers from winIdx back to the root,
// collecting (move, post-move board) pairs, then reverses the result so
// it reads root-to-goal.
func (s *Solver) reconstruct(g *Graph, winIdx int32) []Step {
	invariant.Check(winIdx >= 0 && int(winIdx) < g.Len(), "reconstruct: win index %d out of range (graph has %d nodes)", winIdx, g.Len())
	var steps []Step
	for idx := winIdx; ; {
		n := g.Node(idx)
		if n.isRoot() {
			break
		}
		invariant.Check(n.Predecessor >= 0 && int(n.Predecessor) < g.Len(),
			"reconstruct: predecessor index %d out of range (graph has %d nodes)", n.Predecessor, g.Len())
		steps = append(steps, Step{Move: n.Move, Board: n.Board})
		idx = n.Predecessor
	}
	return lo.Reverse(steps)
}

// logFrontierHistogram logs an ASCII histogram of the frontier's
// heuristic score distribution at the moment the search terminated.
func (s *Solver) logFrontierHistogram(logger *zerolog.Logger, f *Frontier) {
	str, err := histogramString(f, 15)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to render frontier histogram")
		return
	}
	if str == "" {
		return
	}
	logger.Debug().Msg("frontier score distribution at termination:\n" + str)
}

// histogramString renders an ASCII histogram of the frontier's heuristic
// score distribution, for the end-of-run diagnostic.
func histogramString(f *Frontier, bins int) (string, error) {
	scores := f.Scores()
	if len(scores) == 0 {
		return "", nil
	}
	hist := histogram.Hist(bins, scores)
	var buf bytes.Buffer
	if err := histogram.Fprint(&buf, hist, histogram.Linear(60)); err != nil {
		return "", fmt.Errorf("rendering frontier histogram: %w", err)
	}
	return buf.String(), nil
}
