// Package dealio parses the textual initial-deal format into a board.Board
// and provides the canonical reference deal used by tests and examples.
package dealio

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/JoshDreamland/FreeCell-Solver/board"
	"github.com/JoshDreamland/FreeCell-Solver/card"
)

// ParseError names the offending token and its byte offset in the input,
// for a diagnostic that lets a user find the bad line.
type ParseError struct {
	Token string
	Pos   int
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed card token %q at byte offset %d: %v", e.Token, e.Pos, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func isSeparator(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

// Parse reads the deal format: whitespace-separated card tokens, with a
// colon resetting the current cascade index to zero. A line with no
// leading colon continues filling the cascade the previous line left off
// at. Parsing fails fast, returning a *ParseError identifying the
// offending token, on any malformed card or on a deal that addresses more
// than board.NumCascades cascades.
//
// A successfully parsed deal that doesn't contain all 52 cards exactly
// once is not an error: Parse logs a warning enumerating the missing or
// duplicated cards and returns the board as dealt.
func Parse(data []byte) (board.Board, error) {
	var b board.Board
	cascade := 0
	counts := make(map[card.Card]int)

	i, n := 0, len(data)
	for i < n {
		if isSeparator(data[i]) {
			i++
			continue
		}
		if data[i] == ':' {
			cascade = 0
			i++
			continue
		}

		start := i
		for i < n && !isSeparator(data[i]) && data[i] != ':' {
			i++
		}
		tok := string(data[start:i])

		c, err := card.Parse(tok)
		if err != nil {
			return board.Board{}, &ParseError{Token: tok, Pos: start, Err: err}
		}
		if cascade >= board.NumCascades {
			return board.Board{}, &ParseError{
				Token: tok, Pos: start,
				Err: fmt.Errorf("deal addresses cascade %d, but only %d cascades exist", cascade, board.NumCascades),
			}
		}

		b.Cascades[cascade] = append(b.Cascades[cascade], c)
		cascade++
		counts[c]++
	}

	warnIfIncomplete(counts)
	return b, nil
}

// warnIfIncomplete logs one warning line per missing or duplicated card
// when the parsed deal doesn't account for all 52 cards exactly once.
func warnIfIncomplete(counts map[card.Card]int) {
	complete := len(counts) == 52
	if complete {
		for _, n := range counts {
			if n != 1 {
				complete = false
				break
			}
		}
	}
	if complete {
		return
	}

	log.Warn().Msg("deal does not contain all 52 card faces exactly once")
	for s := card.Spade; s <= card.Club; s++ {
		for f := card.Ace; f <= card.King; f++ {
			c := card.Card{Suit: s, Face: f}
			switch n := counts[c]; {
			case n == 0:
				log.Warn().Str("card", c.Short()).Msg("missing card")
			case n > 1:
				log.Warn().Str("card", c.Short()).Int("count", n).Msg("duplicate card")
			}
		}
	}
}

// ReferenceDealText is the canonical 52-card deal used throughout tests:
// every card dealt round-robin across the 8 cascades.
const ReferenceDealText = `
: 6C 9S 2H AC JD AS 9C 7H
: 2D AD QC KD JC JS 3D 2C
: KC TD 7D 9D QD TS 6D 6H
: 8S TH 3H KS 2S QS 8C KH
: AH JH 7C 8H 5H 8D 5D 3S
: 4S TC 4D QH 4C 3C 5C 6S
: 9H 4H 5S 7S
`

// ReferenceDeal parses ReferenceDealText. It panics on parse failure,
// since the text above is a fixed, already-verified fixture rather than
// untrusted input.
func ReferenceDeal() board.Board {
	b, err := Parse([]byte(ReferenceDealText))
	if err != nil {
		panic(fmt.Sprintf("reference deal failed to parse: %v", err))
	}
	return b
}
