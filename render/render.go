// Package render turns a board into human-readable text: a short-form
// grid that dealio.Parse accepts, and a Unicode glyph diagram for
// terminals that support the playing-card block.
package render

import (
	"strings"

	"github.com/JoshDreamland/FreeCell-Solver/board"
	"github.com/JoshDreamland/FreeCell-Solver/card"
)

// cardBack is the Unicode "back of card" glyph, used for empty foundation
// slots and unfilled reserve slots in Diagram.
const cardBack = "\U0001F0A0"

// Glyph returns the single Unicode playing-card rune for c, or the card
// back for the Empty sentinel. The playing-card block reserves one
// codepoint per suit for a Knight the French deck doesn't use, so face
// values above Jack are shifted up by one to skip it.
func Glyph(c card.Card) string {
	if c.IsEmpty() {
		return cardBack
	}
	ordinal := 0x1F0A0 + 0x10*int(c.Suit) + int(c.Face)
	if c.Face > card.Jack {
		ordinal++
	}
	return string(rune(ordinal))
}

// Text renders b as the short-form grid that dealio.Parse accepts: one
// line per row of the tableau, each prefixed with ':', cards in
// "<face><suit>" form, blank cells padded so columns line up. Only the
// cascades are written, not the reserve or foundation. Parsing the result
// rebuilds the same cascades only when no cascade is shorter than one to
// its right: a blank cell is plain whitespace to dealio.Parse, so the cards
// after it in that row land one cascade too far left.
func Text(b board.Board) string {
	var sb strings.Builder
	for row := 0; ; row++ {
		more := false
		var line strings.Builder
		line.WriteByte(':')
		for i := 0; i < board.NumCascades; i++ {
			if row >= len(b.Cascades[i]) {
				line.WriteString("   ")
				continue
			}
			line.WriteByte(' ')
			line.WriteString(b.Cascades[i][row].Short())
			more = true
		}
		if !more {
			break
		}
		sb.WriteString(line.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Diagram renders b as a full Unicode picture: reserve slots and
// foundation tops on the first line, then the cascades below.
func Diagram(b board.Board) string {
	var sb strings.Builder

	for i := 0; i < board.MaxReserve; i++ {
		if i < len(b.Reserve) {
			sb.WriteString(Glyph(b.Reserve[i]))
		} else {
			sb.WriteString(cardBack)
		}
		sb.WriteByte(' ')
	}
	sb.WriteString("       ")
	for s := card.Spade; s <= card.Club; s++ {
		sb.WriteString(Glyph(card.Card{Suit: s, Face: card.Face(b.Foundation[s])}))
		sb.WriteByte(' ')
	}
	sb.WriteString("\n\n")

	for row := 0; ; row++ {
		more := false
		var line strings.Builder
		for i := 0; i < board.NumCascades; i++ {
			if row >= len(b.Cascades[i]) {
				if line.Len() == 0 {
					line.WriteByte(' ')
				} else {
					line.WriteString("   ")
				}
				continue
			}
			if line.Len() > 0 {
				line.WriteString("  ")
			}
			line.WriteString(Glyph(b.Cascades[i][row]))
			more = true
		}
		if !more {
			break
		}
		sb.WriteString(line.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
