package state

import (
	"fmt"
	"strings"
)

// Overlay highlights a set of cells with a symbol when rendering a State.
// The symbol should be one character wide.
type Overlay struct {
	Symbol string
	Cells  [BoardSize][BoardSize]bool // Indexed [x][y].
}

// NewOverlay creates an overlay highlighting the target cells of the given actions.
func NewOverlay(symbol string, actions []Action) *Overlay {
	o := &Overlay{Symbol: symbol}
	for _, action := range actions {
		if action.Pos.InBoard() {
			o.Cells[action.Pos[0]][action.Pos[1]] = true
		}
	}
	return o
}

// RenderOptions configures RenderWith.
type RenderOptions struct {
	// Overlay is optional.
	Overlay *Overlay

	// PawnStyle, if set, is applied to the text of each pawn. Used by UIs to add colors.
	PawnStyle func(player PlayerNum, text string) string

	// WallStyle, if set, is applied to every wall glyph.
	WallStyle func(text string) string
}

const (
	glyphTop          = "┌───┬───┬───┬───┬───┬───┬───┬───┬───┐"
	glyphVertical     = "│"
	glyphVerticalWall = "┃"
	glyphHorizontal   = "───"
	glyphHorizWall    = "━━━"
)

// Render returns a fixed-width text representation of the state, for debugging.
// overlay is optional.
func Render(s State, overlay *Overlay) string {
	return RenderWith(s, RenderOptions{Overlay: overlay})
}

// String implements fmt.Stringer.
func (s State) String() string {
	return Render(s, nil)
}

// RenderWith is like Render, but with extra styling options.
func RenderWith(s State, opts RenderOptions) string {
	wallStyle := opts.WallStyle
	if wallStyle == nil {
		wallStyle = func(text string) string { return text }
	}
	var sb strings.Builder
	_, _ = fmt.Fprintf(&sb, "Remaining walls\n - player 0: %d\n - player 1: %d\n",
		s.remainingWalls[PlayerFirst], s.remainingWalls[PlayerSecond])
	sb.WriteString(glyphTop)
	sb.WriteString("\n")
	for y := int8(0); y < BoardSize; y++ {
		// Cells and vertical walls.
		sb.WriteString(glyphVertical)
		for x := int8(0); x < BoardSize; x++ {
			sb.WriteString(renderCell(&s, Pos{x, y}, &opts))
			if x < BoardSize-1 {
				if s.Vertical.Has(x+1, y) {
					sb.WriteString(wallStyle(glyphVerticalWall))
				} else {
					sb.WriteString(" ")
				}
			}
		}
		sb.WriteString(glyphVertical)
		sb.WriteString("\n")

		// Horizontal walls below the row.
		if y < BoardSize-1 {
			sb.WriteString("├")
			for x := int8(0); x < BoardSize; x++ {
				if s.Horizontal.Has(x, y+1) {
					sb.WriteString(wallStyle(glyphHorizWall))
				} else {
					sb.WriteString("   ")
				}
				if x < BoardSize-1 {
					sb.WriteString("┼")
				}
			}
			sb.WriteString("┤\n")
		}
	}
	sb.WriteString("└")
	for x := 0; x < BoardSize; x++ {
		sb.WriteString(glyphHorizontal)
		if x < BoardSize-1 {
			sb.WriteString("┴")
		}
	}
	sb.WriteString("┘")
	return sb.String()
}

func renderCell(s *State, pos Pos, opts *RenderOptions) string {
	if player := s.PawnAt(pos); player != PlayerInvalid {
		text := fmt.Sprintf(" %d ", player)
		if opts.PawnStyle != nil {
			text = opts.PawnStyle(player, text)
		}
		return text
	}
	if opts.Overlay != nil && opts.Overlay.Cells[pos[0]][pos[1]] {
		return " " + opts.Overlay.Symbol + " "
	}
	return "   "
}
