package state

// rotateSection rotates the walls of the SectionSize x SectionSize region of cells whose top-left
// cell is anchor, by 90 degrees clockwise: the cell (i, j), in local coordinates, goes to
// (SectionSize-1-j, i).
//
// The walls considered include the ones on the region's outer border, so the horizontal
// sub-bitmap is 4x5 and the vertical one 5x4. Since a quarter turn swaps the orientation of the
// walls, rotated horizontal walls are written to the vertical bitmap and vice versa:
//
//   - horizontal (i, j) -> vertical (SectionSize-j, i)
//   - vertical (i, j) -> horizontal (SectionSize-1-j, i)
//
// Rotated walls that end up on the edge of the board are dropped.
//
// The anchor must be in [0, BoardSize-SectionSize]: it's checked by State.Step.
func (s *State) rotateSection(anchor Pos) {
	const n = SectionSize
	ax, ay := anchor[0], anchor[1]

	// Extract and clear the region.
	var horizontal [n][n + 1]bool
	var vertical [n + 1][n]bool
	for i := int8(0); i < n; i++ {
		for j := int8(0); j <= n; j++ {
			horizontal[i][j] = s.Horizontal.Has(ax+i, ay+j)
			s.Horizontal.Clear(ax+i, ay+j)
			vertical[j][i] = s.Vertical.Has(ax+j, ay+i)
			s.Vertical.Clear(ax+j, ay+i)
		}
	}

	// Write rotated walls, swapping orientations.
	for i := int8(0); i < n; i++ {
		for j := int8(0); j <= n; j++ {
			if horizontal[i][j] {
				if x := ax + n - j; x > 0 && x < BoardSize {
					s.Vertical.Set(x, ay+i)
				}
			}
			if vertical[j][i] {
				if y := ay + j; y > 0 && y < BoardSize {
					s.Horizontal.Set(ax+n-1-i, y)
				}
			}
		}
	}
}
