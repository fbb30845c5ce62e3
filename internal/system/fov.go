package system

import "undervault/internal/gamemap"

// octant transform matrices.
// For each octant, a (dx, dy) sweep pair maps to a world offset via:
//   worldX = ox + dx*xx + dy*xy
//   worldY = oy + dx*yx + dy*yy
// where dx sweeps horizontally within the row and dy is the fixed row index.
// These match the standard RogueBasin recursive shadowcasting multipliers.
var octants = [8][4]int{
	{1, 0, 0, 1},
	{0, 1, 1, 0},
	{0, -1, 1, 0},
	{-1, 0, 0, 1},
	{-1, 0, 0, -1},
	{0, -1, -1, 0},
	{0, 1, -1, 0},
	{1, 0, 0, -1},
}

// UpdateFOV recomputes the live field of view from origin (ox, oy) using
// recursive shadowcasting. Visible flags are reset each call; Explored flags
// only ever accumulate.
func UpdateFOV(m *gamemap.GameMap, ox, oy, radius int) {
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			m.At(x, y).Visible = false
		}
	}

	// Origin is always visible.
	if m.InBounds(ox, oy) {
		t := m.At(ox, oy)
		t.Visible = true
		t.Explored = true
	}

	for _, mul := range octants {
		castLight(m, ox, oy, 1, 1.0, 0.0, radius, mul[0], mul[1], mul[2], mul[3])
	}
}

// castLight casts light for one octant.
//   - j is the current row (distance from origin along the main axis)
//   - dy = -j is fixed for the entire inner sweep (the row coordinate)
//   - dx sweeps from -j to 0 (the column coordinate within the row)
//   - lSlope = (dx - 0.5) / (dy + 0.5)   rSlope = (dx + 0.5) / (dy - 0.5)
func castLight(m *gamemap.GameMap, ox, oy, row int, start, end float64, radius, xx, xy, yx, yy int) {
	if start < end {
		return
	}
	radiusSq := float64(radius * radius)
	newStart := start

	for j := row; j <= radius; j++ {
		dy := -j
		blocked := false

		for dx := -j; dx <= 0; dx++ {
			wx := ox + dx*xx + dy*xy
			wy := oy + dx*yx + dy*yy

			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			if float64(dx*dx+dy*dy) < radiusSq && m.InBounds(wx, wy) {
				t := m.At(wx, wy)
				t.Visible = true
				t.Explored = true
			}

			opaque := !m.IsTransparent(wx, wy)

			if blocked {
				if opaque {
					newStart = rSlope
				} else {
					blocked = false
					start = newStart
				}
			} else {
				if opaque && j < radius {
					blocked = true
					castLight(m, ox, oy, j+1, start, lSlope, radius, xx, xy, yx, yy)
					newStart = rSlope
				}
			}
		}
		if blocked {
			break
		}
	}
}
