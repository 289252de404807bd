package tiles

import (
	"github.com/samber/lo"

	"github.com/rocketscienceinc/arcade-backend/internal/apperror"
	"github.com/rocketscienceinc/arcade-backend/internal/entity"
	"github.com/rocketscienceinc/arcade-backend/internal/pkg"
)

// MoveResult describes the grid after sliding every line in one direction.
type MoveResult struct {
	Grid   entity.Grid   `json:"grid"`
	Moved  bool          `json:"moved"`
	Merges []entity.Tile `json:"merges,omitempty"`
	Gained int           `json:"gained"`
}

// ApplyMove slides and merges all four lines of grid towards dir.
// The input grid is not modified.
func ApplyMove(grid entity.Grid, dir entity.Direction) (MoveResult, error) {
	if !dir.IsValid() {
		return MoveResult{Grid: grid}, apperror.ErrUnknownDirection
	}

	result := MoveResult{Grid: grid}

	for i := range entity.GridSize {
		cells := lineCells(dir, i)

		var line [entity.GridSize]int
		for k, cell := range cells {
			line[k] = grid[cell.Row][cell.Col]
		}

		merged, mergedAt, gained := compactAndMerge(line)
		for k, cell := range cells {
			result.Grid[cell.Row][cell.Col] = merged[k]
		}

		for _, k := range mergedAt {
			result.Merges = append(result.Merges, entity.Tile{Row: cells[k].Row, Col: cells[k].Col, Value: merged[k]})
		}

		result.Gained += gained
	}

	result.Moved = result.Grid != grid

	return result, nil
}

// compactAndMerge packs line towards index 0, merging each equal adjacent pair once.
func compactAndMerge(line [entity.GridSize]int) ([entity.GridSize]int, []int, int) {
	values := lo.Filter(line[:], func(v int, _ int) bool { return v != 0 })

	var (
		out      [entity.GridSize]int
		mergedAt []int
		gained   int
		n        int
	)

	for i := 0; i < len(values); n++ {
		if i+1 < len(values) && values[i] == values[i+1] {
			out[n] = values[i] * 2
			mergedAt = append(mergedAt, n)
			gained += out[n]
			i += 2

			continue
		}

		out[n] = values[i]
		i++
	}

	return out, mergedAt, gained
}

// lineCells lists the cells of line i in the order tiles travel towards.
func lineCells(dir entity.Direction, i int) [entity.GridSize]entity.Cell {
	var cells [entity.GridSize]entity.Cell

	last := entity.GridSize - 1
	for k := range entity.GridSize {
		switch dir {
		case entity.DirectionLeft:
			cells[k] = entity.Cell{Row: i, Col: k}
		case entity.DirectionRight:
			cells[k] = entity.Cell{Row: i, Col: last - k}
		case entity.DirectionUp:
			cells[k] = entity.Cell{Row: k, Col: i}
		case entity.DirectionDown:
			cells[k] = entity.Cell{Row: last - k, Col: i}
		}
	}

	return cells
}

func EmptyCells(grid entity.Grid) []entity.Cell {
	cells := make([]entity.Cell, 0, entity.GridSize*entity.GridSize)
	for row := range entity.GridSize {
		for col := range entity.GridSize {
			cells = append(cells, entity.Cell{Row: row, Col: col})
		}
	}

	return lo.Filter(cells, func(c entity.Cell, _ int) bool { return grid[c.Row][c.Col] == 0 })
}

// SpawnTile drops a 2 (90%) or a 4 (10%) on a uniformly chosen empty cell.
// It reports false when the grid is full.
func SpawnTile(grid *entity.Grid, rnd pkg.Random) (entity.Tile, bool) {
	empty := EmptyCells(*grid)
	if len(empty) == 0 {
		return entity.Tile{}, false
	}

	cell := empty[rnd.Intn(len(empty))]

	value := 2
	if rnd.Intn(10) == 0 {
		value = 4
	}

	grid[cell.Row][cell.Col] = value

	return entity.Tile{Row: cell.Row, Col: cell.Col, Value: value}, true
}

func HasTile(grid entity.Grid, value int) bool {
	for _, row := range grid {
		if lo.Contains(row[:], value) {
			return true
		}
	}

	return false
}

// IsGameOver reports a full grid with no horizontally or vertically adjacent equal pair.
func IsGameOver(grid entity.Grid) bool {
	if HasTile(grid, 0) {
		return false
	}

	for row := range entity.GridSize {
		for col := range entity.GridSize {
			current := grid[row][col]

			if col < entity.GridSize-1 && grid[row][col+1] == current {
				return false
			}

			if row < entity.GridSize-1 && grid[row+1][col] == current {
				return false
			}
		}
	}

	return true
}
