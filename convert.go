package xword

// convertDocument builds the canonical puzzle from a document that already
// passed structural validation. It performs no checks of its own: cell
// mapping and clue table building are total, and metadata scalars are
// copied as-is.
func convertDocument(d *Document) *Puzzle {
	grid := make([][]Cell, len(d.Puzzle))
	for i, row := range d.Puzzle {
		grid[i] = make([]Cell, len(row))
		for j, v := range row {
			grid[i][j] = mapCell(v)
		}
	}

	return &Puzzle{
		Title:      d.Title,
		Author:     d.Author,
		Copyright:  d.Copyright,
		Publisher:  d.Publisher,
		Difficulty: d.Difficulty,
		Intro:      d.Intro,
		Grid:       grid,
		Clues: Clues{
			Across: buildClueTable(d.Clues.Across),
			Down:   buildClueTable(d.Clues.Down),
		},
	}
}
