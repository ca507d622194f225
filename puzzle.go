package xword

import "time"

// Cell represents a single cell in a converted grid.
// A cell is either a block cell (Block=true, no other fields) or an open
// cell, optionally carrying a clue number and a background shape.
type Cell struct {
	Block  bool   `json:"block,omitempty"`
	Number int    `json:"number,omitempty"`
	Shape  string `json:"shape,omitempty"`
}

// Clues maps clue numbers to clue text, one table per direction.
type Clues struct {
	Across map[int]string `json:"across"`
	Down   map[int]string `json:"down"`
}

// Puzzle is the canonical crossword model produced by the converter.
// It shares no structure with the source document it was built from.
type Puzzle struct {
	ID         string    `json:"id,omitempty"`
	Title      string    `json:"title,omitempty"`
	Author     string    `json:"author,omitempty"`
	Copyright  string    `json:"copyright,omitempty"`
	Publisher  string    `json:"publisher,omitempty"`
	Difficulty string    `json:"difficulty,omitempty"`
	Intro      string    `json:"intro,omitempty"`
	Grid       [][]Cell  `json:"grid"`
	Clues      Clues     `json:"clues"`
	CreatedAt  time.Time `json:"created_at,omitzero"`
}
