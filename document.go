// Package xword converts crossword puzzles from a JSON-based interchange
// format into a canonical in-memory model, and serves a small library of
// converted puzzles over HTTP.
package xword

// BlockSentinel is the raw grid value marking an unplayable cell in the
// source interchange format.
const BlockSentinel = "#"

// Dimensions is the declared grid size of a source document.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// RawClues holds the ordered [number, text] clue lists of a source
// document. Entries stay untyped because the format does not guarantee
// their shape; the clue table builder is deliberately lenient.
type RawClues struct {
	Across [][]any `json:"across"`
	Down   [][]any `json:"down"`
}

// Document is a puzzle in the source interchange format, decoded from JSON
// but not yet converted. Grid values stay untyped (block sentinel string,
// bare clue number, or styled object) until the cell mapper classifies
// them. Dimensions and Puzzle are nil when the corresponding key is absent,
// which is what the validator checks for.
type Document struct {
	Dimensions *Dimensions `json:"dimensions"`
	Puzzle     [][]any     `json:"puzzle"`
	Clues      RawClues    `json:"clues"`
	Title      string      `json:"title"`
	Author     string      `json:"author"`
	Copyright  string      `json:"copyright"`
	Publisher  string      `json:"publisher"`
	Difficulty string      `json:"difficulty"`
	Intro      string      `json:"intro"`
}
