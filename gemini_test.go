package xword

import (
	"context"
	"encoding/json"
	"os"
	"testing"
)

func TestExtractDocument(t *testing.T) {
	projectID := os.Getenv("GCP_PROJECT_ID")
	if projectID == "" {
		t.Skip("GCP_PROJECT_ID not set, skipping integration test")
	}

	ctx := context.Background()
	client, err := NewGeminiClient(ctx, projectID, "")
	if err != nil {
		t.Fatalf("create client: %v", err)
	}
	defer client.Close()

	imageData, err := os.ReadFile("testdata/example.png")
	if err != nil {
		t.Fatalf("read image: %v", err)
	}

	doc, err := client.ExtractDocument(ctx, imageData, "image/png")
	if err != nil {
		t.Fatalf("extract document: %v", err)
	}

	// The transcription must survive the normal conversion pipeline.
	puzzle, err := ParseDocument(doc)
	if err != nil {
		t.Fatalf("convert extracted document: %v", err)
	}

	// Count block cells.
	blocks := 0
	for _, row := range puzzle.Grid {
		for _, cell := range row {
			if cell.Block {
				blocks++
			}
		}
	}

	t.Logf("Grid: %d rows, %d block cells, %d across clues, %d down clues",
		len(puzzle.Grid), blocks, len(puzzle.Clues.Across), len(puzzle.Clues.Down))

	// Print a sample for manual inspection.
	out, _ := json.MarshalIndent(puzzle, "", "  ")
	t.Logf("Converted puzzle:\n%s", string(out))
}
