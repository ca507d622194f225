package xword

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrUnsupportedInput is returned by Parse when the argument is neither a
// file path nor a document.
var ErrUnsupportedInput = errors.New("input must be a file path, a *Document or a map[string]any")

// Parse converts a puzzle from the source interchange format into the
// canonical model. It accepts a file path (string), an already decoded
// *Document or Document, or a generic map as produced by encoding/json.
//
// On validation failure the returned error is a *ValidationError listing
// every structural problem found. The returned puzzle shares no structure
// with the input.
func Parse(src any) (*Puzzle, error) {
	switch v := src.(type) {
	case string:
		return ParseFile(v)
	case *Document:
		return ParseDocument(v)
	case Document:
		return ParseDocument(&v)
	case map[string]any:
		doc, err := documentFromMap(v)
		if err != nil {
			return nil, err
		}
		return ParseDocument(doc)
	default:
		return nil, fmt.Errorf("%w, got %T", ErrUnsupportedInput, src)
	}
}

// ParseFile reads the file at path, decodes it as a source document and
// converts it. Read and decode failures are reported with the path
// attached.
func ParseFile(path string) (*Puzzle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read puzzle %s: %w", path, err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode puzzle %s: %w", path, err)
	}

	return ParseDocument(&doc)
}

// ParseDocument validates an already decoded document and converts it.
func ParseDocument(d *Document) (*Puzzle, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return convertDocument(d), nil
}

// documentFromMap round-trips a generic map through JSON so the untyped
// tree lands in the same shape a decoded file would have.
func documentFromMap(m map[string]any) (*Document, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return &doc, nil
}
