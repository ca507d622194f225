package xword

import "fmt"

// ValidationError reports every structural problem found in a source
// document. Messages are accumulated, not cut off at the first problem, so
// one round trip gives the full diagnosis.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	msg := "invalid puzzle document:"
	for _, m := range e.Messages {
		msg += "\n\t" + m
	}
	return msg
}

// Validate checks the document against the minimal contract of the source
// format. It returns nil when the document is structurally valid, and a
// *ValidationError listing every problem otherwise.
func (d *Document) Validate() error {
	if msgs := validateDocument(d); len(msgs) > 0 {
		return &ValidationError{Messages: msgs}
	}
	return nil
}

// validateDocument collects structural error messages for a document.
// The dimensions and puzzle keys must both be present; the bound checks
// depend on them and are skipped when either is missing. Only grids larger
// than declared are an error, a grid smaller than declared is accepted.
func validateDocument(d *Document) []string {
	var msgs []string

	if d.Dimensions == nil {
		msgs = append(msgs, "missing required key: dimensions")
	}
	if d.Puzzle == nil {
		msgs = append(msgs, "missing required key: puzzle")
	}
	if d.Dimensions == nil || d.Puzzle == nil {
		return msgs
	}

	// The width check compares only the longest row against the declared
	// width, not each row individually.
	maxLen := 0
	for _, row := range d.Puzzle {
		if len(row) > maxLen {
			maxLen = len(row)
		}
	}
	if maxLen > d.Dimensions.Width {
		msgs = append(msgs, fmt.Sprintf("longest row has %d cells but declared width is %d", maxLen, d.Dimensions.Width))
	}
	if len(d.Puzzle) > d.Dimensions.Height {
		msgs = append(msgs, fmt.Sprintf("grid has %d rows but declared height is %d", len(d.Puzzle), d.Dimensions.Height))
	}

	return msgs
}
