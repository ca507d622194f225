package xword

// mapCell converts one raw grid value into a canonical cell.
// The block sentinel yields a block cell; every other value is treated as
// an open cell, even when malformed, in which case the clue number and
// shape are simply left unset.
func mapCell(v any) Cell {
	if s, ok := v.(string); ok && s == BlockSentinel {
		return Cell{Block: true}
	}

	if n, ok := asInt(v); ok {
		return Cell{Number: n}
	}

	if obj, ok := v.(map[string]any); ok {
		var c Cell
		if n, ok := asInt(obj["cell"]); ok {
			c.Number = n
		}
		if style, ok := obj["style"].(map[string]any); ok {
			if shape, ok := style["shapebg"].(string); ok {
				c.Shape = shape
			}
		}
		return c
	}

	return Cell{}
}

// asInt reads a numeric JSON value. encoding/json decodes numbers as
// float64; documents built in code may carry plain ints.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	}
	return 0, false
}
