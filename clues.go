package xword

// buildClueTable folds an ordered list of [number, text] entries into a
// clue table. A repeated number overwrites the earlier entry. Entries
// without a numeric first element are skipped. A nil or empty list yields
// an empty table.
func buildClueTable(entries [][]any) map[int]string {
	table := make(map[int]string, len(entries))
	for _, e := range entries {
		if len(e) < 2 {
			continue
		}
		n, ok := asInt(e[0])
		if !ok {
			continue
		}
		text, _ := e[1].(string)
		table[n] = text
	}
	return table
}
