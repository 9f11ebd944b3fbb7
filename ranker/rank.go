// Package ranker computes the most frequent words across a set of log
// lines, with deterministic ordering.
package ranker

import (
	"sort"
)

// Entry is one ranked word with its occurrence count.
type Entry struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Top returns the k most frequent entries of the table, ordered by count
// descending, then word ascending. Tokens are unique map keys, so the
// comparator is a strict total order and the result is fully deterministic.
// k greater than the number of distinct tokens returns all of them; k of
// zero returns an empty, non-nil slice.
func (t *Table) Top(k int) []Entry {
	entries := make([]Entry, 0, len(t.counts))
	for tok, c := range t.counts {
		entries = append(entries, Entry{Word: tok, Count: c})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Word < entries[j].Word
	})
	if k < 0 {
		k = 0
	}
	if k < len(entries) {
		entries = entries[:k]
	}
	return entries
}

// Rank returns the k most frequent words across lines. Words are compared
// case-insensitively after ASCII folding, and any character that is not an
// ASCII letter or digit separates words.
func Rank(lines []string, k int) []Entry {
	t := NewTable()
	for _, line := range lines {
		t.AddLine(line)
	}
	return t.Top(k)
}
