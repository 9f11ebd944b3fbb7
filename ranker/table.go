package ranker

import (
	"github.com/teatak/wordrank/tokenizer"
)

// Table accumulates occurrence counts per token.
type Table struct {
	counts map[string]int
	total  int
}

// NewTable creates a new empty table.
func NewTable() *Table {
	return &Table{
		counts: make(map[string]int),
	}
}

// Add records one occurrence of token.
func (t *Table) Add(token string) {
	t.counts[token]++
	t.total++
}

// AddLine tokenizes line and records every token it yields.
func (t *Table) AddLine(line string) {
	for _, tok := range tokenizer.Tokenize(line) {
		t.Add(tok)
	}
}

// Count returns the occurrence count of token, zero if unseen.
func (t *Table) Count(token string) int {
	return t.counts[token]
}

// Distinct returns the number of distinct tokens recorded.
func (t *Table) Distinct() int {
	return len(t.counts)
}

// Total returns the total number of token occurrences recorded.
func (t *Table) Total() int {
	return t.total
}

// Merge folds other into t, summing counts per token. other is left
// unchanged.
func (t *Table) Merge(other *Table) {
	for tok, c := range other.counts {
		t.counts[tok] += c
		t.total += c
	}
}
