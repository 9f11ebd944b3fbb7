package ranker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankCaseInsensitive(t *testing.T) {
	lines := []string{
		"Error: Disk full",
		"error: network down",
		"ERROR: disk error",
	}

	got := Rank(lines, 2)

	require.Len(t, got, 2)
	assert.Equal(t, Entry{Word: "error", Count: 4}, got[0])
	assert.Equal(t, Entry{Word: "disk", Count: 2}, got[1])
}

func TestRankTieBreakAlphabetical(t *testing.T) {
	lines := []string{
		"apple banana apple",
		"banana cherry",
		"apple cherry date",
		"date egg",
	}

	got := Rank(lines, 4)

	expected := []Entry{
		{Word: "apple", Count: 3},
		{Word: "banana", Count: 2},
		{Word: "cherry", Count: 2},
		{Word: "date", Count: 2},
	}
	assert.Equal(t, expected, got)
}

func TestRankAlphanumericWords(t *testing.T) {
	lines := []string{
		"Error123 test 123",
		"error123 test test",
		"test123 456",
	}

	got := Rank(lines, 3)

	require.Len(t, got, 3)
	assert.Equal(t, Entry{Word: "test", Count: 3}, got[0])
	assert.Equal(t, Entry{Word: "error123", Count: 2}, got[1])
	// "123" and "456" and "test123" all have count 1; "123" wins the
	// byte-order tie-break.
	assert.Equal(t, Entry{Word: "123", Count: 1}, got[2])
}

func TestRankEmptyInput(t *testing.T) {
	assert.Empty(t, Rank(nil, 5))
	assert.Empty(t, Rank([]string{}, 5))
}

func TestRankKLargerThanDistinct(t *testing.T) {
	lines := []string{
		"word1 word2",
		"word1 word3",
	}

	got := Rank(lines, 10)

	require.Len(t, got, 3)
	assert.Equal(t, Entry{Word: "word1", Count: 2}, got[0])
}

func TestRankKZero(t *testing.T) {
	got := Rank([]string{"test"}, 0)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestRankPunctuationOnlyLines(t *testing.T) {
	got := Rank([]string{"!!! ...", "---", ""}, 5)
	assert.Empty(t, got)
}

func TestRankDeterministic(t *testing.T) {
	lines := []string{
		"a b c d e f g h",
		"h g f e d c b a",
		"a a b b c c d d",
	}
	first := Rank(lines, 8)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Rank(lines, 8))
	}
}

func TestRankStrictOrdering(t *testing.T) {
	lines := []string{
		"the quick brown fox jumps over the lazy dog",
		"the dog barks at the quick fox",
		"lazy dog lazy fox",
	}

	got := Rank(lines, 100)

	for i := 1; i < len(got); i++ {
		prev, cur := got[i-1], got[i]
		ok := prev.Count > cur.Count ||
			(prev.Count == cur.Count && prev.Word < cur.Word)
		assert.True(t, ok, "entries %d and %d out of order: %v %v", i-1, i, prev, cur)
	}
}

func TestTableTotals(t *testing.T) {
	table := NewTable()
	table.AddLine("Error: Disk full")
	table.AddLine("error: network down")
	table.AddLine("!!!")

	assert.Equal(t, 6, table.Total())
	assert.Equal(t, 5, table.Distinct())
	assert.Equal(t, 2, table.Count("error"))
	assert.Equal(t, 0, table.Count("unseen"))

	// Sum of counts over the untruncated result equals the total.
	sum := 0
	for _, e := range table.Top(table.Distinct()) {
		sum += e.Count
	}
	assert.Equal(t, table.Total(), sum)
}

func TestTableMerge(t *testing.T) {
	a := NewTable()
	a.AddLine("disk full disk")
	b := NewTable()
	b.AddLine("disk error")

	a.Merge(b)

	assert.Equal(t, 5, a.Total())
	assert.Equal(t, 3, a.Count("disk"))
	assert.Equal(t, 1, a.Count("error"))
	// b unchanged
	assert.Equal(t, 2, b.Total())
	assert.Equal(t, 1, b.Count("disk"))
}

func TestTopNegativeKClampsToZero(t *testing.T) {
	table := NewTable()
	table.AddLine("a b c")
	assert.Empty(t, table.Top(-1))
}
