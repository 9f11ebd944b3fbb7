// Package report renders ranked word lists for human and script consumers.
package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/teatak/wordrank/ranker"
)

// Write renders entries as one "word count" line per entry.
func Write(w io.Writer, entries []ranker.Entry) error {
	writer := bufio.NewWriter(w)
	for _, e := range entries {
		fmt.Fprintf(writer, "%s %d\n", e.Word, e.Count)
	}
	return writer.Flush()
}

// WriteJSON renders entries as a JSON array followed by a newline.
// An empty result encodes as [], never null.
func WriteJSON(w io.Writer, entries []ranker.Entry) error {
	if entries == nil {
		entries = []ranker.Entry{}
	}
	return json.NewEncoder(w).Encode(entries)
}
