package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/teatak/wordrank/ranker"
	"github.com/teatak/wordrank/report"
)

func newRankCmd() *cobra.Command {
	var (
		top    int
		format string
	)

	cmd := &cobra.Command{
		Use:   "rank [files...]",
		Short: "Rank the most frequent words in the given files (stdin if none)",
		Example: `  wordrank rank access.log -k 5
  cat access.log | wordrank rank -k 5 --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if top < 0 {
				return fmt.Errorf("-k must be non-negative, got %d", top)
			}
			if format != "text" && format != "json" {
				return fmt.Errorf("unknown format %q, want text or json", format)
			}

			table := ranker.NewTable()
			if len(args) == 0 {
				t, err := scanLines(os.Stdin)
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				table.Merge(t)
			}
			for _, path := range args {
				t, err := scanFile(path)
				if err != nil {
					return err
				}
				table.Merge(t)
			}

			entries := table.Top(top)
			if format == "json" {
				return report.WriteJSON(cmd.OutOrStdout(), entries)
			}
			return report.Write(cmd.OutOrStdout(), entries)
		},
	}

	cmd.Flags().IntVarP(&top, "top", "k", 10, "Number of top words to report")
	cmd.Flags().StringVar(&format, "format", "text", "Output format: text or json")
	return cmd
}

func scanFile(path string) (*ranker.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	t, err := scanLines(file)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return t, nil
}

func scanLines(r io.Reader) (*ranker.Table, error) {
	scanner := bufio.NewScanner(r)
	// Increase buffer size for long lines
	buf := make([]byte, 1024*1024)
	scanner.Buffer(buf, 1024*1024)

	t := ranker.NewTable()
	for scanner.Scan() {
		t.AddLine(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return t, nil
}
