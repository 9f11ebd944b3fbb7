// Package tokenizer splits raw log lines into lowercase ASCII tokens.
package tokenizer

// A token is a maximal run of ASCII letters and digits. Every other byte,
// including all non-ASCII bytes, acts as a delimiter and is never part of
// a token.

func isAlphaNum(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// Fold lowercases ASCII letters in s. All other bytes, non-ASCII included,
// pass through unchanged.
func Fold(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// Tokenize extracts the lowercase tokens of a single line, in order of
// appearance. Runs of delimiters of any length collapse into one boundary,
// so the result never contains empty strings.
func Tokenize(line string) []string {
	var tokens []string
	start := -1
	for i := 0; i < len(line); i++ {
		if isAlphaNum(line[i]) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			tokens = append(tokens, Fold(line[start:i]))
			start = -1
		}
	}
	if start >= 0 {
		tokens = append(tokens, Fold(line[start:]))
	}
	return tokens
}
