package asm

import (
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// lexLine splits one already-comment-stripped source line into tokens.
// Whitespace-separated fields are classified by keywords first, then as a
// decimal literal, then as an identifier — the same order
// original_source's hand-rolled scanner applies character by character.
func lexLine(line string, maxIdent int, pos func(col int) string) []token {
	var toks []token
	col := 0
	for _, field := range strings.Fields(line) {
		start := strings.Index(line[col:], field) + col
		col = start + len(field)

		if kind, ok := keywords[field]; ok {
			toks = append(toks, token{kind: kind, text: field, col: start})
			continue
		}
		if n, err := strconv.Atoi(field); err == nil {
			toks = append(toks, token{kind: tkUint, num: n, col: start})
			continue
		}

		ident := field
		if len(ident) > maxIdent {
			logrus.WithField("pos", pos(start)).
				Warnf("identifier %q truncated to %d characters", ident, maxIdent)
			ident = ident[:maxIdent]
		}
		toks = append(toks, token{kind: tkIdent, text: ident, col: start})
	}
	return toks
}

// stripComment drops a trailing `//...` line comment, the only comment
// style original_source's preprocessor recognizes.
func stripComment(line string) string {
	if i := strings.Index(line, "//"); i >= 0 {
		return line[:i]
	}
	return line
}
