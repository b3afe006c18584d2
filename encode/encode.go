// Package encode turns token streams back into formula text: Render for
// normalized reconstruction, PrettyPrint for an indented diagnostic
// listing.
package encode

import (
	"regexp"
	"strings"

	"github.com/glinford/excel-formula-parser/token"
)

var (
	wsRun   = regexp.MustCompile(`\s+`)
	opSpace = regexp.MustCompile(` *([+\-*/^=<>]) *`)
)

// Render reconstructs normalized formula text from a token stream. The
// stream need not come from Tokenize; hand-built or structurally odd
// streams degrade to best-effort text. The result is normalized, not a
// byte-exact inverse of the original input.
func Render(toks []token.Token) string {
	var b strings.Builder
	arrays := 0
	for i := range toks {
		t := &toks[i]
		switch t.Type {
		case token.TFunction:
			switch t.Value {
			case "ARRAY":
				if t.SubType == token.SStart {
					b.WriteByte('{')
					arrays++
				} else {
					b.WriteByte('}')
					if arrays > 0 {
						arrays--
					}
				}
			case "ARRAYROW":
				// row scopes print nothing; the Argument
				// between them carries the separator
			default:
				if t.SubType == token.SStart {
					b.WriteString(t.Value)
					b.WriteByte('(')
				} else {
					b.WriteByte(')')
				}
			}
		case token.TSubexpression:
			if t.SubType == token.SStart {
				b.WriteByte('(')
			} else {
				b.WriteByte(')')
			}
		case token.TArgument:
			if arrays > 0 {
				b.WriteByte(';')
			} else {
				b.WriteByte(',')
			}
		case token.TOperatorInfix:
			if t.Value == "," {
				b.WriteByte(',')
			} else {
				b.WriteByte(' ')
				b.WriteString(t.Value)
				b.WriteByte(' ')
			}
		case token.TOperatorPostfix:
			b.WriteString(t.Value)
		case token.TOperand:
			if t.SubType == token.SText {
				b.WriteByte('"')
				b.WriteString(t.Value)
				b.WriteByte('"')
			} else {
				b.WriteString(t.Value)
			}
		default:
			b.WriteString(t.Value)
		}
	}
	return normalize(b.String())
}

// normalize collapses whitespace runs to one space, removes the padding
// around arithmetic and comparison operators, restores the
// doubled-quote escape, and trims the ends.
func normalize(v string) string {
	v = wsRun.ReplaceAllString(v, " ")
	v = opSpace.ReplaceAllString(v, "$1")
	v = strings.ReplaceAll(v, `" "`, `""`)
	return strings.TrimSpace(v)
}
