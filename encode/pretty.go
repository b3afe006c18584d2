package encode

import (
	"strings"

	"github.com/glinford/excel-formula-parser/token"
)

// PrettyPrint returns a diagnostic dump of a token stream, one line per
// token as "value <Type> <Subtype>", indented two spaces per nesting
// level. Indentation drops just before a Stop token and grows just
// after a Start token.
func PrettyPrint(toks []token.Token) string {
	return prettyPrint(toks, nil)
}

// PrettyPrintColors is PrettyPrint with token values colorized by type.
func PrettyPrintColors(toks []token.Token, colors *Colors) string {
	return prettyPrint(toks, colors)
}

func prettyPrint(toks []token.Token, colors *Colors) string {
	var b strings.Builder
	indent := 0
	for i := range toks {
		t := &toks[i]
		if t.SubType == token.SStop && indent > 0 {
			indent--
		}
		for j := 0; j < indent; j++ {
			b.WriteString("  ")
		}
		v := t.Value
		if colors != nil {
			v = colors.Get(t.Type)(v)
		}
		b.WriteString(v)
		b.WriteString(" <")
		b.WriteString(t.Type.String())
		b.WriteString("> <")
		b.WriteString(t.SubType.String())
		b.WriteString(">\n")
		if t.SubType == token.SStart {
			indent++
		}
	}
	return b.String()
}
