// Package formula tokenizes spreadsheet formula text (Excel style) into
// a flat, ordered stream of typed tokens, reconstructs formula text from
// such a stream, and renders streams for human inspection. It never
// evaluates formulas: only lexical structure is examined, and malformed
// input is tolerated rather than rejected.
package formula

import (
	"github.com/glinford/excel-formula-parser/encode"
	"github.com/glinford/excel-formula-parser/token"
)

// Parse scans formula text, stripping a single leading '=', and returns
// the classified token stream. The stream may be empty. Parse never
// fails; pathological input only yields unbalanced Start/Stop nesting.
//
// Each call owns its scanning state, so concurrent Parse calls are safe.
func Parse(text string, opts ...token.TokenOpt) []token.Token {
	return token.Tokenize(text, opts...)
}

// Render reconstructs normalized formula text from a token stream. It
// accepts hand-built streams and degrades to best-effort text on
// structurally odd input.
func Render(toks []token.Token) string {
	return encode.Render(toks)
}

// PrettyPrint returns an indented diagnostic listing of a token stream.
func PrettyPrint(toks []token.Token) string {
	return encode.PrettyPrint(toks)
}
