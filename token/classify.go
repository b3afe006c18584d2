package token

import "strings"

// filterTokens drops Whitespace tokens and any synthetic '(' Function
// artifact so neither appears in the public stream. The input slice is
// reused.
func filterTokens(toks []Token, opt *tokenOpts) []Token {
	dst := toks[:0]
	for _, t := range toks {
		if t.Type == TWhitespace && !opt.keepWhitespace {
			continue
		}
		if t.Type == TFunction && t.Value == "(" {
			continue
		}
		dst = append(dst, t)
	}
	return dst
}

// refineTokens assigns the subtypes the scanner leaves open. Only infix
// operators whose subtype is still empty are touched, so two-character
// comparisons keep the Logical subtype assigned at detection and can
// never be demoted to Math by pass ordering.
func refineTokens(toks []Token) {
	for i := range toks {
		t := &toks[i]
		switch {
		case t.Type == TOperatorInfix && t.SubType == SNone:
			switch t.Value {
			case "&":
				t.SubType = SConcatenation
			case "=", "<", ">":
				t.SubType = SLogical
			default:
				t.SubType = SMath
			}
		case t.Type == TOperand && t.SubType == SRange && strings.HasPrefix(t.Value, "#"):
			// error-shaped operands that bypassed the in-error
			// path, e.g. flushed at end of input
			t.SubType = SError
		}
	}
}
