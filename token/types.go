package token

import "fmt"

// TokenType classifies a token's role in the formula.
type TokenType int

const (
	TNoop TokenType = iota
	TOperand
	TFunction
	TSubexpression
	TArgument
	TOperatorPrefix
	TOperatorInfix
	TOperatorPostfix
	TWhitespace
	TUnknown
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TNoop:            "Noop",
		TOperand:         "Operand",
		TFunction:        "Function",
		TSubexpression:   "Subexpression",
		TArgument:        "Argument",
		TOperatorPrefix:  "OperatorPrefix",
		TOperatorInfix:   "OperatorInfix",
		TOperatorPostfix: "OperatorPostfix",
		TWhitespace:      "Whitespace",
		TUnknown:         "Unknown",
	}[t]
}

func (t TokenType) MarshalText() ([]byte, error) {
	s := t.String()
	if s == "" {
		return nil, fmt.Errorf("<err: %d is not a token type>", t)
	}
	return []byte(s), nil
}

// TokenSubType refines a TokenType; SNone marks the absence of one.
type TokenSubType int

const (
	SNone TokenSubType = iota
	SStart
	SStop
	SText
	SNumber
	SLogical
	SError
	SRange
	SMath
	SConcatenation
	SIntersection
	SUnion
)

func (s TokenSubType) String() string {
	return map[TokenSubType]string{
		SNone:          "",
		SStart:         "Start",
		SStop:          "Stop",
		SText:          "Text",
		SNumber:        "Number",
		SLogical:       "Logical",
		SError:         "Error",
		SRange:         "Range",
		SMath:          "Math",
		SConcatenation: "Concatenation",
		SIntersection:  "Intersection",
		SUnion:         "Union",
	}[s]
}

func (s TokenSubType) MarshalText() ([]byte, error) {
	if s < SNone || s > SUnion {
		return nil, fmt.Errorf("<err: %d is not a token subtype>", s)
	}
	return []byte(s.String()), nil
}

// Token is one element of a scanned formula. Value holds the literal
// text: a function name, operand text, or operator characters.
type Token struct {
	Value   string       `json:"value"`
	Type    TokenType    `json:"type"`
	SubType TokenSubType `json:"subtype,omitempty"`
}

func (t *Token) String() string {
	return fmt.Sprintf("%s <%s> <%s>", t.Value, t.Type, t.SubType)
}

// Depth returns the Start/Stop nesting depth remaining at the end of
// the stream. Zero for well-formed input; unmatched closers drive it
// negative, unmatched openers positive.
func Depth(toks []Token) int {
	d := 0
	for i := range toks {
		switch toks[i].SubType {
		case SStart:
			d++
		case SStop:
			d--
		}
	}
	return d
}
