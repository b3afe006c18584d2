package token

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFilterTokens(t *testing.T) {
	in := []Token{
		{Value: " ", Type: TWhitespace},
		{Value: "(", Type: TFunction, SubType: SStart},
		{Value: "1", Type: TOperand, SubType: SNumber},
		{Value: " ", Type: TWhitespace},
	}
	want := []Token{
		{Value: "1", Type: TOperand, SubType: SNumber},
	}
	got := filterTokens(in, &tokenOpts{})
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("filterTokens mismatch (-want +got):\n%s", diff)
	}
}

func TestRefineTokens(t *testing.T) {
	tests := []struct {
		name string
		in   Token
		want Token
	}{
		{
			name: "ampersand to concatenation",
			in:   Token{Value: "&", Type: TOperatorInfix},
			want: Token{Value: "&", Type: TOperatorInfix, SubType: SConcatenation},
		},
		{
			name: "equals to logical",
			in:   Token{Value: "=", Type: TOperatorInfix},
			want: Token{Value: "=", Type: TOperatorInfix, SubType: SLogical},
		},
		{
			name: "caret to math",
			in:   Token{Value: "^", Type: TOperatorInfix},
			want: Token{Value: "^", Type: TOperatorInfix, SubType: SMath},
		},
		{
			name: "two-character comparison not demoted",
			in:   Token{Value: "<=", Type: TOperatorInfix, SubType: SLogical},
			want: Token{Value: "<=", Type: TOperatorInfix, SubType: SLogical},
		},
		{
			name: "union comma untouched",
			in:   Token{Value: ",", Type: TOperatorInfix, SubType: SUnion},
			want: Token{Value: ",", Type: TOperatorInfix, SubType: SUnion},
		},
		{
			name: "error-shaped range operand",
			in:   Token{Value: "#SPILL!", Type: TOperand, SubType: SRange},
			want: Token{Value: "#SPILL!", Type: TOperand, SubType: SError},
		},
		{
			name: "text operand untouched",
			in:   Token{Value: "#x", Type: TOperand, SubType: SText},
			want: Token{Value: "#x", Type: TOperand, SubType: SText},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := []Token{tt.in}
			refineTokens(toks)
			if diff := cmp.Diff(tt.want, toks[0]); diff != "" {
				t.Errorf("refineTokens mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
