package token

import (
	"strings"

	"github.com/glinford/excel-formula-parser/debug"
)

// scanMode is the scanner's sub-context. The four quoted/error contexts
// are mutually exclusive, so they are one tagged state rather than four
// booleans.
type scanMode int

const (
	scanDefault scanMode = iota
	scanString           // inside a double-quoted text literal
	scanPath             // inside a single-quoted sheet-name segment
	scanBracket          // inside a [...] external-reference segment
	scanError            // inside a #... error code
)

const (
	quoteDouble  = '"'
	quoteSingle  = '\''
	bracketOpen  = '['
	bracketClose = ']'
	braceOpen    = '{'
	braceClose   = '}'
	parenOpen    = '('
	parenClose   = ')'
	semicolon    = ';'
	comma        = ','
	colon        = ':'
	errorStart   = '#'
	space        = ' '
	percent      = '%'
)

const (
	operatorsInfix = "+-*/^&=><"
	errorStops     = "+-*/^&=<>,()"
)

// Synthetic function names marking array literals. Never real function
// names: ARRAY scopes the whole {...} literal, ARRAYROW one row of it.
const (
	arrayMark    = "ARRAY"
	arrayRowMark = "ARRAYROW"
)

// scanState is the transient state of one Tokenize call. The stack holds
// indices into toks rather than token pointers so that the one permitted
// post-emission mutation (operand to function Start on '(') goes through
// the owned slice.
type scanState struct {
	src   []rune
	pos   int
	buf   []rune
	mode  scanMode
	toks  []Token
	stack []int
}

// Tokenize scans formula text into a classified token stream. A single
// leading '=' is stripped first. Scanning never fails: unbalanced
// parentheses or braces, unterminated strings, paths, brackets and
// truncated error codes are all tolerated, and the only observable
// consequence is an unbalanced Start/Stop nesting in the result.
func Tokenize(formula string, opts ...TokenOpt) []Token {
	opt := &tokenOpts{}
	for _, o := range opts {
		o(opt)
	}
	formula = strings.TrimPrefix(formula, "=")
	if degenerate(formula) {
		return nil
	}
	st := &scanState{src: []rune(formula)}
	st.scan()
	if debug.Scan() {
		debug.LogAny(st.toks)
	}
	toks := filterTokens(st.toks, opt)
	refineTokens(toks)
	if debug.Tokens() {
		debug.LogAny(toks)
	}
	return toks
}

// degenerate reports the short-circuit inputs that produce an empty
// stream with no scanning: blank text and a single bare arithmetic
// operator.
func degenerate(v string) bool {
	switch strings.TrimSpace(v) {
	case "", "+", "-", "*", "/":
		return true
	}
	return false
}

func (st *scanState) scan() {
	n := len(st.src)
	for st.pos < n {
		c := st.src[st.pos]
		switch st.mode {
		case scanString:
			st.scanString(c)
		case scanPath:
			st.scanPath(c)
		case scanBracket:
			// no escapes; the brackets stay in the buffer so the
			// full [...] text joins the surrounding reference
			st.buf = append(st.buf, c)
			if c == bracketClose {
				st.mode = scanDefault
			}
			st.pos++
		case scanError:
			if c == space || strings.ContainsRune(errorStops, c) {
				st.emit(string(st.buf), TOperand, SError)
				st.buf = st.buf[:0]
				st.mode = scanDefault
				continue // rescan c normally
			}
			st.buf = append(st.buf, c)
			st.pos++
		default:
			st.scanNormal(c)
		}
	}
	// end of input: a still-open sub-context is not an error, its
	// partial buffer goes through the ordinary classifier
	st.flush()
}

// scanString consumes one character of a double-quoted text literal.
// A doubled quote embeds one literal quote; a single quote closes the
// literal and emits an Operand/Text token (possibly empty).
func (st *scanState) scanString(c rune) {
	if c == quoteDouble {
		if st.peek() == quoteDouble {
			st.buf = append(st.buf, quoteDouble)
			st.pos += 2
			return
		}
		st.emit(string(st.buf), TOperand, SText)
		st.buf = st.buf[:0]
		st.mode = scanDefault
		st.pos++
		return
	}
	st.buf = append(st.buf, c)
	st.pos++
}

// scanPath consumes one character of a single-quoted sheet-name segment.
// Closing does not emit: the segment stays in the buffer so a
// sheet-qualified reference keeps accumulating.
func (st *scanState) scanPath(c rune) {
	if c == quoteSingle {
		if st.peek() == quoteSingle {
			st.buf = append(st.buf, quoteSingle)
			st.pos += 2
			return
		}
		st.mode = scanDefault
		st.pos++
		return
	}
	st.buf = append(st.buf, c)
	st.pos++
}

// scanNormal dispatches one character outside any sub-context:
// structural characters first, then operators, then whitespace, else
// the character accumulates into the pending buffer.
func (st *scanState) scanNormal(c rune) {
	switch c {
	case quoteDouble:
		if len(st.buf) > 0 {
			// not expected
			st.emit(string(st.buf), TUnknown, SNone)
			st.buf = st.buf[:0]
		}
		st.mode = scanString
		st.pos++

	case quoteSingle:
		if len(st.buf) > 0 {
			// not expected
			st.emit(string(st.buf), TUnknown, SNone)
			st.buf = st.buf[:0]
		}
		st.mode = scanPath
		st.pos++

	case bracketOpen:
		st.buf = append(st.buf, c)
		st.mode = scanBracket
		st.pos++

	case errorStart:
		st.flush()
		st.buf = append(st.buf, c)
		st.mode = scanError
		st.pos++

	case braceOpen:
		st.flush()
		st.push(st.emit(arrayMark, TFunction, SStart))
		st.pos++

	case braceClose:
		st.flush()
		st.emit(arrayMark, TFunction, SStop)
		if len(st.stack) > 0 {
			st.stack = st.stack[:len(st.stack)-1]
		}
		st.pos++

	case parenOpen:
		st.flush()
		if i := len(st.toks) - 1; i >= 0 && st.toks[i].Type == TOperand {
			// the operand was really a function name
			st.toks[i].Type = TFunction
			st.toks[i].SubType = SStart
			st.push(i)
		} else {
			st.push(st.emit("", TSubexpression, SStart))
		}
		st.pos++

	case parenClose:
		st.flush()
		st.closeParen()
		st.pos++

	case comma:
		st.flush()
		switch {
		case st.inArray():
			st.emit(",", TOperatorInfix, SUnion)
		case st.inFunction():
			st.emit(",", TArgument, SNone)
		default:
			// top-level set union
			st.emit(",", TOperatorInfix, SUnion)
		}
		st.pos++

	case colon:
		st.flush()
		st.emit(":", TOperatorInfix, SRange)
		st.pos++

	case semicolon:
		st.flush()
		if st.openArrays() == 1 {
			// top-level array row boundary; the row Start is not
			// pushed, the ARRAY entry owns the whole literal and
			// '}' pops exactly that
			st.emit(arrayRowMark, TFunction, SStop)
			st.emit(";", TArgument, SNone)
			st.emit(arrayRowMark, TFunction, SStart)
		} else {
			st.emit(";", TArgument, SNone)
		}
		st.pos++

	case space:
		st.flush()
		st.emit(" ", TWhitespace, SNone)
		for st.pos < len(st.src) && st.src[st.pos] == space {
			st.pos++
		}

	default:
		switch d := st.double(); d {
		case "<=", ">=", "<>":
			st.flush()
			st.emit(d, TOperatorInfix, SLogical)
			st.pos += 2
			return
		}
		if (c == '+' || c == '-') && scientificPrefix(string(st.buf)) {
			// the sign belongs to the exponent, not an operator
			st.buf = append(st.buf, c)
			st.pos++
			return
		}
		if strings.ContainsRune(operatorsInfix, c) {
			st.flush()
			st.emit(string(c), TOperatorInfix, SNone)
			st.pos++
			return
		}
		if c == percent {
			st.flush()
			st.emit(string(c), TOperatorPostfix, SNone)
			st.pos++
			return
		}
		st.buf = append(st.buf, c)
		st.pos++
	}
}

// closeParen pops the scope stack and emits the matching Stop token.
// An unmatched ')' still emits a Subexpression/Stop.
func (st *scanState) closeParen() {
	if len(st.stack) == 0 {
		st.emit("", TSubexpression, SStop)
		return
	}
	i := st.stack[len(st.stack)-1]
	st.stack = st.stack[:len(st.stack)-1]
	if st.toks[i].Type == TFunction {
		st.emit("", TFunction, SStop)
		return
	}
	st.emit("", TSubexpression, SStop)
}

// flush classifies and emits the pending buffer, if any. Numbers and
// TRUE/FALSE are recognized here; everything else defaults to Range
// (cell references, names, table references, unrecognized identifiers)
// with no reference-syntax validation.
func (st *scanState) flush() {
	if len(st.buf) == 0 {
		return
	}
	v := string(st.buf)
	st.buf = st.buf[:0]
	switch {
	case numeric(v):
		st.emit(v, TOperand, SNumber)
	case v == "TRUE" || v == "FALSE":
		st.emit(v, TOperand, SLogical)
	default:
		st.emit(v, TOperand, SRange)
	}
}

func (st *scanState) emit(v string, t TokenType, s TokenSubType) int {
	st.toks = append(st.toks, Token{Value: v, Type: t, SubType: s})
	return len(st.toks) - 1
}

func (st *scanState) push(i int) {
	st.stack = append(st.stack, i)
}

func (st *scanState) peek() rune {
	if st.pos+1 < len(st.src) {
		return st.src[st.pos+1]
	}
	return 0
}

func (st *scanState) double() string {
	if st.pos+2 <= len(st.src) {
		return string(st.src[st.pos : st.pos+2])
	}
	return ""
}

// inArray reports whether any open scope is an array literal scope.
// Row scopes never reach the stack.
func (st *scanState) inArray() bool {
	return st.openArrays() > 0
}

// inFunction reports whether any open scope is a function call.
func (st *scanState) inFunction() bool {
	for _, i := range st.stack {
		if st.toks[i].Type == TFunction {
			return true
		}
	}
	return false
}

// openArrays counts open ARRAY scopes (not rows).
func (st *scanState) openArrays() int {
	n := 0
	for _, i := range st.stack {
		if st.toks[i].Value == arrayMark {
			n++
		}
	}
	return n
}
