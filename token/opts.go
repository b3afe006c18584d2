package token

type tokenOpts struct {
	keepWhitespace bool
}

// TokenOpt configures a Tokenize call.
type TokenOpt func(*tokenOpts)

// KeepWhitespace retains Whitespace tokens in the result instead of
// dropping them in the filter pass. Diagnostic use.
func KeepWhitespace() TokenOpt {
	return func(o *tokenOpts) {
		o.keepWhitespace = true
	}
}
