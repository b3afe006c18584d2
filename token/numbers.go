package token

// numeric reports whether v is, in full, a finite decimal or scientific
// notation literal: 1, 42., 1.5, .5, 1e-7, 2.5E10. Signs are never part
// of the buffer (they scan as operators), so none are accepted here.
func numeric(v string) bool {
	d := []byte(v)
	digits := asciiDigits(d)
	f := fract(d[digits:])
	if digits == 0 && f < 2 {
		// no integer part: need at least ".N"
		return false
	}
	e := exponent(d[digits+f:])
	return digits+f+e == len(d)
}

// scientificPrefix reports whether v is a scientific notation literal
// cut off right after its exponent marker, e.g. "1.5E". A sign scanned
// next then joins the literal instead of becoming an operator. The
// leading digit must be nonzero and the marker uppercase.
func scientificPrefix(v string) bool {
	d := []byte(v)
	if len(d) == 0 || d[0] < '1' || d[0] > '9' {
		return false
	}
	n := asciiDigits(d)
	f := fract(d[n:])
	if f == 1 {
		// bare trailing dot
		return false
	}
	rest := d[n+f:]
	return len(rest) == 1 && rest[0] == 'E'
}

func asciiDigits(d []byte) int {
	i := 0
	for i < len(d) {
		if !asciiDigit(d[i]) {
			return i
		}
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	switch c {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return true
	default:
		return false
	}
}

func fract(d []byte) int {
	if len(d) == 0 || d[0] != '.' {
		return 0
	}
	return 1 + asciiDigits(d[1:])
}

func exponent(d []byte) int {
	if len(d) < 2 {
		return 0
	}
	switch d[0] {
	case 'e', 'E':
	default:
		return 0
	}
	i := 1
	switch d[1] {
	case '+', '-':
		i++
	}
	n := asciiDigits(d[i:])
	if n == 0 {
		return 0
	}
	return i + n
}
