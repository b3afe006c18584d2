package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Scan   bool
	Tokens bool
}

var d *debug

func init() {
	d = &debug{}
	d.Scan = boolEnv("FORMULA_DEBUG_SCAN")
	d.Tokens = boolEnv("FORMULA_DEBUG_TOKENS")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// Scan reports whether the raw, unfiltered token stream should be
// dumped after scanning.
func Scan() bool {
	return d.Scan
}

// Tokens reports whether the classified token stream should be dumped.
func Tokens() bool {
	return d.Tokens
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
	os.Stderr.Write([]byte{'\n'})
}
