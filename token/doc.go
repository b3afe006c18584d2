// Package token scans spreadsheet formula text into a flat, ordered
// stream of typed tokens. Scanning is purely lexical: no evaluation,
// no reference validation, and malformed input never fails, it only
// produces an unbalanced stream.
package token
