package classifile

import (
	"fmt"
	"math/big"
	"unicode"

	mapsutil "github.com/projectdiscovery/utils/maps"
)

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isASCIIAlnum(r rune) bool {
	return isASCIIDigit(r) || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isASCIIDigit(r) {
			return false
		}
	}
	return true
}

func isAllLetters(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// parseBig parses an all-digit token as an arbitrary-precision integer.
// Leading zeros are fine ("007" -> 7).
func parseBig(s string) (*big.Int, bool) {
	if !isAllDigits(s) {
		return nil, false
	}
	v, ok := new(big.Int).SetString(s, 10)
	return v, ok
}

// renderNumeric renders a numeric value using the position's inferred
// format when one exists, natural digit count otherwise.
func renderNumeric(format string, v *big.Int) string {
	if format != "" && format[0] == '%' {
		return fmt.Sprintf(format, v)
	}
	return v.String()
}

// sortedKeys returns map keys in ascending lexicographic order.
func sortedKeys(m map[string]int) []string {
	return mapsutil.GetSortedKeys(m)
}

// modeValue returns the single most frequent value of a position, ties
// broken by ascending lexicographic order so the choice is deterministic.
func modeValue(values map[string]int) string {
	best, bestCount := "", -1
	for _, k := range sortedKeys(values) {
		if values[k] > bestCount {
			best, bestCount = k, values[k]
		}
	}
	return best
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
