package classifile

import (
	"fmt"
	"math/big"
)

// inferRole derives the semantic role of a position from its statistics.
// Rules are priority ordered, first match wins.
func inferRole(s *PositionStats, densityThreshold float64) RoleTag {
	switch {
	case s.Type == TypeSep || s.Type == TypeExt:
		return RoleConstant
	case s.Type == TypeDate:
		return RoleDate
	case len(s.DistinctValues) == 1:
		return RoleConstant
	case s.Type == TypeNumeric && len(s.NumericValues) >= 2:
		if indexDensity(s.NumericValues) > densityThreshold {
			return RoleIndex
		}
		return RoleUnknown
	default:
		return RoleUnknown
	}
}

// indexDensity is the ratio of observed numeric values to the inclusive
// range they span. Dense columns (e.g. 1,2,3,5 over range 5) behave like
// sequential indices.
func indexDensity(values []*big.Int) float64 {
	mn, mx := minMax(values)
	// range = mx - mn + 1
	rng := new(big.Int).Sub(mx, mn)
	rng.Add(rng, big.NewInt(1))
	density := new(big.Float).Quo(
		big.NewFloat(float64(len(values))),
		new(big.Float).SetInt(rng),
	)
	out, _ := density.Float64()
	return out
}

func minMax(values []*big.Int) (mn, mx *big.Int) {
	mn, mx = values[0], values[0]
	for _, v := range values[1:] {
		if v.Cmp(mn) < 0 {
			mn = v
		}
		if v.Cmp(mx) > 0 {
			mx = v
		}
	}
	return mn, mx
}

// inferFormat derives an optional rendering hint for a position.
// Numeric positions with uniform rendered width L > 1 zero-pad to L;
// date positions report the matching layout name.
func inferFormat(s *PositionStats) string {
	switch s.Type {
	case TypeNumeric:
		width := -1
		for v := range s.DistinctValues {
			if width == -1 {
				width = len(v)
			} else if len(v) != width {
				return ""
			}
		}
		if width > 1 {
			return fmt.Sprintf("%%0%dd", width)
		}
		return ""
	case TypeDate:
		compact, dashed := true, true
		for v := range s.DistinctValues {
			if !isCompactDate(v) {
				compact = false
			}
			if !isDashedDate(v) {
				dashed = false
			}
		}
		if len(s.DistinctValues) == 0 {
			return ""
		}
		if compact {
			return "yyyyMMdd"
		}
		if dashed {
			return "yyyy-MM-dd"
		}
		return ""
	default:
		return ""
	}
}

// isCompactDate reports 8 contiguous digits (yyyyMMdd).
func isCompactDate(v string) bool {
	return len(v) == 8 && isAllDigits(v)
}

// isDashedDate reports the dddd-dd-dd shape (yyyy-MM-dd).
func isDashedDate(v string) bool {
	if len(v) != 10 || v[4] != '-' || v[7] != '-' {
		return false
	}
	return isAllDigits(v[:4]) && isAllDigits(v[5:7]) && isAllDigits(v[8:])
}
