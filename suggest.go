package classifile

import (
	"math/big"
	"sort"
)

// Suggestion is a candidate value for a position, annotated with a
// likelihood score and a reason code.
type Suggestion struct {
	Value  string  `json:"value"`
	Score  float64 `json:"score"`
	Reason string  `json:"reason"`
}

// Reason codes attached to scored suggestions.
const (
	ReasonNextIndex = "next-sequential-index"
	ReasonFillGap   = "fill-missing-index"
	ReasonConstant  = "constant"
	ReasonFrequent  = "frequent-value"
)

var bigOne = big.NewInt(1)

// ScoredSuggestions produces the scored candidate list for a position.
// Index positions emit the next sequential value first, then the gaps in
// the observed range. Other positions rank observed values by frequency,
// capped at maxRanked.
func (s *PositionStats) ScoredSuggestions(maxRanked int) []Suggestion {
	if s.Role == RoleIndex && len(s.NumericValues) > 0 {
		return s.scoredIndexSuggestions()
	}
	if len(s.DistinctValues) == 0 {
		return nil
	}
	reason := ReasonFrequent
	if s.Role == RoleConstant {
		reason = ReasonConstant
	}
	ranked := s.rankedValues()
	if maxRanked > 0 && len(ranked) > maxRanked {
		ranked = ranked[:maxRanked]
	}
	suggestions := make([]Suggestion, 0, len(ranked))
	for _, v := range ranked {
		suggestions = append(suggestions, Suggestion{
			Value:  v,
			Score:  float64(s.DistinctValues[v]) / float64(s.Total),
			Reason: reason,
		})
	}
	return suggestions
}

func (s *PositionStats) scoredIndexSuggestions() []Suggestion {
	suggestions := []Suggestion{{
		Value:  s.nextIndexValue(),
		Score:  0.9,
		Reason: ReasonNextIndex,
	}}
	for k, gap := range s.indexGaps() {
		score := 0.7 - 0.05*float64(k)
		if score < 0.3 {
			score = 0.3
		}
		suggestions = append(suggestions, Suggestion{
			Value:  renderNumeric(s.Format, gap),
			Score:  score,
			Reason: ReasonFillGap,
		})
	}
	return suggestions
}

// nextIndexValue renders max(observed) + 1 with the position's format.
func (s *PositionStats) nextIndexValue() string {
	_, mx := minMax(s.NumericValues)
	next := new(big.Int).Add(mx, bigOne)
	return renderNumeric(s.Format, next)
}

// indexGaps returns every integer strictly between the observed min and max
// that was never observed, ascending. The density test bounds the range, so
// enumeration stays proportional to the observation count.
func (s *PositionStats) indexGaps() []*big.Int {
	mn, mx := minMax(s.NumericValues)
	present := make(map[string]struct{}, len(s.NumericValues))
	for _, v := range s.NumericValues {
		present[v.String()] = struct{}{}
	}
	var gaps []*big.Int
	for v := new(big.Int).Add(mn, bigOne); v.Cmp(mx) < 0; v.Add(v, bigOne) {
		if _, ok := present[v.String()]; !ok {
			gaps = append(gaps, new(big.Int).Set(v))
		}
	}
	return gaps
}

// PlainSuggestions produces the ordered candidate list used by pickers,
// anchored on the query's current value at the position. pastEnd selects the
// natural next-first ordering used when the query addresses a file beyond
// the known list.
func (s *PositionStats) PlainSuggestions(current string, pastEnd bool) []string {
	if len(s.DistinctValues) == 0 {
		// brand-new shape with no history
		return []string{current}
	}
	if s.Role == RoleIndex && len(s.NumericValues) > 0 {
		return s.plainIndexSuggestions(current, pastEnd)
	}
	ranked := s.rankedValues()
	if pastEnd {
		return ranked
	}
	return forceFront(ranked, current)
}

// plainIndexSuggestions orders index candidates around the current value:
// the lexicographically sorted observed values rotated to start at the
// current value, with the next sequential value appended. When the current
// value is already the maximum (or the query is past the end of the list)
// the next value leads instead.
func (s *PositionStats) plainIndexSuggestions(current string, pastEnd bool) []string {
	observed := sortedKeys(s.DistinctValues)
	next := s.nextIndexValue()

	atMax := false
	if cur, ok := parseBig(current); ok {
		_, mx := minMax(s.NumericValues)
		atMax = cur.Cmp(mx) == 0
	}
	if pastEnd || atMax {
		return append([]string{next}, observed...)
	}

	at := -1
	for i, v := range observed {
		if v == current {
			at = i
			break
		}
	}
	if at == -1 {
		out := append([]string{current}, observed...)
		return append(out, next)
	}
	out := make([]string, 0, len(observed)+1)
	out = append(out, observed[at:]...)
	out = append(out, observed[:at]...)
	return append(out, next)
}

// rankedValues is the shared ranking core: observed values by descending
// frequency, ties broken by ascending lexicographic order.
func (s *PositionStats) rankedValues() []string {
	ranked := sortedKeys(s.DistinctValues)
	sort.SliceStable(ranked, func(i, j int) bool {
		return s.DistinctValues[ranked[i]] > s.DistinctValues[ranked[j]]
	})
	return ranked
}

// forceFront moves current to the head of the list regardless of its natural
// rank, prepending it when unseen.
func forceFront(values []string, current string) []string {
	out := []string{current}
	for _, v := range values {
		if v != current {
			out = append(out, v)
		}
	}
	return out
}
