package classifile

// MatchScore scores how well a parsed filename fits a pattern group.
// Positions missing on either side cost 2; matching types earn 2, with a
// bonus 2 for separators matching the group's most frequent separator and a
// bonus 1 for matching a constant's sole observed value. A negative score
// signals no confident fit.
func MatchScore(query ParsedName, group *PatternGroup) int {
	score := 0
	n := maxInt(len(query.Components), len(group.PositionStats))
	for i := 0; i < n; i++ {
		if i >= len(query.Components) || i >= len(group.PositionStats) {
			score -= 2
			continue
		}
		c := query.Components[i]
		s := group.PositionStats[i]
		if c.Type != s.Type {
			continue
		}
		score += 2
		if c.Type == TypeSep && c.Value == modeValue(s.DistinctValues) {
			score += 2
		}
		if s.Role == RoleConstant && len(s.DistinctValues) == 1 && s.DistinctValues[c.Value] > 0 {
			score += 1
		}
	}
	return score
}

// BestMatch returns the best-fitting group for a query and its score.
// Ties resolve to the first group in canonical signature order. Callers
// should treat a negative score as "no prediction available" rather than
// forcing a guess.
func (m *Model) BestMatch(query ParsedName) (*PatternGroup, int) {
	var best *PatternGroup
	bestScore := 0
	for _, group := range m.ordered {
		score := MatchScore(query, group)
		if best == nil || score > bestScore {
			best, bestScore = group, score
		}
	}
	return best, bestScore
}
