package classifile

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func indexStats(t *testing.T, files []string, position int) *PositionStats {
	t.Helper()
	model, err := BuildModel(files)
	require.Nil(t, err)
	return &model.Groups()[0].PositionStats[position]
}

func TestScoredIndexSuggestions(t *testing.T) {
	stats := indexStats(t, []string{
		"file001.txt", "file002.txt", "file003.txt",
		"file005.txt", "file006.txt", "file008.txt",
	}, 1)
	require.Equal(t, RoleIndex, stats.Role)

	suggestions := stats.ScoredSuggestions(5)
	require.Len(t, suggestions, 3)

	require.Equal(t, Suggestion{Value: "009", Score: 0.9, Reason: ReasonNextIndex}, suggestions[0])

	require.Equal(t, "004", suggestions[1].Value)
	require.InDelta(t, 0.70, suggestions[1].Score, 1e-9)
	require.Equal(t, ReasonFillGap, suggestions[1].Reason)

	require.Equal(t, "007", suggestions[2].Value)
	require.InDelta(t, 0.65, suggestions[2].Score, 1e-9)
	require.Equal(t, ReasonFillGap, suggestions[2].Reason)
}

func TestGapScoreFloor(t *testing.T) {
	// 001 and 020 leave 18 gaps; density 2/20 keeps the role unknown, so
	// force the index role to exercise the floor
	stats := indexStats(t, []string{"f_001.txt", "f_020.txt"}, 2)
	stats.Role = RoleIndex

	suggestions := stats.ScoredSuggestions(5)
	require.Equal(t, "021", suggestions[0].Value)
	gaps := suggestions[1:]
	require.Len(t, gaps, 18)
	// 0.7 - 0.05*k bottoms out at 0.3 from k=8 onwards
	require.InDelta(t, 0.30, gaps[8].Score, 1e-9)
	require.InDelta(t, 0.30, gaps[17].Score, 1e-9)
}

func TestGapCompleteness(t *testing.T) {
	stats := indexStats(t, []string{"f_01.txt", "f_03.txt", "f_06.txt", "f_07.txt"}, 2)
	stats.Role = RoleIndex
	var values []string
	for _, g := range stats.indexGaps() {
		values = append(values, g.String())
	}
	require.Equal(t, []string{"2", "4", "5"}, values)
}

func TestScoredFrequencySuggestions(t *testing.T) {
	stats := indexStats(t, []string{
		"report_alpha.txt", "summary_alpha.txt", "notes_beta.txt",
	}, 2)
	require.Equal(t, RoleUnknown, stats.Role)

	suggestions := stats.ScoredSuggestions(5)
	require.Len(t, suggestions, 2)
	require.Equal(t, "alpha", suggestions[0].Value)
	require.InDelta(t, 0.667, suggestions[0].Score, 0.001)
	require.Equal(t, ReasonFrequent, suggestions[0].Reason)
	require.Equal(t, "beta", suggestions[1].Value)
	require.InDelta(t, 0.333, suggestions[1].Score, 0.001)
}

func TestScoredConstantSuggestion(t *testing.T) {
	stats := indexStats(t, []string{"IMG_001.jpg", "IMG_002.jpg"}, 0)
	suggestions := stats.ScoredSuggestions(5)
	require.Equal(t, []Suggestion{{Value: "IMG", Score: 1.0, Reason: ReasonConstant}}, suggestions)
}

func TestScoredSuggestionsCap(t *testing.T) {
	stats := &PositionStats{
		Type: TypeAlpha,
		Role: RoleUnknown,
		DistinctValues: map[string]int{
			"a": 7, "b": 6, "c": 5, "d": 4, "e": 3, "f": 2, "g": 1,
		},
		Total: 28,
	}
	suggestions := stats.ScoredSuggestions(5)
	require.Len(t, suggestions, 5)
	require.Equal(t, "a", suggestions[0].Value)
	require.Equal(t, "e", suggestions[4].Value)
}

func TestPlainIndexSuggestions(t *testing.T) {
	stats := indexStats(t, []string{"IMG_001.jpg", "IMG_002.jpg", "IMG_003.jpg"}, 2)

	t.Run("current at max leads with next", func(t *testing.T) {
		require.Equal(t, []string{"004", "001", "002", "003"},
			stats.PlainSuggestions("003", false))
	})

	t.Run("past end leads with next", func(t *testing.T) {
		require.Equal(t, []string{"004", "001", "002", "003"},
			stats.PlainSuggestions("003", true))
	})

	t.Run("mid sequence rotates around current", func(t *testing.T) {
		require.Equal(t, []string{"002", "003", "001", "004"},
			stats.PlainSuggestions("002", false))
	})

	t.Run("unseen current is prepended", func(t *testing.T) {
		require.Equal(t, []string{"010", "001", "002", "003", "004"},
			stats.PlainSuggestions("010", false))
	})
}

func TestPlainFrequencySuggestions(t *testing.T) {
	stats := &PositionStats{
		Type:           TypeAlpha,
		Role:           RoleUnknown,
		DistinctValues: map[string]int{"alpha": 3, "beta": 1, "gamma": 2},
		Total:          6,
	}

	t.Run("current forced to front", func(t *testing.T) {
		require.Equal(t, []string{"beta", "alpha", "gamma"},
			stats.PlainSuggestions("beta", false))
	})

	t.Run("past end keeps natural frequency order", func(t *testing.T) {
		require.Equal(t, []string{"alpha", "gamma", "beta"},
			stats.PlainSuggestions("beta", true))
	})

	t.Run("unseen current prepended", func(t *testing.T) {
		require.Equal(t, []string{"delta", "alpha", "gamma", "beta"},
			stats.PlainSuggestions("delta", false))
	})
}

func TestPlainSuggestionsNoHistory(t *testing.T) {
	stats := &PositionStats{Type: TypeAlpha, Role: RoleUnknown, DistinctValues: map[string]int{}}
	require.Equal(t, []string{"draft"}, stats.PlainSuggestions("draft", false))
}

func TestFrequencyOrderingProperty(t *testing.T) {
	// higher frequency always ranks first in both modes
	stats := &PositionStats{
		Type:           TypeAlpha,
		Role:           RoleUnknown,
		DistinctValues: map[string]int{"rare": 1, "common": 5},
		Total:          6,
	}
	scored := stats.ScoredSuggestions(5)
	require.Equal(t, "common", scored[0].Value)
	require.Equal(t, "rare", scored[1].Value)
	plain := stats.PlainSuggestions("common", false)
	require.Equal(t, []string{"common", "rare"}, plain)
}
