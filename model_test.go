package classifile

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildModelGrouping(t *testing.T) {
	model, err := BuildModel([]string{
		"IMG_001.jpg", "IMG_002.jpg", "vacation.png", "IMG_003.jpg",
	})
	require.Nil(t, err)

	groups := model.Groups()
	require.Len(t, groups, 2)
	// groups are sorted by canonical signature
	require.Equal(t, "WORD|SEP(_)|NUM|SEP(.)|EXT", groups[0].Signature.Canonical)
	require.Equal(t, "WORD|SEP(.)|EXT", groups[1].Signature.Canonical)
	require.Len(t, groups[0].Files, 3)
	require.Len(t, groups[1].Files, 1)

	// same shape iff canonical signatures are character-for-character equal
	img, ok := model.Group("WORD|SEP(_)|NUM|SEP(.)|EXT")
	require.True(t, ok)
	for _, f := range img.Files {
		require.Equal(t, img.Signature.Canonical, f.Signature.Canonical)
	}
}

func TestBuildModelPositionStats(t *testing.T) {
	model, err := BuildModel([]string{"IMG_001.jpg", "IMG_002.jpg", "IMG_003.jpg"})
	require.Nil(t, err)

	group := model.Groups()[0]
	require.Len(t, group.PositionStats, 5)

	word := group.PositionStats[0]
	require.Equal(t, TypeAlpha, word.Type)
	require.Equal(t, RoleConstant, word.Role)
	require.Equal(t, map[string]int{"IMG": 3}, word.DistinctValues)
	require.Equal(t, 3, word.Total)

	num := group.PositionStats[2]
	require.Equal(t, TypeNumeric, num.Type)
	require.Equal(t, RoleIndex, num.Role)
	require.Equal(t, "%03d", num.Format)
	require.Len(t, num.NumericValues, 3)

	ext := group.PositionStats[4]
	require.Equal(t, TypeExt, ext.Type)
	require.Equal(t, RoleConstant, ext.Role)
}

func TestBuildModelRoleInference(t *testing.T) {
	tests := []struct {
		name     string
		files    []string
		position int
		wantRole RoleTag
	}{
		{
			name:     "dense numeric sequence is an index",
			files:    []string{"file001.txt", "file002.txt", "file003.txt", "file005.txt"},
			position: 1,
			wantRole: RoleIndex,
		},
		{
			name:     "sparse numeric column stays unknown",
			files:    []string{"doc_10.txt", "doc_100.txt", "doc_500.txt"},
			position: 2,
			wantRole: RoleUnknown,
		},
		{
			name:     "single distinct value is constant",
			files:    []string{"report_7.txt", "summary_7.txt"},
			position: 2,
			wantRole: RoleConstant,
		},
		{
			name:     "eight digit values carry the date role",
			files:    []string{"log_20240301.txt", "log_20240302.txt"},
			position: 2,
			wantRole: RoleDate,
		},
		{
			name:     "varied words stay unknown",
			files:    []string{"report_alpha.txt", "report_beta.txt", "report_alpha2.txt"},
			position: 0,
			wantRole: RoleConstant, // all "report"
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model, err := BuildModel(tt.files)
			require.Nil(t, err)
			var stats *PositionStats
			for _, group := range model.Groups() {
				if tt.position < len(group.PositionStats) && len(group.Files) > 1 {
					stats = &group.PositionStats[tt.position]
					break
				}
			}
			require.NotNil(t, stats)
			require.Equal(t, tt.wantRole, stats.Role)
		})
	}
}

func TestBuildModelFormatInference(t *testing.T) {
	t.Run("uniform width numerics zero pad", func(t *testing.T) {
		model, err := BuildModel([]string{"f_01.txt", "f_02.txt"})
		require.Nil(t, err)
		require.Equal(t, "%02d", model.Groups()[0].PositionStats[2].Format)
	})

	t.Run("mixed widths have no format", func(t *testing.T) {
		model, err := BuildModel([]string{"f_1.txt", "f_02.txt"})
		require.Nil(t, err)
		require.Equal(t, "", model.Groups()[0].PositionStats[2].Format)
	})

	t.Run("single digit width has no format", func(t *testing.T) {
		model, err := BuildModel([]string{"f_1.txt", "f_2.txt"})
		require.Nil(t, err)
		require.Equal(t, "", model.Groups()[0].PositionStats[2].Format)
	})

	t.Run("compact dates report yyyyMMdd", func(t *testing.T) {
		model, err := BuildModel([]string{"log_20240301.txt", "log_20240315.txt"})
		require.Nil(t, err)
		require.Equal(t, "yyyyMMdd", model.Groups()[0].PositionStats[2].Format)
	})
}

func TestBuildModelPurgesDuplicates(t *testing.T) {
	model, err := BuildModel([]string{"a_1.txt", "a_1.txt", "a_2.txt"})
	require.Nil(t, err)
	require.Len(t, model.Groups()[0].Files, 2)
}

func TestBuildModelNoNames(t *testing.T) {
	_, err := New(&Options{})
	require.ErrorIs(t, err, ErrNoNames)
}

func TestModelGroupsWithPrefix(t *testing.T) {
	model, err := BuildModel([]string{"IMG_001.jpg", "clip 01.mp4", "notes.txt"})
	require.Nil(t, err)

	withUnderscore := model.GroupsWithPrefix("WORD|SEP(_)")
	require.Len(t, withUnderscore, 1)
	require.Equal(t, "IMG_001.jpg", withUnderscore[0].Files[0].Original)
	require.Empty(t, model.GroupsWithPrefix("DATE"))
}

func TestDominantTypeTieBreak(t *testing.T) {
	// equal counts resolve to the first tag in declaration order
	require.Equal(t, TypeAlpha, dominantType(map[TypeTag]int{TypeAlpha: 2, TypeNumeric: 2}))
	require.Equal(t, TypeNumeric, dominantType(map[TypeTag]int{TypeAlphanum: 1, TypeNumeric: 1}))
	require.Equal(t, TypeDate, dominantType(map[TypeTag]int{TypeDate: 3, TypeAlphanum: 2}))
}

func TestBigNumericValues(t *testing.T) {
	// indices beyond int64 must not wrap or truncate
	model, err := BuildModel([]string{
		"chunk_99999999999999999998.bin",
		"chunk_99999999999999999999.bin",
	})
	require.Nil(t, err)
	stats := model.Groups()[0].PositionStats[2]
	require.Equal(t, TypeNumeric, stats.Type)
	require.Equal(t, RoleIndex, stats.Role)
	next := stats.nextIndexValue()
	require.Equal(t, "100000000000000000000", next)
}
