package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "carelog/pkg/domain-errors"
)

func TestClassify_Bands(t *testing.T) {
	cases := []struct {
		count int
		want  Level
	}{
		{0, LevelInactive},
		{1, LevelLow},
		{4, LevelLow},
		{5, LevelModerate},
		{9, LevelModerate},
		{10, LevelHigh},
		{37, LevelHigh},
	}
	for _, tc := range cases {
		level, err := Classify(tc.count)
		require.NoError(t, err)
		assert.Equal(t, tc.want, level, "count %d", tc.count)
	}
}

func TestClassify_NegativeCount(t *testing.T) {
	_, err := Classify(-1)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
}

func TestClassifyResident_HiatusOverridesCount(t *testing.T) {
	level, err := ClassifyResident(true, 42)
	require.NoError(t, err)
	assert.Equal(t, LevelOnHiatus, level)

	level, err = ClassifyResident(false, 42)
	require.NoError(t, err)
	assert.Equal(t, LevelHigh, level)
}

func TestNormalizePercents(t *testing.T) {
	t.Run("even three-way split favours earlier levels", func(t *testing.T) {
		percents := NormalizePercents(map[Level]int{
			LevelInactive: 1,
			LevelLow:      1,
			LevelModerate: 1,
		})
		assert.Equal(t, 34, percents[LevelInactive])
		assert.Equal(t, 33, percents[LevelLow])
		assert.Equal(t, 33, percents[LevelModerate])
		assert.Equal(t, 0, percents[LevelHigh])
		assert.Equal(t, 0, percents[LevelOnHiatus])
	})

	t.Run("no residents yields all zeros", func(t *testing.T) {
		percents := NormalizePercents(map[Level]int{})
		for _, level := range Levels {
			assert.Equal(t, 0, percents[level])
		}
	})

	t.Run("single populated level takes everything", func(t *testing.T) {
		percents := NormalizePercents(map[Level]int{LevelHigh: 5})
		assert.Equal(t, 100, percents[LevelHigh])
		assert.Equal(t, 0, percents[LevelInactive])
	})

	t.Run("always sums to exactly one hundred", func(t *testing.T) {
		cases := []map[Level]int{
			{LevelInactive: 1, LevelLow: 1, LevelModerate: 1, LevelHigh: 1, LevelOnHiatus: 1},
			{LevelInactive: 1, LevelLow: 2, LevelModerate: 4},
			{LevelLow: 3, LevelHigh: 7, LevelOnHiatus: 11},
			{LevelInactive: 6},
		}
		for _, counts := range cases {
			percents := NormalizePercents(counts)
			sum := 0
			for _, level := range Levels {
				sum += percents[level]
			}
			assert.Equal(t, 100, sum, "counts %v", counts)
		}
	})
}
