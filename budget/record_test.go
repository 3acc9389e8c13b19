package budget

import (
	"math"
	"testing"

	"budgetbuddy/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeOverallLimit(t *testing.T) {
	existing := models.BudgetRecord{
		OverallLimit: 100,
		Categories:   models.CategoryLimits{models.CategoryFood: 50},
		Mode:         models.BudgetModeCategory,
	}

	merged, err := MergeOverallLimit(existing, 800)
	require.NoError(t, err)
	assert.Equal(t, 800.0, merged.OverallLimit)
	assert.Equal(t, models.BudgetModeOverall, merged.Mode)
	// categories 不被清空
	assert.Equal(t, models.CategoryLimits{models.CategoryFood: 50}, merged.Categories)
}

func TestMergeOverallLimit_Invalid(t *testing.T) {
	existing := models.BudgetRecord{OverallLimit: 100}

	for _, bad := range []float64{0, -5, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := MergeOverallLimit(existing, bad)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	}
	// 校验失败时不改动记录
	same, err := MergeOverallLimit(existing, -1)
	assert.Error(t, err)
	assert.Equal(t, existing, same)
}

func TestMergeCategoryLimit(t *testing.T) {
	existing := models.BudgetRecord{
		OverallLimit: 500,
		Categories:   models.CategoryLimits{},
		Mode:         models.BudgetModeOverall,
	}

	merged, err := MergeCategoryLimit(existing, models.CategoryFood, 100)
	require.NoError(t, err)
	assert.Equal(t, models.CategoryLimits{models.CategoryFood: 100}, merged.Categories)
	assert.Equal(t, models.BudgetModeCategory, merged.Mode)
	// overallLimit 不被改动
	assert.Equal(t, 500.0, merged.OverallLimit)
}

func TestMergeCategoryLimit_OverwritesAndKeepsOthers(t *testing.T) {
	existing := models.BudgetRecord{
		Categories: models.CategoryLimits{
			models.CategoryFood:    100,
			models.CategoryHousing: 1500,
		},
	}

	merged, err := MergeCategoryLimit(existing, models.CategoryFood, 200)
	require.NoError(t, err)
	assert.Equal(t, 200.0, merged.Categories[models.CategoryFood])
	assert.Equal(t, 1500.0, merged.Categories[models.CategoryHousing])

	// 原记录的映射不被原地修改
	assert.Equal(t, 100.0, existing.Categories[models.CategoryFood])
}

func TestMergeCategoryLimit_Invalid(t *testing.T) {
	existing := models.BudgetRecord{}

	_, err := MergeCategoryLimit(existing, "", 100)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	_, err = MergeCategoryLimit(existing, "   ", 100)
	assert.True(t, IsValidationError(err))

	_, err = MergeCategoryLimit(existing, models.CategoryFood, 0)
	assert.True(t, IsValidationError(err))

	_, err = MergeCategoryLimit(existing, models.CategoryFood, math.NaN())
	assert.True(t, IsValidationError(err))
}

func TestMergeCategoryLimit_NilCategories(t *testing.T) {
	// 新用户的记录 categories 尚为 nil
	merged, err := MergeCategoryLimit(models.BudgetRecord{}, models.CategoryUtilities, 80)
	require.NoError(t, err)
	assert.Equal(t, 80.0, merged.Categories[models.CategoryUtilities])
}
