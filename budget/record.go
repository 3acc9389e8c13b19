package budget

import (
	"math"
	"strings"

	"budgetbuddy/models"
)

// MergeOverallLimit 合并总体预算上限。
// 仅替换 overallLimit 并把 mode 置为 overall，categories 保持不变。
// 对当前持久化记录做最后写入者胜的合并，无冲突检测。
func MergeOverallLimit(existing models.BudgetRecord, newLimit float64) (models.BudgetRecord, error) {
	if err := validateAmount(newLimit, "预算金额"); err != nil {
		return existing, err
	}
	existing.OverallLimit = newLimit
	existing.Mode = models.BudgetModeOverall
	return existing, nil
}

// MergeCategoryLimit 合并单类别预算上限。
// 仅设置/覆盖 categories[category] 并把 mode 置为 category，
// overallLimit 保持不变。映射按复制后写入，不修改传入记录的底层 map。
func MergeCategoryLimit(existing models.BudgetRecord, category string, newAmount float64) (models.BudgetRecord, error) {
	if err := validateAmount(newAmount, "预算金额"); err != nil {
		return existing, err
	}
	if strings.TrimSpace(category) == "" {
		return existing, newValidationError("请选择预算类别")
	}

	merged := make(models.CategoryLimits, len(existing.Categories)+1)
	for name, limit := range existing.Categories {
		merged[name] = limit
	}
	merged[category] = newAmount

	existing.Categories = merged
	existing.Mode = models.BudgetModeCategory
	return existing, nil
}

// validateAmount 金额必须为大于 0 的有限数
func validateAmount(amount float64, field string) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return newValidationError(field + "必须为大于 0 的有效数字")
	}
	return nil
}
