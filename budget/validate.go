package budget

import (
	"strings"

	"budgetbuddy/models"
)

// ValidateTransactionInput 校验交易输入不变量。
// 金额必须为有限正数；支出必须携带固定枚举内的类别且描述非空，
// 收入必须携带来源且不得携带类别。
func ValidateTransactionInput(txType string, amount float64, description, source, category string) error {
	if txType != models.TypeIncome && txType != models.TypeExpense {
		return newValidationError("交易类型必须为 income 或 expense")
	}
	if err := validateAmount(amount, "金额"); err != nil {
		return err
	}
	if txType == models.TypeExpense {
		if strings.TrimSpace(description) == "" {
			return newValidationError("请填写支出描述")
		}
		if category == "" {
			return newValidationError("请选择支出类别")
		}
		if !models.IsValidCategory(category) {
			return newValidationError("无效的支出类别")
		}
		return nil
	}
	if strings.TrimSpace(source) == "" {
		return newValidationError("请填写收入来源")
	}
	if category != "" {
		return newValidationError("收入不应携带类别")
	}
	return nil
}

// ValidateRecurringInput 校验周期性交易输入，频率限定为 weekly/monthly
func ValidateRecurringInput(txType string, amount float64, description, frequency, category string) error {
	if frequency != models.FrequencyWeekly && frequency != models.FrequencyMonthly {
		return newValidationError("频率必须为 weekly 或 monthly")
	}
	if strings.TrimSpace(description) == "" {
		return newValidationError("请填写描述")
	}
	// 周期性收入同样用 description 描述来源
	return ValidateTransactionInput(txType, amount, description, description, category)
}
