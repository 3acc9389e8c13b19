package budget

import (
	"log"
	"time"

	"budgetbuddy/models"
)

// Summary 时间窗口内的收支汇总
type Summary struct {
	TotalIncome   float64 `json:"total_income" example:"5000.00"`
	TotalExpenses float64 `json:"total_expenses" example:"1234.56"`
	Remaining     float64 `json:"remaining" example:"765.44"` // overallLimit - totalExpenses，可为负
}

// CategoryRow 单个类别的支出与预算对照
type CategoryRow struct {
	Name     string  `json:"name" example:"Food"`
	Expenses float64 `json:"expenses" example:"70.00"`
	Budget   float64 `json:"budget" example:"100.00"`
}

// ComputeSummary 计算窗口内的总收入、总支出与剩余额度。
// 一次性交易按 createdAt 过滤到窗口内；周期性交易不过滤、不按频率折算，
// 每次汇总整额计入一次——周预算和月预算加入的周期性金额相同。
// 这是对原产品“周期项代表稳定的每期承诺”规则的保留，不是疏漏，勿修正。
func ComputeSummary(transactions []models.Transaction, recurring []models.RecurringTransaction, period Period, overallLimit float64) Summary {
	var s Summary
	for _, t := range transactions {
		if !inPeriod(t.CreatedAt, period) {
			continue
		}
		if t.Type == models.TypeIncome {
			s.TotalIncome += t.Amount
		} else {
			s.TotalExpenses += t.Amount
		}
	}
	for _, rt := range recurring {
		if rt.Type == models.TypeIncome {
			s.TotalIncome += rt.Amount
		} else {
			s.TotalExpenses += rt.Amount
		}
	}
	s.Remaining = overallLimit - s.TotalExpenses
	return s
}

// ComputeSpendingByCategory 计算逐类别支出与预算对照。
// 返回行按固定类别枚举顺序排列（稳定，不按金额排序）。
// 类别不在枚举内的记录不计入逐类别视图（记数据完整性警告日志），
// 但仍计入 ComputeSummary 的总支出，两者因此可能存在已知的口径差。
func ComputeSpendingByCategory(transactions []models.Transaction, recurring []models.RecurringTransaction, period Period, categoryLimits models.CategoryLimits) []CategoryRow {
	categories := models.GetCategories()
	rows := make([]CategoryRow, len(categories))
	index := make(map[string]int, len(categories))
	for i, name := range categories {
		rows[i] = CategoryRow{Name: name, Budget: categoryLimits[name]}
		index[name] = i
	}

	addExpense := func(category string, amount float64) {
		i, ok := index[category]
		if !ok {
			log.Printf("警告: 支出类别 %q 不在固定枚举内，已从逐类别视图中忽略", category)
			return
		}
		rows[i].Expenses += amount
	}

	for _, t := range transactions {
		if t.Type != models.TypeExpense || t.Category == "" {
			continue
		}
		if !inPeriod(t.CreatedAt, period) {
			continue
		}
		addExpense(t.Category, t.Amount)
	}
	for _, rt := range recurring {
		if rt.Type != models.TypeExpense || rt.Category == "" {
			continue
		}
		addExpense(rt.Category, rt.Amount)
	}
	return rows
}

// inPeriod 无时间戳的记录按“当前时刻”处理（写入在途、存储尚未回填时间戳）
func inPeriod(createdAt time.Time, p Period) bool {
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	return p.Contains(createdAt)
}
