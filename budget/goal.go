package budget

import "budgetbuddy/models"

// Contribute 向储蓄目标追加一笔投入。
// current 单调递增，无上界（允许超过 target）。
// 这是对内存快照的纯合并；落库时必须使用原子自增
// （current = current + ?），朴素的读-改-写在并发投入下会丢失更新。
func Contribute(goal models.SavingsGoal, amount float64) (models.SavingsGoal, error) {
	if err := validateAmount(amount, "投入金额"); err != nil {
		return goal, err
	}
	goal.Current += amount
	return goal, nil
}

// ProgressPercent 目标完成百分比，截断到 [0, 100]。
// target 为 0 时定义为 0，避免除零。
func ProgressPercent(goal models.SavingsGoal) float64 {
	if goal.Target == 0 {
		return 0
	}
	percent := goal.Current / goal.Target * 100
	if percent > 100 {
		return 100
	}
	return percent
}
