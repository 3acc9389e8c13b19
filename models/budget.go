package models

import (
	"time"
)

// 预算模式：最近一次写入决定当前生效的视图
const (
	// BudgetModeOverall 总体预算（单一上限）
	BudgetModeOverall = "overall"
	// BudgetModeCategory 逐类别预算
	BudgetModeCategory = "category"
)

// CategoryLimits 类别到预算上限的映射，键为固定类别枚举的子集
type CategoryLimits map[string]float64

// BudgetRecord 预算记录，每个用户仅一条
// 部分更新按字段合并：设置 overallLimit 不清空 categories，反之亦然；
// mode 被最近一次写入覆盖（最后写入者胜，无冲突检测）。
type BudgetRecord struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	UserID       uint           `json:"user_id" gorm:"uniqueIndex;not null"`
	OverallLimit float64        `json:"overall_limit" gorm:"type:decimal(10,2);default:0"`
	Categories   CategoryLimits `json:"categories" gorm:"serializer:json"`
	Mode         string         `json:"mode" gorm:"size:20;default:overall"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// TableName 设置表名
func (BudgetRecord) TableName() string {
	return "budget_records"
}
