package models

import (
	"time"

	"gorm.io/gorm"
)

// 周期性交易频率
const (
	FrequencyWeekly  = "weekly"
	FrequencyMonthly = "monthly"
)

// RecurringTransaction 周期性交易模板
// 不记录发生时间，也不支持原地编辑（删除后重建）；
// 汇总时不按周期窗口过滤、不按频率折算，每次统计整额计入一次。
type RecurringTransaction struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	UserID      uint           `json:"user_id" gorm:"index;not null"`
	Type        string         `json:"type" gorm:"size:10;not null"`
	Amount      float64        `json:"amount" gorm:"type:decimal(10,2);not null"`
	Description string         `json:"description" gorm:"size:255"`
	Frequency   string         `json:"frequency" gorm:"size:10;not null"` // weekly/monthly
	Category    string         `json:"category" gorm:"size:50"`           // 仅支出非空
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
	User        User           `json:"-" gorm:"foreignKey:UserID"`
}

// TableName 设置表名
func (RecurringTransaction) TableName() string {
	return "recurring_transactions"
}
