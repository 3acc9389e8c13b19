package models

import (
	"time"

	"gorm.io/gorm"
)

// SavingsGoal 储蓄目标模型
// Current 创建时为 0，只通过投入增加（单调递增，可超过 Target）。
type SavingsGoal struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	UserID    uint           `json:"user_id" gorm:"index;not null"`
	Name      string         `json:"name" gorm:"size:100;not null"`
	Target    float64        `json:"target" gorm:"type:decimal(10,2);not null"`
	Current   float64        `json:"current" gorm:"type:decimal(10,2);default:0"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
	User      User           `json:"-" gorm:"foreignKey:UserID"`
}

// TableName 设置表名
func (SavingsGoal) TableName() string {
	return "savings_goals"
}
