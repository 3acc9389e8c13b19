package models

import (
	"time"

	"gorm.io/gorm"
)

// 交易类型
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// Transaction 交易记录模型（收入或支出）
// 收入使用 Source 字段记录来源，支出使用 Description 与 Category 字段；
// Category 仅支出非空。CreatedAt 在创建时落库，编辑不改变。
type Transaction struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	UserID      uint           `json:"user_id" gorm:"index;not null"`
	Type        string         `json:"type" gorm:"size:10;not null;index"`
	Amount      float64        `json:"amount" gorm:"type:decimal(10,2);not null"`
	Description string         `json:"description" gorm:"size:255"` // 支出描述
	Source      string         `json:"source" gorm:"size:255"`      // 收入来源
	Category    string         `json:"category" gorm:"size:50"`     // 支出类别，收入为空
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
	User        User           `json:"-" gorm:"foreignKey:UserID"`
}

// TableName 设置表名
func (Transaction) TableName() string {
	return "transactions"
}

// 支出类别常量（固定枚举，进程级静态配置，不入库）
const (
	CategoryHousing        = "Housing"
	CategoryTransportation = "Transportation"
	CategoryFood           = "Food"
	CategoryUtilities      = "Utilities"
	CategoryPersonal       = "Personal"
	CategoryEntertainment  = "Entertainment"
	CategoryHealth         = "Health"
	CategoryOther          = "Other"
)

// GetCategories 获取所有支出类别（固定顺序）
func GetCategories() []string {
	return []string{
		CategoryHousing,
		CategoryTransportation,
		CategoryFood,
		CategoryUtilities,
		CategoryPersonal,
		CategoryEntertainment,
		CategoryHealth,
		CategoryOther,
	}
}

// IsValidCategory 判断类别是否在固定枚举内
func IsValidCategory(name string) bool {
	for _, c := range GetCategories() {
		if c == name {
			return true
		}
	}
	return false
}
