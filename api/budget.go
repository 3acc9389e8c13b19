package api

import (
	"errors"

	"budgetbuddy/budget"
	"budgetbuddy/database"
	"budgetbuddy/middleware"
	"budgetbuddy/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// BudgetHandler 预算处理器
type BudgetHandler struct{}

// NewBudgetHandler 创建预算处理器
func NewBudgetHandler() *BudgetHandler {
	return &BudgetHandler{}
}

// PutOverallLimitRequest 设置总体预算上限请求
type PutOverallLimitRequest struct {
	Limit float64 `json:"limit" binding:"required" example:"2000.00"`
}

// PutCategoryLimitRequest 设置类别预算上限请求
type PutCategoryLimitRequest struct {
	Category string  `json:"category" binding:"required" example:"Food"`
	Amount   float64 `json:"amount" binding:"required" example:"500.00"`
}

// loadRecord 读取用户当前预算记录，不存在时返回零值记录（ID 为 0）
func loadRecord(userID uint) (models.BudgetRecord, error) {
	var record models.BudgetRecord
	err := database.DB.Where("user_id = ?", userID).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.BudgetRecord{UserID: userID, Mode: models.BudgetModeOverall}, nil
	}
	return record, err
}

// Get 获取预算记录
// @Summary 获取预算记录
// @Description 获取当前用户的预算记录（总体上限、逐类别上限与当前模式）
// @Tags 预算
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=models.BudgetRecord} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/budgets [get]
func (h *BudgetHandler) Get(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	record, err := loadRecord(userID)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询预算失败"))
		return
	}

	Success(c, record)
}

// PutOverallLimit 设置总体预算上限
// @Summary 设置总体预算上限
// @Description 仅替换总体上限并把模式切换为 overall，逐类别上限保持不变。对当前持久化记录做最后写入者胜的合并。
// @Tags 预算
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PutOverallLimitRequest true "总体预算上限"
// @Success 200 {object} Response{data=models.BudgetRecord} "保存成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/budgets/overall [put]
func (h *BudgetHandler) PutOverallLimit(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req PutOverallLimitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	record, err := loadRecord(userID)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询预算失败"))
		return
	}

	merged, err := budget.MergeOverallLimit(record, req.Limit)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	if err := h.saveRecord(record, merged, map[string]interface{}{
		"overall_limit": merged.OverallLimit,
		"mode":          merged.Mode,
	}); err != nil {
		InternalError(c, SafeErrorMessage(err, "保存预算失败"))
		return
	}

	SuccessWithMessage(c, "总体预算已保存", merged)
}

// PutCategoryLimit 设置类别预算上限
// @Summary 设置类别预算上限
// @Description 仅设置/覆盖指定类别的上限并把模式切换为 category，总体上限保持不变
// @Tags 预算
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PutCategoryLimitRequest true "类别预算上限"
// @Success 200 {object} Response{data=models.BudgetRecord} "保存成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/budgets/categories [put]
func (h *BudgetHandler) PutCategoryLimit(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req PutCategoryLimitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	if !models.IsValidCategory(req.Category) {
		BadRequest(c, "无效的支出类别")
		return
	}

	record, err := loadRecord(userID)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询预算失败"))
		return
	}

	merged, err := budget.MergeCategoryLimit(record, req.Category, req.Amount)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	if err := h.saveRecord(record, merged, map[string]interface{}{
		"categories": merged.Categories,
		"mode":       merged.Mode,
	}); err != nil {
		InternalError(c, SafeErrorMessage(err, "保存预算失败"))
		return
	}

	SuccessWithMessage(c, "类别预算已保存", merged)
}

// saveRecord 持久化合并结果
// 已有记录只更新被合并的列，保证部分更新语义在存储层同样成立
func (h *BudgetHandler) saveRecord(existing, merged models.BudgetRecord, updates map[string]interface{}) error {
	if existing.ID == 0 {
		return database.DB.Create(&merged).Error
	}
	return database.DB.Model(&models.BudgetRecord{}).Where("id = ?", existing.ID).Updates(updates).Error
}
