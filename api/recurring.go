package api

import (
	"strconv"

	"budgetbuddy/budget"
	"budgetbuddy/database"
	"budgetbuddy/middleware"
	"budgetbuddy/models"

	"github.com/gin-gonic/gin"
)

// RecurringHandler 周期性交易处理器
type RecurringHandler struct{}

// NewRecurringHandler 创建周期性交易处理器
func NewRecurringHandler() *RecurringHandler {
	return &RecurringHandler{}
}

// CreateRecurringRequest 创建周期性交易请求
type CreateRecurringRequest struct {
	Type        string  `json:"type" binding:"required" example:"expense"`
	Amount      float64 `json:"amount" binding:"required" example:"1200.00"`
	Description string  `json:"description" binding:"required" example:"房租"`
	Frequency   string  `json:"frequency" binding:"required" example:"monthly"`
	Category    string  `json:"category" example:"Housing"`
}

// Create 创建周期性交易
// @Summary 创建周期性交易
// @Description 创建一条周期性交易模板。不支持原地编辑，修改需删除后重建。
// @Tags 周期性交易
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateRecurringRequest true "周期性交易信息"
// @Success 200 {object} Response{data=models.RecurringTransaction} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/recurring [post]
func (h *RecurringHandler) Create(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req CreateRecurringRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	if err := budget.ValidateRecurringInput(req.Type, req.Amount, req.Description, req.Frequency, req.Category); err != nil {
		BadRequest(c, err.Error())
		return
	}

	rt := models.RecurringTransaction{
		UserID:      userID,
		Type:        req.Type,
		Amount:      req.Amount,
		Description: req.Description,
		Frequency:   req.Frequency,
		Category:    req.Category,
	}

	if err := database.DB.Create(&rt).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "创建周期性交易失败"))
		return
	}

	SuccessWithMessage(c, "创建成功", rt)
}

// List 获取周期性交易列表
// @Summary 获取周期性交易列表
// @Description 获取当前用户的全部周期性交易模板
// @Tags 周期性交易
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]models.RecurringTransaction} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/recurring [get]
func (h *RecurringHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var list []models.RecurringTransaction
	if err := database.DB.Where("user_id = ?", userID).Order("id ASC").Find(&list).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	Success(c, list)
}

// Delete 删除周期性交易
// @Summary 删除周期性交易
// @Description 删除指定的周期性交易模板
// @Tags 周期性交易
// @Produce json
// @Security BearerAuth
// @Param id path int true "周期性交易ID"
// @Success 200 {object} Response "删除成功"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/recurring/{id} [delete]
func (h *RecurringHandler) Delete(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var rt models.RecurringTransaction
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&rt).Error; err != nil {
		NotFound(c, "记录不存在")
		return
	}

	if err := database.DB.Delete(&rt).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "删除失败"))
		return
	}

	SuccessWithMessage(c, "删除成功", nil)
}
