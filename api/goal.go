package api

import (
	"strconv"

	"budgetbuddy/budget"
	"budgetbuddy/database"
	"budgetbuddy/middleware"
	"budgetbuddy/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GoalHandler 储蓄目标处理器
type GoalHandler struct{}

// NewGoalHandler 创建储蓄目标处理器
func NewGoalHandler() *GoalHandler {
	return &GoalHandler{}
}

// CreateGoalRequest 创建储蓄目标请求
type CreateGoalRequest struct {
	Name   string  `json:"name" binding:"required,max=100" example:"旅行基金"`
	Target float64 `json:"target" binding:"required,gt=0" example:"10000.00"`
}

// ContributeRequest 目标投入请求
type ContributeRequest struct {
	Amount float64 `json:"amount" binding:"required" example:"100.00"`
}

// GoalResponse 储蓄目标返回（附完成百分比）
type GoalResponse struct {
	models.SavingsGoal
	Progress float64 `json:"progress" example:"25.0"`
}

// Create 创建储蓄目标
// @Summary 创建储蓄目标
// @Description 创建一个储蓄目标，当前进度从 0 开始
// @Tags 储蓄目标
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateGoalRequest true "目标信息"
// @Success 200 {object} Response{data=GoalResponse} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/goals [post]
func (h *GoalHandler) Create(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	goal := models.SavingsGoal{
		UserID:  userID,
		Name:    req.Name,
		Target:  req.Target,
		Current: 0,
	}

	if err := database.DB.Create(&goal).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "创建储蓄目标失败"))
		return
	}

	SuccessWithMessage(c, "创建成功", GoalResponse{SavingsGoal: goal, Progress: budget.ProgressPercent(goal)})
}

// List 获取储蓄目标列表
// @Summary 获取储蓄目标列表
// @Description 获取当前用户的全部储蓄目标及完成百分比
// @Tags 储蓄目标
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]GoalResponse} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/goals [get]
func (h *GoalHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var goals []models.SavingsGoal
	if err := database.DB.Where("user_id = ?", userID).Order("id ASC").Find(&goals).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	list := make([]GoalResponse, 0, len(goals))
	for _, g := range goals {
		list = append(list, GoalResponse{SavingsGoal: g, Progress: budget.ProgressPercent(g)})
	}

	Success(c, list)
}

// Contribute 向储蓄目标投入
// @Summary 向储蓄目标投入
// @Description 向指定目标追加一笔投入。落库使用 current = current + ? 的原子自增，并发投入不会丢失更新。
// @Tags 储蓄目标
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "目标ID"
// @Param request body ContributeRequest true "投入金额"
// @Success 200 {object} Response{data=GoalResponse} "投入成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "目标不存在"
// @Router /api/v1/goals/{id}/contribute [post]
func (h *GoalHandler) Contribute(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var goal models.SavingsGoal
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&goal).Error; err != nil {
		NotFound(c, "目标不存在")
		return
	}

	var req ContributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	// 金额校验复用纯合并函数，失败则不触存储
	if _, err := budget.Contribute(goal, req.Amount); err != nil {
		BadRequest(c, err.Error())
		return
	}

	// 原子自增：不做读-改-写，避免并发投入丢失更新
	if err := database.DB.Model(&models.SavingsGoal{}).
		Where("id = ? AND user_id = ?", id, userID).
		UpdateColumn("current", gorm.Expr("current + ?", req.Amount)).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "投入失败"))
		return
	}

	// 返回最新状态
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&goal).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	SuccessWithMessage(c, "投入成功", GoalResponse{SavingsGoal: goal, Progress: budget.ProgressPercent(goal)})
}

// Delete 删除储蓄目标
// @Summary 删除储蓄目标
// @Description 删除指定的储蓄目标
// @Tags 储蓄目标
// @Produce json
// @Security BearerAuth
// @Param id path int true "目标ID"
// @Success 200 {object} Response "删除成功"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "目标不存在"
// @Router /api/v1/goals/{id} [delete]
func (h *GoalHandler) Delete(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var goal models.SavingsGoal
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&goal).Error; err != nil {
		NotFound(c, "目标不存在")
		return
	}

	if err := database.DB.Delete(&goal).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "删除失败"))
		return
	}

	SuccessWithMessage(c, "删除成功", nil)
}
