package api

import (
	"log"
	"strconv"
	"time"

	"budgetbuddy/budget"
	"budgetbuddy/config"
	"budgetbuddy/database"
	"budgetbuddy/middleware"
	"budgetbuddy/models"
	"budgetbuddy/service"

	"github.com/gin-gonic/gin"
)

// TransactionHandler 交易记录处理器
type TransactionHandler struct {
	cfg          *config.Config
	emailService *service.EmailService
}

// NewTransactionHandler 创建交易记录处理器
func NewTransactionHandler(cfg *config.Config) *TransactionHandler {
	return &TransactionHandler{
		cfg:          cfg,
		emailService: service.NewEmailService(&cfg.Email),
	}
}

// CreateTransactionRequest 创建交易请求
// 收入填 source，支出填 description 和 category
type CreateTransactionRequest struct {
	Type        string  `json:"type" binding:"required" example:"expense"`
	Amount      float64 `json:"amount" binding:"required" example:"99.99"`
	Description string  `json:"description" example:"午餐"`
	Source      string  `json:"source" example:"工资"`
	Category    string  `json:"category" example:"Food"`
}

// UpdateTransactionRequest 更新交易请求
// 金额/描述/来源/类别整体替换，createdAt 与 type 不变
type UpdateTransactionRequest struct {
	Amount      float64 `json:"amount" binding:"required" example:"99.99"`
	Description string  `json:"description" example:"午餐"`
	Source      string  `json:"source" example:"工资"`
	Category    string  `json:"category" example:"Food"`
}

// TransactionListRequest 交易列表请求
type TransactionListRequest struct {
	Page      int    `form:"page" example:"1"`
	PageSize  int    `form:"page_size" example:"10"`
	Type      string `form:"type" example:"expense"`
	Category  string `form:"category" example:"Food"`
	StartTime string `form:"start_time" example:"2024-01-01"`
	EndTime   string `form:"end_time" example:"2024-12-31"`
}

// Create 创建交易记录
// @Summary 创建交易记录
// @Description 创建一条收入或支出记录，创建时刻即为记账时间
// @Tags 交易记录
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTransactionRequest true "交易信息"
// @Success 200 {object} Response{data=models.Transaction} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/transactions [post]
func (h *TransactionHandler) Create(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	// 校验在任何存储调用之前完成，失败则不产生任何写入
	if err := budget.ValidateTransactionInput(req.Type, req.Amount, req.Description, req.Source, req.Category); err != nil {
		BadRequest(c, err.Error())
		return
	}

	tx := models.Transaction{
		UserID:      userID,
		Type:        req.Type,
		Amount:      req.Amount,
		Description: req.Description,
		Source:      req.Source,
		Category:    req.Category,
	}

	if err := database.DB.Create(&tx).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "创建交易记录失败"))
		return
	}

	// 支出可能导致当月超支，触发提醒邮件（尽力而为，不影响响应）
	if tx.Type == models.TypeExpense && h.cfg.Email.Enabled {
		h.notifyIfOverspent(userID)
	}

	SuccessWithMessage(c, "创建成功", tx)
}

// notifyIfOverspent 当月支出超过总体预算上限时向用户邮箱发送提醒
func (h *TransactionHandler) notifyIfOverspent(userID uint) {
	var record models.BudgetRecord
	if err := database.DB.Where("user_id = ?", userID).First(&record).Error; err != nil || record.OverallLimit <= 0 {
		return
	}

	var transactions []models.Transaction
	if err := database.DB.Where("user_id = ?", userID).Find(&transactions).Error; err != nil {
		log.Printf("超支检查查询交易失败: %v", err)
		return
	}
	var recurring []models.RecurringTransaction
	if err := database.DB.Where("user_id = ?", userID).Find(&recurring).Error; err != nil {
		log.Printf("超支检查查询周期项失败: %v", err)
		return
	}

	period := budget.ResolvePeriod(budget.PeriodMonthly, "", "", time.Now())
	summary := budget.ComputeSummary(transactions, recurring, period, record.OverallLimit)
	if summary.Remaining >= 0 {
		return
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil || user.Email == "" {
		return
	}

	go func() {
		if err := h.emailService.SendBudgetAlert(user.Email, user.Username, summary, record.OverallLimit); err != nil {
			log.Printf("发送超支提醒邮件失败: %v", err)
		}
	}()
}

// List 获取交易记录列表
// @Summary 获取交易记录列表
// @Description 获取当前用户的交易记录列表，支持分页、类型/类别/时间范围筛选
// @Tags 交易记录
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(10)
// @Param type query string false "类型筛选 income/expense"
// @Param category query string false "类别筛选"
// @Param start_time query string false "开始时间 (2024-01-01)"
// @Param end_time query string false "结束时间 (2024-12-31)"
// @Success 200 {object} Response{data=PageResponse{list=[]models.Transaction}} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/transactions [get]
func (h *TransactionHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req TransactionListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	// 默认分页参数
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = 10
	}
	if req.PageSize > 100 {
		req.PageSize = 100
	}

	query := database.DB.Model(&models.Transaction{}).Where("user_id = ?", userID)

	if req.Type != "" {
		query = query.Where("type = ?", req.Type)
	}
	if req.Category != "" {
		query = query.Where("category = ?", req.Category)
	}
	if req.StartTime != "" {
		if startTime, err := time.ParseInLocation(budget.DateLayout, req.StartTime, time.Local); err == nil {
			query = query.Where("created_at >= ?", startTime)
		}
	}
	if req.EndTime != "" {
		if endTime, err := time.ParseInLocation(budget.DateLayout, req.EndTime, time.Local); err == nil {
			// 包含结束日期当天
			endTime = endTime.Add(24*time.Hour - time.Second)
			query = query.Where("created_at <= ?", endTime)
		}
	}

	var total int64
	query.Count(&total)

	var transactions []models.Transaction
	offset := (req.Page - 1) * req.PageSize
	if err := query.Order("created_at DESC").Offset(offset).Limit(req.PageSize).Find(&transactions).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	Success(c, PageResponse{
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
		List:     transactions,
	})
}

// Get 获取单条交易记录
// @Summary 获取单条交易记录
// @Description 根据ID获取交易记录详情
// @Tags 交易记录
// @Produce json
// @Security BearerAuth
// @Param id path int true "交易记录ID"
// @Success 200 {object} Response{data=models.Transaction} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/transactions/{id} [get]
func (h *TransactionHandler) Get(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var tx models.Transaction
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&tx).Error; err != nil {
		NotFound(c, "记录不存在")
		return
	}

	Success(c, tx)
}

// Update 更新交易记录
// @Summary 更新交易记录
// @Description 整体替换金额/描述/来源/类别，记账时间与类型不变
// @Tags 交易记录
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "交易记录ID"
// @Param request body UpdateTransactionRequest true "交易信息"
// @Success 200 {object} Response{data=models.Transaction} "更新成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/transactions/{id} [put]
func (h *TransactionHandler) Update(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var tx models.Transaction
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&tx).Error; err != nil {
		NotFound(c, "记录不存在")
		return
	}

	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	if err := budget.ValidateTransactionInput(tx.Type, req.Amount, req.Description, req.Source, req.Category); err != nil {
		BadRequest(c, err.Error())
		return
	}

	// created_at 不在更新列内
	updates := map[string]interface{}{
		"amount":      req.Amount,
		"description": req.Description,
		"source":      req.Source,
		"category":    req.Category,
	}
	if err := database.DB.Model(&tx).Updates(updates).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "更新失败"))
		return
	}

	database.DB.First(&tx, tx.ID)
	SuccessWithMessage(c, "更新成功", tx)
}

// Delete 删除交易记录
// @Summary 删除交易记录
// @Description 删除指定的交易记录
// @Tags 交易记录
// @Produce json
// @Security BearerAuth
// @Param id path int true "交易记录ID"
// @Success 200 {object} Response "删除成功"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/transactions/{id} [delete]
func (h *TransactionHandler) Delete(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var tx models.Transaction
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&tx).Error; err != nil {
		NotFound(c, "记录不存在")
		return
	}

	if err := database.DB.Delete(&tx).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "删除失败"))
		return
	}

	SuccessWithMessage(c, "删除成功", nil)
}

// GetCategories 获取支出类别列表
// @Summary 获取支出类别列表
// @Description 返回固定的支出类别枚举，顺序即展示顺序
// @Tags 交易记录
// @Produce json
// @Success 200 {object} Response{data=[]string} "获取成功"
// @Router /api/v1/categories [get]
func (h *TransactionHandler) GetCategories(c *gin.Context) {
	Success(c, models.GetCategories())
}
