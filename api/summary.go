package api

import (
	"errors"
	"time"

	"budgetbuddy/budget"
	"budgetbuddy/database"
	"budgetbuddy/middleware"
	"budgetbuddy/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SummaryHandler 汇总统计处理器
type SummaryHandler struct{}

// NewSummaryHandler 创建汇总统计处理器
func NewSummaryHandler() *SummaryHandler {
	return &SummaryHandler{}
}

// SummaryResponse 收支汇总返回
type SummaryResponse struct {
	budget.Summary
	OverallLimit float64 `json:"overall_limit" example:"2000.00"`
	Mode         string  `json:"mode" example:"overall"`
	PeriodStart  string  `json:"period_start" example:"2024-03-01 00:00:00"`
	PeriodEnd    string  `json:"period_end" example:"2024-03-15 23:59:59"`
}

// snapshot 一次性读出参与汇总的三类数据
// 三个集合各自独立读取，不保证同一时间点的一致性（与订阅式存储的
// 快照语义一致），汇总本身是快照的纯函数。
func snapshot(userID uint) ([]models.Transaction, []models.RecurringTransaction, models.BudgetRecord, error) {
	var transactions []models.Transaction
	if err := database.DB.Where("user_id = ?", userID).Find(&transactions).Error; err != nil {
		return nil, nil, models.BudgetRecord{}, err
	}

	var recurring []models.RecurringTransaction
	if err := database.DB.Where("user_id = ?", userID).Find(&recurring).Error; err != nil {
		return nil, nil, models.BudgetRecord{}, err
	}

	var record models.BudgetRecord
	if err := database.DB.Where("user_id = ?", userID).First(&record).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, models.BudgetRecord{}, err
		}
		record = models.BudgetRecord{UserID: userID, Mode: models.BudgetModeOverall}
	}

	return transactions, recurring, record, nil
}

// resolvePeriodParam 解析 period/start_date/end_date 查询参数
// custom 模式要求两个日期串均非空，避免非法日期哨兵导致的空结果
func resolvePeriodParam(c *gin.Context) (budget.Period, bool) {
	periodType := c.DefaultQuery("period", budget.PeriodMonthly)
	startStr := c.Query("start_date")
	endStr := c.Query("end_date")

	switch periodType {
	case budget.PeriodMonthly, budget.PeriodWeekly:
		return budget.ResolvePeriod(periodType, "", "", time.Now()), true
	case budget.PeriodCustom:
		if startStr == "" || endStr == "" {
			BadRequest(c, "custom 模式下 start_date 和 end_date 必填（格式：2024-01-01）")
			return budget.Period{}, false
		}
		p := budget.ResolvePeriod(budget.PeriodCustom, startStr, endStr, time.Now())
		if !p.Valid() {
			BadRequest(c, "日期格式错误，应为: 2024-01-01")
			return budget.Period{}, false
		}
		return p, true
	default:
		BadRequest(c, "period 参数值错误，可选值：monthly、weekly、custom")
		return budget.Period{}, false
	}
}

// GetSummary 获取收支汇总
// @Summary 获取收支汇总
// @Description 按周期窗口统计总收入、总支出与剩余额度。周期性交易不按窗口过滤、不按频率折算，每次统计整额计入一次。
// @Tags 统计
// @Produce json
// @Security BearerAuth
// @Param period query string false "周期类型 monthly/weekly/custom" default(monthly)
// @Param start_date query string false "开始日期（custom 必填，格式：2024-01-01）"
// @Param end_date query string false "结束日期（custom 必填，格式：2024-12-31）"
// @Success 200 {object} Response{data=SummaryResponse} "获取成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/summary [get]
func (h *SummaryHandler) GetSummary(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	period, ok := resolvePeriodParam(c)
	if !ok {
		return
	}

	transactions, recurring, record, err := snapshot(userID)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	summary := budget.ComputeSummary(transactions, recurring, period, record.OverallLimit)

	Success(c, SummaryResponse{
		Summary:      summary,
		OverallLimit: record.OverallLimit,
		Mode:         record.Mode,
		PeriodStart:  period.Start.Format("2006-01-02 15:04:05"),
		PeriodEnd:    period.End.Format("2006-01-02 15:04:05"),
	})
}

// GetSpending 获取逐类别支出统计
// @Summary 获取逐类别支出统计
// @Description 按周期窗口统计每个类别的支出与预算对照，行按固定类别枚举顺序返回，适合绘制柱状图
// @Tags 统计
// @Produce json
// @Security BearerAuth
// @Param period query string false "周期类型 monthly/weekly/custom" default(monthly)
// @Param start_date query string false "开始日期（custom 必填，格式：2024-01-01）"
// @Param end_date query string false "结束日期（custom 必填，格式：2024-12-31）"
// @Success 200 {object} Response{data=[]budget.CategoryRow} "获取成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/spending [get]
func (h *SummaryHandler) GetSpending(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	period, ok := resolvePeriodParam(c)
	if !ok {
		return
	}

	transactions, recurring, record, err := snapshot(userID)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	rows := budget.ComputeSpendingByCategory(transactions, recurring, period, record.Categories)
	Success(c, rows)
}
