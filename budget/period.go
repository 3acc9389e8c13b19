package budget

import "time"

// 预算周期类型
const (
	PeriodMonthly = "monthly"
	PeriodWeekly  = "weekly"
	PeriodCustom  = "custom"
)

// DateLayout 自定义周期的日期格式
const DateLayout = "2006-01-02"

// Period 解析后的统计时间窗口 [Start, End]（两端均含）
type Period struct {
	Start time.Time
	End   time.Time

	startValid bool
	endValid   bool
}

// ResolvePeriod 把周期选择器解析为具体的时间窗口。
//   - monthly: 当月 1 日 00:00:00.000 起，至今天 23:59:59.999
//   - weekly: 本周周日 00:00:00.000 起（周起始为周日），至今天 23:59:59.999
//   - custom: startStr/endStr 按字面解析为当天零点，不做日结归一化
//
// custom 模式下解析失败的边界（空串或格式错误）记为非法日期哨兵，
// 此时 Contains 对任何时刻都返回 false，过滤结果为空集。
// 调用方应在进入 custom 模式前校验两个日期串非空。
func ResolvePeriod(periodType, startStr, endStr string, now time.Time) Period {
	switch periodType {
	case PeriodWeekly:
		// 回退到最近的周日
		sunday := now.AddDate(0, 0, -int(now.Weekday()))
		return Period{
			Start:      startOfDay(sunday),
			End:        endOfDay(now),
			startValid: true,
			endValid:   true,
		}
	case PeriodCustom:
		var p Period
		if t, err := time.ParseInLocation(DateLayout, startStr, now.Location()); err == nil {
			p.Start = t
			p.startValid = true
		}
		if t, err := time.ParseInLocation(DateLayout, endStr, now.Location()); err == nil {
			p.End = t
			p.endValid = true
		}
		return p
	default:
		// monthly
		return Period{
			Start:      time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()),
			End:        endOfDay(now),
			startValid: true,
			endValid:   true,
		}
	}
}

// Contains 判断时刻 t 是否落在窗口内，任一边界为非法日期时恒为 false
func (p Period) Contains(t time.Time) bool {
	if !p.startValid || !p.endValid {
		return false
	}
	return !t.Before(p.Start) && !t.After(p.End)
}

// Valid 两个边界是否均解析成功
func (p Period) Valid() bool {
	return p.startValid && p.endValid
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}
