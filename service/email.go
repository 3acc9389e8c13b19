package service

import (
	"fmt"

	"budgetbuddy/budget"
	"budgetbuddy/config"

	"gopkg.in/gomail.v2"
)

// EmailService 邮件服务
type EmailService struct {
	cfg *config.EmailConfig
}

// NewEmailService 创建邮件服务
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

// SendBudgetAlert 发送当月超支提醒邮件
func (s *EmailService) SendBudgetAlert(toEmail, username string, summary budget.Summary, overallLimit float64) error {
	if !s.cfg.Enabled {
		return fmt.Errorf("邮件服务未启用，请配置 email.enabled=true")
	}

	subject := "【预算管家】本月支出已超出预算"
	body := s.generateAlertBody(username, summary, overallLimit)

	return s.sendEmail(toEmail, subject, body)
}

// generateAlertBody 生成超支提醒邮件内容
func (s *EmailService) generateAlertBody(username string, summary budget.Summary, overallLimit float64) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: 'Microsoft YaHei', Arial, sans-serif; background: #f5f5f5; margin: 0; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background: #fff; border-radius: 12px; overflow: hidden; box-shadow: 0 4px 20px rgba(0,0,0,0.1); }
        .header { background: linear-gradient(135deg, #dc2626, #b91c1c); color: white; padding: 30px; text-align: center; }
        .header h1 { margin: 0; font-size: 24px; }
        .content { padding: 40px 30px; }
        .content p { color: #333; line-height: 1.8; margin: 0 0 20px; }
        .stats { background: #fef2f2; border-left: 4px solid #dc2626; padding: 15px; margin: 20px 0; border-radius: 4px; }
        .stats p { margin: 0 0 8px; color: #7f1d1d; font-size: 14px; }
        .footer { background: #f8f9fa; padding: 20px 30px; text-align: center; color: #6c757d; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>💰 预算管家</h1>
        </div>
        <div class="content">
            <p>尊敬的 <strong>%s</strong>，您好！</p>
            <p>您本月的支出已经超出了设定的总体预算上限，请留意近期的消费节奏：</p>
            <div class="stats">
                <p>总体预算上限：<strong>%.2f</strong></p>
                <p>本月累计支出：<strong>%.2f</strong></p>
                <p>已超出额度：<strong>%.2f</strong></p>
            </div>
            <p>您可以登录预算管家查看逐类别支出明细，或调整预算上限。</p>
        </div>
        <div class="footer">
            <p>此邮件由系统自动发送，请勿回复</p>
            <p>© 预算管家 - 您的个人财务管理助手</p>
        </div>
    </div>
</body>
</html>
`, username, overallLimit, summary.TotalExpenses, -summary.Remaining)
}

// sendEmail 发送邮件
func (s *EmailService) sendEmail(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.Username, s.cfg.From))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("发送邮件失败: %w", err)
	}

	return nil
}
