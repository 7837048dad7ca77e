package report

import (
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"backend/internal/config"
	"backend/internal/repository"
)

// Mailer produces the end-of-day closing summary. The summary is always
// logged; it is emailed only when SMTP settings are configured.
type Mailer struct {
	analytics *repository.Analytics
	cfg       config.Config
}

func NewMailer(analytics *repository.Analytics, cfg config.Config) *Mailer {
	return &Mailer{analytics: analytics, cfg: cfg}
}

func (m *Mailer) SendClosingSummary() {
	today := m.analytics.GetDailySales(1)[0]
	zap.S().Infow("closing summary",
		"date", today.Date,
		"revenue", today.TotalSales,
		"transactions", today.TotalTransactions,
		"items", today.TotalItems,
	)

	if !m.cfg.MailEnabled() {
		return
	}

	body := fmt.Sprintf(
		"Closing summary for %s\n\nRevenue: %.2f\nTransactions: %d\nItems sold: %d\n",
		today.Date, today.TotalSales, today.TotalTransactions, today.TotalItems,
	)

	from := m.cfg.ReportFrom
	if from == "" {
		from = m.cfg.SMTPUser
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", from)
	msg.SetHeader("To", m.cfg.ReportTo)
	msg.SetHeader("Subject", "Closing summary "+today.Date)
	msg.SetBody("text/plain", body)

	d := gomail.NewDialer(m.cfg.SMTPHost, m.cfg.SMTPPort, m.cfg.SMTPUser, m.cfg.SMTPPassword)
	if err := d.DialAndSend(msg); err != nil {
		zap.S().Errorw("closing summary mail failed", "error", err)
	}
}
