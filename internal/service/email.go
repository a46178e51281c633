package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/shopspring/decimal"
	"gopkg.in/gomail.v2"

	"mowerworks-backend/internal/config"
	"mowerworks-backend/internal/domain"
)

// NewEmailService picks the email backend from config. Defaults to SMTP
// when the provider is unset.
func NewEmailService(cfg config.EmailConfig) EmailService {
	if cfg.Provider == "sendgrid" {
		return &sendgridEmailService{
			apiKey:   cfg.SendGridAPIKey,
			from:     cfg.From,
			fromName: cfg.FromName,
		}
	}
	return &smtpEmailService{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUser,
		password: cfg.SMTPPassword,
		from:     cfg.From,
	}
}

func quoteBody(customerName string, job *domain.Job) (string, string) {
	subject := fmt.Sprintf("Your quote from MowerWorks - %s", job.Reference)
	body := fmt.Sprintf(
		"Hello %s,\n\nHere is your quote %s:\n\nParts: $%s\nLabour: $%s\nTransport: $%s\nSharpening: $%s\nDiscount: -$%s\nGST: $%s\n\nTotal: $%s\n\nThis quote is valid for 30 days.\n\nThanks,\nMowerWorks",
		customerName, job.Reference,
		job.PartsSubtotal.StringFixed(2), job.LabourTotal.StringFixed(2),
		job.TransportTotal.StringFixed(2), job.SharpenTotal.StringFixed(2),
		job.DiscountAmount.StringFixed(2), job.GST.StringFixed(2),
		job.GrandTotal.StringFixed(2))
	return subject, body
}

func pickupReadyBody(customerName, reference string, balanceDue decimal.Decimal) (string, string) {
	subject := fmt.Sprintf("Your machine is ready for pickup - job %s", reference)
	body := fmt.Sprintf("Hello %s,\n\nYour repair job %s is complete and your machine is ready for pickup.\n\nBalance due on pickup: $%s\n\nThanks,\nMowerWorks", customerName, reference, balanceDue.StringFixed(2))
	return subject, body
}

func pickupReminderBody(customerName, reference string, daysWaiting int) (string, string) {
	subject := fmt.Sprintf("Reminder: job %s is awaiting pickup", reference)
	body := fmt.Sprintf("Hello %s,\n\nJust a reminder that your machine (job %s) has been ready for pickup for %d days.\n\nThanks,\nMowerWorks", customerName, reference, daysWaiting)
	return subject, body
}

func revenueReportBody(summary *domain.RevenueSummary) (string, string) {
	subject := fmt.Sprintf("Weekly revenue report %s to %s", summary.From, summary.To)
	body := fmt.Sprintf(
		"Revenue for %s to %s\n\nJobs closed: %d\nParts: $%s\nLabour: $%s\nTransport: $%s\nSharpening: $%s\nGST collected: $%s\nTotal: $%s\n",
		summary.From, summary.To, summary.JobCount,
		summary.PartsTotal.StringFixed(2), summary.LabourTotal.StringFixed(2),
		summary.TransportTotal.StringFixed(2), summary.SharpenTotal.StringFixed(2),
		summary.GSTTotal.StringFixed(2), summary.GrandTotal.StringFixed(2))
	return subject, body
}

type smtpEmailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func (s *smtpEmailService) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email via smtp: %w", err)
	}
	return nil
}

func (s *smtpEmailService) SendQuote(ctx context.Context, to, customerName string, job *domain.Job) error {
	subject, body := quoteBody(customerName, job)
	return s.send(to, subject, body)
}

func (s *smtpEmailService) SendPickupReady(ctx context.Context, to, customerName, reference string, balanceDue decimal.Decimal) error {
	subject, body := pickupReadyBody(customerName, reference, balanceDue)
	return s.send(to, subject, body)
}

func (s *smtpEmailService) SendPickupReminder(ctx context.Context, to, customerName, reference string, daysWaiting int) error {
	subject, body := pickupReminderBody(customerName, reference, daysWaiting)
	return s.send(to, subject, body)
}

func (s *smtpEmailService) SendWeeklyRevenueReport(ctx context.Context, to string, summary *domain.RevenueSummary) error {
	subject, body := revenueReportBody(summary)
	return s.send(to, subject, body)
}

type sendgridEmailService struct {
	apiKey   string
	from     string
	fromName string
}

func (s *sendgridEmailService) send(to, subject, body string) error {
	from := mail.NewEmail(s.fromName, s.from)
	message := mail.NewSingleEmail(from, subject, mail.NewEmail("", to), body, "")
	client := sendgrid.NewSendClient(s.apiKey)

	resp, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email via sendgrid: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid rejected email: status %d", resp.StatusCode)
	}
	return nil
}

func (s *sendgridEmailService) SendQuote(ctx context.Context, to, customerName string, job *domain.Job) error {
	subject, body := quoteBody(customerName, job)
	return s.send(to, subject, body)
}

func (s *sendgridEmailService) SendPickupReady(ctx context.Context, to, customerName, reference string, balanceDue decimal.Decimal) error {
	subject, body := pickupReadyBody(customerName, reference, balanceDue)
	return s.send(to, subject, body)
}

func (s *sendgridEmailService) SendPickupReminder(ctx context.Context, to, customerName, reference string, daysWaiting int) error {
	subject, body := pickupReminderBody(customerName, reference, daysWaiting)
	return s.send(to, subject, body)
}

func (s *sendgridEmailService) SendWeeklyRevenueReport(ctx context.Context, to string, summary *domain.RevenueSummary) error {
	subject, body := revenueReportBody(summary)
	return s.send(to, subject, body)
}
