package notification

import (
	"context"
	"fmt"
	"time"

	gomail "github.com/wneessen/go-mail"

	"brickworks_backend/platform/config"
)

// SMTPSender delivers notification emails over a direct SMTP connection
// via go-mail.
type SMTPSender struct {
	host      string
	port      int
	username  string
	password  string
	fromName  string
	fromEmail string
}

// NewSMTPSender creates a new SMTPSender from the SMTP configuration.
func NewSMTPSender(cfg config.SMTPConfig) *SMTPSender {
	return &SMTPSender{
		host:      cfg.GetSMTPHost(),
		port:      cfg.GetSMTPPort(),
		username:  cfg.GetSMTPUsername(),
		password:  cfg.GetSMTPPassword(),
		fromName:  cfg.GetEmailFromName(),
		fromEmail: cfg.GetEmailFromAddress(),
	}
}

var _ Sender = (*SMTPSender)(nil)

func (s *SMTPSender) send(ctx context.Context, toEmail, subject, htmlContent string) error {
	msg := gomail.NewMsg()
	if err := msg.FromFormat(s.fromName, s.fromEmail); err != nil {
		return fmt.Errorf("smtp from: %w", err)
	}
	if err := msg.To(toEmail); err != nil {
		return fmt.Errorf("smtp to: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, htmlContent)

	client, err := gomail.NewClient(s.host,
		gomail.WithPort(s.port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(s.username),
		gomail.WithPassword(s.password),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(15*time.Second),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}

	return nil
}

// SendOrderAlert emails the admin about a newly placed order.
func (s *SMTPSender) SendOrderAlert(ctx context.Context, toEmail string, data OrderAlertData) error {
	subject := fmt.Sprintf(subjectOrderAlertFmt, data.CustomerName)
	content, err := renderEmailTemplate("order_alert.html", orderAlertEmailData{
		baseEmailData: baseEmailData{
			Title:   subject,
			Heading: "New order received",
		},
		OrderAlertData: data,
	})
	if err != nil {
		return err
	}
	return s.send(ctx, toEmail, subject, content)
}

// SendEnquiryAlert emails the admin about a new contact enquiry.
func (s *SMTPSender) SendEnquiryAlert(ctx context.Context, toEmail string, data EnquiryAlertData) error {
	subject := fmt.Sprintf(subjectEnquiryAlertFmt, data.Name)
	content, err := renderEmailTemplate("enquiry_alert.html", enquiryAlertEmailData{
		baseEmailData: baseEmailData{
			Title:   subject,
			Heading: "New enquiry received",
		},
		EnquiryAlertData: data,
	})
	if err != nil {
		return err
	}
	return s.send(ctx, toEmail, subject, content)
}
