package notifier

import (
	"fmt"
	"net/smtp"

	"github.com/stakeforge/stakeforge/pkg/logger"
)

// EmailNotifier mails alerts to the operations inbox over SMTP.
type EmailNotifier struct {
	logger *logger.Logger

	SMTPHost   string
	SMTPPort   int
	SMTPSender string
	OpsEmail   string

	SMTPAuth smtp.Auth
}

func NewEmailNotifier(logger *logger.Logger, host string, port int, user, password, sender, opsEmail string) *EmailNotifier {
	auth := smtp.PlainAuth("", user, password, host)

	return &EmailNotifier{
		logger:     logger,
		SMTPAuth:   auth,
		SMTPHost:   host,
		SMTPPort:   port,
		SMTPSender: sender,
		OpsEmail:   opsEmail,
	}
}

func (e *EmailNotifier) SendNotification(subject, message string) {
	addr := fmt.Sprintf("%s:%d", e.SMTPHost, e.SMTPPort)
	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		e.SMTPSender,
		e.OpsEmail,
		subject,
		message,
	)
	if err := smtp.SendMail(addr, e.SMTPAuth, e.SMTPSender, []string{e.OpsEmail}, []byte(msg)); err != nil {
		e.logger.Error("Failed to send email notification: ", err)
	}
}
