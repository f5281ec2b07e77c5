package notifier

import (
	"fmt"
	"runtime/debug"

	"github.com/stakeforge/stakeforge/internal/models"
	"github.com/stakeforge/stakeforge/pkg/logger"
)

// Notifier fans operational alerts out to the configured channels. Either
// channel may be nil when unconfigured; delivery problems are logged and
// never propagate to the request that triggered the alert.
type Notifier struct {
	logger *logger.Logger

	Telegram *TelegramNotifier
	Email    *EmailNotifier
}

func NewNotifier(logger *logger.Logger, telegram *TelegramNotifier, email *EmailNotifier) models.NotificationService {
	return &Notifier{logger: logger, Telegram: telegram, Email: email}
}

// safeCall runs a function with panic recovery so a misbehaving channel
// cannot take down the request path.
func (n *Notifier) safeCall(fn func(), context string) {
	defer func() {
		if r := recover(); r != nil {
			n.logger.Error("Notification channel panicked",
				"context", context,
				"panic", r,
				"stack", string(debug.Stack()))
		}
	}()
	fn()
}

func (n *Notifier) ContactSubmitted(contact *models.Contact) {
	subject := "New contact form submission"
	message := fmt.Sprintf("Contact form submission\nFrom: %s <%s>\nSubject: %s\n\n%s",
		contact.Name, contact.Email, contact.Subject, contact.Message)
	n.dispatch(subject, message, "contactSubmitted")
}

func (n *Notifier) InvoicePaid(invoice *models.Invoice) {
	subject := fmt.Sprintf("Invoice %s paid", invoice.InvoiceNumber)
	message := fmt.Sprintf("Invoice %s paid\nAmount: %s %s\nWallet: %s\nTransaction: %s",
		invoice.InvoiceNumber, invoice.Amount.String(), invoice.Currency,
		invoice.WalletAddress, invoice.TransactionHash)
	n.dispatch(subject, message, "invoicePaid")
}

func (n *Notifier) dispatch(subject, message, context string) {
	if n.Telegram != nil {
		n.safeCall(func() { n.Telegram.SendNotification(message) }, context+"/telegram")
	}
	if n.Email != nil {
		n.safeCall(func() { n.Email.SendNotification(subject, message) }, context+"/email")
	}
}
