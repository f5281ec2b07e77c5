package stakeforge

import (
	"github.com/stakeforge/stakeforge/internal/models"
	"github.com/stakeforge/stakeforge/pkg/logger"
)

// StakeForge is the application service layer. It owns the repository and
// fires operator notifications after successful mutations; the HTTP layer
// talks to it through models.PlatformI.
type StakeForge struct {
	logger *logger.Logger

	repo     models.Repository
	notifier models.NotificationService
}

// NewStakeForge creates the platform service layer.
func NewStakeForge(
	repo models.Repository,
	notifier models.NotificationService,
	logger *logger.Logger,
) models.PlatformI {
	return &StakeForge{
		repo:     repo,
		notifier: notifier,
		logger:   logger,
	}
}

func (s *StakeForge) GetServices() ([]*models.Service, error) {
	return s.repo.ListServices()
}

func (s *StakeForge) GetService(id string) (*models.Service, error) {
	return s.repo.GetService(id)
}

func (s *StakeForge) GetNetworks() ([]*models.Network, error) {
	return s.repo.ListNetworks()
}

// SubmitContact stores the contact-form submission and alerts operators.
// Notification failures never surface to the submitter.
func (s *StakeForge) SubmitContact(contact *models.Contact) error {
	if err := s.repo.CreateContact(contact); err != nil {
		return err
	}
	s.logger.Info("Contact form submitted", "email", contact.Email, "subject", contact.Subject)
	s.notifier.ContactSubmitted(contact)
	return nil
}

func (s *StakeForge) GetInvoices() ([]*models.Invoice, error) {
	return s.repo.ListInvoices()
}

func (s *StakeForge) GetInvoiceByNumber(number string) (*models.Invoice, error) {
	return s.repo.GetInvoiceByNumber(number)
}

func (s *StakeForge) CreateInvoice(invoice *models.Invoice) error {
	if err := s.repo.CreateInvoice(invoice); err != nil {
		return err
	}
	s.logger.Info("Invoice created", "number", invoice.InvoiceNumber,
		"amount", invoice.Amount.String(), "currency", invoice.Currency)
	return nil
}

// PayInvoice marks an invoice paid. The transaction hash is recorded as
// reported by the client; no on-chain verification happens at this tier.
func (s *StakeForge) PayInvoice(number, walletAddress, transactionHash string) (*models.Invoice, error) {
	invoice, err := s.repo.PayInvoice(number, walletAddress, transactionHash)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Invoice paid", "number", invoice.InvoiceNumber,
		"wallet", walletAddress, "tx", transactionHash)
	s.notifier.InvoicePaid(invoice)
	return invoice, nil
}
