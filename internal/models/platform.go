package models

// PlatformI is the application service layer consumed by the HTTP API.
type PlatformI interface {
	// GetServices returns all service offerings.
	GetServices() ([]*Service, error)
	// GetService returns one offering by ID.
	GetService(id string) (*Service, error)

	// GetNetworks returns all networks.
	GetNetworks() ([]*Network, error)

	// SubmitContact stores a contact-form submission and alerts operators.
	SubmitContact(contact *Contact) error

	// GetInvoices returns all invoices.
	GetInvoices() ([]*Invoice, error)
	// GetInvoiceByNumber returns one invoice by business key.
	GetInvoiceByNumber(number string) (*Invoice, error)
	// CreateInvoice stores a new invoice.
	CreateInvoice(invoice *Invoice) error
	// PayInvoice marks an invoice paid and alerts operators.
	PayInvoice(number, walletAddress, transactionHash string) (*Invoice, error)
}

// APIServer serves the HTTP API.
type APIServer interface {
	Start()
	Shutdown() error
}

// NotificationService delivers operational alerts. Implementations must not
// fail the triggering request; delivery errors are logged and swallowed.
type NotificationService interface {
	ContactSubmitted(contact *Contact)
	InvoicePaid(invoice *Invoice)
}
