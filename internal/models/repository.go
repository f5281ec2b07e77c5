package models

// Repository is the record store backing all four entity kinds.
// Create operations assign the ID and CreatedAt; point lookups return
// ErrNotFound when the record is absent. List operations never fail with
// ErrNotFound, an empty slice is a valid result.
type Repository interface {
	ListServices() ([]*Service, error)
	GetService(id string) (*Service, error)
	CreateService(service *Service) error

	ListNetworks() ([]*Network, error)
	GetNetwork(id string) (*Network, error)
	CreateNetwork(network *Network) error

	ListContacts() ([]*Contact, error)
	CreateContact(contact *Contact) error

	ListInvoices() ([]*Invoice, error)
	GetInvoice(id string) (*Invoice, error)
	// GetInvoiceByNumber looks an invoice up by its business key.
	GetInvoiceByNumber(number string) (*Invoice, error)
	// CreateInvoice fails with ErrDuplicateInvoice if the number is taken.
	CreateInvoice(invoice *Invoice) error
	// PayInvoice marks the invoice paid, recording the payer address and
	// transaction hash and stamping PaidAt, all in one step. Fails with
	// ErrNotFound for an unknown invoice number. A repeat call overwrites
	// the previous payment details.
	PayInvoice(number, walletAddress, transactionHash string) (*Invoice, error)

	Close() error
}
