package repository

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stakeforge/stakeforge/internal/models"
	"github.com/stakeforge/stakeforge/pkg/logger"
)

// MemoryRepository is the in-process record store used by the default
// deployment tier. Data does not survive a restart, which is a deliberate
// scope limitation for this tier.
//
// Writes are serialized behind the mutex; reads run concurrently. A payment
// swaps in a fully built replacement record under the write lock, so readers
// never observe a half-applied transition.
type MemoryRepository struct {
	logger *logger.Logger

	mu sync.RWMutex

	services map[string]*models.Service
	networks map[string]*models.Network
	contacts map[string]*models.Contact
	invoices map[string]*models.Invoice

	// Insertion order per collection, so listings are stable.
	serviceOrder []string
	networkOrder []string
	contactOrder []string
	invoiceOrder []string

	// invoice number -> invoice id
	invoiceNumbers map[string]string
}

// NewMemoryRepository creates the store and seeds the catalog data the
// marketing site renders (service offerings and supported networks).
func NewMemoryRepository(logger *logger.Logger) models.Repository {
	r := &MemoryRepository{
		logger:         logger,
		services:       make(map[string]*models.Service),
		networks:       make(map[string]*models.Network),
		contacts:       make(map[string]*models.Contact),
		invoices:       make(map[string]*models.Invoice),
		invoiceNumbers: make(map[string]string),
	}
	r.seed()
	logger.Info("In-memory repository initialized",
		"services", len(r.services), "networks", len(r.networks))
	return r
}

func (r *MemoryRepository) seed() {
	price := func(s string) *decimal.Decimal {
		d := decimal.RequireFromString(s)
		return &d
	}

	for _, svc := range []*models.Service{
		models.NewService(
			"Cosmos Validators",
			"Professional validator services across Cosmos-based networks with competitive commission rates and 24/7 monitoring.",
			[]string{"99.9% Uptime SLA", "Automated failover", "Real-time monitoring"},
			price("299.00"), models.CategoryValidator, true,
		),
		models.NewService(
			"RPC Nodes",
			"High-performance RPC endpoints for seamless blockchain integration with load balancing and caching.",
			[]string{"Sub-second response", "Global CDN", "Rate limiting"},
			price("99.00"), models.CategoryRPC, false,
		),
		models.NewService(
			"Enterprise Solutions",
			"Custom blockchain infrastructure solutions for enterprises with dedicated support and SLAs.",
			[]string{"Dedicated resources", "24/7 support", "Custom SLAs"},
			nil, models.CategoryEnterprise, false,
		),
	} {
		_ = r.CreateService(svc)
	}

	for _, nw := range []*models.Network{
		models.NewNetwork("Cosmos", "ATOM", "fas fa-atom", true),
		models.NewNetwork("Ethereum", "ETH", "fab fa-ethereum", true),
		models.NewNetwork("Solana", "SOL", "fas fa-sun", true),
		models.NewNetwork("Polygon", "MATIC", "fas fa-link", true),
		models.NewNetwork("Osmosis", "OSMO", "fas fa-circle", true),
	} {
		_ = r.CreateNetwork(nw)
	}
}

func (r *MemoryRepository) Close() error {
	return nil
}

// Services

func (r *MemoryRepository) ListServices() ([]*models.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Service, 0, len(r.serviceOrder))
	for _, id := range r.serviceOrder {
		out = append(out, r.services[id])
	}
	return out, nil
}

func (r *MemoryRepository) GetService(id string) (*models.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	svc, ok := r.services[id]
	if !ok {
		return nil, fmt.Errorf("service %s: %w", id, models.ErrNotFound)
	}
	return svc, nil
}

func (r *MemoryRepository) CreateService(service *models.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	service.ID = uuid.New().String()
	service.CreatedAt = time.Now().UTC()
	r.services[service.ID] = service
	r.serviceOrder = append(r.serviceOrder, service.ID)
	return nil
}

// Networks

func (r *MemoryRepository) ListNetworks() ([]*models.Network, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Network, 0, len(r.networkOrder))
	for _, id := range r.networkOrder {
		out = append(out, r.networks[id])
	}
	return out, nil
}

func (r *MemoryRepository) GetNetwork(id string) (*models.Network, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	nw, ok := r.networks[id]
	if !ok {
		return nil, fmt.Errorf("network %s: %w", id, models.ErrNotFound)
	}
	return nw, nil
}

func (r *MemoryRepository) CreateNetwork(network *models.Network) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	network.ID = uuid.New().String()
	network.CreatedAt = time.Now().UTC()
	r.networks[network.ID] = network
	r.networkOrder = append(r.networkOrder, network.ID)
	return nil
}

// Contacts

func (r *MemoryRepository) ListContacts() ([]*models.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Contact, 0, len(r.contactOrder))
	for _, id := range r.contactOrder {
		out = append(out, r.contacts[id])
	}
	return out, nil
}

func (r *MemoryRepository) CreateContact(contact *models.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	contact.ID = uuid.New().String()
	contact.CreatedAt = time.Now().UTC()
	r.contacts[contact.ID] = contact
	r.contactOrder = append(r.contactOrder, contact.ID)
	return nil
}

// Invoices

func (r *MemoryRepository) ListInvoices() ([]*models.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Invoice, 0, len(r.invoiceOrder))
	for _, id := range r.invoiceOrder {
		out = append(out, r.invoices[id])
	}
	return out, nil
}

func (r *MemoryRepository) GetInvoice(id string) (*models.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	inv, ok := r.invoices[id]
	if !ok {
		return nil, fmt.Errorf("invoice %s: %w", id, models.ErrNotFound)
	}
	return inv, nil
}

func (r *MemoryRepository) GetInvoiceByNumber(number string) (*models.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.invoiceNumbers[number]
	if !ok {
		return nil, fmt.Errorf("invoice %s: %w", number, models.ErrNotFound)
	}
	return r.invoices[id], nil
}

func (r *MemoryRepository) CreateInvoice(invoice *models.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.invoiceNumbers[invoice.InvoiceNumber]; taken {
		return fmt.Errorf("invoice %s: %w", invoice.InvoiceNumber, models.ErrDuplicateInvoice)
	}

	invoice.ID = uuid.New().String()
	invoice.CreatedAt = time.Now().UTC()
	r.invoices[invoice.ID] = invoice
	r.invoiceOrder = append(r.invoiceOrder, invoice.ID)
	r.invoiceNumbers[invoice.InvoiceNumber] = invoice.ID
	return nil
}

func (r *MemoryRepository) PayInvoice(number, walletAddress, transactionHash string) (*models.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.invoiceNumbers[number]
	if !ok {
		return nil, fmt.Errorf("invoice %s: %w", number, models.ErrNotFound)
	}

	now := time.Now().UTC()
	updated := *r.invoices[id]
	updated.Status = models.InvoiceStatusPaid
	updated.WalletAddress = walletAddress
	updated.TransactionHash = transactionHash
	updated.PaidAt = &now
	r.invoices[id] = &updated

	return &updated, nil
}
