package repository

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/stakeforge/stakeforge/internal/models"
	"github.com/stakeforge/stakeforge/pkg/logger"
)

// PostgresRepository is the gorm-backed store for the durable deployment
// tier. It carries the same contract as MemoryRepository; the invoice-number
// uniqueness invariant is additionally backed by a unique index.
type PostgresRepository struct {
	logger *logger.Logger

	Conn *gorm.DB
}

func NewPostgresRepository(user, password, dbname, host string, port int, logger *logger.Logger) (models.Repository, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable",
		host, user, password, dbname, port)

	// Suppress "record not found" noise; absent records are an expected
	// outcome, not a query failure.
	gormLogger := gormLogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormLogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormLogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %s", err)
	}

	if err := db.AutoMigrate(&models.Service{}, &models.Network{}, &models.Contact{}, &models.Invoice{}); err != nil {
		return nil, fmt.Errorf("failed to auto-migrate models: %s", err)
	}
	logger.Info("Successfully connected to PostgreSQL!")
	return &PostgresRepository{Conn: db, logger: logger}, nil
}

func (r *PostgresRepository) Close() error {
	sqlDB, err := r.Conn.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %s", err)
	}
	return sqlDB.Close()
}

// Services

func (r *PostgresRepository) ListServices() ([]*models.Service, error) {
	var services []*models.Service
	if err := r.Conn.Order("created_at").Find(&services).Error; err != nil {
		return nil, fmt.Errorf("failed to list services: %s", err)
	}
	return services, nil
}

func (r *PostgresRepository) GetService(id string) (*models.Service, error) {
	var service models.Service
	if err := r.Conn.Where("id = ?", id).First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("service %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get service: %s", err)
	}
	return &service, nil
}

func (r *PostgresRepository) CreateService(service *models.Service) error {
	service.ID = uuid.New().String()
	service.CreatedAt = time.Now().UTC()
	if err := r.Conn.Create(service).Error; err != nil {
		return fmt.Errorf("failed to create service: %s", err)
	}
	return nil
}

// Networks

func (r *PostgresRepository) ListNetworks() ([]*models.Network, error) {
	var networks []*models.Network
	if err := r.Conn.Order("created_at").Find(&networks).Error; err != nil {
		return nil, fmt.Errorf("failed to list networks: %s", err)
	}
	return networks, nil
}

func (r *PostgresRepository) GetNetwork(id string) (*models.Network, error) {
	var network models.Network
	if err := r.Conn.Where("id = ?", id).First(&network).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("network %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get network: %s", err)
	}
	return &network, nil
}

func (r *PostgresRepository) CreateNetwork(network *models.Network) error {
	network.ID = uuid.New().String()
	network.CreatedAt = time.Now().UTC()
	if err := r.Conn.Create(network).Error; err != nil {
		return fmt.Errorf("failed to create network: %s", err)
	}
	return nil
}

// Contacts

func (r *PostgresRepository) ListContacts() ([]*models.Contact, error) {
	var contacts []*models.Contact
	if err := r.Conn.Order("created_at").Find(&contacts).Error; err != nil {
		return nil, fmt.Errorf("failed to list contacts: %s", err)
	}
	return contacts, nil
}

func (r *PostgresRepository) CreateContact(contact *models.Contact) error {
	contact.ID = uuid.New().String()
	contact.CreatedAt = time.Now().UTC()
	if err := r.Conn.Create(contact).Error; err != nil {
		return fmt.Errorf("failed to create contact: %s", err)
	}
	return nil
}

// Invoices

func (r *PostgresRepository) ListInvoices() ([]*models.Invoice, error) {
	var invoices []*models.Invoice
	if err := r.Conn.Order("created_at").Find(&invoices).Error; err != nil {
		return nil, fmt.Errorf("failed to list invoices: %s", err)
	}
	return invoices, nil
}

func (r *PostgresRepository) GetInvoice(id string) (*models.Invoice, error) {
	var invoice models.Invoice
	if err := r.Conn.Where("id = ?", id).First(&invoice).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("invoice %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get invoice: %s", err)
	}
	return &invoice, nil
}

func (r *PostgresRepository) GetInvoiceByNumber(number string) (*models.Invoice, error) {
	var invoice models.Invoice
	if err := r.Conn.Where("invoice_number = ?", number).First(&invoice).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("invoice %s: %w", number, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get invoice by number: %s", err)
	}
	return &invoice, nil
}

func (r *PostgresRepository) CreateInvoice(invoice *models.Invoice) error {
	var existing models.Invoice
	err := r.Conn.Where("invoice_number = ?", invoice.InvoiceNumber).First(&existing).Error
	if err == nil {
		return fmt.Errorf("invoice %s: %w", invoice.InvoiceNumber, models.ErrDuplicateInvoice)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check invoice number: %s", err)
	}

	invoice.ID = uuid.New().String()
	invoice.CreatedAt = time.Now().UTC()
	if err := r.Conn.Create(invoice).Error; err != nil {
		return fmt.Errorf("failed to create invoice: %s", err)
	}
	return nil
}

func (r *PostgresRepository) PayInvoice(number, walletAddress, transactionHash string) (*models.Invoice, error) {
	var invoice models.Invoice
	err := r.Conn.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("invoice_number = ?", number).First(&invoice).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("invoice %s: %w", number, models.ErrNotFound)
			}
			return fmt.Errorf("failed to get invoice by number: %s", err)
		}

		now := time.Now().UTC()
		invoice.Status = models.InvoiceStatusPaid
		invoice.WalletAddress = walletAddress
		invoice.TransactionHash = transactionHash
		invoice.PaidAt = &now

		if err := tx.Save(&invoice).Error; err != nil {
			return fmt.Errorf("failed to update invoice: %s", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}
