package repository

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stakeforge/stakeforge/internal/models"
	"github.com/stakeforge/stakeforge/pkg/logger"
)

func newTestRepo(t *testing.T) models.Repository {
	t.Helper()
	return NewMemoryRepository(logger.NewNop())
}

func newTestInvoice(number string) *models.Invoice {
	return models.NewInvoice(number, decimal.RequireFromString("10.00"), "ATOM", "", "", "")
}

func TestMemoryRepository_SeedData(t *testing.T) {
	repo := newTestRepo(t)

	services, err := repo.ListServices()
	require.NoError(t, err)
	require.Len(t, services, 3)
	for _, svc := range services {
		assert.NotEmpty(t, svc.ID)
		assert.False(t, svc.CreatedAt.IsZero())
	}
	assert.Equal(t, "Cosmos Validators", services[0].Name)
	assert.True(t, services[0].IsPopular)
	assert.Equal(t, "299.00", services[0].Price.StringFixed(2))
	assert.Nil(t, services[2].Price, "enterprise tier is quote-based")

	networks, err := repo.ListNetworks()
	require.NoError(t, err)
	require.Len(t, networks, 5)
	assert.Equal(t, "ATOM", networks[0].Symbol)
	for _, nw := range networks {
		assert.True(t, nw.IsSupported)
	}
}

func TestMemoryRepository_GetService(t *testing.T) {
	repo := newTestRepo(t)

	services, err := repo.ListServices()
	require.NoError(t, err)

	got, err := repo.GetService(services[1].ID)
	require.NoError(t, err)
	assert.Equal(t, services[1].Name, got.Name)

	_, err = repo.GetService("no-such-id")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestMemoryRepository_CreateInvoice(t *testing.T) {
	repo := newTestRepo(t)

	inv := newTestInvoice("INV-1")
	require.NoError(t, repo.CreateInvoice(inv))

	assert.NotEmpty(t, inv.ID)
	assert.False(t, inv.CreatedAt.IsZero())
	assert.Equal(t, models.InvoiceStatusPending, inv.Status)
	assert.Nil(t, inv.PaidAt)

	second := newTestInvoice("INV-2")
	require.NoError(t, repo.CreateInvoice(second))
	assert.NotEqual(t, inv.ID, second.ID, "identifiers must be unique")
}

func TestMemoryRepository_CreateInvoice_DuplicateNumber(t *testing.T) {
	repo := newTestRepo(t)

	require.NoError(t, repo.CreateInvoice(newTestInvoice("INV-1")))

	err := repo.CreateInvoice(newTestInvoice("INV-1"))
	assert.ErrorIs(t, err, models.ErrDuplicateInvoice)

	invoices, err := repo.ListInvoices()
	require.NoError(t, err)
	assert.Len(t, invoices, 1, "failed create must not add a record")
}

func TestMemoryRepository_GetInvoiceByNumber(t *testing.T) {
	repo := newTestRepo(t)

	for _, number := range []string{"INV-1", "INV-2", "INV-3"} {
		require.NoError(t, repo.CreateInvoice(newTestInvoice(number)))
	}

	for _, number := range []string{"INV-1", "INV-2", "INV-3"} {
		inv, err := repo.GetInvoiceByNumber(number)
		require.NoError(t, err)
		assert.Equal(t, number, inv.InvoiceNumber)
	}

	_, err := repo.GetInvoiceByNumber("INV-999")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestMemoryRepository_PayInvoice(t *testing.T) {
	repo := newTestRepo(t)

	created := newTestInvoice("INV-1")
	require.NoError(t, repo.CreateInvoice(created))

	paid, err := repo.PayInvoice("INV-1", "cosmos1xyz", "tx_abc")
	require.NoError(t, err)

	assert.Equal(t, models.InvoiceStatusPaid, paid.Status)
	assert.Equal(t, "cosmos1xyz", paid.WalletAddress)
	assert.Equal(t, "tx_abc", paid.TransactionHash)
	require.NotNil(t, paid.PaidAt)
	assert.False(t, paid.PaidAt.Before(paid.CreatedAt), "paidAt must not precede createdAt")

	// The transition is visible to subsequent reads.
	got, err := repo.GetInvoiceByNumber("INV-1")
	require.NoError(t, err)
	assert.Equal(t, models.InvoiceStatusPaid, got.Status)
	require.NotNil(t, got.PaidAt)
}

func TestMemoryRepository_PayInvoice_Unknown(t *testing.T) {
	repo := newTestRepo(t)

	require.NoError(t, repo.CreateInvoice(newTestInvoice("INV-1")))

	_, err := repo.PayInvoice("INV-999", "cosmos1xyz", "tx_abc")
	assert.ErrorIs(t, err, models.ErrNotFound)

	invoices, err := repo.ListInvoices()
	require.NoError(t, err)
	require.Len(t, invoices, 1)
	assert.Equal(t, models.InvoiceStatusPending, invoices[0].Status, "failed pay must leave the store unchanged")
}

func TestMemoryRepository_PayInvoice_RepeatOverwrites(t *testing.T) {
	repo := newTestRepo(t)

	require.NoError(t, repo.CreateInvoice(newTestInvoice("INV-1")))

	_, err := repo.PayInvoice("INV-1", "cosmos1first", "tx_1")
	require.NoError(t, err)

	paid, err := repo.PayInvoice("INV-1", "cosmos1second", "tx_2")
	require.NoError(t, err)
	assert.Equal(t, "cosmos1second", paid.WalletAddress)
	assert.Equal(t, "tx_2", paid.TransactionHash)
}

func TestMemoryRepository_ListIsIdempotent(t *testing.T) {
	repo := newTestRepo(t)

	require.NoError(t, repo.CreateInvoice(newTestInvoice("INV-1")))
	require.NoError(t, repo.CreateInvoice(newTestInvoice("INV-2")))

	first, err := repo.ListInvoices()
	require.NoError(t, err)
	second, err := repo.ListInvoices()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestMemoryRepository_CreateContact(t *testing.T) {
	repo := newTestRepo(t)

	contact := models.NewContact("Alice", "alice@example.com", "Validators", "Interested in a quote.")
	require.NoError(t, repo.CreateContact(contact))
	assert.NotEmpty(t, contact.ID)

	contacts, err := repo.ListContacts()
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "alice@example.com", contacts[0].Email)
}
