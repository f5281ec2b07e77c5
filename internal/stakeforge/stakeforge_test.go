package stakeforge

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stakeforge/stakeforge/internal/models"
	"github.com/stakeforge/stakeforge/internal/repository"
	"github.com/stakeforge/stakeforge/pkg/logger"
)

// recordingNotifier captures fired notifications for assertions.
type recordingNotifier struct {
	contacts []*models.Contact
	invoices []*models.Invoice
}

func (r *recordingNotifier) ContactSubmitted(c *models.Contact) { r.contacts = append(r.contacts, c) }
func (r *recordingNotifier) InvoicePaid(i *models.Invoice)      { r.invoices = append(r.invoices, i) }

func newTestPlatform(t *testing.T) (models.PlatformI, *recordingNotifier) {
	t.Helper()
	log := logger.NewNop()
	rec := &recordingNotifier{}
	return NewStakeForge(repository.NewMemoryRepository(log), rec, log), rec
}

func TestSubmitContact_Notifies(t *testing.T) {
	platform, rec := newTestPlatform(t)

	contact := models.NewContact("Bob", "bob@example.com", "RPC", "Need endpoints.")
	require.NoError(t, platform.SubmitContact(contact))

	require.Len(t, rec.contacts, 1)
	assert.Equal(t, "bob@example.com", rec.contacts[0].Email)
}

func TestPayInvoice_Notifies(t *testing.T) {
	platform, rec := newTestPlatform(t)

	inv := models.NewInvoice("INV-1", decimal.RequireFromString("10.00"), "ATOM", "", "", "")
	require.NoError(t, platform.CreateInvoice(inv))

	paid, err := platform.PayInvoice("INV-1", "cosmos1xyz", "tx_abc")
	require.NoError(t, err)
	assert.Equal(t, models.InvoiceStatusPaid, paid.Status)

	require.Len(t, rec.invoices, 1)
	assert.Equal(t, "INV-1", rec.invoices[0].InvoiceNumber)
}

func TestPayInvoice_UnknownDoesNotNotify(t *testing.T) {
	platform, rec := newTestPlatform(t)

	_, err := platform.PayInvoice("INV-999", "cosmos1xyz", "tx_abc")
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.Empty(t, rec.invoices)
}

func TestCreateInvoice_PropagatesDuplicate(t *testing.T) {
	platform, _ := newTestPlatform(t)

	first := models.NewInvoice("INV-1", decimal.RequireFromString("10.00"), "ATOM", "", "", "")
	require.NoError(t, platform.CreateInvoice(first))

	second := models.NewInvoice("INV-1", decimal.RequireFromString("20.00"), "ATOM", "", "", "")
	assert.ErrorIs(t, platform.CreateInvoice(second), models.ErrDuplicateInvoice)
}
