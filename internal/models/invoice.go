package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice statuses. Only the pending -> paid transition is modeled;
// "failed" exists for future use by the payment widget.
const (
	InvoiceStatusPending = "pending"
	InvoiceStatusPaid    = "paid"
	InvoiceStatusFailed  = "failed"
)

// Invoice represents a payment request issued to a customer.
// It is the only mutable entity: PayInvoice flips it to paid exactly once
// in normal operation.
type Invoice struct {
	// ID is the system identifier, assigned by the repository at creation.
	ID string `json:"id" gorm:"column:id;primaryKey"`
	// InvoiceNumber is the externally visible business key.
	// Unique across all invoices; customers pay against this number.
	InvoiceNumber string `json:"invoiceNumber" gorm:"column:invoice_number;uniqueIndex;not null"`
	// Amount is the invoiced amount in Currency units.
	Amount decimal.Decimal `json:"amount" gorm:"column:amount;type:numeric(18,8);not null"`
	// Currency is the ticker the invoice is denominated in (ATOM, ETH, ...).
	Currency string `json:"currency" gorm:"column:currency;not null"`
	// WalletAddress is the payer's address, recorded at payment time.
	WalletAddress string `json:"walletAddress" gorm:"column:wallet_address"`
	// Status is one of the InvoiceStatus* constants.
	Status string `json:"status" gorm:"column:status;index;not null"`
	// TransactionHash is the client-reported transaction hash.
	// No on-chain verification is performed at this deployment tier.
	TransactionHash string `json:"transactionHash" gorm:"column:transaction_hash"`
	// CreatedAt is assigned by the repository at creation.
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at;index"`
	// PaidAt is nil until the invoice is paid, then stamped together with
	// Status in the same operation.
	PaidAt *time.Time `json:"paidAt" gorm:"column:paid_at"`
}

// NewInvoice builds an invoice from client-supplied fields, applying the
// declared defaults for everything omitted. The repository assigns ID and
// CreatedAt on insert; clients never choose them.
func NewInvoice(number string, amount decimal.Decimal, currency, walletAddress, status, transactionHash string) *Invoice {
	if status == "" {
		status = InvoiceStatusPending
	}
	return &Invoice{
		InvoiceNumber:   number,
		Amount:          amount,
		Currency:        currency,
		WalletAddress:   walletAddress,
		Status:          status,
		TransactionHash: transactionHash,
	}
}
