package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payRequest struct {
	InvoiceNumber   string `json:"invoiceNumber" validate:"required"`
	WalletAddress   string `json:"walletAddress" validate:"required"`
	TransactionHash string `json:"transactionHash" validate:"required"`
}

type invoiceRequest struct {
	InvoiceNumber string `json:"invoiceNumber" validate:"required"`
	Amount        string `json:"amount" validate:"required,decimal"`
	Currency      string `json:"currency" validate:"required"`
}

func bindErr(t *testing.T, body string, dst interface{}) *Error {
	t.Helper()
	err := BindJSON(strings.NewReader(body), dst)
	require.Error(t, err)
	verr, ok := err.(*Error)
	require.True(t, ok, "expected *validation.Error, got %T", err)
	return verr
}

func TestBindJSON_Valid(t *testing.T) {
	var req payRequest
	err := BindJSON(strings.NewReader(`{"invoiceNumber":"INV-1","walletAddress":"cosmos1xyz","transactionHash":"tx_abc"}`), &req)
	require.NoError(t, err)
	assert.Equal(t, "INV-1", req.InvoiceNumber)
	assert.Equal(t, "cosmos1xyz", req.WalletAddress)
}

func TestBindJSON_MissingFields(t *testing.T) {
	var req payRequest
	verr := bindErr(t, `{"invoiceNumber":"INV-1"}`, &req)

	require.Len(t, verr.Violations, 2)
	fields := []string{verr.Violations[0].Field, verr.Violations[1].Field}
	assert.Contains(t, fields, "walletAddress")
	assert.Contains(t, fields, "transactionHash")
	for _, v := range verr.Violations {
		assert.Equal(t, "required", v.Rule)
	}
}

func TestBindJSON_UnknownFieldRejected(t *testing.T) {
	var req invoiceRequest
	verr := bindErr(t, `{"invoiceNumber":"INV-1","amount":"10.00","currency":"ATOM","id":"client-chosen"}`, &req)

	require.Len(t, verr.Violations, 1)
	assert.Equal(t, "id", verr.Violations[0].Field)
	assert.Equal(t, "unknown", verr.Violations[0].Rule)
}

func TestBindJSON_DecimalRule(t *testing.T) {
	var req invoiceRequest
	verr := bindErr(t, `{"invoiceNumber":"INV-1","amount":"ten","currency":"ATOM"}`, &req)

	require.Len(t, verr.Violations, 1)
	assert.Equal(t, "amount", verr.Violations[0].Field)
	assert.Equal(t, "decimal", verr.Violations[0].Rule)

	verr = bindErr(t, `{"invoiceNumber":"INV-1","amount":"-5.00","currency":"ATOM"}`, &req)
	require.Len(t, verr.Violations, 1)
	assert.Equal(t, "decimal", verr.Violations[0].Rule)
}

func TestBindJSON_MalformedJSON(t *testing.T) {
	var req payRequest
	verr := bindErr(t, `{"invoiceNumber":`, &req)
	require.Len(t, verr.Violations, 1)
	assert.Equal(t, "json", verr.Violations[0].Rule)
}

func TestBindJSON_TypeMismatch(t *testing.T) {
	var req invoiceRequest
	verr := bindErr(t, `{"invoiceNumber":1,"amount":"10.00","currency":"ATOM"}`, &req)
	require.Len(t, verr.Violations, 1)
	assert.Equal(t, "invoiceNumber", verr.Violations[0].Field)
	assert.Equal(t, "type", verr.Violations[0].Rule)
}

func TestParseAmount(t *testing.T) {
	d, err := ParseAmount("299.00")
	require.NoError(t, err)
	assert.Equal(t, "299.00", d.StringFixed(2))

	_, err = ParseAmount("")
	assert.Error(t, err)

	_, err = ParseAmount("-1")
	assert.Error(t, err)

	_, err = ParseAmount("1.2.3")
	assert.Error(t, err)
}
