package http_api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stakeforge/stakeforge/internal/models"
	"github.com/stakeforge/stakeforge/pkg/validation"
)

// ContactRequest represents the JSON body for a contact-form submission
type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// CreateInvoiceRequest represents the JSON body for invoice creation.
// The id and timestamps are assigned by the store and cannot be supplied.
type CreateInvoiceRequest struct {
	InvoiceNumber   string `json:"invoiceNumber" validate:"required"`
	Amount          string `json:"amount" validate:"required,decimal"`
	Currency        string `json:"currency" validate:"required"`
	WalletAddress   string `json:"walletAddress"`
	Status          string `json:"status" validate:"omitempty,oneof=pending paid failed"`
	TransactionHash string `json:"transactionHash"`
}

// PayInvoiceRequest represents the JSON body for the payment operation
type PayInvoiceRequest struct {
	InvoiceNumber   string `json:"invoiceNumber" validate:"required"`
	WalletAddress   string `json:"walletAddress" validate:"required"`
	TransactionHash string `json:"transactionHash" validate:"required"`
}

// bindRequest decodes and validates the request body, writing the 400
// response itself when the payload fails the schema. Returns false if the
// handler should bail out.
func (s *HTTPServer) bindRequest(c *gin.Context, req interface{}) bool {
	if err := validation.BindJSON(c.Request.Body, req); err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			s.logger.Debug("Invalid request body", "error", err)
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "Invalid input",
				"errors":  verr.Violations,
			})
			return false
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return false
	}
	return true
}

// listServices is a handler for GET /api/services.
func (s *HTTPServer) listServices(c *gin.Context) {
	services, err := s.platform.GetServices()
	if err != nil {
		s.logger.Error("Failed to fetch services", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch services"})
		return
	}
	c.JSON(http.StatusOK, services)
}

// getService is a handler for GET /api/services/:id.
func (s *HTTPServer) getService(c *gin.Context) {
	service, err := s.platform.GetService(c.Param("id"))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Service not found"})
			return
		}
		s.logger.Error("Failed to fetch service", "error", err, "id", c.Param("id"))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch service"})
		return
	}
	c.JSON(http.StatusOK, service)
}

// listNetworks is a handler for GET /api/networks.
func (s *HTTPServer) listNetworks(c *gin.Context) {
	networks, err := s.platform.GetNetworks()
	if err != nil {
		s.logger.Error("Failed to fetch networks", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch networks"})
		return
	}
	c.JSON(http.StatusOK, networks)
}

// submitContact is a handler for POST /api/contact.
func (s *HTTPServer) submitContact(c *gin.Context) {
	var req ContactRequest
	if !s.bindRequest(c, &req) {
		return
	}

	contact := models.NewContact(req.Name, req.Email, req.Subject, req.Message)
	if err := s.platform.SubmitContact(contact); err != nil {
		s.logger.Error("Failed to submit contact form", "error", err, "email", req.Email)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to submit contact form"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Contact form submitted successfully",
		"contact": contact,
	})
}

// listInvoices is a handler for GET /api/invoices.
func (s *HTTPServer) listInvoices(c *gin.Context) {
	invoices, err := s.platform.GetInvoices()
	if err != nil {
		s.logger.Error("Failed to fetch invoices", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch invoices"})
		return
	}
	c.JSON(http.StatusOK, invoices)
}

// getInvoice is a handler for GET /api/invoices/:invoiceNumber.
// Invoices are looked up by business key, not by system identifier.
func (s *HTTPServer) getInvoice(c *gin.Context) {
	invoice, err := s.platform.GetInvoiceByNumber(c.Param("invoiceNumber"))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Invoice not found"})
			return
		}
		s.logger.Error("Failed to fetch invoice", "error", err, "number", c.Param("invoiceNumber"))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch invoice"})
		return
	}
	c.JSON(http.StatusOK, invoice)
}

// createInvoice is a handler for POST /api/invoices.
func (s *HTTPServer) createInvoice(c *gin.Context) {
	var req CreateInvoiceRequest
	if !s.bindRequest(c, &req) {
		return
	}

	amount, err := validation.ParseAmount(req.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid input",
			"errors": []validation.Violation{
				{Field: "amount", Rule: "decimal", Message: err.Error()},
			},
		})
		return
	}

	invoice := models.NewInvoice(req.InvoiceNumber, amount, req.Currency,
		req.WalletAddress, req.Status, req.TransactionHash)
	if err := s.platform.CreateInvoice(invoice); err != nil {
		if errors.Is(err, models.ErrDuplicateInvoice) {
			c.JSON(http.StatusConflict, gin.H{"message": "Invoice number already exists"})
			return
		}
		s.logger.Error("Failed to create invoice", "error", err, "number", req.InvoiceNumber)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create invoice"})
		return
	}

	c.JSON(http.StatusOK, invoice)
}

// payInvoice is a handler for POST /api/invoices/pay.
func (s *HTTPServer) payInvoice(c *gin.Context) {
	var req PayInvoiceRequest
	if !s.bindRequest(c, &req) {
		return
	}

	invoice, err := s.platform.PayInvoice(req.InvoiceNumber, req.WalletAddress, req.TransactionHash)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Invoice not found"})
			return
		}
		s.logger.Error("Failed to process payment", "error", err, "number", req.InvoiceNumber)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to process payment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Payment processed successfully",
		"invoice": invoice,
	})
}

// getStatus is a handler for GET /api/status.
func (s *HTTPServer) getStatus(c *gin.Context) {
	c.JSON(http.StatusOK, s.status.Snapshot())
}
