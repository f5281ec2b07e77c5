package http_api

// routes sets up the routes for the HTTP server.
func (s *HTTPServer) routes() {
	api := s.router.Group("/api")

	api.GET("/services", s.listServices)
	api.GET("/services/:id", s.getService)

	api.GET("/networks", s.listNetworks)

	api.POST("/contact", s.submitContact)

	api.GET("/invoices", s.listInvoices)
	api.GET("/invoices/:invoiceNumber", s.getInvoice)
	api.POST("/invoices", s.createInvoice)
	api.POST("/invoices/pay", s.payInvoice)

	api.GET("/status", s.getStatus)
}
